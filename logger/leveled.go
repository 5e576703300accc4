package logger

import (
	"fmt"
	"sync/atomic"

	"github.com/philipp01105/logfacade/core"
)

// Leveled wraps a core.Logger with printf-style methods and a typed level.
type Leveled struct {
	core.Logger
	level atomic.Int32
}

// NewLeveled wraps l. The remembered level starts at INFO; it does not
// read the wrapped logger's threshold.
func NewLeveled(l core.Logger) *Leveled {
	w := &Leveled{Logger: l}
	w.level.Store(int32(core.LevelInfo))
	return w
}

// SetLogLevel applies level to the wrapped logger and remembers it.
// Invalid levels are ignored.
func (l *Leveled) SetLogLevel(level core.Level) {
	if !level.Valid() {
		return
	}
	if l.Logger.SetLevel(level.String()) {
		l.level.Store(int32(level))
	}
}

// LogLevel returns the level last set through SetLogLevel.
func (l *Leveled) LogLevel() core.Level {
	return core.Level(l.level.Load())
}

// IsEnabled reports whether the wrapped logger emits at level.
func (l *Leveled) IsEnabled(level core.Level) bool {
	return core.Enabled(l.Logger, level)
}

// Logf formats with fmt.Sprintf and logs at level.
func (l *Leveled) Logf(level core.Level, format string, args ...any) {
	if !l.IsEnabled(level) {
		return
	}
	// The message is already formatted; pass it as an argument so braces
	// in it are not treated as placeholders.
	core.Log(l.Logger, level, "{0}", fmt.Sprintf(format, args...))
}

func (l *Leveled) Debugf(format string, args ...any) { l.Logf(core.LevelDebug, format, args...) }
func (l *Leveled) Infof(format string, args ...any)  { l.Logf(core.LevelInfo, format, args...) }
func (l *Leveled) Warnf(format string, args ...any)  { l.Logf(core.LevelWarn, format, args...) }
func (l *Leveled) Errorf(format string, args ...any) { l.Logf(core.LevelError, format, args...) }

// LogErr logs the formatted message at level, then err via Exception.
func (l *Leveled) LogErr(level core.Level, err error, format string, args ...any) {
	if !l.IsEnabled(level) {
		return
	}
	l.Logf(level, format, args...)
	if err != nil {
		l.Exception(err)
	}
}

func (l *Leveled) DebugErr(err error, format string, args ...any) {
	l.LogErr(core.LevelDebug, err, format, args...)
}

func (l *Leveled) InfoErr(err error, format string, args ...any) {
	l.LogErr(core.LevelInfo, err, format, args...)
}

func (l *Leveled) WarnErr(err error, format string, args ...any) {
	l.LogErr(core.LevelWarn, err, format, args...)
}

func (l *Leveled) ErrorErr(err error, format string, args ...any) {
	l.LogErr(core.LevelError, err, format, args...)
}
