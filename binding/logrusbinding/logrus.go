// Package logrusbinding provides the LOGRUS binding on top of
// github.com/sirupsen/logrus.
//
// Every facade logger owns a *logrus.Logger so levels can differ per
// name; all of them share the factory's output and formatter.
package logrusbinding

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/philipp01105/logfacade/config"
	"github.com/philipp01105/logfacade/core"
	"github.com/philipp01105/logfacade/logger"
)

// Name is the binding name.
const Name = "LOGRUS"

// LoggerField is the field carrying the logger name.
const LoggerField = "logger"

func init() {
	logger.RegisterBinding(Name, func(cfg config.Config) core.Factory {
		return New(FromConfig(cfg)...)
	})
}

// Option configures a Factory.
type Option func(*Factory)

// WithOutput sets the destination (default: stderr).
func WithOutput(w io.Writer) Option {
	return func(f *Factory) { f.out = w }
}

// WithFormatter sets the logrus formatter (default: text with full
// timestamps).
func WithFormatter(fm logrus.Formatter) Option {
	return func(f *Factory) { f.formatter = fm }
}

// WithLevel sets the level new loggers start at (default: INFO).
func WithLevel(level core.Level) Option {
	return func(f *Factory) { f.level = level }
}

// FromConfig maps the facade configuration onto factory options.
func FromConfig(cfg config.Config) []Option {
	opts := []Option{WithLevel(cfg.LogLevel())}
	if strings.EqualFold(cfg.Format, config.FormatJSON) {
		opts = append(opts, WithFormatter(&logrus.JSONFormatter{}))
	}
	if cfg.OutputFile != "" {
		if file, err := os.OpenFile(cfg.OutputFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err == nil {
			opts = append(opts, WithOutput(file), func(f *Factory) { f.file = file })
		}
	}
	return opts
}

// Factory creates logrus-backed loggers.
type Factory struct {
	out       io.Writer
	formatter logrus.Formatter
	level     core.Level
	file      *os.File

	mu      sync.Mutex
	loggers map[string]*Logger
}

// New creates a LOGRUS factory.
func New(opts ...Option) *Factory {
	f := &Factory{
		out:       os.Stderr,
		formatter: &logrus.TextFormatter{FullTimestamp: true},
		level:     core.LevelInfo,
		loggers:   make(map[string]*Logger),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Name returns "LOGRUS".
func (f *Factory) Name() string { return Name }

// New creates an anonymous logger.
func (f *Factory) New() core.Logger {
	return f.newLogger(core.AnonymousLoggerName)
}

// Logger returns the logger with the given name, creating it if needed.
func (f *Factory) Logger(name string) core.Logger {
	f.mu.Lock()
	defer f.mu.Unlock()

	if l, ok := f.loggers[name]; ok {
		return l
	}
	l := f.newLogger(name)
	f.loggers[name] = l
	return l
}

func (f *Factory) newLogger(name string) *Logger {
	lr := logrus.New()
	lr.SetOutput(f.out)
	lr.SetFormatter(f.formatter)

	entry := logrus.NewEntry(lr)
	if name != core.AnonymousLoggerName {
		entry = entry.WithField(LoggerField, name)
	}
	l := &Logger{name: name, logrus: lr, entry: entry}
	l.setLevel(f.level)
	return l
}

// Close closes an output file opened by FromConfig.
func (f *Factory) Close() error {
	if f.file == nil {
		return nil
	}
	err := f.file.Close()
	f.file = nil
	return err
}

// Logger forwards to a logrus entry carrying the logger name.
type Logger struct {
	name   string
	logrus *logrus.Logger
	entry  *logrus.Entry

	mu       sync.RWMutex
	disabled bool // NONE; logrus has no level below Panic
}

// Logrus returns the underlying logrus logger.
func (l *Logger) Logrus() *logrus.Logger { return l.logrus }

// Name returns the logger name
func (l *Logger) Name() string { return l.name }

// Level returns the current threshold
func (l *Logger) Level() core.Level {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.disabled {
		return core.LevelNone
	}
	return FromLogrusLevel(l.logrus.GetLevel())
}

func (l *Logger) Debug(template string, args ...any) { l.log(core.LevelDebug, template, args) }
func (l *Logger) Info(template string, args ...any)  { l.log(core.LevelInfo, template, args) }
func (l *Logger) Warn(template string, args ...any)  { l.log(core.LevelWarn, template, args) }
func (l *Logger) Error(template string, args ...any) { l.log(core.LevelError, template, args) }

func (l *Logger) log(level core.Level, template string, args []any) {
	if !l.Level().Enables(level) {
		return
	}
	l.entry.Log(ToLogrusLevel(level), core.Format(template, args...))
}

// Exception logs err at ERROR under logrus.ErrorKey.
func (l *Logger) Exception(err error) {
	if err == nil || !l.IsErrorEnabled() {
		return
	}
	l.entry.WithError(err).Error("exception")
}

func (l *Logger) IsDebugEnabled() bool { return l.Level().Enables(core.LevelDebug) }
func (l *Logger) IsInfoEnabled() bool  { return l.Level().Enables(core.LevelInfo) }
func (l *Logger) IsWarnEnabled() bool  { return l.Level().Enables(core.LevelWarn) }
func (l *Logger) IsErrorEnabled() bool { return l.Level().Enables(core.LevelError) }

// SetLevel sets the threshold from a facade level name.
func (l *Logger) SetLevel(level string) bool {
	lv, ok := core.ParseLevel(level)
	if !ok {
		return false
	}
	l.setLevel(lv)
	return true
}

func (l *Logger) setLevel(level core.Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.disabled = level == core.LevelNone
	l.logrus.SetLevel(ToLogrusLevel(level))
}

// ToLogrusLevel maps a facade level onto logrus. NONE maps to PanicLevel,
// the quietest logrus level.
func ToLogrusLevel(level core.Level) logrus.Level {
	switch level {
	case core.LevelDebug:
		return logrus.DebugLevel
	case core.LevelInfo:
		return logrus.InfoLevel
	case core.LevelWarn:
		return logrus.WarnLevel
	case core.LevelError:
		return logrus.ErrorLevel
	default:
		return logrus.PanicLevel
	}
}

// FromLogrusLevel maps a logrus level onto the nearest facade level.
func FromLogrusLevel(level logrus.Level) core.Level {
	switch {
	case level >= logrus.DebugLevel:
		return core.LevelDebug
	case level == logrus.InfoLevel:
		return core.LevelInfo
	case level == logrus.WarnLevel:
		return core.LevelWarn
	case level == logrus.ErrorLevel:
		return core.LevelError
	default:
		return core.LevelNone
	}
}
