// Package memlog provides the MEM binding: loggers that keep every
// emitted message in memory so tests can inspect what was logged.
//
// MEM is not a built-in binding. Register it explicitly:
//
//	mem := memlog.New()
//	logger.Register(mem)
package memlog

import (
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/philipp01105/logfacade/core"
)

// Name is the binding name of the in-memory factory.
const Name = "MEM"

// Record is one captured log operation.
type Record struct {
	Time    time.Time
	Level   core.Level
	Logger  string
	Message string
	Err     error
}

// Factory creates in-memory loggers, one per name.
type Factory struct {
	mu      sync.Mutex
	loggers map[string]*Logger
}

// New creates an empty MEM factory.
func New() *Factory {
	return &Factory{loggers: make(map[string]*Logger)}
}

// Name returns "MEM".
func (f *Factory) Name() string { return Name }

// New creates an anonymous logger. Anonymous loggers are not cached.
func (f *Factory) New() core.Logger {
	return newLogger(core.AnonymousLoggerName)
}

// Logger returns the logger with the given name, creating it if needed.
func (f *Factory) Logger(name string) core.Logger {
	return f.Get(name)
}

// Get is Logger with the concrete type, for inspecting records.
func (f *Factory) Get(name string) *Logger {
	f.mu.Lock()
	defer f.mu.Unlock()

	if l, ok := f.loggers[name]; ok {
		return l
	}
	l := newLogger(name)
	f.loggers[name] = l
	return l
}

// Logger captures records in call order.
type Logger struct {
	name  string
	level atomic.Int32

	mu      sync.Mutex
	records []Record
}

func newLogger(name string) *Logger {
	l := &Logger{name: name}
	l.level.Store(int32(core.LevelInfo))
	return l
}

// Name returns the logger name
func (l *Logger) Name() string { return l.name }

// Level returns the current threshold
func (l *Logger) Level() core.Level { return core.Level(l.level.Load()) }

func (l *Logger) Debug(template string, args ...any) { l.log(core.LevelDebug, template, args) }
func (l *Logger) Info(template string, args ...any)  { l.log(core.LevelInfo, template, args) }
func (l *Logger) Warn(template string, args ...any)  { l.log(core.LevelWarn, template, args) }
func (l *Logger) Error(template string, args ...any) { l.log(core.LevelError, template, args) }

// Exception records err at ERROR with an empty message.
func (l *Logger) Exception(err error) {
	if err == nil || !l.IsErrorEnabled() {
		return
	}
	l.append(Record{Time: time.Now(), Level: core.LevelError, Logger: l.name, Err: err})
}

func (l *Logger) log(level core.Level, template string, args []any) {
	if !l.Level().Enables(level) {
		return
	}
	l.append(Record{
		Time:    time.Now(),
		Level:   level,
		Logger:  l.name,
		Message: core.Format(template, args...),
	})
}

func (l *Logger) append(r Record) {
	l.mu.Lock()
	l.records = append(l.records, r)
	l.mu.Unlock()
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
	l.level.Store(int32(lv))
	return true
}

// Records returns a copy of the captured records.
func (l *Logger) Records() []Record {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Record, len(l.records))
	copy(out, l.records)
	return out
}

// Len returns the number of captured records.
func (l *Logger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.records)
}

// Clear drops all captured records.
func (l *Logger) Clear() {
	l.mu.Lock()
	l.records = nil
	l.mu.Unlock()
}

// FindContaining returns the records whose message contains substr.
func (l *Logger) FindContaining(substr string) []Record {
	l.mu.Lock()
	defer l.mu.Unlock()
	var out []Record
	for _, r := range l.records {
		if strings.Contains(r.Message, substr) {
			out = append(out, r)
		}
	}
	return out
}
