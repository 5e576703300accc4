// Package journalbinding provides the JOURNAL binding, which sends every
// message to the systemd journal.
//
// Facade levels map to journal priorities (ERROR err, WARNING warning,
// INFO info, DEBUG debug). Each entry carries SYSLOG_IDENTIFIER and the
// logger name in the LOGGER field. When the journal is not reachable,
// messages are written to stderr as text lines instead.
package journalbinding

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/coreos/go-systemd/v22/journal"

	"github.com/philipp01105/logfacade/backend/streamlog"
	"github.com/philipp01105/logfacade/config"
	"github.com/philipp01105/logfacade/core"
	"github.com/philipp01105/logfacade/logger"
)

// Name is the binding name.
const Name = "JOURNAL"

// Journal field names set on every entry.
const (
	FieldIdentifier = "SYSLOG_IDENTIFIER"
	FieldLogger     = "LOGGER"
	FieldError      = "ERROR"
)

func init() {
	logger.RegisterBinding(Name, func(cfg config.Config) core.Factory {
		return New(WithLevel(cfg.LogLevel()))
	})
}

// SendFunc delivers one journal entry. journal.Send satisfies it.
type SendFunc func(message string, priority journal.Priority, vars map[string]string) error

// Option configures a Factory.
type Option func(*Factory)

// WithIdentifier sets SYSLOG_IDENTIFIER (default: the executable name).
func WithIdentifier(id string) Option {
	return func(f *Factory) { f.identifier = id }
}

// WithSender replaces journal.Send. The journal is then assumed to be
// available.
func WithSender(send SendFunc) Option {
	return func(f *Factory) { f.send = send }
}

// WithFallback sets where messages go when the journal is unavailable
// (default: stderr).
func WithFallback(w io.Writer) Option {
	return func(f *Factory) { f.fallback = w }
}

// WithLevel sets the level new loggers start at (default: INFO).
func WithLevel(level core.Level) Option {
	return func(f *Factory) { f.level = level }
}

// Factory creates journal loggers.
type Factory struct {
	identifier string
	send       SendFunc
	available  bool
	fallback   io.Writer
	level      core.Level

	mu      sync.Mutex
	loggers map[string]*Logger
}

// New creates a JOURNAL factory.
func New(opts ...Option) *Factory {
	f := &Factory{
		identifier: filepath.Base(os.Args[0]),
		fallback:   os.Stderr,
		level:      core.LevelInfo,
		loggers:    make(map[string]*Logger),
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.send == nil {
		f.send = journal.Send
		f.available = journal.Enabled()
	} else {
		f.available = true
	}
	return f
}

// Name returns "JOURNAL".
func (f *Factory) Name() string { return Name }

// Available reports whether messages are sent to the journal.
func (f *Factory) Available() bool { return f.available }

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
	vars := map[string]string{FieldIdentifier: f.identifier}
	if name != core.AnonymousLoggerName {
		vars[FieldLogger] = name
	}
	l := &Logger{
		name:      name,
		vars:      vars,
		send:      f.send,
		available: f.available,
		fallback:  streamlog.NewWriterLogger(name, f.fallback),
	}
	l.fallback.SetLevel(core.LevelDebug.String())
	l.level.Store(int32(f.level))
	return l
}

// Logger sends entries to the journal.
type Logger struct {
	name      string
	vars      map[string]string
	send      SendFunc
	available bool
	fallback  *streamlog.Logger
	level     atomic.Int32
}

// Name returns the logger name
func (l *Logger) Name() string { return l.name }

// Level returns the current threshold
func (l *Logger) Level() core.Level { return core.Level(l.level.Load()) }

func (l *Logger) Debug(template string, args ...any) { l.log(core.LevelDebug, template, args) }
func (l *Logger) Info(template string, args ...any)  { l.log(core.LevelInfo, template, args) }
func (l *Logger) Warn(template string, args ...any)  { l.log(core.LevelWarn, template, args) }
func (l *Logger) Error(template string, args ...any) { l.log(core.LevelError, template, args) }

func (l *Logger) log(level core.Level, template string, args []any) {
	if !l.Level().Enables(level) {
		return
	}
	msg := core.Format(template, args...)
	if err := l.sendEntry(msg, level, nil); err != nil {
		core.Log(l.fallback, level, "{0}", msg)
	}
}

// Exception sends err at ERROR with the error text in the ERROR field.
func (l *Logger) Exception(err error) {
	if err == nil || !l.IsErrorEnabled() {
		return
	}
	extra := map[string]string{FieldError: err.Error()}
	if sendErr := l.sendEntry(fmt.Sprintf("%+v", err), core.LevelError, extra); sendErr != nil {
		l.fallback.Exception(err)
	}
}

// sendEntry returns an error when the entry must go to the fallback.
func (l *Logger) sendEntry(msg string, level core.Level, extra map[string]string) error {
	if !l.available {
		return errJournalUnavailable
	}
	priority := ToPriority(level)
	vars := make(map[string]string, len(l.vars)+len(extra)+1)
	for k, v := range l.vars {
		vars[k] = v
	}
	for k, v := range extra {
		vars[k] = v
	}
	vars["PRIORITY"] = strconv.Itoa(int(priority))
	return l.send(msg, priority, vars)
}

var errJournalUnavailable = errors.New("journal unavailable")

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

// ToPriority maps a facade level onto a journal priority.
func ToPriority(level core.Level) journal.Priority {
	switch level {
	case core.LevelError:
		return journal.PriErr
	case core.LevelWarn:
		return journal.PriWarning
	case core.LevelInfo:
		return journal.PriInfo
	default:
		return journal.PriDebug
	}
}
