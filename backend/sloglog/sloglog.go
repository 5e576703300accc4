// Package sloglog provides the SLOG binding, which forwards every message
// to a log/slog handler.
//
// Each logger carries its name in the "logger" attribute and owns a
// slog.LevelVar, so levels can be changed per logger at runtime:
//
//	f := sloglog.New(sloglog.WithFormat("json"))
//	l := f.Logger("app.db")
//	l.SetLevel("DEBUG")
package sloglog

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/philipp01105/logfacade/core"
	"github.com/philipp01105/logfacade/handler"
	"github.com/philipp01105/logfacade/handler/sloghandler"
)

// Name is the binding name of the slog factory.
const Name = "SLOG"

// Option configures a Factory.
type Option func(*Factory)

// WithHandler forwards to h. It takes precedence over every other output
// option.
func WithHandler(h slog.Handler) Option {
	return func(f *Factory) { f.handler = h }
}

// WithTarget forwards to a facade output target.
func WithTarget(h handler.Handler) Option {
	return func(f *Factory) { f.target = h }
}

// WithOutput sets the writer of the built-in text or JSON handler
// (default: os.Stderr).
func WithOutput(w io.Writer) Option {
	return func(f *Factory) { f.output = w }
}

// WithFormat selects the built-in handler: "json" or "text" (default).
func WithFormat(format string) Option {
	return func(f *Factory) { f.format = format }
}

// Factory creates slog-backed loggers sharing one handler.
type Factory struct {
	handler slog.Handler
	target  handler.Handler
	output  io.Writer
	format  string

	mu      sync.Mutex
	loggers map[string]*Logger
}

// New creates a slog factory.
func New(opts ...Option) *Factory {
	f := &Factory{
		output:  os.Stderr,
		loggers: make(map[string]*Logger),
	}
	for _, opt := range opts {
		opt(f)
	}

	if f.handler == nil {
		// Filtering happens per logger; the shared handler accepts everything.
		all := slog.LevelDebug
		switch {
		case f.target != nil:
			f.handler = sloghandler.NewSlogHandler(f.target, all)
		case strings.EqualFold(f.format, "json"):
			f.handler = slog.NewJSONHandler(f.output, &slog.HandlerOptions{Level: all})
		default:
			f.handler = slog.NewTextHandler(f.output, &slog.HandlerOptions{Level: all})
		}
	}
	return f
}

// Name returns "SLOG".
func (f *Factory) Name() string { return Name }

// New creates an anonymous logger without a logger attribute.
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
	l := &Logger{name: name}
	l.setLevel(core.LevelInfo)

	h := f.handler
	if name != core.AnonymousLoggerName {
		h = h.WithAttrs([]slog.Attr{slog.String(sloghandler.LoggerKey, name)})
	}
	l.slog = slog.New(h)
	return l
}

// Logger forwards to a *slog.Logger.
type Logger struct {
	name  string
	slog  *slog.Logger
	level atomic.Int32
	// lv mirrors level as a slog marker, for handlers that consult it
	lv slog.LevelVar
}

// Name returns the logger name
func (l *Logger) Name() string { return l.name }

// Level returns the current threshold
func (l *Logger) Level() core.Level { return core.Level(l.level.Load()) }

// LevelVar exposes the slog level of the logger.
func (l *Logger) LevelVar() *slog.LevelVar { return &l.lv }

func (l *Logger) Debug(template string, args ...any) { l.log(core.LevelDebug, template, args) }
func (l *Logger) Info(template string, args ...any)  { l.log(core.LevelInfo, template, args) }
func (l *Logger) Warn(template string, args ...any)  { l.log(core.LevelWarn, template, args) }
func (l *Logger) Error(template string, args ...any) { l.log(core.LevelError, template, args) }

// Exception logs err at ERROR under the "error" attribute.
func (l *Logger) Exception(err error) {
	if err == nil || !l.IsErrorEnabled() {
		return
	}
	l.slog.LogAttrs(context.Background(), slog.LevelError, "exception", slog.Any("error", err))
}

func (l *Logger) log(level core.Level, template string, args []any) {
	if !l.Level().Enables(level) {
		return
	}
	l.slog.Log(context.Background(), level.SlogLevel(), core.Format(template, args...))
}

func (l *Logger) IsDebugEnabled() bool { return l.Level().Enables(core.LevelDebug) }
func (l *Logger) IsInfoEnabled() bool  { return l.Level().Enables(core.LevelInfo) }
func (l *Logger) IsWarnEnabled() bool  { return l.Level().Enables(core.LevelWarn) }
func (l *Logger) IsErrorEnabled() bool { return l.Level().Enables(core.LevelError) }

// SetLevel sets the threshold from a facade level name. NONE maps to
// core.SlogLevelOff.
func (l *Logger) SetLevel(level string) bool {
	lv, ok := core.ParseLevel(level)
	if !ok {
		return false
	}
	l.setLevel(lv)
	return true
}

func (l *Logger) setLevel(level core.Level) {
	l.level.Store(int32(level))
	l.lv.Set(level.SlogLevel())
}
