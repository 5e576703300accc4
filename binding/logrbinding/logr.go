// Package logrbinding provides the LOGR binding on top of
// github.com/go-logr/logr.
//
// Facade levels map onto logr like this:
//
//	DEBUG    V(1).Info
//	INFO     Info
//	WARNING  Info with "level"="warning"
//	ERROR    Error(nil, msg)
//
// The threshold is kept by the facade logger; the sink only sees calls
// that pass it. The default sink is stdr writing to stderr. With the json
// format the sink is zapr on a production zap logger.
package logrbinding

import (
	"log"
	"os"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"

	"github.com/philipp01105/logfacade/config"
	"github.com/philipp01105/logfacade/core"
	"github.com/philipp01105/logfacade/logger"
)

// Name is the binding name.
const Name = "LOGR"

// DebugVerbosity is the V level used for DEBUG messages.
const DebugVerbosity = 1

func init() {
	logger.RegisterBinding(Name, func(cfg config.Config) core.Factory {
		return New(FromConfig(cfg)...)
	})
}

// Option configures a Factory.
type Option func(*Factory)

// WithLogr sets the root logr.Logger every facade logger derives from.
func WithLogr(root logr.Logger) Option {
	return func(f *Factory) {
		f.root = root
		f.rootSet = true
	}
}

// WithLevel sets the level new loggers start at (default: INFO).
func WithLevel(level core.Level) Option {
	return func(f *Factory) { f.level = level }
}

// FromConfig maps the facade configuration onto factory options.
func FromConfig(cfg config.Config) []Option {
	opts := []Option{WithLevel(cfg.LogLevel())}
	if strings.EqualFold(cfg.Format, config.FormatJSON) {
		zcfg := zap.NewProductionConfig()
		zcfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
		if zl, err := zcfg.Build(); err == nil {
			opts = append(opts, WithLogr(zapr.NewLogger(zl)))
		}
	}
	return opts
}

// NewStdr returns a logr.Logger writing through the standard library log
// package to stderr, with verbosity high enough for DEBUG messages.
func NewStdr() logr.Logger {
	stdr.SetVerbosity(DebugVerbosity)
	return stdr.New(log.New(os.Stderr, "", log.LstdFlags))
}

// Factory creates logr-backed loggers.
type Factory struct {
	root    logr.Logger
	rootSet bool
	level   core.Level

	mu      sync.Mutex
	loggers map[string]*Logger
}

// New creates a LOGR factory.
func New(opts ...Option) *Factory {
	f := &Factory{
		level:   core.LevelInfo,
		loggers: make(map[string]*Logger),
	}
	for _, opt := range opts {
		opt(f)
	}
	if !f.rootSet {
		f.root = NewStdr()
	}
	return f
}

// Name returns "LOGR".
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
	lr := f.root
	if name != core.AnonymousLoggerName {
		lr = lr.WithName(name)
	}
	l := &Logger{name: name, logr: lr}
	l.level.Store(int32(f.level))
	return l
}

// Logger forwards to a logr.Logger.
type Logger struct {
	name  string
	logr  logr.Logger
	level atomic.Int32
}

// Logr returns the underlying logger.
func (l *Logger) Logr() logr.Logger { return l.logr }

// Name returns the logger name
func (l *Logger) Name() string { return l.name }

// Level returns the current threshold
func (l *Logger) Level() core.Level { return core.Level(l.level.Load()) }

func (l *Logger) Debug(template string, args ...any) {
	if l.IsDebugEnabled() {
		l.logr.V(DebugVerbosity).Info(core.Format(template, args...))
	}
}

func (l *Logger) Info(template string, args ...any) {
	if l.IsInfoEnabled() {
		l.logr.Info(core.Format(template, args...))
	}
}

func (l *Logger) Warn(template string, args ...any) {
	if l.IsWarnEnabled() {
		l.logr.Info(core.Format(template, args...), "level", "warning")
	}
}

func (l *Logger) Error(template string, args ...any) {
	if l.IsErrorEnabled() {
		l.logr.Error(nil, core.Format(template, args...))
	}
}

// Exception logs err through logr's Error.
func (l *Logger) Exception(err error) {
	if err != nil && l.IsErrorEnabled() {
		l.logr.Error(err, "exception")
	}
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
