// Package zapbinding provides the ZAP binding on top of go.uber.org/zap.
package zapbinding

import (
	"os"
	"strings"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/logfacade/config"
	"github.com/philipp01105/logfacade/core"
	"github.com/philipp01105/logfacade/logger"
)

// Name is the binding name.
const Name = "ZAP"

// OffLevel is the zap level used for NONE. Nothing is logged above Fatal.
const OffLevel = zapcore.FatalLevel + 1

func init() {
	logger.RegisterBinding(Name, func(cfg config.Config) core.Factory {
		return New(FromConfig(cfg)...)
	})
}

// Option configures a Factory.
type Option func(*Factory)

// WithEncoder sets the entry encoder (default: console encoder).
func WithEncoder(enc zapcore.Encoder) Option {
	return func(f *Factory) { f.encoder = enc }
}

// WithWriteSyncer sets the destination (default: stderr).
func WithWriteSyncer(ws zapcore.WriteSyncer) Option {
	return func(f *Factory) { f.sink = ws }
}

// WithLevel sets the level new loggers start at (default: INFO).
func WithLevel(level core.Level) Option {
	return func(f *Factory) { f.level = level }
}

// FromConfig maps the facade configuration onto factory options: JSON
// encoding for the json format, and the output file as sink when it can
// be opened.
func FromConfig(cfg config.Config) []Option {
	opts := []Option{WithLevel(cfg.LogLevel())}
	if strings.EqualFold(cfg.Format, config.FormatJSON) {
		opts = append(opts, WithEncoder(zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())))
	}
	if cfg.OutputFile != "" {
		if ws, closeFn, err := zap.Open(cfg.OutputFile); err == nil {
			opts = append(opts, WithWriteSyncer(ws), func(f *Factory) { f.closeFn = closeFn })
		}
	}
	return opts
}

// Factory creates zap loggers sharing one encoder and sink. Each logger
// has its own AtomicLevel.
type Factory struct {
	encoder zapcore.Encoder
	sink    zapcore.WriteSyncer
	level   core.Level
	closeFn func()

	mu      sync.Mutex
	loggers map[string]*Logger
}

// New creates a ZAP factory.
func New(opts ...Option) *Factory {
	f := &Factory{
		level:   core.LevelInfo,
		loggers: make(map[string]*Logger),
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.encoder == nil {
		encCfg := zap.NewDevelopmentEncoderConfig()
		encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		f.encoder = zapcore.NewConsoleEncoder(encCfg)
	}
	if f.sink == nil {
		f.sink = zapcore.Lock(os.Stderr)
	}
	return f
}

// Name returns "ZAP".
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
	l := &Logger{name: name, atom: zap.NewAtomicLevel()}
	l.setLevel(f.level)

	zl := zap.New(zapcore.NewCore(f.encoder, f.sink, l.atom))
	if name != core.AnonymousLoggerName {
		zl = zl.Named(name)
	}
	l.zap = zl
	return l
}

// Sync flushes buffered output.
func (f *Factory) Sync() error {
	return f.sink.Sync()
}

// Close flushes output and closes an output file opened by FromConfig.
func (f *Factory) Close() error {
	err := f.Sync()
	if f.closeFn != nil {
		f.closeFn()
		f.closeFn = nil
	}
	return err
}

// Logger forwards to a *zap.Logger.
type Logger struct {
	name  string
	zap   *zap.Logger
	atom  zap.AtomicLevel
	level atomic.Int32
}

// Zap returns the underlying zap logger.
func (l *Logger) Zap() *zap.Logger { return l.zap }

// Name returns the logger name
func (l *Logger) Name() string { return l.name }

// Level returns the current threshold
func (l *Logger) Level() core.Level { return core.Level(l.level.Load()) }

func (l *Logger) Debug(template string, args ...any) {
	if l.IsDebugEnabled() {
		l.zap.Debug(core.Format(template, args...))
	}
}

func (l *Logger) Info(template string, args ...any) {
	if l.IsInfoEnabled() {
		l.zap.Info(core.Format(template, args...))
	}
}

func (l *Logger) Warn(template string, args ...any) {
	if l.IsWarnEnabled() {
		l.zap.Warn(core.Format(template, args...))
	}
}

func (l *Logger) Error(template string, args ...any) {
	if l.IsErrorEnabled() {
		l.zap.Error(core.Format(template, args...))
	}
}

// Exception logs err at ERROR with the error field.
func (l *Logger) Exception(err error) {
	if err != nil && l.IsErrorEnabled() {
		l.zap.Error("exception", zap.Error(err))
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
	l.setLevel(lv)
	return true
}

func (l *Logger) setLevel(level core.Level) {
	l.level.Store(int32(level))
	l.atom.SetLevel(ToZapLevel(level))
}

// ToZapLevel maps a facade level onto zap.
func ToZapLevel(level core.Level) zapcore.Level {
	switch level {
	case core.LevelDebug:
		return zapcore.DebugLevel
	case core.LevelInfo:
		return zapcore.InfoLevel
	case core.LevelWarn:
		return zapcore.WarnLevel
	case core.LevelError:
		return zapcore.ErrorLevel
	default:
		return OffLevel
	}
}
