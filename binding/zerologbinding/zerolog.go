// Package zerologbinding provides the ZEROLOG binding on top of
// github.com/rs/zerolog.
package zerologbinding

import (
	"io"
	"os"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/philipp01105/logfacade/config"
	"github.com/philipp01105/logfacade/core"
	"github.com/philipp01105/logfacade/logger"
)

// Name is the binding name.
const Name = "ZEROLOG"

// LoggerField is the field carrying the logger name.
const LoggerField = "logger"

func init() {
	logger.RegisterBinding(Name, func(cfg config.Config) core.Factory {
		return New(FromConfig(cfg)...)
	})
}

// Option configures a Factory.
type Option func(*Factory)

// WithWriter sets the destination (default: stderr).
func WithWriter(w io.Writer) Option {
	return func(f *Factory) { f.out = w }
}

// WithConsole renders human-readable lines with zerolog.ConsoleWriter
// instead of JSON.
func WithConsole() Option {
	return func(f *Factory) { f.console = true }
}

// WithTimestamp adds a timestamp field to every event.
func WithTimestamp() Option {
	return func(f *Factory) { f.timestamp = true }
}

// WithLevel sets the level new loggers start at (default: INFO).
func WithLevel(level core.Level) Option {
	return func(f *Factory) { f.level = level }
}

// FromConfig maps the facade configuration onto factory options. JSON
// is used only for the json format; the output file is used when it can
// be opened.
func FromConfig(cfg config.Config) []Option {
	opts := []Option{WithLevel(cfg.LogLevel()), WithTimestamp()}
	if !strings.EqualFold(cfg.Format, config.FormatJSON) {
		opts = append(opts, WithConsole())
	}
	if cfg.OutputFile != "" {
		if file, err := os.OpenFile(cfg.OutputFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err == nil {
			opts = append(opts, WithWriter(file), func(f *Factory) { f.file = file })
		}
	}
	return opts
}

// Factory creates zerolog loggers sharing one writer.
type Factory struct {
	out       io.Writer
	console   bool
	timestamp bool
	level     core.Level
	file      *os.File

	root zerolog.Logger

	mu      sync.Mutex
	loggers map[string]*Logger
}

// New creates a ZEROLOG factory.
func New(opts ...Option) *Factory {
	f := &Factory{
		out:     os.Stderr,
		level:   core.LevelInfo,
		loggers: make(map[string]*Logger),
	}
	for _, opt := range opts {
		opt(f)
	}

	w := f.out
	if f.console {
		w = zerolog.ConsoleWriter{Out: f.out, NoColor: true, TimeFormat: "15:04:05"}
	}
	ctx := zerolog.New(w).With()
	if f.timestamp {
		ctx = ctx.Timestamp()
	}
	f.root = ctx.Logger()
	return f
}

// Name returns "ZEROLOG".
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
	base := f.root
	if name != core.AnonymousLoggerName {
		base = f.root.With().Str(LoggerField, name).Logger()
	}
	l := &Logger{name: name, base: base}
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

// Logger forwards to a zerolog.Logger.
type Logger struct {
	name  string
	base  zerolog.Logger
	zl    atomic.Pointer[zerolog.Logger]
	level atomic.Int32
}

// Zerolog returns the underlying logger at the current level.
func (l *Logger) Zerolog() zerolog.Logger { return *l.zl.Load() }

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
	zl := l.zl.Load()
	zl.WithLevel(ToZerologLevel(level)).Msg(core.Format(template, args...))
}

// Exception logs err at ERROR under the error field.
func (l *Logger) Exception(err error) {
	if err == nil || !l.IsErrorEnabled() {
		return
	}
	l.zl.Load().Error().Err(err).Msg("exception")
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
	zl := l.base.Level(ToZerologLevel(level))
	l.zl.Store(&zl)
	l.level.Store(int32(level))
}

// ToZerologLevel maps a facade level onto zerolog.
func ToZerologLevel(level core.Level) zerolog.Level {
	switch level {
	case core.LevelDebug:
		return zerolog.DebugLevel
	case core.LevelInfo:
		return zerolog.InfoLevel
	case core.LevelWarn:
		return zerolog.WarnLevel
	case core.LevelError:
		return zerolog.ErrorLevel
	default:
		return zerolog.Disabled
	}
}
