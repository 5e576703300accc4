package streamlog

import (
	"io"
	"os"
	"strings"
	"sync"
	"sync/atomic"

	"go.uber.org/multierr"

	"github.com/philipp01105/logfacade/core"
	"github.com/philipp01105/logfacade/formatter"
	"github.com/philipp01105/logfacade/handler"
	"github.com/philipp01105/logfacade/handler/consolehandler"
	"github.com/philipp01105/logfacade/handler/filehandler"
	"github.com/philipp01105/logfacade/handler/multihandler"
)

// Name is the binding name of the stream factory.
const Name = "STDOUT"

// FormatJSON selects JSON lines instead of text.
const FormatJSON = "json"

// Options configures a stream factory.
type Options struct {
	// Level is the facade level name new loggers start at (default: INFO)
	Level string
	// OutputFile, when set, replaces stdout as the default target
	OutputFile string
	// Tee keeps writing to the console in addition to OutputFile
	Tee bool
	// Format is "text" (default) or "json"
	Format string
	// PrintLevel controls the level indicator of text lines
	PrintLevel formatter.PrintLevel
	// TimestampFormat is a time layout; no timestamp when empty
	TimestampFormat string
	// Writer is the console writer (default: os.Stdout)
	Writer io.Writer
	// Targets routes logger names to output targets. A registry is
	// created when nil; its fallback is set to the factory default.
	Targets *handler.Targets
}

// applyDefaults fills in zero-value fields with defaults.
func applyDefaults(opts *Options) {
	if opts.Writer == nil {
		opts.Writer = os.Stdout
	}
}

// Factory creates stream loggers sharing one set of output targets.
type Factory struct {
	level     core.Level
	formatter formatter.Formatter
	targets   *handler.Targets
	owned     handler.Handler

	mu      sync.Mutex
	loggers map[string]*Logger
}

// New creates a stream factory. It never fails: an output file that
// cannot be opened is reported on stderr and replaced by the console.
func New(opts Options) *Factory {
	applyDefaults(&opts)

	level, ok := core.ParseLevel(opts.Level)
	if !ok {
		level = core.LevelInfo
	}

	f := &Factory{
		level:     level,
		formatter: newFormatter(opts),
		loggers:   make(map[string]*Logger),
	}

	f.owned = f.defaultTarget(opts)
	f.targets = opts.Targets
	if f.targets == nil {
		f.targets = handler.NewTargets(f.owned)
	} else {
		f.targets.SetFallback(f.owned)
	}
	return f
}

func newFormatter(opts Options) formatter.Formatter {
	cfg := formatter.Config{
		TimestampFormat: opts.TimestampFormat,
		PrintLevel:      opts.PrintLevel,
	}
	if strings.EqualFold(opts.Format, FormatJSON) {
		return formatter.NewJSONFormatter(cfg)
	}
	return formatter.NewTextFormatter(cfg)
}

func (f *Factory) defaultTarget(opts Options) handler.Handler {
	console := consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{
		Writer:    opts.Writer,
		Formatter: f.formatter,
	})
	if opts.OutputFile == "" {
		return console
	}

	file, err := filehandler.NewFileHandler(filehandler.FileConfig{
		Filename:  opts.OutputFile,
		Formatter: f.formatter,
	})
	if err != nil {
		l := Stderr(Name)
		l.Error("Unable to open log file {0}, logging to console instead", opts.OutputFile)
		l.Exception(err)
		return console
	}
	if opts.Tee {
		return multihandler.NewMultiHandler(console, file)
	}
	return file
}

// Name returns "STDOUT".
func (f *Factory) Name() string { return Name }

// New creates an anonymous logger. Anonymous loggers are not cached.
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
	l := &Logger{name: name, targets: f.targets}
	l.level.Store(int32(f.level))
	return l
}

// Targets returns the target registry used by the factory's loggers.
func (f *Factory) Targets() *handler.Targets { return f.targets }

// Stats reports the write statistics of the default target.
func (f *Factory) Stats() handler.Snapshot {
	if sp, ok := f.owned.(handler.StatsProvider); ok {
		return sp.Stats()
	}
	return handler.Snapshot{}
}

// Close closes the default target and every routed target.
func (f *Factory) Close() error {
	return multierr.Append(f.owned.Close(), f.targets.Close())
}

// Logger writes formatted lines to the target routed for its name.
type Logger struct {
	name    string
	level   atomic.Int32
	targets *handler.Targets
}

// NewWriterLogger creates a standalone logger at INFO writing text lines
// to w.
func NewWriterLogger(name string, w io.Writer) *Logger {
	target := consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{Writer: w})
	l := &Logger{name: name, targets: handler.NewTargets(target)}
	l.level.Store(int32(core.LevelInfo))
	return l
}

// Stderr creates a standalone INFO logger writing to stderr.
func Stderr(name string) *Logger {
	return NewWriterLogger(name, os.Stderr)
}

// Name returns the logger name
func (l *Logger) Name() string { return l.name }

// Level returns the current threshold
func (l *Logger) Level() core.Level { return core.Level(l.level.Load()) }

func (l *Logger) Debug(template string, args ...any) { l.log(core.LevelDebug, template, args) }
func (l *Logger) Info(template string, args ...any)  { l.log(core.LevelInfo, template, args) }
func (l *Logger) Warn(template string, args ...any)  { l.log(core.LevelWarn, template, args) }
func (l *Logger) Error(template string, args ...any) { l.log(core.LevelError, template, args) }

// Exception writes the logger name followed by err rendered with %+v.
func (l *Logger) Exception(err error) {
	if err == nil || !l.IsErrorEnabled() {
		return
	}
	entry := core.GetEntry()
	entry.Level = core.LevelError
	entry.LoggerName = l.name
	entry.Err = err
	l.emit(entry)
}

func (l *Logger) log(level core.Level, template string, args []any) {
	// Level check before any allocation
	if !l.Level().Enables(level) {
		return
	}
	entry := core.GetEntry()
	entry.Level = level
	entry.LoggerName = l.name
	entry.Message = core.Format(template, args...)
	l.emit(entry)
}

// emit hands the entry to the routed target. Write errors are counted by
// the target's statistics.
func (l *Logger) emit(entry *core.Entry) {
	_ = l.targets.Lookup(l.name).Handle(entry)
	core.PutEntry(entry)
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
