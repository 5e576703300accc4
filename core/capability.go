package core

// AnonymousLoggerName is the name of loggers created without a name.
const AnonymousLoggerName = ""

// Logger is the capability every backend provides.
//
// The Debug, Info, Warn and Error methods take a message template with
// "{0}"-style placeholders and the positional arguments substituted into
// it (see Format). Implementations must never panic on misconfiguration.
type Logger interface {
	// Name returns the stable name of the logger
	Name() string

	Debug(template string, args ...any)
	Info(template string, args ...any)
	Warn(template string, args ...any)
	Error(template string, args ...any)

	// Exception logs an error value on its own
	Exception(err error)

	IsDebugEnabled() bool
	IsInfoEnabled() bool
	IsWarnEnabled() bool
	IsErrorEnabled() bool

	// SetLevel sets the threshold from a facade level name. It reports
	// false and leaves the logger unchanged when the name is unknown.
	SetLevel(level string) bool
}

// Factory produces loggers for one binding.
type Factory interface {
	// Name returns the binding name the factory is registered under
	Name() string
	// New creates an anonymous logger
	New() Logger
	// Logger returns the logger with the given name, creating it if needed
	Logger(name string) Logger
}

// Enabled reports whether l currently emits operations at level.
func Enabled(l Logger, level Level) bool {
	switch level {
	case LevelDebug:
		return l.IsDebugEnabled()
	case LevelInfo:
		return l.IsInfoEnabled()
	case LevelWarn:
		return l.IsWarnEnabled()
	case LevelError:
		return l.IsErrorEnabled()
	default:
		return false
	}
}

// Log dispatches a templated message to the method matching level.
// LevelNone and unknown levels are ignored.
func Log(l Logger, level Level, template string, args ...any) {
	switch level {
	case LevelDebug:
		l.Debug(template, args...)
	case LevelInfo:
		l.Info(template, args...)
	case LevelWarn:
		l.Warn(template, args...)
	case LevelError:
		l.Error(template, args...)
	}
}
