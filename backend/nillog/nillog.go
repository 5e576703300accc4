// Package nillog provides the NIL binding: loggers that drop every message.
package nillog

import "github.com/philipp01105/logfacade/core"

// Name is the binding name of the NIL factory.
const Name = "NIL"

// Logger discards all output. It reports every level as disabled.
type Logger struct{}

var shared = &Logger{}

// Name returns the anonymous logger name; all NIL loggers are the same.
func (*Logger) Name() string { return core.AnonymousLoggerName }

func (*Logger) Debug(string, ...any) {}
func (*Logger) Info(string, ...any)  {}
func (*Logger) Warn(string, ...any)  {}
func (*Logger) Error(string, ...any) {}
func (*Logger) Exception(error)      {}

func (*Logger) IsDebugEnabled() bool { return false }
func (*Logger) IsInfoEnabled() bool  { return false }
func (*Logger) IsWarnEnabled() bool  { return false }
func (*Logger) IsErrorEnabled() bool { return false }

// SetLevel validates level and otherwise has no effect.
func (*Logger) SetLevel(level string) bool {
	_, ok := core.ParseLevel(level)
	return ok
}

// Factory hands out the shared NIL logger.
type Factory struct{}

// New returns a NIL factory.
func New() *Factory { return &Factory{} }

// Name returns "NIL".
func (*Factory) Name() string { return Name }

// New returns the shared logger.
func (*Factory) New() core.Logger { return shared }

// Logger returns the shared logger regardless of name.
func (*Factory) Logger(string) core.Logger { return shared }
