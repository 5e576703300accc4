package logger

import (
	"io"
	"os"
	"sync"
	"sync/atomic"

	"github.com/philipp01105/logfacade/backend/streamlog"
	"github.com/philipp01105/logfacade/core"
)

// DeferredFactoryName is the reserved name reported by DeferredFactory.
// Never register a binding under it.
const DeferredFactoryName = "INTERNAL-DO-NOT-REFER-TO"

// pendingOutput is where deferred loggers write before their binding
// appears. Tests replace it.
var pendingOutput io.Writer = os.Stdout

// DeferredFactory stands in for a binding that is not registered yet.
type DeferredFactory struct {
	desired  string
	registry *Registry
}

// NewDeferredFactory returns a factory whose loggers wait for desired to
// appear in registry.
func NewDeferredFactory(desired string, registry *Registry) *DeferredFactory {
	return &DeferredFactory{desired: desired, registry: registry}
}

// Name returns DeferredFactoryName.
func (f *DeferredFactory) Name() string { return DeferredFactoryName }

// Desired returns the binding name the factory waits for.
func (f *DeferredFactory) Desired() string { return f.desired }

// New creates an anonymous deferred logger.
func (f *DeferredFactory) New() core.Logger {
	return newDeferredLogger(f.desired, core.AnonymousLoggerName, f.registry)
}

// Logger creates a deferred logger with the given name.
func (f *DeferredFactory) Logger(name string) core.Logger {
	return newDeferredLogger(f.desired, name, f.registry)
}

// delegateBox boxes a logger for atomic.Pointer.
type delegateBox struct {
	core.Logger
}

// DeferredLogger writes to the console until its desired binding is
// registered, then forwards to a logger of that binding for the rest of
// its life. The level set on it is carried over on the switch.
type DeferredLogger struct {
	desired  string
	name     string
	registry *Registry

	mu    sync.Mutex // serializes resolution and level changes
	level core.Level

	current  atomic.Pointer[delegateBox]
	resolved atomic.Bool
}

func newDeferredLogger(desired, name string, registry *Registry) *DeferredLogger {
	l := &DeferredLogger{
		desired:  desired,
		name:     name,
		registry: registry,
		level:    core.LevelInfo,
	}
	l.current.Store(&delegateBox{streamlog.NewWriterLogger(name, pendingOutput)})
	return l
}

// delegate returns the logger calls are forwarded to, switching to the
// desired binding first if it has been registered since the last call.
func (l *DeferredLogger) delegate() core.Logger {
	if !l.resolved.Load() {
		l.tryResolve()
	}
	return l.current.Load().Logger
}

func (l *DeferredLogger) tryResolve() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.resolved.Load() {
		return
	}
	f := l.registry.Lookup(l.desired)
	if f == nil || f.Name() != l.desired {
		return
	}

	var d core.Logger
	if l.name == core.AnonymousLoggerName {
		d = f.New()
	} else {
		d = f.Logger(l.name)
	}
	d.SetLevel(l.level.String())

	l.current.Store(&delegateBox{d})
	l.resolved.Store(true)
}

// Resolved reports whether the logger has switched to its desired binding.
func (l *DeferredLogger) Resolved() bool { return l.resolved.Load() }

// Desired returns the binding name the logger waits for.
func (l *DeferredLogger) Desired() string { return l.desired }

// Name returns the logger name
func (l *DeferredLogger) Name() string { return l.name }

func (l *DeferredLogger) Debug(template string, args ...any) { l.delegate().Debug(template, args...) }
func (l *DeferredLogger) Info(template string, args ...any)  { l.delegate().Info(template, args...) }
func (l *DeferredLogger) Warn(template string, args ...any)  { l.delegate().Warn(template, args...) }
func (l *DeferredLogger) Error(template string, args ...any) { l.delegate().Error(template, args...) }
func (l *DeferredLogger) Exception(err error)                { l.delegate().Exception(err) }

func (l *DeferredLogger) IsDebugEnabled() bool { return l.delegate().IsDebugEnabled() }
func (l *DeferredLogger) IsInfoEnabled() bool  { return l.delegate().IsInfoEnabled() }
func (l *DeferredLogger) IsWarnEnabled() bool  { return l.delegate().IsWarnEnabled() }
func (l *DeferredLogger) IsErrorEnabled() bool { return l.delegate().IsErrorEnabled() }

// SetLevel remembers the level for the eventual switch and applies it to
// the current delegate.
func (l *DeferredLogger) SetLevel(level string) bool {
	lv, ok := core.ParseLevel(level)
	if !ok {
		return false
	}
	l.delegate()

	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = lv
	l.current.Load().SetLevel(lv.String())
	return true
}
