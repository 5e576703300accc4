package logger

import (
	"sort"
	"sync"

	"github.com/philipp01105/logfacade/core"
)

// Registry maps binding names to logger factories. It is safe for
// concurrent use.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]core.Factory
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]core.Factory)}
}

// Register adds f under f.Name(), replacing any factory registered under
// the same name. A nil factory is ignored.
func (r *Registry) Register(f core.Factory) {
	if f == nil {
		return
	}
	r.mu.Lock()
	r.factories[f.Name()] = f
	r.mu.Unlock()
}

// Lookup returns the factory registered under name, or nil.
func (r *Registry) Lookup(name string) core.Factory {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.factories[name]
}

// Deregister removes the factory registered under name.
func (r *Registry) Deregister(name string) {
	r.mu.Lock()
	delete(r.factories, name)
	r.mu.Unlock()
}

// Clear removes every factory.
func (r *Registry) Clear() {
	r.mu.Lock()
	r.factories = make(map[string]core.Factory)
	r.mu.Unlock()
}

// External returns the registered factories that are not built-in,
// sorted by name.
func (r *Registry) External() []core.Factory {
	r.mu.RLock()
	out := make([]core.Factory, 0, len(r.factories))
	for name, f := range r.factories {
		if !IsBuiltIn(name) {
			out = append(out, f)
		}
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out
}

// Names returns every registered binding name, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	out := make([]string, 0, len(r.factories))
	for name := range r.factories {
		out = append(out, name)
	}
	r.mu.RUnlock()

	sort.Strings(out)
	return out
}

// all returns a snapshot of the registered factories.
func (r *Registry) all() []core.Factory {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]core.Factory, 0, len(r.factories))
	for _, f := range r.factories {
		out = append(out, f)
	}
	return out
}
