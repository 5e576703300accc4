package logger

import (
	"sync"

	"github.com/philipp01105/logfacade/config"
	"github.com/philipp01105/logfacade/core"
)

// Initializer nominates a default binding. Among all initializers known
// to a provider, the one with the highest Priority wins.
type Initializer interface {
	Priority() int
	BindingName() string
}

// staticInitializer is an Initializer with fixed values.
type staticInitializer struct {
	name     string
	priority int
}

func (s staticInitializer) Priority() int       { return s.priority }
func (s staticInitializer) BindingName() string { return s.name }

// NewInitializer returns an Initializer nominating name at priority.
func NewInitializer(name string, priority int) Initializer {
	return staticInitializer{name: name, priority: priority}
}

// Constructor builds a binding's factory from the facade configuration.
type Constructor func(cfg config.Config) core.Factory

// Catalog is the build-time list of bindings and initializers a provider
// discovers on Initialize.
type Catalog struct {
	mu           sync.RWMutex
	constructors []namedConstructor
	initializers []Initializer
}

type namedConstructor struct {
	name string
	fn   Constructor
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{}
}

// DefaultCatalog is filled by binding packages from their init functions
// and used by providers created without WithCatalog.
var DefaultCatalog = NewCatalog()

// AddBinding adds a factory constructor. Adding a name again replaces the
// earlier constructor.
func (c *Catalog) AddBinding(name string, fn Constructor) {
	if fn == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.constructors {
		if c.constructors[i].name == name {
			c.constructors[i].fn = fn
			return
		}
	}
	c.constructors = append(c.constructors, namedConstructor{name: name, fn: fn})
}

// AddInitializer adds an initializer. Initializers are consulted in the
// order they were added.
func (c *Catalog) AddInitializer(i Initializer) {
	if i == nil {
		return
	}
	c.mu.Lock()
	c.initializers = append(c.initializers, i)
	c.mu.Unlock()
}

// Bindings returns the names of the catalogued bindings in insertion order.
func (c *Catalog) Bindings() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]string, len(c.constructors))
	for i, nc := range c.constructors {
		out[i] = nc.name
	}
	return out
}

// Initializers returns the catalogued initializers in insertion order.
func (c *Catalog) Initializers() []Initializer {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]Initializer, len(c.initializers))
	copy(out, c.initializers)
	return out
}

// factories constructs every catalogued binding. Constructors returning
// nil are skipped.
func (c *Catalog) factories(cfg config.Config) []core.Factory {
	c.mu.RLock()
	constructors := make([]namedConstructor, len(c.constructors))
	copy(constructors, c.constructors)
	c.mu.RUnlock()

	out := make([]core.Factory, 0, len(constructors))
	for _, nc := range constructors {
		if f := nc.fn(cfg); f != nil {
			out = append(out, f)
		}
	}
	return out
}

// RegisterBinding adds a factory constructor to DefaultCatalog.
func RegisterBinding(name string, fn Constructor) {
	DefaultCatalog.AddBinding(name, fn)
}

// RegisterInitializer adds an initializer to DefaultCatalog.
func RegisterInitializer(i Initializer) {
	DefaultCatalog.AddInitializer(i)
}
