package logger

import (
	"sync"

	"github.com/philipp01105/logfacade/core"
)

var (
	defaultProvider *Provider
	defaultMu       sync.RWMutex
)

// Default returns the process-wide provider, creating it on first use.
// Bindings imported for their side effects are discovered at that point.
func Default() *Provider {
	defaultMu.RLock()
	p := defaultProvider
	defaultMu.RUnlock()
	if p != nil {
		return p
	}

	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultProvider == nil {
		defaultProvider = NewProvider()
	}
	return defaultProvider
}

// SetDefault replaces the process-wide provider.
func SetDefault(p *Provider) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultProvider = p
}

// Package-level convenience functions using the default provider

// Factory returns the factory registered under name, or a deferred one.
func Factory(name string) core.Factory {
	return Default().Factory(name)
}

// DefaultFactory returns the factory of the default binding.
func DefaultFactory() core.Factory {
	return Default().DefaultFactory()
}

// Get returns the named logger of the default binding.
func Get(name string) core.Logger {
	return Default().Logger(name)
}

// For returns a logger named after the type of v.
func For(v any) core.Logger {
	return Default().LoggerOf(v)
}

// GetLeveled returns the named logger wrapped for printf-style logging.
func GetLeveled(name string) *Leveled {
	return Default().Leveled(name)
}

// Register adds a binding to the default provider.
func Register(f core.Factory) {
	Default().Register(f)
}

// Deregister removes a binding from the default provider.
func Deregister(name string) {
	Default().Deregister(name)
}

// DefaultName returns the default binding name.
func DefaultName() string {
	return Default().DefaultName()
}

// SetDefaultName overrides the default binding name; "" restores STDOUT.
func SetDefaultName(name string) {
	Default().SetDefaultName(name)
}

// Initialize re-initializes the default provider.
func Initialize() {
	Default().Initialize()
}

// Reset re-resolves the default binding name.
func Reset() {
	Default().Reset()
}
