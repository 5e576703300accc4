package handler

import (
	"strings"
	"sync"

	"go.uber.org/multierr"
)

// RootName is the logger name of the root target.
const RootName = ""

// Targets maps logger names to output handlers with dotted-name
// inheritance.
type Targets struct {
	mu       sync.RWMutex
	targets  map[string]Handler
	fallback Handler
}

// NewTargets creates an empty target registry that resolves to fallback
// when no registered name matches.
func NewTargets(fallback Handler) *Targets {
	return &Targets{
		targets:  make(map[string]Handler),
		fallback: fallback,
	}
}

// Register routes loggerName and its descendants to h. A nil handler is
// ignored.
func (t *Targets) Register(loggerName string, h Handler) {
	if h == nil {
		return
	}
	t.mu.Lock()
	t.targets[loggerName] = h
	t.mu.Unlock()
}

// Deregister removes the target registered for exactly loggerName.
func (t *Targets) Deregister(loggerName string) {
	t.mu.Lock()
	delete(t.targets, loggerName)
	t.mu.Unlock()
}

// Clear removes all registered targets. The fallback is kept.
func (t *Targets) Clear() {
	t.mu.Lock()
	t.targets = make(map[string]Handler)
	t.mu.Unlock()
}

// Fallback returns the handler used when no registered name matches.
func (t *Targets) Fallback() Handler {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.fallback
}

// SetFallback replaces the fallback handler. A nil handler is ignored.
func (t *Targets) SetFallback(h Handler) {
	if h == nil {
		return
	}
	t.mu.Lock()
	t.fallback = h
	t.mu.Unlock()
}

// Lookup returns the handler for loggerName, walking up the dotted name
// ("a.b.c" -> "a.b" -> "a" -> root) before using the fallback.
func (t *Targets) Lookup(loggerName string) Handler {
	t.mu.RLock()
	defer t.mu.RUnlock()

	name := loggerName
	for {
		if h, ok := t.targets[name]; ok {
			return h
		}
		if name == RootName {
			return t.fallback
		}
		if i := strings.LastIndexByte(name, '.'); i > 0 {
			name = name[:i]
		} else {
			name = RootName
		}
	}
}

// Close closes every registered target once and removes it. The fallback
// is left open; it belongs to whoever supplied it.
func (t *Targets) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	var err error
	seen := make(map[Handler]struct{}, len(t.targets))
	for _, h := range t.targets {
		if _, ok := seen[h]; ok || h == t.fallback {
			continue
		}
		seen[h] = struct{}{}
		err = multierr.Append(err, h.Close())
	}
	t.targets = make(map[string]Handler)
	return err
}
