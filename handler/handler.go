package handler

import "github.com/philipp01105/logfacade/core"

// Handler defines the interface for output targets
type Handler interface {
	// Handle formats and writes a log entry
	Handle(entry *core.Entry) error

	// Close closes the handler and releases resources
	Close() error
}

// StatsProvider is implemented by handlers that track write statistics
type StatsProvider interface {
	Stats() Snapshot
}
