package benchmark

import (
	"github.com/philipp01105/logfacade/backend/streamlog"
	"github.com/philipp01105/logfacade/core"
	"github.com/philipp01105/logfacade/handler"
)

// noopHandler drops every entry after touching the message. The caller
// owns the entry and returns it to the pool.
type noopHandler struct{}

func newNoopHandler() handler.Handler {
	return &noopHandler{}
}

func (h *noopHandler) Handle(e *core.Entry) error {
	_ = len(e.Message)
	return nil
}

func (h *noopHandler) Close() error {
	return nil
}

// newNoopFactory returns a STDOUT factory whose root target is a
// noopHandler, so only facade overhead is measured.
func newNoopFactory(level string) *streamlog.Factory {
	targets := handler.NewTargets(nil)
	targets.Register(handler.RootName, newNoopHandler())
	return streamlog.New(streamlog.Options{Level: level, Targets: targets})
}
