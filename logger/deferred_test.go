package logger

import (
	"bytes"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipp01105/logfacade/backend/memlog"
	"github.com/philipp01105/logfacade/core"
)

// capturePending redirects pending deferred output for the test.
func capturePending(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	old := pendingOutput
	pendingOutput = &buf
	t.Cleanup(func() { pendingOutput = old })
	return &buf
}

func TestDeferredLogger_PendingWritesToConsole(t *testing.T) {
	out := capturePending(t)
	r := NewRegistry()

	l := NewDeferredFactory("MEM", r).Logger("app").(*DeferredLogger)
	l.Info("waiting {0}", 1)
	l.Debug("hidden at INFO")

	assert.False(t, l.Resolved())
	assert.Equal(t, "MEM", l.Desired())
	assert.Equal(t, "app", l.Name())
	assert.Equal(t, "I app waiting 1\n", out.String())
	assert.True(t, l.IsInfoEnabled())
	assert.False(t, l.IsDebugEnabled())
}

func TestDeferredLogger_UpgradesOnRegistration(t *testing.T) {
	out := capturePending(t)
	r := NewRegistry()
	l := NewDeferredFactory("MEM", r).Logger("app").(*DeferredLogger)

	l.Info("before")
	mem := memlog.New()
	assert.Zero(t, mem.Get("app").Len(), "nothing reaches the binding before it is registered")

	r.Register(mem)
	l.Info("after")

	assert.True(t, l.Resolved())
	records := mem.Get("app").Records()
	require.Len(t, records, 1)
	assert.Equal(t, "after", records[0].Message)
	assert.Equal(t, "I app before\n", out.String())

	// Resolution is permanent
	r.Deregister("MEM")
	l.Warn("still mem")
	assert.Equal(t, 2, mem.Get("app").Len())
	assert.True(t, l.Resolved())
}

func TestDeferredLogger_LevelCarryOver(t *testing.T) {
	capturePending(t)
	r := NewRegistry()
	l := NewDeferredFactory("MEM", r).Logger("app")

	require.True(t, l.SetLevel("DEBUG"))
	assert.True(t, l.IsDebugEnabled(), "level applies to the pending delegate")

	mem := memlog.New()
	r.Register(mem)

	l.Debug("debug after upgrade")
	assert.Equal(t, core.LevelDebug, mem.Get("app").Level())
	assert.Len(t, mem.Get("app").FindContaining("debug after upgrade"), 1)

	require.True(t, l.SetLevel("ERROR"))
	assert.Equal(t, core.LevelError, mem.Get("app").Level(), "level changes reach the resolved delegate")
}

func TestDeferredLogger_InvalidLevel(t *testing.T) {
	capturePending(t)
	r := NewRegistry()
	l := NewDeferredFactory("MEM", r).Logger("app")

	assert.False(t, l.SetLevel("LOUD"))
	assert.False(t, l.SetLevel(""))
	assert.True(t, l.IsInfoEnabled())
	assert.False(t, l.IsDebugEnabled())

	mem := memlog.New()
	r.Register(mem)
	l.Info("x")
	assert.Equal(t, core.LevelInfo, mem.Get("app").Level())
}

func TestDeferredLogger_Anonymous(t *testing.T) {
	capturePending(t)
	r := NewRegistry()
	f := NewDeferredFactory("MEM", r)
	l := f.New().(*DeferredLogger)
	assert.Equal(t, core.AnonymousLoggerName, l.Name())

	r.Register(memlog.New())
	l.Error("anon")
	assert.True(t, l.Resolved())
}

func TestDeferredLogger_Exception(t *testing.T) {
	out := capturePending(t)
	r := NewRegistry()
	l := NewDeferredFactory("MEM", r).Logger("app")

	l.Exception(errors.New("early"))
	assert.Equal(t, "app early\n", out.String())

	mem := memlog.New()
	r.Register(mem)
	err := errors.New("late")
	l.Exception(err)
	require.Equal(t, 1, mem.Get("app").Len())
	assert.ErrorIs(t, mem.Get("app").Records()[0].Err, err)
}

func TestDeferredFactory(t *testing.T) {
	f := NewDeferredFactory("ZAP", NewRegistry())
	assert.Equal(t, DeferredFactoryName, f.Name())
	assert.Equal(t, "INTERNAL-DO-NOT-REFER-TO", f.Name())
	assert.Equal(t, "ZAP", f.Desired())
}

func TestDeferredLogger_ConcurrentUpgrade(t *testing.T) {
	capturePending(t)
	r := NewRegistry()
	l := NewDeferredFactory("MEM", r).Logger("app")
	mem := memlog.New()

	var wg sync.WaitGroup
	start := make(chan struct{})
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			for j := 0; j < 200; j++ {
				l.Info("tick")
				l.IsDebugEnabled()
			}
		}()
	}
	close(start)
	r.Register(mem)
	wg.Wait()

	l.Info("final")
	assert.True(t, l.(*DeferredLogger).Resolved())
	assert.NotEmpty(t, mem.Get("app").FindContaining("final"))
	assert.LessOrEqual(t, mem.Get("app").Len(), 8*200+1)
}
