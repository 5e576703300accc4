package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipp01105/logfacade/backend/memlog"
	"github.com/philipp01105/logfacade/backend/nillog"
	"github.com/philipp01105/logfacade/core"
)

// namedFactory is a MEM factory registered under another name.
type namedFactory struct {
	*memlog.Factory
	name string
}

func newNamedFactory(name string) *namedFactory {
	return &namedFactory{Factory: memlog.New(), name: name}
}

func (f *namedFactory) Name() string { return f.name }

func TestRegistry_RegisterLookup(t *testing.T) {
	r := NewRegistry()
	f := newNamedFactory("ZAP")

	r.Register(f)
	assert.Same(t, f, r.Lookup("ZAP"))
	assert.Nil(t, r.Lookup("zap"), "lookup is case-sensitive")
	assert.Nil(t, r.Lookup("MISSING"))

	r.Register(nil)
	assert.Equal(t, []string{"ZAP"}, r.Names())

	replacement := newNamedFactory("ZAP")
	r.Register(replacement)
	assert.Same(t, replacement, r.Lookup("ZAP"), "last registration wins")
}

func TestRegistry_DeregisterClear(t *testing.T) {
	r := NewRegistry()
	r.Register(newNamedFactory("A"))
	r.Register(newNamedFactory("B"))

	r.Deregister("A")
	r.Deregister("NOT-THERE")
	assert.Equal(t, []string{"B"}, r.Names())

	r.Clear()
	assert.Empty(t, r.Names())
	assert.Nil(t, r.Lookup("B"))
}

func TestRegistry_External(t *testing.T) {
	r := NewRegistry()
	r.Register(nillog.New())
	r.Register(newNamedFactory("stdout")) // built-in check ignores case
	r.Register(newNamedFactory("ZEROLOG"))
	r.Register(newNamedFactory("LOGRUS"))

	external := r.External()
	require.Len(t, external, 2)
	assert.Equal(t, "LOGRUS", external[0].Name())
	assert.Equal(t, "ZEROLOG", external[1].Name())
}

func TestIsBuiltIn(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"NIL", true},
		{"STDOUT", true},
		{"SLOG", true},
		{"Stdout", true},
		{"nil", true},
		{"MEM", false},
		{"ZAP", false},
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsBuiltIn(tt.name), tt.name)
	}
	assert.ElementsMatch(t, []string{NIL, STDOUT, SLOG}, BuiltInNames())
}

var _ core.Factory = (*namedFactory)(nil)
