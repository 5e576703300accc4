package nillog

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/philipp01105/logfacade/core"
)

func TestFactory(t *testing.T) {
	f := New()
	assert.Equal(t, Name, f.Name())
	assert.Same(t, f.New(), f.Logger("a"))
	assert.Same(t, f.Logger("a"), f.Logger("b"))
}

func TestLogger_DropsEverything(t *testing.T) {
	l := New().Logger("app")

	assert.NotPanics(t, func() {
		l.Debug("x {0}", 1)
		l.Info("x")
		l.Warn("x")
		l.Error("x")
		l.Exception(errors.New("boom"))
		l.Exception(nil)
	})

	for _, level := range core.Levels() {
		assert.False(t, core.Enabled(l, level), level.String())
	}
}

func TestLogger_SetLevel(t *testing.T) {
	l := New().New()

	assert.True(t, l.SetLevel("DEBUG"))
	assert.True(t, l.SetLevel("none"))
	assert.False(t, l.SetLevel("VERBOSE"))
	assert.False(t, l.IsDebugEnabled())
}
