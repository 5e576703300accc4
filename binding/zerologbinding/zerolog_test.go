package zerologbinding

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipp01105/logfacade/config"
	"github.com/philipp01105/logfacade/core"
	"github.com/philipp01105/logfacade/logger"
)

func TestLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	l := New(WithWriter(&buf)).Logger("app")

	l.Warn("value is {0}", 42)
	l.Debug("hidden")

	assert.JSONEq(t, `{"level":"warn","logger":"app","message":"value is 42"}`, buf.String())
}

func TestLogger_Console(t *testing.T) {
	var buf bytes.Buffer
	l := New(WithWriter(&buf), WithConsole()).Logger("app")

	l.Info("hello")
	assert.Contains(t, buf.String(), "INF")
	assert.Contains(t, buf.String(), "hello")
	assert.Contains(t, buf.String(), "logger=app")
}

func TestLogger_Levels(t *testing.T) {
	f := New(WithWriter(&bytes.Buffer{}))
	tests := []struct {
		level string
		want  zerolog.Level
	}{
		{"DEBUG", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"WARNING", zerolog.WarnLevel},
		{"ERROR", zerolog.ErrorLevel},
		{"NONE", zerolog.Disabled},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			l := f.Logger(tt.level).(*Logger)
			require.True(t, l.SetLevel(tt.level))
			assert.Equal(t, tt.want, l.Zerolog().GetLevel())
		})
	}

	l := f.Logger("x")
	assert.False(t, l.SetLevel("ALL"))
	assert.Equal(t, core.LevelInfo, l.(*Logger).Level())
}

func TestLogger_Exception(t *testing.T) {
	var buf bytes.Buffer
	l := New(WithWriter(&buf)).Logger("app")

	l.Exception(errors.New("boom"))
	l.Exception(nil)
	assert.JSONEq(t, `{"level":"error","logger":"app","error":"boom","message":"exception"}`, buf.String())

	buf.Reset()
	require.True(t, l.SetLevel("NONE"))
	l.Error("dropped")
	l.Exception(errors.New("dropped"))
	assert.Empty(t, buf.String())
}

func TestFactory(t *testing.T) {
	var buf bytes.Buffer
	f := New(WithWriter(&buf), WithLevel(core.LevelDebug))
	assert.Equal(t, Name, f.Name())
	assert.Same(t, f.Logger("a"), f.Logger("a"))

	anon := f.New()
	anon.Debug("anon")
	assert.JSONEq(t, `{"level":"debug","message":"anon"}`, buf.String())
}

func TestFromConfig_OutputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "zerolog.log")
	cfg := config.Default()
	cfg.OutputFile = path
	cfg.Format = config.FormatJSON

	f := New(FromConfig(cfg)...)
	f.Logger("app").Info("to file")
	require.NoError(t, f.Close())
	require.NoError(t, f.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"to file"`)
	assert.Contains(t, string(data), `"time"`)
}

func TestRegisteredInDefaultCatalog(t *testing.T) {
	assert.Contains(t, logger.DefaultCatalog.Bindings(), Name)
}
