package streamlog

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipp01105/logfacade/core"
	"github.com/philipp01105/logfacade/formatter"
	"github.com/philipp01105/logfacade/handler/consolehandler"
)

func TestLogger_TextOutput(t *testing.T) {
	var buf bytes.Buffer
	f := New(Options{Writer: &buf})
	l := f.Logger("app")

	l.Info("value is {0}", 42)
	l.Debug("hidden")
	l.Warn("careful")

	assert.Equal(t, "I app value is 42\nW app careful\n", buf.String())
}

func TestLogger_PrintLevels(t *testing.T) {
	tests := []struct {
		name  string
		print formatter.PrintLevel
		want  string
	}{
		{"short", formatter.PrintShort, "E svc failed\n"},
		{"long", formatter.PrintLong, "ERROR svc failed\n"},
		{"none", formatter.PrintNone, "svc failed\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			New(Options{Writer: &buf, PrintLevel: tt.print}).Logger("svc").Error("failed")
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestLogger_Exception(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Writer: &buf}).Logger("app")

	l.Exception(errors.New("boom"))
	l.Exception(nil)
	assert.Equal(t, "app boom\n", buf.String())

	buf.Reset()
	require.True(t, l.SetLevel("NONE"))
	l.Exception(errors.New("boom"))
	assert.Empty(t, buf.String())
}

func TestLogger_Levels(t *testing.T) {
	f := New(Options{Writer: &bytes.Buffer{}, Level: "warning"})
	l := f.Logger("x")

	assert.True(t, l.IsErrorEnabled())
	assert.True(t, l.IsWarnEnabled())
	assert.False(t, l.IsInfoEnabled())

	assert.False(t, l.SetLevel("VERBOSE"))
	assert.False(t, l.IsInfoEnabled(), "invalid level must not change the threshold")

	require.True(t, l.SetLevel("DEBUG"))
	for _, level := range []core.Level{core.LevelError, core.LevelWarn, core.LevelInfo, core.LevelDebug} {
		assert.True(t, core.Enabled(l, level), level.String())
	}

	// Unknown option level falls back to INFO
	l2 := New(Options{Writer: &bytes.Buffer{}, Level: "loud"}).Logger("y")
	assert.True(t, l2.IsInfoEnabled())
	assert.False(t, l2.IsDebugEnabled())
}

func TestFactory_LoggerCache(t *testing.T) {
	f := New(Options{Writer: &bytes.Buffer{}})

	assert.Same(t, f.Logger("a"), f.Logger("a"))
	assert.NotSame(t, f.Logger("a"), f.Logger("b"))
	assert.NotSame(t, f.New(), f.New())
	assert.Equal(t, core.AnonymousLoggerName, f.New().Name())
	assert.Equal(t, Name, f.Name())
}

func TestFactory_HierarchicalTargets(t *testing.T) {
	var def, db bytes.Buffer
	f := New(Options{Writer: &def})
	f.Targets().Register("app.db", consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{Writer: &db}))

	f.Logger("app.db.pool").Info("pooled")
	f.Logger("app.http").Info("served")

	assert.Equal(t, "I app.db.pool pooled\n", db.String())
	assert.Equal(t, "I app.http served\n", def.String())
}

func TestFactory_OutputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "app.log")
	var console bytes.Buffer
	f := New(Options{Writer: &console, OutputFile: path})

	f.Logger("app").Info("to file")
	require.NoError(t, f.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "I app to file\n", string(data))
	assert.Empty(t, console.String())
}

func TestFactory_Tee(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	var console bytes.Buffer
	f := New(Options{Writer: &console, OutputFile: path, Tee: true})

	f.Logger("app").Info("both")
	assert.Equal(t, uint64(2), f.Stats().ProcessedTotal)
	require.NoError(t, f.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "I app both\n", string(data))
	assert.Equal(t, "I app both\n", console.String())
}

func TestFactory_OutputFileFailureDegradesToConsole(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0644))

	var console bytes.Buffer
	f := New(Options{Writer: &console, OutputFile: filepath.Join(blocker, "app.log")})
	f.Logger("app").Info("still logged")

	assert.Equal(t, "I app still logged\n", console.String())
}

func TestFactory_JSONAndTimestamp(t *testing.T) {
	var buf bytes.Buffer
	f := New(Options{Writer: &buf, Format: "JSON"})
	f.Logger("app").Info("hi")
	assert.Contains(t, buf.String(), `"logger":"app"`)
	assert.Contains(t, buf.String(), `"message":"hi"`)

	buf.Reset()
	f = New(Options{Writer: &buf, TimestampFormat: "2006"})
	f.Logger("app").Info("hi")
	assert.Regexp(t, `^\d{4} I app hi\n$`, buf.String())
}

func TestNewWriterLogger(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriterLogger("diag", &buf)
	l.Debug("hidden")
	l.Info("shown")
	assert.Equal(t, "I diag shown\n", buf.String())
}
