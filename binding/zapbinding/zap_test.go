package zapbinding

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/logfacade/config"
	"github.com/philipp01105/logfacade/core"
	"github.com/philipp01105/logfacade/logger"
)

func newBufferFactory(buf *bytes.Buffer) *Factory {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = ""
	return New(
		WithEncoder(zapcore.NewJSONEncoder(encCfg)),
		WithWriteSyncer(zapcore.AddSync(buf)),
	)
}

func TestLogger_Output(t *testing.T) {
	var buf bytes.Buffer
	l := newBufferFactory(&buf).Logger("app")

	l.Info("value is {0}", 42)
	l.Debug("hidden")

	assert.JSONEq(t, `{"level":"info","logger":"app","msg":"value is 42"}`, buf.String())
}

func TestLogger_Levels(t *testing.T) {
	tests := []struct {
		level string
		zap   zapcore.Level
	}{
		{"DEBUG", zapcore.DebugLevel},
		{"INFO", zapcore.InfoLevel},
		{"WARNING", zapcore.WarnLevel},
		{"ERROR", zapcore.ErrorLevel},
		{"NONE", OffLevel},
	}
	f := New(WithWriteSyncer(zapcore.AddSync(&bytes.Buffer{})))
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			l := f.Logger(tt.level).(*Logger)
			require.True(t, l.SetLevel(tt.level))
			assert.Equal(t, tt.zap, l.atom.Level())
			assert.Equal(t, tt.level != "NONE", l.IsErrorEnabled())
		})
	}

	l := f.Logger("x")
	assert.False(t, l.SetLevel("SEVERE"))
	assert.True(t, l.IsInfoEnabled())
	assert.False(t, l.IsDebugEnabled())
}

func TestLogger_NoneSilencesEverything(t *testing.T) {
	var buf bytes.Buffer
	l := newBufferFactory(&buf).Logger("quiet")
	require.True(t, l.SetLevel("NONE"))

	l.Error("e")
	l.Exception(errors.New("boom"))
	assert.Empty(t, buf.String())
}

func TestLogger_Exception(t *testing.T) {
	var buf bytes.Buffer
	l := newBufferFactory(&buf).Logger("app")

	l.Exception(errors.New("boom"))
	l.Exception(nil)
	assert.JSONEq(t, `{"level":"error","logger":"app","msg":"exception","error":"boom"}`, buf.String())
}

func TestFactory(t *testing.T) {
	f := New()
	assert.Equal(t, Name, f.Name())
	assert.Same(t, f.Logger("a"), f.Logger("a"))
	assert.NotSame(t, f.New(), f.New())
	assert.Equal(t, core.AnonymousLoggerName, f.New().Name())
	assert.NotNil(t, f.Logger("a").(*Logger).Zap())
}

func TestFromConfig_OutputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "zap.log")
	cfg := config.Default()
	cfg.OutputFile = path
	cfg.Format = config.FormatJSON
	cfg.Level = "DEBUG"

	f := New(FromConfig(cfg)...)
	f.Logger("app").Debug("to file")
	require.NoError(t, f.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"to file"`)
	assert.Contains(t, string(data), `"level":"debug"`)
}

func TestRegisteredInDefaultCatalog(t *testing.T) {
	assert.Contains(t, logger.DefaultCatalog.Bindings(), Name)

	p := logger.NewProvider(logger.WithConfig(config.Default()))
	t.Cleanup(func() { p.Close() })
	assert.Equal(t, Name, p.DefaultName(), "sole external binding becomes the default")
	assert.Equal(t, Name, p.DefaultFactory().Name())
}
