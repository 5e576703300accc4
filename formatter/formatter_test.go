package formatter

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/philipp01105/logfacade/core"
)

func TestTextFormatter_Basic(t *testing.T) {
	f := NewTextFormatter(Config{})

	entry := &core.Entry{
		Time:    time.Date(2026, 2, 18, 13, 0, 0, 0, time.UTC),
		Level:   core.LevelInfo,
		Message: "test message",
	}

	result, err := f.Format(entry)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	if got := string(result); got != "I test message\n" {
		t.Errorf("Format() = %q, want %q", got, "I test message\n")
	}
}

func TestTextFormatter_PrintLevels(t *testing.T) {
	tests := []struct {
		printLevel PrintLevel
		level      core.Level
		want       string
	}{
		{PrintShort, core.LevelError, "E db down\n"},
		{PrintShort, core.LevelWarn, "W db down\n"},
		{PrintShort, core.LevelDebug, "D db down\n"},
		{PrintLong, core.LevelWarn, "WARNING db down\n"},
		{PrintLong, core.LevelInfo, "INFO db down\n"},
		{PrintNone, core.LevelError, "db down\n"},
		{PrintShort, core.Level(9), "X db down\n"},
	}

	for _, tt := range tests {
		t.Run(tt.printLevel.String()+"/"+tt.level.String(), func(t *testing.T) {
			f := NewTextFormatter(Config{PrintLevel: tt.printLevel})
			out, _ := f.Format(&core.Entry{Level: tt.level, Message: "db down"})
			if string(out) != tt.want {
				t.Errorf("Format() = %q, want %q", out, tt.want)
			}
		})
	}
}

func TestTextFormatter_LoggerNameAndTimestamp(t *testing.T) {
	f := NewTextFormatter(Config{TimestampFormat: "2006-01-02 15:04:05.000"})

	entry := &core.Entry{
		Time:       time.Date(2026, 2, 18, 13, 0, 0, 0, time.UTC),
		Level:      core.LevelWarn,
		LoggerName: "app.db",
		Message:    "slow query",
	}

	out, _ := f.Format(entry)
	want := "2026-02-18 13:00:00.000 W app.db slow query\n"
	if string(out) != want {
		t.Errorf("Format() = %q, want %q", out, want)
	}
}

func TestTextFormatter_Error(t *testing.T) {
	f := NewTextFormatter(Config{})

	t.Run("exception only", func(t *testing.T) {
		out, _ := f.Format(&core.Entry{Level: core.LevelError, LoggerName: "svc", Err: errors.New("boom")})
		if string(out) != "svc boom\n" {
			t.Errorf("Format() = %q, want %q", out, "svc boom\n")
		}
	})

	t.Run("message and error", func(t *testing.T) {
		out, _ := f.Format(&core.Entry{Level: core.LevelError, Message: "failed", Err: errors.New("boom")})
		if string(out) != "E failed\nboom\n" {
			t.Errorf("Format() = %q, want %q", out, "E failed\nboom\n")
		}
	})
}

func TestParsePrintLevel(t *testing.T) {
	for _, name := range []string{"none", "SHORT", " Long "} {
		if _, err := ParsePrintLevel(name); err != nil {
			t.Errorf("ParsePrintLevel(%q) error = %v", name, err)
		}
	}
	if _, err := ParsePrintLevel("medium"); err == nil {
		t.Error("ParsePrintLevel(medium) should fail")
	}
}

func TestJSONFormatter_Basic(t *testing.T) {
	f := NewJSONFormatter(Config{})

	entry := &core.Entry{
		Time:       time.Date(2026, 2, 18, 13, 0, 0, 0, time.UTC),
		Level:      core.LevelInfo,
		LoggerName: "app",
		Message:    "test \"quoted\" message",
	}

	result, err := f.Format(entry)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	// Verify it's valid JSON
	var data map[string]interface{}
	if err := json.Unmarshal(result, &data); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}

	if data["level"] != "INFO" {
		t.Errorf("Expected level 'INFO', got: %v", data["level"])
	}
	if data["logger"] != "app" {
		t.Errorf("Expected logger 'app', got: %v", data["logger"])
	}
	if data["message"] != "test \"quoted\" message" {
		t.Errorf("Expected quoted message, got: %v", data["message"])
	}
	if _, ok := data["error"]; ok {
		t.Error("Expected no error key")
	}
}

func TestJSONFormatter_WithError(t *testing.T) {
	f := NewJSONFormatter(Config{})

	result, _ := f.Format(&core.Entry{
		Time:  time.Now(),
		Level: core.LevelError,
		Err:   errors.New("line1\nline2"),
	})

	var data map[string]interface{}
	if err := json.Unmarshal(result, &data); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}
	if data["error"] != "line1\nline2" {
		t.Errorf("Expected error text, got: %v", data["error"])
	}
	if !strings.HasSuffix(string(result), "}\n") {
		t.Errorf("Expected newline terminated object, got: %q", result)
	}
}

func BenchmarkTextFormatter(b *testing.B) {
	f := NewTextFormatter(Config{})
	entry := &core.Entry{
		Time:       time.Now(),
		Level:      core.LevelInfo,
		LoggerName: "bench",
		Message:    "test message",
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = f.Format(entry)
	}
}

func BenchmarkJSONFormatter(b *testing.B) {
	f := NewJSONFormatter(Config{})
	entry := &core.Entry{
		Time:       time.Now(),
		Level:      core.LevelInfo,
		LoggerName: "bench",
		Message:    "test message",
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = f.Format(entry)
	}
}
