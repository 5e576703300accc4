package filehandler

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/philipp01105/logfacade/core"
)

func writeEntry(t *testing.T, h *FileHandler, msg string) {
	t.Helper()
	entry := core.GetEntry()
	defer core.PutEntry(entry)
	entry.Level = core.LevelInfo
	entry.LoggerName = "app"
	entry.Message = msg
	if err := h.Handle(entry); err != nil {
		t.Fatalf("Handle() error = %v", err)
	}
}

func TestFileHandler_CreatesDirectory(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "deeper", "app.log")

	h, err := NewFileHandler(FileConfig{Filename: path})
	if err != nil {
		t.Fatalf("NewFileHandler() error = %v", err)
	}
	writeEntry(t, h, "hello")
	if err := h.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(data) != "I app hello\n" {
		t.Errorf("Unexpected file content: %q", data)
	}
}

func TestFileHandler_Appends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	if err := os.WriteFile(path, []byte("existing\n"), 0644); err != nil {
		t.Fatal(err)
	}

	h, err := NewFileHandler(FileConfig{Filename: path})
	if err != nil {
		t.Fatalf("NewFileHandler() error = %v", err)
	}
	writeEntry(t, h, "first")
	writeEntry(t, h, "second")
	h.Close()

	data, _ := os.ReadFile(path)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 {
		t.Fatalf("Expected 3 lines, got %d: %q", len(lines), data)
	}
	if lines[0] != "existing" {
		t.Errorf("Expected existing content to be kept, got %q", lines[0])
	}
	if h.Stats().ProcessedTotal != 2 {
		t.Errorf("Expected 2 processed entries, got %d", h.Stats().ProcessedTotal)
	}
}

func TestFileHandler_Errors(t *testing.T) {
	if _, err := NewFileHandler(FileConfig{}); err == nil {
		t.Error("Expected error for empty filename")
	}

	// A regular file cannot be used as a parent directory.
	blocker := filepath.Join(t.TempDir(), "blocker")
	if err := os.WriteFile(blocker, nil, 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := NewFileHandler(FileConfig{Filename: filepath.Join(blocker, "app.log")}); err == nil {
		t.Error("Expected error when the directory cannot be created")
	}
}

func TestFileHandler_HandleAfterClose(t *testing.T) {
	h, err := NewFileHandler(FileConfig{Filename: filepath.Join(t.TempDir(), "app.log")})
	if err != nil {
		t.Fatalf("NewFileHandler() error = %v", err)
	}
	if err := h.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if err := h.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}

	entry := core.GetEntry()
	defer core.PutEntry(entry)
	entry.Message = "late"
	if err := h.Handle(entry); err != ErrClosed {
		t.Errorf("Expected ErrClosed, got %v", err)
	}
	if h.Stats().FailedTotal != 1 {
		t.Errorf("Expected 1 failed entry, got %d", h.Stats().FailedTotal)
	}
}
