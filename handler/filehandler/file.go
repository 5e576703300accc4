package filehandler

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/philipp01105/logfacade/core"
	"github.com/philipp01105/logfacade/formatter"
	"github.com/philipp01105/logfacade/handler"
)

// ErrClosed is returned by Handle after Close.
var ErrClosed = errors.New("filehandler: handler closed")

// FileConfig holds configuration for file handler
type FileConfig struct {
	// Filename is the path to the log file
	Filename string
	// Formatter to use (default: TextFormatter)
	Formatter formatter.Formatter
}

// applyFileDefaults fills in zero-value fields with defaults.
func applyFileDefaults(cfg *FileConfig) {
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewTextFormatter(formatter.Config{})
	}
}

// FileHandler appends formatted entries to a file.
type FileHandler struct {
	filename        string
	formatter       formatter.Formatter
	bufferFormatter formatter.BufferFormatter
	stats           *handler.Stats

	mu      sync.Mutex
	file    *os.File
	syncBuf bytes.Buffer
}

// NewFileHandler opens (or creates) the configured file for appending.
func NewFileHandler(cfg FileConfig) (*FileHandler, error) {
	if cfg.Filename == "" {
		return nil, fmt.Errorf("filehandler: filename is required")
	}
	applyFileDefaults(&cfg)

	// Create directory if it doesn't exist
	dir := filepath.Dir(cfg.Filename)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("filehandler: create directory %s: %w", dir, err)
	}

	file, err := os.OpenFile(cfg.Filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("filehandler: open %s: %w", cfg.Filename, err)
	}

	h := &FileHandler{
		filename:  cfg.Filename,
		formatter: cfg.Formatter,
		stats:     handler.NewStats(),
		file:      file,
	}
	h.bufferFormatter, _ = cfg.Formatter.(formatter.BufferFormatter)
	return h, nil
}

// Filename returns the path the handler appends to.
func (h *FileHandler) Filename() string {
	return h.filename
}

// Handle formats and appends an entry.
func (h *FileHandler) Handle(entry *core.Entry) error {
	err := h.write(entry)
	h.stats.Record(err)
	return err
}

func (h *FileHandler) write(entry *core.Entry) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.file == nil {
		return ErrClosed
	}

	if h.bufferFormatter != nil {
		h.syncBuf.Reset()
		h.bufferFormatter.FormatEntry(entry, &h.syncBuf)
		_, err := h.file.Write(h.syncBuf.Bytes())
		return err
	}

	data, err := h.formatter.Format(entry)
	if err != nil {
		return err
	}
	_, err = h.file.Write(data)
	return err
}

// Stats returns a snapshot of the current statistics
func (h *FileHandler) Stats() handler.Snapshot {
	return h.stats.GetSnapshot()
}

// Close syncs and closes the underlying file. Closing twice is a no-op.
func (h *FileHandler) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.file == nil {
		return nil
	}

	syncErr := h.file.Sync()
	closeErr := h.file.Close()
	h.file = nil
	if syncErr != nil {
		return syncErr
	}
	return closeErr
}
