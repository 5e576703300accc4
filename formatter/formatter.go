package formatter

import (
	"bytes"
	"fmt"
	"strings"
	"sync"

	"github.com/philipp01105/logfacade/core"
)

// Formatter defines the interface for log formatters
type Formatter interface {
	// Format formats a log entry into bytes
	Format(entry *core.Entry) ([]byte, error)
}

// BufferFormatter is an optional interface that formatters can implement
// to format directly into a caller-provided buffer, avoiding internal
// buffer pool overhead.
type BufferFormatter interface {
	// FormatEntry formats a log entry into the given buffer.
	FormatEntry(entry *core.Entry, buf *bytes.Buffer)
}

// PrintLevel controls how the level is rendered in text output
type PrintLevel int

const (
	// PrintShort renders a single letter (E, W, I, D) (default)
	PrintShort PrintLevel = iota
	// PrintLong renders the full level name
	PrintLong
	// PrintNone omits the level
	PrintNone
)

// String returns the string representation of the print level
func (p PrintLevel) String() string {
	switch p {
	case PrintNone:
		return "NONE"
	case PrintShort:
		return "SHORT"
	case PrintLong:
		return "LONG"
	default:
		return "UNKNOWN"
	}
}

// ParsePrintLevel converts a string to a PrintLevel, ignoring case.
func ParsePrintLevel(s string) (PrintLevel, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "NONE":
		return PrintNone, nil
	case "SHORT":
		return PrintShort, nil
	case "LONG":
		return PrintLong, nil
	default:
		return PrintShort, fmt.Errorf("formatter: unknown print level %q", s)
	}
}

// Config holds common formatter configuration
type Config struct {
	// TimestampFormat specifies the time layout. Text output omits the
	// timestamp when empty; JSON output defaults to RFC3339Nano.
	TimestampFormat string
	// PrintLevel controls the level indicator of text output
	PrintLevel PrintLevel
}

// bufferPool is a pool of bytes.Buffer to reduce allocations
var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 { // Don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}
