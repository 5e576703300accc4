package formatter

import (
	"bytes"
	"fmt"

	"github.com/philipp01105/logfacade/core"
)

// TextFormatter formats log entries as human-readable lines
type TextFormatter struct {
	Config
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter(cfg Config) *TextFormatter {
	return &TextFormatter{Config: cfg}
}

// Format formats an entry as text
func (f *TextFormatter) Format(entry *core.Entry) ([]byte, error) {
	buf := getBuffer()
	defer putBuffer(buf)

	f.FormatEntry(entry, buf)

	// Copy buffer content to return
	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result, nil
}

// pre-formatted level indicators, indexed by core.Level
var (
	shortIndicators = [...]string{
		core.LevelNone:  "",
		core.LevelError: "E ",
		core.LevelWarn:  "W ",
		core.LevelInfo:  "I ",
		core.LevelDebug: "D ",
	}
	longIndicators = [...]string{
		core.LevelNone:  "",
		core.LevelError: "ERROR ",
		core.LevelWarn:  "WARNING ",
		core.LevelInfo:  "INFO ",
		core.LevelDebug: "DEBUG ",
	}
)

// FormatEntry writes the formatted entry into the given buffer.
// An entry without a message renders only its error.
func (f *TextFormatter) FormatEntry(entry *core.Entry, buf *bytes.Buffer) {
	if entry.Message != "" || entry.Err == nil {
		f.writePrefix(entry, buf)
		f.writeName(entry, buf)
		buf.WriteString(entry.Message)
		buf.WriteByte('\n')
	}

	if entry.Err != nil {
		f.writeName(entry, buf)
		fmt.Fprintf(buf, "%+v", entry.Err)
		buf.WriteByte('\n')
	}
}

func (f *TextFormatter) writePrefix(entry *core.Entry, buf *bytes.Buffer) {
	if f.TimestampFormat != "" {
		buf.Write(entry.Time.AppendFormat(buf.AvailableBuffer(), f.TimestampFormat))
		buf.WriteByte(' ')
	}

	if !entry.Level.Valid() {
		buf.WriteString("X ")
		return
	}
	switch f.PrintLevel {
	case PrintShort:
		buf.WriteString(shortIndicators[entry.Level])
	case PrintLong:
		buf.WriteString(longIndicators[entry.Level])
	}
}

func (f *TextFormatter) writeName(entry *core.Entry, buf *bytes.Buffer) {
	if entry.LoggerName != "" {
		buf.WriteString(entry.LoggerName)
		buf.WriteByte(' ')
	}
}
