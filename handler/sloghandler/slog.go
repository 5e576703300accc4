package sloghandler

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/philipp01105/logfacade/core"
	"github.com/philipp01105/logfacade/handler"
)

// LoggerKey is the attribute key carrying the logger name. It becomes the
// entry's LoggerName instead of a message attribute.
const LoggerKey = "logger"

// SlogHandler implements slog.Handler on top of a handler.Handler.
type SlogHandler struct {
	handler    handler.Handler
	level      slog.Leveler
	loggerName string
	attrs      string
	group      string
}

// NewSlogHandler creates a new slog.Handler writing to h. Records below
// level are discarded.
func NewSlogHandler(h handler.Handler, level slog.Leveler) *SlogHandler {
	if level == nil {
		level = slog.LevelInfo
	}
	return &SlogHandler{handler: h, level: level}
}

// Enabled reports whether the handler handles records at the given level.
func (s *SlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= s.level.Level()
}

// Handle converts the record to a core.Entry and passes it to the wrapped
// handler.
func (s *SlogHandler) Handle(_ context.Context, record slog.Record) error {
	entry := core.GetEntry()
	defer core.PutEntry(entry)

	entry.Time = record.Time
	entry.Level = levelFromSlog(record.Level)
	entry.LoggerName = s.loggerName

	var sb strings.Builder
	sb.WriteString(record.Message)
	sb.WriteString(s.attrs)
	record.Attrs(func(a slog.Attr) bool {
		if s.group == "" && a.Key == LoggerKey {
			entry.LoggerName = a.Value.String()
			return true
		}
		writeAttr(&sb, s.group, a)
		return true
	})
	entry.Message = sb.String()

	return s.handler.Handle(entry)
}

// WithAttrs returns a new SlogHandler with additional attributes.
func (s *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *s
	var sb strings.Builder
	sb.WriteString(s.attrs)
	for _, a := range attrs {
		if s.group == "" && a.Key == LoggerKey {
			clone.loggerName = a.Value.String()
			continue
		}
		writeAttr(&sb, s.group, a)
	}
	clone.attrs = sb.String()
	return &clone
}

// WithGroup returns a new SlogHandler with the given group name.
func (s *SlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return s
	}
	clone := *s
	if s.group != "" {
		clone.group = s.group + "." + name
	} else {
		clone.group = name
	}
	return &clone
}

// levelFromSlog maps slog levels onto the nearest facade level.
func levelFromSlog(level slog.Level) core.Level {
	switch {
	case level >= slog.LevelError:
		return core.LevelError
	case level >= slog.LevelWarn:
		return core.LevelWarn
	case level >= slog.LevelInfo:
		return core.LevelInfo
	default:
		return core.LevelDebug
	}
}

// writeAttr appends " key=value", flattening groups with dotted keys.
func writeAttr(sb *strings.Builder, group string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	key := a.Key
	switch {
	case group == "":
	case key == "":
		key = group
	default:
		key = group + "." + key
	}
	if a.Value.Kind() == slog.KindGroup {
		for _, ga := range a.Value.Group() {
			writeAttr(sb, key, ga)
		}
		return
	}
	fmt.Fprintf(sb, " %s=%v", key, a.Value.Any())
}
