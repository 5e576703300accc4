package core

import (
	"log/slog"
	"math"
	"strings"
)

// Level represents the severity threshold of a logger or the severity
// of a single log operation.
type Level int8

const (
	// LevelNone disables all output
	LevelNone Level = iota
	// LevelError for error messages
	LevelError
	// LevelWarn for warning messages
	LevelWarn
	// LevelInfo for general informational messages (default)
	LevelInfo
	// LevelDebug for detailed debugging information
	LevelDebug
)

// SlogLevelOff is the slog level marker of LevelNone. No record is ever
// logged at or above it.
const SlogLevelOff = slog.Level(math.MaxInt32)

// levelInfo is one row of the severity table.
type levelInfo struct {
	level Level
	name  string
	slog  slog.Level
}

var levels = [...]levelInfo{
	{LevelNone, "NONE", SlogLevelOff},
	{LevelError, "ERROR", slog.LevelError},
	{LevelWarn, "WARNING", slog.LevelWarn},
	{LevelInfo, "INFO", slog.LevelInfo},
	{LevelDebug, "DEBUG", slog.LevelDebug},
}

// Levels returns all severities ordered from quietest to loudest.
func Levels() []Level {
	return []Level{LevelNone, LevelError, LevelWarn, LevelInfo, LevelDebug}
}

// String returns the facade name of the level
func (l Level) String() string {
	if l.Valid() {
		return levels[l].name
	}
	return "UNKNOWN"
}

// Valid reports whether l is one of the five defined levels.
func (l Level) Valid() bool {
	return l >= LevelNone && l <= LevelDebug
}

// SlogLevel returns the log/slog marker of the level.
func (l Level) SlogLevel() slog.Level {
	if l.Valid() {
		return levels[l].slog
	}
	return SlogLevelOff
}

// Enables reports whether a logger with threshold l emits an operation at
// level op.
func (l Level) Enables(op Level) bool {
	return op != LevelNone && op.Valid() && op <= l
}

// ParseLevel looks up a level by its facade name, ignoring case.
// It returns false for any other input, including the empty string.
func ParseLevel(name string) (Level, bool) {
	for _, li := range levels {
		if strings.EqualFold(li.name, name) {
			return li.level, true
		}
	}
	return LevelNone, false
}

// LevelFromSlog looks up a level by its exact slog marker.
func LevelFromSlog(marker slog.Level) (Level, bool) {
	for _, li := range levels {
		if li.slog == marker {
			return li.level, true
		}
	}
	return LevelNone, false
}
