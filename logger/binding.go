package logger

import (
	"strings"

	"github.com/philipp01105/logfacade/backend/nillog"
	"github.com/philipp01105/logfacade/backend/sloglog"
	"github.com/philipp01105/logfacade/backend/streamlog"
)

// Built-in binding names.
const (
	NIL    = nillog.Name
	STDOUT = streamlog.Name
	SLOG   = sloglog.Name
)

// FallbackName is the default binding when nothing else applies.
const FallbackName = STDOUT

var builtInNames = [...]string{NIL, STDOUT, SLOG}

// BuiltInNames returns the names of the bindings registered by Initialize.
func BuiltInNames() []string {
	return builtInNames[:]
}

// IsBuiltIn reports whether name is a built-in binding, ignoring case.
func IsBuiltIn(name string) bool {
	for _, b := range builtInNames {
		if strings.EqualFold(b, name) {
			return true
		}
	}
	return false
}
