// Package sloghandler adapts a handler.Handler to log/slog.Handler, so
// records produced through the standard library's structured logging end
// up in the same output targets as every other backend.
//
// Attributes are rendered as key=value pairs appended to the message.
package sloghandler
