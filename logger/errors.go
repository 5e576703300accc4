package logger

import "errors"

// ErrInvalidArgument marks a caller bug, such as asking for a factory
// without a binding name.
var ErrInvalidArgument = errors.New("invalid argument")
