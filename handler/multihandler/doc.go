// Package multihandler provides a fan-out handler that dispatches log
// entries to multiple child handlers, in order.
package multihandler
