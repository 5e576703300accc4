// Package consolehandler provides a synchronous console output target.
//
// Writes to *os.File and io.Discard go straight to the writer; any other
// writer is serialized with the handler's mutex.
package consolehandler
