// Package handler provides the output targets the stream backend writes
// formatted log entries to.
//
// A Handler receives a core.Entry, formats it with its formatter.Formatter
// and writes the bytes synchronously. There is no queueing: when Handle
// returns, the entry has been written or the write error is returned.
//
// Built-in handlers:
//
//   - consolehandler writes to any io.Writer (default: stdout).
//   - filehandler appends to a file, creating it and its directory when
//     missing.
//
// Targets maps dotted logger names to handlers. A lookup for "app.db.pool"
// falls back to "app.db", then "app", then the root name "", and finally
// to the default handler, so one registration can redirect a whole
// subtree of loggers.
//
// All handlers track processed and failed writes via the Stats type, which
// can be exported to Prometheus with NewStatsCollector.
package handler
