// Package backend groups the logger factories that ship with logfacade.
//
//   - nillog: NIL, discards everything
//   - streamlog: STDOUT, formatted lines to console or file targets
//   - sloglog: SLOG, forwards to a log/slog handler
//   - memlog: MEM, captures records in memory for tests
//
// NIL, STDOUT and SLOG are registered by logger.Initialize. MEM is never
// registered automatically.
package backend
