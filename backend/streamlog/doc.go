// Package streamlog provides the STDOUT binding, the built-in fallback of
// the facade.
//
// Each logger formats its messages into lines and hands them to an output
// target chosen by logger name:
//
//	I app.db connected to primary
//	W app.http slow request
//
// The level indicator follows formatter.PrintLevel and a timestamp is
// prepended when Options.TimestampFormat is set. Targets are looked up in
// a handler.Targets registry, so "app.db.pool" writes wherever "app.db"
// (or "app", or the root) was routed. Unrouted loggers use the factory
// default: stdout, or Options.OutputFile when it is set.
//
// If the output file cannot be opened the failure is reported on stderr
// and the factory writes to stdout instead.
package streamlog
