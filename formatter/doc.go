// Package formatter defines how log entries are serialized into bytes.
//
// It exposes two interfaces: Formatter, which returns a []byte, and
// BufferFormatter, which formats into a caller-provided bytes.Buffer.
// Output targets check for BufferFormatter at construction time and
// prefer it, eliminating the intermediate byte slice allocation on the
// write path.
//
// TextFormatter produces the classic stream-logger line:
//
//	[timestamp ]<level indicator> [<logger name> ]<message>
//
// The timestamp is omitted unless a TimestampFormat is configured, and
// the indicator is controlled by PrintLevel (none, one letter, or the
// full level name). JSONFormatter emits one object per line.
//
// Buffers larger than 64 KiB are not returned to the pool to prevent
// a single large log line from permanently inflating memory usage.
package formatter
