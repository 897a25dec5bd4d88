// FILE: logbook/src/internal/core/const.go
package core

// ISO-8601 local time with microseconds
const DefaultTimestampFormat = "2006-01-02T15:04:05.000000"

// Longest line accepted on import. Anything longer aborts the import with
// bufio.ErrTooLong rather than being reported as a malformed line.
const MaxLineSize = 1024 * 1024
