// FILE: logbook/src/internal/format/txt.go
package format

import (
	"fmt"
	"strings"

	"logbook/src/internal/core"

	"github.com/lixenwraith/log"
)

const (
	levelOpen  = " ["
	levelClose = "] "
)

// Reads and writes "timestamp [LEVEL] message" lines
type TxtCodec struct {
	logger *log.Logger
}

// Creates a new txt codec
func NewTxtCodec(logger *log.Logger) *TxtCodec {
	return &TxtCodec{logger: logger}
}

// Formats the entry as a single line
func (c *TxtCodec) Format(entry core.LogEntry) ([]byte, error) {
	return []byte(entry.String() + "\n"), nil
}

// Parses a line by splitting on the first " [" and then the first "] ".
// The timestamp is kept verbatim, level and message are trimmed.
func (c *TxtCodec) Parse(line string) (core.LogEntry, error) {
	timestamp, rest, ok := strings.Cut(line, levelOpen)
	if !ok {
		return core.LogEntry{}, c.reject(line, levelOpen)
	}

	level, message, ok := strings.Cut(rest, levelClose)
	if !ok {
		return core.LogEntry{}, c.reject(line, levelClose)
	}

	return core.LogEntry{
		Timestamp: timestamp,
		Level:     strings.TrimSpace(level),
		Message:   strings.TrimSpace(message),
	}, nil
}

func (c *TxtCodec) reject(line, separator string) error {
	if c.logger != nil {
		c.logger.Debug("msg", "Text line rejected",
			"component", "txt_codec",
			"missing", separator,
			"length", len(line))
	}
	return fmt.Errorf("%w: missing %q separator", ErrMalformedLine, separator)
}

// Returns the codec name
func (c *TxtCodec) Name() string {
	return "txt"
}
