// FILE: logbook/src/internal/format/format.go
package format

import (
	"errors"
	"fmt"

	"logbook/src/internal/core"

	"github.com/lixenwraith/log"
)

// ErrMalformedLine is wrapped by every line that cannot be decoded into an entry.
var ErrMalformedLine = errors.New("malformed log line")

// Codec converts between a LogEntry and a single line of a log file.
type Codec interface {
	// Format returns the encoded entry terminated by a newline.
	Format(entry core.LogEntry) ([]byte, error)

	// Parse decodes one line, without its line terminator.
	Parse(line string) (core.LogEntry, error)

	// Name returns the codec type name
	Name() string
}

// New creates a Codec by name. An empty name selects txt.
func New(name string, logger *log.Logger) (Codec, error) {
	if name == "" {
		name = "txt"
	}

	switch name {
	case "txt":
		return NewTxtCodec(logger), nil
	case "json":
		return NewJSONCodec(logger), nil
	default:
		return nil, fmt.Errorf("unknown format type: %s", name)
	}
}

// ParseError reports the line that stopped an import.
type ParseError struct {
	Line int    // 1-based
	Text string // line as read
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %v: %q", e.Line, e.Err, e.Text)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
