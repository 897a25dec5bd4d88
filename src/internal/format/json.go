// FILE: logbook/src/internal/format/json.go
package format

import (
	"encoding/json"
	"fmt"

	"logbook/src/internal/core"

	"github.com/lixenwraith/log"
)

// JSONCodec reads and writes one JSON object per line.
type JSONCodec struct {
	logger *log.Logger
}

// NewJSONCodec creates a new JSON Lines codec.
func NewJSONCodec(logger *log.Logger) *JSONCodec {
	return &JSONCodec{logger: logger}
}

// jsonLine mirrors core.LogEntry with a nullable timestamp so a missing key
// can be told apart from an empty one.
type jsonLine struct {
	Timestamp *string `json:"timestamp"`
	Level     string  `json:"level"`
	Message   string  `json:"message"`
}

// Format marshals the entry and appends a newline.
func (c *JSONCodec) Format(entry core.LogEntry) ([]byte, error) {
	data, err := json.Marshal(entry)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal entry: %w", err)
	}
	return append(data, '\n'), nil
}

// Parse decodes a single JSON object. The timestamp key is required.
func (c *JSONCodec) Parse(line string) (core.LogEntry, error) {
	var decoded jsonLine
	if err := json.Unmarshal([]byte(line), &decoded); err != nil {
		if c.logger != nil {
			c.logger.Debug("msg", "JSON line rejected",
				"component", "json_codec",
				"error", err)
		}
		return core.LogEntry{}, fmt.Errorf("%w: %v", ErrMalformedLine, err)
	}

	if decoded.Timestamp == nil {
		return core.LogEntry{}, fmt.Errorf("%w: missing timestamp", ErrMalformedLine)
	}

	return core.LogEntry{
		Timestamp: *decoded.Timestamp,
		Level:     decoded.Level,
		Message:   decoded.Message,
	}, nil
}

// Name returns the codec name.
func (c *JSONCodec) Name() string {
	return "json"
}
