// FILE: logbook/src/internal/format/txt_test.go
package format

import (
	"strings"
	"testing"
	"time"

	"logbook/src/internal/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTxtCodec_Format(t *testing.T) {
	codec := NewTxtCodec(newTestLogger())

	output, err := codec.Format(core.LogEntry{
		Timestamp: "2024-03-01T10:00:00.000000",
		Level:     "WARNING",
		Message:   "low mem",
	})
	require.NoError(t, err)
	assert.Equal(t, "2024-03-01T10:00:00.000000 [WARNING] low mem\n", string(output))
}

func TestTxtCodec_Parse(t *testing.T) {
	codec := NewTxtCodec(newTestLogger())

	testCases := []struct {
		name     string
		line     string
		expected core.LogEntry
	}{
		{
			name:     "Basic",
			line:     "2024-03-01T10:00:00.000000 [ERROR] disk full",
			expected: core.LogEntry{Timestamp: "2024-03-01T10:00:00.000000", Level: "ERROR", Message: "disk full"},
		},
		{
			name:     "TrimsLevelAndMessage",
			line:     "ts [ INFO ]   padded message  ",
			expected: core.LogEntry{Timestamp: "ts", Level: "INFO", Message: "padded message"},
		},
		{
			name:     "CarriageReturnTrimmed",
			line:     "ts [INFO] windows line\r",
			expected: core.LogEntry{Timestamp: "ts", Level: "INFO", Message: "windows line"},
		},
		{
			name:     "TimestampVerbatim",
			line:     "  spaced ts  [INFO] m",
			expected: core.LogEntry{Timestamp: "  spaced ts ", Level: "INFO", Message: "m"},
		},
		{
			name:     "EmptyMessage",
			line:     "ts [INFO] ",
			expected: core.LogEntry{Timestamp: "ts", Level: "INFO", Message: ""},
		},
		{
			name:     "BracketsInMessage",
			line:     "ts [ERROR] got [x] from peer",
			expected: core.LogEntry{Timestamp: "ts", Level: "ERROR", Message: "got [x] from peer"},
		},
		{
			name:     "FirstSeparatorWins",
			line:     "ts [a] b [c] d",
			expected: core.LogEntry{Timestamp: "ts", Level: "a", Message: "b [c] d"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			entry, err := codec.Parse(tc.line)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, entry)
		})
	}
}

func TestTxtCodec_ParseMalformed(t *testing.T) {
	codec := NewTxtCodec(newTestLogger())

	for _, line := range []string{
		"",
		"no separators at all",
		"ts [INFO]no space after bracket",
		"ts INFO] missing open",
		"ts [INFO]",
	} {
		t.Run(line, func(t *testing.T) {
			_, err := codec.Parse(line)
			assert.ErrorIs(t, err, ErrMalformedLine)
		})
	}
}

func TestTxtCodec_ParseMalformedLogsDebug(t *testing.T) {
	logger, dir := newFileLogger(t)
	codec := NewTxtCodec(logger)

	_, err := codec.Parse("ts [INFO]no space after bracket")
	require.ErrorIs(t, err, ErrMalformedLine)

	assert.Eventually(t, func() bool {
		contents := logContents(t, logger, dir)
		return strings.Contains(contents, "Text line rejected") &&
			strings.Contains(contents, "txt_codec")
	}, 2*time.Second, 50*time.Millisecond)
}

func TestTxtCodec_NilLogger(t *testing.T) {
	codec := NewTxtCodec(nil)
	_, err := codec.Parse("no separators")
	assert.ErrorIs(t, err, ErrMalformedLine)
}

func TestTxtCodec_RoundTrip(t *testing.T) {
	codec := NewTxtCodec(newTestLogger())
	entry := core.LogEntry{Timestamp: "2024-03-01T10:00:00.123456", Level: "ERROR", Message: "disk full"}

	output, err := codec.Format(entry)
	require.NoError(t, err)

	line := string(output[:len(output)-1])
	parsed, err := codec.Parse(line)
	require.NoError(t, err)
	assert.Equal(t, entry, parsed)
}
