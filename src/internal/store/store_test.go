// FILE: logbook/src/internal/store/store_test.go
package store

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"logbook/src/internal/core"

	"github.com/lixenwraith/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stepClock returns base, base+1s, base+2s, ... on successive calls
type stepClock struct {
	base  time.Time
	calls int
}

func (c *stepClock) Now() time.Time {
	t := c.base.Add(time.Duration(c.calls) * time.Second)
	c.calls++
	return t
}

func newTestStore(opts ...Option) *Store {
	clock := &stepClock{base: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)}
	base := []Option{WithClock(clock), WithLogger(log.NewLogger())}
	return New(append(base, opts...)...)
}

func TestStore_Append(t *testing.T) {
	s := newTestStore()
	s.Append("INFO", "start")
	s.Append("custom-level", "anything goes")

	require.Equal(t, 2, s.Len())
	assert.Equal(t, []string{
		"2024-03-01T10:00:00.000000 [INFO] start",
		"2024-03-01T10:00:01.000000 [custom-level] anything goes",
	}, s.List())
}

func TestStore_AppendListRoundTrip(t *testing.T) {
	s := newTestStore()
	for _, tc := range []struct{ level, message string }{
		{"INFO", "hello"},
		{"", ""},
		{"error", "lower case level"},
		{"WARNING", "with [brackets] inside"},
	} {
		s.Append(tc.level, tc.message)
		lines := s.List()
		assert.True(t, strings.HasSuffix(lines[len(lines)-1], fmt.Sprintf("[%s] %s", tc.level, tc.message)))
	}
}

func TestStore_TimestampFormat(t *testing.T) {
	s := newTestStore(WithTimestampFormat(time.RFC3339))
	s.Append("INFO", "m")
	assert.Equal(t, "2024-03-01T10:00:00Z", s.Entries()[0].Timestamp)

	t.Run("EmptyLayoutKeepsDefault", func(t *testing.T) {
		s := newTestStore(WithTimestampFormat(""))
		s.Append("INFO", "m")
		assert.Equal(t, "2024-03-01T10:00:00.000000", s.Entries()[0].Timestamp)
	})
}

func TestStore_Entries_ReturnsCopy(t *testing.T) {
	s := newTestStore()
	s.Append("INFO", "original")

	entries := s.Entries()
	entries[0].Message = "changed"

	assert.Equal(t, "original", s.Entries()[0].Message)
}

func TestStore_Update(t *testing.T) {
	s := newTestStore()
	s.Append("INFO", "first")
	s.Append("INFO", "second")
	before := s.Entries()

	t.Run("ValidIndex", func(t *testing.T) {
		assert.True(t, s.Update(1, "ERROR", "broken"))
		entry := s.Entries()[1]
		assert.Equal(t, "ERROR", entry.Level)
		assert.Equal(t, "broken", entry.Message)
		assert.Equal(t, before[1].Timestamp, entry.Timestamp, "timestamp must not change")
	})

	for _, index := range []int{-1, 2, 100} {
		t.Run(fmt.Sprintf("InvalidIndex%d", index), func(t *testing.T) {
			snapshot := s.Entries()
			assert.False(t, s.Update(index, "X", "Y"))
			assert.Equal(t, snapshot, s.Entries())
		})
	}
}

func TestStore_Delete(t *testing.T) {
	s := newTestStore()
	s.Append("INFO", "a")
	s.Append("INFO", "b")
	s.Append("INFO", "c")

	for _, index := range []int{-1, 3} {
		snapshot := s.Entries()
		assert.False(t, s.Delete(index))
		assert.Equal(t, snapshot, s.Entries())
	}

	assert.True(t, s.Delete(1))
	require.Equal(t, 2, s.Len())
	assert.Equal(t, "a", s.Entries()[0].Message)
	assert.Equal(t, "c", s.Entries()[1].Message)

	assert.True(t, s.Delete(1))
	assert.True(t, s.Delete(0))
	assert.Equal(t, 0, s.Len())
	assert.False(t, s.Delete(0))
}

func TestStore_AnalyzeErrors(t *testing.T) {
	s := newTestStore()
	assert.Empty(t, s.AnalyzeErrors())

	s.Append("ERROR", "disk full")
	s.Append("error", "disk full")
	s.Append("Error", "disk full")
	s.Append("ERROR ", "trailing space level")
	s.Append("ERROR", "timeout")
	s.Append("ERROR", "disk full")
	s.Append("WARNING", "timeout")

	assert.Equal(t, map[string]int{"disk full": 2, "timeout": 1}, s.AnalyzeErrors())
}

func TestStore_Summarize(t *testing.T) {
	s := newTestStore()
	assert.Equal(t, core.Summary{}, s.Summarize())

	s.Append("ERROR", "a")
	s.Append("WARNING", "b")
	s.Append("warning", "c")
	s.Append("DEBUG", "d")

	assert.Equal(t, core.Summary{TotalEntries: 4, ErrorCount: 1, WarningCount: 1}, s.Summarize())
}

func TestStore_Scenario(t *testing.T) {
	s := newTestStore()
	s.Append("INFO", "start")
	s.Append("ERROR", "disk full")
	s.Append("ERROR", "disk full")
	s.Append("WARNING", "low mem")

	assert.Equal(t, core.Summary{TotalEntries: 4, ErrorCount: 2, WarningCount: 1}, s.Summarize())
	assert.Equal(t, map[string]int{"disk full": 2}, s.AnalyzeErrors())

	assert.True(t, s.Delete(0))
	assert.Equal(t, 3, s.Len())
	assert.False(t, s.Update(5, "X", "Y"))
}
