// FILE: logbook/src/internal/store/store.go
package store

import (
	"logbook/src/internal/core"
	"logbook/src/internal/format"

	"github.com/lixenwraith/log"
)

// Store holds log entries in insertion order. It has a single owner and is
// not safe for concurrent use.
type Store struct {
	entries         []core.LogEntry
	clock           core.Clock
	timestampFormat string
	codec           format.Codec
	logger          *log.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithClock sets the time source used for new entries.
func WithClock(clock core.Clock) Option {
	return func(s *Store) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// WithTimestampFormat sets the time layout used for new entries.
func WithTimestampFormat(layout string) Option {
	return func(s *Store) {
		if layout != "" {
			s.timestampFormat = layout
		}
	}
}

// WithCodec sets the line codec used by export and import.
func WithCodec(codec format.Codec) Option {
	return func(s *Store) {
		if codec != nil {
			s.codec = codec
		}
	}
}

// WithLogger sets the logger that receives store diagnostics.
func WithLogger(logger *log.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New creates an empty store. Without options it stamps entries with the
// wall clock and reads and writes the txt line format.
func New(opts ...Option) *Store {
	s := &Store{
		clock:           core.SystemClock{},
		timestampFormat: core.DefaultTimestampFormat,
		logger:          log.NewLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.codec == nil {
		s.codec = format.NewTxtCodec(s.logger)
	}
	return s
}

// Append stamps a new entry with the current time and adds it at the end.
func (s *Store) Append(level, message string) {
	s.entries = append(s.entries, core.LogEntry{
		Timestamp: s.clock.Now().Format(s.timestampFormat),
		Level:     level,
		Message:   message,
	})
	s.logger.Debug("msg", "Entry appended",
		"component", "store",
		"index", len(s.entries)-1,
		"level", level)
}

// Len returns the number of entries.
func (s *Store) Len() int {
	return len(s.entries)
}

// Entries returns a copy of all entries.
func (s *Store) Entries() []core.LogEntry {
	entriesCopy := make([]core.LogEntry, len(s.entries))
	copy(entriesCopy, s.entries)
	return entriesCopy
}

// List returns every entry as "timestamp [LEVEL] message".
func (s *Store) List() []string {
	lines := make([]string, 0, len(s.entries))
	for _, entry := range s.entries {
		lines = append(lines, entry.String())
	}
	return lines
}

func (s *Store) validIndex(index int) bool {
	return index >= 0 && index < len(s.entries)
}

// Update replaces the level and message of the entry at index. The timestamp
// is kept. Returns false without changes when index is out of range.
func (s *Store) Update(index int, level, message string) bool {
	if !s.validIndex(index) {
		s.logger.Debug("msg", "Update rejected",
			"component", "store",
			"index", index,
			"len", len(s.entries))
		return false
	}

	s.entries[index].Level = level
	s.entries[index].Message = message
	return true
}

// Delete removes the entry at index, shifting later entries down by one.
// Returns false without changes when index is out of range.
func (s *Store) Delete(index int) bool {
	if !s.validIndex(index) {
		s.logger.Debug("msg", "Delete rejected",
			"component", "store",
			"index", index,
			"len", len(s.entries))
		return false
	}

	s.entries = append(s.entries[:index], s.entries[index+1:]...)
	return true
}

// AnalyzeErrors counts messages of entries whose level is exactly ERROR.
func (s *Store) AnalyzeErrors() map[string]int {
	counts := make(map[string]int)
	for _, entry := range s.entries {
		if entry.Level == core.LevelError {
			counts[entry.Message]++
		}
	}
	return counts
}

// Summarize counts all entries and the exact ERROR and WARNING levels.
func (s *Store) Summarize() core.Summary {
	summary := core.Summary{TotalEntries: len(s.entries)}
	for _, entry := range s.entries {
		switch entry.Level {
		case core.LevelError:
			summary.ErrorCount++
		case core.LevelWarning:
			summary.WarningCount++
		}
	}
	return summary
}
