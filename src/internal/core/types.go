// FILE: logbook/src/internal/core/types.go
package core

// Conventional levels. Any other string is accepted as a level.
const (
	LevelInfo    = "INFO"
	LevelWarning = "WARNING"
	LevelError   = "ERROR"
)

// Summary holds the aggregate counts of a store
type Summary struct {
	TotalEntries int `json:"total_entries" toml:"total_entries"`
	ErrorCount   int `json:"error_count" toml:"error_count"`
	WarningCount int `json:"warning_count" toml:"warning_count"`
}
