// FILE: logbook/src/internal/core/entry.go
package core

// Represents a single record held by the log store
type LogEntry struct {
	// Set once at creation, never rewritten
	Timestamp string `json:"timestamp"`
	Level     string `json:"level"`
	Message   string `json:"message"`
}

// Returns the entry in "timestamp [LEVEL] message" form
func (e LogEntry) String() string {
	return e.Timestamp + " [" + e.Level + "] " + e.Message
}
