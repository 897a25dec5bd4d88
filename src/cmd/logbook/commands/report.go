// FILE: logbook/src/cmd/logbook/commands/report.go
package commands

import (
	"fmt"

	"logbook/src/internal/shell"
	"logbook/src/internal/store"
)

// loadFile imports a single file argument into a fresh store
func loadFile(rt *Runtime, name string, args []string) (*store.Store, error) {
	if len(args) != 1 {
		return nil, usageError("%s requires exactly one file argument", name)
	}

	s, err := rt.newStore()
	if err != nil {
		return nil, err
	}

	if _, err := s.Import(args[0]); err != nil {
		return nil, err
	}
	return s, nil
}

// AnalyzeCommand prints the error tally of a log file
type AnalyzeCommand struct {
	rt *Runtime
}

// NewAnalyzeCommand creates a new analyze command
func NewAnalyzeCommand(rt *Runtime) *AnalyzeCommand {
	return &AnalyzeCommand{rt: rt}
}

func (c *AnalyzeCommand) Execute(args []string) error {
	s, err := loadFile(c.rt, "analyze", args)
	if err != nil {
		return err
	}

	shell.WriteErrorTally(c.rt.Stdout, s.AnalyzeErrors())
	return nil
}

func (c *AnalyzeCommand) Description() string {
	return "Print ERROR message counts of a log file"
}

func (c *AnalyzeCommand) Help() string {
	return `Analyze Command - Count ERROR entries by message

Usage:
  logbook analyze <file>

Only entries whose level is exactly ERROR are counted. Output is one
"message: count" line per distinct message, sorted by message.
The command fails at the first malformed line.
`
}

// SummaryCommand prints entry counts of a log file
type SummaryCommand struct {
	rt *Runtime
}

// NewSummaryCommand creates a new summary command
func NewSummaryCommand(rt *Runtime) *SummaryCommand {
	return &SummaryCommand{rt: rt}
}

func (c *SummaryCommand) Execute(args []string) error {
	s, err := loadFile(c.rt, "summary", args)
	if err != nil {
		return err
	}

	shell.WriteSummary(c.rt.Stdout, s.Summarize())
	return nil
}

func (c *SummaryCommand) Description() string {
	return "Print total, ERROR and WARNING counts of a log file"
}

func (c *SummaryCommand) Help() string {
	return fmt.Sprintf(`Summary Command - Count entries of a log file

Usage:
  logbook summary <file>

Output:
  %-15s number of entries
  %-15s entries with level exactly ERROR
  %-15s entries with level exactly WARNING
`, "total_entries", "error_count", "warning_count")
}
