// FILE: logbook/src/internal/shell/command.go
package shell

import "strings"

// Command is one entry of the numbered menu
type Command int

const (
	CmdExit Command = iota
	CmdCreate
	CmdRead
	CmdUpdate
	CmdDelete
	CmdAnalyze
	CmdSummarize
	CmdExport
	CmdImport
)

// Menu order as displayed
var menuOrder = []Command{
	CmdCreate, CmdRead, CmdUpdate, CmdDelete,
	CmdAnalyze, CmdSummarize, CmdExport, CmdImport, CmdExit,
}

var commandLabels = map[Command]string{
	CmdCreate:    "Create logs",
	CmdRead:      "Read logs",
	CmdUpdate:    "Update logs",
	CmdDelete:    "Delete logs",
	CmdAnalyze:   "Analyze logs",
	CmdSummarize: "Summarize logs",
	CmdExport:    "Export logs",
	CmdImport:    "Import logs",
	CmdExit:      "Exit",
}

// Key returns the menu key that selects the command
func (c Command) Key() string {
	return string(rune('0' + int(c)))
}

// String returns the menu label
func (c Command) String() string {
	if label, ok := commandLabels[c]; ok {
		return label
	}
	return "Unknown"
}

// ParseCommand maps a menu choice to its command
func ParseCommand(choice string) (Command, bool) {
	choice = strings.TrimSpace(choice)
	for _, cmd := range menuOrder {
		if cmd.Key() == choice {
			return cmd, true
		}
	}
	return 0, false
}
