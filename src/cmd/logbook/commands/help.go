// FILE: logbook/src/cmd/logbook/commands/help.go
package commands

import (
	"fmt"
	"sort"
	"strings"
)

// generalHelpTemplate is the default help message shown when no specific command is requested.
const generalHelpTemplate = `LogBook: an interactive log entry manager.

Usage:
  logbook [command] [arguments] [options]
  logbook [options]

Commands:
%s

Application Options:
  -c, --config <path>      Path to configuration file (default: ~/.config/logbook.toml)
  -h, --help               Display this help message and exit
  -v, --version            Display version information and exit
  -q, --quiet              Suppress all console output, including errors

Configuration Overrides:
  --<section>.<key>=<value>  e.g. --io.format=json --logging.output=stderr

For command-specific help:
  logbook help <command>
  logbook <command> --help

Configuration Sources (Precedence: CLI > Env > File > Defaults):
  - CLI overrides take precedence over all other settings
  - Environment variables use the LOGBOOK_ prefix (LOGBOOK_IO_FORMAT=json)
  - TOML configuration file is the primary method

Examples:
  # Start the interactive menu
  logbook

  # Start the menu with entries loaded from a file
  logbook shell app.log

  # Print the error tally of an exported file
  logbook analyze app.log
`

// HelpCommand handles the display of general or command-specific help messages.
type HelpCommand struct {
	router *CommandRouter
}

// NewHelpCommand creates a new help command handler.
func NewHelpCommand(router *CommandRouter) *HelpCommand {
	return &HelpCommand{router: router}
}

// Execute displays the appropriate help message based on the provided arguments.
func (c *HelpCommand) Execute(args []string) error {
	out := c.router.rt.Stdout

	if len(args) > 0 && args[0] != "" {
		cmdName := args[0]

		if handler, exists := c.router.GetCommand(cmdName); exists {
			fmt.Fprint(out, handler.Help())
			return nil
		}

		return usageError("unknown command: %s", cmdName)
	}

	fmt.Fprintf(out, generalHelpTemplate, c.formatCommandList())
	return nil
}

// Description returns a brief one-line description of the command.
func (c *HelpCommand) Description() string {
	return "Display help information"
}

// Help returns the detailed help text for the 'help' command itself.
func (c *HelpCommand) Help() string {
	return `Help Command - Display help information

Usage:
  logbook help              Show general help
  logbook help <command>    Show help for a specific command

Examples:
  logbook help              # Show general help
  logbook help analyze      # Show analyze command help
  logbook analyze --help    # Alternative way to get command help
`
}

// formatCommandList creates a formatted and aligned list of all available commands.
func (c *HelpCommand) formatCommandList() string {
	commands := c.router.GetCommands()

	names := make([]string, 0, len(commands))
	maxLen := 0
	for name := range commands {
		names = append(names, name)
		if len(name) > maxLen {
			maxLen = len(name)
		}
	}
	sort.Strings(names)

	var lines []string
	for _, name := range names {
		handler := commands[name]
		padding := strings.Repeat(" ", maxLen-len(name)+2)
		lines = append(lines, fmt.Sprintf("  %s%s%s", name, padding, handler.Description()))
	}

	return strings.Join(lines, "\n")
}
