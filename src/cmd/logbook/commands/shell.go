// FILE: logbook/src/cmd/logbook/commands/shell.go
package commands

import (
	"fmt"

	"logbook/src/internal/shell"
)

// ShellCommand runs the interactive menu
type ShellCommand struct {
	rt *Runtime
}

// NewShellCommand creates a new shell command
func NewShellCommand(rt *Runtime) *ShellCommand {
	return &ShellCommand{rt: rt}
}

// Execute starts the menu, importing the optional file argument first
func (c *ShellCommand) Execute(args []string) error {
	if len(args) > 1 {
		return usageError("shell takes at most one file argument")
	}

	s, err := c.rt.newStore()
	if err != nil {
		return err
	}

	if len(args) == 1 {
		n, err := s.Import(args[0])
		if err != nil {
			// Same treatment as a menu import: report and keep what was read
			shell.WriteImportError(c.rt.Stdout, n, err)
		} else {
			fmt.Fprintf(c.rt.Stdout, "Loaded %d entries from %s\n", n, args[0])
		}
	}

	cfg := c.rt.Config.Shell
	opts := shell.Options{
		ShowMenu:    c.rt.Interactive && cfg.ShowMenu,
		Prompts:     c.rt.Interactive,
		DefaultFile: c.rt.Config.IO.DefaultFile,
	}

	c.rt.Logger.Info("msg", "Shell started",
		"component", "shell",
		"interactive", c.rt.Interactive,
		"format", c.rt.Config.IO.Format)

	return shell.New(s, c.rt.Stdin, c.rt.Stdout, opts, c.rt.Logger).Run()
}

func (c *ShellCommand) Description() string {
	return "Run the interactive menu (default)"
}

func (c *ShellCommand) Help() string {
	return `Shell Command - Run the interactive menu

Usage:
  logbook
  logbook shell [file]

Menu:
  1  Create logs      5  Analyze logs
  2  Read logs        6  Summarize logs
  3  Update logs      7  Export logs
  4  Delete logs      8  Import logs
  0  Exit

When [file] is given its entries are imported before the menu starts.
Prompts and the menu are only printed when stdin is a terminal, unless
shell.force_prompts is set.
`
}
