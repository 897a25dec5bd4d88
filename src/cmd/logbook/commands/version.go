// FILE: logbook/src/cmd/logbook/commands/version.go
package commands

import (
	"fmt"

	"logbook/src/internal/version"
)

// VersionCommand handles version display
type VersionCommand struct {
	rt *Runtime
}

// NewVersionCommand creates a new version command
func NewVersionCommand(rt *Runtime) *VersionCommand {
	return &VersionCommand{rt: rt}
}

func (c *VersionCommand) Execute(args []string) error {
	fmt.Fprintln(c.rt.Stdout, version.String())
	return nil
}

func (c *VersionCommand) Description() string {
	return "Show version information"
}

func (c *VersionCommand) Help() string {
	return `Version Command - Show LogBook version information

Usage:
  logbook version
  logbook -v
  logbook --version

Output includes:
  - Version number
  - Build date
  - Git commit hash (if available)
`
}
