// FILE: logbook/src/cmd/logbook/commands/config.go
package commands

import (
	"fmt"
)

// ConfigCommand writes the effective configuration
type ConfigCommand struct {
	rt *Runtime
}

// NewConfigCommand creates a new config command
func NewConfigCommand(rt *Runtime) *ConfigCommand {
	return &ConfigCommand{rt: rt}
}

func (c *ConfigCommand) Execute(args []string) error {
	if len(args) != 2 || args[0] != "save" {
		return usageError("usage: logbook config save <path>")
	}

	if err := c.rt.Config.SaveToFile(args[1]); err != nil {
		return err
	}

	fmt.Fprintf(c.rt.Stdout, "Configuration saved to %s\n", args[1])
	return nil
}

func (c *ConfigCommand) Description() string {
	return "Save the effective configuration as TOML"
}

func (c *ConfigCommand) Help() string {
	return `Config Command - Save the effective configuration

Usage:
  logbook config save <path>

The file reflects defaults, the loaded config file, LOGBOOK_ environment
variables and command-line overrides combined.
`
}
