// FILE: logbook/src/cmd/logbook/commands/router.go
package commands

import (
	"fmt"
)

// Handler defines the interface required for all subcommands.
type Handler interface {
	Execute(args []string) error
	Description() string
	Help() string
}

// CommandRouter handles the routing of CLI arguments to the appropriate subcommand handler.
type CommandRouter struct {
	commands map[string]Handler
	rt       *Runtime
}

// DefaultCommand runs when no command is given
const DefaultCommand = "shell"

// NewCommandRouter creates and initializes the command router with all available commands.
func NewCommandRouter(rt *Runtime) *CommandRouter {
	router := &CommandRouter{
		commands: make(map[string]Handler),
		rt:       rt,
	}

	// Register available commands
	router.commands["shell"] = NewShellCommand(rt)
	router.commands["analyze"] = NewAnalyzeCommand(rt)
	router.commands["summary"] = NewSummaryCommand(rt)
	router.commands["config"] = NewConfigCommand(rt)
	router.commands["version"] = NewVersionCommand(rt)
	router.commands["help"] = NewHelpCommand(router)

	return router
}

// Route executes the command named by the first positional argument.
// With no arguments the interactive shell runs. When showHelp is set,
// help is printed for the named command, or the general help otherwise.
func (r *CommandRouter) Route(args []string, showHelp bool) error {
	if len(args) == 0 {
		if showHelp {
			return r.commands["help"].Execute(nil)
		}
		return r.commands[DefaultCommand].Execute(nil)
	}

	cmdName := args[0]

	handler, exists := r.commands[cmdName]
	if !exists {
		return usageError("unknown command: %s\n\nRun 'logbook help' for usage", cmdName)
	}

	if showHelp {
		if cmdName == "help" {
			return handler.Execute(nil)
		}
		fmt.Fprint(r.rt.Stdout, handler.Help())
		return nil
	}

	return handler.Execute(args[1:])
}

// GetCommand returns a specific command handler by its name.
func (r *CommandRouter) GetCommand(name string) (Handler, bool) {
	cmd, exists := r.commands[name]
	return cmd, exists
}

// GetCommands returns a map of all registered commands.
func (r *CommandRouter) GetCommands() map[string]Handler {
	return r.commands
}
