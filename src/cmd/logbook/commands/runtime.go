// FILE: logbook/src/cmd/logbook/commands/runtime.go
package commands

import (
	"errors"
	"fmt"
	"io"

	"logbook/src/internal/config"
	"logbook/src/internal/format"
	"logbook/src/internal/store"

	"github.com/lixenwraith/log"
)

// ErrUsage marks errors caused by invalid command-line usage
var ErrUsage = errors.New("usage error")

// Runtime carries what every command needs from main
type Runtime struct {
	Config *config.Config
	Logger *log.Logger
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// Stdin is a terminal, or prompts are forced by config
	Interactive bool
}

// newStore builds an empty store from the runtime configuration
func (rt *Runtime) newStore() (*store.Store, error) {
	codec, err := format.New(rt.Config.IO.Format, rt.Logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create codec: %w", err)
	}

	return store.New(
		store.WithTimestampFormat(rt.Config.Store.TimestampFormat),
		store.WithCodec(codec),
		store.WithLogger(rt.Logger),
	), nil
}

func usageError(msg string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrUsage, fmt.Sprintf(msg, args...))
}
