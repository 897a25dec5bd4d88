// FILE: logbook/src/cmd/logbook/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"syscall"
	"time"

	"logbook/src/cmd/logbook/commands"
	"logbook/src/internal/config"
	"logbook/src/internal/version"

	"github.com/lixenwraith/log"
)

var (
	logger       *log.Logger
	shutdownOnce sync.Once
)

func main() {
	flagCfg, err := ParseFlags(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n\nRun 'logbook help' for usage\n", err)
		os.Exit(2)
	}

	output.quiet = flagCfg.Quiet

	if flagCfg.ShowVersion {
		fmt.Println(version.String())
		os.Exit(0)
	}

	if flagCfg.ConfigFile != "" {
		os.Setenv("LOGBOOK_CONFIG_FILE", flagCfg.ConfigFile)
	}

	cfg, err := config.Load(flagCfg.Overrides)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			FatalError(2, "Config file not found: %s\n", config.GetConfigPath())
		}
		FatalError(1, "Failed to load config: %v\n", err)
	}
	cfg.Quiet = cfg.Quiet || flagCfg.Quiet
	output.quiet = cfg.Quiet

	if err := initializeLogger(cfg); err != nil {
		FatalError(1, "Failed to initialize logger: %v\n", err)
	}

	logger.Info("msg", "LogBook starting",
		"version", version.Short(),
		"config_file", config.GetConfigPath(),
		"log_output", cfg.Logging.Output,
		"io_format", cfg.IO.Format)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Ctrl-C during a prompt ends the session without losing log output
	sigHandler := NewSignalHandler(logger)
	defer sigHandler.Stop()
	go func() {
		if sig := sigHandler.Handle(ctx); sig != nil {
			output.printf(output.stdout, "\n")
			shutdownLogger()
			code := 130
			if sig == syscall.SIGTERM {
				code = 143
			}
			os.Exit(code)
		}
	}()

	router := commands.NewCommandRouter(newRuntime(cfg))
	if err := router.Route(flagCfg.Positional, flagCfg.ShowHelp); err != nil {
		logger.Error("msg", "Command failed", "error", err)
		if errors.Is(err, commands.ErrUsage) {
			FatalError(2, "Error: %v\n", strings.TrimPrefix(err.Error(), commands.ErrUsage.Error()+": "))
		}
		FatalError(1, "Error: %v\n", err)
	}

	cancel()
	shutdownLogger()
}

func shutdownLogger() {
	shutdownOnce.Do(func() {
		if logger != nil {
			if err := logger.Shutdown(2 * time.Second); err != nil {
				// Best effort - can't log the shutdown error
				output.printf(output.stderr, "Logger shutdown error: %v\n", err)
			}
		}
	})
}
