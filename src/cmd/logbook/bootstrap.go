// FILE: logbook/src/cmd/logbook/bootstrap.go
package main

import (
	"fmt"
	"os"
	"strings"

	"logbook/src/cmd/logbook/commands"
	"logbook/src/internal/config"

	"github.com/lixenwraith/log"
	"golang.org/x/term"
)

// newRuntime wires the process streams, configuration and logger for commands
func newRuntime(cfg *config.Config) *commands.Runtime {
	return &commands.Runtime{
		Config:      cfg,
		Logger:      logger,
		Stdin:       os.Stdin,
		Stdout:      os.Stdout,
		Stderr:      os.Stderr,
		Interactive: term.IsTerminal(int(os.Stdin.Fd())) || cfg.Shell.ForcePrompts,
	}
}

// initializeLogger sets up the logger based on configuration
func initializeLogger(cfg *config.Config) error {
	logger = log.NewLogger()

	configArgs, err := loggerArgs(cfg)
	if err != nil {
		return err
	}

	if err := logger.ApplyConfigString(configArgs...); err != nil {
		return fmt.Errorf("failed to configure logger: %w", err)
	}
	return logger.Start()
}

// loggerArgs translates the logging section into log package overrides
func loggerArgs(cfg *config.Config) ([]string, error) {
	var configArgs []string

	if cfg.Quiet {
		// In quiet mode, disable ALL logging output
		return append(configArgs,
			"disable_file=true",
			noFileDirectory(),
			"enable_console=false",
			"level=255"), nil
	}

	levelValue, err := parseLogLevel(cfg.Logging.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}
	configArgs = append(configArgs, fmt.Sprintf("level=%d", levelValue))

	switch cfg.Logging.Output {
	case "none":
		configArgs = append(configArgs, "disable_file=true", noFileDirectory(), "enable_console=false")

	case "stdout":
		configArgs = append(configArgs,
			"disable_file=true",
			noFileDirectory(),
			"enable_console=true",
			"console_target=stdout")

	case "stderr":
		configArgs = append(configArgs,
			"disable_file=true",
			noFileDirectory(),
			"enable_console=true",
			"console_target=stderr")

	case "file":
		configArgs = append(configArgs, "enable_console=false")
		configureFileLogging(&configArgs, cfg)

	case "both":
		configArgs = append(configArgs, "enable_console=true")
		configureFileLogging(&configArgs, cfg)
		configureConsoleTarget(&configArgs, cfg)

	default:
		return nil, fmt.Errorf("invalid log output mode: %s", cfg.Logging.Output)
	}

	if cfg.Logging.Console != nil && cfg.Logging.Console.Format != "" {
		configArgs = append(configArgs, fmt.Sprintf("format=%s", cfg.Logging.Console.Format))
	}

	return configArgs, nil
}

// The log package creates its directory even with file output disabled,
// so point it somewhere that always exists instead of ./log
func noFileDirectory() string {
	return "directory=" + os.TempDir()
}

// configureFileLogging sets up file-based logging parameters
func configureFileLogging(configArgs *[]string, cfg *config.Config) {
	if cfg.Logging.File != nil {
		*configArgs = append(*configArgs,
			fmt.Sprintf("directory=%s", cfg.Logging.File.Directory),
			fmt.Sprintf("name=%s", cfg.Logging.File.Name),
			fmt.Sprintf("max_size_mb=%d", cfg.Logging.File.MaxSizeMB),
			fmt.Sprintf("max_total_size_mb=%d", cfg.Logging.File.MaxTotalSizeMB))

		if cfg.Logging.File.RetentionHours > 0 {
			*configArgs = append(*configArgs,
				fmt.Sprintf("retention_period_hrs=%.1f", cfg.Logging.File.RetentionHours))
		}
	}
}

// configureConsoleTarget sets up console output parameters
func configureConsoleTarget(configArgs *[]string, cfg *config.Config) {
	target := "stderr"

	if cfg.Logging.Console != nil && cfg.Logging.Console.Target != "" {
		target = cfg.Logging.Console.Target
	}

	// "split" sends info/debug to stdout, warn/error to stderr
	*configArgs = append(*configArgs, fmt.Sprintf("console_target=%s", target))
}

func parseLogLevel(level string) (int, error) {
	switch strings.ToLower(level) {
	case "debug":
		return int(log.LevelDebug), nil
	case "info":
		return int(log.LevelInfo), nil
	case "warn", "warning":
		return int(log.LevelWarn), nil
	case "error":
		return int(log.LevelError), nil
	default:
		return 0, fmt.Errorf("unknown log level: %s", level)
	}
}
