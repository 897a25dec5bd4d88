// FILE: logbook/src/internal/config/validation.go
package config

import (
	"fmt"
	"strings"
	"time"
)

// validateConfig is the centralized validator for the entire configuration
func validateConfig(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	if cfg.Logging == nil {
		cfg.Logging = DefaultLogConfig()
	}
	if err := validateLogConfig(cfg.Logging); err != nil {
		return fmt.Errorf("logging config: %w", err)
	}

	if err := validateStoreConfig(cfg.Store); err != nil {
		return fmt.Errorf("store config: %w", err)
	}

	if err := validateIOConfig(cfg.IO); err != nil {
		return fmt.Errorf("io config: %w", err)
	}

	if cfg.Shell == nil {
		return fmt.Errorf("shell config: missing")
	}

	return nil
}

func validateLogConfig(cfg *LogConfig) error {
	validOutputs := map[string]bool{
		"file": true, "stdout": true, "stderr": true,
		"both": true, "none": true,
	}
	if !validOutputs[cfg.Output] {
		return fmt.Errorf("invalid log output mode: %s", cfg.Output)
	}

	validLevels := map[string]bool{
		"debug": true, "info": true, "warn": true, "error": true,
	}
	if !validLevels[cfg.Level] {
		return fmt.Errorf("invalid log level: %s", cfg.Level)
	}

	if cfg.Output == "file" || cfg.Output == "both" {
		if cfg.File == nil {
			return fmt.Errorf("file output requires [logging.file]")
		}
		if strings.TrimSpace(cfg.File.Directory) == "" {
			return fmt.Errorf("file directory must not be empty")
		}
		if strings.TrimSpace(cfg.File.Name) == "" {
			return fmt.Errorf("file name must not be empty")
		}
		if cfg.File.MaxSizeMB < 0 || cfg.File.MaxTotalSizeMB < 0 {
			return fmt.Errorf("file size limits must not be negative")
		}
	}

	if cfg.Console != nil {
		validTargets := map[string]bool{
			"stdout": true, "stderr": true, "split": true,
		}
		if !validTargets[cfg.Console.Target] {
			return fmt.Errorf("invalid console target: %s", cfg.Console.Target)
		}

		validFormats := map[string]bool{
			"txt": true, "json": true, "": true,
		}
		if !validFormats[cfg.Console.Format] {
			return fmt.Errorf("invalid console format: %s", cfg.Console.Format)
		}
	}

	return nil
}

func validateStoreConfig(cfg *StoreConfig) error {
	if cfg == nil {
		return fmt.Errorf("missing")
	}
	if strings.TrimSpace(cfg.TimestampFormat) == "" {
		return fmt.Errorf("timestamp_format must not be empty")
	}
	// A layout without any time element formats every entry identically
	reference := time.Date(2001, 2, 3, 4, 5, 6, 0, time.UTC)
	if reference.Format(cfg.TimestampFormat) == cfg.TimestampFormat {
		return fmt.Errorf("timestamp_format has no time elements: %q", cfg.TimestampFormat)
	}
	// Import splits on the first " [", so a timestamp must not contain it
	if strings.Contains(reference.Format(cfg.TimestampFormat), " [") {
		return fmt.Errorf("timestamp_format must not produce \" [\": %q", cfg.TimestampFormat)
	}
	return nil
}

func validateIOConfig(cfg *IOConfig) error {
	if cfg == nil {
		return fmt.Errorf("missing")
	}
	switch cfg.Format {
	case "txt", "json":
	default:
		return fmt.Errorf("invalid format: %s (valid: txt, json)", cfg.Format)
	}
	return nil
}
