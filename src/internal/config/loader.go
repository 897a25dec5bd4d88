// FILE: logbook/src/internal/config/loader.go
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	lconfig "github.com/lixenwraith/config"
)

const envPrefix = "LOGBOOK_"

// ErrConfigNotFound is returned by Load when an explicitly named config file does not exist
var ErrConfigNotFound = lconfig.ErrConfigNotFound

// Load builds the configuration from defaults, the TOML file, the
// environment and CLI overrides, in increasing precedence.
func Load(cliArgs []string) (*Config, error) {
	configPath := GetConfigPath()

	cfg, err := lconfig.NewBuilder().
		WithDefaults(defaults()).
		WithEnvPrefix(envPrefix).
		WithFile(configPath).
		WithArgs(cliArgs).
		WithEnvTransform(customEnvTransform).
		WithSources(
			lconfig.SourceCLI,
			lconfig.SourceEnv,
			lconfig.SourceFile,
			lconfig.SourceDefault,
		).
		Build()

	if err != nil {
		// A missing default file is fine, a file asked for by name is not
		if !errors.Is(err, ErrConfigNotFound) || explicitConfigFile() {
			return nil, fmt.Errorf("failed to load config %s: %w", configPath, err)
		}
	}

	finalConfig := defaults()
	if cfg != nil {
		if err := cfg.Scan(finalConfig); err != nil {
			return nil, fmt.Errorf("failed to scan config: %w", err)
		}
	}

	return finalConfig, validateConfig(finalConfig)
}

// explicitConfigFile reports whether the config file was named by the user
func explicitConfigFile() bool {
	return os.Getenv("LOGBOOK_CONFIG_FILE") != ""
}

func customEnvTransform(path string) string {
	env := strings.ReplaceAll(path, ".", "_")
	env = strings.ToUpper(env)
	env = envPrefix + env
	return env
}

// GetConfigPath resolves the config file from LOGBOOK_CONFIG_FILE,
// LOGBOOK_CONFIG_DIR and the user config directory.
func GetConfigPath() string {
	if configFile := os.Getenv("LOGBOOK_CONFIG_FILE"); configFile != "" {
		if filepath.IsAbs(configFile) {
			return configFile
		}
		if configDir := os.Getenv("LOGBOOK_CONFIG_DIR"); configDir != "" {
			return filepath.Join(configDir, configFile)
		}
		return configFile
	}

	if configDir := os.Getenv("LOGBOOK_CONFIG_DIR"); configDir != "" {
		return filepath.Join(configDir, "logbook.toml")
	}

	if homeDir, err := os.UserHomeDir(); err == nil {
		return filepath.Join(homeDir, ".config", "logbook.toml")
	}

	return "logbook.toml"
}
