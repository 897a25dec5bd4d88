// FILE: logbook/src/internal/config/saver.go
package config

import (
	"fmt"

	lconfig "github.com/lixenwraith/config"
)

// Saves the configuration to the specified file path.
func (c *Config) SaveToFile(path string) error {
	if path == "" {
		return fmt.Errorf("cannot save config: path is empty")
	}

	// Only the struct values are saved; file, env and process args stay out
	lcfg, err := lconfig.NewBuilder().
		WithTarget(c).
		WithArgs(nil).
		WithSources(lconfig.SourceDefault).
		Build()
	if err != nil {
		return fmt.Errorf("failed to create config builder: %w", err)
	}

	// Atomic write handled by lconfig
	if err := lcfg.Save(path); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	return nil
}
