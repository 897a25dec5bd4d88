// FILE: logbook/src/internal/config/config.go
package config

// Config is the complete LogBook configuration
type Config struct {
	// Suppress all console output, including errors
	Quiet bool `toml:"quiet"`

	Logging *LogConfig   `toml:"logging"`
	Store   *StoreConfig `toml:"store"`
	IO      *IOConfig    `toml:"io"`
	Shell   *ShellConfig `toml:"shell"`
}

// StoreConfig controls how new entries are stamped
type StoreConfig struct {
	// Go time layout for timestamps of created entries
	TimestampFormat string `toml:"timestamp_format"`
}

// IOConfig controls export and import
type IOConfig struct {
	// Line format: "txt" or "json"
	Format string `toml:"format"`

	// File used when the shell prompt for a filename is left empty
	DefaultFile string `toml:"default_file"`
}

// ShellConfig controls the interactive menu
type ShellConfig struct {
	// Print the numbered menu before every choice
	ShowMenu bool `toml:"show_menu"`

	// Print prompts even when stdin is not a terminal
	ForcePrompts bool `toml:"force_prompts"`
}

func defaults() *Config {
	return &Config{
		Logging: DefaultLogConfig(),
		Store: &StoreConfig{
			TimestampFormat: "2006-01-02T15:04:05.000000",
		},
		IO: &IOConfig{
			Format:      "txt",
			DefaultFile: "logs.txt",
		},
		Shell: &ShellConfig{
			ShowMenu:     true,
			ForcePrompts: false,
		},
	}
}
