// FILE: logbook/src/cmd/logbook/flags.go
package main

import (
	"fmt"
	"strconv"
	"strings"
)

// FlagConfig holds the application flags handled before configuration loads
type FlagConfig struct {
	ConfigFile  string
	Quiet       bool
	ShowVersion bool
	ShowHelp    bool

	// Command name and its arguments
	Positional []string

	// --section.key=value overrides passed to the config loader
	Overrides []string
}

// ParseFlags splits args into application flags, config overrides and
// positional arguments. "--" ends flag parsing.
func ParseFlags(args []string) (*FlagConfig, error) {
	fc := &FlagConfig{}
	var err error

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if arg == "--" {
			fc.Positional = append(fc.Positional, args[i+1:]...)
			break
		}

		if !strings.HasPrefix(arg, "-") || arg == "-" {
			fc.Positional = append(fc.Positional, arg)
			continue
		}

		name, value, hasValue := strings.Cut(strings.TrimLeft(arg, "-"), "=")
		switch name {
		case "c", "config":
			if !hasValue {
				if i+1 >= len(args) {
					return nil, fmt.Errorf("flag %s requires a path", arg)
				}
				i++
				value = args[i]
			}
			if value == "" {
				return nil, fmt.Errorf("flag %s requires a path", arg)
			}
			fc.ConfigFile = value

		case "q", "quiet":
			if fc.Quiet, err = boolFlag(arg, value, hasValue); err != nil {
				return nil, err
			}

		case "v", "version":
			if fc.ShowVersion, err = boolFlag(arg, value, hasValue); err != nil {
				return nil, err
			}

		case "h", "help":
			if fc.ShowHelp, err = boolFlag(arg, value, hasValue); err != nil {
				return nil, err
			}

		default:
			// Dotted keys address configuration values
			if strings.HasPrefix(arg, "--") && strings.Contains(name, ".") {
				if !hasValue {
					if i+1 >= len(args) {
						return nil, fmt.Errorf("override %s requires a value", arg)
					}
					i++
					arg = arg + "=" + args[i]
				}
				fc.Overrides = append(fc.Overrides, arg)
				continue
			}
			return nil, fmt.Errorf("unknown flag: %s", arg)
		}
	}

	return fc, nil
}

// boolFlag is true for a bare switch, otherwise the parsed "=value"
func boolFlag(arg, value string, hasValue bool) (bool, error) {
	if !hasValue {
		return true, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("flag %s: invalid boolean value %q", arg, value)
	}
	return b, nil
}
