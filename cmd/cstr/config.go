package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// defaultConfigFile is read from the working directory when --config is not set.
const defaultConfigFile = "cstr.toml"

// Config holds CLI defaults loaded from a TOML file.
//
//	delims = " \t\n"
//	color  = "auto"
//	escape = false
type Config struct {
	// Delims is the delimiter set used by tok and span when --delims is not given.
	Delims string `toml:"delims"`
	// Color is one of auto, on, off.
	Color string `toml:"color"`
	// Escape interprets Go escape sequences (\x00, \t) in arguments.
	Escape bool `toml:"escape"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Delims: " \t\n",
		Color:  "auto",
		Escape: false,
	}
}

// LoadConfig reads path over the defaults. An empty path tries
// defaultConfigFile and falls back to the defaults if it does not exist.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		path = defaultConfigFile
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return Config{}, fmt.Errorf("failed to load config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the configured values.
func (c Config) Validate() error {
	switch c.Color {
	case "auto", "on", "off":
		return nil
	default:
		return fmt.Errorf("unknown color mode %q (want auto|on|off)", c.Color)
	}
}
