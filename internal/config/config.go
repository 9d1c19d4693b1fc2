// Package config loads chronos settings from a TOML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// ConfigFileName is the file looked up inside the chronos config directory.
const ConfigFileName = "config.toml"

// Config holds user-tunable settings. Zero values are filled in from
// DefaultConfig during Load, so a partial file is fine.
type Config struct {
	// Zoom is the starting zoom level: "day", "week", or "month".
	Zoom string `toml:"zoom"`
	// Theme selects the color palette by name.
	Theme string `toml:"theme"`
	// TouchMode widens the resize grab zones at bar edges.
	TouchMode bool `toml:"touch_mode"`
	// Database overrides the default database path. The CHRONOS_DB
	// environment variable takes precedence over this setting.
	Database string `toml:"database"`
}

// DefaultConfig returns the settings used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		Zoom:  "week",
		Theme: "gruvbox",
	}
}

// DefaultConfigDir returns the chronos config directory, honoring
// XDG_CONFIG_HOME and falling back to ~/.config.
func DefaultConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "chronos")
}

// Load reads the config file from dir, merged over defaults. A missing
// file is not an error; a malformed one is.
func Load(dir string) (*Config, error) {
	base := DefaultConfig()
	path := filepath.Join(dir, ConfigFileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return base, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var file Config
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	merge(base, &file)
	if err := base.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return base, nil
}

func merge(base, overlay *Config) {
	if overlay.Zoom != "" {
		base.Zoom = overlay.Zoom
	}
	if overlay.Theme != "" {
		base.Theme = overlay.Theme
	}
	if overlay.TouchMode {
		base.TouchMode = true
	}
	if overlay.Database != "" {
		base.Database = overlay.Database
	}
}

func (c *Config) validate() error {
	switch c.Zoom {
	case "day", "week", "month":
	default:
		return fmt.Errorf("unknown zoom level %q", c.Zoom)
	}
	return nil
}
