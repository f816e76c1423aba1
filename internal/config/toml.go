// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Play  PlayConfig  `toml:"play"`
	Stats StatsConfig `toml:"stats"`
}

// PlayConfig maps play-related settings.
type PlayConfig struct {
	List       *string `toml:"list"`
	Slots      *int    `toml:"slots"`
	Goal       *int    `toml:"goal"`
	Romaji     *bool   `toml:"romaji"`
	Shuffle    *bool   `toml:"shuffle"`
	WidthFold  *bool   `toml:"width-fold"`
	FocusWeak  *bool   `toml:"focus-weak"`
	WeakTop    *int    `toml:"weak-top"`
	WeakWindow *int    `toml:"weak-window"`
}

// StatsConfig maps stats-related settings.
type StatsConfig struct {
	Last        *int `toml:"last"`
	CurveWindow *int `toml:"curve-window"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return FileConfig{}, fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	return cfg, nil
}
