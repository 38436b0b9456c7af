// Package config loads ydcv settings from $XDG_CONFIG_HOME/ydcv/config.toml.
// Command-line flags take precedence over values read here.
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"
)

// RelPath is the config file location relative to the XDG config dirs.
const RelPath = "ydcv/config.toml"

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config holds user settings.
type Config struct {
	Color       string `toml:"color"`        // auto, always, never
	HTML        bool   `toml:"html"`         // markup output instead of ANSI
	Notify      bool   `toml:"notify"`       // desktop notifications; implies html
	Dict        string `toml:"dict"`         // dictionary JSON file
	History     bool   `toml:"history"`      // record lookups
	HistoryFile string `toml:"history_file"` // history JSON file
}

// Default returns the settings used when no config file exists.
func Default() Config {
	dataDir := filepath.Join(xdg.DataHome, "ydcv")
	return Config{
		Color:       ColorAuto,
		Dict:        filepath.Join(dataDir, "dict.json"),
		History:     true,
		HistoryFile: filepath.Join(dataDir, "history.json"),
	}
}

// Load reads the first config file found in the XDG config search paths.
// Returns Default() when there is none.
func Load() (Config, error) {
	path, err := xdg.SearchConfigFile(RelPath)
	if err != nil {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile reads the config file at path over the defaults. Unknown keys are
// rejected so that typos do not go unnoticed.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks enumerated settings.
func (c Config) Validate() error {
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
		return nil
	default:
		return fmt.Errorf("unknown color mode %q (want auto, always or never)", c.Color)
	}
}
