// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for keyglass.
//
// Configuration sources (in order of precedence):
//   - KEYGLASS_LOG_DIR environment variable
//   - ~/.keyglass/config.toml
//   - Built-in defaults
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/jeranaias/keyglass/internal/util"
)

// EnvLogDir overrides the configured log directory when set.
const EnvLogDir = "KEYGLASS_LOG_DIR"

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete keyglass configuration.
type Config struct {
	// Log contains session log settings
	Log LogConfig `toml:"log"`

	// UI contains display settings
	UI UIConfig `toml:"ui"`
}

// LogConfig contains session log settings.
type LogConfig struct {
	// Dir is the directory session logs are written to.
	// Relative paths resolve against the working directory.
	Dir string `toml:"dir"`
}

// UIConfig contains display settings.
type UIConfig struct {
	// ShowStatusBar toggles the bottom status bar
	ShowStatusBar bool `toml:"show_status_bar"`
	// Color enables styled output. NO_COLOR is respected regardless.
	Color bool `toml:"color"`
}

// Default returns the built-in default configuration.
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Dir: "logs",
		},
		UI: UIConfig{
			ShowStatusBar: true,
			Color:         true,
		},
	}
}

// =============================================================================
// LOAD / SAVE
// =============================================================================

// Load reads the configuration file, falling back to defaults when the file
// does not exist. Environment overrides are applied last.
func Load() (*Config, error) {
	cfg := Default()

	path, err := configPath()
	if err == nil {
		if _, statErr := os.Stat(path); statErr == nil {
			if _, decErr := toml.DecodeFile(path, cfg); decErr != nil {
				return nil, fmt.Errorf("failed to parse %s: %w", path, decErr)
			}
		}
	}

	cfg.applyEnv()
	cfg.validate()
	return cfg, nil
}

// LoadOrInit loads the configuration, writing the default file on first run
// so users have a file to edit. The write is best-effort: a read-only home
// directory still yields a working default configuration.
func LoadOrInit() (*Config, error) {
	if path, err := configPath(); err == nil {
		if _, statErr := os.Stat(path); os.IsNotExist(statErr) {
			_ = Save(Default())
		}
	}
	return Load()
}

// Save writes the configuration to ~/.keyglass/config.toml atomically.
func Save(cfg *Config) error {
	path, err := configPath()
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	return util.AtomicWriteFile(path, buf.Bytes(), 0600)
}

// configPath returns the configuration file location.
func configPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to find home directory: %w", err)
	}
	return filepath.Join(home, ".keyglass", "config.toml"), nil
}

// =============================================================================
// VALIDATION
// =============================================================================

// applyEnv applies environment variable overrides.
func (c *Config) applyEnv() {
	if dir := os.Getenv(EnvLogDir); dir != "" {
		c.Log.Dir = dir
	}
}

// validate clamps nonsense values back to defaults.
func (c *Config) validate() {
	if c.Log.Dir == "" {
		c.Log.Dir = Default().Log.Dir
	}
}
