// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading for llmfit.
//
// TOML configuration with sensible defaults, environment variable
// overrides, and validation. Configuration is read-only: llmfit never
// writes a config file.
//
// Configuration file location:
//   - ~/.llmfit/config.toml
//   - Built-in defaults when absent
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete llmfit configuration.
type Config struct {
	// Detect configures the hardware detection run
	Detect DetectConfig `toml:"detect"`

	// Output configures report rendering
	Output OutputConfig `toml:"output"`
}

// DetectConfig contains hardware detection configuration.
type DetectConfig struct {
	// ToolTimeoutSecs bounds one whole detection run, in seconds.
	// Valid range is 1-120; values outside the range are clamped.
	ToolTimeoutSecs int `toml:"tool_timeout_secs"`
	// Disabled lists probe names to skip (nvidia, rocm, amd-sysfs,
	// windows, intel, apple). Unknown names are ignored.
	Disabled []string `toml:"disabled"`
}

// OutputConfig contains report output configuration.
type OutputConfig struct {
	// JSON emits the snapshot as JSON instead of the styled report
	JSON bool `toml:"json"`
	// Plain disables terminal styling in the report
	Plain bool `toml:"plain"`
}

// =============================================================================
// DEFAULTS
// =============================================================================

const (
	defaultToolTimeoutSecs = 10
	minToolTimeoutSecs     = 1
	maxToolTimeoutSecs     = 120
)

// Default returns the built-in default configuration.
func Default() *Config {
	return &Config{
		Detect: DetectConfig{
			ToolTimeoutSecs: defaultToolTimeoutSecs,
		},
	}
}

// ConfigDir returns the llmfit configuration directory.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".llmfit"), nil
}

// ConfigPath returns the path to the TOML config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// Load loads configuration from ~/.llmfit/config.toml, falling back to
// defaults when the file is absent. Environment overrides are applied
// last, then validation clamps out-of-range values.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		cfg := Default()
		cfg.ApplyEnvOverrides()
		cfg.clamp()
		return cfg, nil
	}
	return LoadFromPath(path)
}

// LoadFromPath loads configuration from a specific file path. A missing
// file is not an error; a malformed one is.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()

	if _, statErr := os.Stat(path); statErr == nil {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to decode TOML file: %w", err)
		}
	}

	cfg.ApplyEnvOverrides()
	cfg.clamp()
	return cfg, nil
}

// clamp forces out-of-range values back to valid bounds rather than
// rejecting the config.
func (c *Config) clamp() {
	if c.Detect.ToolTimeoutSecs < minToolTimeoutSecs {
		c.Detect.ToolTimeoutSecs = defaultToolTimeoutSecs
	}
	if c.Detect.ToolTimeoutSecs > maxToolTimeoutSecs {
		c.Detect.ToolTimeoutSecs = maxToolTimeoutSecs
	}
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// ApplyEnvOverrides applies environment variable overrides to the config.
//
// Supported environment variables:
//   - LLMFIT_TOOL_TIMEOUT_SECS: overrides detect.tool_timeout_secs
//   - LLMFIT_DISABLED: comma-separated probe names, overrides detect.disabled
//   - LLMFIT_JSON: set to "1" or "true" to emit JSON output
//   - LLMFIT_PLAIN: set to "1" or "true" to disable styling
func (c *Config) ApplyEnvOverrides() {
	if timeout := os.Getenv("LLMFIT_TOOL_TIMEOUT_SECS"); timeout != "" {
		if secs, err := strconv.Atoi(timeout); err == nil {
			c.Detect.ToolTimeoutSecs = secs
		}
	}

	if disabled := os.Getenv("LLMFIT_DISABLED"); disabled != "" {
		var names []string
		for _, name := range strings.Split(disabled, ",") {
			if name = strings.TrimSpace(name); name != "" {
				names = append(names, name)
			}
		}
		c.Detect.Disabled = names
	}

	if jsonOut := os.Getenv("LLMFIT_JSON"); jsonOut != "" {
		c.Output.JSON = jsonOut == "1" || strings.ToLower(jsonOut) == "true"
	}

	if plain := os.Getenv("LLMFIT_PLAIN"); plain != "" {
		c.Output.Plain = plain == "1" || strings.ToLower(plain) == "true"
	}
}
