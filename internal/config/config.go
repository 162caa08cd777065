// SPDX-License-Identifier: Apache-2.0

// Package config handles the application configuration file: which binaries
// back the external engines, the evaluation timeout, and the profile selected
// at startup. A missing file is not an error; everything has a default.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"rexi/internal/engine"
)

// Config is the top-level application configuration.
type Config struct {
	// DefaultProfile is the profile ID selected at startup (optional).
	DefaultProfile string `yaml:"default_profile,omitempty"`

	// TimeoutSeconds bounds a single external-engine evaluation.
	TimeoutSeconds int `yaml:"timeout_seconds,omitempty"`

	// AwkCommand overrides the detected AWK interpreter (gawk/mawk/awk).
	AwkCommand string `yaml:"awk_command,omitempty"`

	// JqCommand overrides the jq binary name.
	JqCommand string `yaml:"jq_command,omitempty"`

	// GrepCommand overrides the grep binary used for the grep and pcre
	// profiles.
	GrepCommand string `yaml:"grep_command,omitempty"`

	// SedCommand overrides the sed binary.
	SedCommand string `yaml:"sed_command,omitempty"`
}

// Timeout returns the configured evaluation timeout, falling back to the
// engine default.
func (c Config) Timeout() time.Duration {
	if c.TimeoutSeconds > 0 {
		return time.Duration(c.TimeoutSeconds) * time.Second
	}
	return engine.DefaultTimeout
}

// EngineOptions converts the config into registry wiring options.
func (c Config) EngineOptions() engine.Options {
	return engine.Options{
		Timeout:        c.Timeout(),
		DefaultProfile: c.DefaultProfile,
		AwkBinary:      c.AwkCommand,
		JqBinary:       c.JqCommand,
		GrepBinary:     c.GrepCommand,
		SedBinary:      c.SedCommand,
	}
}

func DefaultConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}
	return filepath.Join(configDir, "rexi", "config.yaml"), nil
}

func LoadConfig() (Config, error) {
	configPath, err := DefaultConfigPath()
	if err != nil {
		return Config{}, err
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
	}
	return cfg, nil
}

func EnsureConfigDir() error {
	configPath, err := DefaultConfigPath()
	if err != nil {
		return err
	}
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0750); err != nil {
		return fmt.Errorf("failed to create config directory %s: %w", configDir, err)
	}
	return nil
}

func SaveConfig(cfg Config) error {
	configPath, err := DefaultConfigPath()
	if err != nil {
		return err
	}
	if err := EnsureConfigDir(); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config to YAML: %w", err)
	}
	if err := os.WriteFile(configPath, data, 0640); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", configPath, err)
	}
	return nil
}
