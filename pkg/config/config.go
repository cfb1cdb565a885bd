// Package config provides configuration loading and management.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the full configuration for the vidbridge CLI.
type Config struct {
	// Logging
	LogLevel string `yaml:"log_level"`

	// Device backend name. "soft" is the only built-in backend.
	Device string `yaml:"device"`

	// Default image format for readback when none is given.
	FourCC string `yaml:"fourcc"`

	// Default geometry for layout queries.
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Defaults returns a Config with default values.
func Defaults() Config {
	return Config{
		LogLevel: "info",
		Device:   "soft",
		FourCC:   "RGBA",
		Width:    1280,
		Height:   720,
	}
}

// Load reads a YAML config file, applying defaults for unset fields.
func Load(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// Save writes the config as YAML.
func (c Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
