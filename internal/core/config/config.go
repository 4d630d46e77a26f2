// Package config handles configuration loading and validation for randid.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the application configuration.
type Config struct {
	Defaults Defaults `yaml:"defaults"`
	Nanoid   Nanoid   `yaml:"nanoid"`
}

// Defaults holds the fallback values for generation flags.
type Defaults struct {
	// Length is the default ID length for str and num.
	Length int `yaml:"length"`
	// Count is the default number of IDs to generate per invocation.
	Count int `yaml:"count"`
	// Template is an optional Go template applied to each generated ID.
	// Empty means one raw ID per line.
	Template string `yaml:"template"`
}

// Nanoid holds defaults for the nanoid command.
type Nanoid struct {
	Length int `yaml:"length"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Defaults: Defaults{
			Length: 16,
			Count:  1,
		},
		Nanoid: Nanoid{
			Length: 21,
		},
	}
}

// Load reads configuration from the given path. If configPath is empty or
// doesn't exist, returns defaults.
func Load(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	// Apply defaults for zero values
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Defaults.Length == 0 {
		c.Defaults.Length = defaults.Defaults.Length
	}
	if c.Defaults.Count == 0 {
		c.Defaults.Count = defaults.Defaults.Count
	}
	if c.Nanoid.Length == 0 {
		c.Nanoid.Length = defaults.Nanoid.Length
	}
}
