package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"jbasic/types"
)

// Config holds interpreter settings loaded from a YAML file. Command-line
// flags override individual fields after loading.
type Config struct {
	MaxCallDepth int    `yaml:"max_call_depth"`
	MaxSteps     int64  `yaml:"max_steps"`
	Seed         *int64 `yaml:"seed,omitempty"`
	Locale       string `yaml:"locale,omitempty"`
	Trace        Trace  `yaml:"trace"`
}

// Trace configures execution tracing
type Trace struct {
	Enabled bool     `yaml:"enabled"`
	Filters []string `yaml:"filters,omitempty"`
}

// Default returns the settings used when no file is given
func Default() *Config {
	return &Config{
		MaxCallDepth: types.DefaultMaxCallDepth,
	}
}

// Load reads and validates a config file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML on top of the defaults and validates the result
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the evaluator cannot run with
func (c *Config) Validate() error {
	if c.MaxCallDepth <= 0 {
		return fmt.Errorf("max_call_depth must be positive, got %d", c.MaxCallDepth)
	}
	if c.MaxSteps < 0 {
		return fmt.Errorf("max_steps must not be negative, got %d", c.MaxSteps)
	}
	return nil
}

// ExecContext builds the execution limits described by the config
func (c *Config) ExecContext() *types.ExecContext {
	return types.NewExecContext(c.MaxSteps, c.MaxCallDepth)
}
