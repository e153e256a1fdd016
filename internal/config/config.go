// Package config loads micrograd settings from YAML.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/born-ml/micrograd/internal/parallel"
)

// ErrInvalid is returned by Validate for settings that cannot be used.
var ErrInvalid = errors.New("invalid config")

// EnvWorkers overrides parallel.workers when set.
const EnvWorkers = "MICROGRAD_WORKERS"

// Config holds all micrograd configuration.
type Config struct {
	Logging  LoggingConfig   `yaml:"logging"`
	Parallel parallel.Config `yaml:"parallel"`
	Scenario ScenarioConfig  `yaml:"scenario"`
}

// LoggingConfig configures the zap logger built by the CLI.
type LoggingConfig struct {
	Level       string `yaml:"level"`       // debug, info, warn, error
	Development bool   `yaml:"development"` // human-readable console output
}

// ScenarioConfig holds the leaf inputs of the demo expression
// L = tanh((a + b - c) * f).
type ScenarioConfig struct {
	A float64 `yaml:"a"`
	B float64 `yaml:"b"`
	C float64 `yaml:"c"`
	F float64 `yaml:"f"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level: "info",
		},
		Parallel: parallel.DefaultConfig(),
		Scenario: ScenarioConfig{A: 34, B: 23, C: 88, F: 2},
	}
}

// Load reads configuration from a YAML file on top of the defaults.
// A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// Defaults if config file doesn't exist
	case err != nil:
		return nil, fmt.Errorf("failed to read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes the configuration to a YAML file.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: logging.level %q", ErrInvalid, c.Logging.Level)
	}
	if c.Parallel.NumWorkers < 0 {
		return fmt.Errorf("%w: parallel.workers must be >= 0, got %d", ErrInvalid, c.Parallel.NumWorkers)
	}
	if c.Parallel.MinChunkSize < 0 {
		return fmt.Errorf("%w: parallel.min_nodes must be >= 0, got %d", ErrInvalid, c.Parallel.MinChunkSize)
	}
	return nil
}

func (c *Config) applyEnvOverrides() error {
	v := os.Getenv(EnvWorkers)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("%w: %s=%q: %v", ErrInvalid, EnvWorkers, v, err)
	}
	c.Parallel.NumWorkers = n
	return nil
}
