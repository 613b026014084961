// Package config loads engine tunables from an optional YAML file. The
// computational packages take their knobs as plain arguments; config only
// feeds the CLI and service boundary.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Simulation SimulationConfig `yaml:"simulation"`
	Logging    LoggingConfig    `yaml:"logging"`
}

type SimulationConfig struct {
	Iterations int   `yaml:"iterations"`
	Workers    int   `yaml:"workers"`
	Seed       int64 `yaml:"seed"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Default returns the configuration used when no file is supplied.
func Default() Config {
	return Config{
		Simulation: SimulationConfig{
			Iterations: 1000,
			Workers:    4,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads configuration from path. An empty path or a missing file yields
// the defaults; a malformed file is an error. Unset fields fall back to
// their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse config: %w", err)
	}

	if cfg.Simulation.Iterations <= 0 {
		cfg.Simulation.Iterations = Default().Simulation.Iterations
	}
	if cfg.Simulation.Workers <= 0 {
		cfg.Simulation.Workers = Default().Simulation.Workers
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = Default().Logging.Level
	}

	return cfg, nil
}
