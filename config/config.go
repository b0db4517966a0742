// Package config loads the engine's tunable parameters from a YAML file,
// with environment-variable overrides for the values an operator most
// often needs to change without editing the file, such as the sweep
// budget and per-run timeout.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

var errNotPositive = errors.New("config: value must be a positive integer")

// Config holds every solver.Option exposed to the CLI.
type Config struct {
	Engine struct {
		RadiusMultiplier float64 `yaml:"radius_multiplier"`
		MaxSweeps        int     `yaml:"max_sweeps"`
		OverflowCap      int64   `yaml:"overflow_cap"`
		TimeoutSeconds   int     `yaml:"timeout_seconds"`
		MaxParallelism   int     `yaml:"max_parallelism"`
	} `yaml:"engine"`
}

// Default returns the configuration Solve itself defaults to, used when
// no --config flag is given.
func Default() *Config {
	cfg := &Config{}
	cfg.Engine.RadiusMultiplier = 1.0
	cfg.Engine.MaxSweeps = 4
	cfg.Engine.OverflowCap = 1 << 30
	cfg.Engine.TimeoutSeconds = 30
	cfg.Engine.MaxParallelism = 1

	return cfg
}

// LoadConfig reads and parses a YAML config file, then applies any
// STEINITZ_-prefixed environment variable overrides on top of it. A
// missing .env file is not an error — godotenv.Load simply has nothing
// to add in that case.
func LoadConfig(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(file, cfg); err != nil {
		return nil, err
	}

	if v := os.Getenv("STEINITZ_MAX_SWEEPS"); v != "" {
		if n, err := parsePositiveInt(v); err == nil {
			cfg.Engine.MaxSweeps = n
		}
	}
	if v := os.Getenv("STEINITZ_TIMEOUT_SECONDS"); v != "" {
		if n, err := parsePositiveInt(v); err == nil {
			cfg.Engine.TimeoutSeconds = n
		}
	}

	return cfg, nil
}

func parsePositiveInt(s string) (int, error) {
	var n int
	if _, err := fmt.Sscanf(s, "%d", &n); err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, errNotPositive
	}

	return n, nil
}
