package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Default returns a Config with every default applied.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// Load reads a YAML config file, applies environment overrides and defaults.
// A missing file is not an error: the defaults are used instead.
func Load(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("unmarshal config: %w", err)
		}
	case errors.Is(err, fs.ErrNotExist):
	default:
		return nil, fmt.Errorf("read config: %w", err)
	}

	applyEnv(&cfg)
	applyDefaults(&cfg)

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return &cfg, nil
}

// applyEnv lets RECORDS_* environment variables override file values.
func applyEnv(cfg *Config) {
	if v := os.Getenv("RECORDS_TASKS_FILE"); v != "" {
		cfg.TasksFile = v
	}
	if v := os.Getenv("RECORDS_STAFF_FILE"); v != "" {
		cfg.StaffFile = v
	}
	if v := os.Getenv("RECORDS_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
}

// applyDefaults fills in zero-value fields with sensible defaults.
func applyDefaults(cfg *Config) {
	if cfg.TasksFile == "" {
		cfg.TasksFile = "tasks.xml"
	}
	if cfg.StaffFile == "" {
		cfg.StaffFile = "staff.xml"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.Color == "" {
		cfg.Color = ColorAuto
	}
}
