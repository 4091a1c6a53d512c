// Package config loads settings shared by the todo and staff commands.
package config

import (
	"fmt"
	"log/slog"
	"strings"
)

// Color modes for console output.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config is the root configuration.
type Config struct {
	TasksFile string `yaml:"tasks_file"` // default: tasks.xml
	StaffFile string `yaml:"staff_file"` // default: staff.xml
	LogLevel  string `yaml:"log_level"`  // debug | info | warn | error
	Color     string `yaml:"color"`      // auto | always | never
}

// Level converts LogLevel to a slog level.
func (c Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log_level: %w", err)
	}
	return level, nil
}

func (c Config) validate() error {
	if _, err := c.Level(); err != nil {
		return err
	}
	switch strings.ToLower(c.Color) {
	case ColorAuto, ColorAlways, ColorNever:
		return nil
	default:
		return fmt.Errorf("color: unknown mode %q", c.Color)
	}
}
