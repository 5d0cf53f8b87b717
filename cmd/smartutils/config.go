// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config is the smartutils YAML configuration.
type Config struct {
	// LogLevel is the minimum severity printed to the console.
	LogLevel string `yaml:"log_level" json:"log_level" validate:"omitempty,oneof=debug info success warning error"`

	// LogFile duplicates log lines as JSON records when set.
	LogFile string `yaml:"log_file" json:"log_file"`

	// NoColor disables ANSI colors even on a terminal.
	NoColor bool `yaml:"no_color" json:"no_color"`

	// Timestamps toggles the log line timestamp prefix.
	Timestamps bool `yaml:"timestamps" json:"timestamps"`

	// TimestampPattern is the timeutil pattern for the prefix.
	TimestampPattern string `yaml:"timestamp_pattern" json:"timestamp_pattern"`

	// ToastTTLMillis is the demo toast lifetime in milliseconds.
	ToastTTLMillis int `yaml:"toast_ttl_ms" json:"toast_ttl_ms" validate:"omitempty,min=500,max=30000"`
}

// DefaultAppConfig returns the stock configuration a config file
// overrides field by field.
func DefaultAppConfig() Config {
	return Config{
		LogLevel:         "info",
		Timestamps:       true,
		TimestampPattern: "HH:mm:ss",
		ToastTTLMillis:   2500,
	}
}

// ToastTTL returns the configured toast lifetime as a duration.
func (c Config) ToastTTL() time.Duration {
	return time.Duration(c.ToastTTLMillis) * time.Millisecond
}

// configValidator checks struct tags once per process.
var configValidator = validator.New()

// LoadConfig reads, parses, and validates the YAML file at path,
// layered over defaults. A ~ prefix expands to the home directory. An
// empty path returns the defaults untouched; a missing file is an
// error, since the path was asked for explicitly.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultAppConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(expandHome(path))
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if err := configValidator.Struct(cfg); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// expandHome expands a leading ~ in path.
func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
