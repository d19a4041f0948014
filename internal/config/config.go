// Kinoteca - In-Memory Media Catalog and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kinoteca

package config

import (
	"fmt"
	"strings"
)

// Config is the complete application configuration.
type Config struct {
	Input   InputConfig   `koanf:"input"`
	Output  OutputConfig  `koanf:"output"`
	Checker CheckerConfig `koanf:"checker"`
	Logging LoggingConfig `koanf:"logging"`
}

// InputConfig configures where batch fixtures are read from.
type InputConfig struct {
	// Dir is the directory holding input fixture files.
	Dir string `koanf:"dir"`

	// Pattern is the glob matched against file names inside Dir.
	Pattern string `koanf:"pattern"`
}

// OutputConfig configures where batch results are written.
type OutputConfig struct {
	// Dir is the directory result files are written into. Created if missing.
	Dir string `koanf:"dir"`
}

// CheckerConfig configures the reference-output comparison step.
type CheckerConfig struct {
	// Enabled turns the comparison step on.
	Enabled bool `koanf:"enabled"`

	// RefDir is the directory holding reference output files, named like
	// the input files they correspond to.
	RefDir string `koanf:"ref_dir"`
}

// LoggingConfig configures the zerolog output.
type LoggingConfig struct {
	Level     string `koanf:"level"`
	Format    string `koanf:"format"`
	Timestamp bool   `koanf:"timestamp"`
}

// validLogLevels are the accepted logging.level values.
var validLogLevels = map[string]bool{
	"trace": true, "debug": true, "info": true,
	"warn": true, "warning": true, "error": true, "disabled": true,
}

// Validate checks the configuration for internal consistency.
// It returns the first problem found.
func (c *Config) Validate() error {
	if c.Input.Dir == "" {
		return fmt.Errorf("input.dir must not be empty")
	}
	if c.Input.Pattern == "" {
		return fmt.Errorf("input.pattern must not be empty")
	}
	if c.Output.Dir == "" {
		return fmt.Errorf("output.dir must not be empty")
	}
	if c.Checker.Enabled && c.Checker.RefDir == "" {
		return fmt.Errorf("checker.ref_dir must be set when checker.enabled is true")
	}
	if !validLogLevels[strings.ToLower(c.Logging.Level)] {
		return fmt.Errorf("logging.level %q is not a valid level", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("logging.format %q must be json or console", c.Logging.Format)
	}
	return nil
}
