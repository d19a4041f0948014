// Kinoteca - In-Memory Media Catalog and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kinoteca

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Input.Dir != "testdata/input" {
		t.Errorf("input.dir = %q", cfg.Input.Dir)
	}
	if cfg.Input.Pattern != "*.json" {
		t.Errorf("input.pattern = %q", cfg.Input.Pattern)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "json" {
		t.Errorf("logging defaults = %+v", cfg.Logging)
	}
	if cfg.Checker.Enabled {
		t.Error("checker should be disabled by default")
	}
}

func TestLoad_EnvOverridesDefaults(t *testing.T) {
	t.Setenv("KINOTECA_INPUT_DIR", "/fixtures")
	t.Setenv("KINOTECA_LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Input.Dir != "/fixtures" {
		t.Errorf("input.dir = %q, want /fixtures", cfg.Input.Dir)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("logging.level = %q, want debug", cfg.Logging.Level)
	}
	// Untouched settings keep their defaults.
	if cfg.Output.Dir != "out" {
		t.Errorf("output.dir = %q, want out", cfg.Output.Dir)
	}
}

func TestLoad_UnmappedEnvIgnored(t *testing.T) {
	t.Setenv("KINOTECA_SOMETHING_ELSE", "value")

	if _, err := Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
}

func TestLoad_FileLayer(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "kinoteca.yaml")
	data := []byte("input:\n  dir: /from-file\nlogging:\n  format: console\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("CONFIG_PATH", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Input.Dir != "/from-file" {
		t.Errorf("input.dir = %q, want /from-file", cfg.Input.Dir)
	}
	if cfg.Logging.Format != "console" {
		t.Errorf("logging.format = %q, want console", cfg.Logging.Format)
	}
}

func TestLoad_EnvBeatsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "kinoteca.yaml")
	if err := os.WriteFile(path, []byte("output:\n  dir: /from-file\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("KINOTECA_OUTPUT_DIR", "/from-env")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Output.Dir != "/from-env" {
		t.Errorf("output.dir = %q, want /from-env", cfg.Output.Dir)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"empty input dir", func(c *Config) { c.Input.Dir = "" }, "input.dir"},
		{"empty pattern", func(c *Config) { c.Input.Pattern = "" }, "input.pattern"},
		{"empty output dir", func(c *Config) { c.Output.Dir = "" }, "output.dir"},
		{"checker without ref dir", func(c *Config) { c.Checker.Enabled = true }, "checker.ref_dir"},
		{"bad level", func(c *Config) { c.Logging.Level = "loud" }, "logging.level"},
		{"bad format", func(c *Config) { c.Logging.Format = "xml" }, "logging.format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate = %v, want mention of %s", err, tt.wantErr)
			}
		})
	}
}
