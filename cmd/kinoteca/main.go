// Kinoteca - In-Memory Media Catalog and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kinoteca

// Package main is the entry point for the kinoteca batch runner.
//
// Kinoteca loads media-catalog fixtures, executes each fixture's actions
// (commands, queries, recommendations) against a fresh in-memory store,
// and writes one result file per fixture. With the checker enabled it
// then compares every result file against its reference output.
//
// # Processing Pipeline
//
// For every input file matching input.pattern under input.dir:
//
//  1. Load: parse the fixture, validate records, build a fresh store
//  2. Run: execute the fixture's actions in ascending id order
//  3. Write: emit the results to output.dir under the same file name
//
// Fixtures are independent; a fixture that fails to load is reported and
// skipped, and the remaining fixtures still run. The process exits
// non-zero when any fixture failed or, with the checker enabled, when
// any output differs from its reference.
//
// # Configuration
//
// Configuration is loaded via Koanf v2 with layered sources (highest
// priority wins):
//   - Environment variables (KINOTECA_ prefix)
//   - Config file (kinoteca.yaml, or CONFIG_PATH)
//   - Built-in defaults
//
// # Example Usage
//
//	export KINOTECA_INPUT_DIR=testdata/input
//	export KINOTECA_OUTPUT_DIR=out
//	export KINOTECA_CHECKER_ENABLED=true
//	export KINOTECA_CHECKER_REF_DIR=testdata/reference
//	./kinoteca
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/tomtom215/kinoteca/internal/action"
	"github.com/tomtom215/kinoteca/internal/checker"
	"github.com/tomtom215/kinoteca/internal/config"
	"github.com/tomtom215/kinoteca/internal/fileio"
	"github.com/tomtom215/kinoteca/internal/logging"
)

func main() {
	// Optional .env for local runs; absence is not an error.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		// Use default logger for config errors (config not yet available)
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Timestamp: cfg.Logging.Timestamp,
	})

	logger := logging.With().Str("run_id", uuid.NewString()).Logger()
	logger.Info().
		Str("input_dir", cfg.Input.Dir).
		Str("output_dir", cfg.Output.Dir).
		Bool("checker", cfg.Checker.Enabled).
		Msg("Starting kinoteca batch run")

	if err := run(cfg, logger); err != nil {
		logger.Error().Err(err).Msg("Batch run failed")
		os.Exit(1)
	}
	logger.Info().Msg("Batch run finished")
}

func run(cfg *config.Config, logger zerolog.Logger) error {
	fixtures, err := filepath.Glob(filepath.Join(cfg.Input.Dir, cfg.Input.Pattern))
	if err != nil {
		return fmt.Errorf("list fixtures: %w", err)
	}
	if len(fixtures) == 0 {
		return fmt.Errorf("no fixtures match %s in %s", cfg.Input.Pattern, cfg.Input.Dir)
	}
	sort.Strings(fixtures)

	loader := fileio.NewLoader(logger)
	failed := 0
	for _, fixture := range fixtures {
		if err := processFixture(loader, logger, fixture, cfg.Output.Dir); err != nil {
			logger.Error().Err(err).Str("fixture", fixture).Msg("Fixture failed")
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d fixtures failed", failed, len(fixtures))
	}

	if cfg.Checker.Enabled {
		summary, err := checker.New(logger).CompareDir(cfg.Output.Dir, cfg.Checker.RefDir)
		if err != nil {
			return err
		}
		if summary.Failed() > 0 {
			return fmt.Errorf("%d of %d outputs differ from reference", summary.Failed(), len(summary.Outcomes))
		}
	}
	return nil
}

// processFixture runs one fixture end to end against its own fresh store.
func processFixture(loader *fileio.Loader, logger zerolog.Logger, fixture, outDir string) error {
	store, actions, err := loader.Load(fixture)
	if err != nil {
		return err
	}

	results := action.NewRunner(store, logger).Run(actions)

	outPath := filepath.Join(outDir, filepath.Base(fixture))
	return fileio.WriteResults(outPath, results)
}
