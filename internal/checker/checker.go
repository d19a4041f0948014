// Kinoteca - In-Memory Media Catalog and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kinoteca

// Package checker compares produced result files against reference
// outputs. Comparison is structural JSON equality, so formatting
// differences (whitespace, key order) between the two files never count
// as mismatches.
package checker

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
)

// Outcome is the comparison result for one file pair.
type Outcome struct {
	File   string
	Passed bool
	Detail string
}

// Summary aggregates the outcomes of one comparison run.
type Summary struct {
	Outcomes []Outcome
}

// Passed counts matching file pairs.
func (s Summary) Passed() int {
	n := 0
	for _, o := range s.Outcomes {
		if o.Passed {
			n++
		}
	}
	return n
}

// Failed counts mismatching or unreadable file pairs.
func (s Summary) Failed() int {
	return len(s.Outcomes) - s.Passed()
}

// Checker compares output files with their reference counterparts.
type Checker struct {
	logger zerolog.Logger
}

// New returns a checker that logs each comparison.
func New(logger zerolog.Logger) *Checker {
	return &Checker{logger: logger.With().Str("component", "checker").Logger()}
}

// CompareFile compares one produced file against one reference file.
func (c *Checker) CompareFile(outPath, refPath string) Outcome {
	name := filepath.Base(outPath)

	produced, err := readJSON(outPath)
	if err != nil {
		return Outcome{File: name, Detail: fmt.Sprintf("output: %v", err)}
	}
	reference, err := readJSON(refPath)
	if err != nil {
		return Outcome{File: name, Detail: fmt.Sprintf("reference: %v", err)}
	}

	if !reflect.DeepEqual(produced, reference) {
		return Outcome{File: name, Detail: "output differs from reference"}
	}
	return Outcome{File: name, Passed: true}
}

// CompareDir compares every file in outDir against the same-named file
// in refDir and returns the aggregate summary. Files present only in
// refDir are reported as failures; a produced file was expected.
func (c *Checker) CompareDir(outDir, refDir string) (Summary, error) {
	refs, err := filepath.Glob(filepath.Join(refDir, "*.json"))
	if err != nil {
		return Summary{}, fmt.Errorf("list reference files: %w", err)
	}

	var summary Summary
	for _, refPath := range refs {
		outPath := filepath.Join(outDir, filepath.Base(refPath))
		outcome := c.CompareFile(outPath, refPath)
		summary.Outcomes = append(summary.Outcomes, outcome)

		event := c.logger.Info()
		if !outcome.Passed {
			event = c.logger.Error().Str("detail", outcome.Detail)
		}
		event.Str("file", outcome.File).Bool("passed", outcome.Passed).Msg("compared")
	}

	c.logger.Info().
		Int("passed", summary.Passed()).
		Int("failed", summary.Failed()).
		Msg("comparison finished")
	return summary, nil
}

func readJSON(path string) (interface{}, error) {
	data, err := os.ReadFile(path) //nolint:gosec // paths come from operator config
	if err != nil {
		return nil, err
	}
	var value interface{}
	if err := json.Unmarshal(data, &value); err != nil {
		return nil, fmt.Errorf("invalid JSON in %s: %w", filepath.Base(path), err)
	}
	return value, nil
}
