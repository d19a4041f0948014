// Kinoteca - In-Memory Media Catalog and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kinoteca

package fileio

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-json"

	"github.com/tomtom215/kinoteca/internal/action"
)

// WriteResults writes one batch's results to path as a JSON array,
// creating parent directories as needed. A nil or empty slice writes
// "[]" so every processed fixture leaves an output file.
func WriteResults(path string, results []action.Result) error {
	if results == nil {
		results = []action.Result{}
	}

	data, err := json.Marshal(results)
	if err != nil {
		return fmt.Errorf("encode results: %w", err)
	}
	data = append(data, '\n')

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write results %s: %w", path, err)
	}
	return nil
}
