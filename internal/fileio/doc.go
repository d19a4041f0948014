// Kinoteca - In-Memory Media Catalog and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kinoteca

// Package fileio reads batch input fixtures and writes result files.
//
// An input fixture is one JSON document holding the full initial catalog
// (actors, users, movies, shows) plus the ordered list of actions to run
// against it. The loader validates every record and builds a fresh
// catalog.Store; malformed records are logged and skipped rather than
// aborting the batch. The writer emits the action results as a JSON
// array in the shape the checker compares against reference files.
package fileio
