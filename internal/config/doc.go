// Kinoteca - In-Memory Media Catalog and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kinoteca

// Package config loads application configuration with Koanf v2.
//
// Configuration is layered, later layers overriding earlier ones:
//
//  1. Built-in defaults (defaultConfig)
//  2. Optional YAML config file (kinoteca.yaml, or CONFIG_PATH)
//  3. Environment variables with the KINOTECA_ prefix
//
// Example:
//
//	KINOTECA_INPUT_DIR=testdata/in \
//	KINOTECA_LOG_LEVEL=debug \
//	kinoteca
//
// The loaded Config is validated before being returned; an invalid
// configuration (missing input directory, unknown log level) fails fast
// at startup rather than mid-batch.
package config
