// Kinoteca - In-Memory Media Catalog and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kinoteca

// Package validation provides struct validation using go-playground/validator v10.
//
// This package wraps the go-playground/validator library to provide a
// thread-safe singleton validator instance with custom validators for the
// catalog vocabulary and human-readable error messages.
//
// # Overview
//
// The package provides:
//   - Thread-safe singleton validator (initialized once, cached struct info)
//   - Custom validators for catalog vocabulary: genre, award, tier
//   - Error translation to human-readable messages
//   - Future v11 compatibility with WithRequiredStructEnabled
//
// # Quick Start
//
//	type UserRecord struct {
//	    Username     string `json:"username" validate:"required"`
//	    Subscription string `json:"subscription_type" validate:"required,tier"`
//	}
//
//	if verr := validation.ValidateStruct(&rec); verr != nil {
//	    logger.Warn().Err(verr).Str("username", rec.Username).
//	        Msg("skipping malformed user record")
//	    continue
//	}
//
// # Custom Validation Tags
//
//   - genre: value parses as a catalog genre (case-insensitive)
//   - award: value parses as a catalog award (exact match)
//   - tier: value parses as a subscription tier (BASIC or PREMIUM)
//
// Built-in tags (required, min, max, gte, lte, oneof, dive, omitempty)
// work as documented by the underlying library.
//
// # Error Types
//
// FieldError represents a single field validation failure; accessors expose
// the field name, failed tag, tag parameter, and offending value.
// StructValidationError aggregates the field errors for one struct and
// implements error with a combined "; "-joined message.
//
// # Thread Safety
//
// The singleton validator is initialized once and safe for concurrent use:
//
//	validate := validation.GetValidator()  // Thread-safe
//	err := validation.ValidateStruct(&req) // Thread-safe
//
// # See Also
//
//   - internal/fileio: Input record validation during fixture loading
//   - github.com/go-playground/validator/v10: Underlying library
package validation
