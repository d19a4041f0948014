// Kinoteca - In-Memory Media Catalog and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kinoteca

// Package catalog holds the entity model (actors, users, movies, shows)
// and the in-memory Store that owns them for the lifetime of one batch.
//
// The Store keeps one typed, insertion-ordered collection per entity kind,
// keyed by the entity's unique name or title. Inserts are idempotent: a
// key that is already present is never overwritten. Lookups report absence
// through a boolean, never an error; the four recoverable failure kinds
// (ErrNotFound, ErrAlreadyFavorite, ErrAlreadyRated, ErrNotWatched) are
// sentinel errors returned by mutation methods and converted to display
// strings at the command boundary.
//
// Nothing in this package performs I/O or locking. The engine is strictly
// single-threaded: one batch populates a Store, executes its actions in
// order, and discards it.
package catalog
