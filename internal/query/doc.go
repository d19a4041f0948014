// Kinoteca - In-Memory Media Catalog and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kinoteca

// Package query implements the ranking queries over the catalog: a
// declarative filter for videos and actors, a comparator-chain sort
// engine with a single direction flag, the derived relationship stats
// (favourite counts, view counts, genre views, actor mean ratings) and
// the per-kind top-N query algorithms.
//
// Queries never mutate the store. A query that matches nothing renders an
// empty collection, not an error.
package query
