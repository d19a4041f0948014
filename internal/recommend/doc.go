// Kinoteca - In-Memory Media Catalog and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kinoteca

// Package recommend selects videos for a user from the subset they have
// not watched. Two kinds are available to every subscription tier
// (standard, best_unseen); three are Premium-only (popular, favorite,
// search). A Basic user requesting a Premium kind fails early with the
// kind's fixed "cannot be applied" message, regardless of catalog state.
package recommend
