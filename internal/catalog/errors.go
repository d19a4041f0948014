// Kinoteca - In-Memory Media Catalog and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kinoteca

package catalog

import "errors"

// The four recoverable failure kinds. Every mutation that can fail returns
// one of these; callers branch with errors.Is and render a message. None
// of them ever aborts a batch.
var (
	// ErrNotFound indicates a referenced user, video or season is absent
	// from the store.
	ErrNotFound = errors.New("not found in the database")

	// ErrAlreadyFavorite indicates the video is already in the user's
	// favourites list.
	ErrAlreadyFavorite = errors.New("already in favourite list")

	// ErrAlreadyRated indicates this user has already rated the video
	// (or, for shows, this season).
	ErrAlreadyRated = errors.New("has been already rated")

	// ErrNotWatched indicates the user has no watch-history entry for
	// the video.
	ErrNotWatched = errors.New("is not seen")
)
