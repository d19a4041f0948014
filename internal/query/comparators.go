// Kinoteca - In-Memory Media Catalog and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kinoteca

package query

import (
	"strings"

	"github.com/tomtom215/kinoteca/internal/catalog"
)

// Single-key comparators for building sort criteria. Comparators over
// derived stats close over the store; the cheap intrinsic ones are plain
// functions.

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// ByActorName orders actors lexicographically by name. Used as the
// deterministic tie-break on every actor ranking.
func ByActorName() Comparator[*catalog.Actor] {
	return func(a, b *catalog.Actor) int {
		return strings.Compare(a.Name(), b.Name())
	}
}

// ByMeanRating orders actors by the mean rating of their filmography.
func ByMeanRating(store *catalog.Store) Comparator[*catalog.Actor] {
	return func(a, b *catalog.Actor) int {
		return compareFloat(MeanFilmographyRating(store, a), MeanFilmographyRating(store, b))
	}
}

// ByAwardCount orders actors by their total award count.
func ByAwardCount() Comparator[*catalog.Actor] {
	return func(a, b *catalog.Actor) int {
		return compareInt(a.AwardCount(), b.AwardCount())
	}
}

// ByTitle orders videos lexicographically by title. Used as the
// deterministic tie-break on every video ranking.
func ByTitle() Comparator[catalog.Video] {
	return func(a, b catalog.Video) int {
		return strings.Compare(a.Title(), b.Title())
	}
}

// ByTotalRating orders videos by their aggregate rating.
func ByTotalRating() Comparator[catalog.Video] {
	return func(a, b catalog.Video) int {
		return compareFloat(a.TotalRating(), b.TotalRating())
	}
}

// ByFavoriteCount orders videos by how many users favourited them.
func ByFavoriteCount(store *catalog.Store) Comparator[catalog.Video] {
	return func(a, b catalog.Video) int {
		return compareInt(FavoriteCount(store, a.Title()), FavoriteCount(store, b.Title()))
	}
}

// ByDuration orders videos by duration in minutes.
func ByDuration() Comparator[catalog.Video] {
	return func(a, b catalog.Video) int {
		return compareInt(a.Duration(), b.Duration())
	}
}

// ByViewCount orders videos by total views across all users.
func ByViewCount(store *catalog.Store) Comparator[catalog.Video] {
	return func(a, b catalog.Video) int {
		return compareInt(ViewCount(store, a.Title()), ViewCount(store, b.Title()))
	}
}

// ByGenreViews orders genres by their summed video view counts.
func ByGenreViews(store *catalog.Store) Comparator[catalog.Genre] {
	return func(a, b catalog.Genre) int {
		return compareInt(GenreViews(store, a), GenreViews(store, b))
	}
}

// ByUsername orders users lexicographically by username. Used as the
// deterministic tie-break on user rankings.
func ByUsername() Comparator[*catalog.User] {
	return func(a, b *catalog.User) int {
		return strings.Compare(a.Username(), b.Username())
	}
}

// ByRatingCount orders users by how many ratings they have given.
func ByRatingCount() Comparator[*catalog.User] {
	return func(a, b *catalog.User) int {
		return compareInt(a.RatingCount(), b.RatingCount())
	}
}
