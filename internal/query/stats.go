// Kinoteca - In-Memory Media Catalog and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kinoteca

package query

import "github.com/tomtom215/kinoteca/internal/catalog"

// Derived relationship stats. None of these are stored; each is computed
// on demand by scanning the relevant users or videos.

// FavoriteCount returns how many users hold the title in their
// favourites list.
func FavoriteCount(store *catalog.Store, title string) int {
	count := 0
	for _, u := range store.Users() {
		if u.HasFavorite(title) {
			count++
		}
	}
	return count
}

// ViewCount returns the total number of views of the title across all
// users.
func ViewCount(store *catalog.Store, title string) int {
	total := 0
	for _, u := range store.Users() {
		total += u.Views(title)
	}
	return total
}

// GenreViews returns the summed view counts of every video of the genre.
func GenreViews(store *catalog.Store, genre catalog.Genre) int {
	total := 0
	for _, v := range store.Videos() {
		if v.HasGenre(genre) {
			total += ViewCount(store, v.Title())
		}
	}
	return total
}

// MeanFilmographyRating returns the mean total rating across the actor's
// filmography, averaging only videos that resolve in the store and carry
// a non-zero rating. An actor with no qualifying videos has mean 0.
func MeanFilmographyRating(store *catalog.Store, actor *catalog.Actor) float64 {
	sum := 0.0
	count := 0
	for _, title := range actor.Filmography() {
		v, ok := store.Video(title)
		if !ok {
			continue
		}
		if rating := v.TotalRating(); rating != 0 {
			sum += rating
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}

// UnwatchedVideos returns the videos the user has no watch-history entry
// for, preserving the input order.
func UnwatchedVideos(videos []catalog.Video, user *catalog.User) []catalog.Video {
	out := make([]catalog.Video, 0, len(videos))
	for _, v := range videos {
		if !user.HasWatched(v.Title()) {
			out = append(out, v)
		}
	}
	return out
}

// VideosOfGenre returns the videos of the genre, preserving the input
// order.
func VideosOfGenre(videos []catalog.Video, genre catalog.Genre) []catalog.Video {
	out := make([]catalog.Video, 0, len(videos))
	for _, v := range videos {
		if v.HasGenre(genre) {
			out = append(out, v)
		}
	}
	return out
}
