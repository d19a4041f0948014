// Kinoteca - In-Memory Media Catalog and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kinoteca

package query

import "github.com/tomtom215/kinoteca/internal/catalog"

// VideoFilter narrows a video candidate list by launch year and genre.
// A zero Year and an empty Genre mean "unset"; an empty filter accepts
// everything. Both criteria must pass when present.
type VideoFilter struct {
	Year  int
	Genre catalog.Genre
}

// Matches reports whether the video passes the filter.
func (f VideoFilter) Matches(v catalog.Video) bool {
	if f.Year != 0 && v.LaunchYear() != f.Year {
		return false
	}
	if f.Genre != "" && !v.HasGenre(f.Genre) {
		return false
	}
	return true
}

// FilterVideos returns the videos that pass the filter, preserving order.
func FilterVideos(videos []catalog.Video, f VideoFilter) []catalog.Video {
	out := make([]catalog.Video, 0, len(videos))
	for _, v := range videos {
		if f.Matches(v) {
			out = append(out, v)
		}
	}
	return out
}

// ActorFilter narrows an actor candidate list by career-description
// keywords and held awards. All supplied words and all supplied awards
// must match; an empty filter accepts everything.
type ActorFilter struct {
	Words  []string
	Awards []catalog.Award
}

// Matches reports whether the actor passes the filter.
func (f ActorFilter) Matches(a *catalog.Actor) bool {
	for _, word := range f.Words {
		if !a.HasKeyword(word) {
			return false
		}
	}
	for _, award := range f.Awards {
		if !a.HasAward(award) {
			return false
		}
	}
	return true
}

// FilterActors returns the actors that pass the filter, preserving order.
func FilterActors(actors []*catalog.Actor, f ActorFilter) []*catalog.Actor {
	out := make([]*catalog.Actor, 0, len(actors))
	for _, a := range actors {
		if f.Matches(a) {
			out = append(out, a)
		}
	}
	return out
}
