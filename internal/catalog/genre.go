// Kinoteca - In-Memory Media Catalog and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kinoteca

package catalog

import "strings"

// Genre is a closed set of video genres. The zero value means "no genre".
type Genre string

// The full genre universe, in canonical order. Genre-ranked algorithms
// iterate this slice, so its order is the deterministic tie-break when
// two genres score equally.
const (
	GenreAction          Genre = "Action"
	GenreAdventure       Genre = "Adventure"
	GenreDrama           Genre = "Drama"
	GenreComedy          Genre = "Comedy"
	GenreCrime           Genre = "Crime"
	GenreRomance         Genre = "Romance"
	GenreWar             Genre = "War"
	GenreHistory         Genre = "History"
	GenreThriller        Genre = "Thriller"
	GenreMystery         Genre = "Mystery"
	GenreFamily          Genre = "Family"
	GenreHorror          Genre = "Horror"
	GenreFantasy         Genre = "Fantasy"
	GenreScienceFiction  Genre = "Science Fiction"
	GenreActionAdventure Genre = "Action & Adventure"
	GenreSciFiFantasy    Genre = "Sci-Fi & Fantasy"
	GenreAnimation       Genre = "Animation"
	GenreKids            Genre = "Kids"
	GenreWestern         Genre = "Western"
	GenreTVMovie         Genre = "TV Movie"
)

// allGenres lists every genre in canonical order.
var allGenres = []Genre{
	GenreAction, GenreAdventure, GenreDrama, GenreComedy, GenreCrime,
	GenreRomance, GenreWar, GenreHistory, GenreThriller, GenreMystery,
	GenreFamily, GenreHorror, GenreFantasy, GenreScienceFiction,
	GenreActionAdventure, GenreSciFiFantasy, GenreAnimation, GenreKids,
	GenreWestern, GenreTVMovie,
}

// genresByName maps lower-cased names to genres for parsing.
var genresByName = func() map[string]Genre {
	m := make(map[string]Genre, len(allGenres))
	for _, g := range allGenres {
		m[strings.ToLower(string(g))] = g
	}
	return m
}()

// AllGenres returns every genre in canonical order. The returned slice is
// a copy and safe to reorder.
func AllGenres() []Genre {
	out := make([]Genre, len(allGenres))
	copy(out, allGenres)
	return out
}

// ParseGenre resolves a genre name case-insensitively.
// Returns false for an empty or unknown name.
func ParseGenre(name string) (Genre, bool) {
	g, ok := genresByName[strings.ToLower(name)]
	return g, ok
}

// String returns the canonical genre name.
func (g Genre) String() string {
	return string(g)
}
