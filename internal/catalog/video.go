// Kinoteca - In-Memory Media Catalog and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kinoteca

package catalog

// VideoKind discriminates the two video variants.
type VideoKind int

const (
	// KindMovie is a single-part video with one duration and one
	// ratings list.
	KindMovie VideoKind = iota
	// KindShow is a multi-season video; each season carries its own
	// duration and ratings.
	KindShow
)

// String returns a human-readable kind name.
func (k VideoKind) String() string {
	if k == KindShow {
		return "show"
	}
	return "movie"
}

// Video is the capability interface shared by the two variants.
// Rating semantics differ per variant:
//
//   - A movie's total rating is the arithmetic mean of its ratings,
//     zero when unrated. The season argument to AddRating is ignored
//     (the input convention passes 0 for movies).
//   - A show's total rating is the mean of its seasons' average ratings,
//     where an unrated season contributes 0 to that mean. AddRating
//     targets a 1-based season index.
type Video interface {
	Title() string
	Key() string
	LaunchYear() int
	Kind() VideoKind

	// Genres returns the genre set in record order.
	Genres() []Genre
	// HasGenre reports genre membership.
	HasGenre(g Genre) bool

	// Duration returns the length in minutes (for shows, the sum over
	// seasons).
	Duration() int

	// TotalRating returns the variant's aggregate rating. Zero means
	// "unrated" at the query-exclusion layer.
	TotalRating() float64

	// AddRating appends a rating on behalf of username. A (user, video)
	// pair - or for shows a (user, season) pair - contributes at most
	// one rating (ErrAlreadyRated). A season index that does not exist
	// resolves to ErrNotFound.
	AddRating(username string, grade float64, season int) error
}

// videoBase carries the fields common to both variants.
type videoBase struct {
	title      string
	launchYear int
	genres     []Genre
	genreSet   map[Genre]struct{}
}

func newVideoBase(title string, launchYear int, genres []Genre) videoBase {
	b := videoBase{
		title:      title,
		launchYear: launchYear,
		genres:     make([]Genre, len(genres)),
		genreSet:   make(map[Genre]struct{}, len(genres)),
	}
	copy(b.genres, genres)
	for _, g := range genres {
		b.genreSet[g] = struct{}{}
	}
	return b
}

func (b *videoBase) Title() string    { return b.title }
func (b *videoBase) Key() string      { return b.title }
func (b *videoBase) LaunchYear() int  { return b.launchYear }
func (b *videoBase) Genres() []Genre  { return b.genres }
func (b *videoBase) HasGenre(g Genre) bool {
	_, ok := b.genreSet[g]
	return ok
}

// Movie is the single-part video variant.
type Movie struct {
	videoBase
	duration int
	ratings  []float64
	ratedBy  map[string]struct{}
}

// NewMovie builds a movie from an input record.
func NewMovie(title string, launchYear, duration int, genres []Genre) *Movie {
	return &Movie{
		videoBase: newVideoBase(title, launchYear, genres),
		duration:  duration,
		ratedBy:   make(map[string]struct{}),
	}
}

// Kind returns KindMovie.
func (m *Movie) Kind() VideoKind { return KindMovie }

// Duration returns the movie length in minutes.
func (m *Movie) Duration() int { return m.duration }

// TotalRating returns the mean of all ratings, zero when unrated.
func (m *Movie) TotalRating() float64 {
	if len(m.ratings) == 0 {
		return 0
	}
	sum := 0.0
	for _, r := range m.ratings {
		sum += r
	}
	return sum / float64(len(m.ratings))
}

// AddRating appends a rating for username. The season argument is ignored
// for movies.
func (m *Movie) AddRating(username string, grade float64, _ int) error {
	if _, rated := m.ratedBy[username]; rated {
		return ErrAlreadyRated
	}
	m.ratings = append(m.ratings, grade)
	m.ratedBy[username] = struct{}{}
	return nil
}

// Season is one season of a show, with its own duration, ratings and the
// set of users that have rated it.
type Season struct {
	duration int
	ratings  []float64
	ratedBy  map[string]struct{}
}

// NewSeason builds a season with the given duration in minutes.
func NewSeason(duration int) *Season {
	return &Season{
		duration: duration,
		ratedBy:  make(map[string]struct{}),
	}
}

// Duration returns the season length in minutes.
func (s *Season) Duration() int { return s.duration }

// AverageRating returns the mean of the season's ratings, zero when
// unrated.
func (s *Season) AverageRating() float64 {
	if len(s.ratings) == 0 {
		return 0
	}
	sum := 0.0
	for _, r := range s.ratings {
		sum += r
	}
	return sum / float64(len(s.ratings))
}

func (s *Season) addRating(username string, grade float64) error {
	if _, rated := s.ratedBy[username]; rated {
		return ErrAlreadyRated
	}
	s.ratings = append(s.ratings, grade)
	s.ratedBy[username] = struct{}{}
	return nil
}

// Show is the multi-season video variant.
type Show struct {
	videoBase
	seasons []*Season
}

// NewShow builds a show from an input record. Seasons keep their input
// order; rating commands address them by 1-based index.
func NewShow(title string, launchYear int, genres []Genre, seasons []*Season) *Show {
	return &Show{
		videoBase: newVideoBase(title, launchYear, genres),
		seasons:   seasons,
	}
}

// Kind returns KindShow.
func (s *Show) Kind() VideoKind { return KindShow }

// Seasons returns the seasons in order. The returned slice must not be
// mutated.
func (s *Show) Seasons() []*Season { return s.seasons }

// Duration returns the sum of all season durations.
func (s *Show) Duration() int {
	total := 0
	for _, season := range s.seasons {
		total += season.duration
	}
	return total
}

// TotalRating returns the mean of the seasons' average ratings. An
// unrated season contributes 0 to the mean rather than being excluded.
func (s *Show) TotalRating() float64 {
	if len(s.seasons) == 0 {
		return 0
	}
	sum := 0.0
	for _, season := range s.seasons {
		sum += season.AverageRating()
	}
	return sum / float64(len(s.seasons))
}

// AddRating appends a rating to the 1-based season index on behalf of
// username. An out-of-range index resolves to ErrNotFound: the addressed
// season does not exist.
func (s *Show) AddRating(username string, grade float64, season int) error {
	if season < 1 || season > len(s.seasons) {
		return ErrNotFound
	}
	return s.seasons[season-1].addRating(username, grade)
}
