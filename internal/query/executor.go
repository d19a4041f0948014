// Kinoteca - In-Memory Media Catalog and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kinoteca

package query

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/tomtom215/kinoteca/internal/catalog"
)

// Type identifies a ranking query.
type Type int

const (
	// TypeAverage ranks actors by the mean rating of their filmography.
	TypeAverage Type = iota
	// TypeAwards ranks filtered actors by total award count.
	TypeAwards
	// TypeFilterDescription ranks filtered actors by name.
	TypeFilterDescription
	// TypeRatings ranks videos by aggregate rating.
	TypeRatings
	// TypeFavorite ranks videos by favourite count.
	TypeFavorite
	// TypeLongest ranks videos by duration.
	TypeLongest
	// TypeMostViewed ranks videos by total view count.
	TypeMostViewed
	// TypeNumRatings ranks users by how many ratings they have given.
	TypeNumRatings
)

var queryTypeNames = map[string]Type{
	"average":            TypeAverage,
	"awards":             TypeAwards,
	"filter_description": TypeFilterDescription,
	"ratings":            TypeRatings,
	"favorite":           TypeFavorite,
	"longest":            TypeLongest,
	"most_viewed":        TypeMostViewed,
	"num_ratings":        TypeNumRatings,
}

// ParseType resolves a query type discriminator from an action record.
func ParseType(name string) (Type, bool) {
	t, ok := queryTypeNames[name]
	return t, ok
}

// String returns the type's input discriminator.
func (t Type) String() string {
	for name, typ := range queryTypeNames {
		if typ == t {
			return name
		}
	}
	return "unknown"
}

// ObjectKind selects the video subset a video query runs over.
type ObjectKind int

const (
	// ObjectVideos means all videos.
	ObjectVideos ObjectKind = iota
	// ObjectMovies restricts to movies.
	ObjectMovies
	// ObjectShows restricts to shows.
	ObjectShows
)

// ParseObjectKind resolves an object-type discriminator.
func ParseObjectKind(name string) (ObjectKind, bool) {
	switch name {
	case "videos":
		return ObjectVideos, true
	case "movies":
		return ObjectMovies, true
	case "shows":
		return ObjectShows, true
	default:
		return ObjectVideos, false
	}
}

// Request is one ranking query: the algorithm, the video subset, the
// result cap, the filter criteria and the shared sort direction.
type Request struct {
	Type        Type
	Object      ObjectKind
	Number      int
	VideoFilter VideoFilter
	ActorFilter ActorFilter
	Ascending   bool
}

// Executor runs ranking queries against one store.
type Executor struct {
	store  *catalog.Store
	logger zerolog.Logger
}

// NewExecutor creates a query executor bound to the store.
func NewExecutor(store *catalog.Store, logger zerolog.Logger) *Executor {
	return &Executor{
		store:  store,
		logger: logger.With().Str("component", "query").Logger(),
	}
}

// Execute runs the query and renders its result message. A query that
// matches nothing renders an empty collection.
func (e *Executor) Execute(req Request) string {
	names := e.Run(req)
	e.logger.Debug().
		Str("type", req.Type.String()).
		Int("n", req.Number).
		Int("matched", len(names)).
		Msg("query executed")
	return "Query result: " + FormatNames(names)
}

// Run executes the query and returns the ranked display names, capped at
// min(Number, matches).
func (e *Executor) Run(req Request) []string {
	switch req.Type {
	case TypeAverage:
		return actorNames(e.actorsByAverage(req))
	case TypeAwards:
		return actorNames(e.actorsByAwards(req))
	case TypeFilterDescription:
		return actorNames(e.actorsByDescription(req))
	case TypeRatings:
		return videoTitles(e.videosByRating(req))
	case TypeFavorite:
		return videoTitles(e.videosByFavoriteCount(req))
	case TypeLongest:
		return videoTitles(e.videosByDuration(req))
	case TypeMostViewed:
		return videoTitles(e.videosByViewCount(req))
	case TypeNumRatings:
		return usernames(e.usersByRatingCount(req))
	default:
		return nil
	}
}

// actorsByAverage ranks actors with a non-zero filmography mean rating.
// The filter block does not apply to this query.
func (e *Executor) actorsByAverage(req Request) []*catalog.Actor {
	actors := make([]*catalog.Actor, 0)
	for _, a := range e.store.Actors() {
		if MeanFilmographyRating(e.store, a) != 0 {
			actors = append(actors, a)
		}
	}

	ranked := SortByCriteria(actors, NewCriteria(req.Ascending,
		ByMeanRating(e.store),
		ByActorName(),
	))
	return TopN(ranked, req.Number)
}

func (e *Executor) actorsByAwards(req Request) []*catalog.Actor {
	actors := FilterActors(e.store.Actors(), req.ActorFilter)

	ranked := SortByCriteria(actors, NewCriteria(req.Ascending,
		ByAwardCount(),
		ByActorName(),
	))
	return TopN(ranked, req.Number)
}

func (e *Executor) actorsByDescription(req Request) []*catalog.Actor {
	actors := FilterActors(e.store.Actors(), req.ActorFilter)

	ranked := SortByCriteria(actors, NewCriteria(req.Ascending,
		ByActorName(),
	))
	return TopN(ranked, req.Number)
}

// videoCandidates returns the requested subset after the video filter.
func (e *Executor) videoCandidates(req Request) []catalog.Video {
	var subset []catalog.Video
	switch req.Object {
	case ObjectMovies:
		subset = e.store.Movies()
	case ObjectShows:
		subset = e.store.Shows()
	default:
		subset = e.store.Videos()
	}
	return FilterVideos(subset, req.VideoFilter)
}

func (e *Executor) videosByRating(req Request) []catalog.Video {
	videos := make([]catalog.Video, 0)
	for _, v := range e.videoCandidates(req) {
		if v.TotalRating() != 0 {
			videos = append(videos, v)
		}
	}

	ranked := SortByCriteria(videos, NewCriteria(req.Ascending,
		ByTotalRating(),
		ByTitle(),
	))
	return TopN(ranked, req.Number)
}

func (e *Executor) videosByFavoriteCount(req Request) []catalog.Video {
	videos := make([]catalog.Video, 0)
	for _, v := range e.videoCandidates(req) {
		if FavoriteCount(e.store, v.Title()) != 0 {
			videos = append(videos, v)
		}
	}

	ranked := SortByCriteria(videos, NewCriteria(req.Ascending,
		ByFavoriteCount(e.store),
		ByTitle(),
	))
	return TopN(ranked, req.Number)
}

func (e *Executor) videosByDuration(req Request) []catalog.Video {
	ranked := SortByCriteria(e.videoCandidates(req), NewCriteria(req.Ascending,
		ByDuration(),
		ByTitle(),
	))
	return TopN(ranked, req.Number)
}

func (e *Executor) videosByViewCount(req Request) []catalog.Video {
	videos := make([]catalog.Video, 0)
	for _, v := range e.videoCandidates(req) {
		if ViewCount(e.store, v.Title()) != 0 {
			videos = append(videos, v)
		}
	}

	ranked := SortByCriteria(videos, NewCriteria(req.Ascending,
		ByViewCount(e.store),
		ByTitle(),
	))
	return TopN(ranked, req.Number)
}

func (e *Executor) usersByRatingCount(req Request) []*catalog.User {
	users := make([]*catalog.User, 0)
	for _, u := range e.store.Users() {
		if u.RatingCount() != 0 {
			users = append(users, u)
		}
	}

	ranked := SortByCriteria(users, NewCriteria(req.Ascending,
		ByRatingCount(),
		ByUsername(),
	))
	return TopN(ranked, req.Number)
}

// FormatNames renders display names as a bracketed, comma-separated
// collection: "[a, b]", or "[]" when empty.
func FormatNames(names []string) string {
	return "[" + strings.Join(names, ", ") + "]"
}

func actorNames(actors []*catalog.Actor) []string {
	out := make([]string, len(actors))
	for i, a := range actors {
		out[i] = a.Name()
	}
	return out
}

func videoTitles(videos []catalog.Video) []string {
	out := make([]string, len(videos))
	for i, v := range videos {
		out[i] = v.Title()
	}
	return out
}

func usernames(users []*catalog.User) []string {
	out := make([]string, len(users))
	for i, u := range users {
		out[i] = u.Username()
	}
	return out
}
