// Kinoteca - In-Memory Media Catalog and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kinoteca

package recommend

import (
	"github.com/rs/zerolog"

	"github.com/tomtom215/kinoteca/internal/catalog"
	"github.com/tomtom215/kinoteca/internal/query"
)

// Type identifies a recommendation kind.
type Type int

const (
	// TypeStandard picks the first unwatched video in store order.
	TypeStandard Type = iota
	// TypeBestUnseen picks the highest-rated unwatched video.
	TypeBestUnseen
	// TypePopular picks from the most-viewed genre (Premium).
	TypePopular
	// TypeFavorite picks the most-favourited unwatched video (Premium).
	TypeFavorite
	// TypeSearch lists unwatched videos of a genre by rating (Premium).
	TypeSearch
)

// ParseType resolves a recommendation discriminator from an action
// record.
func ParseType(name string) (Type, bool) {
	switch name {
	case "standard":
		return TypeStandard, true
	case "best_unseen":
		return TypeBestUnseen, true
	case "popular":
		return TypePopular, true
	case "favorite":
		return TypeFavorite, true
	case "search":
		return TypeSearch, true
	default:
		return TypeStandard, false
	}
}

// label returns the display name used in result messages.
func (t Type) label() string {
	switch t {
	case TypeStandard:
		return "Standard"
	case TypeBestUnseen:
		return "BestRatedUnseen"
	case TypePopular:
		return "Popular"
	case TypeFavorite:
		return "Favorite"
	case TypeSearch:
		return "Search"
	default:
		return "Unknown"
	}
}

// String returns the display name.
func (t Type) String() string { return t.label() }

// premiumOnly reports whether the kind requires a Premium subscription.
func (t Type) premiumOnly() bool {
	return t == TypePopular || t == TypeFavorite || t == TypeSearch
}

// Request is one recommendation: the kind, the requesting user and, for
// search, the genre parameter.
type Request struct {
	Type     Type
	Username string
	Genre    catalog.Genre
}

// Executor runs recommendations against one store.
type Executor struct {
	store  *catalog.Store
	logger zerolog.Logger
}

// NewExecutor creates a recommendation executor bound to the store.
func NewExecutor(store *catalog.Store, logger zerolog.Logger) *Executor {
	return &Executor{
		store:  store,
		logger: logger.With().Str("component", "recommend").Logger(),
	}
}

// Execute runs the recommendation and renders its result message:
// "<Kind>Recommendation result: <value>" on success, or
// "<Kind>Recommendation cannot be applied!" on any failure, including an
// ineligible tier or an unknown user.
func (e *Executor) Execute(req Request) string {
	titles, ok := e.run(req)
	if !ok {
		return req.Type.label() + "Recommendation cannot be applied!"
	}
	if req.Type == TypeSearch {
		return req.Type.label() + "Recommendation result: " + query.FormatNames(titles)
	}
	return req.Type.label() + "Recommendation result: " + titles[0]
}

func (e *Executor) run(req Request) ([]string, bool) {
	user, found := e.store.User(req.Username)
	if !found {
		e.logger.Warn().Str("username", req.Username).Msg("recommendation for unknown user")
		return nil, false
	}

	// Tier gate: Premium-only kinds fail before any catalog work.
	if user.Tier() == catalog.TierBasic && req.Type.premiumOnly() {
		e.logger.Debug().
			Str("username", req.Username).
			Str("type", req.Type.label()).
			Msg("premium recommendation refused for basic tier")
		return nil, false
	}

	unwatched := query.UnwatchedVideos(e.store.Videos(), user)

	switch req.Type {
	case TypeStandard:
		return e.standard(unwatched)
	case TypeBestUnseen:
		return e.bestUnseen(unwatched)
	case TypePopular:
		return e.popular(unwatched)
	case TypeFavorite:
		return e.favorite(unwatched)
	case TypeSearch:
		return e.search(unwatched, req.Genre)
	default:
		return nil, false
	}
}

// standard picks the first unwatched video in store-insertion order.
func (e *Executor) standard(unwatched []catalog.Video) ([]string, bool) {
	if len(unwatched) == 0 {
		return nil, false
	}
	return []string{unwatched[0].Title()}, true
}

// bestUnseen picks the unwatched video with the highest total rating.
// Ties are not broken further; the stable sort keeps store order, so the
// first element wins.
func (e *Executor) bestUnseen(unwatched []catalog.Video) ([]string, bool) {
	if len(unwatched) == 0 {
		return nil, false
	}
	ranked := query.SortByCriteria(unwatched, query.NewCriteria(false,
		query.ByTotalRating(),
	))
	return []string{ranked[0].Title()}, true
}

// popular ranks all genres by total view count descending, then returns
// the first unwatched video (in store order) of the first genre that has
// one.
func (e *Executor) popular(unwatched []catalog.Video) ([]string, bool) {
	genres := query.SortByCriteria(catalog.AllGenres(), query.NewCriteria(false,
		query.ByGenreViews(e.store),
	))

	for _, genre := range genres {
		candidates := query.VideosOfGenre(unwatched, genre)
		if len(candidates) > 0 {
			return []string{candidates[0].Title()}, true
		}
	}
	return nil, false
}

// favorite picks, among unwatched videos with a non-zero favourite
// count, the one favourited by the most users. Ties are not broken
// further.
func (e *Executor) favorite(unwatched []catalog.Video) ([]string, bool) {
	candidates := make([]catalog.Video, 0, len(unwatched))
	for _, v := range unwatched {
		if query.FavoriteCount(e.store, v.Title()) != 0 {
			candidates = append(candidates, v)
		}
	}
	if len(candidates) == 0 {
		return nil, false
	}

	ranked := query.SortByCriteria(candidates, query.NewCriteria(false,
		query.ByFavoriteCount(e.store),
	))
	return []string{ranked[0].Title()}, true
}

// search lists every unwatched video of the genre, ranked ascending by
// total rating then title. The full list is returned, not a top-1.
func (e *Executor) search(unwatched []catalog.Video, genre catalog.Genre) ([]string, bool) {
	candidates := query.VideosOfGenre(unwatched, genre)
	if len(candidates) == 0 {
		return nil, false
	}

	ranked := query.SortByCriteria(candidates, query.NewCriteria(true,
		query.ByTotalRating(),
		query.ByTitle(),
	))

	titles := make([]string, len(ranked))
	for i, v := range ranked {
		titles[i] = v.Title()
	}
	return titles, true
}
