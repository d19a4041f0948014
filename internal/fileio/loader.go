// Kinoteca - In-Memory Media Catalog and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kinoteca

package fileio

import (
	"fmt"
	"os"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/kinoteca/internal/action"
	"github.com/tomtom215/kinoteca/internal/catalog"
	"github.com/tomtom215/kinoteca/internal/validation"
)

// Loader reads input fixtures into a fresh store. One loader can load
// many fixtures; it holds no per-fixture state.
type Loader struct {
	logger zerolog.Logger
}

// NewLoader returns a loader that reports skipped records on the logger.
func NewLoader(logger zerolog.Logger) *Loader {
	return &Loader{logger: logger.With().Str("component", "loader").Logger()}
}

// Load reads one fixture file and returns the populated store plus the
// parsed actions. Unreadable files and malformed JSON are errors; a
// malformed individual record is logged and skipped so one bad entry
// never sinks the batch. Videos load before users so history references
// point at known titles.
func (l *Loader) Load(path string) (*catalog.Store, []action.Action, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from operator config
	if err != nil {
		return nil, nil, fmt.Errorf("read fixture %s: %w", path, err)
	}

	var input Input
	if err := json.Unmarshal(data, &input); err != nil {
		return nil, nil, fmt.Errorf("parse fixture %s: %w", path, err)
	}

	store := catalog.NewStore()
	l.loadMovies(store, input.Movies)
	l.loadShows(store, input.Shows)
	l.loadActors(store, input.Actors)
	l.loadUsers(store, input.Users)

	actions := l.parseActions(input.Actions)

	actors, users, videos := store.Len()
	l.logger.Info().
		Str("fixture", path).
		Int("actors", actors).
		Int("users", users).
		Int("videos", videos).
		Int("actions", len(actions)).
		Msg("fixture loaded")

	return store, actions, nil
}

func (l *Loader) loadMovies(store *catalog.Store, records []MovieRecord) {
	for _, rec := range records {
		if verr := validation.ValidateStruct(&rec); verr != nil {
			l.logger.Warn().Err(verr).Str("title", rec.Title).Msg("skipping movie record")
			continue
		}
		movie := catalog.NewMovie(rec.Title, rec.Year, rec.Duration, l.parseGenres(rec.Title, rec.Genres))
		if !store.PutVideo(movie) {
			l.logger.Warn().Str("title", rec.Title).Msg("duplicate video ignored")
		}
	}
}

func (l *Loader) loadShows(store *catalog.Store, records []ShowRecord) {
	for _, rec := range records {
		if verr := validation.ValidateStruct(&rec); verr != nil {
			l.logger.Warn().Err(verr).Str("title", rec.Title).Msg("skipping show record")
			continue
		}
		seasons := make([]*catalog.Season, 0, len(rec.Seasons))
		for _, s := range rec.Seasons {
			seasons = append(seasons, catalog.NewSeason(s.Duration))
		}
		show := catalog.NewShow(rec.Title, rec.Year, l.parseGenres(rec.Title, rec.Genres), seasons)
		if !store.PutVideo(show) {
			l.logger.Warn().Str("title", rec.Title).Msg("duplicate video ignored")
		}
	}
}

func (l *Loader) loadActors(store *catalog.Store, records []ActorRecord) {
	for _, rec := range records {
		if verr := validation.ValidateStruct(&rec); verr != nil {
			l.logger.Warn().Err(verr).Str("name", rec.Name).Msg("skipping actor record")
			continue
		}
		awards := make(map[catalog.Award]int, len(rec.Awards))
		for name, count := range rec.Awards {
			award, ok := catalog.ParseAward(name)
			if !ok {
				l.logger.Warn().Str("name", rec.Name).Str("award", name).Msg("unknown award dropped")
				continue
			}
			awards[award] = count
		}
		actor := catalog.NewActor(rec.Name, rec.CareerDescription, rec.Filmography, awards)
		if !store.PutActor(actor) {
			l.logger.Warn().Str("name", rec.Name).Msg("duplicate actor ignored")
		}
	}
}

func (l *Loader) loadUsers(store *catalog.Store, records []UserRecord) {
	for _, rec := range records {
		if verr := validation.ValidateStruct(&rec); verr != nil {
			l.logger.Warn().Err(verr).Str("username", rec.Username).Msg("skipping user record")
			continue
		}
		// Validation guarantees the tier parses.
		tier, _ := catalog.ParseTier(rec.Subscription)
		history := make([]catalog.WatchEntry, 0, len(rec.History))
		for _, h := range rec.History {
			history = append(history, catalog.WatchEntry{Title: h.Title, Views: h.Views})
		}
		user := catalog.NewUser(rec.Username, tier, rec.Favorites, history)
		if !store.PutUser(user) {
			l.logger.Warn().Str("username", rec.Username).Msg("duplicate user ignored")
		}
	}
}

// parseGenres converts validated genre names; owner identifies the record
// in skip warnings.
func (l *Loader) parseGenres(owner string, names []string) []catalog.Genre {
	genres := make([]catalog.Genre, 0, len(names))
	for _, name := range names {
		genre, ok := catalog.ParseGenre(name)
		if !ok {
			l.logger.Warn().Str("title", owner).Str("genre", name).Msg("unknown genre dropped")
			continue
		}
		genres = append(genres, genre)
	}
	return genres
}

func (l *Loader) parseActions(records []action.Record) []action.Action {
	actions := make([]action.Action, 0, len(records))
	for _, rec := range records {
		a, err := action.Parse(rec)
		if err != nil {
			l.logger.Warn().Err(err).Int("id", rec.ID).Msg("skipping malformed action")
			continue
		}
		actions = append(actions, a)
	}
	return actions
}
