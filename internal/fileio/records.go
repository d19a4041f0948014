// Kinoteca - In-Memory Media Catalog and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kinoteca

package fileio

import "github.com/tomtom215/kinoteca/internal/action"

// ActorRecord is one actor entry in an input fixture. Award keys must
// match the catalog award names exactly; unknown keys are dropped with a
// warning during load.
type ActorRecord struct {
	Name              string         `json:"name" validate:"required"`
	CareerDescription string         `json:"career_description"`
	Filmography       []string       `json:"filmography"`
	Awards            map[string]int `json:"awards"`
}

// HistoryEntry is one watched title with its accumulated view count.
// History order is meaningful: it is the user's first-watched order.
type HistoryEntry struct {
	Title string `json:"title" validate:"required"`
	Views int    `json:"views" validate:"gte=1"`
}

// UserRecord is one user entry in an input fixture.
type UserRecord struct {
	Username     string         `json:"username" validate:"required"`
	Subscription string         `json:"subscription_type" validate:"required,tier"`
	Favorites    []string       `json:"favorite_movies"`
	History      []HistoryEntry `json:"history" validate:"dive"`
}

// MovieRecord is one movie entry in an input fixture.
type MovieRecord struct {
	Title    string   `json:"title" validate:"required"`
	Year     int      `json:"year" validate:"gte=0"`
	Duration int      `json:"duration" validate:"gte=0"`
	Genres   []string `json:"genres" validate:"dive,genre"`
}

// SeasonRecord is one season of a show, ordered as in the fixture.
type SeasonRecord struct {
	Duration int `json:"duration" validate:"gte=0"`
}

// ShowRecord is one show entry in an input fixture.
type ShowRecord struct {
	Title   string         `json:"title" validate:"required"`
	Year    int            `json:"year" validate:"gte=0"`
	Genres  []string       `json:"genres" validate:"dive,genre"`
	Seasons []SeasonRecord `json:"seasons" validate:"required,min=1,dive"`
}

// Input is the complete shape of one fixture file.
type Input struct {
	Actors  []ActorRecord   `json:"actors"`
	Users   []UserRecord    `json:"users"`
	Movies  []MovieRecord   `json:"movies"`
	Shows   []ShowRecord    `json:"shows"`
	Actions []action.Record `json:"actions"`
}
