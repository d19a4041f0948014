// Kinoteca - In-Memory Media Catalog and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kinoteca

// Package action models one batch of input actions and executes them in
// ascending id order against a store. An action is a command, a query or
// a recommendation; malformed records (unknown discriminators) are
// rejected at parse time and never reach execution.
package action

import (
	"fmt"

	"github.com/tomtom215/kinoteca/internal/catalog"
	"github.com/tomtom215/kinoteca/internal/command"
	"github.com/tomtom215/kinoteca/internal/query"
	"github.com/tomtom215/kinoteca/internal/recommend"
)

// Kind discriminates the three action categories.
type Kind string

const (
	// KindCommand mutates the store (favorite, view, rating).
	KindCommand Kind = "command"
	// KindQuery ranks entities (read-only).
	KindQuery Kind = "query"
	// KindRecommendation selects videos for a user (read-only).
	KindRecommendation Kind = "recommendation"
)

// FilterBlock is the optional 4-slot filter of a query record. Year and
// Genre apply to video queries; Words and Awards to actor queries.
type FilterBlock struct {
	Year   int      `json:"year,omitempty"`
	Genre  string   `json:"genre,omitempty"`
	Words  []string `json:"words,omitempty"`
	Awards []string `json:"awards,omitempty"`
}

// Record is one raw action as read from an input fixture. Which fields
// are meaningful depends on Kind and Type.
type Record struct {
	ID   int    `json:"id" validate:"min=0"`
	Kind Kind   `json:"kind" validate:"required,oneof=command query recommendation"`
	Type string `json:"type" validate:"required"`

	// Command and recommendation fields.
	Username string  `json:"username,omitempty"`
	Title    string  `json:"title,omitempty"`
	Grade    float64 `json:"grade,omitempty"`
	Season   int     `json:"season,omitempty"`
	Genre    string  `json:"genre,omitempty"`

	// Query fields.
	Object string       `json:"object,omitempty"`
	Number int          `json:"number,omitempty"`
	Filter *FilterBlock `json:"filter,omitempty"`
	Sort   string       `json:"sort,omitempty"`
}

// Action is a parsed, executable action. Exactly one of the three
// request fields is set, matching Kind.
type Action struct {
	ID   int
	Kind Kind

	Command        *command.Request
	Query          *query.Request
	Recommendation *recommend.Request
}

// Result pairs an action id with its rendered outcome. Field is always
// empty; it exists for output-format compatibility with the reference
// fixtures.
type Result struct {
	ID      int    `json:"id"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Parse turns a raw record into an executable action. Unknown
// discriminators are reported as errors so the load boundary can drop
// the record before execution.
func Parse(rec Record) (Action, error) {
	switch rec.Kind {
	case KindCommand:
		return parseCommand(rec)
	case KindQuery:
		return parseQuery(rec)
	case KindRecommendation:
		return parseRecommendation(rec)
	default:
		return Action{}, fmt.Errorf("action %d: unknown kind %q", rec.ID, rec.Kind)
	}
}

func parseCommand(rec Record) (Action, error) {
	typ, ok := command.ParseType(rec.Type)
	if !ok {
		return Action{}, fmt.Errorf("action %d: unknown command type %q", rec.ID, rec.Type)
	}
	return Action{
		ID:   rec.ID,
		Kind: KindCommand,
		Command: &command.Request{
			Type:     typ,
			Username: rec.Username,
			Title:    rec.Title,
			Grade:    rec.Grade,
			Season:   rec.Season,
		},
	}, nil
}

func parseQuery(rec Record) (Action, error) {
	typ, ok := query.ParseType(rec.Type)
	if !ok {
		return Action{}, fmt.Errorf("action %d: unknown query type %q", rec.ID, rec.Type)
	}

	object := query.ObjectVideos
	if rec.Object != "" {
		if object, ok = query.ParseObjectKind(rec.Object); !ok {
			return Action{}, fmt.Errorf("action %d: unknown object type %q", rec.ID, rec.Object)
		}
	}

	ascending, err := parseSortOrder(rec)
	if err != nil {
		return Action{}, err
	}

	req := &query.Request{
		Type:      typ,
		Object:    object,
		Number:    rec.Number,
		Ascending: ascending,
	}
	if rec.Filter != nil {
		req.VideoFilter, req.ActorFilter = parseFilter(*rec.Filter)
	}

	return Action{ID: rec.ID, Kind: KindQuery, Query: req}, nil
}

func parseSortOrder(rec Record) (bool, error) {
	switch rec.Sort {
	case "", "asc":
		return true, nil
	case "desc":
		return false, nil
	default:
		return false, fmt.Errorf("action %d: unknown sort order %q", rec.ID, rec.Sort)
	}
}

// parseFilter builds both filter shapes from the 4-slot block. An
// unparseable genre or award name leaves that criterion unset rather
// than failing the action.
func parseFilter(block FilterBlock) (query.VideoFilter, query.ActorFilter) {
	videoFilter := query.VideoFilter{Year: block.Year}
	if g, ok := catalog.ParseGenre(block.Genre); ok {
		videoFilter.Genre = g
	}

	actorFilter := query.ActorFilter{Words: block.Words}
	for _, name := range block.Awards {
		if a, ok := catalog.ParseAward(name); ok {
			actorFilter.Awards = append(actorFilter.Awards, a)
		}
	}
	return videoFilter, actorFilter
}

func parseRecommendation(rec Record) (Action, error) {
	typ, ok := recommend.ParseType(rec.Type)
	if !ok {
		return Action{}, fmt.Errorf("action %d: unknown recommendation type %q", rec.ID, rec.Type)
	}

	req := &recommend.Request{Type: typ, Username: rec.Username}
	// An unknown genre stays unset; the search then matches nothing and
	// renders the failure message.
	if g, ok := catalog.ParseGenre(rec.Genre); ok {
		req.Genre = g
	}

	return Action{ID: rec.ID, Kind: KindRecommendation, Recommendation: req}, nil
}
