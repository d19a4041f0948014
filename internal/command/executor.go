// Kinoteca - In-Memory Media Catalog and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kinoteca

// Package command applies the three catalog mutations (favourite, view,
// rating) on behalf of a user. Every outcome, success or failure, is
// rendered as a single formatted string; no error crosses the package
// boundary.
package command

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/tomtom215/kinoteca/internal/catalog"
)

// Type identifies a command.
type Type int

const (
	// TypeFavorite adds a watched video to the user's favourites.
	TypeFavorite Type = iota
	// TypeView increments the user's view count for a video.
	TypeView
	// TypeRating rates a video (or one show season) once per user.
	TypeRating
)

// ParseType resolves a command discriminator from an action record.
func ParseType(name string) (Type, bool) {
	switch name {
	case "favorite":
		return TypeFavorite, true
	case "view":
		return TypeView, true
	case "rating":
		return TypeRating, true
	default:
		return TypeFavorite, false
	}
}

// String returns the command's input discriminator.
func (t Type) String() string {
	switch t {
	case TypeView:
		return "view"
	case TypeRating:
		return "rating"
	default:
		return "favorite"
	}
}

// Request is one mutation: the command, the acting user, the target
// title, and for ratings the grade plus the 1-based season index
// (0 for movies).
type Request struct {
	Type     Type
	Username string
	Title    string
	Grade    float64
	Season   int
}

// Executor applies commands against one store.
type Executor struct {
	store  *catalog.Store
	logger zerolog.Logger
}

// NewExecutor creates a command executor bound to the store.
func NewExecutor(store *catalog.Store, logger zerolog.Logger) *Executor {
	return &Executor{
		store:  store,
		logger: logger.With().Str("component", "command").Logger(),
	}
}

// Execute applies the command and renders its outcome. The user is
// resolved first, then the video; a failed lookup renders the
// entity-not-found message with the missing key.
func (e *Executor) Execute(req Request) string {
	user, found := e.store.User(req.Username)
	if !found {
		return notFound(req.Username)
	}
	video, found := e.store.Video(req.Title)
	if !found {
		return notFound(req.Title)
	}

	var msg string
	switch req.Type {
	case TypeFavorite:
		msg = e.favorite(user, video)
	case TypeView:
		msg = e.view(user, video)
	case TypeRating:
		msg = e.rate(user, video, req.Grade, req.Season)
	default:
		msg = notFound(req.Title)
	}

	e.logger.Debug().
		Str("type", req.Type.String()).
		Str("username", req.Username).
		Str("title", req.Title).
		Str("outcome", msg).
		Msg("command executed")
	return msg
}

func (e *Executor) favorite(user *catalog.User, video catalog.Video) string {
	err := user.AddFavorite(video.Title())
	switch {
	case errors.Is(err, catalog.ErrNotWatched):
		return fmt.Sprintf("error -> %s is not seen", video.Title())
	case errors.Is(err, catalog.ErrAlreadyFavorite):
		return fmt.Sprintf("error -> %s is already in favourite list", video.Title())
	case err != nil:
		return notFound(video.Title())
	default:
		return fmt.Sprintf("success -> %s was added as favourite", video.Title())
	}
}

func (e *Executor) view(user *catalog.User, video catalog.Video) string {
	views := user.AddView(video.Title())
	return fmt.Sprintf("success -> %s was viewed with total views of %d", video.Title(), views)
}

func (e *Executor) rate(user *catalog.User, video catalog.Video, grade float64, season int) string {
	if !user.HasWatched(video.Title()) {
		return fmt.Sprintf("error -> %s is not seen", video.Title())
	}

	err := video.AddRating(user.Username(), grade, season)
	switch {
	case errors.Is(err, catalog.ErrAlreadyRated):
		return fmt.Sprintf("error -> %s has been already rated", video.Title())
	case errors.Is(err, catalog.ErrNotFound):
		return notFound(video.Title())
	case err != nil:
		return notFound(video.Title())
	}

	user.RecordRating()
	return fmt.Sprintf("success -> %s was rated with %s by %s",
		video.Title(), formatGrade(grade), user.Username())
}

func notFound(key string) string {
	return fmt.Sprintf("error -> %s not found in the database", key)
}

// formatGrade renders a grade with a mandatory fractional part, so an
// integral grade prints as "4.0", not "4".
func formatGrade(grade float64) string {
	s := strconv.FormatFloat(grade, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
