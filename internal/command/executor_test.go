// Kinoteca - In-Memory Media Catalog and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kinoteca

package command

import (
	"math"
	"testing"

	"github.com/rs/zerolog"

	"github.com/tomtom215/kinoteca/internal/catalog"
)

// cmdStore builds a catalog with one movie, one show, and alice, who has
// watched the movie once.
func cmdStore(t *testing.T) *catalog.Store {
	t.Helper()
	store := catalog.NewStore()
	store.PutVideo(catalog.NewMovie("X", 2020, 100, []catalog.Genre{catalog.GenreAction}))
	store.PutVideo(catalog.NewShow("S", 2020, nil,
		[]*catalog.Season{catalog.NewSeason(30), catalog.NewSeason(30)}))
	store.PutUser(catalog.NewUser("alice", catalog.TierBasic, nil,
		[]catalog.WatchEntry{{Title: "X", Views: 1}}))
	return store
}

func TestExecutor_Rating(t *testing.T) {
	store := cmdStore(t)
	e := NewExecutor(store, zerolog.Nop())

	got := e.Execute(Request{Type: TypeRating, Username: "alice", Title: "X", Grade: 4.5})
	if got != "success -> X was rated with 4.5 by alice" {
		t.Errorf("rating = %q", got)
	}

	video, _ := store.Video("X")
	if r := video.TotalRating(); math.Abs(r-4.5) > 1e-9 {
		t.Errorf("total rating = %v, want 4.5", r)
	}
	alice, _ := store.User("alice")
	if alice.RatingCount() != 1 {
		t.Errorf("rating count = %d, want 1", alice.RatingCount())
	}

	// Second identical rating is rejected and changes nothing.
	got = e.Execute(Request{Type: TypeRating, Username: "alice", Title: "X", Grade: 4.5})
	if got != "error -> X has been already rated" {
		t.Errorf("duplicate rating = %q", got)
	}
	if r := video.TotalRating(); math.Abs(r-4.5) > 1e-9 {
		t.Errorf("total rating after duplicate = %v, want 4.5", r)
	}
	if alice.RatingCount() != 1 {
		t.Errorf("rating count after duplicate = %d, want 1", alice.RatingCount())
	}
}

func TestExecutor_Rating_NotWatched(t *testing.T) {
	e := NewExecutor(cmdStore(t), zerolog.Nop())

	got := e.Execute(Request{Type: TypeRating, Username: "alice", Title: "S", Grade: 3.0, Season: 1})
	if got != "error -> S is not seen" {
		t.Errorf("rating unwatched = %q", got)
	}
}

func TestExecutor_Rating_ShowSeason(t *testing.T) {
	store := cmdStore(t)
	alice, _ := store.User("alice")
	alice.AddView("S")
	e := NewExecutor(store, zerolog.Nop())

	got := e.Execute(Request{Type: TypeRating, Username: "alice", Title: "S", Grade: 4.0, Season: 1})
	if got != "success -> S was rated with 4.0 by alice" {
		t.Errorf("season rating = %q", got)
	}

	// Same season again: rejected. Other season: allowed.
	got = e.Execute(Request{Type: TypeRating, Username: "alice", Title: "S", Grade: 4.0, Season: 1})
	if got != "error -> S has been already rated" {
		t.Errorf("duplicate season rating = %q", got)
	}
	got = e.Execute(Request{Type: TypeRating, Username: "alice", Title: "S", Grade: 2.5, Season: 2})
	if got != "success -> S was rated with 2.5 by alice" {
		t.Errorf("second season rating = %q", got)
	}
}

func TestExecutor_Favorite(t *testing.T) {
	e := NewExecutor(cmdStore(t), zerolog.Nop())

	got := e.Execute(Request{Type: TypeFavorite, Username: "alice", Title: "X"})
	if got != "success -> X was added as favourite" {
		t.Errorf("favorite = %q", got)
	}

	// Idempotence of failure: the second call fails, state unchanged.
	got = e.Execute(Request{Type: TypeFavorite, Username: "alice", Title: "X"})
	if got != "error -> X is already in favourite list" {
		t.Errorf("duplicate favorite = %q", got)
	}
}

func TestExecutor_Favorite_NotWatched(t *testing.T) {
	e := NewExecutor(cmdStore(t), zerolog.Nop())

	got := e.Execute(Request{Type: TypeFavorite, Username: "alice", Title: "S"})
	if got != "error -> S is not seen" {
		t.Errorf("favorite unwatched = %q", got)
	}
}

func TestExecutor_View(t *testing.T) {
	store := cmdStore(t)
	e := NewExecutor(store, zerolog.Nop())

	// Each success strictly increments and reports the stored count.
	got := e.Execute(Request{Type: TypeView, Username: "alice", Title: "X"})
	if got != "success -> X was viewed with total views of 2" {
		t.Errorf("view = %q", got)
	}
	got = e.Execute(Request{Type: TypeView, Username: "alice", Title: "S"})
	if got != "success -> S was viewed with total views of 1" {
		t.Errorf("first view = %q", got)
	}

	alice, _ := store.User("alice")
	if alice.Views("X") != 2 || alice.Views("S") != 1 {
		t.Errorf("stored views = %d/%d, want 2/1", alice.Views("X"), alice.Views("S"))
	}
}

func TestExecutor_EntityNotFound(t *testing.T) {
	e := NewExecutor(cmdStore(t), zerolog.Nop())

	got := e.Execute(Request{Type: TypeView, Username: "ghost", Title: "X"})
	if got != "error -> ghost not found in the database" {
		t.Errorf("unknown user = %q", got)
	}

	got = e.Execute(Request{Type: TypeView, Username: "alice", Title: "Nope"})
	if got != "error -> Nope not found in the database" {
		t.Errorf("unknown video = %q", got)
	}
}

func TestFormatGrade(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{4.5, "4.5"},
		{4, "4.0"},
		{3.25, "3.25"},
		{0, "0.0"},
	}
	for _, tt := range tests {
		if got := formatGrade(tt.in); got != tt.want {
			t.Errorf("formatGrade(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
