// Kinoteca - In-Memory Media Catalog and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kinoteca

package recommend

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/tomtom215/kinoteca/internal/catalog"
)

// recStore builds a catalog with three movies and one show.
//
//	First   2018  Action   rated 3.0
//	Second  2019  Drama    rated 5.0
//	Third   2020  Action   unrated
//	Saga    2020  Drama    unrated show
//
// alice (Premium) has watched First; basic bob has watched nothing.
func recStore(t *testing.T) *catalog.Store {
	t.Helper()
	store := catalog.NewStore()

	first := catalog.NewMovie("First", 2018, 100, []catalog.Genre{catalog.GenreAction})
	second := catalog.NewMovie("Second", 2019, 100, []catalog.Genre{catalog.GenreDrama})
	third := catalog.NewMovie("Third", 2020, 100, []catalog.Genre{catalog.GenreAction})
	saga := catalog.NewShow("Saga", 2020, []catalog.Genre{catalog.GenreDrama},
		[]*catalog.Season{catalog.NewSeason(60)})

	store.PutVideo(first)
	store.PutVideo(second)
	store.PutVideo(third)
	store.PutVideo(saga)

	if err := first.AddRating("alice", 3.0, 0); err != nil {
		t.Fatal(err)
	}
	if err := second.AddRating("alice", 5.0, 0); err != nil {
		t.Fatal(err)
	}

	store.PutUser(catalog.NewUser("alice", catalog.TierPremium,
		[]string{"First"},
		[]catalog.WatchEntry{{Title: "First", Views: 2}}))
	store.PutUser(catalog.NewUser("bob", catalog.TierBasic, nil, nil))

	return store
}

func newTestExecutor(t *testing.T) *Executor {
	t.Helper()
	return NewExecutor(recStore(t), zerolog.Nop())
}

func TestExecutor_Standard(t *testing.T) {
	e := newTestExecutor(t)

	// First unwatched video in store order for alice is Second.
	got := e.Execute(Request{Type: TypeStandard, Username: "alice"})
	if got != "StandardRecommendation result: Second" {
		t.Errorf("standard = %q", got)
	}
}

func TestExecutor_Standard_AllWatched(t *testing.T) {
	store := recStore(t)
	store.PutUser(catalog.NewUser("completionist", catalog.TierBasic, nil, []catalog.WatchEntry{
		{Title: "First", Views: 1},
		{Title: "Second", Views: 1},
		{Title: "Third", Views: 1},
		{Title: "Saga", Views: 1},
	}))
	e := NewExecutor(store, zerolog.Nop())

	got := e.Execute(Request{Type: TypeStandard, Username: "completionist"})
	if got != "StandardRecommendation cannot be applied!" {
		t.Errorf("standard all-watched = %q", got)
	}
}

func TestExecutor_BestUnseen(t *testing.T) {
	e := newTestExecutor(t)

	// Unwatched for alice: Second (5.0), Third (0), Saga (0).
	got := e.Execute(Request{Type: TypeBestUnseen, Username: "alice"})
	if got != "BestRatedUnseenRecommendation result: Second" {
		t.Errorf("best_unseen = %q", got)
	}
}

func TestExecutor_BestUnseen_TieKeepsStoreOrder(t *testing.T) {
	store := catalog.NewStore()
	store.PutVideo(catalog.NewMovie("Zeta", 2020, 100, nil))
	store.PutVideo(catalog.NewMovie("Alpha", 2020, 100, nil))
	store.PutUser(catalog.NewUser("u", catalog.TierBasic, nil, nil))
	e := NewExecutor(store, zerolog.Nop())

	// Both unrated: the stable sort keeps insertion order, Zeta wins.
	got := e.Execute(Request{Type: TypeBestUnseen, Username: "u"})
	if got != "BestRatedUnseenRecommendation result: Zeta" {
		t.Errorf("best_unseen tie = %q", got)
	}
}

func TestExecutor_TierGate(t *testing.T) {
	e := newTestExecutor(t)

	// Premium-only kinds fail for basic users regardless of catalog
	// state, with the kind's fixed message.
	tests := []struct {
		typ  Type
		want string
	}{
		{TypePopular, "PopularRecommendation cannot be applied!"},
		{TypeFavorite, "FavoriteRecommendation cannot be applied!"},
		{TypeSearch, "SearchRecommendation cannot be applied!"},
	}
	for _, tt := range tests {
		got := e.Execute(Request{Type: tt.typ, Username: "bob", Genre: catalog.GenreAction})
		if got != tt.want {
			t.Errorf("%s for basic user = %q, want %q", tt.typ, got, tt.want)
		}
	}

	// Basic kinds still work for basic users.
	got := e.Execute(Request{Type: TypeStandard, Username: "bob"})
	if got != "StandardRecommendation result: First" {
		t.Errorf("standard for basic user = %q", got)
	}
}

func TestExecutor_Popular(t *testing.T) {
	store := recStore(t)
	// bob's views make Drama the most-viewed genre.
	bob, _ := store.User("bob")
	bob.AddView("Second")
	bob.AddView("Second")
	bob.AddView("Second")

	e := NewExecutor(store, zerolog.Nop())

	// alice has not watched Second; Drama leads, so Second is picked.
	got := e.Execute(Request{Type: TypePopular, Username: "alice"})
	if got != "PopularRecommendation result: Second" {
		t.Errorf("popular = %q", got)
	}
}

func TestExecutor_Popular_FallsThroughToNextGenre(t *testing.T) {
	store := recStore(t)
	bob, _ := store.User("bob")
	bob.AddView("Second")
	bob.AddView("Second")
	bob.AddView("Saga")

	// watcher has seen every Drama video; popular must fall through to
	// the next-ranked genre with an unwatched candidate.
	store.PutUser(catalog.NewUser("watcher", catalog.TierPremium, nil, []catalog.WatchEntry{
		{Title: "Second", Views: 1},
		{Title: "Saga", Views: 1},
	}))
	e := NewExecutor(store, zerolog.Nop())

	got := e.Execute(Request{Type: TypePopular, Username: "watcher"})
	if got != "PopularRecommendation result: First" {
		t.Errorf("popular fallthrough = %q", got)
	}
}

func TestExecutor_Favorite(t *testing.T) {
	store := recStore(t)
	// bob favourites Third so it has a non-zero favourite count for
	// alice's request (alice's own favourite, First, is watched).
	bob, _ := store.User("bob")
	bob.AddView("Third")
	if err := bob.AddFavorite("Third"); err != nil {
		t.Fatal(err)
	}
	e := NewExecutor(store, zerolog.Nop())

	got := e.Execute(Request{Type: TypeFavorite, Username: "alice"})
	if got != "FavoriteRecommendation result: Third" {
		t.Errorf("favorite = %q", got)
	}
}

func TestExecutor_Favorite_NoCandidates(t *testing.T) {
	e := newTestExecutor(t)

	// No unwatched video of alice's has any favourites.
	got := e.Execute(Request{Type: TypeFavorite, Username: "alice"})
	if got != "FavoriteRecommendation cannot be applied!" {
		t.Errorf("favorite no-candidates = %q", got)
	}
}

func TestExecutor_Search(t *testing.T) {
	e := newTestExecutor(t)

	// Unwatched Drama for alice: Second (5.0) and Saga (0), ascending
	// by rating then title.
	got := e.Execute(Request{Type: TypeSearch, Username: "alice", Genre: catalog.GenreDrama})
	if got != "SearchRecommendation result: [Saga, Second]" {
		t.Errorf("search = %q", got)
	}
}

func TestExecutor_Search_NoMatch(t *testing.T) {
	e := newTestExecutor(t)

	got := e.Execute(Request{Type: TypeSearch, Username: "alice", Genre: catalog.GenreWestern})
	if got != "SearchRecommendation cannot be applied!" {
		t.Errorf("search no-match = %q", got)
	}
}

func TestExecutor_UnknownUser(t *testing.T) {
	e := newTestExecutor(t)

	got := e.Execute(Request{Type: TypeStandard, Username: "ghost"})
	if got != "StandardRecommendation cannot be applied!" {
		t.Errorf("unknown user = %q", got)
	}
}
