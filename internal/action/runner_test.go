// Kinoteca - In-Memory Media Catalog and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kinoteca

package action

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/tomtom215/kinoteca/internal/catalog"
)

func runnerStore(t *testing.T) *catalog.Store {
	t.Helper()
	store := catalog.NewStore()
	store.PutVideo(catalog.NewMovie("X", 2020, 100, []catalog.Genre{catalog.GenreAction}))
	store.PutUser(catalog.NewUser("alice", catalog.TierPremium, nil, nil))
	return store
}

func mustParse(t *testing.T, recs ...Record) []Action {
	t.Helper()
	actions := make([]Action, 0, len(recs))
	for _, rec := range recs {
		a, err := Parse(rec)
		if err != nil {
			t.Fatalf("Parse(%+v): %v", rec, err)
		}
		actions = append(actions, a)
	}
	return actions
}

func TestRunner_ExecutesInAscendingIDOrder(t *testing.T) {
	store := runnerStore(t)
	runner := NewRunner(store, zerolog.Nop())

	// Records arrive out of order; the view must land before the rating
	// for the rating to succeed.
	actions := mustParse(t,
		Record{ID: 2, Kind: KindCommand, Type: "rating", Username: "alice", Title: "X", Grade: 4.5},
		Record{ID: 1, Kind: KindCommand, Type: "view", Username: "alice", Title: "X"},
	)

	results := runner.Run(actions)
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].ID != 1 || results[1].ID != 2 {
		t.Errorf("result order = %d,%d, want 1,2", results[0].ID, results[1].ID)
	}
	if results[0].Message != "success -> X was viewed with total views of 1" {
		t.Errorf("view message = %q", results[0].Message)
	}
	if results[1].Message != "success -> X was rated with 4.5 by alice" {
		t.Errorf("rating message = %q", results[1].Message)
	}
}

func TestRunner_LaterActionsObserveEarlierMutations(t *testing.T) {
	store := runnerStore(t)
	runner := NewRunner(store, zerolog.Nop())

	actions := mustParse(t,
		Record{ID: 1, Kind: KindCommand, Type: "view", Username: "alice", Title: "X"},
		Record{ID: 2, Kind: KindCommand, Type: "rating", Username: "alice", Title: "X", Grade: 5},
		Record{ID: 3, Kind: KindQuery, Type: "ratings", Object: "movies", Number: 1, Sort: "desc"},
		Record{ID: 4, Kind: KindRecommendation, Type: "standard", Username: "alice"},
	)

	results := runner.Run(actions)
	if results[2].Message != "Query result: [X]" {
		t.Errorf("query after rating = %q", results[2].Message)
	}
	// alice has now watched everything: standard cannot apply.
	if results[3].Message != "StandardRecommendation cannot be applied!" {
		t.Errorf("recommendation = %q", results[3].Message)
	}
}

func TestRunner_FailuresStillYieldResults(t *testing.T) {
	runner := NewRunner(runnerStore(t), zerolog.Nop())

	actions := mustParse(t,
		Record{ID: 1, Kind: KindCommand, Type: "favorite", Username: "alice", Title: "X"},
		Record{ID: 2, Kind: KindCommand, Type: "view", Username: "ghost", Title: "X"},
	)

	results := runner.Run(actions)
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].Message != "error -> X is not seen" {
		t.Errorf("favorite unwatched = %q", results[0].Message)
	}
	if results[1].Message != "error -> ghost not found in the database" {
		t.Errorf("unknown user = %q", results[1].Message)
	}
}

func TestRunner_ResultFieldIsEmpty(t *testing.T) {
	runner := NewRunner(runnerStore(t), zerolog.Nop())
	results := runner.Run(mustParse(t,
		Record{ID: 1, Kind: KindCommand, Type: "view", Username: "alice", Title: "X"},
	))
	if results[0].Field != "" {
		t.Errorf("field = %q, want empty", results[0].Field)
	}
}
