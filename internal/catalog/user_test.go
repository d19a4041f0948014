// Kinoteca - In-Memory Media Catalog and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kinoteca

package catalog

import (
	"errors"
	"testing"
)

func TestUser_AddView(t *testing.T) {
	u := NewUser("alice", TierBasic, nil, []WatchEntry{{Title: "M", Views: 2}})

	if got := u.AddView("M"); got != 3 {
		t.Errorf("AddView(M) = %d, want 3", got)
	}
	if got := u.AddView("New"); got != 1 {
		t.Errorf("AddView(New) = %d, want 1", got)
	}
	if got := u.Views("New"); got != 1 {
		t.Errorf("Views(New) = %d, want 1", got)
	}
}

func TestUser_WatchedOrderIsFirstWatched(t *testing.T) {
	u := NewUser("alice", TierBasic, nil, []WatchEntry{
		{Title: "B", Views: 1},
		{Title: "A", Views: 2},
	})
	u.AddView("C")
	u.AddView("B") // revisit must not reorder

	want := []string{"B", "A", "C"}
	got := u.WatchedTitles()
	if len(got) != len(want) {
		t.Fatalf("watched titles = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("watched[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestUser_AddFavorite(t *testing.T) {
	tests := []struct {
		name    string
		history []WatchEntry
		prefav  []string
		title   string
		wantErr error
	}{
		{
			name:    "watched and not yet favourite",
			history: []WatchEntry{{Title: "M", Views: 1}},
			title:   "M",
			wantErr: nil,
		},
		{
			name:    "not watched",
			title:   "M",
			wantErr: ErrNotWatched,
		},
		{
			name:    "already favourite",
			history: []WatchEntry{{Title: "M", Views: 1}},
			prefav:  []string{"M"},
			title:   "M",
			wantErr: ErrAlreadyFavorite,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := NewUser("alice", TierBasic, tt.prefav, tt.history)
			err := u.AddFavorite(tt.title)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("AddFavorite err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestUser_FavoriteFailureLeavesStateUntouched(t *testing.T) {
	u := NewUser("alice", TierBasic, nil, []WatchEntry{{Title: "M", Views: 1}})

	if err := u.AddFavorite("M"); err != nil {
		t.Fatalf("first AddFavorite: %v", err)
	}
	if err := u.AddFavorite("M"); !errors.Is(err, ErrAlreadyFavorite) {
		t.Fatalf("second AddFavorite err = %v, want ErrAlreadyFavorite", err)
	}
	if !u.HasFavorite("M") {
		t.Error("favourite lost after rejected duplicate")
	}
}

func TestUser_RecordRating(t *testing.T) {
	u := NewUser("alice", TierPremium, nil, nil)
	u.RecordRating()
	u.RecordRating()
	if got := u.RatingCount(); got != 2 {
		t.Errorf("RatingCount = %d, want 2", got)
	}
}

func TestParseTier(t *testing.T) {
	if tier, ok := ParseTier("PREMIUM"); !ok || tier != TierPremium {
		t.Errorf("ParseTier(PREMIUM) = %v, %v", tier, ok)
	}
	if tier, ok := ParseTier("BASIC"); !ok || tier != TierBasic {
		t.Errorf("ParseTier(BASIC) = %v, %v", tier, ok)
	}
	if _, ok := ParseTier("gold"); ok {
		t.Error("ParseTier(gold) should fail")
	}
}
