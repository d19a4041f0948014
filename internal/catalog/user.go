// Kinoteca - In-Memory Media Catalog and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kinoteca

package catalog

// SubscriptionTier is a user's subscription level. Premium-only
// recommendation kinds are gated on it.
type SubscriptionTier int

const (
	// TierBasic is the default subscription level.
	TierBasic SubscriptionTier = iota
	// TierPremium unlocks the popular, favorite and search
	// recommendation kinds.
	TierPremium
)

// ParseTier resolves a subscription tier name ("BASIC" or "PREMIUM").
func ParseTier(name string) (SubscriptionTier, bool) {
	switch name {
	case "BASIC":
		return TierBasic, true
	case "PREMIUM":
		return TierPremium, true
	default:
		return TierBasic, false
	}
}

// String returns the tier's input identifier.
func (t SubscriptionTier) String() string {
	if t == TierPremium {
		return "PREMIUM"
	}
	return "BASIC"
}

// WatchEntry is one watch-history record: a title and how many times the
// user has viewed it.
type WatchEntry struct {
	Title string
	Views int
}

// User is a catalog entity mutated during a batch by view, favourite and
// rating commands. The username is the unique store key.
//
// Watch history preserves first-watched order: watchedOrder lists titles
// in the order they first entered the history, and views holds the
// per-title counts.
type User struct {
	username     string
	tier         SubscriptionTier
	favorites    map[string]struct{}
	watchedOrder []string
	views        map[string]int
	ratingCount  int
}

// NewUser builds a user from an input record. History entries are applied
// in order so first-watched order survives the load.
func NewUser(username string, tier SubscriptionTier, favorites []string, history []WatchEntry) *User {
	u := &User{
		username:  username,
		tier:      tier,
		favorites: make(map[string]struct{}, len(favorites)),
		views:     make(map[string]int, len(history)),
	}
	for _, title := range favorites {
		u.favorites[title] = struct{}{}
	}
	for _, entry := range history {
		if _, seen := u.views[entry.Title]; !seen {
			u.watchedOrder = append(u.watchedOrder, entry.Title)
		}
		u.views[entry.Title] += entry.Views
	}
	return u
}

// Username returns the user's unique name.
func (u *User) Username() string { return u.username }

// Key returns the store key (the username).
func (u *User) Key() string { return u.username }

// Tier returns the subscription tier.
func (u *User) Tier() SubscriptionTier { return u.tier }

// HasWatched reports whether the title appears in the watch history.
func (u *User) HasWatched(title string) bool {
	_, ok := u.views[title]
	return ok
}

// HasFavorite reports whether the title is in the favourites list.
func (u *User) HasFavorite(title string) bool {
	_, ok := u.favorites[title]
	return ok
}

// Views returns how many times the user has viewed the title, zero if
// never watched.
func (u *User) Views(title string) int {
	return u.views[title]
}

// WatchedTitles returns the watch history titles in first-watched order.
// The returned slice must not be mutated.
func (u *User) WatchedTitles() []string { return u.watchedOrder }

// RatingCount returns the number of ratings the user has given.
func (u *User) RatingCount() int { return u.ratingCount }

// AddView records one more view of the title, creating the history entry
// at 1 if absent, and returns the new count. It never fails; video
// existence is the caller's concern.
func (u *User) AddView(title string) int {
	if _, seen := u.views[title]; !seen {
		u.watchedOrder = append(u.watchedOrder, title)
	}
	u.views[title]++
	return u.views[title]
}

// AddFavorite adds the title to the favourites list. The title must
// already be in the watch history (ErrNotWatched) and not yet a
// favourite (ErrAlreadyFavorite).
func (u *User) AddFavorite(title string) error {
	if !u.HasWatched(title) {
		return ErrNotWatched
	}
	if u.HasFavorite(title) {
		return ErrAlreadyFavorite
	}
	u.favorites[title] = struct{}{}
	return nil
}

// RecordRating bumps the user's rating count. Called once per successful
// rating command.
func (u *User) RecordRating() {
	u.ratingCount++
}
