// Kinoteca - In-Memory Media Catalog and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kinoteca

package catalog

// collection is an insertion-ordered map with idempotent puts. Within one
// collection keys are unique; putting an existing key is a no-op and the
// second entity instance is discarded.
type collection[T any] struct {
	order []string
	items map[string]T
}

func newCollection[T any]() collection[T] {
	return collection[T]{items: make(map[string]T)}
}

// put inserts the entity under key unless the key is already present.
// Returns whether the entity was inserted.
func (c *collection[T]) put(key string, item T) bool {
	if _, exists := c.items[key]; exists {
		return false
	}
	c.order = append(c.order, key)
	c.items[key] = item
	return true
}

func (c *collection[T]) get(key string) (T, bool) {
	item, ok := c.items[key]
	return item, ok
}

// all returns the entities in insertion order.
func (c *collection[T]) all() []T {
	out := make([]T, 0, len(c.order))
	for _, key := range c.order {
		out = append(out, c.items[key])
	}
	return out
}

func (c *collection[T]) len() int { return len(c.items) }

func (c *collection[T]) clear() {
	c.order = nil
	c.items = make(map[string]T)
}

// Store owns every entity for the duration of one batch. It keeps one
// typed collection per kind, so retrieval needs no runtime type checks.
// A Store is constructed fresh per batch and passed explicitly into the
// executors; there is no package-level instance.
type Store struct {
	actors collection[*Actor]
	users  collection[*User]
	videos collection[Video]
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		actors: newCollection[*Actor](),
		users:  newCollection[*User](),
		videos: newCollection[Video](),
	}
}

// PutActor inserts an actor; a duplicate name is a no-op.
// Returns whether the actor was inserted.
func (s *Store) PutActor(a *Actor) bool { return s.actors.put(a.Key(), a) }

// PutUser inserts a user; a duplicate username is a no-op.
func (s *Store) PutUser(u *User) bool { return s.users.put(u.Key(), u) }

// PutVideo inserts a movie or show; a duplicate title is a no-op.
// Movies and shows share one title namespace.
func (s *Store) PutVideo(v Video) bool { return s.videos.put(v.Key(), v) }

// Actor looks up an actor by name.
func (s *Store) Actor(name string) (*Actor, bool) { return s.actors.get(name) }

// User looks up a user by username.
func (s *Store) User(username string) (*User, bool) { return s.users.get(username) }

// Video looks up a video by title.
func (s *Store) Video(title string) (Video, bool) { return s.videos.get(title) }

// Actors returns all actors in insertion order.
func (s *Store) Actors() []*Actor { return s.actors.all() }

// Users returns all users in insertion order.
func (s *Store) Users() []*User { return s.users.all() }

// Videos returns all videos (movies and shows) in insertion order.
func (s *Store) Videos() []Video { return s.videos.all() }

// Movies returns the videos of kind movie, in insertion order.
func (s *Store) Movies() []Video { return s.videosOfKind(KindMovie) }

// Shows returns the videos of kind show, in insertion order.
func (s *Store) Shows() []Video { return s.videosOfKind(KindShow) }

func (s *Store) videosOfKind(kind VideoKind) []Video {
	out := make([]Video, 0, s.videos.len())
	for _, v := range s.videos.all() {
		if v.Kind() == kind {
			out = append(out, v)
		}
	}
	return out
}

// Len returns the entity counts per kind.
func (s *Store) Len() (actors, users, videos int) {
	return s.actors.len(), s.users.len(), s.videos.len()
}

// Clear removes every entity. Batches never share state: either a fresh
// store is built per batch or the previous one is cleared.
func (s *Store) Clear() {
	s.actors.clear()
	s.users.clear()
	s.videos.clear()
}
