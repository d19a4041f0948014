// Kinoteca - In-Memory Media Catalog and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kinoteca

package catalog

import (
	"regexp"
	"strings"
	"sync"
)

// Actor is a read-only catalog entity created once at load time.
// Its name is the unique store key. Filmography entries reference videos
// by title only; a title that never resolves in the store is simply
// skipped by derived computations.
type Actor struct {
	name              string
	careerDescription string
	filmography       []string
	awards            map[Award]int
}

// NewActor builds an actor from an input record. The filmography slice is
// copied; the awards map is copied with negative counts clamped to zero.
func NewActor(name, careerDescription string, filmography []string, awards map[Award]int) *Actor {
	a := &Actor{
		name:              name,
		careerDescription: careerDescription,
		filmography:       make([]string, len(filmography)),
		awards:            make(map[Award]int, len(awards)),
	}
	copy(a.filmography, filmography)
	for award, count := range awards {
		if count < 0 {
			count = 0
		}
		a.awards[award] = count
	}
	return a
}

// Name returns the actor's unique name.
func (a *Actor) Name() string { return a.name }

// Key returns the store key (the name).
func (a *Actor) Key() string { return a.name }

// Filmography returns the video titles the actor has cast in, in record
// order. The returned slice must not be mutated.
func (a *Actor) Filmography() []string { return a.filmography }

// HasAward reports whether the actor holds at least one award of the
// given kind.
func (a *Actor) HasAward(award Award) bool {
	_, ok := a.awards[award]
	return ok
}

// AwardCount returns the total number of awards across all kinds.
func (a *Actor) AwardCount() int {
	total := 0
	for _, count := range a.awards {
		total += count
	}
	return total
}

// keywordPatterns caches compiled whole-word patterns; career-description
// filters reuse the same handful of words across a batch.
var keywordPatterns sync.Map // string -> *regexp.Regexp

// HasKeyword reports whether the word appears in the career description
// as a whole word, case-insensitively.
func (a *Actor) HasKeyword(word string) bool {
	lower := strings.ToLower(word)

	var pattern *regexp.Regexp
	if cached, ok := keywordPatterns.Load(lower); ok {
		pattern = cached.(*regexp.Regexp)
	} else {
		pattern = regexp.MustCompile(`\b` + regexp.QuoteMeta(lower) + `\b`)
		keywordPatterns.Store(lower, pattern)
	}

	return pattern.MatchString(strings.ToLower(a.careerDescription))
}
