// Kinoteca - In-Memory Media Catalog and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kinoteca

package query

import "sort"

// Comparator orders two entities: negative when a ranks before b under
// ascending order, positive when after, zero when tied.
type Comparator[T any] func(a, b T) int

// Criteria is an ordered comparator chain plus one direction flag.
//
// The flag applies uniformly to every comparator in the chain, including
// any trailing name/title tie-break. Per-key direction is deliberately
// not supported; descending multi-key sorts therefore also flip the
// tie-break. This matches the engine's historical ranking semantics and
// must not be "fixed" locally.
type Criteria[T any] struct {
	Ascending   bool
	Comparators []Comparator[T]
}

// NewCriteria builds sort criteria from a comparator chain.
func NewCriteria[T any](ascending bool, comparators ...Comparator[T]) Criteria[T] {
	return Criteria[T]{Ascending: ascending, Comparators: comparators}
}

// Compare evaluates the chain in order; the first non-zero comparator
// decides, flipped when descending. Zero means equal for ranking
// purposes.
func (c Criteria[T]) Compare(a, b T) int {
	dir := 1
	if !c.Ascending {
		dir = -1
	}
	for _, cmp := range c.Comparators {
		if result := dir * cmp(a, b); result != 0 {
			return result
		}
	}
	return 0
}

// SortByCriteria returns a new slice sorted by the criteria. The sort is
// stable, so entities that compare equal keep their input order.
func SortByCriteria[T any](list []T, criteria Criteria[T]) []T {
	out := make([]T, len(list))
	copy(out, list)
	sort.SliceStable(out, func(i, j int) bool {
		return criteria.Compare(out[i], out[j]) < 0
	})
	return out
}

// TopN returns the first min(n, len) elements. n may exceed the list
// length; a non-positive n yields an empty result.
func TopN[T any](list []T, n int) []T {
	if n < 0 {
		n = 0
	}
	if n > len(list) {
		n = len(list)
	}
	return list[:n]
}
