// Package sortby provides sorting helpers for slices of structs.
//
// Asc and Desc build comparison functions for slices.SortFunc from a key
// extractor. They recompute the key on every comparison, which is fine when
// the key is a plain field access. When deriving the key is expensive
// (parsing, hashing, string folding), use ByKey instead: it computes each key
// exactly once before sorting.
package sortby

import (
	"cmp"
	"slices"
)

// Asc returns a comparison function for slices.SortFunc that orders elements
// by key, ascending.
func Asc[T any, K cmp.Ordered](key func(T) K) func(a, b T) int {
	return func(a, b T) int { return cmp.Compare(key(a), key(b)) }
}

// Desc returns a comparison function for slices.SortFunc that orders elements
// by key, descending.
func Desc[T any, K cmp.Ordered](key func(T) K) func(a, b T) int {
	return func(a, b T) int { return cmp.Compare(key(b), key(a)) }
}

type keyed[T any, K cmp.Ordered] struct {
	key K
	val T
}

// ByKey sorts s ascending by the given key, computing each key exactly once.
// Sorting n elements costs n key calls plus O(n log n) comparisons on the
// precomputed keys, at the price of O(n) extra memory.
func ByKey[T any, K cmp.Ordered](s []T, key func(T) K) {
	byKey(s, key, slices.SortFunc[[]keyed[T, K], keyed[T, K]])
}

// ByKeyStable is like ByKey but keeps the original order of elements with
// equal keys.
func ByKeyStable[T any, K cmp.Ordered](s []T, key func(T) K) {
	byKey(s, key, slices.SortStableFunc[[]keyed[T, K], keyed[T, K]])
}

func byKey[T any, K cmp.Ordered](s []T, key func(T) K, sort func([]keyed[T, K], func(a, b keyed[T, K]) int)) {
	if len(s) < 2 {
		return
	}
	pairs := make([]keyed[T, K], len(s))
	for i, v := range s {
		pairs[i] = keyed[T, K]{key: key(v), val: v}
	}
	sort(pairs, func(a, b keyed[T, K]) int { return cmp.Compare(a.key, b.key) })
	for i := range pairs {
		s[i] = pairs[i].val
	}
}

// MinBy returns the element of s with the smallest key. Returns the zero
// value and false for empty input.
func MinBy[T any, K cmp.Ordered](s []T, key func(T) K) (v T, ok bool) {
	if len(s) == 0 {
		return v, false
	}
	best, bestKey := s[0], key(s[0])
	for _, cand := range s[1:] {
		if k := key(cand); k < bestKey {
			best, bestKey = cand, k
		}
	}
	return best, true
}

// MaxBy returns the element of s with the largest key. Returns the zero
// value and false for empty input.
func MaxBy[T any, K cmp.Ordered](s []T, key func(T) K) (v T, ok bool) {
	if len(s) == 0 {
		return v, false
	}
	best, bestKey := s[0], key(s[0])
	for _, cand := range s[1:] {
		if k := key(cand); k > bestKey {
			best, bestKey = cand, k
		}
	}
	return best, true
}
