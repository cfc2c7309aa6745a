// Package group provides helpers that organize the elements of a slice into
// maps keyed by a derived value.
package group

// By returns a map from each derived key to the elements that produced it.
// Elements within a group keep their input order. The returned map is never
// nil.
func By[T any, K comparable](s []T, key func(T) K) map[K][]T {
	out := make(map[K][]T)
	for _, v := range s {
		k := key(v)
		out[k] = append(out[k], v)
	}
	return out
}

// Index returns a map from each derived key to the element that produced it.
// When several elements share a key, the last one wins. The returned map is
// never nil.
func Index[T any, K comparable](s []T, key func(T) K) map[K]T {
	out := make(map[K]T, len(s))
	for _, v := range s {
		out[key(v)] = v
	}
	return out
}

// Count returns a map from each derived key to the number of elements that
// produced it. The returned map is never nil.
func Count[T any, K comparable](s []T, key func(T) K) map[K]int {
	out := make(map[K]int)
	for _, v := range s {
		out[key(v)]++
	}
	return out
}

// Partition splits s into the elements that pred reports true for and the
// rest, preserving order in both.
func Partition[T any](s []T, pred func(T) bool) (kept, rest []T) {
	for _, v := range s {
		if pred(v) {
			kept = append(kept, v)
		} else {
			rest = append(rest, v)
		}
	}
	return kept, rest
}
