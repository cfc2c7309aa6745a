// Package sliceops provides common slice transformations: deduplication,
// chunking, filtering and mapping. All functions treat a nil slice as empty.
package sliceops

// Dedup returns a new slice with duplicates removed. The first occurrence of
// each value wins and input order is preserved. Returns nil for empty input.
func Dedup[T comparable](s []T) []T {
	if len(s) == 0 {
		return nil
	}
	seen := make(map[T]struct{}, len(s))
	out := make([]T, 0, len(s))
	for _, v := range s {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// DedupFunc is like Dedup but derives the identity of each element with key.
// Use it when the element type is not comparable or only part of it matters.
func DedupFunc[T any, K comparable](s []T, key func(T) K) []T {
	if len(s) == 0 {
		return nil
	}
	seen := make(map[K]struct{}, len(s))
	out := make([]T, 0, len(s))
	for _, v := range s {
		k := key(v)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, v)
	}
	return out
}

// DedupSorted collapses adjacent equal values in place and returns the
// shortened slice. The input must already be sorted (or at least have its
// duplicates adjacent); this makes no allocation.
func DedupSorted[T comparable](s []T) []T {
	if len(s) < 2 {
		return s
	}
	w := 1
	for i := 1; i < len(s); i++ {
		if s[i] == s[w-1] {
			continue
		}
		s[w] = s[i]
		w++
	}
	return s[:w]
}

// Chunk splits s into windows of at most n elements. The windows are
// subslices of s, not copies. The last window may be shorter. Panics if
// n < 1. Returns nil for empty input.
func Chunk[T any](s []T, n int) [][]T {
	if n < 1 {
		panic("sliceops: chunk size must be at least 1")
	}
	if len(s) == 0 {
		return nil
	}
	out := make([][]T, 0, (len(s)+n-1)/n)
	for n < len(s) {
		out = append(out, s[:n:n])
		s = s[n:]
	}
	return append(out, s)
}

// Reverse reverses s in place.
func Reverse[T any](s []T) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

// Filter returns a new slice holding the elements of s that keep reports
// true for, preserving order. Returns nil when nothing is kept.
func Filter[T any](s []T, keep func(T) bool) []T {
	var out []T
	for _, v := range s {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out
}

// Transform returns a new slice where each element is f applied to the
// corresponding element of s. Returns nil for empty input.
func Transform[T, U any](s []T, f func(T) U) []U {
	if len(s) == 0 {
		return nil
	}
	out := make([]U, len(s))
	for i, v := range s {
		out[i] = f(v)
	}
	return out
}

// Flatten concatenates the inner slices of s into a single new slice.
// Returns nil when there are no elements.
func Flatten[T any](s [][]T) []T {
	n := 0
	for _, inner := range s {
		n += len(inner)
	}
	if n == 0 {
		return nil
	}
	out := make([]T, 0, n)
	for _, inner := range s {
		out = append(out, inner...)
	}
	return out
}
