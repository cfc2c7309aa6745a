// Package mapops provides helpers for combining and reshaping maps.
package mapops

import (
	"cmp"
	"slices"
)

// Merge copies every entry of src into dst and returns dst. On a key
// collision the src value wins. A nil dst is allocated, so the result of a
// chain of merges is always usable:
//
//	m := mapops.Merge(mapops.Merge(nil, defaults), overrides)
func Merge[K comparable, V any](dst, src map[K]V) map[K]V {
	if dst == nil {
		dst = make(map[K]V, len(src))
	}
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

// MergeFunc is like Merge, but on a key collision the kept value is whatever
// resolve returns for the two candidates.
func MergeFunc[K comparable, V any](dst, src map[K]V, resolve func(old, new V) V) map[K]V {
	if dst == nil {
		dst = make(map[K]V, len(src))
	}
	for k, v := range src {
		if old, ok := dst[k]; ok {
			dst[k] = resolve(old, v)
			continue
		}
		dst[k] = v
	}
	return dst
}

// Invert returns a new map from value to key. When several keys share a
// value, which key survives is not defined. The returned map is never nil.
func Invert[K, V comparable](m map[K]V) map[V]K {
	out := make(map[V]K, len(m))
	for k, v := range m {
		out[v] = k
	}
	return out
}

// SortedKeys returns the keys of m in ascending order.
func SortedKeys[K cmp.Ordered, V any](m map[K]V) []K {
	if len(m) == 0 {
		return nil
	}
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// FilterKeys returns a new map holding the entries of m whose key keep
// reports true for. The returned map is never nil.
func FilterKeys[K comparable, V any](m map[K]V, keep func(K) bool) map[K]V {
	out := make(map[K]V)
	for k, v := range m {
		if keep(k) {
			out[k] = v
		}
	}
	return out
}
