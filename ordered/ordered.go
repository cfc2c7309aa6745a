// Package ordered provides a map that iterates in key order, for the cases
// where a plain Go map's undefined iteration order is not acceptable. It is
// backed by a B-tree rather than a map plus a re-sorted key slice, so ordered
// iteration stays cheap under churn.
package ordered

import (
	"cmp"
	"iter"

	"github.com/tidwall/btree"
)

// Map is a key-ordered map. The zero value is empty and ready for use.
// A Map is not safe for concurrent use.
type Map[K cmp.Ordered, V any] struct {
	tr btree.Map[K, V]
}

// Len returns the number of entries in the Map.
func (m *Map[K, V]) Len() int {
	return m.tr.Len()
}

// Set assigns value to key. Returns the previous value, or false when the key
// was not present.
func (m *Map[K, V]) Set(key K, value V) (prev V, replaced bool) {
	return m.tr.Set(key, value)
}

// Get returns the value for key. Returns false when the key is not present.
func (m *Map[K, V]) Get(key K) (value V, ok bool) {
	return m.tr.Get(key)
}

// Delete removes key. Returns the deleted value, or false when the key was
// not present.
func (m *Map[K, V]) Delete(key K) (prev V, deleted bool) {
	return m.tr.Delete(key)
}

// Min returns the entry with the smallest key. Returns false when the Map is
// empty.
func (m *Map[K, V]) Min() (key K, value V, ok bool) {
	return m.tr.Min()
}

// Max returns the entry with the largest key. Returns false when the Map is
// empty.
func (m *Map[K, V]) Max() (key K, value V, ok bool) {
	return m.tr.Max()
}

// All returns a sequence of the entries in ascending key order. It is not
// safe to Set or Delete while iterating.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		m.tr.Scan(func(k K, v V) bool {
			return yield(k, v)
		})
	}
}

// Descend returns a sequence of the entries in descending key order. It is
// not safe to Set or Delete while iterating.
func (m *Map[K, V]) Descend() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		m.tr.Reverse(func(k K, v V) bool {
			return yield(k, v)
		})
	}
}

// Keys returns the keys in ascending order.
func (m *Map[K, V]) Keys() []K {
	if m.tr.Len() == 0 {
		return nil
	}
	keys := make([]K, 0, m.tr.Len())
	m.tr.Scan(func(k K, _ V) bool {
		keys = append(keys, k)
		return true
	})
	return keys
}
