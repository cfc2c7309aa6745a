// Package multimap provides a mapping from a key to multiple values, built by
// composing a map with growable slices.
package multimap

import (
	"fmt"
	"iter"
	"slices"
)

// Map maps a key to a list of values. The zero value is empty and ready for
// use. Values for a key retain insertion order. A Map is not safe for
// concurrent use.
type Map[K comparable, V any] struct {
	m    map[K][]V
	size int
}

// Collect returns a Map built from the key/value pairs in seq.
func Collect[K comparable, V any](seq iter.Seq2[K, V]) Map[K, V] {
	m := Map[K, V]{}
	for k, v := range seq {
		m.Add(k, v)
	}
	return m
}

func (m *Map[K, V]) init() {
	if m.m == nil {
		m.m = make(map[K][]V)
	}
}

// Len returns the number of distinct keys in the Map.
func (m *Map[K, V]) Len() int {
	return len(m.m)
}

// Size returns the total number of values across all keys.
func (m *Map[K, V]) Size() int {
	return m.size
}

// Add appends the given values to the list for key.
func (m *Map[K, V]) Add(key K, vals ...V) {
	if len(vals) == 0 {
		return
	}
	m.init()
	m.m[key] = append(m.m[key], vals...)
	m.size += len(vals)
}

// Set replaces the list for key with the given values. Setting no values
// removes the key.
func (m *Map[K, V]) Set(key K, vals ...V) {
	m.Delete(key)
	m.Add(key, vals...)
}

// Get returns the values for key. This returns nil when the key is absent and
// never inserts the key. The returned slice is the Map's backing storage;
// callers that need to modify it should copy it first.
func (m *Map[K, V]) Get(key K) []V {
	return m.m[key]
}

// Contains returns true if the Map has at least one value for key.
func (m *Map[K, V]) Contains(key K) bool {
	_, ok := m.m[key]
	return ok
}

// Delete removes key and all its values. Returns the number of values removed.
func (m *Map[K, V]) Delete(key K) int {
	vals, ok := m.m[key]
	if !ok {
		return 0
	}
	delete(m.m, key)
	m.size -= len(vals)
	return len(vals)
}

// DeleteValue removes the first value equal to val from key's list. When the
// last value for a key is removed, the key is removed too. This variant
// requires a comparable value type; see DeleteValueFunc otherwise.
func DeleteValue[K, V comparable](m *Map[K, V], key K, val V) bool {
	return m.DeleteValueFunc(key, func(v V) bool { return v == val })
}

// DeleteValueFunc removes the first value for key that match reports true for.
// When the last value for a key is removed, the key is removed too.
func (m *Map[K, V]) DeleteValueFunc(key K, match func(V) bool) bool {
	vals, ok := m.m[key]
	if !ok {
		return false
	}
	for i, v := range vals {
		if !match(v) {
			continue
		}
		vals = slices.Delete(vals, i, i+1)
		if len(vals) == 0 {
			delete(m.m, key)
		} else {
			m.m[key] = vals
		}
		m.size--
		return true
	}
	return false
}

// Keys returns the distinct keys of the Map. Order is not defined.
func (m *Map[K, V]) Keys() []K {
	if m.m == nil {
		return nil
	}
	keys := make([]K, 0, len(m.m))
	for k := range m.m {
		keys = append(keys, k)
	}
	return keys
}

// Values returns all values across all keys. Order between keys is not
// defined; values for a single key keep their insertion order.
func (m *Map[K, V]) Values() []V {
	if m.m == nil {
		return nil
	}
	vals := make([]V, 0, m.size)
	for _, vs := range m.m {
		vals = append(vals, vs...)
	}
	return vals
}

// All returns a sequence of every key/value pair. A key with n values is
// yielded n times. It is not safe to modify the Map while iterating.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for k, vs := range m.m {
			for _, v := range vs {
				if !yield(k, v) {
					return
				}
			}
		}
	}
}

// Clone returns a copy of the Map. The value slices are copied, the values
// themselves are not.
func (m *Map[K, V]) Clone() Map[K, V] {
	result := Map[K, V]{}
	if m.m == nil {
		return result
	}
	result.m = make(map[K][]V, len(m.m))
	result.size = m.size
	for k, vs := range m.m {
		result.m[k] = slices.Clone(vs)
	}
	return result
}

// String returns a string representation of the Map. This implements the
// fmt.Stringer interface.
func (m *Map[K, V]) String() string {
	return fmt.Sprintf("%v", m.m)
}
