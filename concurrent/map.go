// Package concurrent provides a thread-safe map. Like map[K]V, but sharded
// across multiple maps with a lock per shard, so writers on different shards
// do not contend. Keys are assigned to shards with hash/maphash.
package concurrent

import (
	"hash/maphash"
	"iter"
	"runtime"
	"sync"
)

// Map is a sharded, thread-safe map. The zero value is empty and ready for
// use:
//
//	var m concurrent.Map[string, int]
type Map[K comparable, V any] struct {
	init   sync.Once
	shards int
	mus    []sync.RWMutex
	maps   []map[K]V

	seed maphash.Seed
}

// New returns a Map with capacity hint cap spread across its shards. This is
// only needed to pre-size the shards; otherwise just declare a zero value.
func New[K comparable, V any](cap int) *Map[K, V] {
	m := &Map[K, V]{}
	m.initDo(cap)
	return m
}

// Set assigns a value to a key.
// Returns the previous value, or false when no value was assigned.
func (m *Map[K, V]) Set(key K, value V) (prev V, replaced bool) {
	m.initDo(0)
	shard := m.choose(key)
	m.mus[shard].Lock()
	prev, replaced = m.maps[shard][key]
	m.maps[shard][key] = value
	m.mus[shard].Unlock()
	return prev, replaced
}

// Get returns a value for a key.
// Returns false when no value has been assigned for key.
func (m *Map[K, V]) Get(key K) (value V, ok bool) {
	m.initDo(0)
	shard := m.choose(key)
	m.mus[shard].RLock()
	value, ok = m.maps[shard][key]
	m.mus[shard].RUnlock()
	return value, ok
}

// GetOrSet returns the existing value for key if present. Otherwise it stores
// and returns value. loaded is true if the value was already present.
func (m *Map[K, V]) GetOrSet(key K, value V) (actual V, loaded bool) {
	m.initDo(0)
	shard := m.choose(key)
	m.mus[shard].Lock()
	defer m.mus[shard].Unlock()

	if existing, ok := m.maps[shard][key]; ok {
		return existing, true
	}
	m.maps[shard][key] = value
	return value, false
}

// Delete deletes a value for a key.
// Returns the deleted value, or false when no value was assigned.
func (m *Map[K, V]) Delete(key K) (prev V, deleted bool) {
	m.initDo(0)
	shard := m.choose(key)
	m.mus[shard].Lock()
	prev, deleted = m.maps[shard][key]
	delete(m.maps[shard], key)
	m.mus[shard].Unlock()
	return prev, deleted
}

// Len returns the number of values in the map.
func (m *Map[K, V]) Len() int {
	m.initDo(0)
	var n int
	for i := 0; i < m.shards; i++ {
		m.mus[i].RLock()
		n += len(m.maps[i])
		m.mus[i].RUnlock()
	}
	return n
}

// Clear removes all values from the map.
func (m *Map[K, V]) Clear() {
	m.initDo(0)
	for i := 0; i < m.shards; i++ {
		m.mus[i].Lock()
		m.maps[i] = make(map[K]V)
		m.mus[i].Unlock()
	}
}

// All returns a sequence of all key/values. Each shard is locked while it is
// being yielded from, so do not Set or Delete while iterating.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	m.initDo(0)
	return func(yield func(K, V) bool) {
		for i := 0; i < m.shards; i++ {
			m.mus[i].RLock()
			for k, v := range m.maps[i] {
				if !yield(k, v) {
					m.mus[i].RUnlock()
					return
				}
			}
			m.mus[i].RUnlock()
		}
	}
}

func (m *Map[K, V]) choose(key K) int {
	return int(maphash.Comparable(m.seed, key) & uint64(m.shards-1))
}

func (m *Map[K, V]) initDo(cap int) {
	m.init.Do(func() {
		m.shards = 1
		for m.shards < runtime.NumCPU()*16 {
			m.shards *= 2
		}
		scap := cap / m.shards
		m.mus = make([]sync.RWMutex, m.shards)
		m.maps = make([]map[K]V, m.shards)
		for i := 0; i < len(m.maps); i++ {
			m.maps[i] = make(map[K]V, scap)
		}
		m.seed = maphash.MakeSeed()
	})
}
