// Package ring provides slice-backed circular buffers: a fixed-capacity Ring
// that overwrites its oldest entry once full, and a growable double-ended
// Deque.
package ring

import "iter"

// Ring is a fixed-capacity circular buffer. Once full, a Push overwrites the
// oldest entry. A Ring is not safe for concurrent use.
type Ring[T any] struct {
	buf  []T
	head int // index of the oldest entry
	n    int // number of entries in use
}

// New returns a Ring that holds at most capacity entries. Panics if
// capacity < 1.
func New[T any](capacity int) *Ring[T] {
	if capacity < 1 {
		panic("ring: capacity must be at least 1")
	}
	return &Ring[T]{buf: make([]T, capacity)}
}

// Len returns the number of entries in the Ring.
func (r *Ring[T]) Len() int {
	return r.n
}

// Cap returns the fixed capacity of the Ring.
func (r *Ring[T]) Cap() int {
	return len(r.buf)
}

// Full returns true once the Ring holds Cap() entries, meaning the next Push
// will evict the oldest entry.
func (r *Ring[T]) Full() bool {
	return r.n == len(r.buf)
}

// Push appends v as the newest entry. If the Ring is full the oldest entry is
// overwritten and returned with evicted == true.
func (r *Ring[T]) Push(v T) (old T, evicted bool) {
	tail := (r.head + r.n) % len(r.buf)
	if r.Full() {
		old, evicted = r.buf[tail], true
		r.head = (r.head + 1) % len(r.buf)
	} else {
		r.n++
	}
	r.buf[tail] = v
	return old, evicted
}

// Pop removes and returns the oldest entry. Returns the zero value and false
// when the Ring is empty.
func (r *Ring[T]) Pop() (v T, ok bool) {
	if r.n == 0 {
		return v, false
	}
	var zero T
	v = r.buf[r.head]
	r.buf[r.head] = zero
	r.head = (r.head + 1) % len(r.buf)
	r.n--
	return v, true
}

// Peek returns the oldest entry without removing it. Returns the zero value
// and false when the Ring is empty.
func (r *Ring[T]) Peek() (v T, ok bool) {
	if r.n == 0 {
		return v, false
	}
	return r.buf[r.head], true
}

// Snapshot returns a copy of the entries from oldest to newest.
func (r *Ring[T]) Snapshot() []T {
	if r.n == 0 {
		return nil
	}
	out := make([]T, 0, r.n)
	for i := 0; i < r.n; i++ {
		out = append(out, r.buf[(r.head+i)%len(r.buf)])
	}
	return out
}

// All returns a sequence of the entries from oldest to newest. It is not safe
// to Push or Pop while iterating.
func (r *Ring[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < r.n; i++ {
			if !yield(r.buf[(r.head+i)%len(r.buf)]) {
				return
			}
		}
	}
}
