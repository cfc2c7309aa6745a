// Package heaps provides a generic priority queue over container/heap and a
// bounded top-N selector built on it.
package heaps

import "container/heap"

// sliceHeap adapts a slice and a less function to heap.Interface.
type sliceHeap[T any] struct {
	items []T
	less  func(a, b T) bool
}

func (h *sliceHeap[T]) Len() int           { return len(h.items) }
func (h *sliceHeap[T]) Less(i, j int) bool { return h.less(h.items[i], h.items[j]) }
func (h *sliceHeap[T]) Swap(i, j int)      { h.items[i], h.items[j] = h.items[j], h.items[i] }

func (h *sliceHeap[T]) Push(x any) {
	h.items = append(h.items, x.(T))
}

func (h *sliceHeap[T]) Pop() any {
	var zero T
	end := len(h.items) - 1
	v := h.items[end]
	h.items[end] = zero
	h.items = h.items[:end]
	return v
}

// Queue is a priority queue. The element for which less reports true against
// all others is popped first. A Queue is not safe for concurrent use.
type Queue[T any] struct {
	h *sliceHeap[T]
}

// New returns a Queue ordered by less. Panics if less is nil.
func New[T any](less func(a, b T) bool) *Queue[T] {
	if less == nil {
		panic("heaps: less must not be nil")
	}
	return &Queue[T]{h: &sliceHeap[T]{less: less}}
}

// Len returns the number of elements in the Queue.
func (q *Queue[T]) Len() int {
	return q.h.Len()
}

// Push adds v to the Queue.
func (q *Queue[T]) Push(v T) {
	heap.Push(q.h, v)
}

// Pop removes and returns the highest-priority element. Returns the zero
// value and false when the Queue is empty.
func (q *Queue[T]) Pop() (v T, ok bool) {
	if q.h.Len() == 0 {
		return v, false
	}
	return heap.Pop(q.h).(T), true
}

// Peek returns the highest-priority element without removing it. Returns the
// zero value and false when the Queue is empty.
func (q *Queue[T]) Peek() (v T, ok bool) {
	if q.h.Len() == 0 {
		return v, false
	}
	return q.h.items[0], true
}
