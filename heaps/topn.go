package heaps

// TopN keeps the n best elements of a stream of any length in O(log n) per
// Add. "Best" is defined by better: better(a, b) reports whether a should
// rank ahead of b. Internally the kept elements sit in a heap ordered worst
// first, so a new element only has to beat the worst survivor to enter.
type TopN[T any] struct {
	n      int
	better func(a, b T) bool
	q      *Queue[T]
}

// NewTopN returns a TopN that keeps the n best elements. Panics if n < 1 or
// better is nil.
func NewTopN[T any](n int, better func(a, b T) bool) *TopN[T] {
	if n < 1 {
		panic("heaps: TopN requires n >= 1")
	}
	if better == nil {
		panic("heaps: better must not be nil")
	}
	return &TopN[T]{
		n:      n,
		better: better,
		// Worst element at the root.
		q: New(func(a, b T) bool { return better(b, a) }),
	}
}

// Len returns the number of elements currently kept. This is at most n.
func (t *TopN[T]) Len() int {
	return t.q.Len()
}

// Add offers v to the selector. It is kept only if fewer than n elements are
// held or v beats the worst element held.
func (t *TopN[T]) Add(v T) {
	if t.q.Len() < t.n {
		t.q.Push(v)
		return
	}
	worst, _ := t.q.Peek()
	if t.better(v, worst) {
		t.q.Pop()
		t.q.Push(v)
	}
}

// Results drains the selector and returns the kept elements ordered best
// first. The selector is empty afterwards.
func (t *TopN[T]) Results() []T {
	out := make([]T, t.q.Len())
	for i := len(out) - 1; i >= 0; i-- {
		out[i], _ = t.q.Pop()
	}
	return out
}

// Reset drops all kept elements.
func (t *TopN[T]) Reset() {
	t.q.h.items = t.q.h.items[:0]
}
