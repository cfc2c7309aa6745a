package ring

// Deque is a double-ended queue maintained over a growable ring buffer.
//
// Note: it is backed by a slice (unlike container/list which is backed by a
// linked list), so pushes that do not grow the buffer make no allocation.
// The zero value is empty and ready for use. A Deque is not safe for
// concurrent use.
type Deque[T any] struct {
	buf  []T
	head int // index of the front entry
	n    int // number of entries in use
}

// Len returns the number of entries in the Deque.
func (d *Deque[T]) Len() int {
	return d.n
}

// Cap returns the current capacity of the Deque.
func (d *Deque[T]) Cap() int {
	return len(d.buf)
}

func (d *Deque[T]) grow(n int) {
	newBuf := make([]T, n)
	for i := 0; i < d.n; i++ {
		newBuf[i] = d.buf[(d.head+i)%len(d.buf)]
	}
	d.buf = newBuf
	d.head = 0
}

func (d *Deque[T]) maybeGrow() {
	if d.n < len(d.buf) {
		return
	}
	n := 2 * len(d.buf)
	if n == 0 {
		n = 1
	}
	d.grow(n)
}

// Grow reserves capacity for at least n entries. It is a no-op when the Deque
// already has that capacity.
func (d *Deque[T]) Grow(n int) {
	if n > len(d.buf) {
		d.grow(n)
	}
}

// PushFront adds v to the front of the Deque, growing it if necessary.
func (d *Deque[T]) PushFront(v T) {
	d.maybeGrow()
	d.head = (d.head - 1 + len(d.buf)) % len(d.buf)
	d.buf[d.head] = v
	d.n++
}

// PushBack adds v to the back of the Deque, growing it if necessary.
func (d *Deque[T]) PushBack(v T) {
	d.maybeGrow()
	d.buf[(d.head+d.n)%len(d.buf)] = v
	d.n++
}

// PopFront removes and returns the front entry. Returns the zero value and
// false when the Deque is empty.
func (d *Deque[T]) PopFront() (v T, ok bool) {
	if d.n == 0 {
		return v, false
	}
	var zero T
	v = d.buf[d.head]
	d.buf[d.head] = zero
	d.head = (d.head + 1) % len(d.buf)
	d.n--
	return v, true
}

// PopBack removes and returns the back entry. Returns the zero value and
// false when the Deque is empty.
func (d *Deque[T]) PopBack() (v T, ok bool) {
	if d.n == 0 {
		return v, false
	}
	var zero T
	last := (d.head + d.n - 1) % len(d.buf)
	v = d.buf[last]
	d.buf[last] = zero
	d.n--
	return v, true
}

// Front returns the front entry without removing it. Returns the zero value
// and false when the Deque is empty.
func (d *Deque[T]) Front() (v T, ok bool) {
	if d.n == 0 {
		return v, false
	}
	return d.buf[d.head], true
}

// Back returns the back entry without removing it. Returns the zero value and
// false when the Deque is empty.
func (d *Deque[T]) Back() (v T, ok bool) {
	if d.n == 0 {
		return v, false
	}
	return d.buf[(d.head+d.n-1)%len(d.buf)], true
}

// Get returns the entry at position pos, zero-based from the front. Returns
// the zero value and false when pos is out of bounds.
func (d *Deque[T]) Get(pos int) (v T, ok bool) {
	if pos < 0 || pos >= d.n {
		return v, false
	}
	return d.buf[(d.head+pos)%len(d.buf)], true
}

// Reset makes the Deque treat its underlying memory as if it were empty. This
// allows reusing the same memory without reallocating.
func (d *Deque[T]) Reset() {
	var zero T
	for i := 0; i < d.n; i++ {
		d.buf[(d.head+i)%len(d.buf)] = zero
	}
	d.head = 0
	d.n = 0
}
