// Package stacks provides a LIFO stack over a growable slice.
package stacks

// Stack is a last-in-first-out stack. The zero value is empty and ready for
// use. A Stack is not safe for concurrent use.
type Stack[T any] struct {
	items []T
}

// Len returns the number of elements on the Stack.
func (s *Stack[T]) Len() int {
	return len(s.items)
}

// Empty returns true when the Stack has no elements.
func (s *Stack[T]) Empty() bool {
	return len(s.items) == 0
}

// Push adds v to the top of the Stack.
func (s *Stack[T]) Push(v T) {
	s.items = append(s.items, v)
}

// Pop removes and returns the top element. Returns the zero value and false
// when the Stack is empty.
func (s *Stack[T]) Pop() (v T, ok bool) {
	if len(s.items) == 0 {
		return v, false
	}
	var zero T
	end := len(s.items) - 1
	v = s.items[end]
	s.items[end] = zero
	s.items = s.items[:end]
	return v, true
}

// Peek returns the top element without removing it. Returns the zero value
// and false when the Stack is empty.
func (s *Stack[T]) Peek() (v T, ok bool) {
	if len(s.items) == 0 {
		return v, false
	}
	return s.items[len(s.items)-1], true
}
