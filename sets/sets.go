// Package sets provides a generic set type with the usual set algebra.
package sets

import (
	"cmp"
	"fmt"
	"iter"
	"slices"

	"github.com/go-json-experiment/json"
)

// Set is a generic set type. The zero value is an empty set ready for use.
// A Set is not safe for concurrent use; for that see the concurrent package.
type Set[E cmp.Ordered] struct {
	m map[E]struct{}
}

// New returns a Set containing the given values.
func New[E cmp.Ordered](vals ...E) Set[E] {
	s := Set[E]{}
	s.Add(vals...)
	return s
}

func (s *Set[E]) init() {
	if s.m == nil {
		s.m = make(map[E]struct{})
	}
}

// Len returns the number of elements in the Set.
func (s *Set[E]) Len() int {
	return len(s.m)
}

// Add adds the given values to the Set.
func (s *Set[E]) Add(vals ...E) {
	s.init()
	for _, v := range vals {
		s.m[v] = struct{}{}
	}
}

// Remove removes the given values from the Set. Removing a value that is not
// in the Set is a no-op.
func (s *Set[E]) Remove(vals ...E) {
	for _, v := range vals {
		delete(s.m, v)
	}
}

// Contains returns true if the Set contains the given value.
func (s *Set[E]) Contains(v E) bool {
	if s.m == nil {
		return false
	}
	_, ok := s.m[v]
	return ok
}

// Members returns all the members of the Set. This is a copy of the entries in the Set.
// This returned slice is sorted. This is a new slice and can be modified without affecting the Set.
func (s *Set[E]) Members() []E {
	if s.m == nil {
		return nil
	}

	result := make([]E, 0, len(s.m))
	for v := range s.m {
		result = append(result, v)
	}

	slices.Sort(result)
	return result
}

// All returns a sequence of the members of the Set. Order is not defined.
// It is not safe to Add or Remove while iterating.
func (s *Set[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		for v := range s.m {
			if !yield(v) {
				return
			}
		}
	}
}

// Clone returns a copy of the Set that can be modified without affecting the original.
func (s *Set[E]) Clone() Set[E] {
	result := Set[E]{}
	if len(s.m) == 0 {
		return result
	}
	result.m = make(map[E]struct{}, len(s.m))
	for v := range s.m {
		result.m[v] = struct{}{}
	}
	return result
}

// Equal returns true if both Sets contain exactly the same members.
func (s *Set[E]) Equal(s2 Set[E]) bool {
	if s.Len() != s2.Len() {
		return false
	}
	for v := range s.m {
		if !s2.Contains(v) {
			return false
		}
	}
	return true
}

// String returns a string representation of the Set. This implements the fmt.Stringer interface.
func (s *Set[E]) String() string {
	return fmt.Sprintf("%v", s.Members())
}

// Union returns a new Set that is the union of the two Sets. This creates a new Set.
func (s *Set[E]) Union(s2 Set[E]) Set[E] {
	result := s.Clone()
	for v := range s2.m {
		result.Add(v)
	}
	return result
}

// Intersection returns a new Set that is the intersection of the two Sets.
func (s *Set[E]) Intersection(s2 Set[E]) Set[E] {
	result := Set[E]{}
	for v := range s.m {
		if s2.Contains(v) {
			result.Add(v)
		}
	}
	return result
}

// Difference returns a new Set holding the members of s that are not in s2.
func (s *Set[E]) Difference(s2 Set[E]) Set[E] {
	result := Set[E]{}
	for v := range s.m {
		if !s2.Contains(v) {
			result.Add(v)
		}
	}
	return result
}

// SymmetricDifference returns a new Set holding the members that are in
// exactly one of the two Sets.
func (s *Set[E]) SymmetricDifference(s2 Set[E]) Set[E] {
	result := s.Difference(s2)
	for v := range s2.m {
		if !s.Contains(v) {
			result.Add(v)
		}
	}
	return result
}

// SubsetOf returns true if every member of s is also a member of s2.
func (s *Set[E]) SubsetOf(s2 Set[E]) bool {
	if s.Len() > s2.Len() {
		return false
	}
	for v := range s.m {
		if !s2.Contains(v) {
			return false
		}
	}
	return true
}

// MarshalJSON implements json.Marshaler. The Set is encoded as a sorted array.
func (s *Set[E]) MarshalJSON() ([]byte, error) {
	members := s.Members()
	if members == nil {
		members = []E{}
	}
	return json.Marshal(members)
}

// UnmarshalJSON implements json.Unmarshaler. Existing members are replaced.
func (s *Set[E]) UnmarshalJSON(b []byte) error {
	var vals []E
	if err := json.Unmarshal(b, &vals); err != nil {
		return err
	}
	s.m = make(map[E]struct{}, len(vals))
	s.Add(vals...)
	return nil
}
