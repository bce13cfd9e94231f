package nfa

import (
	"cmp"
	"iter"
	"slices"
)

// Set is what it says on the tin; a set of ordered values. The automaton uses Set[int] for states and
// transition targets and Set[rune] for its alphabet. Iteration is always in ascending order, so anything
// built by walking a Set comes out the same way every time.
type Set[T cmp.Ordered] struct {
	items map[T]struct{}
}

// SetView is the read-only face of a Set. The Automaton accessors hand these out so callers can look
// but not touch.
type SetView[T cmp.Ordered] interface {
	Contains(x T) bool
	Len() int
	All() iter.Seq[T]
	Slice() []T
}

// NewSet returns a set holding elems.
func NewSet[T cmp.Ordered](elems ...T) *Set[T] {
	s := &Set[T]{items: make(map[T]struct{}, len(elems))}
	for _, x := range elems {
		s.items[x] = struct{}{}
	}
	return s
}

// CollectSet builds a Set from any sequence, e.g. SetView.All().
func CollectSet[T cmp.Ordered](seq iter.Seq[T]) *Set[T] {
	s := NewSet[T]()
	for x := range seq {
		s.items[x] = struct{}{}
	}
	return s
}

// Add puts x in s. It works on the zero Set too.
func (s *Set[T]) Add(x T) {
	if s.items == nil {
		s.items = make(map[T]struct{})
	}
	s.items[x] = struct{}{}
}

// AddAll adds every member of other to s, which is to say s becomes the union of the two.
func (s *Set[T]) AddAll(other SetView[T]) {
	if other == nil {
		return
	}
	for x := range other.All() {
		s.Add(x)
	}
}

// Remove takes x out of s, if it was there.
func (s *Set[T]) Remove(x T) {
	if s == nil {
		return
	}
	delete(s.items, x)
}

// Clear empties s.
func (s *Set[T]) Clear() {
	if s == nil {
		return
	}
	clear(s.items)
}

// Contains reports whether x is a member of s.
func (s *Set[T]) Contains(x T) bool {
	if s == nil {
		return false
	}
	_, ok := s.items[x]
	return ok
}

// Len is the number of members; a nil set has none.
func (s *Set[T]) Len() int {
	if s == nil {
		return 0
	}
	return len(s.items)
}

// Clone returns a new set with the same members; nothing is shared.
func (s *Set[T]) Clone() *Set[T] {
	c := &Set[T]{items: make(map[T]struct{}, s.Len())}
	if s != nil {
		for x := range s.items {
			c.items[x] = struct{}{}
		}
	}
	return c
}

// Slice returns the members in ascending order.
func (s *Set[T]) Slice() []T {
	if s == nil {
		return nil
	}
	out := make([]T, 0, len(s.items))
	for x := range s.items {
		out = append(out, x)
	}
	slices.Sort(out)
	return out
}

// All yields each member exactly once, in ascending order. The order is fixed when iteration
// starts, so it's safe to add to s while ranging over it; the additions won't be visited.
func (s *Set[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, x := range s.Slice() {
			if !yield(x) {
				return
			}
		}
	}
}

// Equal reports whether s and other have exactly the same members.
func (s *Set[T]) Equal(other SetView[T]) bool {
	if s.Len() != other.Len() {
		return false
	}
	for x := range other.All() {
		if !s.Contains(x) {
			return false
		}
	}
	return true
}

// Intersects reports whether s and other have at least one member in common.
func (s *Set[T]) Intersects(other SetView[T]) bool {
	small, big := SetView[T](s), other
	if other.Len() < s.Len() {
		small, big = other, s
	}
	for x := range small.All() {
		if big.Contains(x) {
			return true
		}
	}
	return false
}

// SetUnion returns a new set containing the members of both a and b.
func SetUnion[T cmp.Ordered](a, b SetView[T]) *Set[T] {
	u := NewSet[T]()
	u.AddAll(a)
	u.AddAll(b)
	return u
}

// SetDifference returns a new set containing the members of a which aren't in b.
func SetDifference[T cmp.Ordered](a, b SetView[T]) *Set[T] {
	d := NewSet[T]()
	for x := range a.All() {
		if !b.Contains(x) {
			d.Add(x)
		}
	}
	return d
}

// emptyStates is what Neighbors returns when there's no transition. Nobody gets to write to it, which
// is why it only escapes as a SetView.
var emptyStates = NewSet[int]()
