// SPDX-License-Identifier: MIT
// Package: vcover/container
//
// stack.go - growable generic stack with ordered-sequence helpers.

package container

import "slices"

// DefaultCapacity is the initial capacity of a Stack created with a
// non-positive capacity hint.
const DefaultCapacity = 10

// Stack is a growable sequence used as a LIFO stack.
type Stack[T any] struct {
	items []T
}

// NewStack returns an empty stack with room for capacity elements.
func NewStack[T any](capacity int) *Stack[T] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}

	return &Stack[T]{items: make([]T, 0, capacity)}
}

// Push appends x, doubling the backing array when it is full.
func (s *Stack[T]) Push(x T) {
	if len(s.items) == cap(s.items) {
		c := 2 * cap(s.items)
		if c == 0 {
			c = DefaultCapacity
		}
		grown := make([]T, len(s.items), c)
		copy(grown, s.items)
		s.items = grown
	}
	s.items = append(s.items, x)
}

// Pop removes and returns the last element.
func (s *Stack[T]) Pop() (T, bool) {
	var zero T
	n := len(s.items)
	if n == 0 {
		return zero, false
	}
	x := s.items[n-1]
	s.items[n-1] = zero
	s.items = s.items[:n-1]

	return x, true
}

// Peek returns the last element without removing it.
func (s *Stack[T]) Peek() (T, bool) {
	if len(s.items) == 0 {
		var zero T
		return zero, false
	}

	return s.items[len(s.items)-1], true
}

// Len returns the number of elements.
func (s *Stack[T]) Len() int { return len(s.items) }

// Cap returns the current capacity.
func (s *Stack[T]) Cap() int { return cap(s.items) }

// Empty reports whether the stack holds no elements.
func (s *Stack[T]) Empty() bool { return len(s.items) == 0 }

// Reset drops every element but keeps the backing array.
func (s *Stack[T]) Reset() {
	clear(s.items)
	s.items = s.items[:0]
}

// Truncate drops elements above position n. It is a no-op when the stack
// holds n or fewer elements.
func (s *Stack[T]) Truncate(n int) {
	if n < 0 {
		n = 0
	}
	if n >= len(s.items) {
		return
	}
	clear(s.items[n:])
	s.items = s.items[:n]
}

// At returns the element at position i, counted from the bottom.
func (s *Stack[T]) At(i int) (T, bool) {
	if i < 0 || i >= len(s.items) {
		var zero T
		return zero, false
	}

	return s.items[i], true
}

// Ptr returns a pointer to the element at position i, or nil. The pointer
// is invalidated by the next Push that grows the stack.
func (s *Stack[T]) Ptr(i int) *T {
	if i < 0 || i >= len(s.items) {
		return nil
	}

	return &s.items[i]
}

// Items returns the elements bottom to top. The slice aliases the stack.
func (s *Stack[T]) Items() []T { return s.items }

// Sort orders the elements ascending by cmp.
func (s *Stack[T]) Sort(cmp func(a, b T) int) {
	slices.SortFunc(s.items, cmp)
}

// BinarySearch looks for target in a stack already sorted by cmp and
// returns its position.
func (s *Stack[T]) BinarySearch(cmp func(a, b T) int, target T) (int, bool) {
	return slices.BinarySearchFunc(s.items, target, cmp)
}

// FindMax returns the largest element by cmp; the first one wins on ties.
func (s *Stack[T]) FindMax(cmp func(a, b T) int) (T, bool) {
	if len(s.items) == 0 {
		var zero T
		return zero, false
	}
	best := s.items[0]
	for _, x := range s.items[1:] {
		if cmp(x, best) > 0 {
			best = x
		}
	}

	return best, true
}

// Contains reports whether an element equal to target (by cmp) is present.
func (s *Stack[T]) Contains(cmp func(a, b T) int, target T) bool {
	for _, x := range s.items {
		if cmp(x, target) == 0 {
			return true
		}
	}

	return false
}

// Remove deletes every element equal to target by swapping it with the
// last element. Order is not preserved. It returns the number removed.
func (s *Stack[T]) Remove(cmp func(a, b T) int, target T) int {
	removed := 0
	for i := 0; i < len(s.items); {
		if cmp(s.items[i], target) != 0 {
			i++
			continue
		}
		last := len(s.items) - 1
		s.items[i] = s.items[last]
		var zero T
		s.items[last] = zero
		s.items = s.items[:last]
		removed++
	}

	return removed
}

// RemoveLast drops the top element, reporting whether there was one.
func (s *Stack[T]) RemoveLast() bool {
	_, ok := s.Pop()
	return ok
}
