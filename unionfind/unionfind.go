// Package unionfind implements a disjoint-set forest over 0..n-1 with full
// path compression. Union attaches the first root beneath the second; there
// is no rank heuristic, so the forest shape depends on call order.
package unionfind

import (
	"errors"
	"fmt"
)

var (
	// ErrEmpty is returned when a forest of zero elements is requested.
	ErrEmpty = errors.New("unionfind: empty forest")

	// ErrOutOfRange is returned for an element outside 0..n-1.
	ErrOutOfRange = errors.New("unionfind: element out of range")
)

// Forest is a disjoint-set forest. Not safe for concurrent use.
type Forest struct {
	parent []int
	roots  int
}

// New returns n singleton sets.
func New(n int) (*Forest, error) {
	if n <= 0 {
		return nil, fmt.Errorf("New(%d): %w", n, ErrEmpty)
	}
	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}

	return &Forest{parent: parent, roots: n}, nil
}

// Clone returns an independent copy of the forest.
func (f *Forest) Clone() *Forest {
	return &Forest{parent: append([]int(nil), f.parent...), roots: f.roots}
}

// Len returns the number of elements.
func (f *Forest) Len() int { return len(f.parent) }

// Roots returns the number of disjoint sets.
func (f *Forest) Roots() int { return f.roots }

// Find returns the representative of x, re-pointing every node on the walk
// directly at it. It panics with a wrapped ErrOutOfRange for a bad x.
func (f *Forest) Find(x int) int {
	r, err := f.FindChecked(x)
	if err != nil {
		panic(err)
	}

	return r
}

// FindChecked is Find returning ErrOutOfRange instead of panicking.
func (f *Forest) FindChecked(x int) (int, error) {
	if x < 0 || x >= len(f.parent) {
		return 0, fmt.Errorf("Find(%d): size %d: %w", x, len(f.parent), ErrOutOfRange)
	}
	root := x
	for f.parent[root] != root {
		root = f.parent[root]
	}
	for x != root {
		next := f.parent[x]
		f.parent[x] = root
		x = next
	}

	return root, nil
}

// Union merges the sets of x and y, placing root(x) beneath root(y). It
// reports whether the two were previously disjoint.
func (f *Forest) Union(x, y int) bool {
	rx, ry := f.Find(x), f.Find(y)
	if rx == ry {
		return false
	}
	f.parent[rx] = ry
	f.roots--

	return true
}

// Same reports whether x and y share a set.
func (f *Forest) Same(x, y int) bool { return f.Find(x) == f.Find(y) }
