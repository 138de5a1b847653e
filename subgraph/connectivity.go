// SPDX-License-Identifier: MIT
// Package: vcover/subgraph
//
// connectivity.go - component diagnostics over a View.
//
// Complexity:
//   - ComponentCount / IsConnected: O(V + E·α(V)) with union-find.
//   - Components / BFSOrder: O(V + E) plus one View per component.

package subgraph

import (
	"github.com/katalvlaran/vcover/container"
	"github.com/katalvlaran/vcover/unionfind"
)

// ComponentCount returns the number of connected components among the
// active vertices. An empty view has 0 components.
func ComponentCount(s *View) int {
	if s.Len() == 0 {
		return 0
	}
	uf, err := unionfind.New(s.BaseLen())
	if err != nil {
		return 0
	}
	count := s.Len()
	it := s.Vertices()
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		nb := s.Neighbors(v)
		for w, ok := nb.Next(); ok; w, ok = nb.Next() {
			if uf.Union(v, w) {
				count--
			}
		}
	}

	return count
}

// IsConnected reports whether the active vertices form exactly one component.
func IsConnected(s *View) bool { return ComponentCount(s) == 1 }

// Components splits s into one View per connected component, ordered by
// smallest member. Each component is found by a depth-first walk that
// claims vertices out of a shared VertexIter so no vertex is seen twice.
func Components(s *View) []*View {
	var out []*View
	dfs := container.NewStack[int](0)
	it := s.Vertices()
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		comp := NewView(s.base)
		dfs.Push(v)
		for !dfs.Empty() {
			u, _ := dfs.Pop()
			comp.Add(u)
			nb := s.Neighbors(u)
			for w, ok := nb.Next(); ok; w, ok = nb.Next() {
				if it.Contains(w) {
					it.Remove(w)
					dfs.Push(w)
				}
			}
		}
		out = append(out, comp)
	}

	return out
}

// BFSOrder returns the active vertices reachable from start in breadth-first
// order, neighbors ascending. It returns nil if start is not active.
func BFSOrder(s *View, start int) []int {
	if !s.Contains(start) {
		return nil
	}
	seen := NewView(s.base)
	seen.Add(start)
	order := []int{}
	q := container.NewQueue[int]()
	q.Enqueue(start)
	for !q.Empty() {
		u, _ := q.Dequeue()
		order = append(order, u)
		nb := s.Neighbors(u)
		for w, ok := nb.Next(); ok; w, ok = nb.Next() {
			if !seen.Contains(w) {
				seen.Add(w)
				q.Enqueue(w)
			}
		}
	}

	return order
}
