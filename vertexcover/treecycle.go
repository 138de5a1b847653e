// SPDX-License-Identifier: MIT
// Package: vcover/vertexcover
//
// treecycle.go - exact decision for views of maximum degree at most 2.
//
// Such a view is a disjoint union of paths and cycles. Leaves are peeled
// greedily (the neighbor of a leaf is always in some minimum cover), a bare
// cycle of length L costs ceil(L/2), and once only disjoint edges remain
// each costs one vertex.

package vertexcover

import (
	"github.com/katalvlaran/vcover/subgraph"
)

// SolveTreeCycle reports whether s has a cover of size at most k.
// s must have maximum active degree at most 2; it is consumed.
func SolveTreeCycle(s *subgraph.View, k int) bool {
	return solveTreeCycle(s, k, nil)
}

// SolveTreeCycleInto is SolveTreeCycle that also activates the chosen cover
// vertices in cover. On a negative answer cover holds a partial choice.
func SolveTreeCycleInto(s *subgraph.View, k int, cover *subgraph.View) bool {
	if cover == nil {
		return solveTreeCycle(s, k, nil)
	}

	return solveTreeCycle(s, k, cover.Add)
}

func solveTreeCycle(s *subgraph.View, k int, pick func(int)) bool {
	if pick == nil {
		pick = func(int) {}
	}

	for k >= 0 {
		st := subgraph.ScanDegrees(s, true)
		if !st.HasEdges() {
			break
		}

		// A perfect matching: one endpoint per edge.
		if st.MaxDegree == 1 {
			if 2*k < st.Positive {
				return false
			}
			it := s.Vertices()
			for v, ok := it.Next(); ok; v, ok = it.Next() {
				u, ok := s.Neighbors(v).Next()
				if !ok {
					continue
				}
				s.Remove(v)
				s.Remove(u)
				pick(v)
			}

			return true
		}

		if st.MinDegree == 1 {
			v := st.MinVertex
			u, _ := s.Neighbors(v).Next()
			s.Remove(v)
			s.Remove(u)
			pick(u)
			k--
			continue
		}

		// Every active vertex now has degree 2: walk one cycle, taking
		// positions 0, 2, 4, ...
		length := 0
		for cur, ok := st.MinVertex, true; ok; length++ {
			next, more := s.Neighbors(cur).Next()
			s.Remove(cur)
			if length%2 == 0 {
				pick(cur)
			}
			cur, ok = next, more
		}
		k -= (length + 1) / 2
	}

	return k >= 0
}
