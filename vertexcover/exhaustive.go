// SPDX-License-Identifier: MIT
// Package: vcover/vertexcover
//
// exhaustive.go - iterative two-way branching on uncovered edges.
//
// The engine keeps a partial cover and an explicit stack of branch points.
// For the first uncovered edge (u,v) it tries u first; when the budget is
// spent with an edge still uncovered it backtracks to the deepest branch
// point whose second alternative (v) is untried. The search tree has at
// most 2^k leaves and the stack never exceeds k entries.

package vertexcover

import (
	"github.com/katalvlaran/vcover/container"
	"github.com/katalvlaran/vcover/subgraph"
)

// branchState is one branch point: edge (u,v) and the budget left after
// covering it.
type branchState struct {
	u, v int
	k    int
}

// Exhaustive decides whether s has a cover of size at most k by iterative
// exhaustive branching. s is not modified. A negative k is infeasible.
func Exhaustive(s *subgraph.View, k int, opts Options) Result {
	if k < 0 {
		return Result{}
	}
	trace := tracer(opts.Debug)
	cover := subgraph.NewView(s.Base())
	stack := container.NewStack[branchState](k + 1)

	var res Result
	for {
		res.Nodes++
		u, v, ok := findUncoveredEdge(s, cover)
		if !ok {
			res.Feasible = true
			break
		}

		if k > 0 {
			k--
			stack.Push(branchState{u: u, v: v, k: k})
			cover.Add(u)
			trace.logf("simple: take %d for edge (%d,%d), budget %d", u, u, v, k)
			continue
		}

		trace.logf("simple: edge (%d,%d) uncovered with no budget", u, v)
		if !backtrack(stack, cover, &k) {
			break
		}
	}

	if res.Feasible {
		res.Cover = cover.Members()
	}

	return res
}

// backtrack unwinds stack to the deepest branch point whose second
// alternative is untried, switches it and restores its budget. It reports
// false when the stack runs dry.
func backtrack(stack *container.Stack[branchState], cover *subgraph.View, k *int) bool {
	for {
		st, ok := stack.Pop()
		if !ok {
			return false
		}
		if cover.Contains(st.u) {
			cover.Remove(st.u)
			cover.Add(st.v)
			stack.Push(st)
			*k = st.k

			return true
		}
		cover.Remove(st.v)
	}
}

// findUncoveredEdge returns the first active edge with neither endpoint in
// cover, scanning vertices and then neighbors in ascending order.
func findUncoveredEdge(s, cover *subgraph.View) (u, v int, ok bool) {
	it := s.Vertices()
	for u, ok = it.Next(); ok; u, ok = it.Next() {
		if cover.Contains(u) {
			continue
		}
		nb := s.Neighbors(u)
		for v, ok = nb.Next(); ok; v, ok = nb.Next() {
			if !cover.Contains(v) {
				return u, v, true
			}
		}
	}

	return -1, -1, false
}
