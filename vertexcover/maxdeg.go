// SPDX-License-Identifier: MIT
// Package: vcover/vertexcover
//
// maxdeg.go - recursive branching on a maximum-degree vertex.
//
// At each node (optionally after kernelization) the engine picks a vertex v
// of maximum degree d >= 3 and branches on "v in the cover" (k-1) versus
// "all of N(v) in the cover" (k-d). Views of maximum degree <= 2 are
// settled exactly by the tree/cycle solver. Recursion depth is O(k).

package vertexcover

import (
	"slices"

	"github.com/katalvlaran/vcover/container"
	"github.com/katalvlaran/vcover/subgraph"
)

// degreeSearch carries the state shared by every node of one search.
type degreeSearch struct {
	reduce bool
	trace  tracer
	picks  *container.Stack[int]
	nodes  int
}

// MaxDegree decides whether s has a cover of size at most k by degree-guided
// branching. Kernelization runs at every node when opts.Strategy is
// MaxDegRed. s is not modified. A negative k is infeasible.
func MaxDegree(s *subgraph.View, k int, opts Options) Result {
	if k < 0 {
		return Result{}
	}
	e := &degreeSearch{
		reduce: opts.Strategy == MaxDegRed,
		trace:  tracer(opts.Debug),
		picks:  container.NewStack[int](k),
	}

	ok := e.search(s.Clone(), k, 0)
	res := Result{Feasible: ok, Nodes: e.nodes}
	if ok {
		res.Cover = slices.Clone(e.picks.Items())
		slices.Sort(res.Cover)
	}

	return res
}

// search owns s and may consume it. Picks pushed by a failing call are
// dropped by its caller.
func (e *degreeSearch) search(s *subgraph.View, k, depth int) bool {
	e.nodes++
	pick := e.picks.Push

	if e.reduce {
		ks := kernelize(s, &k, pick)
		if ks.Forced() > 0 {
			e.trace.logf("maxdeg[%d]: kernel forced %d, budget %d", depth, ks.Forced(), k)
		}
		if k < 0 {
			return false
		}
	}

	st := subgraph.ScanDegrees(s, true)
	if !st.HasEdges() {
		return k >= 0
	}
	if k <= 0 {
		return false
	}
	if st.MaxDegree <= 2 {
		ok := solveTreeCycle(s, k, pick)
		e.trace.logf("maxdeg[%d]: paths and cycles, budget %d: %v", depth, k, ok)

		return ok
	}

	v, d := st.MaxVertex, st.MaxDegree
	mark := e.picks.Len()

	with := s.Clone()
	with.Remove(v)
	pick(v)
	e.trace.logf("maxdeg[%d]: take %d (degree %d), budget %d", depth, v, d, k-1)
	if e.search(with, k-1, depth+1) {
		return true
	}
	e.picks.Truncate(mark)

	if d > k {
		return false
	}
	nb := s.Neighbors(v)
	for u, ok := nb.Next(); ok; u, ok = nb.Next() {
		pick(u)
	}
	s.RemoveNeighbors(v)
	s.Remove(v)
	e.trace.logf("maxdeg[%d]: take N(%d), budget %d", depth, v, k-d)

	return e.search(s, k-d, depth+1)
}
