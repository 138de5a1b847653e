// SPDX-License-Identifier: MIT
// Package: vcover/vertexcover
//
// kernel.go - polynomial reduction rules applied before and during search.
//
// Rules, in priority order, each restarting the scan once applied:
//  1. A degree-1 vertex: its neighbor joins the cover (k-1).
//  2. A vertex of degree > k: it joins the cover (k-1).
//  3. A degree-2 vertex whose neighbors are adjacent: both neighbors join
//     the cover (k-2).
//
// Isolated vertices are dropped from the view as they are met. Every rule
// is sound: the reduced instance has a cover within the reduced budget iff
// the unreduced one does.

package vertexcover

import (
	"github.com/katalvlaran/vcover/subgraph"
)

// KernelStats counts how often each rule fired.
type KernelStats struct {
	Leaf       int // rule 1
	HighDegree int // rule 2
	Triangle   int // rule 3
}

// Forced returns the number of vertices the rules put into the cover.
func (ks KernelStats) Forced() int { return ks.Leaf + ks.HighDegree + 2*ks.Triangle }

// Kernelize shrinks s in place and decrements *k by the number of forced
// cover vertices. It stops when *k reaches 0, when s has no edges left, or
// when no rule applies. A negative *k on return means the instance is
// infeasible.
func Kernelize(s *subgraph.View, k *int) KernelStats {
	return kernelize(s, k, nil)
}

// KernelizeInto is Kernelize that also activates each forced vertex in
// cover, which must share the base graph of s.
func KernelizeInto(s *subgraph.View, k *int, cover *subgraph.View) KernelStats {
	if cover == nil {
		return kernelize(s, k, nil)
	}

	return kernelize(s, k, cover.Add)
}

func kernelize(s *subgraph.View, k *int, pick func(int)) KernelStats {
	var ks KernelStats
	if pick == nil {
		pick = func(int) {}
	}

	for *k > 0 {
		st := subgraph.ScanDegrees(s, true)
		if !st.HasEdges() {
			break
		}

		switch {
		case st.MinDegree == 1:
			v := st.MinVertex
			u, _ := s.Neighbors(v).Next()
			s.Remove(v)
			s.Remove(u)
			pick(u)
			*k--
			ks.Leaf++

		case st.MaxDegree > *k:
			s.Remove(st.MaxVertex)
			pick(st.MaxVertex)
			*k--
			ks.HighDegree++

		case st.MinDegree == 2:
			v, a, b, ok := findTriangle(s)
			if !ok {
				return ks
			}
			s.Remove(v)
			s.Remove(a)
			s.Remove(b)
			pick(a)
			pick(b)
			*k -= 2
			ks.Triangle++

		default:
			return ks
		}
	}

	return ks
}

// findTriangle returns the first degree-2 vertex v whose neighbors a < b
// are adjacent.
func findTriangle(s *subgraph.View) (v, a, b int, ok bool) {
	g := s.Base()
	it := s.Vertices()
	for v, ok = it.Next(); ok; v, ok = it.Next() {
		if s.Degree(v) != 2 {
			continue
		}
		nb := s.Neighbors(v)
		a, _ = nb.Next()
		b, _ = nb.Next()
		if g.HasEdge(a, b) {
			return v, a, b, true
		}
	}

	return -1, -1, -1, false
}
