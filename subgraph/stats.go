// SPDX-License-Identifier: MIT
// Package: vcover/subgraph
//
// stats.go - degree scans over a View.

package subgraph

// DegreeStats summarizes the active degrees of a View. Vertices of degree 0
// are excluded from every field.
type DegreeStats struct {
	MinDegree int // smallest positive degree, 0 if none
	MinVertex int // first vertex with MinDegree, -1 if none
	MaxDegree int // largest degree, 0 if none
	MaxVertex int // first vertex with MaxDegree, -1 if none
	Positive  int // vertices of positive degree
	Edges     int // active edges
}

// HasEdges reports whether any active edge exists.
func (d DegreeStats) HasEdges() bool { return d.Positive > 0 }

// ScanDegrees computes DegreeStats in one ascending pass. With prune set,
// active vertices of degree 0 are removed from s as they are met.
func ScanDegrees(s *View, prune bool) DegreeStats {
	st := DegreeStats{MinVertex: -1, MaxVertex: -1}
	sum := 0
	it := s.Vertices()
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		d := s.Degree(v)
		if d == 0 {
			if prune {
				s.Remove(v)
			}
			continue
		}
		st.Positive++
		sum += d
		if st.MinVertex < 0 || d < st.MinDegree {
			st.MinDegree, st.MinVertex = d, v
		}
		if d > st.MaxDegree {
			st.MaxDegree, st.MaxVertex = d, v
		}
	}
	st.Edges = sum / 2

	return st
}

// FindDegree returns the first active vertex with exactly degree d.
func FindDegree(s *View, d int) (int, bool) {
	it := s.Vertices()
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		if s.Degree(v) == d {
			return v, true
		}
	}

	return -1, false
}
