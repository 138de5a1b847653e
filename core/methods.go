// SPDX-License-Identifier: MIT
// Package: vcover/core
//
// methods.go - read-only queries on Graph.
//
// Contract:
//   - Out-of-range ids never panic: Label and Degree return 0, NeighborRange
//     returns an empty range and Neighbors returns nil.
//   - Slices returned by Labels, Offsets and Neighbors alias internal
//     storage and must not be modified.

package core

import "sort"

// Label returns the external label of vertex v, or 0 when v is out of range.
func (g *Graph) Label(v int) uint32 {
	if !g.valid(v) {
		return 0
	}

	return g.labels[v]
}

// VertexByLabel returns the internal id carrying label.
func (g *Graph) VertexByLabel(label uint32) (int, bool) {
	i := sort.Search(len(g.labels), func(i int) bool { return g.labels[i] >= label })
	if i < len(g.labels) && g.labels[i] == label {
		return i, true
	}

	return 0, false
}

// Degree returns the degree of v in the base graph.
func (g *Graph) Degree(v int) int {
	start, end := g.NeighborRange(v)

	return end - start
}

// NeighborRange returns the half-open range of v's run inside the neighbor
// array. Pair it with Neighbor to walk the run without allocating.
func (g *Graph) NeighborRange(v int) (start, end int) {
	if !g.valid(v) {
		return 0, 0
	}
	start = int(g.offsets[v])
	if v == len(g.labels)-1 {
		return start, 2 * g.edges
	}

	return start, int(g.offsets[v+1])
}

// Neighbor returns the entry at position i of the neighbor array.
func (g *Graph) Neighbor(i int) int { return int(g.neighbors[i]) }

// Neighbors returns v's ascending neighbor run.
func (g *Graph) Neighbors(v int) []uint32 {
	if !g.valid(v) {
		return nil
	}
	start, end := g.NeighborRange(v)

	return g.neighbors[start:end:end]
}

// HasEdge reports whether u and v are adjacent.
func (g *Graph) HasEdge(u, v int) bool {
	if !g.valid(u) || !g.valid(v) {
		return false
	}
	run := g.Neighbors(u)
	i := sort.Search(len(run), func(i int) bool { return int(run[i]) >= v })

	return i < len(run) && int(run[i]) == v
}

// Labels returns the ascending label array.
func (g *Graph) Labels() []uint32 { return g.labels }

// Offsets returns the per-vertex start offsets into the neighbor array.
func (g *Graph) Offsets() []uint32 { return g.offsets }

// NeighborArray returns the full neighbor array of length 2*|E|.
func (g *Graph) NeighborArray() []uint32 { return g.neighbors }

// Edges calls fn for every undirected edge once, as (u, v) with u < v, in
// ascending order. Iteration stops when fn returns false.
func (g *Graph) Edges(fn func(u, v int) bool) {
	for u := range g.labels {
		for _, w := range g.Neighbors(u) {
			if int(w) > u && !fn(u, int(w)) {
				return
			}
		}
	}
}
