// SPDX-License-Identifier: MIT
// Package: vcover/core
//
// builder.go - staging area that produces an immutable Graph.
//
// Contract:
//   - AddEdge auto-adds both endpoints; self-loops return ErrSelfLoop.
//   - Duplicate vertices and duplicate edges (in either orientation) are
//     merged by Build.
//   - Internal ids are assigned by Build as label ranks; until then
//     VertexByLabel answers against the labels seen so far and the answer
//     may shift as smaller labels arrive.
//   - Build does not consume the builder; it can be extended and rebuilt.
//
// Complexity:
//   - Build: O((V+E) log(V+E)) time, O(V+E) space.

package core

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/katalvlaran/vcover/container"
)

type stagedEdge struct{ from, to uint32 }

func compareEdges(a, b stagedEdge) int {
	if c := cmp.Compare(a.from, b.from); c != 0 {
		return c
	}

	return cmp.Compare(a.to, b.to)
}

// Builder collects labels and edges for a Graph. Not safe for concurrent use.
type Builder struct {
	labels *container.Stack[uint32]
	edges  *container.Stack[stagedEdge]
	seen   map[uint32]struct{}
	sorted bool
}

// NewBuilder returns an empty builder.
func NewBuilder() *Builder {
	return &Builder{
		labels: container.NewStack[uint32](0),
		edges:  container.NewStack[stagedEdge](0),
		seen:   make(map[uint32]struct{}),
		sorted: true,
	}
}

// AddVertex registers label. Repeated labels are ignored.
func (b *Builder) AddVertex(label uint32) {
	if _, ok := b.seen[label]; ok {
		return
	}
	b.seen[label] = struct{}{}
	b.labels.Push(label)
	b.sorted = false
}

// AddEdge registers the undirected edge {from, to}.
func (b *Builder) AddEdge(from, to uint32) error {
	if from == to {
		return fmt.Errorf("AddEdge(%d,%d): %w", from, to, ErrSelfLoop)
	}
	b.AddVertex(from)
	b.AddVertex(to)
	if from > to {
		from, to = to, from
	}
	b.edges.Push(stagedEdge{from: from, to: to})

	return nil
}

// VertexCount returns the number of distinct labels seen.
func (b *Builder) VertexCount() int { return b.labels.Len() }

// EdgeCount returns the number of AddEdge calls accepted, duplicates included.
func (b *Builder) EdgeCount() int { return b.edges.Len() }

// Trivial reports whether the builder holds no edges.
func (b *Builder) Trivial() bool { return b.edges.Empty() }

// VertexByLabel returns the id label would receive if Build ran now.
func (b *Builder) VertexByLabel(label uint32) (int, bool) {
	b.sortLabels()

	return b.labels.BinarySearch(cmp.Compare[uint32], label)
}

func (b *Builder) sortLabels() {
	if !b.sorted {
		b.labels.Sort(cmp.Compare[uint32])
		b.sorted = true
	}
}

// Build lays out the compact graph.
func (b *Builder) Build() *Graph {
	b.sortLabels()
	b.edges.Sort(compareEdges)

	n := b.labels.Len()
	g := &Graph{
		labels:  slices.Clone(b.labels.Items()),
		offsets: make([]uint32, n),
	}

	// Distinct edges as internal id pairs; the staged list is sorted, so
	// duplicates are adjacent.
	uniq := make([]stagedEdge, 0, b.edges.Len())
	degree := make([]uint32, n)
	for i, e := range b.edges.Items() {
		if i > 0 && compareEdges(e, b.edges.Items()[i-1]) == 0 {
			continue
		}
		u, _ := b.labels.BinarySearch(cmp.Compare[uint32], e.from)
		v, _ := b.labels.BinarySearch(cmp.Compare[uint32], e.to)
		uniq = append(uniq, stagedEdge{from: uint32(u), to: uint32(v)})
		degree[u]++
		degree[v]++
	}
	g.edges = len(uniq)
	if g.edges == 0 {
		return g
	}

	var acc uint32
	for v := range degree {
		g.offsets[v] = acc
		acc += degree[v]
	}

	// Fill pass: cursors start at each run's offset and advance per write.
	g.neighbors = make([]uint32, 2*len(uniq))
	cursor := slices.Clone(g.offsets)
	for _, e := range uniq {
		g.neighbors[cursor[e.from]] = e.to
		cursor[e.from]++
		g.neighbors[cursor[e.to]] = e.from
		cursor[e.to]++
	}
	for v := 0; v < n; v++ {
		start, end := g.NeighborRange(v)
		slices.Sort(g.neighbors[start:end])
	}

	return g
}
