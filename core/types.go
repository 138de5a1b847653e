// SPDX-License-Identifier: MIT
// Package: vcover/core
//
// types.go - Graph type and sentinel errors.

package core

import "errors"

// Sentinel errors for graph construction and lookup.
var (
	// ErrSelfLoop indicates an edge whose endpoints carry the same label.
	ErrSelfLoop = errors.New("core: self-loop not allowed")

	// ErrVertexNotFound indicates a label or id that is not in the graph.
	ErrVertexNotFound = errors.New("core: vertex not found")
)

// Graph is an immutable undirected simple graph in compact adjacency form.
// See the package documentation for the layout.
type Graph struct {
	labels    []uint32
	offsets   []uint32
	neighbors []uint32
	edges     int
}

// VertexCount returns |V|.
func (g *Graph) VertexCount() int { return len(g.labels) }

// EdgeCount returns |E| (each undirected edge once).
func (g *Graph) EdgeCount() int { return g.edges }

// Empty reports whether the graph has no vertices.
func (g *Graph) Empty() bool { return len(g.labels) == 0 }

func (g *Graph) valid(v int) bool { return v >= 0 && v < len(g.labels) }
