// Package core provides the immutable base graph every view and search
// shares, together with the Builder that produces it.
//
// A Graph stores an undirected simple graph in compact adjacency form:
//
//   - labels[v]    external label of internal vertex v (strictly ascending)
//   - offsets[v]   start of v's run inside neighbors
//   - neighbors    2*|E| internal ids; each run is ascending
//
// Internal ids are the ranks of the labels, so 0..n-1 is label order and
// VertexByLabel is a binary search. The degree of the last vertex is
// 2|E| - offsets[n-1]; every other vertex has offsets[v+1] - offsets[v].
//
// Builder accepts vertices and edges in any order, tolerates duplicate
// edges (they are merged) and rejects self-loops. Build sorts, deduplicates
// and lays the arrays out in two passes (degree count, then fill).
//
// Core methods:
//
//	// Builder
//	AddVertex(label uint32)                 // O(1)
//	AddEdge(from, to uint32) error          // O(1), endpoints auto-added
//	Build() *Graph                          // O((V+E) log(V+E))
//
//	// Graph (read-only, safe for concurrent readers)
//	VertexCount() / EdgeCount()             // O(1)
//	Label(v) / VertexByLabel(label)         // O(1) / O(log V)
//	Degree(v) / NeighborRange(v)            // O(1)
//	Neighbors(v)                            // O(1), aliases internal storage
package core
