// Package vcover decides the parameterized vertex cover problem on sparse
// undirected graphs: given G and k, is there a set of at most k vertices
// touching every edge?
//
// What is inside?
//
//	A small, single-threaded toolkit built bottom-up:
//		• Bit sets and containers: fixed-capacity bit vectors, a generic
//		  growable stack and a two-stack queue
//		• Disjoint-set forest for connectivity queries
//		• A compact immutable base graph with label lookup
//		• Induced subgraph views with snapshot iterators and degree scans
//		• Kernelization, an exact tree/cycle solver and two branching engines
//		• DIMACS and compact binary readers and writers
//		• Topology generators for tests and benchmarks
//
// Packages:
//
//	bitset/      BitSet with checked and unchecked access, bulk set algebra
//	container/   Stack[T] and Queue[T]
//	unionfind/   Forest with path compression
//	core/        Graph (compact adjacency) and its Builder
//	subgraph/    View, VertexIter, NeighborIter, DegreeStats, components
//	vertexcover/ Kernelize, SolveTreeCycle, Exhaustive, MaxDegree, Solve
//	converters/  LoadDIMACS, WriteDIMACS, ReadBinary, WriteBinary, LoadFile
//	builder/     Path, Cycle, Star, Wheel, Complete, Grid, RandomSparse, ...
//	cmd/vc/      command-line front end
//
// Quick example:
//
//	    1───2
//	    │   │
//	    4───3
//
//	g, _ := builder.BuildGraph(nil, builder.Cycle(4))
//	res, _ := vertexcover.Solve(g, 2, vertexcover.DefaultOptions())
//	fmt.Println(res.Feasible, res.Labels) // true [1 3]
//
// Command line:
//
//	vc graph.dimacs 12 maxdegred
//	[info] input graph has 20 vertices and 30 edges
//	vc-maxdegred: YES
package vcover
