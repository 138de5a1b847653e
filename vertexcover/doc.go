// Package vertexcover answers the parameterized vertex cover question: does
// an undirected graph have a set of at most k vertices touching every edge?
//
// Three engines share one entry point, Solve:
//
//   - Simple     iterative branching on the first uncovered edge, with an
//     explicit stack of branch points (O(2^k) leaves, O(k) stack);
//   - MaxDeg     recursive branching on a maximum-degree vertex v, either
//     taking v or all of N(v), with views of maximum degree <= 2 decided
//     exactly by the tree/cycle solver;
//   - MaxDegRed  MaxDeg with kernelization at every search node.
//
// The building blocks are exported on their own:
//
//	Kernelize(view, &k)         // leaf, high-degree and triangle rules
//	SolveTreeCycle(view, k)     // exact for max degree <= 2, consumes view
//	Exhaustive(view, k, opts)   // Simple engine
//	MaxDegree(view, k, opts)    // MaxDeg / MaxDegRed engines
//
// Every engine returns a witness cover on a positive answer. VerifyCover
// checks one independently, and MinimumCover turns the decision procedure
// into an optimizer by increasing k from 0.
//
// Engines are single-threaded and allocate their own working views; the
// base graph is only read, so independent solves may run concurrently.
//
// Example:
//
//	g, _ := builder.BuildGraph(nil, builder.Cycle(5))
//	res, err := vertexcover.Solve(g, 3, vertexcover.DefaultOptions())
//	// res.Feasible == true, res.Size == 3
package vertexcover
