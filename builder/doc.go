// Package builder provides deterministic topology generators that produce
// *core.Graph fixtures for the solver, its tests and the vc gen command.
//
// The package offers the following key components:
//
//   - One orchestrator, BuildGraph(opts, cons...), which resolves the
//     functional options once and runs every Constructor against a shared
//     core.Builder before laying the graph out.
//   - Topology constructors: Path, Cycle, Star, Wheel, Complete,
//     CompleteBipartite, Grid, PlatonicSolid, RandomSparse, RandomRegular.
//   - Shift, which moves a constructor to a fresh label range so several
//     topologies can be combined into one disjoint union.
//   - Options: WithSeed / WithRand for the stochastic constructors and
//     WithLabelBase for the first label (default 1, the DIMACS convention).
//
// Labels:
//
//	label(i) = base + shift + i
//
// where i is the constructor's own vertex index. Hubs (Star, Wheel and the
// optional PlatonicSolid center) use the index documented on each
// constructor.
//
// Guarantees:
//
//   - Same options, seed and constructor order give the same graph.
//   - Option constructors panic on meaningless input; constructors return
//     sentinel errors wrapped with their method name and never panic.
//
// Minimum vertex cover sizes of the fixed topologies are known in closed
// form, which makes them convenient oracles:
//
//	Path(n) ⌊n/2⌋   Cycle(n) ⌈n/2⌉   Star(n) 1   Wheel(n) ⌈(n-1)/2⌉+1
//	Complete(n) n-1  CompleteBipartite(a,b) min(a,b)
package builder
