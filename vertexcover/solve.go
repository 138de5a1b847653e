// Package vertexcover - dispatcher and witness checks.
//
// Solve and SolveView validate their input, route to the engine named by
// Options.Strategy and fill in the derived Result fields. With
// Options.Verify set, every positive answer is re-checked against the view
// before it is returned.

package vertexcover

import (
	"fmt"

	"github.com/katalvlaran/vcover/bitset"
	"github.com/katalvlaran/vcover/core"
	"github.com/katalvlaran/vcover/subgraph"
)

// Solve decides whether g has a vertex cover of size at most k.
//
// Errors: ErrNilGraph, ErrNegativeBudget, ErrUnknownStrategy, and
// ErrInvalidWitness when verification is requested and fails.
func Solve(g *core.Graph, k int, opts Options) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGraph
	}

	return SolveView(subgraph.Full(g), k, opts)
}

// SolveView is Solve restricted to the active vertices of s. s is not
// modified.
func SolveView(s *subgraph.View, k int, opts Options) (Result, error) {
	if s == nil || s.Base() == nil {
		return Result{}, ErrNilGraph
	}
	if k < 0 {
		return Result{}, fmt.Errorf("%w: %d", ErrNegativeBudget, k)
	}
	if err := opts.validate(); err != nil {
		return Result{}, err
	}

	var res Result
	switch opts.Strategy {
	case Simple:
		res = Exhaustive(s, k, opts)
	default:
		res = MaxDegree(s, k, opts)
	}
	tracer(opts.Debug).logf("%v: k=%d feasible=%v nodes=%d", opts.Strategy, k, res.Feasible, res.Nodes)

	if !res.Feasible {
		res.Cover = nil
		return res, nil
	}

	res.Size = len(res.Cover)
	g := s.Base()
	res.Labels = make([]uint32, res.Size)
	for i, v := range res.Cover {
		res.Labels[i] = g.Label(v)
	}

	if opts.Verify {
		if res.Size > k {
			return res, fmt.Errorf("%w: %v: size %d exceeds budget %d", ErrInvalidWitness, opts.Strategy, res.Size, k)
		}
		if err := verifyView(s, res.Cover); err != nil {
			return res, fmt.Errorf("%w: %v: %w", ErrInvalidWitness, opts.Strategy, err)
		}
	}

	return res, nil
}

// VerifyCover checks that every edge of g has an endpoint in cover.
// Ids outside g yield a wrapped bitset.ErrIndexOutOfRange.
func VerifyCover(g *core.Graph, cover []int) error {
	if g == nil {
		return ErrNilGraph
	}

	return verifyView(subgraph.Full(g), cover)
}

func verifyView(s *subgraph.View, cover []int) error {
	in := bitset.New(s.BaseLen())
	for _, v := range cover {
		if err := in.Insert(v); err != nil {
			return fmt.Errorf("VerifyCover: %w", err)
		}
	}

	var bad error
	g := s.Base()
	g.Edges(func(u, v int) bool {
		if !s.Contains(u) || !s.Contains(v) {
			return true
		}
		if in.Test(u) || in.Test(v) {
			return true
		}
		bad = fmt.Errorf("%w: {%d, %d}", ErrUncoveredEdge, g.Label(u), g.Label(v))

		return false
	})

	return bad
}

// MinimumCover finds a smallest cover of g by asking the decision question
// for k = 0, 1, 2, ... until it is answered positively. Result.Nodes sums
// the search nodes of every round.
func MinimumCover(g *core.Graph, opts Options) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGraph
	}

	nodes := 0
	for k := 0; k <= g.VertexCount(); k++ {
		res, err := Solve(g, k, opts)
		nodes += res.Nodes
		if err != nil {
			return res, err
		}
		if res.Feasible {
			res.Nodes = nodes
			return res, nil
		}
	}

	// Unreachable: every vertex together always covers g.
	return Result{}, fmt.Errorf("%w: no cover of size <= %d", ErrInvalidWitness, g.VertexCount())
}
