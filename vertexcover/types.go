// SPDX-License-Identifier: MIT
// Package: vcover/vertexcover
//
// types.go - strategies, options, results and sentinel errors.

package vertexcover

import (
	"errors"
	"fmt"
)

var (
	// ErrNilGraph is returned when Solve receives a nil graph or view.
	ErrNilGraph = errors.New("vertexcover: nil graph")

	// ErrNegativeBudget is returned when k < 0 is passed to a solver.
	ErrNegativeBudget = errors.New("vertexcover: negative budget")

	// ErrUnknownStrategy is returned for a strategy name or value outside
	// the supported set.
	ErrUnknownStrategy = errors.New("vertexcover: unknown strategy")

	// ErrUncoveredEdge is returned by VerifyCover when some edge has no
	// endpoint in the cover.
	ErrUncoveredEdge = errors.New("vertexcover: uncovered edge")

	// ErrInvalidWitness is returned when Options.Verify is set and a solver
	// produced a witness that is not a cover of size at most k.
	ErrInvalidWitness = errors.New("vertexcover: invalid witness")
)

// Strategy selects the search engine.
type Strategy int

const (
	// Simple is the iterative exhaustive branching engine.
	Simple Strategy = iota
	// MaxDeg is the degree-guided recursive engine without kernelization.
	MaxDeg
	// MaxDegRed is the degree-guided recursive engine with kernelization
	// at every node.
	MaxDegRed
)

var strategyNames = [...]string{
	Simple:    "simple",
	MaxDeg:    "maxdeg",
	MaxDegRed: "maxdegred",
}

// String returns the command-line name of the strategy.
func (s Strategy) String() string {
	if s < 0 || int(s) >= len(strategyNames) {
		return fmt.Sprintf("Strategy(%d)", int(s))
	}

	return strategyNames[s]
}

// ParseStrategy maps a command-line name to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	for i, n := range strategyNames {
		if n == name {
			return Strategy(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// Strategies lists every supported strategy in declaration order.
func Strategies() []Strategy { return []Strategy{Simple, MaxDeg, MaxDegRed} }

// Options configures a solve.
//
// Strategy - search engine to run.
// Debug    - trace the search through errors.Logf("DEBUG", ...).
// Verify   - re-check a positive answer's witness before returning it.
type Options struct {
	Strategy Strategy
	Debug    bool
	Verify   bool
}

// DefaultOptions returns the options used by the command-line tool when no
// flags are given: the kernelized degree-guided engine, no tracing and no
// witness re-check.
func DefaultOptions() Options {
	return Options{
		Strategy: MaxDegRed,
	}
}

func (o Options) validate() error {
	if o.Strategy < Simple || o.Strategy > MaxDegRed {
		return fmt.Errorf("%w: %v", ErrUnknownStrategy, o.Strategy)
	}

	return nil
}

// Result is the outcome of a decision query.
type Result struct {
	// Feasible reports whether a cover of size at most k exists.
	Feasible bool

	// Cover holds the witness as ascending internal ids when Feasible.
	Cover []int

	// Labels holds the witness as external labels, parallel to Cover.
	Labels []uint32

	// Size is len(Cover).
	Size int

	// Nodes counts the search states the engine expanded.
	Nodes int
}
