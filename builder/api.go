// SPDX-License-Identifier: MIT
// Package: vcover/builder
//
// api.go - public entry points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(opts, cons...). Resolves cfg, runs cons in
//     order against one core.Builder, then builds.
//   - Functional options (BuilderOption) resolve into an immutable
//     builderConfig passed by value.
//   - Determinism: same inputs/options/seed and constructor order give
//     identical graphs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/vcover/core"
)

// Constructor adds one topology to b using the resolved builderConfig.
// Constructors validate parameters before touching b and return sentinel
// errors; they never panic.
type Constructor func(b *core.Builder, cfg builderConfig) error

// BuildGraph resolves opts, applies every constructor in order and returns
// the resulting graph. Constructors share the builder, so topologies whose
// label ranges overlap are merged; use Shift to keep them apart.
func BuildGraph(opts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	cfg := newBuilderConfig(opts...)
	b := core.NewBuilder()

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(b, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return b.Build(), nil
}

// Shift runs con with its labels moved up by offset.
func Shift(offset int, con Constructor) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		if offset < 0 {
			return fmt.Errorf("%s: offset=%d: %w", methodShift, offset, ErrOptionViolation)
		}
		if con == nil {
			return fmt.Errorf("%s: nil constructor: %w", methodShift, ErrConstructFailed)
		}
		cfg.shift += uint32(offset)

		return con(b, cfg)
	}
}

// addEdge adds the edge between vertex indices i and j.
func addEdge(b *core.Builder, cfg builderConfig, method string, i, j int) error {
	if err := b.AddEdge(cfg.label(i), cfg.label(j)); err != nil {
		return fmt.Errorf("%s: AddEdge(%d,%d): %w", method, cfg.label(i), cfg.label(j), err)
	}

	return nil
}

// addVertices registers vertex indices 0..n-1.
func addVertices(b *core.Builder, cfg builderConfig, n int) {
	for i := 0; i < n; i++ {
		b.AddVertex(cfg.label(i))
	}
}
