// SPDX-License-Identifier: MIT
// Package: vcover/builder
//
// impl_star.go - implementation of Star(n).
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Hub is vertex index 0; leaves are 1..n-1, spokes emitted ascending.
//
// Complexity: O(n) vertices + O(n-1) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/vcover/core"
)

// Star returns a Constructor that builds a star with n-1 leaves.
func Star(n int) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		if n < MinStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, MinStarNodes, ErrTooFewVertices)
		}
		addVertices(b, cfg, n)
		for i := 1; i < n; i++ {
			if err := addEdge(b, cfg, methodStar, 0, i); err != nil {
				return err
			}
		}

		return nil
	}
}
