// SPDX-License-Identifier: MIT
// Package: vcover/builder
//
// impl_path.go - implementation of Path(n).
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Vertices 0..n-1, edges (i, i+1) for i = 0..n-2.
//
// Complexity: O(n) vertices + O(n-1) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/vcover/core"
)

// Path returns a Constructor that builds the simple path P_n.
func Path(n int) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		if n < MinPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, MinPathNodes, ErrTooFewVertices)
		}
		addVertices(b, cfg, n)
		for i := 0; i+1 < n; i++ {
			if err := addEdge(b, cfg, methodPath, i, i+1); err != nil {
				return err
			}
		}

		return nil
	}
}
