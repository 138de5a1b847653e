// SPDX-License-Identifier: MIT
// Package: vcover/builder
//
// impl_bipartite.go - implementation of CompleteBipartite(n1, n2).
//
// Contract:
//   - n1 ≥ 1 and n2 ≥ 1 (else ErrTooFewVertices).
//   - Left side is indices 0..n1-1, right side n1..n1+n2-1.
//   - Every left vertex is joined to every right vertex, left-major order.
//
// Complexity: O(n1+n2) vertices + O(n1·n2) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/vcover/core"
)

// CompleteBipartite returns a Constructor that builds K_{n1,n2}.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		if n1 < MinPartition || n2 < MinPartition {
			return fmt.Errorf("%s: n1=%d, n2=%d < min=%d: %w",
				methodCompleteBipartite, n1, n2, MinPartition, ErrTooFewVertices)
		}
		addVertices(b, cfg, n1+n2)
		for i := 0; i < n1; i++ {
			for j := n1; j < n1+n2; j++ {
				if err := addEdge(b, cfg, methodCompleteBipartite, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
