// SPDX-License-Identifier: MIT
// Package: vcover/builder
//
// impl_cycle.go - implementation of Cycle(n).
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices).
//   - Path 0..n-1 plus the closing edge (n-1, 0).
//
// Complexity: O(n) vertices + O(n) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/vcover/core"
)

// Cycle returns a Constructor that builds the simple cycle C_n.
func Cycle(n int) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		if n < MinCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, MinCycleNodes, ErrTooFewVertices)
		}
		if err := Path(n)(b, cfg); err != nil {
			return fmt.Errorf("%s: base path P_%d: %w", methodCycle, n, err)
		}

		return addEdge(b, cfg, methodCycle, n-1, 0)
	}
}
