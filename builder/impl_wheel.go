// SPDX-License-Identifier: MIT
// Package: vcover/builder
//
// impl_wheel.go - implementation of Wheel(n).
//
// Canonical definition:
//   - W_n = C_{n-1} + hub, so n ≥ 4 (the rim must be a valid cycle).
//   - Rim is vertex indices 0..n-2, hub is index n-1.
//   - Spokes are emitted by increasing rim index.
//
// Complexity: O(n) vertices + O(2n-2) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/vcover/core"
)

// Wheel returns a Constructor that builds the wheel W_n.
func Wheel(n int) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		if n < MinWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, MinWheelNodes, ErrTooFewVertices)
		}
		if err := Cycle(n-1)(b, cfg); err != nil {
			return fmt.Errorf("%s: base cycle C_%d: %w", methodWheel, n-1, err)
		}
		hub := n - 1
		for i := 0; i < hub; i++ {
			if err := addEdge(b, cfg, methodWheel, hub, i); err != nil {
				return err
			}
		}

		return nil
	}
}
