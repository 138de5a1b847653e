// SPDX-License-Identifier: MIT
// Package: vcover/builder
//
// impl_grid.go - implementation of Grid(rows, cols).
//
// Contract:
//   - rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   - Cell (r, c) is vertex index r*cols + c (row-major).
//   - 4-neighborhood: right neighbor then down neighbor, row-major order.
//
// Complexity: O(R·C) vertices + O(2·R·C) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/vcover/core"
)

// Grid returns a Constructor that builds an R×C grid graph.
func Grid(rows, cols int) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		if rows < MinGridDim || cols < MinGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d < min=%d: %w",
				methodGrid, rows, cols, MinGridDim, ErrTooFewVertices)
		}
		addVertices(b, cfg, rows*cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				v := r*cols + c
				if c+1 < cols {
					if err := addEdge(b, cfg, methodGrid, v, v+1); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := addEdge(b, cfg, methodGrid, v, v+cols); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
