// SPDX-License-Identifier: MIT
// Package: vcover/builder
//
// impl_random_sparse.go - Erdős–Rényi G(n,p) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices); p in [0,1] (else ErrInvalidProbability).
//   - RNG required only for 0 < p < 1 (else ErrNeedRandSource).
//   - Unordered pairs {i,j}, i<j, are tried in lexicographic order with one
//     rng.Float64() draw each; p = 0 and p = 1 draw nothing.
//
// Complexity: O(n²) trials.
//
// Determinism: for a fixed seed the edge set is fixed.

package builder

import (
	"fmt"

	"github.com/katalvlaran/vcover/core"
)

const minRandomSparseVertices = 1

// RandomSparse returns a Constructor that samples G(n, p).
func RandomSparse(n int, p float64) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < MinProbability || p > MaxProbability {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, MinProbability, MaxProbability, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > MinProbability && p < MaxProbability {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		addVertices(b, cfg, n)
		if p == MinProbability {
			return nil
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if p < MaxProbability && cfg.rng.Float64() >= p {
					continue
				}
				if err := addEdge(b, cfg, methodRandomSparse, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
