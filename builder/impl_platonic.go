// SPDX-License-Identifier: MIT
// Package: vcover/builder
//
// impl_platonic.go - the five Platonic solid graphs.
//
// Contract:
//   - Shell vertices are indices 0..V-1 with the canonical edge sets from
//     variants_platonic.go, emitted in their pre-sorted order.
//   - withCenter adds a hub at index V joined to every shell vertex.
//   - Unknown names return ErrOptionViolation.
//
// Minimum vertex covers of the shells: tetrahedron 3, cube 4,
// octahedron 4, dodecahedron 12, icosahedron 9. A hub adds one.

package builder

import (
	"fmt"

	"github.com/katalvlaran/vcover/core"
)

// PlatonicSolid returns a Constructor for the named solid.
func PlatonicSolid(name PlatonicName, withCenter bool) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		n, ok := platonicVertexCounts[name]
		if !ok {
			return fmt.Errorf("%s: unknown solid %q: %w", methodPlatonicSolid, name, ErrOptionViolation)
		}
		edges, ok := platonicEdgeSets[name]
		if !ok {
			return fmt.Errorf("%s: missing edge set for %q: %w", methodPlatonicSolid, name, ErrConstructFailed)
		}

		addVertices(b, cfg, n)
		for _, ch := range edges {
			if err := addEdge(b, cfg, methodPlatonicSolid, ch.U, ch.V); err != nil {
				return err
			}
		}
		if withCenter {
			for i := 0; i < n; i++ {
				if err := addEdge(b, cfg, methodPlatonicSolid, n, i); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
