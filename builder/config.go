// SPDX-License-Identifier: MIT
// Package: vcover/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   - base  = 1    (DIMACS labels start at 1)
//   - shift = 0    (set per constructor by Shift)
//   - rng   = nil  (pure/deterministic unless seeded)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	base  uint32
	shift uint32
	rng   *rand.Rand
}

// newBuilderConfig applies options in order over the defaults; later options
// override earlier ones.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{base: DefaultLabelBase}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// label maps a constructor-local vertex index to its graph label.
func (c builderConfig) label(i int) uint32 {
	return c.base + c.shift + uint32(i)
}
