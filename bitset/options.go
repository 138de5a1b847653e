// SPDX-License-Identifier: MIT
// Package: vcover/bitset
//
// options.go - construction options for BitSet.

package bitset

// Option configures a BitSet at construction.
type Option func(*config)

type config struct {
	boundsChecking bool
	assertions     bool
}

func newConfig(opts ...Option) config {
	var c config
	for _, o := range opts {
		if o != nil {
			o(&c)
		}
	}

	return c
}

// WithBoundsChecking makes the unchecked accessors (Set, Clear, Test, Flip)
// panic with a wrapped ErrIndexOutOfRange on an index outside [0,N).
func WithBoundsChecking() Option {
	return func(c *config) { c.boundsChecking = true }
}

// WithAssertions makes the bulk operations panic with a wrapped
// ErrCapacityMismatch when the operands differ in capacity.
func WithAssertions() Option {
	return func(c *config) { c.assertions = true }
}
