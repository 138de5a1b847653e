// SPDX-License-Identifier: MIT
// Package: vcover/bitset
//
// errors.go - sentinel errors.

package bitset

import "errors"

var (
	// ErrIndexOutOfRange is returned for an index outside [0, capacity).
	ErrIndexOutOfRange = errors.New("bitset: index out of range")

	// ErrCapacityMismatch is returned when a bulk operation combines sets of
	// different capacity.
	ErrCapacityMismatch = errors.New("bitset: capacity mismatch")
)
