// SPDX-License-Identifier: MIT
// Package: vcover/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   - Only package-level sentinels are exposed; callers branch with errors.Is.
//   - Implementations attach context with %w, e.g.
//     fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, MinCycleNodes, ErrTooFewVertices)
//   - Validation order: sizes, then probabilities, then RNG presence, then
//     construction failure after retries.

package builder

import "errors"

// ErrTooFewVertices indicates a size parameter (n, rows, cols, degree)
// below the constructor's minimum, or a degree the size cannot support.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without
// WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates the constructor could not produce a valid
// topology (nil constructor, exhausted retries, missing dataset).
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrOptionViolation indicates a parameter outside its domain that is not a
// size (unknown solid, negative shift).
var ErrOptionViolation = errors.New("builder: invalid option value")
