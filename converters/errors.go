// SPDX-License-Identifier: MIT
// Package: vcover/converters
//
// errors.go - sentinel errors for graph loading.

package converters

import "errors"

// Sentinel errors for graph loading. Parse errors are wrapped with the
// 1-based line number of the offending line.
var (
	ErrDuplicateHeader  = errors.New("converters: multiple 'problem' descriptions")
	ErrBadHeader        = errors.New("converters: could not parse 'problem' description")
	ErrMissingHeader    = errors.New("converters: missing 'problem' description")
	ErrEdgeBeforeHeader = errors.New("converters: 'edge' description before 'problem' description")
	ErrBadEdge          = errors.New("converters: could not parse 'edge' description")
	ErrVertexRange      = errors.New("converters: invalid range for vertex ids in 'edge' description")
	ErrTooManyEdges     = errors.New("converters: too many edges")
	ErrTooFewEdges      = errors.New("converters: fewer edges than declared")

	ErrBadMagic = errors.New("converters: not a binary graph file")
	ErrCorrupt  = errors.New("converters: corrupt binary graph")
)
