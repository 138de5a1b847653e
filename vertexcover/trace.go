// SPDX-License-Identifier: MIT
// Package: vcover/vertexcover
//
// trace.go - DEBUG-level search tracing.

package vertexcover

import (
	"github.com/timtadh/data-structures/errors"
)

// tracer writes search events at DEBUG level when enabled.
type tracer bool

func (t tracer) logf(format string, args ...interface{}) {
	if t {
		errors.Logf("DEBUG", format, args...)
	}
}
