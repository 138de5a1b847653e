// SPDX-License-Identifier: MIT
// Package: vcover/builder
//
// constants.go - method names used as error context.

package builder

// Method names used as error context.
const (
	methodCycle             = "Cycle"
	methodPath              = "Path"
	methodStar              = "Star"
	methodWheel             = "Wheel"
	methodComplete          = "Complete"
	methodCompleteBipartite = "CompleteBipartite"
	methodGrid              = "Grid"
	methodPlatonicSolid     = "PlatonicSolid"
	methodRandomSparse      = "RandomSparse"
	methodRandomRegular     = "RandomRegular"
	methodShift             = "Shift"
)

// DefaultLabelBase is the label of vertex index 0 unless WithLabelBase says
// otherwise.
const DefaultLabelBase uint32 = 1

// Minimum sizes.
const (
	MinCycleNodes    = 3
	MinPathNodes     = 2
	MinStarNodes     = 2
	MinWheelNodes    = 4
	MinCompleteNodes = 1
	MinGridDim       = 1
	MinPartition     = 1
)

// Probability bounds for RandomSparse.
const (
	MinProbability = 0.0
	MaxProbability = 1.0
)
