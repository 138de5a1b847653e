package vertexcover_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vcover/builder"
	"github.com/katalvlaran/vcover/core"
	"github.com/katalvlaran/vcover/subgraph"
	"github.com/katalvlaran/vcover/vertexcover"
)

func checkTreeCycleOptimal(t *testing.T, g *core.Graph, want int) {
	t.Helper()
	cover := subgraph.NewView(g)
	require.True(t, vertexcover.SolveTreeCycleInto(subgraph.Full(g), want, cover))
	assert.LessOrEqual(t, cover.Len(), want)
	require.NoError(t, vertexcover.VerifyCover(g, cover.Members()))
	if want > 0 {
		assert.False(t, vertexcover.SolveTreeCycle(subgraph.Full(g), want-1))
	}
}

func TestTreeCyclePaths(t *testing.T) {
	t.Parallel()
	for n := 2; n <= 10; n++ {
		n := n
		t.Run(fmt.Sprintf("P%d", n), func(t *testing.T) {
			t.Parallel()
			checkTreeCycleOptimal(t, construct(t, builder.Path(n)), n/2)
		})
	}
}

func TestTreeCycleCycles(t *testing.T) {
	t.Parallel()
	for n := 3; n <= 11; n++ {
		n := n
		t.Run(fmt.Sprintf("C%d", n), func(t *testing.T) {
			t.Parallel()
			checkTreeCycleOptimal(t, construct(t, builder.Cycle(n)), (n+1)/2)
		})
	}
}

func TestTreeCycleMixedComponents(t *testing.T) {
	t.Parallel()
	// C3 + C5 + P4 + K2 + isolated vertex: 2 + 3 + 2 + 1.
	g := construct(t,
		builder.Cycle(3),
		builder.Shift(3, builder.Cycle(5)),
		builder.Shift(8, builder.Path(4)),
		builder.Shift(12, builder.Path(2)),
		builder.Shift(14, builder.Complete(1)),
	)
	require.Equal(t, 15, g.VertexCount())
	checkTreeCycleOptimal(t, g, 8)
}

func TestTreeCycleMatchingRemainder(t *testing.T) {
	t.Parallel()
	g := buildGraph(t, 6, [][2]uint32{{1, 2}, {3, 4}, {5, 6}})
	assert.True(t, vertexcover.SolveTreeCycle(subgraph.Full(g), 3))
	assert.False(t, vertexcover.SolveTreeCycle(subgraph.Full(g), 2))

	cover := subgraph.NewView(g)
	require.True(t, vertexcover.SolveTreeCycleInto(subgraph.Full(g), 3, cover))
	assert.Equal(t, []int{0, 2, 4}, cover.Members(), "lower endpoint of each edge")
}

func TestTreeCycleEdgeless(t *testing.T) {
	t.Parallel()
	g := buildGraph(t, 3, nil)
	assert.True(t, vertexcover.SolveTreeCycle(subgraph.Full(g), 0))
	assert.True(t, vertexcover.SolveTreeCycle(subgraph.NewView(g), 0))
}

func TestTreeCycleConsumesView(t *testing.T) {
	t.Parallel()
	g := construct(t, builder.Cycle(6))
	s := subgraph.Full(g)
	require.True(t, vertexcover.SolveTreeCycle(s, 3))
	assert.Equal(t, 0, s.EdgeCount())
}
