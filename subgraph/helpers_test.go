package subgraph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vcover/core"
)

// buildGraph returns a graph over labels 1..n with the given label pairs.
func buildGraph(t *testing.T, n int, edges [][2]uint32) *core.Graph {
	t.Helper()
	b := core.NewBuilder()
	for l := 1; l <= n; l++ {
		b.AddVertex(uint32(l))
	}
	for _, e := range edges {
		require.NoError(t, b.AddEdge(e[0], e[1]))
	}

	return b.Build()
}
