package vertexcover_test

import (
	"math/bits"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vcover/builder"
	"github.com/katalvlaran/vcover/core"
	"github.com/katalvlaran/vcover/subgraph"
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

func construct(t *testing.T, cons ...builder.Constructor) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(nil, cons...)
	require.NoError(t, err)

	return g
}

func randomGraph(t *testing.T, n int, p float64, seed int64) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(seed)}, builder.RandomSparse(n, p))
	require.NoError(t, err)

	return g
}

// bruteMinView returns the size of a minimum cover of the active part of s
// by trying every subset of its vertices. Only for small views.
func bruteMinView(t *testing.T, s *subgraph.View) int {
	t.Helper()
	members := s.Members()
	require.LessOrEqual(t, len(members), 20, "brute force needs a small view")

	pos := make(map[int]int, len(members))
	for i, v := range members {
		pos[v] = i
	}
	var edges [][2]int
	for _, u := range members {
		nb := s.Neighbors(u)
		for v, ok := nb.Next(); ok; v, ok = nb.Next() {
			if u < v {
				edges = append(edges, [2]int{pos[u], pos[v]})
			}
		}
	}

	best := len(members)
	for mask := uint32(0); mask < 1<<len(members); mask++ {
		size := bits.OnesCount32(mask)
		if size >= best {
			continue
		}
		covers := true
		for _, e := range edges {
			if mask&(1<<e[0]) == 0 && mask&(1<<e[1]) == 0 {
				covers = false
				break
			}
		}
		if covers {
			best = size
		}
	}

	return best
}

func bruteMin(t *testing.T, g *core.Graph) int {
	t.Helper()
	return bruteMinView(t, subgraph.Full(g))
}
