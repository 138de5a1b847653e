package subgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vcover/subgraph"
)

func TestComponents(t *testing.T) {
	t.Parallel()
	// Two triangles plus an isolated vertex 7.
	g := buildGraph(t, 7, [][2]uint32{{1, 2}, {2, 3}, {1, 3}, {4, 5}, {5, 6}, {4, 6}})
	v := subgraph.Full(g)

	assert.Equal(t, 3, subgraph.ComponentCount(v))
	assert.False(t, subgraph.IsConnected(v))

	comps := subgraph.Components(v)
	require.Len(t, comps, 3)
	assert.Equal(t, []int{0, 1, 2}, comps[0].Members())
	assert.Equal(t, []int{3, 4, 5}, comps[1].Members())
	assert.Equal(t, []int{6}, comps[2].Members())

	v.Remove(6)
	for x := 3; x < 6; x++ {
		v.Remove(x)
	}
	assert.True(t, subgraph.IsConnected(v))
	assert.Equal(t, 0, subgraph.ComponentCount(subgraph.NewView(g)))
}

func TestBFSOrder(t *testing.T) {
	t.Parallel()
	// 1-2, 1-3, 2-4, 3-5, 4-6
	g := buildGraph(t, 6, [][2]uint32{{1, 2}, {1, 3}, {2, 4}, {3, 5}, {4, 6}})
	v := subgraph.Full(g)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, subgraph.BFSOrder(v, 0))
	assert.Equal(t, []int{3, 1, 5, 0, 2, 4}, subgraph.BFSOrder(v, 3))

	v.Remove(1)
	assert.Equal(t, []int{0, 2, 4}, subgraph.BFSOrder(v, 0))
	assert.Nil(t, subgraph.BFSOrder(v, 1))
}
