package subgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vcover/bitset"
	"github.com/katalvlaran/vcover/subgraph"
)

func TestViewMembership(t *testing.T) {
	t.Parallel()
	g := buildGraph(t, 4, [][2]uint32{{1, 2}, {2, 3}, {3, 4}})

	v := subgraph.NewView(g)
	assert.Equal(t, 0, v.Len())
	assert.Equal(t, 4, v.BaseLen())

	v.Add(1)
	v.Add(1)
	assert.Equal(t, 1, v.Len(), "add is idempotent")
	v.Remove(3)
	assert.Equal(t, 1, v.Len(), "removing an inactive vertex is a no-op")
	v.Remove(1)
	assert.Equal(t, 0, v.Len())

	assert.False(t, v.Contains(99))
	v.Add(99)
	v.Add(5)
	v.Add(-1)
	assert.Equal(t, 0, v.Len(), "out-of-range adds leave the count alone")
	v.Add(0)
	v.Remove(63)
	assert.Equal(t, 1, v.Len())
	assert.Len(t, v.Members(), v.Len())
	v.Remove(0)
	require.ErrorIs(t, v.AddChecked(4), bitset.ErrIndexOutOfRange)
	require.ErrorIs(t, v.RemoveChecked(-1), bitset.ErrIndexOutOfRange)
	require.NoError(t, v.AddChecked(2))
	assert.Equal(t, []int{2}, v.Members())
	assert.Equal(t, []uint32{3}, v.Labels())
}

func TestViewDegreesFollowMembership(t *testing.T) {
	t.Parallel()
	g := buildGraph(t, 4, [][2]uint32{{1, 2}, {2, 3}, {3, 4}})
	v := subgraph.Full(g)
	assert.Equal(t, 4, v.Len())
	assert.Equal(t, 2, v.Degree(1))
	assert.Equal(t, 3, v.EdgeCount())

	v.Remove(2)
	assert.Equal(t, 1, v.Degree(1))
	assert.Equal(t, 0, v.Degree(3))
	assert.Equal(t, 1, v.EdgeCount())
	assert.Equal(t, 2, g.Degree(1), "base graph is untouched")
}

func TestCloneAndCopyFrom(t *testing.T) {
	t.Parallel()
	g := buildGraph(t, 3, [][2]uint32{{1, 2}})
	a := subgraph.Full(g)
	b := a.Clone()
	b.Remove(0)
	assert.Equal(t, 3, a.Len())
	assert.Equal(t, 2, b.Len())

	require.NoError(t, a.CopyFrom(b))
	assert.Equal(t, []int{1, 2}, a.Members())
	assert.Equal(t, 2, a.Len())

	other := subgraph.Full(buildGraph(t, 3, nil))
	require.ErrorIs(t, a.CopyFrom(other), subgraph.ErrBaseMismatch)
}

func TestRemoveNeighbors(t *testing.T) {
	t.Parallel()
	g := buildGraph(t, 4, [][2]uint32{{1, 2}, {1, 3}, {1, 4}})
	v := subgraph.Full(g)
	v.RemoveNeighbors(0)
	assert.Equal(t, []int{0}, v.Members())
}

func TestString(t *testing.T) {
	t.Parallel()
	g := buildGraph(t, 3, [][2]uint32{{1, 2}, {1, 3}})
	want := "--- subgraph ---\n" +
		"[vertex] 0: [1, 2]\n" +
		"[vertex] 1: [0]\n" +
		"[vertex] 2: [0]\n" +
		"---   end   ---\n"
	assert.Equal(t, want, subgraph.Full(g).String())
}
