package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/vcover/core"
)

type GraphSuite struct {
	suite.Suite
	b *core.Builder
}

func (s *GraphSuite) SetupTest() {
	s.b = core.NewBuilder()
}

func (s *GraphSuite) TestEmptyBuilder() {
	require := require.New(s.T())
	require.True(s.b.Trivial())
	g := s.b.Build()
	require.True(g.Empty())
	require.Equal(0, g.EdgeCount())
	require.Equal(0, g.Degree(0), "out of range degree is zero")
}

func (s *GraphSuite) TestIsolatedVerticesHaveZeroOffsets() {
	require := require.New(s.T())
	for _, l := range []uint32{3, 1, 2} {
		s.b.AddVertex(l)
	}
	g := s.b.Build()
	require.Equal(3, g.VertexCount())
	require.Equal([]uint32{0, 0, 0}, g.Offsets())
	for v := 0; v < 3; v++ {
		require.Equal(0, g.Degree(v))
	}
}

func (s *GraphSuite) TestSelfLoopRejected() {
	require.ErrorIs(s.T(), s.b.AddEdge(4, 4), core.ErrSelfLoop)
}

func (s *GraphSuite) TestBuildSortsAndDeduplicates() {
	require := require.New(s.T())
	// Triangle 10-20-30 plus pendant 40 on 20, with duplicates both ways.
	for _, e := range [][2]uint32{{30, 10}, {10, 20}, {20, 10}, {20, 30}, {40, 20}, {10, 30}} {
		require.NoError(s.b.AddEdge(e[0], e[1]))
	}
	require.Equal(6, s.b.EdgeCount())
	require.Equal(4, s.b.VertexCount())

	g := s.b.Build()
	require.Equal(4, g.VertexCount())
	require.Equal(4, g.EdgeCount())
	require.Equal([]uint32{10, 20, 30, 40}, g.Labels())

	v20, ok := g.VertexByLabel(20)
	require.True(ok)
	require.Equal(1, v20)
	_, ok = g.VertexByLabel(25)
	require.False(ok)

	require.Equal([]uint32{0, 2, 3}, g.Neighbors(v20))
	require.Equal(3, g.Degree(v20))
	require.Equal(1, g.Degree(3), "last vertex degree from 2m-offset")
	require.True(g.HasEdge(0, 2))
	require.False(g.HasEdge(0, 3))

	sum := 0
	for v := 0; v < g.VertexCount(); v++ {
		sum += g.Degree(v)
	}
	require.Equal(2*g.EdgeCount(), sum)

	var seen [][2]int
	g.Edges(func(u, v int) bool {
		seen = append(seen, [2]int{u, v})
		return true
	})
	require.Equal([][2]int{{0, 1}, {0, 2}, {1, 2}, {1, 3}}, seen)
}

func (s *GraphSuite) TestBuilderLookupShiftsWithLabels() {
	require := require.New(s.T())
	s.b.AddVertex(5)
	id, ok := s.b.VertexByLabel(5)
	require.True(ok)
	require.Equal(0, id)

	s.b.AddVertex(1)
	id, _ = s.b.VertexByLabel(5)
	require.Equal(1, id)
}

func (s *GraphSuite) TestNeighborRangeWalk() {
	require := require.New(s.T())
	require.NoError(s.b.AddEdge(1, 2))
	require.NoError(s.b.AddEdge(1, 3))
	g := s.b.Build()

	start, end := g.NeighborRange(0)
	var got []int
	for i := start; i < end; i++ {
		got = append(got, g.Neighbor(i))
	}
	require.Equal([]int{1, 2}, got)
	start, end = g.NeighborRange(7)
	require.Equal(start, end)
	require.Nil(g.Neighbors(-1))
	require.Equal(uint32(0), g.Label(9))
}

func TestGraphSuite(t *testing.T) {
	suite.Run(t, new(GraphSuite))
}
