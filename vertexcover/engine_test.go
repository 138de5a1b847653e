package vertexcover_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/vcover/builder"
	"github.com/katalvlaran/vcover/core"
	"github.com/katalvlaran/vcover/subgraph"
	"github.com/katalvlaran/vcover/vertexcover"
)

// EngineSuite runs every check once per strategy.
type EngineSuite struct {
	suite.Suite
	strategy vertexcover.Strategy
}

func (s *EngineSuite) opts() vertexcover.Options {
	return vertexcover.Options{Strategy: s.strategy, Verify: true}
}

// decide asserts the answer at k and returns it; positive answers carry a
// verified witness of size at most k.
func (s *EngineSuite) decide(g *core.Graph, k int) bool {
	require := require.New(s.T())
	res, err := vertexcover.Solve(g, k, s.opts())
	require.NoError(err)
	require.Positive(res.Nodes)
	if res.Feasible {
		require.LessOrEqual(res.Size, k)
		require.Len(res.Labels, res.Size)
		require.NoError(vertexcover.VerifyCover(g, res.Cover))
	} else {
		require.Nil(res.Cover)
	}

	return res.Feasible
}

// threshold asserts that k = best is a YES and k = best-1 a NO.
func (s *EngineSuite) threshold(g *core.Graph, best int) {
	s.Require().True(s.decide(g, best))
	if best > 0 {
		s.Require().False(s.decide(g, best-1))
	}
}

func (s *EngineSuite) TestScenarios() {
	t := s.T()
	cases := []struct {
		name string
		g    *core.Graph
		best int
	}{
		{"single edge", buildGraph(t, 2, [][2]uint32{{1, 2}}), 1},
		{"triangle", construct(t, builder.Cycle(3)), 2},
		{"P4", construct(t, builder.Path(4)), 2},
		{"C5", construct(t, builder.Cycle(5)), 3},
		{"star", construct(t, builder.Star(6)), 1},
		{"two triangles", construct(t, builder.Cycle(3), builder.Shift(3, builder.Cycle(3))), 4},
		{"edgeless", buildGraph(t, 4, nil), 0},
		{"empty", buildGraph(t, 0, nil), 0},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			s.threshold(tc.g, tc.best)
		})
	}
}

func (s *EngineSuite) TestKnownFamilies() {
	t := s.T()
	cases := []struct {
		name string
		g    *core.Graph
		best int
	}{
		{"P7", construct(t, builder.Path(7)), 3},
		{"C7", construct(t, builder.Cycle(7)), 4},
		{"K6", construct(t, builder.Complete(6)), 5},
		{"K3,5", construct(t, builder.CompleteBipartite(3, 5)), 3},
		{"W7", construct(t, builder.Wheel(7)), 4},
		{"grid 3x4", construct(t, builder.Grid(3, 4)), 6},
		{"tetrahedron", construct(t, builder.PlatonicSolid(builder.Tetrahedron, false)), 3},
		{"cube", construct(t, builder.PlatonicSolid(builder.Cube, false)), 4},
		{"octahedron", construct(t, builder.PlatonicSolid(builder.Octahedron, false)), 4},
		{"icosahedron", construct(t, builder.PlatonicSolid(builder.Icosahedron, false)), 9},
		{"dodecahedron", construct(t, builder.PlatonicSolid(builder.Dodecahedron, false)), 12},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			s.threshold(tc.g, tc.best)
		})
	}
}

// Every strategy must match brute force at every budget, which also pins
// down monotonicity in k.
func (s *EngineSuite) TestAgainstBruteForce() {
	t := s.T()
	for seed := int64(1); seed <= 40; seed++ {
		n := 6 + int(seed%7)
		p := 0.2 + 0.1*float64(seed%5)
		g := randomGraph(t, n, p, seed)
		best := bruteMin(t, g)
		for k := 0; k <= n; k++ {
			s.Require().Equal(k >= best, s.decide(g, k), "seed %d n %d k %d min %d", seed, n, k, best)
		}
	}
}

func (s *EngineSuite) TestSubView() {
	g := construct(s.T(), builder.Cycle(3), builder.Shift(3, builder.Cycle(3)))
	view := subgraph.NewView(g)
	for v := 0; v < 3; v++ {
		view.Add(v)
	}

	res, err := vertexcover.SolveView(view, 2, s.opts())
	s.Require().NoError(err)
	s.True(res.Feasible)
	s.Subset([]int{0, 1, 2}, res.Cover)

	res, err = vertexcover.SolveView(view, 1, s.opts())
	s.Require().NoError(err)
	s.False(res.Feasible)
	s.Equal(3, view.Len(), "the caller's view is left intact")
}

func TestEngineSimple(t *testing.T) {
	suite.Run(t, &EngineSuite{strategy: vertexcover.Simple})
}

func TestEngineMaxDeg(t *testing.T) {
	suite.Run(t, &EngineSuite{strategy: vertexcover.MaxDeg})
}

func TestEngineMaxDegRed(t *testing.T) {
	suite.Run(t, &EngineSuite{strategy: vertexcover.MaxDegRed})
}
