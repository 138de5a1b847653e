// Package vertexcover_test holds runnable examples with stable output.
package vertexcover_test

import (
	"fmt"

	"github.com/katalvlaran/vcover/builder"
	"github.com/katalvlaran/vcover/subgraph"
	"github.com/katalvlaran/vcover/vertexcover"
)

// ExampleSolve asks whether a 5-cycle has a cover of size 3 and of size 2.
func ExampleSolve() {
	g, _ := builder.BuildGraph(nil, builder.Cycle(5))

	for _, k := range []int{3, 2} {
		res, err := vertexcover.Solve(g, k, vertexcover.DefaultOptions())
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		fmt.Printf("k=%d feasible=%v cover=%v\n", k, res.Feasible, res.Labels)
	}
	// Output:
	// k=3 feasible=true cover=[1 3 5]
	// k=2 feasible=false cover=[]
}

// ExampleMinimumCover finds the vertex cover number of the cube.
func ExampleMinimumCover() {
	g, _ := builder.BuildGraph(nil, builder.PlatonicSolid(builder.Cube, false))

	res, _ := vertexcover.MinimumCover(g, vertexcover.Options{Strategy: vertexcover.MaxDeg})
	fmt.Println("cube:", res.Size)
	// Output:
	// cube: 4
}

// ExampleKernelize reduces a star to nothing by forcing its hub.
func ExampleKernelize() {
	g, _ := builder.BuildGraph(nil, builder.Star(5))
	view := subgraph.Full(g)
	k := 2

	ks := vertexcover.Kernelize(view, &k)
	fmt.Printf("forced=%d budget=%d remaining=%d\n", ks.Forced(), k, view.Len())
	// Output:
	// forced=1 budget=1 remaining=0
}
