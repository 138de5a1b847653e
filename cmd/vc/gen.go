package main

import (
	"fmt"
	"os"

	"github.com/timtadh/data-structures/errors"
	"github.com/timtadh/getopt"

	"github.com/katalvlaran/vcover/builder"
	"github.com/katalvlaran/vcover/converters"
	"github.com/katalvlaran/vcover/core"
)

// topology describes one gen target: how many integer arguments it takes
// and how to turn them into a constructor.
type topology struct {
	arity int
	build func(n []int, p float64) builder.Constructor
}

var topologies = map[string]topology{
	"path":      {1, func(n []int, _ float64) builder.Constructor { return builder.Path(n[0]) }},
	"cycle":     {1, func(n []int, _ float64) builder.Constructor { return builder.Cycle(n[0]) }},
	"star":      {1, func(n []int, _ float64) builder.Constructor { return builder.Star(n[0]) }},
	"wheel":     {1, func(n []int, _ float64) builder.Constructor { return builder.Wheel(n[0]) }},
	"complete":  {1, func(n []int, _ float64) builder.Constructor { return builder.Complete(n[0]) }},
	"bipartite": {2, func(n []int, _ float64) builder.Constructor { return builder.CompleteBipartite(n[0], n[1]) }},
	"grid":      {2, func(n []int, _ float64) builder.Constructor { return builder.Grid(n[0], n[1]) }},
	"random":    {1, func(n []int, p float64) builder.Constructor { return builder.RandomSparse(n[0], p) }},
	"regular":   {2, func(n []int, _ float64) builder.Constructor { return builder.RandomRegular(n[0], n[1]) }},

	"tetrahedron":  {0, platonic(builder.Tetrahedron)},
	"cube":         {0, platonic(builder.Cube)},
	"octahedron":   {0, platonic(builder.Octahedron)},
	"dodecahedron": {0, platonic(builder.Dodecahedron)},
	"icosahedron":  {0, platonic(builder.Icosahedron)},
}

func platonic(name builder.PlatonicName) func([]int, float64) builder.Constructor {
	return func([]int, float64) builder.Constructor { return builder.PlatonicSolid(name, false) }
}

func runGen(argv []string) int {
	args, optargs, err := getopt.GetOpt(
		argv,
		"ho:",
		[]string{
			"help",
			"seed=",
			"p=",
			"output=",
			"binary",
		},
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		Usage(ErrorCodes["opts"])
	}

	var (
		seed   int64 = 1
		p            = 0.5
		output string
		binary bool
	)
	for _, oa := range optargs {
		switch oa.Opt() {
		case "-h", "--help":
			Usage(0)
		case "--seed":
			seed = int64(ParseInt(oa.Arg()))
		case "--p":
			p = ParseFloat(oa.Arg())
		case "-o", "--output":
			output = oa.Arg()
		case "--binary":
			binary = true
		default:
			fmt.Fprintf(os.Stderr, "Unknown flag '%v'\n", oa.Opt())
			Usage(ErrorCodes["opts"])
		}
	}

	if len(args) < 1 {
		fmt.Fprintf(os.Stderr, "You must supply a topology\n")
		Usage(ErrorCodes["opts"])
	}
	top, ok := topologies[args[0]]
	if !ok {
		fmt.Fprintf(os.Stderr, "Unknown topology '%v'\n", args[0])
		Usage(ErrorCodes["opts"])
	}
	if len(args)-1 != top.arity {
		fmt.Fprintf(os.Stderr, "Topology '%v' takes %d integer arguments, you gave: %v\n", args[0], top.arity, args[1:])
		Usage(ErrorCodes["opts"])
	}
	sizes := make([]int, top.arity)
	for i := range sizes {
		sizes[i] = ParseInt(args[i+1])
	}
	if binary && output == "" {
		fmt.Fprintf(os.Stderr, "--binary needs an output path (-o)\n")
		Usage(ErrorCodes["opts"])
	}

	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(seed)}, top.build(sizes, p))
	if err != nil {
		fmt.Fprintf(os.Stderr, "[error] %v\n", err)
		return ErrorCodes["opts"]
	}
	errors.Logf("INFO", "generated %v with %d vertices and %d edges", args[0], g.VertexCount(), g.EdgeCount())

	if err := writeGraph(g, output, binary); err != nil {
		fmt.Fprintf(os.Stderr, "[error] %v\n", err)
		return ErrorCodes["badfile"]
	}

	return 0
}

// writeGraph stores g at path, or prints DIMACS to stdout when path is empty.
func writeGraph(g *core.Graph, path string, binary bool) error {
	switch {
	case path == "":
		return converters.WriteDIMACS(stdout, g)
	case binary:
		return converters.SaveBinaryFile(path, g)
	default:
		return converters.SaveDIMACSFile(path, g)
	}
}
