package main

import (
	"fmt"
	"os"

	"github.com/timtadh/data-structures/errors"
	"github.com/timtadh/getopt"

	"github.com/katalvlaran/vcover/converters"
)

func runConvert(argv []string) int {
	args, optargs, err := getopt.GetOpt(
		argv,
		"h",
		[]string{
			"help",
			"dimacs",
		},
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		Usage(ErrorCodes["opts"])
	}

	toDIMACS := false
	for _, oa := range optargs {
		switch oa.Opt() {
		case "-h", "--help":
			Usage(0)
		case "--dimacs":
			toDIMACS = true
		default:
			fmt.Fprintf(os.Stderr, "Unknown flag '%v'\n", oa.Opt())
			Usage(ErrorCodes["opts"])
		}
	}

	if len(args) != 2 {
		fmt.Fprintf(os.Stderr, "You must supply <in> <out>\n")
		fmt.Fprintf(os.Stderr, "You gave: %v\n", args)
		Usage(ErrorCodes["opts"])
	}
	in := AssertFile(args[0])

	g, err := converters.LoadFile(in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[error] %v\n", err)
		return ErrorCodes["badfile"]
	}
	errors.Logf("INFO", "loaded %v: %d vertices, %d edges", in, g.VertexCount(), g.EdgeCount())

	if err := writeGraph(g, args[1], !toDIMACS); err != nil {
		fmt.Fprintf(os.Stderr, "[error] %v\n", err)
		return ErrorCodes["badfile"]
	}

	return 0
}
