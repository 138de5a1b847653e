// Command vc decides small vertex cover instances with fixed-parameter
// search and generates or converts test graphs.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/timtadh/data-structures/errors"
	"github.com/timtadh/getopt"

	"github.com/katalvlaran/vcover/converters"
	"github.com/katalvlaran/vcover/vertexcover"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(argv []string) int {
	if len(argv) > 0 {
		switch argv[0] {
		case "gen":
			return runGen(argv[1:])
		case "convert":
			return runConvert(argv[1:])
		}
	}

	return runSolve(argv)
}

func runSolve(argv []string) int {
	args, optargs, err := getopt.GetOpt(
		argv,
		"hv",
		[]string{
			"help",
			"verbose",
			"comments",
			"verify",
			"witness",
		},
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		Usage(ErrorCodes["opts"])
	}

	opts := vertexcover.DefaultOptions()
	var (
		comments bool
		witness  bool
	)
	errors.SkipLogging["DEBUG"] = true
	for _, oa := range optargs {
		switch oa.Opt() {
		case "-h", "--help":
			Usage(0)
		case "-v", "--verbose":
			opts.Debug = true
			delete(errors.SkipLogging, "DEBUG")
		case "--comments":
			comments = true
		case "--verify":
			opts.Verify = true
		case "--witness":
			witness = true
		default:
			fmt.Fprintf(os.Stderr, "Unknown flag '%v'\n", oa.Opt())
			Usage(ErrorCodes["opts"])
		}
	}

	if len(args) != 3 {
		fmt.Fprintf(os.Stderr, "You must supply <graph> <k> <strategy>\n")
		fmt.Fprintf(os.Stderr, "You gave: %v\n", args)
		Usage(ErrorCodes["opts"])
	}
	path := AssertFile(args[0])
	k := ParseInt(args[1])
	if k < 0 {
		k = 0
	}
	opts.Strategy, err = vertexcover.ParseStrategy(args[2])
	if err != nil {
		fmt.Fprintf(os.Stderr, "[error] %v\n", err)
		Usage(ErrorCodes["opts"])
	}

	var loadOpts []converters.LoadOption
	if comments {
		loadOpts = append(loadOpts, converters.WithCommentHook(func(line string) {
			fmt.Fprintf(stdout, "[comment] %s\n", strings.TrimSpace(strings.TrimPrefix(line, "c")))
		}))
	}
	g, err := converters.LoadFile(path, loadOpts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[error] %v\n", err)
		return ErrorCodes["badfile"]
	}
	fmt.Fprintf(stdout, "[info] input graph has %d vertices and %d edges\n", g.VertexCount(), g.EdgeCount())

	errors.Logf("DEBUG", "solving with %v, k=%d", opts.Strategy, k)
	res, err := vertexcover.Solve(g, k, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[error] %v\n", err)
		return ErrorCodes["solve"]
	}
	errors.Logf("DEBUG", "search expanded %d nodes", res.Nodes)

	answer := "NO"
	if res.Feasible {
		answer = "YES"
	}
	fmt.Fprintf(stdout, "vc-%v: %s\n", opts.Strategy, answer)
	if witness && res.Feasible {
		fmt.Fprintf(stdout, "cover: %s\n", joinLabels(res.Labels))
	}

	return 0
}

func joinLabels(labels []uint32) string {
	parts := make([]string, len(labels))
	for i, l := range labels {
		parts[i] = fmt.Sprint(l)
	}
	return strings.Join(parts, " ")
}
