package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
)

// stdout receives the answers; tests swap it out.
var stdout io.Writer = os.Stdout

// ErrorCodes maps failure kinds to process exit codes.
var ErrorCodes = map[string]int{
	"usage":    0,
	"opts":     3,
	"badint":   5,
	"badfloat": 6,
	"badfile":  7,
	"solve":    8,
}

// UsageMessage is printed to stderr before every exit through Usage.
var UsageMessage = "vc --help"

// ExtendedMessage is printed to stdout for -h/--help.
var ExtendedMessage = `
vc [options] <graph> <k> <strategy>
vc gen <topology> [<n> [<m>]] [--seed=<int>] [--p=<float>] [-o <path>] [--binary]
vc convert [--dimacs] <in> <out>

Decides whether <graph> has a vertex cover of at most <k> vertices. The graph
is read as compact binary when it carries the binary magic, else as DIMACS
("p edge n m" followed by "e u v" lines). A negative <k> is treated as 0.

Strategies:
  simple     chooses edges and branches on their endpoints
  maxdeg     chooses a vertex of maximum degree
  maxdegred  same as 'maxdeg' but also uses reduction rules

Options:
  -h, --help       print this message
  -v, --verbose    log the search at DEBUG level to stderr
  --comments       echo DIMACS comment lines
  --verify         re-check the witness before answering YES
  --witness        print the labels of the cover after a YES

Topologies for gen:
  path n, cycle n, star n, wheel n, complete n, bipartite n m, grid n m,
  random n (--p), regular n d, tetrahedron, cube, octahedron, dodecahedron,
  icosahedron
`

// Usage prints the usage message and exits with code.
func Usage(code int) {
	fmt.Fprintln(os.Stderr, UsageMessage)
	if code == 0 {
		fmt.Fprintln(os.Stdout, ExtendedMessage)
		code = ErrorCodes["usage"]
	} else {
		fmt.Fprintln(os.Stderr, "Try -h or --help for help")
	}
	os.Exit(code)
}

// ParseInt parses str or exits through Usage.
func ParseInt(str string) int {
	i, err := strconv.Atoi(str)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing '%v' expected an int\n", str)
		Usage(ErrorCodes["badint"])
	}
	return i
}

// ParseFloat parses str or exits through Usage.
func ParseFloat(str string) float64 {
	f, err := strconv.ParseFloat(str, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing '%v' expected a float\n", str)
		Usage(ErrorCodes["badfloat"])
	}
	return f
}

// AssertFile exits through Usage unless path names an existing regular file.
func AssertFile(path string) string {
	fi, err := os.Stat(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		Usage(ErrorCodes["badfile"])
	}
	if fi.IsDir() {
		fmt.Fprintf(os.Stderr, "Passed in path was a directory, %s\n", path)
		Usage(ErrorCodes["badfile"])
	}
	return path
}
