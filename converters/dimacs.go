// SPDX-License-Identifier: MIT
// Package: vcover/converters
//
// dimacs.go - DIMACS edge format reader and writer.
//
// Contract:
//   - Exactly one "p edge <n> <m>" line, before any edge line.
//   - "e <u> <v>" with 1 <= u,v <= n and u != v; at most m such lines, and
//     exactly m by end of input.
//   - Vertices 1..n all exist, so isolated vertices survive the load.
//   - Duplicate edges count towards m but are merged in the graph.
//   - Lines starting with 'c' are comments; other line types and blank
//     lines are ignored. Lines are limited to MaxLineLength bytes.

package converters

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/vcover/core"
)

// MaxLineLength bounds a single input line.
const MaxLineLength = 1024

// DefaultMaxVertices is the largest vertex count a header may declare
// unless WithMaxVertices says otherwise. Vertices 1..n are created when the
// header is read, so n is bounded before any allocation.
const DefaultMaxVertices = 1 << 24

// LoadOption customizes LoadDIMACS.
type LoadOption func(*loadConfig)

type loadConfig struct {
	onComment   func(string)
	maxVertices int
}

// WithMaxVertices overrides DefaultMaxVertices. It panics on n < 0.
func WithMaxVertices(n int) LoadOption {
	if n < 0 {
		panic("converters: WithMaxVertices(n < 0)")
	}
	return func(c *loadConfig) { c.maxVertices = n }
}

// WithCommentHook passes every comment line (including the leading 'c') to fn.
func WithCommentHook(fn func(string)) LoadOption {
	if fn == nil {
		panic("converters: WithCommentHook(nil)")
	}
	return func(c *loadConfig) { c.onComment = fn }
}

type dimacsReader struct {
	cfg       loadConfig
	b         *core.Builder
	header    bool
	n, m      int
	edgeLines int
}

// LoadDIMACS parses a graph in DIMACS edge format.
func LoadDIMACS(r io.Reader, opts ...LoadOption) (*core.Graph, error) {
	d := &dimacsReader{b: core.NewBuilder(), cfg: loadConfig{maxVertices: DefaultMaxVertices}}
	for _, o := range opts {
		o(&d.cfg)
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, MaxLineLength), MaxLineLength)
	line := 0
	for sc.Scan() {
		line++
		if err := d.parseLine(strings.TrimRight(sc.Text(), "\r")); err != nil {
			return nil, fmt.Errorf("LoadDIMACS: line %d: %w", line, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("LoadDIMACS: line %d: %w", line+1, err)
	}
	if !d.header {
		return nil, fmt.Errorf("LoadDIMACS: %w", ErrMissingHeader)
	}
	if d.edgeLines < d.m {
		return nil, fmt.Errorf("LoadDIMACS: %d of %d edges: %w", d.edgeLines, d.m, ErrTooFewEdges)
	}

	return d.b.Build(), nil
}

// LoadDIMACSFile opens path and parses it with LoadDIMACS.
func LoadDIMACSFile(path string, opts ...LoadOption) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return LoadDIMACS(f, opts...)
}

func (d *dimacsReader) parseLine(s string) error {
	if len(s) == 0 {
		return nil
	}
	switch s[0] {
	case 'c':
		if d.cfg.onComment != nil {
			d.cfg.onComment(s)
		}
	case 'p':
		return d.parseHeader(s)
	case 'e':
		return d.parseEdge(s)
	}

	return nil
}

func (d *dimacsReader) parseHeader(s string) error {
	if d.header {
		return ErrDuplicateHeader
	}
	f := strings.Fields(s)
	if len(f) != 4 || f[0] != "p" || f[1] != "edge" {
		return fmt.Errorf("%q: %w", s, ErrBadHeader)
	}
	n, err1 := strconv.ParseUint(f[2], 10, 32)
	m, err2 := strconv.ParseUint(f[3], 10, 32)
	if err1 != nil || err2 != nil {
		return fmt.Errorf("%q: %w", s, ErrBadHeader)
	}
	if n > uint64(d.cfg.maxVertices) {
		return fmt.Errorf("n=%d above limit %d: %w", n, d.cfg.maxVertices, ErrBadHeader)
	}
	d.header, d.n, d.m = true, int(n), int(m)
	for l := 1; l <= d.n; l++ {
		d.b.AddVertex(uint32(l))
	}

	return nil
}

func (d *dimacsReader) parseEdge(s string) error {
	if !d.header {
		return ErrEdgeBeforeHeader
	}
	f := strings.Fields(s)
	if len(f) != 3 || f[0] != "e" {
		return fmt.Errorf("%q: %w", s, ErrBadEdge)
	}
	u, err1 := strconv.ParseInt(f[1], 0, 64)
	v, err2 := strconv.ParseInt(f[2], 0, 64)
	if err1 != nil || err2 != nil {
		return fmt.Errorf("%q: %w", s, ErrBadEdge)
	}
	if u <= 0 || v <= 0 || u == v || u > int64(d.n) || v > int64(d.n) {
		return fmt.Errorf("e %d %d with n=%d: %w", u, v, d.n, ErrVertexRange)
	}
	if d.edgeLines == d.m {
		return fmt.Errorf("limit %d: %w", d.m, ErrTooManyEdges)
	}
	d.edgeLines++

	return d.b.AddEdge(uint32(u), uint32(v))
}

// WriteDIMACS writes g in DIMACS edge format, one "e" line per edge with
// endpoints given by label. Labels are written as they are, so a graph whose
// labels are not 1..n needs relabeling before another tool can read it.
func WriteDIMACS(w io.Writer, g *core.Graph) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "p edge %d %d\n", g.VertexCount(), g.EdgeCount())
	g.Edges(func(u, v int) bool {
		fmt.Fprintf(bw, "e %d %d\n", g.Label(u), g.Label(v))
		return true
	})

	return bw.Flush()
}

// SaveDIMACSFile writes g to path in DIMACS edge format.
func SaveDIMACSFile(path string, g *core.Graph) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteDIMACS(f, g); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
