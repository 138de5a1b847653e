// SPDX-License-Identifier: MIT
// Package: vcover/subgraph
//
// view.go - induced subgraph over a shared base graph.
//
// Contract:
//   - Len() always equals the number of active vertices; Add and Remove
//     adjust it only when membership actually changes.
//   - Contains never panics; ids outside the base graph are not members.
//   - Add and Remove trust the caller with ids unless the View was built
//     with bitset.WithBoundsChecking; AddChecked and RemoveChecked always
//     return a wrapped bitset.ErrIndexOutOfRange instead.

package subgraph

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/vcover/bitset"
	"github.com/katalvlaran/vcover/core"
)

// ErrBaseMismatch is returned when two views over different base graphs
// are combined.
var ErrBaseMismatch = errors.New("subgraph: views over different base graphs")

// View is a vertex subset of a base graph.
type View struct {
	base    *core.Graph
	members *bitset.BitSet
	n       int
}

// NewView returns an empty view over g.
func NewView(g *core.Graph, opts ...bitset.Option) *View {
	return &View{base: g, members: bitset.New(g.VertexCount(), opts...)}
}

// Full returns a view over g with every vertex active.
func Full(g *core.Graph, opts ...bitset.Option) *View {
	v := NewView(g, opts...)
	v.members.SetAll()
	v.n = g.VertexCount()

	return v
}

// Clone returns an independent copy sharing the same base graph.
func (s *View) Clone() *View {
	return &View{base: s.base, members: s.members.Clone(), n: s.n}
}

// CopyFrom overwrites s with the membership of src.
func (s *View) CopyFrom(src *View) error {
	if s.base != src.base {
		return fmt.Errorf("CopyFrom: %w", ErrBaseMismatch)
	}
	s.members.CopyFrom(src.members)
	s.n = src.n

	return nil
}

// Base returns the shared base graph.
func (s *View) Base() *core.Graph { return s.base }

// Len returns the number of active vertices.
func (s *View) Len() int { return s.n }

// BaseLen returns the number of vertices in the base graph.
func (s *View) BaseLen() int { return s.base.VertexCount() }

// Contains reports whether v is active.
func (s *View) Contains(v int) bool {
	ok, err := s.members.Contains(v)

	return err == nil && ok
}

// Add activates v. A v outside the base graph is ignored.
func (s *View) Add(v int) {
	if s.members.Add(v) {
		s.n++
	}
}

// Remove deactivates v. A v outside the base graph is ignored.
func (s *View) Remove(v int) {
	if s.members.Discard(v) {
		s.n--
	}
}

// AddChecked is Add with an explicit range check.
func (s *View) AddChecked(v int) error {
	ok, err := s.members.Contains(v)
	if err != nil {
		return fmt.Errorf("Add: %w", err)
	}
	if !ok {
		s.members.Set(v)
		s.n++
	}

	return nil
}

// RemoveChecked is Remove with an explicit range check.
func (s *View) RemoveChecked(v int) error {
	ok, err := s.members.Contains(v)
	if err != nil {
		return fmt.Errorf("Remove: %w", err)
	}
	if ok {
		s.members.Clear(v)
		s.n--
	}

	return nil
}

// RemoveNeighbors deactivates every active neighbor of v.
func (s *View) RemoveNeighbors(v int) {
	it := s.Neighbors(v)
	for w, ok := it.Next(); ok; w, ok = it.Next() {
		s.Remove(w)
	}
}

// Degree returns the number of active neighbors of v.
func (s *View) Degree(v int) int {
	d := 0
	it := s.Neighbors(v)
	for _, ok := it.Next(); ok; _, ok = it.Next() {
		d++
	}

	return d
}

// Members returns the active ids in ascending order.
func (s *View) Members() []int { return s.members.Slice() }

// Labels returns the labels of the active vertices in ascending order.
func (s *View) Labels() []uint32 {
	out := make([]uint32, 0, s.n)
	for _, v := range s.members.Slice() {
		out = append(out, s.base.Label(v))
	}

	return out
}

// Bits exposes the membership set. Callers must treat it as read-only.
func (s *View) Bits() *bitset.BitSet { return s.members }

// EdgeCount returns the number of edges with both endpoints active.
func (s *View) EdgeCount() int {
	sum := 0
	it := s.Vertices()
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		sum += s.Degree(v)
	}

	return sum / 2
}

// String dumps the view as one line per active vertex with its active
// neighbors, framed by "--- subgraph ---" and "---   end   ---".
func (s *View) String() string {
	var sb strings.Builder
	sb.WriteString("--- subgraph ---\n")
	it := s.Vertices()
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		fmt.Fprintf(&sb, "[vertex] %d: [", v)
		nb := s.Neighbors(v)
		first := true
		for w, ok := nb.Next(); ok; w, ok = nb.Next() {
			if !first {
				sb.WriteString(", ")
			}
			first = false
			fmt.Fprintf(&sb, "%d", w)
		}
		sb.WriteString("]\n")
	}
	sb.WriteString("---   end   ---\n")

	return sb.String()
}
