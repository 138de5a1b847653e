// SPDX-License-Identifier: MIT
// Package: vcover/subgraph
//
// iter.go - snapshot iterators over active vertices and neighbors.

package subgraph

import "github.com/katalvlaran/vcover/bitset"

// VertexIter visits active vertices in ascending order, each once. It owns
// a snapshot of the membership taken at creation; later changes to the
// View are not observed. Not restartable.
type VertexIter struct {
	pending *bitset.BitSet
	cursor  int
}

// Vertices returns an iterator over the active vertices of s.
func (s *View) Vertices() *VertexIter {
	return &VertexIter{pending: s.members.Clone()}
}

// Next returns the next vertex.
func (it *VertexIter) Next() (int, bool) {
	return it.pending.PopMin(&it.cursor)
}

// Insert schedules v for a visit. If v lies behind the cursor, the cursor
// rewinds so v is still visited. Re-inserting an already visited vertex
// makes it surface again. Out-of-range ids are ignored.
func (it *VertexIter) Insert(v int) {
	if it.pending.Insert(v) != nil {
		return
	}
	if v < it.cursor {
		it.cursor = v
	}
}

// Remove drops v from the pending set so it is not visited.
func (it *VertexIter) Remove(v int) {
	_ = it.pending.Remove(v)
}

// Contains reports whether v is still pending.
func (it *VertexIter) Contains(v int) bool {
	ok, err := it.pending.Contains(v)

	return err == nil && ok
}

// NeighborIter visits the active neighbors of one vertex in ascending
// order. It reads the View live, so it observes membership changes made
// while it runs.
type NeighborIter struct {
	view     *View
	pos, end int
}

// Neighbors returns an iterator over the active neighbors of v.
func (s *View) Neighbors(v int) *NeighborIter {
	start, end := s.base.NeighborRange(v)

	return &NeighborIter{view: s, pos: start, end: end}
}

// Next returns the next active neighbor.
func (it *NeighborIter) Next() (int, bool) {
	for it.pos < it.end {
		w := it.view.base.Neighbor(it.pos)
		it.pos++
		if it.view.members.Test(w) {
			return w, true
		}
	}

	return 0, false
}
