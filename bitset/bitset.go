// SPDX-License-Identifier: MIT
// Package: vcover/bitset
//
// bitset.go - fixed-capacity set of small non-negative integers.
//
// Contract:
//   - Capacity N is fixed at construction; members are 0..N-1.
//   - Storage is ceil(N/64) 64-bit words; bits at positions >= N are always 0.
//   - Checked accessors (Insert/Remove/Contains/Toggle) never panic and return
//     ErrIndexOutOfRange for i outside [0,N).
//   - Unchecked accessors (Set/Clear/Test/Flip/Add/Discard) ignore i outside
//     [0,N), with Test reporting false, unless the set was built
//     WithBoundsChecking, in which case they panic with a wrapped
//     ErrIndexOutOfRange.
//
// Complexity:
//   - Single-element ops O(1); bulk ops O(N/64).

package bitset

import (
	"fmt"
	"math/bits"
	"strconv"
	"strings"

	sbits "github.com/soniakeys/bits"
)

const wordBits = 64

// BitSet is a fixed-capacity bit vector. The zero value is an empty set of
// capacity 0; use New for anything larger.
type BitSet struct {
	b      sbits.Bits
	checks bool // bounds checks on the unchecked path
	assert bool // capacity assertions on bulk ops
}

// New returns an empty set able to hold members 0..capacity-1.
// A negative capacity is treated as 0.
func New(capacity int, opts ...Option) *BitSet {
	if capacity < 0 {
		capacity = 0
	}
	cfg := newConfig(opts...)

	return &BitSet{
		b:      sbits.New(capacity),
		checks: cfg.boundsChecking,
		assert: cfg.assertions,
	}
}

// Cap returns the fixed capacity N.
func (s *BitSet) Cap() int { return s.b.Num }

// words exposes the backing words for bulk operations.
func (s *BitSet) words() []uint64 { return s.b.Bits }

func (s *BitSet) inRange(i int) bool { return i >= 0 && i < s.b.Num }

func (s *BitSet) rangeErr(op string, i int) error {
	return fmt.Errorf("%s(%d): capacity %d: %w", op, i, s.b.Num, ErrIndexOutOfRange)
}

func (s *BitSet) mustRange(op string, i int) {
	if s.checks && !s.inRange(i) {
		panic(s.rangeErr(op, i))
	}
}

// Insert adds i to the set.
func (s *BitSet) Insert(i int) error {
	if !s.inRange(i) {
		return s.rangeErr("Insert", i)
	}
	s.b.SetBit(i, 1)

	return nil
}

// Remove deletes i from the set.
func (s *BitSet) Remove(i int) error {
	if !s.inRange(i) {
		return s.rangeErr("Remove", i)
	}
	s.b.SetBit(i, 0)

	return nil
}

// Contains reports membership of i.
func (s *BitSet) Contains(i int) (bool, error) {
	if !s.inRange(i) {
		return false, s.rangeErr("Contains", i)
	}

	return s.b.Bit(i) == 1, nil
}

// Toggle flips membership of i.
func (s *BitSet) Toggle(i int) error {
	if !s.inRange(i) {
		return s.rangeErr("Toggle", i)
	}
	s.Flip(i)

	return nil
}

// unchecked reports whether the unchecked path may touch bit i. Indices in
// the tail of the last word fall outside N and are ignored too.
func (s *BitSet) unchecked(op string, i int) bool {
	s.mustRange(op, i)

	return uint(i) < uint(s.b.Num)
}

// Set adds i without returning an error. See package contract.
func (s *BitSet) Set(i int) {
	if s.unchecked("Set", i) {
		s.b.Bits[i/wordBits] |= 1 << uint(i%wordBits)
	}
}

// Clear deletes i without returning an error.
func (s *BitSet) Clear(i int) {
	if s.unchecked("Clear", i) {
		s.b.Bits[i/wordBits] &^= 1 << uint(i%wordBits)
	}
}

// Test reports membership of i without returning an error.
func (s *BitSet) Test(i int) bool {
	if !s.unchecked("Test", i) {
		return false
	}

	return s.b.Bits[i/wordBits]&(1<<uint(i%wordBits)) != 0
}

// Flip toggles i without returning an error.
func (s *BitSet) Flip(i int) {
	if s.unchecked("Flip", i) {
		s.b.Bits[i/wordBits] ^= 1 << uint(i%wordBits)
	}
}

// Add sets i and reports whether it was absent before.
func (s *BitSet) Add(i int) bool {
	if !s.unchecked("Add", i) {
		return false
	}
	w, m := &s.b.Bits[i/wordBits], uint64(1)<<uint(i%wordBits)
	if *w&m != 0 {
		return false
	}
	*w |= m

	return true
}

// Discard clears i and reports whether it was present before.
func (s *BitSet) Discard(i int) bool {
	if !s.unchecked("Discard", i) {
		return false
	}
	w, m := &s.b.Bits[i/wordBits], uint64(1)<<uint(i%wordBits)
	if *w&m == 0 {
		return false
	}
	*w &^= m

	return true
}

// ClearAll empties the set.
func (s *BitSet) ClearAll() {
	s.b.ClearAll()
}

// SetAll makes the set contain exactly 0..N-1.
func (s *BitSet) SetAll() {
	w := s.words()
	for i := range w {
		w[i] = ^uint64(0)
	}
	s.maskTail()
}

// Count returns the number of members.
func (s *BitSet) Count() int {
	return s.b.OnesCount()
}

// Empty reports whether the set has no members.
func (s *BitSet) Empty() bool {
	return s.b.AllZeros()
}

// Min returns the smallest member.
func (s *BitSet) Min() (int, bool) {
	if s.b.Num == 0 {
		return 0, false
	}
	i := s.b.OneFrom(0)
	if i < 0 {
		return 0, false
	}

	return i, true
}

// PopMin removes and returns the smallest member.
//
// When hint is non-nil the scan starts at the word containing *hint, and
// the popped index is stored back into *hint, so a caller draining the set
// in ascending order never rescans words it already emptied. The caller
// must not leave members below the hint's word; re-inserting such a member
// requires lowering *hint first.
func (s *BitSet) PopMin(hint *int) (int, bool) {
	w := s.words()
	start := 0
	if hint != nil && *hint > 0 {
		start = *hint / wordBits
	}
	for wi := start; wi < len(w); wi++ {
		if w[wi] == 0 {
			continue
		}
		tz := bits.TrailingZeros64(w[wi])
		w[wi] &^= 1 << uint(tz)
		i := wi*wordBits + tz
		if hint != nil {
			*hint = i
		}

		return i, true
	}

	return 0, false
}

// Slice returns the members in ascending order.
func (s *BitSet) Slice() []int {
	out := make([]int, 0, s.Count())
	if s.b.Num == 0 {
		return out
	}
	for i := s.b.OneFrom(0); i >= 0; {
		out = append(out, i)
		if i+1 >= s.b.Num {
			break
		}
		i = s.b.OneFrom(i + 1)
	}

	return out
}

// String renders the members as "[1, 5, 100]".
func (s *BitSet) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for n, i := range s.Slice() {
		if n > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.Itoa(i))
	}
	sb.WriteByte(']')

	return sb.String()
}
