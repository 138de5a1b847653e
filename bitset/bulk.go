// SPDX-License-Identifier: MIT
// Package: vcover/bitset
//
// bulk.go - whole-set operations over equal-capacity sets.
//
// The plain variants assume equal capacity. With WithAssertions they panic on
// a mismatch; without it they operate on the common word prefix. The *Checked
// variants always return ErrCapacityMismatch instead.

package bitset

import "fmt"

func (s *BitSet) sameCap(op string, o *BitSet) error {
	if s.b.Num != o.b.Num {
		return fmt.Errorf("%s: %d vs %d: %w", op, s.b.Num, o.b.Num, ErrCapacityMismatch)
	}

	return nil
}

func (s *BitSet) assertCap(op string, o *BitSet) {
	if s.assert {
		if err := s.sameCap(op, o); err != nil {
			panic(err)
		}
	}
}

// Clone returns an independent copy carrying the same options.
func (s *BitSet) Clone() *BitSet {
	c := &BitSet{checks: s.checks, assert: s.assert}
	c.b.Num = s.b.Num
	c.b.Bits = append([]uint64(nil), s.b.Bits...)

	return c
}

// CopyFrom overwrites s with the contents of src.
func (s *BitSet) CopyFrom(src *BitSet) {
	s.assertCap("CopyFrom", src)
	n := copy(s.b.Bits, src.b.Bits)
	clear(s.b.Bits[n:])
	s.maskTail()
}

// CopyFromChecked is CopyFrom returning ErrCapacityMismatch instead of
// proceeding on sets of different capacity.
func (s *BitSet) CopyFromChecked(src *BitSet) error {
	if err := s.sameCap("CopyFrom", src); err != nil {
		return err
	}
	copy(s.b.Bits, src.b.Bits)

	return nil
}

// Subtract removes every member of b from s (s = s AND NOT b).
func (s *BitSet) Subtract(b *BitSet) {
	s.assertCap("Subtract", b)
	w, o := s.b.Bits, b.b.Bits
	for i := 0; i < len(w) && i < len(o); i++ {
		w[i] &^= o[i]
	}
}

// SubtractChecked is Subtract with an explicit capacity check.
func (s *BitSet) SubtractChecked(b *BitSet) error {
	if err := s.sameCap("Subtract", b); err != nil {
		return err
	}
	s.Subtract(b)

	return nil
}

// IsSubset reports whether every member of sub is a member of s.
func (s *BitSet) IsSubset(sub *BitSet) bool {
	s.assertCap("IsSubset", sub)
	w, o := s.b.Bits, sub.b.Bits
	for i := range o {
		var have uint64
		if i < len(w) {
			have = w[i]
		}
		if have&o[i] != o[i] {
			return false
		}
	}

	return true
}

// IsSubsetChecked is IsSubset with an explicit capacity check.
func (s *BitSet) IsSubsetChecked(sub *BitSet) (bool, error) {
	if err := s.sameCap("IsSubset", sub); err != nil {
		return false, err
	}

	return s.IsSubset(sub), nil
}

// Compare orders sets lexicographically over their raw words, starting at
// the lowest word. It is a total order suitable for sorting, not the numeric
// order of the member lists. Result is -1, 0 or 1.
func (s *BitSet) Compare(b *BitSet) int {
	s.assertCap("Compare", b)
	w, o := s.b.Bits, b.b.Bits
	n := min(len(w), len(o))
	for i := 0; i < n; i++ {
		switch {
		case w[i] < o[i]:
			return -1
		case w[i] > o[i]:
			return 1
		}
	}
	switch {
	case len(w) < len(o):
		return -1
	case len(w) > len(o):
		return 1
	}

	return 0
}

// CompareChecked is Compare with an explicit capacity check.
func (s *BitSet) CompareChecked(b *BitSet) (int, error) {
	if err := s.sameCap("Compare", b); err != nil {
		return 0, err
	}

	return s.Compare(b), nil
}

// Equal reports whether both sets have the same capacity and members.
func (s *BitSet) Equal(b *BitSet) bool {
	return s.b.Num == b.b.Num && s.Compare(b) == 0
}

// maskTail clears bits past the capacity after a cross-capacity copy.
func (s *BitSet) maskTail() {
	w := s.b.Bits
	if tail := s.b.Num % wordBits; tail != 0 && len(w) > 0 {
		w[len(w)-1] &= (uint64(1) << uint(tail)) - 1
	}
}
