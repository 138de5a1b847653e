package bitset_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vcover/bitset"
)

func TestCheckedAccessors(t *testing.T) {
	t.Parallel()
	s := bitset.New(70)

	require.NoError(t, s.Insert(0))
	require.NoError(t, s.Insert(69))
	ok, err := s.Contains(69)
	require.NoError(t, err)
	assert.True(t, ok)

	require.ErrorIs(t, s.Insert(70), bitset.ErrIndexOutOfRange)
	require.ErrorIs(t, s.Insert(-1), bitset.ErrIndexOutOfRange)
	_, err = s.Contains(70)
	require.ErrorIs(t, err, bitset.ErrIndexOutOfRange)
	require.ErrorIs(t, s.Remove(1000), bitset.ErrIndexOutOfRange)

	require.NoError(t, s.Toggle(5))
	assert.True(t, s.Test(5))
	require.NoError(t, s.Toggle(5))
	assert.False(t, s.Test(5))

	require.NoError(t, s.Remove(0))
	assert.Equal(t, []int{69}, s.Slice())
}

func TestBoundsCheckingPanics(t *testing.T) {
	t.Parallel()
	s := bitset.New(10, bitset.WithBoundsChecking())
	assert.Panics(t, func() { s.Set(10) })
	assert.Panics(t, func() { _ = s.Test(-1) })
	assert.NotPanics(t, func() { s.Set(9) })
}

func TestUncheckedIgnoresTailBits(t *testing.T) {
	t.Parallel()
	s := bitset.New(10)
	s.Set(20)
	s.Flip(63)
	s.Set(-1)
	assert.False(t, s.Test(20), "bit 20 lies in the backing word but outside capacity")
	assert.False(t, s.Test(-1))
	assert.Zero(t, s.Count())
	assert.Empty(t, s.Slice())
	assert.False(t, s.Add(20))
	assert.False(t, s.Discard(20))

	assert.True(t, s.Add(3))
	assert.False(t, s.Add(3), "already present")
	assert.True(t, s.Discard(3))
	assert.False(t, s.Discard(3), "already absent")

	c := bitset.New(10, bitset.WithBoundsChecking())
	assert.Panics(t, func() { c.Add(20) })
	assert.Panics(t, func() { c.Discard(10) })
}

func TestSetAllMasksTail(t *testing.T) {
	t.Parallel()
	for _, n := range []int{0, 1, 63, 64, 65, 130} {
		s := bitset.New(n)
		s.SetAll()
		assert.Equal(t, n, s.Count(), "n=%d", n)
		s.ClearAll()
		assert.True(t, s.Empty())
	}
}

func TestMinAndString(t *testing.T) {
	t.Parallel()
	s := bitset.New(200)
	_, ok := s.Min()
	assert.False(t, ok)

	for _, i := range []int{100, 5, 1} {
		s.Set(i)
	}
	m, ok := s.Min()
	require.True(t, ok)
	assert.Equal(t, 1, m)
	assert.Equal(t, "[1, 5, 100]", s.String())
}

func TestPopMinDrain(t *testing.T) {
	t.Parallel()
	r := rand.New(rand.NewSource(7))
	const n = 500
	s := bitset.New(n)
	want := map[int]bool{}
	for i := 0; i < 120; i++ {
		v := r.Intn(n)
		s.Set(v)
		want[v] = true
	}
	exp := make([]int, 0, len(want))
	for v := range want {
		exp = append(exp, v)
	}
	sort.Ints(exp)

	var got []int
	hint := 0
	for {
		v, ok := s.PopMin(&hint)
		if !ok {
			break
		}
		got = append(got, v)
	}
	assert.Equal(t, exp, got)
	assert.True(t, s.Empty())
}

func TestPopMinHintRewind(t *testing.T) {
	t.Parallel()
	s := bitset.New(300)
	s.Set(3)
	s.Set(250)
	hint := 0
	v, _ := s.PopMin(&hint)
	require.Equal(t, 3, v)
	v, _ = s.PopMin(&hint)
	require.Equal(t, 250, v)

	// A member behind the hint's word is invisible until the hint is lowered.
	s.Set(10)
	_, ok := s.PopMin(&hint)
	assert.False(t, ok)
	hint = 10
	v, ok = s.PopMin(&hint)
	require.True(t, ok)
	assert.Equal(t, 10, v)
}

func TestBulkOps(t *testing.T) {
	t.Parallel()
	a := bitset.New(100)
	b := bitset.New(100)
	for _, i := range []int{1, 2, 3, 70} {
		a.Set(i)
	}
	b.Set(2)
	b.Set(70)

	assert.True(t, a.IsSubset(b))
	assert.False(t, b.IsSubset(a))

	c := a.Clone()
	c.Subtract(b)
	assert.Equal(t, []int{1, 3}, c.Slice())
	assert.Equal(t, []int{1, 2, 3, 70}, a.Slice(), "clone is independent")

	d := bitset.New(100)
	d.CopyFrom(a)
	assert.True(t, d.Equal(a))
	assert.Equal(t, 0, d.Compare(a))
	assert.NotEqual(t, 0, b.Compare(a))
	assert.Equal(t, -b.Compare(a), a.Compare(b))
}

func TestCapacityMismatch(t *testing.T) {
	t.Parallel()
	a := bitset.New(10)
	b := bitset.New(100)

	require.ErrorIs(t, a.CopyFromChecked(b), bitset.ErrCapacityMismatch)
	require.ErrorIs(t, a.SubtractChecked(b), bitset.ErrCapacityMismatch)
	_, err := a.IsSubsetChecked(b)
	require.ErrorIs(t, err, bitset.ErrCapacityMismatch)
	_, err = a.CompareChecked(b)
	require.ErrorIs(t, err, bitset.ErrCapacityMismatch)
	assert.False(t, a.Equal(b))

	strict := bitset.New(10, bitset.WithAssertions())
	assert.Panics(t, func() { strict.Subtract(b) })
}
