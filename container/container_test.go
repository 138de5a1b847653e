package container_test

import (
	"cmp"
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/katalvlaran/vcover/container"
)

func TestStackLIFO(t *testing.T) {
	s := container.NewStack[int](0)
	qt.Assert(t, qt.IsTrue(s.Empty()))
	qt.Assert(t, qt.Equals(s.Cap(), container.DefaultCapacity))

	for i := 0; i < 25; i++ {
		s.Push(i)
	}
	qt.Assert(t, qt.Equals(s.Len(), 25))
	qt.Assert(t, qt.Equals(s.Cap(), 40))

	top, ok := s.Peek()
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(top, 24))

	for want := 24; want >= 0; want-- {
		got, ok := s.Pop()
		qt.Assert(t, qt.IsTrue(ok))
		qt.Assert(t, qt.Equals(got, want))
	}
	_, ok = s.Pop()
	qt.Assert(t, qt.IsFalse(ok))
	qt.Assert(t, qt.IsFalse(s.RemoveLast()))
}

func TestStackOrdering(t *testing.T) {
	s := container.NewStack[int](4)
	for _, x := range []int{5, 3, 9, 1, 3} {
		s.Push(x)
	}
	mx, ok := s.FindMax(cmp.Compare[int])
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(mx, 9))

	s.Sort(cmp.Compare[int])
	qt.Assert(t, qt.DeepEquals(s.Items(), []int{1, 3, 3, 5, 9}))

	i, found := s.BinarySearch(cmp.Compare[int], 5)
	qt.Assert(t, qt.IsTrue(found))
	qt.Assert(t, qt.Equals(i, 3))
	_, found = s.BinarySearch(cmp.Compare[int], 4)
	qt.Assert(t, qt.IsFalse(found))

	qt.Assert(t, qt.IsTrue(s.Contains(cmp.Compare[int], 3)))
	qt.Assert(t, qt.Equals(s.Remove(cmp.Compare[int], 3), 2))
	qt.Assert(t, qt.IsFalse(s.Contains(cmp.Compare[int], 3)))
	qt.Assert(t, qt.Equals(s.Len(), 3))
}

func TestStackPositionalAccess(t *testing.T) {
	s := container.NewStack[string](2)
	s.Push("a")
	s.Push("b")

	v, ok := s.At(1)
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(v, "b"))
	_, ok = s.At(2)
	qt.Assert(t, qt.IsFalse(ok))

	*s.Ptr(0) = "z"
	v, _ = s.At(0)
	qt.Assert(t, qt.Equals(v, "z"))
	qt.Assert(t, qt.IsNil(s.Ptr(-1)))

	s.Push("c")
	s.Truncate(5)
	qt.Assert(t, qt.Equals(s.Len(), 3))
	s.Truncate(1)
	qt.Assert(t, qt.DeepEquals(s.Items(), []string{"z"}))

	s.Reset()
	qt.Assert(t, qt.IsTrue(s.Empty()))
}

func TestQueueFIFO(t *testing.T) {
	q := container.NewQueue[int]()
	for i := 0; i < 5; i++ {
		q.Enqueue(i)
	}
	a, _ := q.Dequeue()
	b, _ := q.Dequeue()
	q.Enqueue(5)
	q.Enqueue(6)
	qt.Assert(t, qt.DeepEquals([]int{a, b}, []int{0, 1}))

	var rest []int
	for !q.Empty() {
		x, ok := q.Dequeue()
		qt.Assert(t, qt.IsTrue(ok))
		rest = append(rest, x)
	}
	qt.Assert(t, qt.DeepEquals(rest, []int{2, 3, 4, 5, 6}))
	_, ok := q.Dequeue()
	qt.Assert(t, qt.IsFalse(ok))
}
