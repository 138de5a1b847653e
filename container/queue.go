// SPDX-License-Identifier: MIT
// Package: vcover/container
//
// queue.go - FIFO queue assembled from two stacks.

package container

// Queue is a FIFO built from two stacks: Enqueue pushes onto in, Dequeue pops
// from out and refills out by draining in when out runs dry. Each element
// moves at most twice, so both operations are amortized O(1).
type Queue[T any] struct {
	in, out *Stack[T]
}

// NewQueue returns an empty queue.
func NewQueue[T any]() *Queue[T] {
	return &Queue[T]{in: NewStack[T](0), out: NewStack[T](0)}
}

// Enqueue appends x at the tail.
func (q *Queue[T]) Enqueue(x T) { q.in.Push(x) }

// Dequeue removes and returns the head.
func (q *Queue[T]) Dequeue() (T, bool) {
	if q.out.Empty() {
		for {
			x, ok := q.in.Pop()
			if !ok {
				break
			}
			q.out.Push(x)
		}
	}

	return q.out.Pop()
}

// Len returns the number of queued elements.
func (q *Queue[T]) Len() int { return q.in.Len() + q.out.Len() }

// Empty reports whether the queue is empty.
func (q *Queue[T]) Empty() bool { return q.Len() == 0 }
