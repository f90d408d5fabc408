// SPDX-License-Identifier: MIT

package queue

// Queue is a FIFO container. The zero value is an empty queue.
type Queue[T any] struct {
	r ring[T]
}

// New returns a queue with values enqueued in order.
func New[T any](values ...T) *Queue[T] {
	q := &Queue[T]{}
	for _, v := range values {
		q.Enqueue(v)
	}

	return q
}

// Enqueue appends v at the rear.
// Complexity: O(1) amortized.
func (q *Queue[T]) Enqueue(v T) { q.r.pushBack(v) }

// Dequeue removes and returns the front element, or ErrEmpty.
// Complexity: O(1).
func (q *Queue[T]) Dequeue() (T, error) { return q.r.popFront() }

// PeekFront returns the front element without removing it, or ErrEmpty.
func (q *Queue[T]) PeekFront() (T, error) { return q.r.front() }

// IsEmpty reports whether the queue holds no elements.
func (q *Queue[T]) IsEmpty() bool { return q.r.size == 0 }

// Len returns the number of elements.
func (q *Queue[T]) Len() int { return q.r.size }

// Values returns the elements front to rear.
func (q *Queue[T]) Values() []T { return q.r.values() }

// Clear removes all elements.
func (q *Queue[T]) Clear() { q.r.clear() }

// String renders the queue front first, e.g. "[a b c]".
func (q *Queue[T]) String() string { return q.r.String() }
