// SPDX-License-Identifier: MIT

package queue

// Deque is a double-ended queue. The zero value is empty.
//
// Used as PushBack+PopFront it is a FIFO; used as PushBack+PopBack it is
// a LIFO. All operations are O(1) (pushes amortized).
type Deque[T any] struct {
	r ring[T]
}

// NewDeque returns a deque holding values front to back.
func NewDeque[T any](values ...T) *Deque[T] {
	d := &Deque[T]{}
	for _, v := range values {
		d.PushBack(v)
	}

	return d
}

// PushFront inserts v before the front element.
func (d *Deque[T]) PushFront(v T) { d.r.pushFront(v) }

// PushBack appends v after the back element.
func (d *Deque[T]) PushBack(v T) { d.r.pushBack(v) }

// PopFront removes and returns the front element, or ErrEmpty.
func (d *Deque[T]) PopFront() (T, error) { return d.r.popFront() }

// PopBack removes and returns the back element, or ErrEmpty.
func (d *Deque[T]) PopBack() (T, error) { return d.r.popBack() }

// PeekFront returns the front element, or ErrEmpty.
func (d *Deque[T]) PeekFront() (T, error) { return d.r.front() }

// PeekBack returns the back element, or ErrEmpty.
func (d *Deque[T]) PeekBack() (T, error) { return d.r.back() }

// IsEmpty reports whether the deque holds no elements.
func (d *Deque[T]) IsEmpty() bool { return d.r.size == 0 }

// Len returns the number of elements.
func (d *Deque[T]) Len() int { return d.r.size }

// Values returns the elements front to back.
func (d *Deque[T]) Values() []T { return d.r.values() }

// Clear removes all elements.
func (d *Deque[T]) Clear() { d.r.clear() }

// String renders the deque front first.
func (d *Deque[T]) String() string { return d.r.String() }
