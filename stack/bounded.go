// SPDX-License-Identifier: MIT
// File: bounded.go
// Role: fixed-capacity LIFO over a preallocated array.

package stack

import "fmt"

// Bounded is a LIFO with a capacity fixed at construction.
// top is the index of the top element; -1 means empty.
type Bounded[T any] struct {
	items []T
	top   int
}

// NewBounded returns an empty stack able to hold capacity elements.
func NewBounded[T any](capacity int) (*Bounded[T], error) {
	if capacity < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadCapacity, capacity)
	}

	return &Bounded[T]{items: make([]T, capacity), top: -1}, nil
}

// Push places v on top, or returns ErrFull without changing the stack.
func (b *Bounded[T]) Push(v T) error {
	if b.IsFull() {
		return ErrFull
	}
	b.top++
	b.items[b.top] = v

	return nil
}

// Pop removes and returns the top element, or ErrEmpty.
func (b *Bounded[T]) Pop() (T, error) {
	var zero T
	if b.IsEmpty() {
		return zero, ErrEmpty
	}
	v := b.items[b.top]
	b.items[b.top] = zero
	b.top--

	return v, nil
}

// Peek returns the top element without removing it, or ErrEmpty.
func (b *Bounded[T]) Peek() (T, error) {
	if b.IsEmpty() {
		var zero T
		return zero, ErrEmpty
	}

	return b.items[b.top], nil
}

// IsEmpty reports whether the stack holds no elements.
func (b *Bounded[T]) IsEmpty() bool { return b.top == -1 }

// IsFull reports whether Push would fail.
func (b *Bounded[T]) IsFull() bool { return b.top == len(b.items)-1 }

// Len returns the number of elements.
func (b *Bounded[T]) Len() int { return b.top + 1 }

// Cap returns the fixed capacity.
func (b *Bounded[T]) Cap() int { return len(b.items) }

// Values returns the elements from top to bottom.
func (b *Bounded[T]) Values() []T { return topDown(b.items[:b.top+1]) }

// String renders the stack top first.
func (b *Bounded[T]) String() string { return render(b.items[:b.top+1]) }
