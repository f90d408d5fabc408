// SPDX-License-Identifier: MIT
// File: stack.go
// Role: unbounded slice-backed LIFO.

package stack

import (
	"fmt"
	"strings"
)

// Stack is a LIFO container. The zero value is an empty stack.
type Stack[T any] struct {
	items []T
}

// New returns a stack with values pushed in order (the last one on top).
func New[T any](values ...T) *Stack[T] {
	s := &Stack[T]{items: make([]T, 0, len(values))}
	s.items = append(s.items, values...)

	return s
}

// Push places v on top.
// Complexity: O(1) amortized.
func (s *Stack[T]) Push(v T) {
	s.items = append(s.items, v)
}

// Pop removes and returns the top element, or ErrEmpty.
// Complexity: O(1).
func (s *Stack[T]) Pop() (T, error) {
	var zero T
	n := len(s.items)
	if n == 0 {
		return zero, ErrEmpty
	}
	v := s.items[n-1]
	s.items[n-1] = zero
	s.items = s.items[:n-1]

	return v, nil
}

// Peek returns the top element without removing it, or ErrEmpty.
func (s *Stack[T]) Peek() (T, error) {
	if len(s.items) == 0 {
		var zero T
		return zero, ErrEmpty
	}

	return s.items[len(s.items)-1], nil
}

// IsEmpty reports whether the stack holds no elements.
func (s *Stack[T]) IsEmpty() bool { return len(s.items) == 0 }

// Len returns the number of elements.
func (s *Stack[T]) Len() int { return len(s.items) }

// Values returns the elements from top to bottom.
func (s *Stack[T]) Values() []T {
	return topDown(s.items)
}

// Clear removes all elements.
func (s *Stack[T]) Clear() { s.items = nil }

// String renders the stack top first, e.g. "[3 2 1]".
func (s *Stack[T]) String() string {
	return render(s.items)
}

// topDown copies items in reverse (top first).
func topDown[T any](items []T) []T {
	out := make([]T, len(items))
	for i, v := range items {
		out[len(items)-1-i] = v
	}

	return out
}

func render[T any](items []T) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i := len(items) - 1; i >= 0; i-- {
		fmt.Fprint(&sb, items[i])
		if i > 0 {
			sb.WriteByte(' ')
		}
	}
	sb.WriteByte(']')

	return sb.String()
}
