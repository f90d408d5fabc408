// SPDX-License-Identifier: MIT

// Package arraylist provides List, a bounds-checked dynamic array.
//
// List wraps a Go slice and turns every out-of-range index into
// ErrOutOfRange instead of a runtime panic. Reads and writes by index are
// O(1); Insert and RemoveAt shift the tail and cost O(n); Append is O(1)
// amortized. A zero List is empty and ready to use.
package arraylist

import (
	"errors"
	"fmt"
	"strings"
)

// ErrOutOfRange indicates an index outside [0, Len()) (or [0, Len()] for Insert).
var ErrOutOfRange = errors.New("arraylist: index out of range")

// List is a growable array of T.
type List[T comparable] struct {
	items []T
}

// New returns a List holding a copy of values.
func New[T comparable](values ...T) *List[T] {
	items := make([]T, len(values))
	copy(items, values)

	return &List[T]{items: items}
}

// Len returns the number of elements.
func (l *List[T]) Len() int { return len(l.items) }

// IsEmpty reports whether the list has no elements.
func (l *List[T]) IsEmpty() bool { return len(l.items) == 0 }

// Append adds values at the end.
func (l *List[T]) Append(values ...T) {
	l.items = append(l.items, values...)
}

// Get returns the element at i.
func (l *List[T]) Get(i int) (T, error) {
	if err := l.check(i, len(l.items)); err != nil {
		var zero T
		return zero, err
	}

	return l.items[i], nil
}

// Set overwrites the element at i.
func (l *List[T]) Set(i int, v T) error {
	if err := l.check(i, len(l.items)); err != nil {
		return err
	}
	l.items[i] = v

	return nil
}

// Insert places v at index i, shifting later elements right.
// i == Len() appends.
func (l *List[T]) Insert(i int, v T) error {
	if err := l.check(i, len(l.items)+1); err != nil {
		return err
	}
	var zero T
	l.items = append(l.items, zero)
	copy(l.items[i+1:], l.items[i:])
	l.items[i] = v

	return nil
}

// RemoveAt deletes and returns the element at i.
func (l *List[T]) RemoveAt(i int) (T, error) {
	var zero T
	if err := l.check(i, len(l.items)); err != nil {
		return zero, err
	}
	v := l.items[i]
	copy(l.items[i:], l.items[i+1:])
	l.items[len(l.items)-1] = zero // drop the reference held by the stale slot
	l.items = l.items[:len(l.items)-1]

	return v, nil
}

// IndexOf returns the index of the first element equal to v, or -1.
func (l *List[T]) IndexOf(v T) int {
	for i, it := range l.items {
		if it == v {
			return i
		}
	}

	return -1
}

// Values returns a copy of the elements in index order.
func (l *List[T]) Values() []T {
	out := make([]T, len(l.items))
	copy(out, l.items)

	return out
}

// Clear removes all elements.
func (l *List[T]) Clear() { l.items = nil }

// String renders the list as "[a b c]".
func (l *List[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range l.items {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, v)
	}
	sb.WriteByte(']')

	return sb.String()
}

func (l *List[T]) check(i, limit int) error {
	if i < 0 || i >= limit {
		return fmt.Errorf("%w: %d (len %d)", ErrOutOfRange, i, len(l.items))
	}

	return nil
}
