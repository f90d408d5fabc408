// SPDX-License-Identifier: MIT
// File: list.go
// Role: List lifecycle (add/search/delete/count) and iteration.

package linkedlist

import (
	"fmt"
	"iter"
	"strings"
)

// Node is one link of the chain.
type Node[T comparable] struct {
	// Value is the payload stored in this node.
	Value T

	next *Node[T]
}

// Next returns the successor of n, or nil at the end of the list.
func (n *Node[T]) Next() *Node[T] { return n.next }

// List is a singly linked list. The zero value is an empty list.
type List[T comparable] struct {
	head *Node[T]
}

// New returns a list holding values in order.
func New[T comparable](values ...T) *List[T] {
	l := &List[T]{}
	for i := len(values) - 1; i >= 0; i-- {
		l.AddFront(values[i])
	}

	return l
}

// IsEmpty reports whether the list has no nodes.
func (l *List[T]) IsEmpty() bool { return l.head == nil }

// Head returns the first node, or nil for an empty list.
func (l *List[T]) Head() *Node[T] { return l.head }

// AddFront inserts v before the current head.
// Complexity: O(1).
func (l *List[T]) AddFront(v T) {
	l.head = &Node[T]{Value: v, next: l.head}
}

// AddBack appends v after the last node.
// Complexity: O(n).
func (l *List[T]) AddBack(v T) {
	n := &Node[T]{Value: v}
	if l.head == nil {
		l.head = n
		return
	}
	last := l.head
	for last.next != nil {
		last = last.next
	}
	last.next = n
}

// Search returns the first node holding v, or nil.
// Complexity: O(n).
func (l *List[T]) Search(v T) *Node[T] {
	for cur := l.head; cur != nil; cur = cur.next {
		if cur.Value == v {
			return cur
		}
	}

	return nil
}

// DeleteByValue unlinks the first node holding v and returns its value.
// A head match advances head; otherwise the predecessor is spliced past it.
// Returns (zero, false) when the list is empty or v is absent.
// Complexity: O(n).
func (l *List[T]) DeleteByValue(v T) (T, bool) {
	var zero T
	if l.head == nil {
		return zero, false
	}
	if l.head.Value == v {
		removed := l.head
		l.head = removed.next
		removed.next = nil

		return removed.Value, true
	}

	prev := l.head
	for cur := prev.next; cur != nil; prev, cur = cur, cur.next {
		if cur.Value == v {
			prev.next = cur.next
			cur.next = nil

			return cur.Value, true
		}
	}

	return zero, false
}

// DeleteTail unlinks the last node and returns its value.
// A single-node list becomes empty. Returns (zero, false) on an empty list.
// Complexity: O(n).
func (l *List[T]) DeleteTail() (T, bool) {
	var zero T
	if l.head == nil {
		return zero, false
	}
	if l.head.next == nil {
		v := l.head.Value
		l.head = nil

		return v, true
	}

	prev := l.head
	for prev.next.next != nil {
		prev = prev.next
	}
	v := prev.next.Value
	prev.next = nil

	return v, true
}

// Count walks the list and returns the number of nodes.
// Complexity: O(n).
func (l *List[T]) Count() int {
	n := 0
	for cur := l.head; cur != nil; cur = cur.next {
		n++
	}

	return n
}

// Traverse returns a lazy sequence over the values from head to tail.
// Each range over the sequence starts again from the current head.
func (l *List[T]) Traverse() iter.Seq[T] {
	return func(yield func(T) bool) {
		for cur := l.head; cur != nil; cur = cur.next {
			if !yield(cur.Value) {
				return
			}
		}
	}
}

// Values returns the values from head to tail.
func (l *List[T]) Values() []T {
	var out []T
	for v := range l.Traverse() {
		out = append(out, v)
	}

	return out
}

// Clear drops every node.
func (l *List[T]) Clear() { l.head = nil }

// String renders the list as "a -> b -> NULL", or "NULL" when empty.
func (l *List[T]) String() string {
	var sb strings.Builder
	for v := range l.Traverse() {
		fmt.Fprintf(&sb, "%v -> ", v)
	}
	sb.WriteString("NULL")

	return sb.String()
}
