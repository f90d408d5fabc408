// SPDX-License-Identifier: MIT
// File: bst.go
// Role: binary search tree over ordered values; ties go right.

package tree

import (
	"iter"

	"golang.org/x/exp/constraints"
)

// Insert places v into the search tree rooted at root and returns the
// (possibly new) root: values < node go left, all others go right.
//
//	root = tree.Insert(root, v)
//
// Complexity: O(h), h = tree height.
func Insert[T constraints.Ordered](root *Node[T], v T) *Node[T] {
	if root == nil {
		return NewNode(v)
	}
	if v < root.Value {
		root.Left = Insert(root.Left, v)
	} else {
		root.Right = Insert(root.Right, v)
	}

	return root
}

// BST is a binary search tree that tracks its size. The zero value is an
// empty tree.
type BST[T constraints.Ordered] struct {
	root *Node[T]
	size int
}

// New returns a tree with values inserted in order.
func New[T constraints.Ordered](values ...T) *BST[T] {
	t := &BST[T]{}
	for _, v := range values {
		t.Insert(v)
	}

	return t
}

// Insert adds v; duplicates are kept.
func (t *BST[T]) Insert(v T) {
	t.root = Insert(t.root, v)
	t.size++
}

// Contains reports whether some node holds v.
// Complexity: O(h).
func (t *BST[T]) Contains(v T) bool {
	for n := t.root; n != nil; {
		switch {
		case v < n.Value:
			n = n.Left
		case v > n.Value:
			n = n.Right
		default:
			return true
		}
	}

	return false
}

// Min returns the smallest value, or false on an empty tree.
func (t *BST[T]) Min() (T, bool) {
	var zero T
	if t.root == nil {
		return zero, false
	}
	n := t.root
	for n.Left != nil {
		n = n.Left
	}

	return n.Value, true
}

// Max returns the largest value, or false on an empty tree.
func (t *BST[T]) Max() (T, bool) {
	var zero T
	if t.root == nil {
		return zero, false
	}
	n := t.root
	for n.Right != nil {
		n = n.Right
	}

	return n.Value, true
}

// Delete removes one occurrence of v and reports whether one was found.
// A node with two children takes the value of its in-order successor,
// which is then unlinked from the right subtree.
// Complexity: O(h).
func (t *BST[T]) Delete(v T) bool {
	var found bool
	t.root, found = remove(t.root, v)
	if found {
		t.size--
	}

	return found
}

func remove[T constraints.Ordered](n *Node[T], v T) (*Node[T], bool) {
	if n == nil {
		return nil, false
	}
	var found bool
	switch {
	case v < n.Value:
		n.Left, found = remove(n.Left, v)
		return n, found
	case v > n.Value:
		n.Right, found = remove(n.Right, v)
		return n, found
	}

	switch {
	case n.Left == nil:
		return n.Right, true
	case n.Right == nil:
		return n.Left, true
	}
	n.Right, n.Value = removeMin(n.Right)

	return n, true
}

// removeMin unlinks the leftmost node of n and returns the new subtree
// root along with the removed value.
func removeMin[T any](n *Node[T]) (*Node[T], T) {
	if n.Left == nil {
		return n.Right, n.Value
	}
	var v T
	n.Left, v = removeMin(n.Left)

	return n, v
}

// InOrder yields the values in non-decreasing order.
func (t *BST[T]) InOrder() iter.Seq[T] { return InOrder(t.root) }

// Len returns the number of values stored.
func (t *BST[T]) Len() int { return t.size }

// Height returns the number of levels.
func (t *BST[T]) Height() int { return Height(t.root) }

// Root returns the root node, nil when empty. Mutating the returned nodes
// may break the search-tree invariant.
func (t *BST[T]) Root() *Node[T] { return t.root }

// Clear releases every node.
func (t *BST[T]) Clear() {
	DeleteSubtree(t.root)
	t.root = nil
	t.size = 0
}

// String returns the rotated Print rendering.
func (t *BST[T]) String() string { return Sprint(t.root) }
