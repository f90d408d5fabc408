// SPDX-License-Identifier: MIT
// File: node.go
// Role: binary tree node and structural helpers.

package tree

import "iter"

// Node is a binary tree node. Left and Right are exported for manual
// wiring; a node exclusively owns its children.
type Node[T any] struct {
	Value       T
	Left, Right *Node[T]
}

// NewNode returns a leaf holding v.
func NewNode[T any](v T) *Node[T] {
	return &Node[T]{Value: v}
}

// DeleteSubtree detaches every link below n in post-order, leaving n a
// leaf. The caller drops its own reference to n (e.g. parent.Left = nil).
func DeleteSubtree[T any](n *Node[T]) {
	if n == nil {
		return
	}
	DeleteSubtree(n.Left)
	DeleteSubtree(n.Right)
	n.Left, n.Right = nil, nil
}

// Height returns the number of nodes on the longest root-to-leaf path;
// 0 for a nil tree.
func Height[T any](n *Node[T]) int {
	if n == nil {
		return 0
	}

	return 1 + max(Height(n.Left), Height(n.Right))
}

// Size returns the number of nodes.
func Size[T any](n *Node[T]) int {
	if n == nil {
		return 0
	}

	return 1 + Size(n.Left) + Size(n.Right)
}

// InOrder yields left subtree, node, right subtree.
func InOrder[T any](root *Node[T]) iter.Seq[T] {
	return func(yield func(T) bool) { inOrder(root, yield) }
}

// PreOrder yields node, left subtree, right subtree.
func PreOrder[T any](root *Node[T]) iter.Seq[T] {
	return func(yield func(T) bool) { preOrder(root, yield) }
}

// PostOrder yields left subtree, right subtree, node.
func PostOrder[T any](root *Node[T]) iter.Seq[T] {
	return func(yield func(T) bool) { postOrder(root, yield) }
}

// The walkers return false once yield asks to stop.

func inOrder[T any](n *Node[T], yield func(T) bool) bool {
	if n == nil {
		return true
	}

	return inOrder(n.Left, yield) && yield(n.Value) && inOrder(n.Right, yield)
}

func preOrder[T any](n *Node[T], yield func(T) bool) bool {
	if n == nil {
		return true
	}

	return yield(n.Value) && preOrder(n.Left, yield) && preOrder(n.Right, yield)
}

func postOrder[T any](n *Node[T], yield func(T) bool) bool {
	if n == nil {
		return true
	}

	return postOrder(n.Left, yield) && postOrder(n.Right, yield) && yield(n.Value)
}
