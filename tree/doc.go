// Package tree provides a plain binary tree and a binary search tree.
//
// Node[T] is the shared building block. A plain binary tree imposes no
// ordering: callers wire Left and Right by hand. The helpers (Print,
// DeleteSubtree, InOrder, PreOrder, PostOrder, Height, Size) work on any
// *Node[T], including nil.
//
// Insert and BST[T] maintain the search-tree invariant: every value in a
// node's left subtree is < the node's value, every value in its right
// subtree is >= it. Equal values therefore go right, and an in-order walk
// is always non-decreasing.
//
// Print draws a tree rotated 90° counter-clockwise: the right subtree
// above its parent and the left subtree below, one node per line, e.g.
//
//	   / 6
//	4
//	   \ 2
//
// No type here is safe for concurrent use.
package tree
