// Package linkedlist implements a singly linked list of comparable values.
//
// The list owns its nodes: head points at the first Node and every Node owns
// its successor. Nodes handed out by Search are read-only views; their links
// cannot be rewired from outside the package.
//
// Operations
//
//	IsEmpty()            O(1)
//	AddFront(v)          O(1)
//	AddBack(v)           O(n)  walks to the last node
//	Search(v)            O(n)  first node whose Value == v, or nil
//	DeleteByValue(v)     O(n)  removes the first match
//	DeleteTail()         O(n)  walks to the second-to-last node
//	Count()              O(n)  walks the chain
//	Traverse()           lazy, restartable iter.Seq over the values
//
// Deleting from an empty list, or deleting a value that is not present,
// returns (zero, false). This is an expected query, not an error.
package linkedlist
