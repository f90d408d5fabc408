// Package lvlds is a small library of classic data structures and the
// algorithms that go with them, written with generics.
//
// Everything lives in independent subpackages:
//
//	sorting/     Bubble, Selection, Insertion, Merge (stable), Quick (random pivot)
//	search/      Linear, Binary, Ternary
//	arraylist/   bounds-checked dynamic array
//	linkedlist/  singly linked list with lazy traversal
//	stack/       LIFO stack, unbounded or fixed capacity
//	queue/       FIFO queue and double-ended deque on a ring buffer
//	graph/       undirected adjacency list and adjacency matrix, conversions,
//	             table rendering and topology builders
//	traversal/   BFS and DFS over graph.AdjacencyList
//	tree/        binary tree helpers, rotated printing, binary search tree
//
// Only traversal depends on its siblings (graph, queue, stack); every
// other package stands alone.
//
// Conventions shared by all packages:
//
//   - Ordered element types use golang.org/x/exp/constraints.Ordered;
//     "...Func" variants take a less(a, b) comparator instead.
//   - Failures are sentinel errors declared in each package's errors.go
//     and matched with errors.Is. Linked-list deletions are the exception:
//     they report (zero, false) on an empty list.
//   - Configuration uses functional options (WithSeed, WithLogger,
//     WithMaxDepth, WithIndent, ...).
//   - Graphs log rejected mutations through logrus.
//   - No type is safe for concurrent use.
package lvlds
