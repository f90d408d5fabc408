// Package graph provides two representations of an undirected graph:
//
//   - AdjacencyList[K]: a sparse graph keyed by any ordered vertex type.
//     Vertices are created on demand by AddEdge; each vertex maps to the
//     list of its neighbors in insertion order. Parallel edges are kept
//     (adding u–v twice lists v twice under u), and a self-loop u–u lists u
//     twice under u. Vertices are iterated in ascending key order.
//   - AdjacencyMatrix: a dense graph over vertices 1..n, fixed at
//     construction, stored as a symmetric n×n boolean matrix.
//
// Error discipline
//
//	Rejected mutations never change the graph. They are reported twice:
//	the method returns a sentinel error (match with errors.Is) and logs a
//	warning with structured fields on the configured logrus logger.
//
//	  ErrVertexNotFound  RemoveEdge on an unknown vertex (list)
//	  ErrEdgeNotFound    RemoveEdge on an absent edge (list)
//	  ErrInvalidEdge     AddEdge/RemoveEdge outside 1..n (matrix)
//	  ErrBadSize         NewAdjacencyMatrix with n < 1
//	  ErrGraphNil        conversion of a nil graph
//
// Complexity (V vertices, E edges, d = degree)
//
//	                 AdjacencyList        AdjacencyMatrix
//	AddEdge          O(log V)             O(1)
//	RemoveEdge       O(log V + d)         O(1)
//	HasEdge          O(log V + d)         O(1)
//	Display          O(V + E)             O(V²)
//	Memory           O(V + E)             O(V²)
//
// Conversions
//
//	MatrixFromList numbers the list's vertices 1..V in ascending key order
//	and returns that order; ListFromMatrix builds an AdjacencyList[int].
//	Parallel edges collapse into a single matrix cell.
//
// Neither type is safe for concurrent use.
package graph
