// Package traversal walks a graph.AdjacencyList breadth-first or
// depth-first from a start vertex.
//
// BFS is driven by a queue.Queue and yields shortest hop counts in
// Result.Depth. DFS is iterative, driven by a stack.Stack, and visits
// neighbors in the order they were added, exactly as a recursive
// pre-order walk would.
//
// Both walks accept the same functional options:
//
//   - WithContext(ctx)         cancellation, checked once per visited vertex.
//   - WithMaxDepth(d)          d > 0 limits depth, 0 disables, d < 0 → ErrOptionViolation.
//   - WithOnVisit(fn)          called on each visit; an error aborts the walk.
//   - WithFilterNeighbor(fn)   return false to skip the edge curr→neighbor.
//
// Complexity: O(V + E) time, O(V) memory.
package traversal
