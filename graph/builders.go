// SPDX-License-Identifier: MIT
// File: builders.go
// Role: canonical topologies as AdjacencyList[int] fixtures.
//
// Contract:
//   - Vertices are 0..n-1 (Grid: r*cols + c, row-major), all added before
//     any edge so isolated vertices still appear.
//   - Edges are emitted in a stable order, lower endpoint first.
//   - Invalid sizes return ErrTooFewVertices; nothing is built.

package graph

import "fmt"

const (
	minPathNodes     = 1
	minCycleNodes    = 3
	minStarNodes     = 2
	minCompleteNodes = 1
	minGridDim       = 1
)

func tooFew(method string, n, limit int) error {
	return fmt.Errorf("%s: n=%d < min=%d: %w", method, n, limit, ErrTooFewVertices)
}

func withVertices(n int, opts []Option) *AdjacencyList[int] {
	g := NewAdjacencyList[int](opts...)
	for i := 0; i < n; i++ {
		g.AddVertex(i)
	}

	return g
}

// Path builds P_n: 0–1–…–(n-1).
// Complexity: O(n log n).
func Path(n int, opts ...Option) (*AdjacencyList[int], error) {
	if n < minPathNodes {
		return nil, tooFew("Path", n, minPathNodes)
	}
	g := withVertices(n, opts)
	for i := 0; i+1 < n; i++ {
		g.AddEdge(i, i+1)
	}

	return g, nil
}

// Cycle builds C_n: a Path closed by the edge (n-1)–0.
func Cycle(n int, opts ...Option) (*AdjacencyList[int], error) {
	if n < minCycleNodes {
		return nil, tooFew("Cycle", n, minCycleNodes)
	}
	g, _ := Path(n, opts...)
	g.AddEdge(n-1, 0)

	return g, nil
}

// Star builds a hub 0 joined to leaves 1..n-1.
func Star(n int, opts ...Option) (*AdjacencyList[int], error) {
	if n < minStarNodes {
		return nil, tooFew("Star", n, minStarNodes)
	}
	g := withVertices(n, opts)
	for i := 1; i < n; i++ {
		g.AddEdge(0, i)
	}

	return g, nil
}

// Complete builds K_n: every pair i < j joined once.
// Complexity: O(n² log n).
func Complete(n int, opts ...Option) (*AdjacencyList[int], error) {
	if n < minCompleteNodes {
		return nil, tooFew("Complete", n, minCompleteNodes)
	}
	g := withVertices(n, opts)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			g.AddEdge(i, j)
		}
	}

	return g, nil
}

// Grid builds a rows×cols 4-neighborhood lattice. Cell (r, c) is vertex
// r*cols + c; each cell links to its right and bottom neighbors.
func Grid(rows, cols int, opts ...Option) (*AdjacencyList[int], error) {
	if rows < minGridDim || cols < minGridDim {
		return nil, fmt.Errorf("Grid: rows=%d, cols=%d (each must be >= %d): %w",
			rows, cols, minGridDim, ErrTooFewVertices)
	}
	g := withVertices(rows*cols, opts)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			id := r*cols + c
			if c+1 < cols {
				g.AddEdge(id, id+1)
			}
			if r+1 < rows {
				g.AddEdge(id, id+cols)
			}
		}
	}

	return g, nil
}
