// SPDX-License-Identifier: MIT
// File: conversions.go
// Role: AdjacencyList ⇄ AdjacencyMatrix.

package graph

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// MatrixFromList builds an AdjacencyMatrix from g. Vertex keys[i] becomes
// matrix vertex i+1, with keys in ascending order. Parallel edges collapse
// into one cell.
//
// Returns ErrGraphNil for a nil g and ErrBadSize for a graph without
// vertices.
// Time Complexity: O(V² + E)
func MatrixFromList[K constraints.Ordered](g *AdjacencyList[K], opts ...Option) (*AdjacencyMatrix, []K, error) {
	if g == nil {
		return nil, nil, ErrGraphNil
	}
	keys := g.Vertices()
	m, err := NewAdjacencyMatrix(len(keys), opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("graph: convert list: %w", err)
	}

	index := make(map[K]int, len(keys))
	for i, k := range keys {
		index[k] = i + 1
	}
	g.each(func(u K, nb []K) {
		for _, v := range nb {
			// Both endpoints come from the same graph, so they are in range.
			_ = m.AddEdge(index[u], index[v])
		}
	})

	return m, keys, nil
}

// ListFromMatrix builds an AdjacencyList[int] from m. Every vertex 1..n is
// present, including isolated ones; each edge i–j (i <= j) is added once,
// in row-major order.
//
// Time Complexity: O(n² log n)
func ListFromMatrix(m *AdjacencyMatrix, opts ...Option) (*AdjacencyList[int], error) {
	if m == nil {
		return nil, ErrGraphNil
	}
	g := NewAdjacencyList[int](opts...)
	for i := 1; i <= m.n; i++ {
		g.AddVertex(i)
	}
	for i := 0; i < m.n; i++ {
		for j := i; j < m.n; j++ {
			if m.data[i][j] {
				g.AddEdge(i+1, j+1)
			}
		}
	}

	return g, nil
}
