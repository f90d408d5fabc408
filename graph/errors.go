// SPDX-License-Identifier: MIT

package graph

import "errors"

var (
	// ErrVertexNotFound indicates an operation referenced a vertex that has
	// never been added to an AdjacencyList.
	ErrVertexNotFound = errors.New("graph: vertex not found")

	// ErrEdgeNotFound indicates RemoveEdge found no u–v occurrence to remove.
	ErrEdgeNotFound = errors.New("graph: edge not found")

	// ErrInvalidEdge indicates an AdjacencyMatrix endpoint outside [1, n].
	ErrInvalidEdge = errors.New("graph: invalid edge")

	// ErrBadSize indicates a non-positive AdjacencyMatrix size.
	ErrBadSize = errors.New("graph: size must be > 0")

	// ErrGraphNil indicates a nil graph was passed to a conversion.
	ErrGraphNil = errors.New("graph: graph is nil")

	// ErrTooFewVertices indicates a builder size below its minimum.
	ErrTooFewVertices = errors.New("graph: too few vertices")
)
