// SPDX-License-Identifier: MIT
// File: adjacency_matrix.go
// Role: dense undirected graph over vertices 1..n.
// Invariant: data[i][j] == data[j][i] for all i, j (maintained by setEdge).

package graph

import (
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

// AdjacencyMatrix holds a fixed-size, symmetric 2D representation of an
// undirected graph. Vertices are the integers 1..n; cell (i, j) is stored
// at data[i-1][j-1].
//
// Use AdjacencyMatrix for constant-time edge updates and queries in dense
// graphs.
//
// Time complexity:
//   - AddEdge/RemoveEdge/HasEdge: O(1)
//   - Neighbors: O(n)
//   - Display: O(n²)
//
// Memory:
//   - O(n²).
type AdjacencyMatrix struct {
	n    int
	data [][]bool
	log  logrus.FieldLogger
}

// NewAdjacencyMatrix returns an edgeless graph on vertices 1..n.
// Returns ErrBadSize for n < 1.
//
// Time Complexity: O(n²)
func NewAdjacencyMatrix(n int, opts ...Option) (*AdjacencyMatrix, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadSize, n)
	}
	o := buildOptions(opts)

	data := make([][]bool, n)
	for i := range data {
		data[i] = make([]bool, n)
	}

	return &AdjacencyMatrix{n: n, data: data, log: o.Logger}, nil
}

// Size returns n, the number of vertices.
func (m *AdjacencyMatrix) Size() int { return m.n }

// AddEdge connects i and j. Out-of-range endpoints are logged and
// reported as ErrInvalidEdge; the matrix is left untouched.
//
// Time Complexity: O(1)
func (m *AdjacencyMatrix) AddEdge(i, j int) error {
	return m.setEdge("AddEdge", i, j, true)
}

// RemoveEdge disconnects i and j. Removing an absent edge between valid
// vertices is a no-op. Out-of-range endpoints behave as in AddEdge.
//
// Time Complexity: O(1)
func (m *AdjacencyMatrix) RemoveEdge(i, j int) error {
	return m.setEdge("RemoveEdge", i, j, false)
}

func (m *AdjacencyMatrix) setEdge(op string, i, j int, on bool) error {
	if !m.valid(i) || !m.valid(j) {
		m.log.WithFields(logrus.Fields{
			"op": op,
			"u":  i,
			"v":  j,
			"n":  m.n,
		}).Warn(ErrInvalidEdge.Error())

		return fmt.Errorf("%w: (%d, %d) outside [1, %d]", ErrInvalidEdge, i, j, m.n)
	}
	m.data[i-1][j-1] = on
	m.data[j-1][i-1] = on

	return nil
}

func (m *AdjacencyMatrix) valid(i int) bool { return i >= 1 && i <= m.n }

// HasEdge reports whether i and j are connected. Out-of-range endpoints
// yield false.
func (m *AdjacencyMatrix) HasEdge(i, j int) bool {
	return m.valid(i) && m.valid(j) && m.data[i-1][j-1]
}

// Neighbors returns, in ascending order, every vertex adjacent to i.
// Returns ErrInvalidEdge if i is outside [1, n].
//
// Time Complexity: O(n)
func (m *AdjacencyMatrix) Neighbors(i int) ([]int, error) {
	if !m.valid(i) {
		return nil, fmt.Errorf("%w: vertex %d outside [1, %d]", ErrInvalidEdge, i, m.n)
	}
	var out []int
	for j, on := range m.data[i-1] {
		if on {
			out = append(out, j+1)
		}
	}

	return out, nil
}

// EdgeCount returns the number of distinct edges, self-loops included.
func (m *AdjacencyMatrix) EdgeCount() int {
	count := 0
	for i := 0; i < m.n; i++ {
		for j := i; j < m.n; j++ {
			if m.data[i][j] {
				count++
			}
		}
	}

	return count
}

// IsSymmetric reports whether data[i][j] == data[j][i] for every cell.
func (m *AdjacencyMatrix) IsSymmetric() bool {
	for i := 0; i < m.n; i++ {
		for j := i + 1; j < m.n; j++ {
			if m.data[i][j] != m.data[j][i] {
				return false
			}
		}
	}

	return true
}

// Display writes the matrix row by row as 0/1 cells separated by two
// spaces, e.g. for n = 2 with edge 1–2:
//
//	0  1
//	1  0
func (m *AdjacencyMatrix) Display(w io.Writer) error {
	for _, row := range m.data {
		if _, err := io.WriteString(w, joinRow(row, "  ")+"\n"); err != nil {
			return err
		}
	}

	return nil
}

// String returns the Display output.
func (m *AdjacencyMatrix) String() string {
	var sb strings.Builder
	_ = m.Display(&sb)

	return sb.String()
}

func cell(on bool) string {
	if on {
		return "1"
	}

	return "0"
}

func joinRow(row []bool, sep string) string {
	cells := make([]string, len(row))
	for j, on := range row {
		cells[j] = cell(on)
	}

	return strings.Join(cells, sep)
}
