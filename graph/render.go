// SPDX-License-Identifier: MIT
// File: render.go
// Role: tabular rendering of both graph representations.

package graph

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
)

// Render writes a table with one row per vertex (ascending): the vertex,
// its neighbors in insertion order, and its degree.
func (g *AdjacencyList[K]) Render(w io.Writer) {
	table := newTable(w, []string{"Vertex", "Neighbors", "Degree"})
	g.each(func(u K, nb []K) {
		names := make([]string, len(nb))
		for i, v := range nb {
			names[i] = fmt.Sprint(v)
		}
		table.Append([]string{fmt.Sprint(u), strings.Join(names, ", "), strconv.Itoa(len(nb))})
	})
	table.Render()
}

// Render writes the matrix as a table labelled 1..n on both axes.
func (m *AdjacencyMatrix) Render(w io.Writer) {
	header := make([]string, m.n+1)
	for j := 1; j <= m.n; j++ {
		header[j] = strconv.Itoa(j)
	}
	table := newTable(w, header)
	for i, row := range m.data {
		line := make([]string, 0, m.n+1)
		line = append(line, strconv.Itoa(i+1))
		for _, on := range row {
			line = append(line, cell(on))
		}
		table.Append(line)
	}
	table.Render()
}

func newTable(w io.Writer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAlignment(tablewriter.ALIGN_CENTER)
	table.SetAutoWrapText(false)

	return table
}
