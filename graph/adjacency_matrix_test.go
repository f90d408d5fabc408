package graph_test

import (
	"bytes"
	"testing"

	"github.com/Pallinder/go-randomdata"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlds/graph"
)

func TestNewAdjacencyMatrix_BadSize(t *testing.T) {
	for _, n := range []int{0, -1, -100} {
		m, err := graph.NewAdjacencyMatrix(n)
		require.ErrorIs(t, err, graph.ErrBadSize)
		require.Nil(t, m)
	}
}

func TestAdjacencyMatrix_AddRemove(t *testing.T) {
	m, err := graph.NewAdjacencyMatrix(4)
	require.NoError(t, err)
	require.Equal(t, 4, m.Size())

	require.NoError(t, m.AddEdge(1, 2))
	require.NoError(t, m.AddEdge(1, 3))
	require.NoError(t, m.AddEdge(2, 4))
	require.NoError(t, m.AddEdge(3, 4))

	assert.True(t, m.HasEdge(2, 1))
	assert.False(t, m.HasEdge(1, 4))
	assert.Equal(t, 4, m.EdgeCount())
	assert.Equal(t, "0  1  1  0\n1  0  0  1\n1  0  0  1\n0  1  1  0\n", m.String())

	nb, err := m.Neighbors(4)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3}, nb)

	require.NoError(t, m.RemoveEdge(4, 3))
	assert.False(t, m.HasEdge(3, 4))
	require.NoError(t, m.RemoveEdge(4, 3))
	assert.Equal(t, 3, m.EdgeCount())
}

func TestAdjacencyMatrix_SelfLoop(t *testing.T) {
	m, err := graph.NewAdjacencyMatrix(2)
	require.NoError(t, err)
	require.NoError(t, m.AddEdge(2, 2))
	assert.Equal(t, "0  0\n0  1\n", m.String())
	assert.Equal(t, 1, m.EdgeCount())
}

func TestAdjacencyMatrix_OutOfRange(t *testing.T) {
	logger, hook := test.NewNullLogger()
	m, err := graph.NewAdjacencyMatrix(3, graph.WithLogger(logger))
	require.NoError(t, err)
	require.NoError(t, m.AddEdge(1, 2))
	before := m.String()

	cases := [][2]int{{0, 1}, {1, 4}, {4, 4}, {-1, 2}}
	for _, c := range cases {
		require.ErrorIs(t, m.AddEdge(c[0], c[1]), graph.ErrInvalidEdge)
		require.ErrorIs(t, m.RemoveEdge(c[0], c[1]), graph.ErrInvalidEdge)
		require.False(t, m.HasEdge(c[0], c[1]))
	}
	require.Equal(t, before, m.String())
	require.Len(t, hook.Entries, 2*len(cases))

	entry := hook.LastEntry()
	require.Equal(t, logrus.WarnLevel, entry.Level)
	require.Equal(t, "RemoveEdge", entry.Data["op"])
	require.Equal(t, 3, entry.Data["n"])

	_, err = m.Neighbors(0)
	require.ErrorIs(t, err, graph.ErrInvalidEdge)
}

func TestAdjacencyMatrix_StaysSymmetric(t *testing.T) {
	n := randomdata.Number(1, 20)
	logger, _ := test.NewNullLogger()
	m, err := graph.NewAdjacencyMatrix(n, graph.WithLogger(logger))
	require.NoError(t, err)

	for k := 0; k < 200; k++ {
		i, j := randomdata.Number(0, n+2), randomdata.Number(0, n+2)
		if randomdata.Boolean() {
			_ = m.AddEdge(i, j)
		} else {
			_ = m.RemoveEdge(i, j)
		}
		require.True(t, m.IsSymmetric())
		require.Equal(t, m.HasEdge(i, j), m.HasEdge(j, i))
	}
}

func TestAdjacencyMatrix_Render(t *testing.T) {
	m, err := graph.NewAdjacencyMatrix(2)
	require.NoError(t, err)
	require.NoError(t, m.AddEdge(1, 2))

	var buf bytes.Buffer
	m.Render(&buf)
	out := buf.String()
	assert.Contains(t, out, "| 1 | 0 | 1 |")
	assert.Contains(t, out, "| 2 | 1 | 0 |")
}
