package graph_test

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvlds/graph"
)

type AdjacencyListSuite struct {
	suite.Suite
	hook *test.Hook
	g    *graph.AdjacencyList[int]
}

func (s *AdjacencyListSuite) SetupTest() {
	logger, hook := test.NewNullLogger()
	s.hook = hook
	s.g = graph.NewAdjacencyList[int](graph.WithLogger(logger))
}

func (s *AdjacencyListSuite) TestEmpty() {
	require := require.New(s.T())
	require.Equal(0, s.g.Len())
	require.Empty(s.g.Vertices())
	require.Equal(0, s.g.EdgeCount())
	require.Equal("", s.g.String())
	require.False(s.g.HasVertex(1))
	require.False(s.g.HasEdge(1, 2))

	_, err := s.g.Neighbors(1)
	require.ErrorIs(err, graph.ErrVertexNotFound)
}

func (s *AdjacencyListSuite) TestAddEdgeSymmetric() {
	require := require.New(s.T())
	s.g.AddEdge(1, 2)
	s.g.AddEdge(1, 3)
	s.g.AddEdge(2, 3)

	require.Equal([]int{1, 2, 3}, s.g.Vertices())
	require.True(s.g.HasEdge(1, 2))
	require.True(s.g.HasEdge(2, 1))
	require.False(s.g.HasEdge(1, 4))
	require.Equal(3, s.g.EdgeCount())

	nb, err := s.g.Neighbors(1)
	require.NoError(err)
	require.Equal([]int{2, 3}, nb)
	require.Equal("1 -> 2 -> 3\n2 -> 1 -> 3\n3 -> 1 -> 2\n", s.g.String())
}

func (s *AdjacencyListSuite) TestNeighborsIsCopy() {
	require := require.New(s.T())
	s.g.AddEdge(1, 2)
	nb, err := s.g.Neighbors(1)
	require.NoError(err)
	nb[0] = 99

	require.True(s.g.HasEdge(1, 2))
	require.False(s.g.HasEdge(1, 99))
}

func (s *AdjacencyListSuite) TestParallelEdges() {
	require := require.New(s.T())
	s.g.AddEdge(1, 2)
	s.g.AddEdge(1, 2)
	require.Equal(2, s.g.Degree(1))
	require.Equal(2, s.g.EdgeCount())

	require.NoError(s.g.RemoveEdge(1, 2))
	require.True(s.g.HasEdge(1, 2))
	require.NoError(s.g.RemoveEdge(2, 1))
	require.False(s.g.HasEdge(1, 2))
	require.Equal("1\n2\n", s.g.String())
}

func (s *AdjacencyListSuite) TestSelfLoop() {
	require := require.New(s.T())
	s.g.AddEdge(7, 7)
	require.Equal(2, s.g.Degree(7))
	require.Equal("7 -> 7 -> 7\n", s.g.String())

	require.NoError(s.g.RemoveEdge(7, 7))
	require.Equal(0, s.g.Degree(7))
	require.True(s.g.HasVertex(7))
}

func (s *AdjacencyListSuite) TestRemoveMissingVertex() {
	require := require.New(s.T())
	s.g.AddEdge(1, 2)
	before := s.g.String()

	err := s.g.RemoveEdge(1, 5)
	require.ErrorIs(err, graph.ErrVertexNotFound)
	require.Equal(before, s.g.String())

	entry := s.hook.LastEntry()
	require.NotNil(entry)
	require.Equal(logrus.WarnLevel, entry.Level)
	require.Equal("RemoveEdge", entry.Data["op"])
	require.Equal(1, entry.Data["u"])
	require.Equal(5, entry.Data["v"])
}

func (s *AdjacencyListSuite) TestRemoveMissingEdge() {
	require := require.New(s.T())
	s.g.AddEdge(1, 2)
	s.g.AddEdge(3, 4)
	before := s.g.String()

	err := s.g.RemoveEdge(1, 3)
	require.ErrorIs(err, graph.ErrEdgeNotFound)
	require.Equal(before, s.g.String())
	require.Len(s.hook.Entries, 1)

	s.g.AddVertex(9)
	require.ErrorIs(s.g.RemoveEdge(9, 9), graph.ErrEdgeNotFound)
	require.Len(s.hook.Entries, 2)
}

func (s *AdjacencyListSuite) TestAddVertexKeepsNeighbors() {
	require := require.New(s.T())
	s.g.AddEdge(1, 2)
	s.g.AddVertex(1)
	s.g.AddVertex(0)
	require.Equal([]int{0, 1, 2}, s.g.Vertices())
	require.Equal(1, s.g.Degree(1))
	require.Equal(0, s.g.Degree(0))
}

func (s *AdjacencyListSuite) TestRender() {
	require := require.New(s.T())
	s.g.AddEdge(1, 2)
	s.g.AddEdge(1, 3)

	var buf bytes.Buffer
	s.g.Render(&buf)
	out := buf.String()
	require.Contains(out, "VERTEX")
	require.Contains(out, "NEIGHBORS")
	require.Contains(out, "2, 3")
}

func TestAdjacencyListSuite(t *testing.T) {
	suite.Run(t, new(AdjacencyListSuite))
}

func TestAdjacencyList_StringKeys(t *testing.T) {
	g := graph.NewAdjacencyList[string]()
	g.AddEdge("b", "a")
	g.AddEdge("c", "a")
	require.Equal(t, []string{"a", "b", "c"}, g.Vertices())
	require.Equal(t, "a -> b -> c\nb -> a\nc -> a\n", g.String())
}

func TestAdjacencyList_NilLoggerIgnored(t *testing.T) {
	g := graph.NewAdjacencyList[int](graph.WithLogger(nil))
	require.NotPanics(t, func() {
		require.ErrorIs(t, g.RemoveEdge(1, 2), graph.ErrVertexNotFound)
	})
}
