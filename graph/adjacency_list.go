// SPDX-License-Identifier: MIT
// File: adjacency_list.go
// Role: sparse undirected graph, vertex → neighbor list.
// Determinism:
//   - Vertices(), Display() and Render() walk keys in ascending order.
//   - Neighbor lists keep insertion order.

package graph

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/constraints"
)

// AdjacencyList is an undirected graph stored as an ordered map from each
// vertex to the sequence of its neighbors.
type AdjacencyList[K constraints.Ordered] struct {
	// adj maps K → []K; keys ordered by compareKeys.
	adj *treemap.Map
	log logrus.FieldLogger
}

// NewAdjacencyList returns an empty graph.
// Complexity: O(1).
func NewAdjacencyList[K constraints.Ordered](opts ...Option) *AdjacencyList[K] {
	o := buildOptions(opts)

	return &AdjacencyList[K]{
		adj: treemap.NewWith(compareKeys[K]),
		log: o.Logger,
	}
}

// compareKeys adapts the natural order of K to the treemap comparator.
func compareKeys[K constraints.Ordered](a, b interface{}) int {
	x, y := a.(K), b.(K)
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	default:
		return 0
	}
}

// list returns the stored neighbor slice of u (not a copy).
func (g *AdjacencyList[K]) list(u K) ([]K, bool) {
	raw, found := g.adj.Get(u)
	if !found {
		return nil, false
	}

	return raw.([]K), true
}

// AddVertex ensures u exists, with no neighbors if new.
func (g *AdjacencyList[K]) AddVertex(u K) {
	if _, ok := g.list(u); !ok {
		g.adj.Put(u, []K(nil))
	}
}

// AddEdge appends v to u's neighbors and u to v's neighbors, creating
// missing vertices. Repeated calls add parallel entries; AddEdge(u, u)
// lists u twice under u.
// Complexity: O(log V) amortized.
func (g *AdjacencyList[K]) AddEdge(u, v K) {
	nu, _ := g.list(u)
	g.adj.Put(u, append(nu, v))
	nv, _ := g.list(v)
	g.adj.Put(v, append(nv, u))
}

// RemoveEdge removes one occurrence of v from u's neighbors and one of u
// from v's neighbors. If either vertex or the edge is absent, nothing
// changes: a warning is logged and ErrVertexNotFound / ErrEdgeNotFound is
// returned. Vertices left without neighbors stay in the graph.
// Complexity: O(log V + deg(u) + deg(v)).
func (g *AdjacencyList[K]) RemoveEdge(u, v K) error {
	nu, okU := g.list(u)
	nv, okV := g.list(v)
	if !okU || !okV {
		return g.reject("RemoveEdge", u, v, ErrVertexNotFound)
	}

	i := slices.Index(nu, v)
	if i < 0 {
		return g.reject("RemoveEdge", u, v, ErrEdgeNotFound)
	}
	if u == v {
		// A self-loop occupies two entries of the same list.
		rest := slices.Delete(slices.Clone(nu), i, i+1)
		j := slices.Index(rest, u)
		if j < 0 {
			return g.reject("RemoveEdge", u, v, ErrEdgeNotFound)
		}
		g.adj.Put(u, slices.Delete(rest, j, j+1))

		return nil
	}
	j := slices.Index(nv, u)
	if j < 0 {
		return g.reject("RemoveEdge", u, v, ErrEdgeNotFound)
	}

	g.adj.Put(u, slices.Delete(nu, i, i+1))
	g.adj.Put(v, slices.Delete(nv, j, j+1))

	return nil
}

func (g *AdjacencyList[K]) reject(op string, u, v K, cause error) error {
	g.log.WithFields(logrus.Fields{
		"op": op,
		"u":  u,
		"v":  v,
	}).Warn(cause.Error())

	return fmt.Errorf("%w: (%v, %v)", cause, u, v)
}

// HasVertex reports whether u has been added.
func (g *AdjacencyList[K]) HasVertex(u K) bool {
	_, ok := g.list(u)
	return ok
}

// HasEdge reports whether v appears among u's neighbors.
func (g *AdjacencyList[K]) HasEdge(u, v K) bool {
	nu, ok := g.list(u)
	return ok && slices.Contains(nu, v)
}

// Neighbors returns a copy of u's neighbor list in insertion order, or
// ErrVertexNotFound.
func (g *AdjacencyList[K]) Neighbors(u K) ([]K, error) {
	nu, ok := g.list(u)
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrVertexNotFound, u)
	}

	return slices.Clone(nu), nil
}

// Degree returns the length of u's neighbor list (a self-loop counts 2).
func (g *AdjacencyList[K]) Degree(u K) int {
	nu, _ := g.list(u)
	return len(nu)
}

// Vertices returns all vertices in ascending order.
// Complexity: O(V).
func (g *AdjacencyList[K]) Vertices() []K {
	out := make([]K, 0, g.adj.Size())
	for _, k := range g.adj.Keys() {
		out = append(out, k.(K))
	}

	return out
}

// Len returns the number of vertices.
func (g *AdjacencyList[K]) Len() int { return g.adj.Size() }

// EdgeCount returns the number of edges, parallel edges counted separately.
func (g *AdjacencyList[K]) EdgeCount() int {
	entries := 0
	g.each(func(_ K, nb []K) { entries += len(nb) })

	return entries / 2
}

// each visits vertices in ascending order with their stored neighbor lists.
func (g *AdjacencyList[K]) each(fn func(u K, nb []K)) {
	it := g.adj.Iterator()
	for it.Next() {
		fn(it.Key().(K), it.Value().([]K))
	}
}

// Display writes one line per vertex in ascending order:
//
//	1 -> 2 -> 3
//
// i.e. the vertex followed by its neighbors in insertion order. A vertex
// without neighbors is written alone.
func (g *AdjacencyList[K]) Display(w io.Writer) error {
	var err error
	g.each(func(u K, nb []K) {
		if err != nil {
			return
		}
		var sb strings.Builder
		fmt.Fprint(&sb, u)
		for _, v := range nb {
			fmt.Fprintf(&sb, " -> %v", v)
		}
		sb.WriteByte('\n')
		_, err = io.WriteString(w, sb.String())
	})

	return err
}

// String returns the Display output.
func (g *AdjacencyList[K]) String() string {
	var sb strings.Builder
	_ = g.Display(&sb)

	return sb.String()
}
