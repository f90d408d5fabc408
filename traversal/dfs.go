// SPDX-License-Identifier: MIT

package traversal

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/lvlds/graph"
	"github.com/katalvlaran/lvlds/stack"
)

// frame is a pending DFS visit: the vertex, its depth and who pushed it.
type frame[K comparable] struct {
	item[K]
	parent    K
	hasParent bool
}

// DFS runs iterative depth-first search on g starting from start. Each
// vertex's neighbors are explored in insertion order, so Order matches a
// recursive pre-order walk. Errors are as for BFS.
func DFS[K constraints.Ordered](g *graph.AdjacencyList[K], start K, opts ...Option[K]) (*Result[K], error) {
	o, err := prepare(g, start, opts)
	if err != nil {
		return nil, err
	}

	res := newResult[K](g.Len())
	st := stack.New(frame[K]{item: item[K]{id: start}})

	for !st.IsEmpty() {
		cur, _ := st.Pop()
		if res.Visited(cur.id) {
			continue
		}
		if err = o.Ctx.Err(); err != nil {
			return res, err
		}

		res.Depth[cur.id] = cur.depth
		if cur.hasParent {
			res.Parent[cur.id] = cur.parent
		}
		res.Order = append(res.Order, cur.id)
		if err = o.OnVisit(cur.id, cur.depth); err != nil {
			return res, fmt.Errorf("traversal: OnVisit at %v: %w", cur.id, err)
		}

		next := cur.depth + 1
		if o.beyond(next) {
			continue
		}
		nbs, _ := g.Neighbors(cur.id)
		// Push in reverse so the first neighbor is popped first.
		for i := len(nbs) - 1; i >= 0; i-- {
			nb := nbs[i]
			if res.Visited(nb) || !o.FilterNeighbor(cur.id, nb) {
				continue
			}
			st.Push(frame[K]{item: item[K]{id: nb, depth: next}, parent: cur.id, hasParent: true})
		}
	}

	return res, nil
}

// Components partitions g into connected components. Components are
// ordered by their smallest vertex, and each lists its vertices in BFS
// order from that vertex.
func Components[K constraints.Ordered](g *graph.AdjacencyList[K]) ([][]K, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	seen := make(map[K]bool, g.Len())
	var out [][]K
	for _, v := range g.Vertices() {
		if seen[v] {
			continue
		}
		res, err := BFS(g, v)
		if err != nil {
			return out, err
		}
		for _, u := range res.Order {
			seen[u] = true
		}
		out = append(out, res.Order)
	}

	return out, nil
}
