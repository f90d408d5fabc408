// SPDX-License-Identifier: MIT

package traversal

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/lvlds/graph"
	"github.com/katalvlaran/lvlds/queue"
)

// item pairs a vertex with its depth in the walk.
type item[K comparable] struct {
	id    K
	depth int
}

// BFS runs breadth-first search on g starting from start.
// Returns ErrGraphNil, ErrStartVertexNotFound or ErrOptionViolation for
// invalid input, the context error on cancellation, or the wrapped
// OnVisit error. On abort the partial Result is returned with the error.
func BFS[K constraints.Ordered](g *graph.AdjacencyList[K], start K, opts ...Option[K]) (*Result[K], error) {
	o, err := prepare(g, start, opts)
	if err != nil {
		return nil, err
	}

	res := newResult[K](g.Len())
	q := queue.New[item[K]]()
	res.Depth[start] = 0
	q.Enqueue(item[K]{id: start})

	for !q.IsEmpty() {
		cur, _ := q.Dequeue()
		if err = o.Ctx.Err(); err != nil {
			return res, err
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
		for _, nb := range nbs {
			if res.Visited(nb) || !o.FilterNeighbor(cur.id, nb) {
				continue
			}
			res.Depth[nb] = next
			res.Parent[nb] = cur.id
			q.Enqueue(item[K]{id: nb, depth: next})
		}
	}

	return res, nil
}

// prepare validates the walk inputs and builds its options.
func prepare[K constraints.Ordered](g *graph.AdjacencyList[K], start K, opts []Option[K]) (Options[K], error) {
	if g == nil {
		return Options[K]{}, ErrGraphNil
	}
	o, err := buildOptions(opts)
	if err != nil {
		return o, err
	}
	if !g.HasVertex(start) {
		return o, fmt.Errorf("%w: %v", ErrStartVertexNotFound, start)
	}

	return o, nil
}
