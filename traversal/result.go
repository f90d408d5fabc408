// SPDX-License-Identifier: MIT

package traversal

import (
	"fmt"
	"slices"
)

// Result holds the outcome of a walk:
//   - Order: vertices in visit sequence.
//   - Depth: distance from start in the walk's tree (BFS: shortest hops).
//   - Parent: predecessor in that tree; the start has no entry.
type Result[K comparable] struct {
	Order  []K
	Depth  map[K]int
	Parent map[K]K
}

func newResult[K comparable](n int) *Result[K] {
	return &Result[K]{
		Order:  make([]K, 0, n),
		Depth:  make(map[K]int, n),
		Parent: make(map[K]K, n),
	}
}

// Visited reports whether v was reached.
func (r *Result[K]) Visited(v K) bool {
	_, ok := r.Depth[v]
	return ok
}

// PathTo reconstructs the tree path from the start vertex to dest, or
// returns ErrNoPath if dest was not reached.
func (r *Result[K]) PathTo(dest K) ([]K, error) {
	if !r.Visited(dest) {
		return nil, fmt.Errorf("%w: to %v", ErrNoPath, dest)
	}
	path := []K{dest}
	for cur := dest; ; {
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		path = append(path, prev)
		cur = prev
	}
	slices.Reverse(path)

	return path, nil
}
