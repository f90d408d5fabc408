// SPDX-License-Identifier: MIT

package traversal

import (
	"context"
	"fmt"
)

// Option configures a walk. An invalid Option is recorded and surfaced
// as ErrOptionViolation when the walk starts.
type Option[K comparable] func(*Options[K])

// Options holds parameters and callbacks shared by BFS and DFS.
type Options[K comparable] struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// MaxDepth, if > 0, stops exploring beyond this depth.
	MaxDepth int

	// OnVisit is called when a vertex is visited. A non-nil error aborts
	// the walk and is returned wrapped.
	OnVisit func(v K, depth int) error

	// FilterNeighbor can skip the edge curr→neighbor by returning false.
	FilterNeighbor func(curr, neighbor K) bool

	err error
}

// DefaultOptions returns Options with a background context, no depth
// limit, a no-op OnVisit and no filtering.
func DefaultOptions[K comparable]() Options[K] {
	return Options[K]{
		Ctx:            context.Background(),
		OnVisit:        func(K, int) error { return nil },
		FilterNeighbor: func(_, _ K) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext[K comparable](ctx context.Context) Option[K] {
	return func(o *Options[K]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth limits the walk to vertices at most d edges from start.
//
//	d > 0: limit to depth d
//	d == 0: no limit
//	d < 0: ErrOptionViolation
func WithMaxDepth[K comparable](d int) Option[K] {
	return func(o *Options[K]) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithOnVisit registers a visit callback.
func WithOnVisit[K comparable](fn func(v K, depth int) error) Option[K] {
	return func(o *Options[K]) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithFilterNeighbor skips neighbors when fn returns false.
func WithFilterNeighbor[K comparable](fn func(curr, neighbor K) bool) Option[K] {
	return func(o *Options[K]) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

func buildOptions[K comparable](opts []Option[K]) (Options[K], error) {
	o := DefaultOptions[K]()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}

func (o Options[K]) beyond(depth int) bool {
	return o.MaxDepth > 0 && depth > o.MaxDepth
}
