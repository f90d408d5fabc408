// SPDX-License-Identifier: MIT
// File: quick.go
// Role: randomized quick sort with Lomuto partitioning.
// Determinism:
//   - Pivot choice depends only on the Options stream (see rng.go).

package sorting

import (
	"math/rand"

	"golang.org/x/exp/constraints"
)

// Quick sorts s in place in non-decreasing order.
// Complexity: O(n log n) expected, O(n²) worst, O(log n) stack.
func Quick[S ~[]E, E constraints.Ordered](s S, opts ...Option) {
	QuickFunc(s, less[E], opts...)
}

// QuickFunc sorts s in place using less.
//
// For each active range [left, right] a pivot index is drawn uniformly,
// swapped to right, and the range is partitioned around it. The smaller
// side is sorted recursively and the larger one iteratively, which keeps
// the recursion depth logarithmic even on unlucky draws.
func QuickFunc[S ~[]E, E any](s S, less func(a, b E) bool, opts ...Option) {
	if len(s) < 2 {
		return
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	quickRange(s, 0, len(s)-1, less, o.source())
}

func quickRange[S ~[]E, E any](s S, left, right int, less func(a, b E) bool, r *rand.Rand) {
	for left < right {
		pivot := intInRange(r, left, right)
		s[right], s[pivot] = s[pivot], s[right]

		p := partition(s, left, right, less)

		if p-left < right-p {
			quickRange(s, left, p-1, less, r)
			left = p + 1
		} else {
			quickRange(s, p+1, right, less, r)
			right = p - 1
		}
	}
}

// partition applies the Lomuto scheme to s[left:right+1] with the pivot at
// s[right]. boundary is the last index known to hold an element < pivot.
// Returns the final pivot index.
func partition[S ~[]E, E any](s S, left, right int, less func(a, b E) bool) int {
	pivot := s[right]
	boundary := left - 1
	for cur := left; cur < right; cur++ {
		if less(s[cur], pivot) {
			boundary++
			s[boundary], s[cur] = s[cur], s[boundary]
		}
	}
	s[boundary+1], s[right] = s[right], s[boundary+1]

	return boundary + 1
}
