// SPDX-License-Identifier: MIT
// File: merge.go
// Role: top-down merge sort returning a new slice.
// Determinism:
//   - Stable: on ties the element of the left run is emitted first.

package sorting

import "golang.org/x/exp/constraints"

// Merge returns a sorted copy of s. The input is never modified.
// Complexity: O(n log n) time, O(n) auxiliary space.
func Merge[S ~[]E, E constraints.Ordered](s S) S {
	return MergeFunc(s, less[E])
}

// MergeFunc returns a copy of s sorted stably by less.
//
// Steps:
//  1. len(s) <= 1 ⇒ return a copy.
//  2. Split at the midpoint, sort both halves recursively.
//  3. Merge by repeated head comparison; leftovers are appended verbatim.
func MergeFunc[S ~[]E, E any](s S, less func(a, b E) bool) S {
	if len(s) <= 1 {
		out := make(S, len(s))
		copy(out, s)

		return out
	}

	mid := len(s) / 2
	left := MergeFunc(s[:mid], less)
	right := MergeFunc(s[mid:], less)

	return mergeRuns(left, right, less)
}

// mergeRuns merges two sorted runs. "left <= right keeps left", so an
// element of right is taken only when it is strictly less.
func mergeRuns[S ~[]E, E any](left, right S, less func(a, b E) bool) S {
	out := make(S, 0, len(left)+len(right))
	i, j := 0, 0
	for i < len(left) && j < len(right) {
		if less(right[j], left[i]) {
			out = append(out, right[j])
			j++
		} else {
			out = append(out, left[i])
			i++
		}
	}
	out = append(out, left[i:]...)
	out = append(out, right[j:]...)

	return out
}
