// SPDX-License-Identifier: MIT
// File: simple.go
// Role: quadratic in-place sorts: Bubble, Selection, Insertion.

package sorting

import "golang.org/x/exp/constraints"

// less is the natural strict order for Ordered element types.
func less[T constraints.Ordered](a, b T) bool { return a < b }

// Bubble sorts s in place in non-decreasing order.
// Complexity: O(n²) worst, O(n) on already sorted input.
func Bubble[S ~[]E, E constraints.Ordered](s S) {
	BubbleFunc(s, less[E])
}

// BubbleFunc sorts s in place using less.
//
// Each pass swaps adjacent inversions; the sort stops after the first
// pass that performs no swap. Pass k also leaves the k largest elements
// in their final slots, so the scanned prefix shrinks by one per pass.
func BubbleFunc[S ~[]E, E any](s S, less func(a, b E) bool) {
	last := len(s) - 1
	for swapped := true; swapped && last > 0; last-- {
		swapped = false
		for i := 0; i < last; i++ {
			if less(s[i+1], s[i]) {
				s[i], s[i+1] = s[i+1], s[i]
				swapped = true
			}
		}
	}
}

// Selection sorts s in place in non-decreasing order.
// Complexity: O(n²) in every case.
func Selection[S ~[]E, E constraints.Ordered](s S) {
	SelectionFunc(s, less[E])
}

// SelectionFunc sorts s in place using less: for each position i it finds
// the minimum of s[i:] and swaps it into s[i].
func SelectionFunc[S ~[]E, E any](s S, less func(a, b E) bool) {
	n := len(s)
	for i := 0; i < n-1; i++ {
		minIdx := i
		for j := i + 1; j < n; j++ {
			if less(s[j], s[minIdx]) {
				minIdx = j
			}
		}
		if minIdx != i {
			s[i], s[minIdx] = s[minIdx], s[i]
		}
	}
}

// Insertion sorts s in place in non-decreasing order. It is stable.
// Complexity: O(n²) worst, O(n) on already sorted input.
func Insertion[S ~[]E, E constraints.Ordered](s S) {
	InsertionFunc(s, less[E])
}

// InsertionFunc sorts s in place using less by growing a sorted prefix and
// shifting each new key left past every strictly greater element.
func InsertionFunc[S ~[]E, E any](s S, less func(a, b E) bool) {
	for i := 1; i < len(s); i++ {
		key := s[i]
		j := i - 1
		for j >= 0 && less(key, s[j]) {
			s[j+1] = s[j]
			j--
		}
		s[j+1] = key
	}
}
