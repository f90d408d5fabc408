// SPDX-License-Identifier: MIT

package search

import "golang.org/x/exp/constraints"

// NotFound is returned when the target is absent.
const NotFound = -1

// Linear returns the index of the first element equal to target.
// Complexity: O(n).
func Linear[S ~[]E, E comparable](s S, target E) int {
	for i, v := range s {
		if v == target {
			return i
		}
	}

	return NotFound
}

// Binary returns an index of target in the sorted slice s.
// Complexity: O(log n) time, O(1) space.
func Binary[S ~[]E, E constraints.Ordered](s S, target E) int {
	lo, hi := 0, len(s)-1
	for lo <= hi {
		mid := lo + (hi-lo)/2
		switch {
		case s[mid] == target:
			return mid
		case s[mid] < target:
			lo = mid + 1
		default:
			hi = mid - 1
		}
	}

	return NotFound
}

// Ternary returns an index of target in the sorted slice s.
// Complexity: O(log₃ n) steps, O(log n) recursion depth.
func Ternary[S ~[]E, E constraints.Ordered](s S, target E) int {
	return ternary(s, 0, len(s)-1, target)
}

func ternary[S ~[]E, E constraints.Ordered](s S, left, right int, target E) int {
	if left > right {
		return NotFound
	}
	third := (right - left) / 3
	mid1 := left + third
	mid2 := right - third

	switch {
	case s[mid1] == target:
		return mid1
	case s[mid2] == target:
		return mid2
	case target < s[mid1]:
		return ternary(s, left, mid1-1, target)
	case target > s[mid2]:
		return ternary(s, mid2+1, right, target)
	default:
		return ternary(s, mid1+1, mid2-1, target)
	}
}
