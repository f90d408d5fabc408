// Package search locates a target value in a slice.
//
//   - Linear scans any slice of comparable values in O(n).
//   - Binary halves a sorted range per step, O(log n), iteratively.
//   - Ternary splits a sorted range in three with two midpoints,
//     O(log₃ n) steps, recursively.
//
// All functions return the index of a match or NotFound (-1). Binary and
// Ternary require s to be sorted in non-decreasing order; on unsorted input
// the result is unspecified but the call never panics. When the target
// occurs several times any one of its indices may be returned.
package search
