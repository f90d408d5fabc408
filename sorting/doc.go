// Package sorting implements the classic comparison sorts over Go slices:
// bubble, selection, insertion, merge and randomized quick sort.
//
// What
//
//   - Every algorithm comes in two forms: an Ordered form (Bubble, Merge, ...)
//     for types satisfying constraints.Ordered, and a Func form (BubbleFunc,
//     MergeFunc, ...) taking a strict "less" comparator.
//   - Bubble, Selection, Insertion and Quick sort in place.
//   - Merge returns a freshly allocated slice and never touches its input.
//
// Stability
//
//	Merge and Insertion are stable: equal elements keep their input order.
//	Merge resolves ties by taking from the left half first.
//	Bubble is stable as a side effect of swapping only on strict inversions.
//	Selection and Quick are not stable.
//
// Complexity
//
//	Bubble:    O(n²) worst/average, O(n) best (early exit),  O(1) space.
//	Selection: O(n²) in all cases,                            O(1) space.
//	Insertion: O(n²) worst/average, O(n) best,               O(1) space.
//	Merge:     O(n log n) in all cases,                       O(n) space.
//	Quick:     O(n log n) expected, O(n²) worst,             O(log n) stack.
//
// Determinism
//
//	Quick draws its pivots from a *rand.Rand. Without options it uses a fixed
//	default seed, so two calls on equal inputs perform identical swaps.
//	Use WithSeed or WithRand to pick another stream.
//
// Usage
//
//	xs := []int{31, 4, 88, 1, 4, 2, 42}
//	sorting.Quick(xs, sorting.WithSeed(7))
//	// xs == [1 2 4 4 31 42 88]
//
//	ys := sorting.Merge([]string{"b", "c", "a"})
//	// ys == [a b c]
package sorting
