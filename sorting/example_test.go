package sorting_test

import (
	"fmt"

	"github.com/katalvlaran/lvlds/sorting"
)

// ExampleBubble sorts a small slice in place.
func ExampleBubble() {
	xs := []int{3, 1, 5, 2}
	sorting.Bubble(xs)
	fmt.Println(xs)
	// Output:
	// [1 2 3 5]
}

// ExampleMerge returns a sorted copy and leaves the input alone.
func ExampleMerge() {
	in := []int{31, 4, 88, 1, 4, 2, 42}
	out := sorting.Merge(in)
	fmt.Println(in)
	fmt.Println(out)
	// Output:
	// [31 4 88 1 4 2 42]
	// [1 2 4 4 31 42 88]
}

// ExampleQuick uses an explicit seed for a reproducible pivot stream.
func ExampleQuick() {
	xs := []int{31, 4, 88, 1, 4, 2, 42}
	sorting.Quick(xs, sorting.WithSeed(2024))
	fmt.Println(xs)
	// Output:
	// [1 2 4 4 31 42 88]
}

// ExampleMergeFunc sorts records by a single field, preserving ties.
func ExampleMergeFunc() {
	type player struct {
		name  string
		score int
	}
	ps := []player{{"ann", 3}, {"bob", 1}, {"cid", 3}, {"dan", 2}}
	out := sorting.MergeFunc(ps, func(a, b player) bool { return a.score < b.score })
	for _, p := range out {
		fmt.Println(p.name, p.score)
	}
	// Output:
	// bob 1
	// dan 2
	// ann 3
	// cid 3
}
