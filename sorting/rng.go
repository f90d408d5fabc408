// SPDX-License-Identifier: MIT
// File: rng.go
// Role: deterministic RNG factory for randomized pivots.
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share one across goroutines.

package sorting

import "math/rand"

// defaultRNGSeed is the fixed "zero" seed used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// intInRange returns a uniformly distributed index in [lo, hi].
// Requires lo <= hi.
func intInRange(r *rand.Rand, lo, hi int) int {
	return lo + r.Intn(hi-lo+1)
}
