// SPDX-License-Identifier: MIT

package sorting

import "math/rand"

// Option configures the randomized sorts (currently Quick and QuickFunc).
type Option func(*Options)

// Options holds the tunables of randomized sorts.
type Options struct {
	// Rand is the pivot source. Nil means "derive from Seed".
	Rand *rand.Rand

	// Seed feeds the default pivot source when Rand is nil.
	// Zero selects the package default seed.
	Seed int64
}

// DefaultOptions returns Options with no explicit source and Seed == 0.
func DefaultOptions() Options {
	return Options{}
}

// WithSeed selects a deterministic pivot stream.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithRand supplies a caller-owned pivot source. A nil r is ignored.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r != nil {
			o.Rand = r
		}
	}
}

// source resolves the pivot generator for one sort call.
func (o Options) source() *rand.Rand {
	if o.Rand != nil {
		return o.Rand
	}

	return rngFromSeed(o.Seed)
}
