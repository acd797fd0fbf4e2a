package disk

import "math/rand"

// Option customizes SmallestEnclosingDisk. It mutates a config before the
// Welzl recursion begins.
type Option func(*config)

type config struct {
	rng *rand.Rand // optional RNG; nil means the input order is left untouched
}

// WithRand supplies an explicit *rand.Rand used to shuffle the input points
// before running the recursion, giving the expected O(n) running time.
// Without it, points are processed in the order given — still correct, just
// not randomized.
func WithRand(r *rand.Rand) Option {
	return func(c *config) {
		if r != nil {
			c.rng = r
		}
	}
}

// WithSeed is a convenience wrapper around WithRand that seeds a new
// *rand.Rand deterministically.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}
