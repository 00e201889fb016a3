// SPDX-License-Identifier: MIT
//
// options.go: functional options for the generators.
//
// Option constructors validate and panic on meaningless inputs; generators
// themselves return sentinel errors.

package builder

import "math/rand"

// Option customizes a generator by mutating its genConfig.
type Option func(*genConfig)

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) Option {
	return func(c *genConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *genConfig) {
		c.rng = r
	}
}

// WithMaxPriority bounds generated priorities to 0..p. Panics if p < 0.
func WithMaxPriority(p int) Option {
	if p < 0 {
		panic("builder: WithMaxPriority(p<0)")
	}
	return func(c *genConfig) {
		c.maxPriority = p
	}
}

// WithOutDegree gives every node between 1 and d successors; d == 0 makes
// every node a dead end. Panics if d < 0.
func WithOutDegree(d int) Option {
	if d < 0 {
		panic("builder: WithOutDegree(d<0)")
	}
	return func(c *genConfig) {
		c.outDegree = d
	}
}

// WithDangling appends, with probability p per node, one successor id that
// names no node. Panics unless 0 <= p <= 1.
func WithDangling(p float64) Option {
	if p < 0 || p > 1 {
		panic("builder: WithDangling(p not in [0,1])")
	}
	return func(c *genConfig) {
		c.dangling = p
	}
}

// WithNames names every generated node "v<id>".
func WithNames() Option {
	return func(c *genConfig) {
		c.names = true
	}
}

// WithHeader emits a "parity <maxPriority>;" header.
func WithHeader() Option {
	return func(c *genConfig) {
		c.header = true
	}
}
