// SPDX-License-Identifier: MIT
//
// config.go: generator configuration and deterministic defaults.
//
// Defaults:
//   • rng         = nil   (stochastic generators refuse to run)
//   • maxPriority = 4
//   • outDegree   = 2
//   • dangling    = 0.0
//   • names       = false
//   • header      = false

package builder

import "math/rand"

const (
	defaultMaxPriority = 4
	defaultOutDegree   = 2
)

// genConfig aggregates all knobs used by generators. Passed by value.
type genConfig struct {
	rng         *rand.Rand
	maxPriority int
	outDegree   int
	dangling    float64
	names       bool
	header      bool
}

// newGenConfig applies opts in order over the defaults (last wins).
func newGenConfig(opts ...Option) genConfig {
	cfg := genConfig{
		maxPriority: defaultMaxPriority,
		outDegree:   defaultOutDegree,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
