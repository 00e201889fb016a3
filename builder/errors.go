// SPDX-License-Identifier: MIT
//
// errors.go: sentinel errors for the builder package.
//
// Callers branch with errors.Is; implementations add context with %w.

package builder

import "errors"

// ErrTooFewNodes indicates a size parameter below the generator minimum.
var ErrTooFewNodes = errors.New("builder: parameter too small")

// ErrNeedRandSource indicates a stochastic generator was called without
// WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")
