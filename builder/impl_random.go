// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_random.go: RandomGame and Ring generators.
//
// Determinism:
//   - Node ids are 0..n-1 in ascending order.
//   - Draw order per node is fixed: priority, owner, out-degree, successors,
//     dangling coin. Equal seeds and options give identical games.

package builder

import (
	"fmt"
	"strconv"

	"github.com/TarVK/parity-game-solver/core"
	"github.com/TarVK/parity-game-solver/parser"
)

const (
	methodRandomGame = "RandomGame"
	methodRing       = "Ring"
	minRingNodes     = 1
	minRandomNodes   = 1
)

// RandomGame samples an n-node game. Successors are drawn uniformly with
// replacement, so parallel edges and self-loops occur.
//
// Errors: ErrTooFewNodes when n < 1, ErrNeedRandSource without an RNG.
//
// Complexity: O(n · outDegree).
func RandomGame(n int, opts ...Option) (*parser.AST, error) {
	if n < minRandomNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomGame, n, minRandomNodes, ErrTooFewNodes)
	}
	cfg := newGenConfig(opts...)
	if cfg.rng == nil {
		return nil, fmt.Errorf("%s: %w", methodRandomGame, ErrNeedRandSource)
	}

	rng := cfg.rng
	ast := &parser.AST{Nodes: make([]parser.NodeRecord, n)}
	if cfg.header {
		ast.HasParity = true
		ast.MaxParity = cfg.maxPriority
	}
	for id := 0; id < n; id++ {
		rec := parser.NodeRecord{
			ID:       id,
			Priority: rng.Intn(cfg.maxPriority + 1),
			Owner:    core.Owner(rng.Intn(2)),
		}
		if cfg.outDegree > 0 {
			deg := 1 + rng.Intn(cfg.outDegree)
			rec.Successors = make([]int, deg)
			for j := range rec.Successors {
				rec.Successors[j] = rng.Intn(n)
			}
		}
		if cfg.dangling > 0 && rng.Float64() < cfg.dangling {
			rec.Successors = append(rec.Successors, n+id)
		}
		if cfg.names {
			rec.Name = "v" + strconv.Itoa(id)
		}
		ast.Nodes[id] = rec
	}

	return ast, nil
}

// Ring returns the cycle 0 -> 1 -> ... -> n-1 -> 0 where node i has
// priority i and owner i%2. Every play visits all priorities infinitely
// often, so the lowest one (0) decides: Even wins everywhere.
//
// Errors: ErrTooFewNodes when n < 1.
func Ring(n int) (*parser.AST, error) {
	if n < minRingNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodRing, n, minRingNodes, ErrTooFewNodes)
	}
	ast := &parser.AST{Nodes: make([]parser.NodeRecord, n)}
	for i := 0; i < n; i++ {
		ast.Nodes[i] = parser.NodeRecord{
			ID:         i,
			Priority:   i,
			Owner:      core.Owner(i % 2),
			Successors: []int{(i + 1) % n},
		}
	}
	return ast, nil
}
