// SPDX-License-Identifier: MIT
//
// File: evaluator.go
// Role: Progress and Lift over a slot-indexed measure table.

package measure

import "github.com/TarVK/parity-game-solver/core"

// Table holds one Measure per arena slot of a game.
type Table []Measure

// TopCount returns how many entries of t are Top.
func (t Table) TopCount() int {
	n := 0
	for i := range t {
		if t[i].top {
			n++
		}
	}
	return n
}

// Evaluator computes progress measures for one game.
// It is immutable after construction and may be shared by several tables.
type Evaluator struct {
	game   *core.Game
	bounds []int
}

// NewEvaluator precomputes the component bounds of g: for odd i the number
// of nodes with priority i, for even i zero.
//
// Complexity: O(V).
func NewEvaluator(g *core.Game) *Evaluator {
	return &Evaluator{game: g, bounds: g.OddCounts()}
}

// Bounds returns a copy of the per-component maxima.
func (e *Evaluator) Bounds() []int {
	out := make([]int, len(e.bounds))
	copy(out, e.bounds)
	return out
}

// Minimal returns a fresh all-zero vector of length MaxPriority+1.
func (e *Evaluator) Minimal() Measure {
	return Measure{vec: make([]int, len(e.bounds))}
}

// NewTable returns a table with every slot at the minimal vector.
//
// Complexity: O(V·d).
func (e *Evaluator) NewTable() Table {
	t := make(Table, e.game.Len())
	for i := range t {
		t[i] = e.Minimal()
	}
	return t
}

// Progress returns the least measure v can claim through its successor w,
// given the current table t. v and w are arena slots.
//
// Complexity: O(d).
func (e *Evaluator) Progress(t Table, v, w int) Measure {
	mw := t[w]
	if mw.top {
		return Top()
	}

	node := e.game.Node(v)
	vec := make([]int, len(e.bounds))
	copy(vec, mw.vec)
	for i := node.Priority + 1; i < len(vec); i++ {
		vec[i] = 0
	}
	if node.IsEvenPriority {
		return Measure{vec: vec}
	}

	for i := node.Priority; i >= 0; i -= 2 {
		if vec[i] < e.bounds[i] {
			vec[i]++
			return Measure{vec: vec}
		}
		vec[i] = 0
	}
	return Top()
}

// Lift recomputes t[v] from v's successors and reports whether it changed.
// Even owners take the minimum over successors, Odd owners the maximum.
// The stored value never decreases.
//
// Complexity: O(k·d) for out-degree k.
func (e *Evaluator) Lift(t Table, v int) bool {
	node := e.game.Node(v)

	var acc Measure
	if node.Owner == core.Even {
		acc = Top()
		for _, w := range node.Successors {
			acc = Min(acc, e.Progress(t, v, w))
		}
	} else {
		acc = e.Minimal()
		for _, w := range node.Successors {
			acc = Max(acc, e.Progress(t, v, w))
		}
	}

	old := t[v]
	next := Max(old, acc)
	t[v] = next
	return Compare(old, next) != 0
}
