// SPDX-License-Identifier: MIT
//
// File: order.go
// Role: Base order implementations.

package order

import (
	"sort"

	"github.com/TarVK/parity-game-solver/bfs"
	"github.com/TarVK/parity-game-solver/core"
)

// Order computes the initial candidate list for a game as arena slots.
type Order func(g *core.Game) []int

// Input returns the slots in arena order.
func Input(g *core.Game) []int { return g.Slots() }

// Random returns an Order that shuffles the arena order with a source
// seeded by seed. seed == 0 uses defaultRNGSeed.
func Random(seed int64) Order {
	return func(g *core.Game) []int {
		slots := g.Slots()
		shuffleIntsInPlace(slots, rngFromSeed(seed))
		return slots
	}
}

// Priority returns the slots sorted by priority, descending. Ties keep
// arena order.
func Priority(g *core.Game) []int {
	slots := g.Slots()
	sort.SliceStable(slots, func(i, j int) bool {
		return g.Node(slots[i]).Priority > g.Node(slots[j]).Priority
	})
	return slots
}

// Graph runs a breadth-first forest over successor edges, starting a new
// tree at every not yet visited slot in arena order, and returns the visit
// order reversed. Nodes late in a chain come first, so a successful lift
// is followed by attempts on its predecessors.
func Graph(g *core.Game) []int {
	out, err := bfs.Forest(g, g.Slots())
	if err != nil {
		// roots are the game's own slots
		panic(err)
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// Gain orders slots so that nodes likely to move their measure furthest
// come first: odd priority before even, then Odd owner before Even owner,
// then ascending priority. Remaining ties keep arena order.
func Gain(g *core.Game) []int {
	slots := g.Slots()
	sort.SliceStable(slots, func(i, j int) bool {
		a, b := g.Node(slots[i]), g.Node(slots[j])
		if a.IsEvenPriority != b.IsEvenPriority {
			return !a.IsEvenPriority
		}
		if a.Owner != b.Owner {
			return a.Owner == core.Odd
		}
		return a.Priority < b.Priority
	})
	return slots
}
