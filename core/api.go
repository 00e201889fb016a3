// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only getters over the Game arena.
// Policy:
//   - No algorithms or hidden state here.
//   - Returned slices that alias the arena are documented as read-only.

package core

// MaxPriority returns the largest priority that progress measures must cover.
func (g *Game) MaxPriority() int { return g.maxPriority }

// Len returns the number of nodes in the game.
func (g *Game) Len() int { return len(g.nodes) }

// Node returns the node stored at slot. The returned pointer aliases the
// arena and must be treated as read-only.
//
// Complexity: O(1).
func (g *Game) Node(slot int) *Node { return &g.nodes[slot] }

// Lookup returns the arena slot of the node with the given external id.
//
// Complexity: O(1).
func (g *Game) Lookup(id int) (int, bool) {
	slot, ok := g.slots[id]
	return slot, ok
}

// Nodes returns the arena in input order. The slice is shared with the Game
// and must not be modified.
func (g *Game) Nodes() []Node { return g.nodes }

// IDs returns the external ids of all nodes in input order.
//
// Complexity: O(V).
func (g *Game) IDs() []int {
	ids := make([]int, len(g.nodes))
	for i := range g.nodes {
		ids[i] = g.nodes[i].ID
	}
	return ids
}

// Slots returns 0..Len()-1, the input order expressed as arena slots.
func (g *Game) Slots() []int {
	slots := make([]int, len(g.nodes))
	for i := range slots {
		slots[i] = i
	}
	return slots
}
