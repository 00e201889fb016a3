// SPDX-License-Identifier: MIT

// Package core defines the parity game data model shared by every other
// package: the Owner of a node, the Node record and the Game arena.
//
// What
//
//   - A Game is an immutable arena of nodes in input order. Each node has a
//     unique non-negative ID, a priority, an owner (Even or Odd), an ordered
//     successor list and an optional display name.
//   - Successor lists hold arena slots (Node.Index values), never pointers,
//     so cycles are ordinary data. Predecessors derives the reverse graph.
//   - MaxPriority is fixed at construction and bounds every progress-measure
//     vector built for the game (length MaxPriority+1).
//
// Why
//
//   - Solvers index their measure tables by slot, so every lookup on the hot
//     path is a slice access.
//   - External IDs may be sparse (e.g. 0, 7, 1000); Lookup maps them to
//     slots in O(1).
//
// Determinism
//
//	Nodes, IDs and Predecessors enumerate in arena (input) order.
//
// Concurrency
//
//	A Game is never mutated after NewGame returns; it may be read from any
//	number of goroutines without locking.
//
// Complexity (V = nodes, E = successor entries)
//
//   - NewGame:      O(V + E)
//   - Lookup, Node: O(1)
//   - Predecessors: O(V + E)
//   - Stats:        O(V)
//
// Usage
//
//	g := core.NewGame(2, []core.Node{
//	    {ID: 0, Priority: 1, Owner: core.Odd, Successors: []int{1}},
//	    {ID: 1, Priority: 2, Owner: core.Even, Successors: []int{0}},
//	})
//	slot, ok := g.Lookup(1)
package core
