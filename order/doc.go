// Package order provides the base orders of the SPM solver: functions that
// map a game to the initial list of arena slots a lifting strategy scans.
//
// What
//
//   - Input:    arena order, as the game was written.
//   - Random:   seeded Fisher–Yates shuffle of the arena order.
//   - Priority: stable sort by priority, highest first.
//   - Graph:    breadth-first forest over successor edges, rooted at each
//     unvisited node in input order, then reversed.
//   - Gain:     odd priorities first, then Odd-owned nodes, then ascending
//     priority.
//
// Every Order returns a fresh slice holding each slot exactly once.
//
// Determinism
//
//	All orders are deterministic. Random draws from a math/rand source
//	seeded per call, so the same seed yields the same permutation for the
//	same game; seed 0 selects a fixed default.
//
// Complexity (V = nodes, E = edges)
//
//   - Input, Random:   O(V)
//   - Priority, Gain:  O(V log V)
//   - Graph:           O(V + E)
package order
