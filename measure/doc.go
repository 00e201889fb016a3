// Package measure implements small progress measures and the lift operator
// of the Small Progress Measures (SPM) parity game algorithm.
//
// What
//
//   - Measure is a tagged value: either a Vector of naturals with one
//     component per priority 0..MaxPriority, or Top ("Odd wins").
//   - Compare orders measures lexicographically from index 0 upward; Top is
//     greater than every vector and equal to itself.
//   - Evaluator precomputes the per-component bounds of a game and offers
//     Progress (one edge) and Lift (one node) over a slot-indexed Table.
//
// Semantics
//
//	Progress(t, v, w) copies t[w], zeroes every component above v's
//	priority and, when that priority is odd, increments the copy at the
//	odd indices from v's priority downward with carry. Running past index
//	0 yields Top. Lift takes the minimum over all successors for an Even
//	owner (Top when there are none) and the maximum for an Odd owner (the
//	all-zero vector when there are none), then stores max(old, new).
//
// Determinism & purity
//
//	Progress and Compare are pure. Lift mutates only t[v].
//
// Complexity (d = MaxPriority+1, k = out-degree of v)
//
//   - Compare:  O(d)
//   - Progress: O(d) time, O(d) space
//   - Lift:     O(k·d)
package measure
