// SPDX-License-Identifier: MIT
//
// File: methods.go
// Role: Derived views: reverse graph, priority buckets and summary stats.

package core

// Predecessors returns the reverse adjacency of the game: for every slot v,
// the slots u with v in u.Successors. A predecessor appears once per
// parallel edge, in arena order of u.
//
// Complexity: O(V + E) time and space.
func (g *Game) Predecessors() [][]int {
	preds := make([][]int, len(g.nodes))
	for u := range g.nodes {
		for _, v := range g.nodes[u].Successors {
			preds[v] = append(preds[v], u)
		}
	}
	return preds
}

// OddCounts returns, for every priority index 0..MaxPriority, the number of
// nodes with that priority when the index is odd, and 0 when it is even.
// These are the per-component bounds of a progress measure.
//
// Complexity: O(V).
func (g *Game) OddCounts() []int {
	counts := make([]int, g.maxPriority+1)
	for i := range g.nodes {
		if p := g.nodes[i].Priority; p%2 == 1 {
			counts[p]++
		}
	}
	return counts
}

// Stats is a snapshot of simple game counters.
type Stats struct {
	Nodes       int `json:"nodes" yaml:"nodes"`
	Edges       int `json:"edges" yaml:"edges"`
	EvenOwned   int `json:"even_owned" yaml:"even_owned"`
	OddOwned    int `json:"odd_owned" yaml:"odd_owned"`
	MaxPriority int `json:"max_priority" yaml:"max_priority"`
	DeadEnds    int `json:"dead_ends" yaml:"dead_ends"` // nodes without successors
}

// Stats counts nodes, edges, ownership and dead ends.
//
// Complexity: O(V).
func (g *Game) Stats() Stats {
	s := Stats{Nodes: len(g.nodes), MaxPriority: g.maxPriority}
	for i := range g.nodes {
		n := &g.nodes[i]
		s.Edges += len(n.Successors)
		if n.Owner == Even {
			s.EvenOwned++
		} else {
			s.OddOwned++
		}
		if len(n.Successors) == 0 {
			s.DeadEnds++
		}
	}
	return s
}
