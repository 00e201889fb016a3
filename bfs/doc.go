// Package bfs walks a core.Game breadth-first over successor edges.
//
// Forest starts a tree at every root that no earlier tree reached and
// returns the slots in visit order, so with roots == g.Slots() every node
// appears exactly once. Successors are expanded in list order, which makes
// the visit sequence reproducible. It is the traversal behind the "graph"
// base order of the solver.
//
// Complexity: O(V + E) time, O(V) memory.
//
//	order, err := bfs.Forest(g, g.Slots())
//	if err != nil {
//	    // ErrGameNil or ErrStartOutOfRange
//	}
package bfs
