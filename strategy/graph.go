// SPDX-License-Identifier: MIT
//
// File: graph.go
// Role: Graph strategy: predecessor expansion and lift-cycle repetition.
//
// Positions index the candidate list; the reverse graph only contains
// edges between listed nodes. A successful outer lift of root starts a
// breadth-first expansion over predecessors. Every dequeued predecessor is
// lifted and, on success, its own predecessors are enqueued. The queue
// holds paths back to root, so when root itself is dequeued the path
// root -> ... -> root is a cycle of successful lifts, which is then lifted
// in order until one lift fails.

package strategy

import "github.com/TarVK/parity-game-solver/core"

// step is one entry of the path arena: a list position and the arena index
// of the entry it was reached from (none for the root).
type step struct {
	pos, prev int
}

// reverseWithin returns, per list position, the positions of listed
// predecessors in list order.
//
// Complexity: O(V + E) over the listed nodes.
func reverseWithin(g *core.Game, list []int) [][]int {
	posOf := make(map[int]int, len(list))
	for i, slot := range list {
		posOf[slot] = i
	}
	preds := make([][]int, len(list))
	for i, slot := range list {
		for _, succ := range g.Node(slot).Successors {
			if j, ok := posOf[succ]; ok {
				preds[j] = append(preds[j], i)
			}
		}
	}
	return preds
}

// Graph scans list like Cycle, expanding every successful lift over the
// reverse graph. Only outer-scan visits count toward the halting rule.
func Graph(g *core.Game, list []int) Sequence {
	return run(list, func(visit visitFunc) {
		preds := reverseWithin(g, list)
		fails := failCounter{limit: len(list)}
		var (
			arena []step
			queue []int
			cycle []int
		)
		for {
			for root := range list {
				progressed, alive := visit(list[root])
				if !alive || fails.observe(progressed) {
					return
				}
				if !progressed {
					continue
				}

				arena = append(arena[:0], step{pos: root, prev: none})
				queue = queue[:0]
				for _, p := range preds[root] {
					arena = append(arena, step{pos: p, prev: 0})
					queue = append(queue, len(arena)-1)
				}

				loop := none
				for head := 0; head < len(queue); head++ {
					at := queue[head]
					pos := arena[at].pos
					if pos == root {
						loop = at
						break
					}
					if progressed, alive = visit(list[pos]); !alive {
						return
					}
					if progressed {
						for _, p := range preds[pos] {
							arena = append(arena, step{pos: p, prev: at})
							queue = append(queue, len(arena)-1)
						}
					}
				}
				if loop == none {
					continue
				}

				// walk back from the closing entry and drop it, keeping root once
				cycle = cycle[:0]
				for at := arena[loop].prev; at != none; at = arena[at].prev {
					cycle = append(cycle, arena[at].pos)
				}
				for i, j := 0, len(cycle)-1; i < j; i, j = i+1, j-1 {
					cycle[i], cycle[j] = cycle[j], cycle[i]
				}
				if !repeatCycle(visit, list, cycle) {
					return
				}
			}
		}
	})
}

// repeatCycle lifts cycle in order until a lift fails. It reports false if
// the sequence was stopped meanwhile.
func repeatCycle(visit visitFunc, list, cycle []int) bool {
	for {
		for _, pos := range cycle {
			progressed, alive := visit(list[pos])
			if !alive {
				return false
			}
			if !progressed {
				return true
			}
		}
	}
}
