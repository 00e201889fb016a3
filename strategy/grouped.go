// SPDX-License-Identifier: MIT
//
// File: grouped.go
// Role: Per-priority grouping around any inner strategy.

package strategy

import (
	"sort"

	"github.com/TarVK/parity-game-solver/core"
)

// buckets splits list by node priority, keeping list order inside each
// bucket, and returns the non-empty buckets from highest to lowest priority.
func buckets(g *core.Game, list []int) [][]int {
	byPriority := make(map[int][]int)
	for _, slot := range list {
		p := g.Node(slot).Priority
		byPriority[p] = append(byPriority[p], slot)
	}
	priorities := make([]int, 0, len(byPriority))
	for p := range byPriority {
		priorities = append(priorities, p)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(priorities)))

	out := make([][]int, len(priorities))
	for i, p := range priorities {
		out[i] = byPriority[p]
	}
	return out
}

// Grouped runs inner on one priority bucket at a time, from the highest
// priority down, each time with a fresh inner Sequence driven to its end.
// Rounds over all buckets repeat until a whole round sees no progress.
func Grouped(inner Strategy) Strategy {
	return func(g *core.Game, list []int) Sequence {
		groups := buckets(g, list)
		return run(list, func(visit visitFunc) {
			fails := failCounter{limit: len(groups)}
			for {
				for _, group := range groups {
					progressed, alive := drain(visit, inner(g, group))
					if !alive || fails.observe(progressed) {
						return
					}
				}
			}
		})
	}
}

// drain forwards every slot of seq through visit until seq ends. It reports
// whether any lift progressed and whether the outer sequence is still alive.
func drain(visit visitFunc, seq Sequence) (progressed, alive bool) {
	defer seq.Stop()
	feedback := false
	for {
		slot, ok := seq.Next(feedback)
		if !ok {
			return progressed, true
		}
		if feedback, alive = visit(slot); !alive {
			return progressed, false
		}
		progressed = progressed || feedback
	}
}
