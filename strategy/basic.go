// SPDX-License-Identifier: MIT
//
// File: basic.go
// Role: List-scanning strategies: Cycle, Repeat and Adaptive.

package strategy

import "github.com/TarVK/parity-game-solver/core"

// Cycle scans list round-robin and stops after len(list) consecutive
// failures, that is after one full pass without progress.
func Cycle(_ *core.Game, list []int) Sequence {
	return run(list, func(visit visitFunc) {
		fails := failCounter{limit: len(list)}
		for {
			for _, v := range list {
				progressed, alive := visit(v)
				if !alive || fails.observe(progressed) {
					return
				}
			}
		}
	})
}

// Repeat lifts each node of list until a lift fails, then moves on. A node
// visit fails when its first lift fails; the sequence stops after len(list)
// failed visits in a row.
func Repeat(_ *core.Game, list []int) Sequence {
	return run(list, func(visit visitFunc) {
		fails := failCounter{limit: len(list)}
		for {
			for _, v := range list {
				progressed, alive := visit(v)
				if !alive {
					return
				}
				if fails.observe(progressed) {
					return
				}
				for progressed {
					if progressed, alive = visit(v); !alive {
						return
					}
				}
			}
		}
	})
}

// Adaptive keeps list in a linked order. After a success it continues with
// the next node, wrapping to the head at the end. After a failure the node
// moves to the tail and the scan restarts at the head. It stops after
// len(list) consecutive failures.
func Adaptive(_ *core.Game, list []int) Sequence {
	return run(list, func(visit visitFunc) {
		links := newLinkedList(len(list))
		fails := failCounter{limit: len(list)}
		cur := links.head
		for {
			progressed, alive := visit(list[cur])
			if !alive || fails.observe(progressed) {
				return
			}
			if progressed {
				if cur = links.next[cur]; cur == none {
					cur = links.head
				}
				continue
			}
			links.moveToBack(cur)
			cur = links.head
		}
	})
}
