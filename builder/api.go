// SPDX-License-Identifier: MIT
// Package: builder
//
// api.go: Build: AST -> core.Game.

package builder

import (
	"golang.org/x/text/unicode/norm"

	"github.com/TarVK/parity-game-solver/core"
	"github.com/TarVK/parity-game-solver/parser"
)

// Build links ast into a Game.
//
// Slots are assigned in first-declaration order. Successor ids without a
// matching record are dropped. Names are NFC-normalized. A nil ast yields
// an empty game.
//
// Complexity: O(V + E) time and space.
func Build(ast *parser.AST) *core.Game {
	if ast == nil {
		return core.NewGame(0, nil)
	}

	// 1) slot per distinct id; the last record with an id defines it
	slots := make(map[int]int, len(ast.Nodes))
	defs := make([]*parser.NodeRecord, 0, len(ast.Nodes))
	for i := range ast.Nodes {
		rec := &ast.Nodes[i]
		if slot, ok := slots[rec.ID]; ok {
			defs[slot] = rec
			continue
		}
		slots[rec.ID] = len(defs)
		defs = append(defs, rec)
	}

	// 2) resolve successor ids, dropping dangling ones
	nodes := make([]core.Node, len(defs))
	for slot, rec := range defs {
		succ := make([]int, 0, len(rec.Successors))
		for _, id := range rec.Successors {
			if s, ok := slots[id]; ok {
				succ = append(succ, s)
			}
		}
		nodes[slot] = core.Node{
			ID:         rec.ID,
			Priority:   rec.Priority,
			Owner:      rec.Owner,
			Successors: succ,
			Name:       norm.NFC.String(rec.Name),
		}
	}

	maxPriority := 0
	if ast.HasParity {
		maxPriority = ast.MaxParity
	}
	return core.NewGame(maxPriority, nodes)
}
