// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Owner, Node, Game declarations and the NewGame constructor.

package core

import "fmt"

// Owner identifies the player that chooses the successor at a node.
type Owner uint8

const (
	// Even is player 0; it wins plays whose lowest priority seen infinitely
	// often is even.
	Even Owner = 0

	// Odd is player 1.
	Odd Owner = 1
)

// String returns "even" or "odd".
func (o Owner) String() string {
	switch o {
	case Even:
		return "even"
	case Odd:
		return "odd"
	default:
		return fmt.Sprintf("owner(%d)", uint8(o))
	}
}

// Node is a single vertex of a parity game.
type Node struct {
	// ID is the external identifier of the node, unique within a Game.
	ID int

	// Index is the slot of this node in the Game arena.
	Index int

	// Priority is the non-negative priority of the node.
	Priority int

	// Owner is the player choosing the successor at this node.
	Owner Owner

	// IsEvenPriority caches Priority%2 == 0.
	IsEvenPriority bool

	// Successors holds arena slots of the successor nodes, in declaration order.
	Successors []int

	// Name is an optional display name; empty when absent.
	Name string
}

// Game is an immutable arena of parity game nodes.
//
// nodes keeps input order; slots maps external IDs to arena positions.
type Game struct {
	maxPriority int
	nodes       []Node
	slots       map[int]int
}

// NewGame creates a Game from nodes in input order.
//
// Node.Index and Node.IsEvenPriority are (re)computed here; callers only
// fill ID, Priority, Owner, Successors and Name. Successor entries must be
// arena slots; entries outside [0, len(nodes)) are dropped. Negative
// priorities are clamped to 0. maxPriority is raised to the largest node
// priority when smaller.
//
// Complexity: O(V + E).
func NewGame(maxPriority int, nodes []Node) *Game {
	g := &Game{
		maxPriority: maxPriority,
		nodes:       make([]Node, len(nodes)),
		slots:       make(map[int]int, len(nodes)),
	}
	if g.maxPriority < 0 {
		g.maxPriority = 0
	}

	n := len(nodes)
	for i, src := range nodes {
		succ := make([]int, 0, len(src.Successors))
		for _, s := range src.Successors {
			if s >= 0 && s < n {
				succ = append(succ, s)
			}
		}
		prio := src.Priority
		if prio < 0 {
			prio = 0
		}
		g.nodes[i] = Node{
			ID:             src.ID,
			Index:          i,
			Priority:       prio,
			Owner:          src.Owner,
			IsEvenPriority: prio%2 == 0,
			Successors:     succ,
			Name:           src.Name,
		}
		g.slots[src.ID] = i
		if prio > g.maxPriority {
			g.maxPriority = prio
		}
	}

	return g
}
