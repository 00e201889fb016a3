package strategy

import "github.com/TarVK/parity-game-solver/core"

// testGame: 0 -> 1 -> 2 -> 0 with priorities 1, 2, 1 and a sink 3 of priority 0.
func testGame() *core.Game {
	return core.NewGame(0, []core.Node{
		{ID: 0, Priority: 1, Successors: []int{1}},
		{ID: 1, Priority: 2, Successors: []int{2}},
		{ID: 2, Priority: 1, Successors: []int{0}},
		{ID: 3, Priority: 0, Successors: []int{3}},
	})
}
