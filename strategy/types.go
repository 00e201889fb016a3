package strategy

import (
	"github.com/TarVK/parity-game-solver/core"
	"github.com/TarVK/parity-game-solver/order"
)

// Sequence yields arena slots to lift and consumes the outcome of each lift.
type Sequence interface {
	// Next reports whether the previously returned slot progressed and
	// returns the next slot. ok is false once the sequence has ended.
	Next(progressed bool) (slot int, ok bool)

	// Stop releases the sequence. Further Next calls return ok == false.
	Stop()
}

// Strategy turns a candidate list of slots of g into a Sequence.
type Strategy func(g *core.Game, list []int) Sequence

// Factory builds a ready Sequence for a whole game.
type Factory func(g *core.Game) Sequence

// Compose applies base order o to the game and hands the list to s.
func Compose(o order.Order, s Strategy) Factory {
	return func(g *core.Game) Sequence {
		return s(g, o(g))
	}
}
