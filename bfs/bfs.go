package bfs

import (
	"errors"
	"fmt"

	"github.com/TarVK/parity-game-solver/core"
)

var (
	// ErrGameNil is returned if a nil game pointer is passed.
	ErrGameNil = errors.New("bfs: game is nil")

	// ErrStartOutOfRange is returned when a root is not a slot of the game.
	ErrStartOutOfRange = errors.New("bfs: start slot out of range")
)

// walker holds the state shared by all trees of one forest.
type walker struct {
	game    *core.Game
	queue   []int
	visited []bool
	order   []int
}

// Forest runs BFS from every root in turn, skipping roots already visited
// by an earlier tree, and returns the visit order.
func Forest(g *core.Game, roots []int) ([]int, error) {
	if g == nil {
		return nil, ErrGameNil
	}
	n := g.Len()
	for _, r := range roots {
		if r < 0 || r >= n {
			return nil, fmt.Errorf("%w: %d", ErrStartOutOfRange, r)
		}
	}

	w := &walker{
		game:    g,
		queue:   make([]int, 0, n),
		visited: make([]bool, n),
		order:   make([]int, 0, n),
	}
	for _, r := range roots {
		if !w.visited[r] {
			w.tree(r)
		}
	}
	return w.order, nil
}

// tree drains the queue seeded with root.
func (w *walker) tree(root int) {
	w.visited[root] = true
	w.queue = append(w.queue[:0], root)
	for head := 0; head < len(w.queue); head++ {
		slot := w.queue[head]
		w.order = append(w.order, slot)
		for _, succ := range w.game.Node(slot).Successors {
			if !w.visited[succ] {
				w.visited[succ] = true
				w.queue = append(w.queue, succ)
			}
		}
	}
}
