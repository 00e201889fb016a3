package order_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/TarVK/parity-game-solver/builder"
	"github.com/TarVK/parity-game-solver/core"
	"github.com/TarVK/parity-game-solver/order"
	"github.com/TarVK/parity-game-solver/parser"
)

// sample: priorities [2 1 3 0 1], owners [E O E O E].
const sample = `0 2 0 1; 1 1 1 2; 2 3 0 0; 3 0 1 3; 4 1 0 0;`

func sampleGame(t *testing.T) *core.Game {
	t.Helper()
	ast, err := parser.Parse(sample)
	require.NoError(t, err)
	return builder.Build(ast)
}

func TestInput(t *testing.T) {
	require.Equal(t, []int{0, 1, 2, 3, 4}, order.Input(sampleGame(t)))
}

func TestPriority(t *testing.T) {
	require.Equal(t, []int{2, 0, 1, 4, 3}, order.Priority(sampleGame(t)))
}

func TestGain(t *testing.T) {
	require.Equal(t, []int{1, 4, 2, 3, 0}, order.Gain(sampleGame(t)))
}

func TestGraph(t *testing.T) {
	require.Equal(t, []int{4, 3, 2, 1, 0}, order.Graph(sampleGame(t)))
}

func TestRandom_Deterministic(t *testing.T) {
	g := sampleGame(t)
	a := order.Random(42)(g)
	b := order.Random(42)(g)
	require.Equal(t, a, b)
	require.Equal(t, order.Random(1)(g), order.Random(0)(g), "seed 0 is the default seed")
}

func TestOrders_ArePermutations(t *testing.T) {
	orders := map[string]order.Order{
		"input":    order.Input,
		"random":   order.Random(7),
		"priority": order.Priority,
		"graph":    order.Graph,
		"gain":     order.Gain,
	}
	for seed := int64(1); seed <= 10; seed++ {
		ast, err := builder.RandomGame(40, builder.WithSeed(seed), builder.WithMaxPriority(5))
		require.NoError(t, err)
		g := builder.Build(ast)
		for name, o := range orders {
			got := o(g)
			sorted := slices.Clone(got)
			slices.Sort(sorted)
			require.Equal(t, g.Slots(), sorted, "%s on seed %d", name, seed)
		}
	}
}

func TestOrders_EmptyGame(t *testing.T) {
	g := core.NewGame(0, nil)
	for _, o := range []order.Order{order.Input, order.Random(3), order.Priority, order.Graph, order.Gain} {
		require.Empty(t, o(g))
	}
}
