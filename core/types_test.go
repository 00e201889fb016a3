package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/TarVK/parity-game-solver/core"
)

// newTriangle builds 10 -> 20 -> 30 -> 10 with an extra 30 -> 30 loop.
func newTriangle() *core.Game {
	return core.NewGame(0, []core.Node{
		{ID: 10, Priority: 3, Owner: core.Odd, Successors: []int{1}},
		{ID: 20, Priority: 2, Owner: core.Even, Successors: []int{2}},
		{ID: 30, Priority: 1, Owner: core.Even, Successors: []int{0, 2}, Name: "c"},
	})
}

func TestNewGame_DerivesIndexParityAndMaxPriority(t *testing.T) {
	g := newTriangle()

	require.Equal(t, 3, g.Len())
	require.Equal(t, 3, g.MaxPriority(), "max priority raised to largest node priority")
	for i, n := range g.Nodes() {
		require.Equal(t, i, n.Index)
		require.Equal(t, n.Priority%2 == 0, n.IsEvenPriority)
	}
	require.Equal(t, "c", g.Node(2).Name)
}

func TestNewGame_KeepsDeclaredMaxPriority(t *testing.T) {
	g := core.NewGame(6, []core.Node{{ID: 0, Priority: 1, Successors: []int{0}}})
	require.Equal(t, 6, g.MaxPriority())
	require.Len(t, g.OddCounts(), 7)
}

func TestNewGame_DropsOutOfRangeSlots(t *testing.T) {
	g := core.NewGame(0, []core.Node{
		{ID: 0, Successors: []int{0, 5, -1}},
	})
	require.Equal(t, []int{0}, g.Node(0).Successors)
}

func TestLookupAndIDs(t *testing.T) {
	g := newTriangle()

	slot, ok := g.Lookup(30)
	require.True(t, ok)
	require.Equal(t, 2, slot)

	_, ok = g.Lookup(99)
	require.False(t, ok)

	require.Equal(t, []int{10, 20, 30}, g.IDs())
	require.Equal(t, []int{0, 1, 2}, g.Slots())
}

func TestPredecessors(t *testing.T) {
	g := newTriangle()
	require.Equal(t, [][]int{{2}, {0}, {1, 2}}, g.Predecessors())
}

func TestOddCounts(t *testing.T) {
	g := core.NewGame(0, []core.Node{
		{ID: 0, Priority: 1},
		{ID: 1, Priority: 1},
		{ID: 2, Priority: 2},
		{ID: 3, Priority: 3},
	})
	require.Equal(t, []int{0, 2, 0, 1}, g.OddCounts())
}

func TestStats(t *testing.T) {
	g := core.NewGame(0, []core.Node{
		{ID: 0, Priority: 1, Owner: core.Odd, Successors: []int{1}},
		{ID: 1, Priority: 0, Owner: core.Even},
	})
	require.Equal(t, core.Stats{
		Nodes:       2,
		Edges:       1,
		EvenOwned:   1,
		OddOwned:    1,
		MaxPriority: 1,
		DeadEnds:    1,
	}, g.Stats())
}

func TestOwnerString(t *testing.T) {
	require.Equal(t, "even", core.Even.String())
	require.Equal(t, "odd", core.Odd.String())
	require.Equal(t, "owner(7)", core.Owner(7).String())
}
