package spm_test

import (
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/TarVK/parity-game-solver/builder"
	"github.com/TarVK/parity-game-solver/core"
	"github.com/TarVK/parity-game-solver/order"
	"github.com/TarVK/parity-game-solver/parser"
	"github.com/TarVK/parity-game-solver/strategy"
)

// fixture is one entry of testdata/fixtures.yaml.
type fixture struct {
	Name string `yaml:"name"`
	Game string `yaml:"game"`
	Odd  []int  `yaml:"odd"`
}

func loadFixtures(t *testing.T) []fixture {
	t.Helper()
	data, err := os.ReadFile("testdata/fixtures.yaml")
	require.NoError(t, err)
	var out []fixture
	require.NoError(t, yaml.Unmarshal(data, &out))
	require.NotEmpty(t, out)
	return out
}

func mustGame(t testing.TB, text string) *core.Game {
	t.Helper()
	ast, err := parser.Parse(text)
	require.NoError(t, err)
	return builder.Build(ast)
}

func randomGame(t testing.TB, n int, seed int64) *core.Game {
	t.Helper()
	ast, err := builder.RandomGame(n,
		builder.WithSeed(seed), builder.WithMaxPriority(6), builder.WithOutDegree(3))
	require.NoError(t, err)
	return builder.Build(ast)
}

// combos returns every base order × strategy × grouping factory.
func combos() map[string]strategy.Factory {
	orders := map[string]order.Order{
		"input":    order.Input,
		"random":   order.Random(11),
		"priority": order.Priority,
		"graph":    order.Graph,
		"gain":     order.Gain,
	}
	strategies := map[string]strategy.Strategy{
		"cycle":    strategy.Cycle,
		"repeat":   strategy.Repeat,
		"adaptive": strategy.Adaptive,
		"graph":    strategy.Graph,
	}
	out := make(map[string]strategy.Factory, 2*len(orders)*len(strategies))
	for oName, o := range orders {
		for sName, s := range strategies {
			out[fmt.Sprintf("%s/%s", oName, sName)] = strategy.Compose(o, s)
			out[fmt.Sprintf("%s/%s/grouped", oName, sName)] = strategy.Compose(o, strategy.Grouped(s))
		}
	}
	return out
}
