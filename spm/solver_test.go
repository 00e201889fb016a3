package spm_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/TarVK/parity-game-solver/builder"
	"github.com/TarVK/parity-game-solver/core"
	"github.com/TarVK/parity-game-solver/measure"
	"github.com/TarVK/parity-game-solver/order"
	"github.com/TarVK/parity-game-solver/parser"
	"github.com/TarVK/parity-game-solver/spm"
	"github.com/TarVK/parity-game-solver/strategy"
)

// SolverSuite groups driver tests that share a context and a default factory.
type SolverSuite struct {
	suite.Suite
	ctx     context.Context
	factory strategy.Factory
}

func (s *SolverSuite) SetupTest() {
	s.ctx = context.Background()
	s.factory = strategy.Compose(order.Input, strategy.Cycle)
}

func (s *SolverSuite) TestInvalidInput() {
	_, err := spm.Solve(s.ctx, nil, s.factory)
	require.True(s.T(), errors.Is(err, spm.ErrGameNil))

	g := core.NewGame(0, nil)
	_, err = spm.Solve(s.ctx, g, nil)
	require.True(s.T(), errors.Is(err, spm.ErrFactoryNil))

	_, err = spm.Solve(s.ctx, g, s.factory, spm.WithYieldInterval(0))
	require.True(s.T(), errors.Is(err, spm.ErrOptionViolation))

	_, err = spm.Solve(s.ctx, g, s.factory, spm.WithMaxIterations(-5))
	require.True(s.T(), errors.Is(err, spm.ErrOptionViolation))
}

func (s *SolverSuite) TestEmptyGame() {
	solver, err := spm.NewSolver(core.NewGame(0, nil), s.factory)
	require.NoError(s.T(), err)
	require.Equal(s.T(), spm.Ready, solver.State())

	res, err := solver.Run(s.ctx)
	require.NoError(s.T(), err)
	require.Equal(s.T(), spm.Solved, solver.State())
	require.Zero(s.T(), res.Iterations)
	require.Empty(s.T(), res.Even)
	require.Empty(s.T(), res.Odd)
}

func (s *SolverSuite) TestRunTwice() {
	solver, err := spm.NewSolver(mustGame(s.T(), "0 0 0 0;"), s.factory)
	require.NoError(s.T(), err)
	_, err = solver.Run(s.ctx)
	require.NoError(s.T(), err)

	_, err = solver.Run(s.ctx)
	require.True(s.T(), errors.Is(err, spm.ErrNotReady))
	require.Equal(s.T(), spm.Solved, solver.State())
}

func (s *SolverSuite) TestCancelledBeforeStart() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	solver, err := spm.NewSolver(mustGame(s.T(), "0 1 0 0;"), s.factory)
	require.NoError(s.T(), err)
	_, err = solver.Run(ctx)
	require.True(s.T(), errors.Is(err, context.Canceled))
	require.EqualError(s.T(), err, "spm: aborted after 0 lift attempts: context canceled")
	require.Equal(s.T(), spm.Aborted, solver.State())
}

func (s *SolverSuite) TestCancelledAtYield() {
	ast, err := builder.Ring(60)
	require.NoError(s.T(), err)
	g := builder.Build(ast)

	ctx, cancel := context.WithCancel(s.ctx)
	defer cancel()
	yields := 0
	solver, err := spm.NewSolver(g, s.factory,
		spm.WithYieldInterval(1),
		spm.WithOnYield(func(int64) {
			yields++
			cancel()
		}),
	)
	require.NoError(s.T(), err)

	_, err = solver.Run(ctx)
	require.True(s.T(), errors.Is(err, context.Canceled))
	require.EqualError(s.T(), err, "spm: aborted after 2 lift attempts: context canceled")
	require.Equal(s.T(), spm.Aborted, solver.State())
	require.Equal(s.T(), 1, yields)
	require.Equal(s.T(), int64(2), solver.Iterations())
}

func (s *SolverSuite) TestNonTermination() {
	solver, err := spm.NewSolver(randomGame(s.T(), 30, 3), s.factory, spm.WithMaxIterations(5))
	require.NoError(s.T(), err)

	_, err = solver.Run(s.ctx)
	require.True(s.T(), errors.Is(err, spm.ErrNonTermination))
	require.Equal(s.T(), spm.Aborted, solver.State())
	require.Equal(s.T(), int64(5), solver.Iterations())
}

func (s *SolverSuite) TestYieldHookCount() {
	var seen []int64
	res, err := spm.Solve(s.ctx, randomGame(s.T(), 40, 8), s.factory,
		spm.WithYieldInterval(10),
		spm.WithOnYield(func(n int64) { seen = append(seen, n) }),
	)
	require.NoError(s.T(), err)
	require.Len(s.T(), seen, int(res.Iterations/10))
	for i, n := range seen {
		require.Equal(s.T(), int64(10*(i+1)), n)
	}
}

func (s *SolverSuite) TestLogging() {
	obs, logs := observer.New(zapcore.DebugLevel)
	_, err := spm.Solve(s.ctx, mustGame(s.T(), "0 1 0 0;"), s.factory, spm.WithLogger(zap.New(obs)))
	require.NoError(s.T(), err)

	require.Equal(s.T(), 1, logs.FilterMessage("solve started").Len())
	finished := logs.FilterMessage("solve finished").All()
	require.Len(s.T(), finished, 1)
	require.Equal(s.T(), int64(1), finished[0].ContextMap()["odd"])
}

func (s *SolverSuite) TestResultAccessors() {
	res, err := spm.Solve(s.ctx, mustGame(s.T(), "7 1 0 7; 3 0 0 3;"), s.factory)
	require.NoError(s.T(), err)

	w, ok := res.Winner(7)
	require.True(s.T(), ok)
	require.Equal(s.T(), core.Odd, w)
	w, ok = res.Winner(3)
	require.True(s.T(), ok)
	require.Equal(s.T(), core.Even, w)

	m, ok := res.MeasureOf(3)
	require.True(s.T(), ok)
	require.Equal(s.T(), measure.Vector(0, 0), m)

	_, ok = res.MeasureOf(99)
	require.False(s.T(), ok)
	_, ok = res.Winner(99)
	require.False(s.T(), ok)
}

func TestSolverSuite(t *testing.T) {
	suite.Run(t, new(SolverSuite))
}

func TestFixtures_AllCombinations(t *testing.T) {
	for _, fx := range loadFixtures(t) {
		g := mustGame(t, fx.Game)
		wantOdd := fx.Odd
		if wantOdd == nil {
			wantOdd = []int{}
		}
		for name, f := range combos() {
			t.Run(fx.Name+"/"+name, func(t *testing.T) {
				res, err := spm.Solve(context.Background(), g, f)
				require.NoError(t, err)
				require.Equal(t, wantOdd, res.Odd)
				require.Len(t, res.Even, g.Len()-len(wantOdd))
			})
		}
	}
}

// Partitions must not depend on the order, strategy or grouping chosen.
func TestRandomGames_OrderAgnostic(t *testing.T) {
	all := combos()
	for seed := int64(1); seed <= 15; seed++ {
		g := randomGame(t, 30, seed)

		ref, err := spm.Solve(context.Background(), g, strategy.Compose(order.Input, strategy.Cycle))
		require.NoError(t, err)
		require.Len(t, append(slices.Clone(ref.Even), ref.Odd...), g.Len())

		for name, f := range all {
			res, err := spm.Solve(context.Background(), g, f, spm.WithMaxIterations(10_000_000))
			require.NoError(t, err, "seed %d %s", seed, name)

			if diff := cmp.Diff(ref.Odd, res.Odd); diff != "" {
				t.Fatalf("seed %d %s: odd region differs (-want +got):\n%s", seed, name, diff)
			}
			if diff := cmp.Diff(ref.Even, res.Even); diff != "" {
				t.Fatalf("seed %d %s: even region differs (-want +got):\n%s", seed, name, diff)
			}
			assertPartition(t, g, res)
		}
	}
}

func assertPartition(t *testing.T, g *core.Game, res *spm.Result) {
	t.Helper()
	seen := make(map[int]bool, g.Len())
	for _, id := range append(slices.Clone(res.Even), res.Odd...) {
		require.False(t, seen[id], "id %d in both regions", id)
		seen[id] = true
	}
	for _, id := range g.IDs() {
		require.True(t, seen[id], "id %d in no region", id)
	}
}

// The dining philosophers games are large model-checking instances; they
// are exercised when present under testdata/dining.
func TestDiningFixtures(t *testing.T) {
	cases := []struct {
		file string
		odd  []int
	}{
		{"dining_2.invariantly_inevitably_eat.gm", []int{14, 16, 21}},
		{"dining_2.plato_infinitely_often_can_eat.gm", []int{}},
	}
	for _, tc := range cases {
		t.Run(tc.file, func(t *testing.T) {
			path := filepath.Join("testdata", "dining", tc.file)
			f, err := os.Open(path)
			if os.IsNotExist(err) {
				t.Skipf("%s not found", path)
			}
			require.NoError(t, err)
			defer f.Close()

			ast, err := parser.ParseReader(f)
			require.NoError(t, err)
			g := builder.Build(ast)

			for name, fac := range combos() {
				res, err := spm.Solve(context.Background(), g, fac)
				require.NoError(t, err, name)
				got := slices.Clone(res.Odd)
				slices.Sort(got)
				require.Equal(t, tc.odd, got, name)
			}
		})
	}
}
