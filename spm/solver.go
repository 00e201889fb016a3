// SPDX-License-Identifier: MIT
//
// File: solver.go
// Role: The request/lift/feedback loop.

package spm

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"go.uber.org/zap"

	"github.com/TarVK/parity-game-solver/core"
	"github.com/TarVK/parity-game-solver/measure"
	"github.com/TarVK/parity-game-solver/strategy"
)

// Solver runs SPM once on one game with one strategy factory.
type Solver struct {
	game    *core.Game
	factory strategy.Factory
	opts    Options

	eval       *measure.Evaluator
	table      measure.Table
	state      State
	iterations int64
}

// NewSolver validates its inputs and returns a Solver in state Ready.
func NewSolver(g *core.Game, f strategy.Factory, opts ...Option) (*Solver, error) {
	if g == nil {
		return nil, ErrGameNil
	}
	if f == nil {
		return nil, ErrFactoryNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	eval := measure.NewEvaluator(g)
	return &Solver{
		game:    g,
		factory: f,
		opts:    o,
		eval:    eval,
		table:   eval.NewTable(),
		state:   Ready,
	}, nil
}

// Solve builds a Solver and runs it.
func Solve(ctx context.Context, g *core.Game, f strategy.Factory, opts ...Option) (*Result, error) {
	s, err := NewSolver(g, f, opts...)
	if err != nil {
		return nil, err
	}
	return s.Run(ctx)
}

// State returns the current lifecycle state.
func (s *Solver) State() State { return s.state }

// Iterations returns the number of lift attempts made so far.
func (s *Solver) Iterations() int64 { return s.iterations }

// Run executes the solve. It may be called once.
func (s *Solver) Run(ctx context.Context) (*Result, error) {
	if s.state != Ready {
		return nil, fmt.Errorf("%w: state %s", ErrNotReady, s.state)
	}
	s.state = Running
	start := time.Now()
	log := s.opts.Logger.With(zap.Int("nodes", s.game.Len()))
	log.Debug("solve started", zap.Int("max_priority", s.game.MaxPriority()))

	if err := ctx.Err(); err != nil {
		return nil, s.abort(log, s.cancelled(err))
	}

	seq := s.factory(s.game)
	defer seq.Stop()

	interval := int64(s.opts.YieldInterval)
	progressed := false
	for {
		slot, ok := seq.Next(progressed)
		if !ok {
			break
		}
		if s.iterations >= s.opts.MaxIterations {
			return nil, s.abort(log, fmt.Errorf("%w: exceeded %d lift attempts", ErrNonTermination, s.opts.MaxIterations))
		}
		progressed = s.eval.Lift(s.table, slot)
		s.iterations++

		if s.iterations%interval == 0 {
			runtime.Gosched()
			if err := ctx.Err(); err != nil {
				return nil, s.abort(log, s.cancelled(err))
			}
			log.Debug("yield", zap.Int64("iterations", s.iterations))
			s.opts.OnYield(s.iterations)
		}
	}

	s.state = Solved
	res := newResult(s.game, s.table, s.iterations, time.Since(start))
	log.Debug("solve finished",
		zap.Int64("iterations", res.Iterations),
		zap.Int("even", len(res.Even)),
		zap.Int("odd", len(res.Odd)),
		zap.Duration("duration", res.Duration),
	)
	return res, nil
}

// cancelled wraps a context error with the lift count reached.
func (s *Solver) cancelled(err error) error {
	return fmt.Errorf("spm: aborted after %d lift attempts: %w", s.iterations, err)
}

// abort moves the solver to Aborted and returns err.
func (s *Solver) abort(log *zap.Logger, err error) error {
	s.state = Aborted
	log.Debug("solve aborted", zap.Int64("iterations", s.iterations), zap.Error(err))
	return err
}
