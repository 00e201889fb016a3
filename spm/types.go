package spm

import (
	"errors"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/TarVK/parity-game-solver/core"
	"github.com/TarVK/parity-game-solver/measure"
)

// Sentinel errors for the solver.
var (
	// ErrGameNil is returned when a nil *core.Game is passed.
	ErrGameNil = errors.New("spm: game is nil")

	// ErrFactoryNil is returned when no strategy factory is supplied.
	ErrFactoryNil = errors.New("spm: strategy factory is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("spm: invalid option supplied")

	// ErrNotReady is returned by Run on a Solver that is not in state Ready.
	ErrNotReady = errors.New("spm: solver already ran")

	// ErrNonTermination is returned when the lift cap is exceeded.
	ErrNonTermination = errors.New("spm: non-terminating order")
)

// DefaultYieldInterval is the number of lift attempts between yields.
const DefaultYieldInterval = 5000

// State is the lifecycle state of a Solver.
type State int32

const (
	Ready   State = iota // created, not yet run
	Running              // inside Run
	Solved               // sequence ended, result available
	Aborted              // cancelled or non-terminating
)

func (s State) String() string {
	switch s {
	case Ready:
		return "ready"
	case Running:
		return "running"
	case Solved:
		return "solved"
	case Aborted:
		return "aborted"
	default:
		return fmt.Sprintf("state(%d)", int32(s))
	}
}

// Option configures a Solver.
type Option func(*Options)

// Options holds solver parameters.
type Options struct {
	YieldInterval int
	MaxIterations int64
	Logger        *zap.Logger
	OnYield       func(iterations int64)

	err error
}

// DefaultOptions returns the defaults listed in the package documentation.
func DefaultOptions() Options {
	return Options{
		YieldInterval: DefaultYieldInterval,
		MaxIterations: math.MaxInt64,
		Logger:        zap.NewNop(),
		OnYield:       func(int64) {},
	}
}

// WithYieldInterval sets the number of lift attempts between yields.
// n must be positive.
func WithYieldInterval(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: yield interval must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.YieldInterval = n
	}
}

// WithMaxIterations caps the number of lift attempts. n must be positive.
func WithMaxIterations(n int64) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: max iterations must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxIterations = n
	}
}

// WithLogger sets the logger; nil keeps the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnYield registers a hook run at every yield point with the number of
// lift attempts so far.
func WithOnYield(fn func(iterations int64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnYield = fn
		}
	}
}

// Result is the outcome of a completed solve.
type Result struct {
	// Even and Odd hold the node ids won by each player, in input order.
	Even []int `json:"even" yaml:"even"`
	Odd  []int `json:"odd" yaml:"odd"`

	// Iterations counts lift attempts.
	Iterations int64 `json:"iterations" yaml:"iterations"`

	// Measures is indexed by arena slot.
	Measures measure.Table `json:"-" yaml:"-"`

	Duration time.Duration `json:"duration" yaml:"duration"`

	game *core.Game
}

// newResult splits g into winning regions according to table.
func newResult(g *core.Game, table measure.Table, iterations int64, d time.Duration) *Result {
	r := &Result{
		Even:       make([]int, 0, g.Len()),
		Odd:        make([]int, 0, table.TopCount()),
		Iterations: iterations,
		Measures:   table,
		Duration:   d,
		game:       g,
	}
	for slot := range table {
		id := g.Node(slot).ID
		if table[slot].IsTop() {
			r.Odd = append(r.Odd, id)
		} else {
			r.Even = append(r.Even, id)
		}
	}
	return r
}

// MeasureOf returns the final measure of the node with the given id.
func (r *Result) MeasureOf(id int) (measure.Measure, bool) {
	slot, ok := r.game.Lookup(id)
	if !ok {
		return measure.Measure{}, false
	}
	return r.Measures[slot], true
}

// Winner returns the player winning from the node with the given id.
func (r *Result) Winner(id int) (core.Owner, bool) {
	m, ok := r.MeasureOf(id)
	if !ok {
		return core.Even, false
	}
	if m.IsTop() {
		return core.Odd, true
	}
	return core.Even, true
}
