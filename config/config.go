package config

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/TarVK/parity-game-solver/order"
	"github.com/TarVK/parity-game-solver/spm"
	"github.com/TarVK/parity-game-solver/strategy"
)

// Sentinel errors for configuration.
var (
	// ErrUnknownOrder is returned for an order name not in OrderNames.
	ErrUnknownOrder = errors.New("config: unknown order")

	// ErrUnknownStrategy is returned for a strategy name not in StrategyNames.
	ErrUnknownStrategy = errors.New("config: unknown strategy")

	// ErrInvalidValue is returned for out-of-range numeric settings.
	ErrInvalidValue = errors.New("config: invalid value")
)

// Base order names.
const (
	OrderInput    = "input"
	OrderRandom   = "random"
	OrderPriority = "priority"
	OrderGraph    = "graph"
	OrderGain     = "gain"
)

// Strategy names.
const (
	StrategyCycle    = "cycle"
	StrategyRepeat   = "repeat"
	StrategyAdaptive = "adaptive"
	StrategyGraph    = "graph"
)

// OrderNames lists the accepted base order names.
var OrderNames = []string{OrderInput, OrderRandom, OrderPriority, OrderGraph, OrderGain}

// StrategyNames lists the accepted strategy names.
var StrategyNames = []string{StrategyCycle, StrategyRepeat, StrategyAdaptive, StrategyGraph}

// Config selects how a game is solved.
type Config struct {
	Order         string `mapstructure:"order" json:"order" yaml:"order"`
	Strategy      string `mapstructure:"strategy" json:"strategy" yaml:"strategy"`
	Grouped       bool   `mapstructure:"grouped" json:"grouped" yaml:"grouped"`
	Seed          int64  `mapstructure:"seed" json:"seed" yaml:"seed"`
	YieldInterval int    `mapstructure:"yield_interval" json:"yield_interval" yaml:"yield_interval"`
	MaxIterations int64  `mapstructure:"max_iterations" json:"max_iterations" yaml:"max_iterations"`
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Order:         OrderInput,
		Strategy:      StrategyCycle,
		YieldInterval: spm.DefaultYieldInterval,
		MaxIterations: math.MaxInt64,
	}
}

// OrderByName resolves a base order. seed is only used by "random".
func OrderByName(name string, seed int64) (order.Order, error) {
	switch name {
	case OrderInput:
		return order.Input, nil
	case OrderRandom:
		return order.Random(seed), nil
	case OrderPriority:
		return order.Priority, nil
	case OrderGraph:
		return order.Graph, nil
	case OrderGain:
		return order.Gain, nil
	}
	return nil, fmt.Errorf("%w: %q (want one of %v)", ErrUnknownOrder, name, OrderNames)
}

// StrategyByName resolves a lifting strategy.
func StrategyByName(name string) (strategy.Strategy, error) {
	switch name {
	case StrategyCycle:
		return strategy.Cycle, nil
	case StrategyRepeat:
		return strategy.Repeat, nil
	case StrategyAdaptive:
		return strategy.Adaptive, nil
	case StrategyGraph:
		return strategy.Graph, nil
	}
	return nil, fmt.Errorf("%w: %q (want one of %v)", ErrUnknownStrategy, name, StrategyNames)
}

// Validate checks names and numeric ranges.
func (c Config) Validate() error {
	if !slices.Contains(OrderNames, c.Order) {
		return fmt.Errorf("%w: %q (want one of %v)", ErrUnknownOrder, c.Order, OrderNames)
	}
	if !slices.Contains(StrategyNames, c.Strategy) {
		return fmt.Errorf("%w: %q (want one of %v)", ErrUnknownStrategy, c.Strategy, StrategyNames)
	}
	if c.YieldInterval <= 0 {
		return fmt.Errorf("%w: yield_interval must be positive, got %d", ErrInvalidValue, c.YieldInterval)
	}
	if c.MaxIterations <= 0 {
		return fmt.Errorf("%w: max_iterations must be positive, got %d", ErrInvalidValue, c.MaxIterations)
	}
	return nil
}

// Factory composes the configured order, strategy and grouping.
func (c Config) Factory() (strategy.Factory, error) {
	o, err := OrderByName(c.Order, c.Seed)
	if err != nil {
		return nil, err
	}
	s, err := StrategyByName(c.Strategy)
	if err != nil {
		return nil, err
	}
	if c.Grouped {
		s = strategy.Grouped(s)
	}
	return strategy.Compose(o, s), nil
}

// SolverOptions returns the spm options carried by c.
func (c Config) SolverOptions() []spm.Option {
	return []spm.Option{
		spm.WithYieldInterval(c.YieldInterval),
		spm.WithMaxIterations(c.MaxIterations),
	}
}

// Label names the combination, e.g. "priority/adaptive/grouped".
func (c Config) Label() string {
	label := c.Order + "/" + c.Strategy
	if c.Grouped {
		label += "/grouped"
	}
	return label
}

// Combinations returns one Config per order × strategy × grouping, based
// on c for the remaining settings.
func (c Config) Combinations() []Config {
	out := make([]Config, 0, 2*len(OrderNames)*len(StrategyNames))
	for _, o := range OrderNames {
		for _, s := range StrategyNames {
			for _, grouped := range []bool{false, true} {
				next := c
				next.Order, next.Strategy, next.Grouped = o, s, grouped
				out = append(out, next)
			}
		}
	}
	return out
}
