// Package spm drives the Small Progress Measures algorithm: it pulls slots
// from a strategy.Sequence, lifts them with a measure.Evaluator and feeds
// the outcome back until the sequence ends, then reports the winning
// regions of both players.
//
// What:
//
//   - Solver: one solve of one game, with states
//     Ready → Running → Solved | Aborted.
//   - Solve: convenience wrapper building and running a Solver.
//   - Result: Even and Odd winning regions (node ids, input order),
//     iteration count, final measures and wall-clock duration.
//
// Options:
//
//   - WithYieldInterval(n): every n lift attempts the driver calls
//     runtime.Gosched, checks ctx and invokes the OnYield hook (default 5000).
//   - WithMaxIterations(n): upper bound on lift attempts; exceeding it
//     aborts with ErrNonTermination (default math.MaxInt64).
//   - WithLogger(l): *zap.Logger receiving debug events (default no-op).
//   - WithOnYield(fn): hook run at every yield point.
//
// Errors:
//
//   - ErrGameNil, ErrFactoryNil, ErrOptionViolation: invalid input.
//   - ErrNotReady: Run called on a Solver that already ran.
//   - ErrNonTermination: the iteration cap was hit. Shipped strategies
//     never trigger it; it indicates a broken strategy.
//   - ctx.Err(): cancellation observed at a yield point.
//
// Concurrency:
//
//	A Solver is single-threaded. Independent Solvers may run in parallel
//	on the same *core.Game, which is never mutated.
//
// Complexity:
//
//	Each lift costs O(k·d) for out-degree k and d = MaxPriority+1. The
//	number of lifts is bounded by Σ_v (product of odd bounds) and depends
//	heavily on the order and strategy.
package spm
