// Package paritygame solves parity games with Small Progress Measures.
//
// A parity game is a directed graph whose nodes carry a priority and an
// owner (Even or Odd). The solver computes, for every node, which player
// wins from it. Lifting stops at the least fixpoint of the progress-measure
// lattice; nodes whose measure reached top are won by Odd.
//
// The work is split into small packages, each usable on its own:
//
//	parser/   text format: `parity N;` header, `id prio owner s1,s2 "name";` records
//	builder/  AST to core.Game, plus random and ring game generators
//	core/     immutable Game and Node, predecessor lists, odd counts, stats
//	bfs/      breadth-first traversal forests over successor edges
//	measure/  progress measures, the Progress function and the lift evaluator
//	order/    base node orders: input, random, priority, graph, gain
//	strategy/ lifting strategies: cycle, repeat, adaptive, graph, grouped
//	spm/      the solver driver with cooperative yields and cancellation
//	config/   viper-backed solver configuration
//
// The pgsolve command (cmd/pgsolve) wraps all of it:
//
//	pgsolve solve game.gm --order priority --strategy adaptive --grouped
//	pgsolve compare game.gm
//	pgsolve gen -n 100 --seed 7 | pgsolve solve -
//
// Quick example:
//
//	ast, _ := parser.Parse("0 1 0 1; 1 2 1 0;")
//	g := builder.Build(ast)
//	res, _ := spm.Solve(ctx, g, strategy.Compose(order.Input, strategy.Cycle))
//	fmt.Println(res.Even, res.Odd) // [0 1] []
package paritygame
