package spm_test

import (
	"context"
	"fmt"

	"github.com/TarVK/parity-game-solver/builder"
	"github.com/TarVK/parity-game-solver/order"
	"github.com/TarVK/parity-game-solver/parser"
	"github.com/TarVK/parity-game-solver/spm"
	"github.com/TarVK/parity-game-solver/strategy"
)

func ExampleSolve() {
	ast, err := parser.Parse(`
		parity 2;
		0 0 0 1,2 "choice";
		1 1 0 1   "odd loop";
		2 2 1 2   "even loop";
	`)
	if err != nil {
		fmt.Println(err)
		return
	}
	g := builder.Build(ast)

	f := strategy.Compose(order.Priority, strategy.Grouped(strategy.Adaptive))
	res, err := spm.Solve(context.Background(), g, f)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("even:", res.Even)
	fmt.Println("odd:", res.Odd)
	// Output:
	// even: [0 2]
	// odd: [1]
}
