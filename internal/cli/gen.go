package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/TarVK/parity-game-solver/builder"
	"github.com/TarVK/parity-game-solver/parser"
)

// GenOptions holds flags for the gen command.
type GenOptions struct {
	*RootOptions
	Nodes       int
	MaxPriority int
	OutDegree   int
	Seed        int64
	Dangling    float64
	Names       bool
	Ring        bool
}

// NewGenCommand creates the gen command.
func NewGenCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &GenOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate a random parity game",
		Long: `Generate a seeded random parity game in the text format.

Example:
  pgsolve gen --nodes 500 --max-priority 8 --seed 3 > big.gm
  pgsolve gen --ring --nodes 12`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGen(opts, cmd)
		},
	}

	cmd.Flags().IntVarP(&opts.Nodes, "nodes", "n", 10, "number of nodes")
	cmd.Flags().IntVar(&opts.MaxPriority, "max-priority", 4, "largest priority")
	cmd.Flags().IntVar(&opts.OutDegree, "out-degree", 2, "maximum successors per node")
	cmd.Flags().Int64Var(&opts.Seed, "seed", 1, "random seed")
	cmd.Flags().Float64Var(&opts.Dangling, "dangling", 0, "probability of an extra successor id naming no node")
	cmd.Flags().BoolVar(&opts.Names, "names", false, "give every node a name")
	cmd.Flags().BoolVar(&opts.Ring, "ring", false, "generate the deterministic ring game instead")

	return cmd
}

func runGen(opts *GenOptions, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	if err := opts.validate(); err != nil {
		_ = formatter.Error(ErrCodeConfig, err.Error(), nil)
		return WrapExitError(ExitCommandError, "invalid generator settings", err)
	}

	var (
		ast *parser.AST
		err error
	)
	if opts.Ring {
		ast, err = builder.Ring(opts.Nodes)
	} else {
		genOpts := []builder.Option{
			builder.WithSeed(opts.Seed),
			builder.WithHeader(),
			builder.WithMaxPriority(opts.MaxPriority),
			builder.WithOutDegree(opts.OutDegree),
			builder.WithDangling(opts.Dangling),
		}
		if opts.Names {
			genOpts = append(genOpts, builder.WithNames())
		}
		ast, err = builder.RandomGame(opts.Nodes, genOpts...)
	}
	if err != nil {
		_ = formatter.Error(ErrCodeConfig, err.Error(), nil)
		return WrapExitError(ExitCommandError, "cannot generate game", err)
	}

	report := FmtReport{Text: parser.Serialize(ast)}
	return formatter.Success(report)
}

// validate rejects settings the builder options would panic on.
func (o *GenOptions) validate() error {
	switch {
	case o.MaxPriority < 0:
		return fmt.Errorf("--max-priority must not be negative, got %d", o.MaxPriority)
	case o.OutDegree < 0:
		return fmt.Errorf("--out-degree must not be negative, got %d", o.OutDegree)
	case o.Dangling < 0 || o.Dangling > 1:
		return fmt.Errorf("--dangling must be within [0, 1], got %g", o.Dangling)
	}
	return nil
}
