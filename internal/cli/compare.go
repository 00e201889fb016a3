package cli

import (
	"fmt"
	"io"
	"slices"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/text/message"

	"github.com/TarVK/parity-game-solver/builder"
	"github.com/TarVK/parity-game-solver/config"
	"github.com/TarVK/parity-game-solver/spm"
	"github.com/TarVK/parity-game-solver/strategy"
)

// CompareOptions holds flags for the compare command.
type CompareOptions struct {
	*RootOptions
	ConfigFile string

	// combinations overrides the solver setups under comparison (for
	// testing). If nil, every configuration combination is used.
	combinations func(base config.Config) ([]combination, error)
}

// CompareRow is the outcome of one combination.
type CompareRow struct {
	Solver     string `json:"solver" yaml:"solver"`
	Iterations int64  `json:"iterations" yaml:"iterations"`
	Odd        int    `json:"odd" yaml:"odd"`
	Duration   string `json:"duration" yaml:"duration"`
	Agrees     bool   `json:"agrees" yaml:"agrees"`
}

// CompareReport is the payload printed by compare.
type CompareReport struct {
	File  string       `json:"file" yaml:"file"`
	Nodes int          `json:"nodes" yaml:"nodes"`
	Agree bool         `json:"agree" yaml:"agree"`
	Rows  []CompareRow `json:"rows" yaml:"rows"`
}

// WriteText renders the rows as an aligned table.
func (r CompareReport) WriteText(w io.Writer, p *message.Printer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "solver\titerations\todd\tduration\t")
	for _, row := range r.Rows {
		mark := ""
		if !row.Agrees {
			mark = " !"
		}
		p.Fprintf(tw, "%s%s\t%d\t%d\t%s\t\n", row.Solver, mark, row.Iterations, row.Odd, row.Duration)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	if !r.Agree {
		return nil
	}
	_, err := fmt.Fprintf(w, "all %d combinations agree\n", len(r.Rows))
	return err
}

// NewCompareCommand creates the compare command.
func NewCompareCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CompareOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "compare <file>",
		Short: "Solve with every order, strategy and grouping",
		Long: `Solve a game with every base order × lifting strategy × grouping
combination, print the iteration counts and check that all combinations
compute the same winning regions. Exits with status 1 if they disagree.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompare(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.ConfigFile, "config", "", "config file (yaml, json or toml)")
	cmd.Flags().Int64("seed", 0, "seed for the random order (0 = default seed)")
	cmd.Flags().Int64("max-iterations", config.Default().MaxIterations, "abort a combination after this many lift attempts")

	return cmd
}

// combination is one solver setup under comparison.
type combination struct {
	label   string
	factory strategy.Factory
	opts    []spm.Option
}

// configCombinations expands base into every order × strategy × grouping.
func configCombinations(base config.Config) ([]combination, error) {
	var out []combination
	for _, cfg := range base.Combinations() {
		factory, err := cfg.Factory()
		if err != nil {
			return nil, err
		}
		out = append(out, combination{label: cfg.Label(), factory: factory, opts: cfg.SolverOptions()})
	}
	return out, nil
}

func runCompare(opts *CompareOptions, path string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)
	log := opts.logger()

	base, err := config.Load(opts.ConfigFile, cmd.Flags())
	if err != nil {
		_ = formatter.Error(ErrCodeConfig, err.Error(), nil)
		return WrapExitError(ExitCommandError, "invalid configuration", err)
	}

	ast, err := readGame(formatter, cmd.InOrStdin(), path)
	if err != nil {
		return err
	}
	g := builder.Build(ast)

	expand := opts.combinations
	if expand == nil {
		expand = configCombinations
	}
	combos, err := expand(base)
	if err != nil {
		_ = formatter.Error(ErrCodeConfig, err.Error(), nil)
		return WrapExitError(ExitCommandError, "invalid configuration", err)
	}

	report := CompareReport{File: path, Nodes: g.Len(), Agree: true}
	var (
		reference []int
		disagree  int
	)
	for _, c := range combos {
		res, err := spm.Solve(cmd.Context(), g, c.factory,
			append(c.opts, spm.WithLogger(log.With(zap.String("solver", c.label))))...)
		if err != nil {
			_ = formatter.Error(ErrCodeSolve, err.Error(), map[string]string{"solver": c.label})
			return WrapExitError(ExitFailure, "solve failed", err)
		}

		if reference == nil {
			reference = res.Odd
		}
		row := CompareRow{
			Solver:     c.label,
			Iterations: res.Iterations,
			Odd:        len(res.Odd),
			Duration:   res.Duration.Round(time.Microsecond).String(),
			Agrees:     slices.Equal(reference, res.Odd),
		}
		if !row.Agrees {
			disagree++
		}
		report.Agree = report.Agree && row.Agrees
		report.Rows = append(report.Rows, row)
		formatter.VerboseLog("%s: %d lift attempts", row.Solver, row.Iterations)
	}

	if !report.Agree {
		msg := fmt.Sprintf("%d of %d combinations disagree with %s", disagree, len(report.Rows), report.Rows[0].Solver)
		if formatter.Format == "text" {
			_ = formatter.Success(report)
		}
		_ = formatter.Error(ErrCodeMismatch, msg, report)
		return NewExitError(ExitFailure, msg)
	}
	return formatter.Success(report)
}
