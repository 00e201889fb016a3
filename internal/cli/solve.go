package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/text/message"

	"github.com/TarVK/parity-game-solver/builder"
	"github.com/TarVK/parity-game-solver/config"
	"github.com/TarVK/parity-game-solver/core"
	"github.com/TarVK/parity-game-solver/measure"
	"github.com/TarVK/parity-game-solver/spm"
)

// SolveOptions holds flags for the solve command.
type SolveOptions struct {
	*RootOptions
	ConfigFile string
	Measures   bool

	// RunIDGenerator overrides the run id source (for testing).
	// If nil, UUIDv7 strings are used.
	RunIDGenerator func() string
}

// SolveReport is the payload printed by solve.
type SolveReport struct {
	RunID      string        `json:"run_id" yaml:"run_id"`
	File       string        `json:"file" yaml:"file"`
	Config     config.Config `json:"config" yaml:"config"`
	Game       core.Stats    `json:"game" yaml:"game"`
	Even       []int         `json:"even" yaml:"even"`
	Odd        []int         `json:"odd" yaml:"odd"`
	Iterations int64         `json:"iterations" yaml:"iterations"`
	Duration   string        `json:"duration" yaml:"duration"`
	Measures   []NodeMeasure `json:"measures,omitempty" yaml:"measures,omitempty"`
}

// NodeMeasure is the final measure of one node.
type NodeMeasure struct {
	ID      int             `json:"id" yaml:"id"`
	Measure measure.Measure `json:"measure" yaml:"measure"`
}

// WriteText renders the report for humans.
func (r SolveReport) WriteText(w io.Writer, p *message.Printer) error {
	var b strings.Builder
	fmt.Fprintf(&b, "run:        %s\n", r.RunID)
	p.Fprintf(&b, "game:       %d nodes, %d edges, max priority %d\n", r.Game.Nodes, r.Game.Edges, r.Game.MaxPriority)
	fmt.Fprintf(&b, "solver:     %s\n", r.Config.Label())
	p.Fprintf(&b, "iterations: %d\n", r.Iterations)
	fmt.Fprintf(&b, "duration:   %s\n", r.Duration)
	p.Fprintf(&b, "even (%d):  %s\n", len(r.Even), joinIDs(r.Even))
	p.Fprintf(&b, "odd (%d):   %s\n", len(r.Odd), joinIDs(r.Odd))
	for _, m := range r.Measures {
		fmt.Fprintf(&b, "  %d: %s\n", m.ID, m.Measure)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func joinIDs(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, " ")
}

// NewSolveCommand creates the solve command.
func NewSolveCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SolveOptions{RootOptions: rootOpts}
	def := config.Default()

	cmd := &cobra.Command{
		Use:   "solve <file>",
		Short: "Solve a parity game",
		Long: `Solve a parity game and print both winning regions.

Settings come from --config, PGSOLVE_* environment variables and flags,
in increasing precedence. Use "-" to read the game from stdin.

Example:
  pgsolve solve game.gm --order priority --strategy adaptive --grouped
  PGSOLVE_ORDER=random pgsolve solve --seed 7 --format json game.gm`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(opts, args[0], cmd)
		},
	}

	addSolverFlags(cmd, def)
	cmd.Flags().StringVar(&opts.ConfigFile, "config", "", "config file (yaml, json or toml)")
	cmd.Flags().BoolVar(&opts.Measures, "measures", false, "include final progress measures")

	return cmd
}

// addSolverFlags registers the flags bound by config.Load.
func addSolverFlags(cmd *cobra.Command, def config.Config) {
	cmd.Flags().String("order", def.Order, fmt.Sprintf("base order %v", config.OrderNames))
	cmd.Flags().String("strategy", def.Strategy, fmt.Sprintf("lifting strategy %v", config.StrategyNames))
	cmd.Flags().Bool("grouped", def.Grouped, "apply the strategy per priority, highest first")
	cmd.Flags().Int64("seed", def.Seed, "seed for the random order (0 = default seed)")
	cmd.Flags().Int("yield-interval", def.YieldInterval, "lift attempts between cooperative yields")
	cmd.Flags().Int64("max-iterations", def.MaxIterations, "abort after this many lift attempts")
}

func runSolve(opts *SolveOptions, path string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)
	log := opts.logger()

	cfg, err := config.Load(opts.ConfigFile, cmd.Flags())
	if err != nil {
		_ = formatter.Error(ErrCodeConfig, err.Error(), nil)
		return WrapExitError(ExitCommandError, "invalid configuration", err)
	}

	ast, err := readGame(formatter, cmd.InOrStdin(), path)
	if err != nil {
		return err
	}
	g := builder.Build(ast)
	formatter.VerboseLog("Loaded %d node(s) from %s", g.Len(), path)

	factory, err := cfg.Factory()
	if err != nil {
		_ = formatter.Error(ErrCodeConfig, err.Error(), nil)
		return WrapExitError(ExitCommandError, "invalid configuration", err)
	}

	runID := newRunID(opts.RunIDGenerator)
	solveOpts := append(cfg.SolverOptions(), spm.WithLogger(log.With(zap.String("run_id", runID))))
	res, err := spm.Solve(cmd.Context(), g, factory, solveOpts...)
	if err != nil {
		_ = formatter.Error(ErrCodeSolve, err.Error(), map[string]string{"run_id": runID, "solver": cfg.Label()})
		return WrapExitError(ExitFailure, "solve failed", err)
	}

	report := SolveReport{
		RunID:      runID,
		File:       path,
		Config:     cfg,
		Game:       g.Stats(),
		Even:       res.Even,
		Odd:        res.Odd,
		Iterations: res.Iterations,
		Duration:   res.Duration.Round(time.Microsecond).String(),
	}
	if opts.Measures {
		for slot, m := range res.Measures {
			report.Measures = append(report.Measures, NodeMeasure{ID: g.Node(slot).ID, Measure: m})
		}
	}
	return formatter.Success(report)
}

// newRunID returns gen() or a fresh UUIDv7.
func newRunID(gen func() string) string {
	if gen != nil {
		return gen()
	}
	return uuid.Must(uuid.NewV7()).String()
}
