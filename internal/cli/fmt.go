package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/text/message"

	"github.com/TarVK/parity-game-solver/parser"
)

// FmtOptions holds flags for the fmt command.
type FmtOptions struct {
	*RootOptions
	Write bool
}

// FmtReport is the payload printed by fmt.
type FmtReport struct {
	File    string `json:"file" yaml:"file"`
	Text    string `json:"text" yaml:"text"`
	Written bool   `json:"written" yaml:"written"`
}

// WriteText prints the canonical text, or a note when it was written back.
func (r FmtReport) WriteText(w io.Writer, _ *message.Printer) error {
	if r.Written {
		_, err := fmt.Fprintf(w, "formatted %s\n", r.File)
		return err
	}
	_, err := io.WriteString(w, r.Text)
	return err
}

// NewFmtCommand creates the fmt command.
func NewFmtCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &FmtOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "fmt <file>",
		Short: "Print a game in canonical form",
		Long: `Parse a game and print it in canonical form: header first when present,
one record per line, names quoted.

Syntax errors are reported as file:line:column with the expected tokens.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFmt(opts, args[0], cmd)
		},
	}

	cmd.Flags().BoolVarP(&opts.Write, "write", "w", false, "write the result back to the file")

	return cmd
}

func runFmt(opts *FmtOptions, path string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	ast, err := readGame(formatter, cmd.InOrStdin(), path)
	if err != nil {
		return err
	}
	report := FmtReport{File: path, Text: parser.Serialize(ast)}

	if opts.Write && path != stdinPath {
		if err := os.WriteFile(path, []byte(report.Text), 0o644); err != nil {
			_ = formatter.Error(ErrCodeIO, err.Error(), nil)
			return WrapExitError(ExitCommandError, "cannot write game", err)
		}
		report.Written = true
		opts.logger().Debug("rewrote game file")
	}
	return formatter.Success(report)
}
