package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/TarVK/parity-game-solver/parser"
)

// stdinPath selects standard input instead of a file.
const stdinPath = "-"

// SyntaxDetails is the structured payload of a syntax error.
type SyntaxDetails struct {
	File     string   `json:"file" yaml:"file"`
	Line     int      `json:"line" yaml:"line"`
	Column   int      `json:"column" yaml:"column"`
	Offset   int      `json:"offset" yaml:"offset"`
	Expected []string `json:"expected" yaml:"expected"`
}

// readGame reads and parses the game at path, or stdin for "-". Failures
// are reported through f and returned as ExitCommandError.
func readGame(f *OutputFormatter, in io.Reader, path string) (*parser.AST, error) {
	var (
		data []byte
		err  error
	)
	if path == stdinPath {
		data, err = io.ReadAll(in)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		_ = f.Error(ErrCodeIO, err.Error(), nil)
		return nil, WrapExitError(ExitCommandError, "cannot read game", err)
	}

	ast, err := parser.Parse(string(data))
	if err != nil {
		var se *parser.SyntaxError
		if errors.As(err, &se) {
			msg := fmt.Sprintf("%s:%d:%d: %s", path, se.Position.Line, se.Position.Column, se.Message)
			_ = f.Error(ErrCodeSyntax, msg, SyntaxDetails{
				File:     path,
				Line:     se.Position.Line,
				Column:   se.Position.Column,
				Offset:   se.Position.Offset,
				Expected: se.Expected,
			})
			return nil, WrapExitError(ExitCommandError, msg, err)
		}
		_ = f.Error(ErrCodeSyntax, err.Error(), nil)
		return nil, WrapExitError(ExitCommandError, "cannot parse game", err)
	}
	return ast, nil
}
