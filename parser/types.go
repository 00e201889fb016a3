// SPDX-License-Identifier: MIT

package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/TarVK/parity-game-solver/core"
)

// ErrSyntax is wrapped by every *SyntaxError.
var ErrSyntax = errors.New("parser: syntax error")

// AST is the parsed form of a parity game text. It only exists at the
// parse/serialize boundary; builder.Build turns it into a core.Game.
type AST struct {
	// HasParity reports whether a "parity N;" header was present.
	HasParity bool

	// MaxParity is the header value N; meaningful only when HasParity.
	MaxParity int

	// Nodes are the records in source order.
	Nodes []NodeRecord
}

// NodeRecord is one "<id> <priority> <owner> <successors> [name];" clause.
type NodeRecord struct {
	ID         int
	Priority   int
	Owner      core.Owner
	Successors []int
	Name       string
}

// Position locates a byte offset in the source text.
// Line and Column are 1-based; Column counts runes. Offset is 0-based bytes.
type Position struct {
	Line   int `json:"line" yaml:"line"`
	Column int `json:"column" yaml:"column"`
	Offset int `json:"offset" yaml:"offset"`
}

// SyntaxError reports the first unmatched token of a parse.
type SyntaxError struct {
	Position Position `json:"position" yaml:"position"`
	Expected []string `json:"expected" yaml:"expected"`
	Message  string   `json:"message" yaml:"message"`
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("parser: %d:%d: %s", e.Position.Line, e.Position.Column, e.Message)
}

// Unwrap lets errors.Is(err, ErrSyntax) match.
func (e *SyntaxError) Unwrap() error { return ErrSyntax }

// expectedMessage renders "Syntax error, expected a, b or c".
func expectedMessage(expected []string) string {
	var b strings.Builder
	b.WriteString("Syntax error, expected ")
	switch n := len(expected); n {
	case 0:
		b.WriteString("nothing")
	case 1:
		b.WriteString(expected[0])
	default:
		b.WriteString(strings.Join(expected[:n-1], ", "))
		b.WriteString(" or ")
		b.WriteString(expected[n-1])
	}
	return b.String()
}
