// SPDX-License-Identifier: MIT
//
// File: parser.go
// Role: Backtracking recursive-descent scanner for the game text format.
//
// The scanner works on bytes and never allocates tokens. Every failed match
// is recorded with its offset; only the furthest offset keeps its expected
// set, so the reported error points at the deepest position any alternative
// reached, exactly one error per parse.

package parser

import (
	"io"
	"sort"
	"strconv"
	"unicode/utf8"

	"github.com/TarVK/parity-game-solver/core"
)

// Token descriptions used in SyntaxError.Expected.
const (
	expectNumber = "number"
	expectName   = "name"
	expectZero   = "'0'"
	expectOne    = "'1'"
	expectComma  = "','"
	expectSemi   = "';'"
	expectParity = "'parity'"
	expectEOF    = "end of input"
)

const headerKeyword = "parity"

// scanner holds the mutable parse state.
type scanner struct {
	src      string
	pos      int
	failAt   int
	expected map[string]struct{}
}

// Parse reads a parity game text into an AST.
// On failure it returns a *SyntaxError wrapping ErrSyntax.
//
// Complexity: O(len(text)).
func Parse(text string) (*AST, error) {
	s := &scanner{src: text, failAt: -1, expected: make(map[string]struct{})}
	ast := &AST{}

	// optional header; on partial match rewind and let records try
	start := s.pos
	if n, ok := s.header(); ok {
		ast.HasParity = true
		ast.MaxParity = n
	} else {
		s.pos = start
	}

	for {
		start = s.pos
		rec, ok := s.record()
		if !ok {
			s.pos = start
			break
		}
		ast.Nodes = append(ast.Nodes, rec)
	}

	s.skipSpace()
	if s.pos < len(s.src) {
		s.fail(s.pos, expectEOF)
		return nil, s.syntaxError()
	}

	return ast, nil
}

// ParseReader reads all of r and parses it.
func ParseReader(r io.Reader) (*AST, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Parse(string(data))
}

// Format parses text and returns its canonical serialization.
func Format(text string) (string, error) {
	ast, err := Parse(text)
	if err != nil {
		return "", err
	}
	return Serialize(ast), nil
}

// header matches `parity N;`.
func (s *scanner) header() (int, bool) {
	s.skipSpace()
	if !s.literal(headerKeyword, expectParity) {
		return 0, false
	}
	n, ok := s.number()
	if !ok {
		return 0, false
	}
	if !s.literal(";", expectSemi) {
		return 0, false
	}
	return n, true
}

// record matches one node clause, including trailing whitespace.
func (s *scanner) record() (NodeRecord, bool) {
	var rec NodeRecord
	var ok bool

	if rec.ID, ok = s.number(); !ok {
		return rec, false
	}
	if rec.Priority, ok = s.number(); !ok {
		return rec, false
	}
	if rec.Owner, ok = s.owner(); !ok {
		return rec, false
	}
	rec.Successors = s.successors()
	rec.Name = s.name()

	s.skipSpace()
	if !s.literal(";", expectSemi) {
		return rec, false
	}
	s.skipSpace()

	return rec, true
}

// number matches a whitespace-wrapped run of decimal digits.
func (s *scanner) number() (int, bool) {
	s.skipSpace()
	start := s.pos
	for s.pos < len(s.src) && isDigit(s.src[s.pos]) {
		s.pos++
	}
	if s.pos == start {
		s.fail(start, expectNumber)
		return 0, false
	}
	n, err := strconv.Atoi(s.src[start:s.pos])
	if err != nil {
		// out of int range
		s.fail(start, expectNumber)
		s.pos = start
		return 0, false
	}
	s.skipSpace()
	return n, true
}

// owner matches a single '0' or '1' character.
func (s *scanner) owner() (core.Owner, bool) {
	s.skipSpace()
	if s.pos < len(s.src) {
		switch s.src[s.pos] {
		case '0':
			s.pos++
			s.skipSpace()
			return core.Even, true
		case '1':
			s.pos++
			s.skipSpace()
			return core.Odd, true
		}
	}
	s.fail(s.pos, expectZero)
	s.fail(s.pos, expectOne)
	return 0, false
}

// successors matches a possibly empty comma-separated id list.
func (s *scanner) successors() []int {
	var ids []int
	start := s.pos
	first, ok := s.number()
	if !ok {
		s.pos = start
		return ids
	}
	ids = append(ids, first)

	for {
		start = s.pos
		if !s.literal(",", expectComma) {
			s.pos = start
			return ids
		}
		n, ok := s.number()
		if !ok {
			s.pos = start
			return ids
		}
		ids = append(ids, n)
	}
}

// name matches an optional quoted name; absent names yield "".
func (s *scanner) name() string {
	start := s.pos
	s.skipSpace()
	if s.pos >= len(s.src) || s.src[s.pos] != '"' {
		s.fail(s.pos, expectName)
		s.pos = start
		return ""
	}
	open := s.pos + 1
	end := open
	for end < len(s.src) && s.src[end] != '"' {
		end++
	}
	if end >= len(s.src) {
		s.fail(end, expectName)
		s.pos = start
		return ""
	}
	s.pos = end + 1
	s.skipSpace()
	return s.src[open:end]
}

// literal matches lit at the current position without skipping whitespace.
func (s *scanner) literal(lit, desc string) bool {
	if len(s.src)-s.pos >= len(lit) && s.src[s.pos:s.pos+len(lit)] == lit {
		s.pos += len(lit)
		return true
	}
	s.fail(s.pos, desc)
	return false
}

func (s *scanner) skipSpace() {
	for s.pos < len(s.src) {
		switch s.src[s.pos] {
		case ' ', '\t', '\n', '\r':
			s.pos++
		default:
			return
		}
	}
}

// fail records an expectation at offset; deeper offsets reset the set.
func (s *scanner) fail(offset int, desc string) {
	if offset > s.failAt {
		s.failAt = offset
		clear(s.expected)
	}
	if offset == s.failAt {
		s.expected[desc] = struct{}{}
	}
}

func (s *scanner) syntaxError() *SyntaxError {
	expected := make([]string, 0, len(s.expected))
	for e := range s.expected {
		expected = append(expected, e)
	}
	sort.Strings(expected)

	return &SyntaxError{
		Position: positionOf(s.src, s.failAt),
		Expected: expected,
		Message:  expectedMessage(expected),
	}
}

// positionOf converts a byte offset into a line/column position.
func positionOf(src string, offset int) Position {
	line, lineStart := 1, 0
	for i := 0; i < offset && i < len(src); i++ {
		if src[i] == '\n' {
			line++
			lineStart = i + 1
		}
	}
	return Position{
		Line:   line,
		Column: utf8.RuneCountInString(src[lineStart:offset]) + 1,
		Offset: offset,
	}
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
