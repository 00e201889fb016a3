// SPDX-License-Identifier: MIT

// Package parser converts between the textual parity game format and its
// abstract syntax tree (AST).
//
// Format
//
//	game    := [ "parity" N ";" ] record*
//	record  := id priority owner successors [ name ] ";"
//	owner   := "0" | "1"
//	successors := [ id { "," id } ]
//	name    := '"' any-char-except-quote* '"'
//
// Whitespace (space, tab, CR, LF) is allowed between all tokens.
//
// Errors
//
//	Parse stops at the first token that cannot be matched and returns a
//	*SyntaxError positioned at the furthest offset the parser reached,
//	together with the set of token descriptions it expected there. The
//	error wraps ErrSyntax:
//
//	    ast, err := parser.Parse(text)
//	    var se *parser.SyntaxError
//	    if errors.As(err, &se) {
//	        fmt.Println(se.Position.Line, se.Position.Column, se.Expected)
//	    }
//
// Round trip
//
//	Serialize is the structural inverse of Parse: Parse(Serialize(ast))
//	yields the same header value (when present) and the same records.
//	Incidental whitespace is not preserved.
package parser
