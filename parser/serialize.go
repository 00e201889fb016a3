// SPDX-License-Identifier: MIT
//
// File: serialize.go
// Role: AST -> canonical text.

package parser

import (
	"strconv"
	"strings"
)

// Serialize renders ast in canonical form: an optional header line, then one
// record per line, each terminated by ";" and a newline.
//
// Names are written between double quotes. The format has no escape for a
// quote inside a name, so any '"' in a Name is written as '\''.
//
// Complexity: O(V + E).
func Serialize(ast *AST) string {
	if ast == nil {
		return ""
	}

	var b strings.Builder
	if ast.HasParity {
		b.WriteString(headerKeyword)
		b.WriteByte(' ')
		b.WriteString(strconv.Itoa(ast.MaxParity))
		b.WriteString(";\n")
	}
	for i := range ast.Nodes {
		writeRecord(&b, &ast.Nodes[i])
		b.WriteByte('\n')
	}
	return b.String()
}

func writeRecord(b *strings.Builder, rec *NodeRecord) {
	b.WriteString(strconv.Itoa(rec.ID))
	b.WriteByte(' ')
	b.WriteString(strconv.Itoa(rec.Priority))
	b.WriteByte(' ')
	b.WriteString(strconv.Itoa(int(rec.Owner)))
	for i, s := range rec.Successors {
		if i == 0 {
			b.WriteByte(' ')
		} else {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(s))
	}
	if rec.Name != "" {
		b.WriteString(` "`)
		b.WriteString(strings.ReplaceAll(rec.Name, `"`, `'`))
		b.WriteByte('"')
	}
	b.WriteByte(';')
}
