package parser_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/TarVK/parity-game-solver/core"
	"github.com/TarVK/parity-game-solver/parser"
)

func TestParse_Accepts(t *testing.T) {
	cases := []struct {
		name string
		text string
		want *parser.AST
	}{
		{
			name: "empty input",
			text: "",
			want: &parser.AST{},
		},
		{
			name: "whitespace only",
			text: " \n\t\r\n",
			want: &parser.AST{},
		},
		{
			name: "header only, value zero",
			text: "parity 0;",
			want: &parser.AST{HasParity: true, MaxParity: 0},
		},
		{
			name: "header without spaces",
			text: "parity3;",
			want: &parser.AST{HasParity: true, MaxParity: 3},
		},
		{
			name: "whitespace between every token",
			text: " parity\t2 ;\n 5 1 0 6 , 7 ;\r\n6 2 1 5;",
			want: &parser.AST{
				HasParity: true,
				MaxParity: 2,
				Nodes: []parser.NodeRecord{
					{ID: 5, Priority: 1, Owner: core.Even, Successors: []int{6, 7}},
					{ID: 6, Priority: 2, Owner: core.Odd, Successors: []int{5}},
				},
			},
		},
		{
			name: "no successors and a name",
			text: `3 1 1 "dead end";`,
			want: &parser.AST{
				Nodes: []parser.NodeRecord{
					{ID: 3, Priority: 1, Owner: core.Odd, Name: "dead end"},
				},
			},
		},
		{
			name: "name spanning lines",
			text: "0 0 0 0 \"two\nlines\";",
			want: &parser.AST{
				Nodes: []parser.NodeRecord{
					{ID: 0, Priority: 0, Owner: core.Even, Successors: []int{0}, Name: "two\nlines"},
				},
			},
		},
		{
			name: "owner digit glued to successor",
			text: "1 2 10;",
			want: &parser.AST{
				Nodes: []parser.NodeRecord{
					{ID: 1, Priority: 2, Owner: core.Odd, Successors: []int{0}},
				},
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := parser.Parse(tc.text)
			require.NoError(t, err)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Parse(%q) mismatch (-want +got):\n%s", tc.text, diff)
			}
		})
	}
}

func TestParse_Rejects(t *testing.T) {
	cases := []struct {
		name     string
		text     string
		pos      parser.Position
		expected []string
	}{
		{
			name:     "owner out of range",
			text:     "0 1 2;",
			pos:      parser.Position{Line: 1, Column: 5, Offset: 4},
			expected: []string{"'0'", "'1'"},
		},
		{
			name:     "junk after successors on second line",
			text:     "0 1 1 2\n x;",
			pos:      parser.Position{Line: 2, Column: 2, Offset: 9},
			expected: []string{"','", "';'", "name"},
		},
		{
			name:     "unterminated name",
			text:     `0 1 1 "abc`,
			pos:      parser.Position{Line: 1, Column: 11, Offset: 10},
			expected: []string{"name"},
		},
		{
			name:     "header without number",
			text:     "parity x;",
			pos:      parser.Position{Line: 1, Column: 8, Offset: 7},
			expected: []string{"number"},
		},
		{
			name:     "trailing garbage",
			text:     "0 0 0 0; ?",
			pos:      parser.Position{Line: 1, Column: 10, Offset: 9},
			expected: []string{"end of input", "number"},
		},
		{
			name:     "number out of range",
			text:     "99999999999999999999 0 0;",
			pos:      parser.Position{Line: 1, Column: 1, Offset: 0},
			expected: []string{"'parity'", "end of input", "number"},
		},
		{
			name:     "missing semicolon at end",
			text:     "0 0 0 0",
			pos:      parser.Position{Line: 1, Column: 8, Offset: 7},
			expected: []string{"','", "';'", "name"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ast, err := parser.Parse(tc.text)
			require.Nil(t, ast)
			require.Error(t, err)
			require.True(t, errors.Is(err, parser.ErrSyntax))

			var se *parser.SyntaxError
			require.True(t, errors.As(err, &se))
			require.Equal(t, tc.pos, se.Position)
			require.Equal(t, tc.expected, se.Expected)
			require.True(t, strings.HasPrefix(se.Message, "Syntax error, expected "))
		})
	}
}

func TestSyntaxError_Message(t *testing.T) {
	_, err := parser.Parse("0 1 2;")
	require.EqualError(t, err, "parser: 1:5: Syntax error, expected '0' or '1'")
}

func TestParseReader(t *testing.T) {
	f, err := os.Open(filepath.Join("testdata", "messy_game.txt"))
	require.NoError(t, err)
	defer f.Close()

	ast, err := parser.ParseReader(f)
	require.NoError(t, err)
	require.True(t, ast.HasParity)
	require.Equal(t, 4, ast.MaxParity)
	require.Len(t, ast.Nodes, 4)
	require.Equal(t, []int{2, 0}, ast.Nodes[2].Successors)
	require.Equal(t, "start", ast.Nodes[0].Name)
}
