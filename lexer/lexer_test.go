// SPDX-License-Identifier: MIT
package lexer

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// shape renders Tokens compactly for comparison.
func shape(tokens []Token) (out []string) {
	for _, t := range tokens {
		switch t.Kind {
		case TokenLiteral:
			out = append(out, "L:"+string(t.Value.Value))
		case TokenBracket:
			if t.Bracket == BracketOpening {
				out = append(out, "[")
			} else {
				out = append(out, "]")
			}
		case TokenComponentPart:
			if t.Component == ComponentWhitespace {
				out = append(out, "W:"+string(t.Value.Value))
			} else {
				out = append(out, "C:"+string(t.Value.Value))
			}
		}
	}

	return
}

func TestLex(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "empty", input: "", want: nil},
		{name: "literal", input: "abc def", want: []string{"L:abc def"}},
		{
			name:  "component",
			input: "[year]",
			want:  []string{"[", "C:year", "]"},
		},
		{
			name:  "modifiers",
			input: "[ day padding:none  ]",
			want:  []string{"[", "W: ", "C:day", "W: ", "C:padding:none", "W:  ", "]"},
		},
		{
			name:  "escaped opening",
			input: "a[[b",
			want:  []string{"L:a", "[", "[", "L:b"},
		},
		{
			name:  "escaped closing",
			input: "a]]b",
			want:  []string{"L:a", "]", "]", "L:b"},
		},
		{
			name:  "lone closing is literal",
			input: "a]b",
			want:  []string{"L:a]b"},
		},
		{
			name:  "literal between components",
			input: "[hour]:[minute]",
			want:  []string{"[", "C:hour", "]", "L::", "[", "C:minute", "]"},
		},
		{
			name:  "optional",
			input: "[optional [:[second]]]",
			want: []string{
				"[", "C:optional", "W: ", "[", "C::", "[", "C:second", "]", "]", "]",
			},
		},
		{
			name:  "unterminated",
			input: "[foo",
			want:  []string{"[", "C:foo"},
		},
		{
			name:  "newline whitespace",
			input: "[a\n\tb]",
			want:  []string{"[", "C:a", "W:\n\t", "C:b", "]"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := shape(Lex([]byte(tt.input)))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLex_Coverage(t *testing.T) {
	inputs := []string{
		"[year]-[month]-[day]",
		"[[ ]] [ hour repr:12 ] ]x[[[a]",
		"[optional [ [minute] ]] tail",
		"[unclosed [ nested",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			src := []byte(input)

			var buf bytes.Buffer
			next := 0
			for _, tok := range Lex(src) {
				span := tok.Span()
				require.Equal(t, next, span.Start.Byte, "gap before %s", tok)
				buf.Write(span.Slice(src))
				next = span.End.Byte
			}

			assert.Equal(t, input, buf.String())
		})
	}
}

func TestLex_Locations(t *testing.T) {
	tokens := Lex([]byte("ab\n[c  d]"))
	require.Len(t, tokens, 6)

	assert.Equal(t, 0, tokens[0].Value.Span.Start.Byte)
	assert.Equal(t, 3, tokens[0].Value.Span.End.Byte)

	opening := tokens[1]
	assert.True(t, opening.IsBracket(BracketOpening))
	assert.Equal(t, 3, opening.Location.Byte)
	assert.Equal(t, 2, opening.Location.Line)
	assert.Equal(t, 0, opening.Location.Column)

	d := tokens[4]
	assert.True(t, d.IsComponentPart(ComponentNotWhitespace))
	assert.Equal(t, 7, d.Value.Span.Start.Byte)
	assert.Equal(t, 4, d.Value.Span.Start.Column)
}

func TestLexer_Depth(t *testing.T) {
	l := New([]byte("[a [b]"), WithLogger(logrus.New()), WithDebug(true))
	_ = l.All()

	assert.Equal(t, 1, l.Depth())
}

func BenchmarkLexer_All(b *testing.B) {
	src := []byte("[year]-[month repr:short]-[day padding:space] [optional [[hour]:[minute]]]")

	b.ReportAllocs()
	b.SetBytes(int64(len(src)))
	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		_ = New(src).All()
	}
}
