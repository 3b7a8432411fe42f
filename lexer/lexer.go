// SPDX-License-Identifier: MIT

// Package lexer tokenizes format descriptions.
//
// The lexer is permissive: every byte of the source belongs to exactly one Token and no input is
// rejected. Grammar violations are left for the AST builder to report.
package lexer

// REF: https://github.com/sh4t/sql-parser
// REF: https://go.dev/talks/2011/lex.slide

import (
	"github.com/sirupsen/logrus"

	"gitlab.com/fisherprime/timefmt/types"
)

type (
	// NextOperation type for the next function to be executed
	NextOperation func() NextOperation

	// ValidationFunction type for functions that validate byte identities
	ValidationFunction func(byte) bool

	// Lexer produces Tokens from a format description one at a time.
	Lexer struct {
		debug  bool
		logger logrus.FieldLogger

		// source is the borrowed input; Token values are sub-slices of it.
		source []byte

		// start is the position of the first byte of the pending Token.
		start types.Location
		// pos is the position of the next byte to be read.
		pos types.Location

		// depth is the number of unclosed opening brackets.
		depth int

		// queue holds emitted Tokens awaiting consumption.
		queue []Token
		state NextOperation
	}
)

// Improves on performance compared to ORs.
var whitespace = [256]bool{
	' ':  true,
	'\t': true,
	'\n': true,
	'\f': true,
	'\r': true,
}

// New creates a Lexer for the source.
func New(source []byte, opts ...Option) *Lexer {
	l := &Lexer{
		logger: logrus.New(),
		source: source,
		start:  types.StartLocation,
		pos:    types.StartLocation,
		queue:  make([]Token, 0, defBufferSize),
	}
	l.state = l.LexText

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Lex tokenizes the entire source.
func Lex(source []byte, opts ...Option) []Token { return New(source, opts...).All() }

// Depth obtains the number of brackets opened but not yet closed.
func (l *Lexer) Depth() int { return l.depth }

// Token returns the next Token, ok is false once the source is exhausted.
func (l *Lexer) Token() (t Token, ok bool) {
	for len(l.queue) < 1 && l.state != nil {
		l.state = l.state()
	}

	if len(l.queue) < 1 {
		return
	}

	t, ok = l.queue[0], true
	l.queue = l.queue[1:]

	return
}

// All collects the remaining Tokens.
func (l *Lexer) All() (tokens []Token) {
	for {
		t, ok := l.Token()
		if !ok {
			return
		}
		tokens = append(tokens, t)
	}
}

// LexText scans outside of any brackets.
func (l *Lexer) LexText() NextOperation {
	b, ok := l.Peek()
	if !ok {
		return nil
	}

	switch {
	case b == OpeningBracket:
		l.Next()
		if next, _ := l.Peek(); next == OpeningBracket {
			// Escaped bracket, the depth is unchanged.
			l.EmitBracket(BracketOpening)
			l.Next()
			l.EmitBracket(BracketOpening)

			return l.LexText
		}

		l.depth++
		l.EmitBracket(BracketOpening)

		return l.LexComponent
	case l.atEscapedClosing():
		l.Next()
		l.EmitBracket(BracketClosing)
		l.Next()
		l.EmitBracket(BracketClosing)

		return l.LexText
	default:
		// A lone closing bracket is literal text.
		l.Next()
		for {
			if next, ok := l.Peek(); !ok || next == OpeningBracket || l.atEscapedClosing() {
				break
			}
			l.Next()
		}
		l.EmitValue(TokenLiteral, ComponentNotWhitespace)

		return l.LexText
	}
}

// LexComponent scans within brackets.
func (l *Lexer) LexComponent() NextOperation {
	b, ok := l.Peek()
	if !ok {
		return nil
	}

	switch b {
	case OpeningBracket:
		l.Next()
		l.depth++
		l.EmitBracket(BracketOpening)

		return l.LexComponent
	case ClosingBracket:
		l.Next()
		l.depth--
		l.EmitBracket(BracketClosing)

		if l.depth == 0 {
			return l.LexText
		}

		return l.LexComponent
	}

	if isWhitespace(b) {
		l.AcceptWhile(isWhitespace)
		l.EmitValue(TokenComponentPart, ComponentWhitespace)
	} else {
		l.AcceptWhile(isWordPart)
		l.EmitValue(TokenComponentPart, ComponentNotWhitespace)
	}

	return l.LexComponent
}

// Next consumes the next byte, ok is false at the end of the source.
func (l *Lexer) Next() (b byte, ok bool) {
	if b, ok = l.Peek(); !ok {
		return
	}

	l.pos.Byte++
	if b == '\n' {
		l.pos.Line++
		l.pos.Column = 0
	} else {
		l.pos.Column++
	}

	return
}

// Peek returns the next byte without consuming it.
func (l *Lexer) Peek() (b byte, ok bool) {
	if l.pos.Byte >= len(l.source) {
		return
	}

	return l.source[l.pos.Byte], true
}

// PeekN returns up to the next n bytes without consuming them.
//
// This operation will return a shorter slice if the end of the source is reached.
func (l *Lexer) PeekN(n int) []byte {
	limit := min(l.pos.Byte+n, len(l.source))
	return l.source[l.pos.Byte:limit]
}

// AcceptWhile consumes bytes while fn holds.
func (l *Lexer) AcceptWhile(fn ValidationFunction) {
	for {
		if b, ok := l.Peek(); !ok || !fn(b) {
			return
		}
		l.Next()
	}
}

// EmitBracket queues a bracket Token for the pending byte.
func (l *Lexer) EmitBracket(kind BracketKind) {
	l.emit(Token{Kind: TokenBracket, Bracket: kind, Location: l.start})
}

// EmitValue queues a Token holding the pending bytes.
func (l *Lexer) EmitValue(kind TokenKind, component ComponentKind) {
	l.emit(Token{
		Kind:      kind,
		Component: component,
		Value:     types.SpannedBytes(l.source, l.start.To(l.pos)),
	})
}

func (l *Lexer) emit(t Token) {
	if l.debug {
		// Debug operation makes this operation un-inlinable.
		l.logger.Debugf("lexer emit: %s", t)
	}

	l.queue = append(l.queue, t)
	l.start = l.pos
}

func (l *Lexer) atEscapedClosing() bool {
	next := l.PeekN(2)
	return len(next) == 2 && next[0] == ClosingBracket && next[1] == ClosingBracket
}

func isWhitespace(b byte) bool { return whitespace[b] }

func isBracket(b byte) bool { return b == OpeningBracket || b == ClosingBracket }

// isWordPart return true for bytes continuing a non-whitespace component part.
func isWordPart(b byte) bool { return !whitespace[b] && !isBracket(b) }
