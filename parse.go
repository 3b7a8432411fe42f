// SPDX-License-Identifier: MIT

// Package timefmt parses bracketed time format descriptions into a span-annotated syntax tree &
// lowers them into component descriptions.
//
// A format description such as `[year]-[month]-[day][optional [ [hour]:[minute]]]` is made of
// literal text, components enclosed in brackets, optional groups and escaped brackets (`[[` &
// `]]`). Every node of the tree records the byte offset, line & column of its source tokens.
package timefmt

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"

	"gitlab.com/fisherprime/timefmt/lexer"
	"gitlab.com/fisherprime/timefmt/types"
)

const optionalKeyword = "optional"

type (
	// tokenStream wraps a Lexer with a single token of lookahead.
	tokenStream struct {
		lexer  *lexer.Lexer
		peeked lexer.Token
		ok     bool
		filled bool
	}

	// parser holds the state of a single Parse call.
	parser struct {
		cfg    *Config
		tokens *tokenStream

		// partial holds the top-level items built so far, for debug output.
		partial []Item
	}
)

// Parse builds the syntax tree of a format description.
//
// No partial tree is returned on error; the *Error describes the first problem encountered.
func Parse(input []byte, options ...Option) (items []Item, err error) {
	cfg := NewConfig(options...)

	p := &parser{
		cfg: cfg,
		tokens: &tokenStream{
			lexer: lexer.New(input, lexer.WithLogger(cfg.Logger), lexer.WithDebug(cfg.Debug)),
		},
	}

	defer func() {
		if err == nil || !cfg.Debug {
			return
		}
		cfg.Logger.Debugf("partial format description: %s", spew.Sdump(p.partial))
	}()

	if items, err = p.parseItems(false); err != nil {
		items = nil
		return
	}

	if cfg.Debug {
		cfg.Logger.Debugf("parsed %d items from %d bytes", len(items), len(input))
	}

	return
}

// ParseString builds the syntax tree of a format description held in a string.
func ParseString(input string, options ...Option) ([]Item, error) {
	return Parse([]byte(input), options...)
}

func (s *tokenStream) peek() (lexer.Token, bool) {
	if !s.filled {
		s.peeked, s.ok = s.lexer.Token()
		s.filled = true
	}

	return s.peeked, s.ok
}

func (s *tokenStream) next() (t lexer.Token, ok bool) {
	t, ok = s.peek()
	s.filled = false

	return
}

// nextIf consumes the next token when it satisfies fn.
func (s *tokenStream) nextIf(fn func(lexer.Token) bool) (t lexer.Token, ok bool) {
	if t, ok = s.peek(); !ok || !fn(t) {
		ok = false
		return
	}
	s.filled = false

	return
}

func isOpening(t lexer.Token) bool    { return t.IsBracket(lexer.BracketOpening) }
func isClosing(t lexer.Token) bool    { return t.IsBracket(lexer.BracketClosing) }
func isWhitespace(t lexer.Token) bool { return t.IsComponentPart(lexer.ComponentWhitespace) }
func isWord(t lexer.Token) bool       { return t.IsComponentPart(lexer.ComponentNotWhitespace) }

// parseItems consumes items until the input is exhausted or, when nested, a closing bracket is
// next.
func (p *parser) parseItems(nested bool) (items []Item, err error) {
	for {
		tok, ok := p.tokens.peek()
		if !ok || (nested && isClosing(tok)) {
			return
		}
		p.tokens.next()

		var item Item
		switch tok.Kind {
		case lexer.TokenLiteral:
			if nested {
				panic("internal error: literal token within a nested description")
			}
			item = &Literal{Value: tok.Value}

		case lexer.TokenComponentPart:
			if !nested {
				panic("internal error: component part outside of brackets")
			}
			// Bare text within a nested description is literal.
			item = &Literal{Value: tok.Value}

		case lexer.TokenBracket:
			if item, err = p.parseBracket(tok, nested); err != nil {
				return
			}

		default:
			panic(fmt.Sprintf("internal error: unknown token kind %d", tok.Kind))
		}

		items = append(items, item)
		if !nested {
			p.partial = items
		}
	}
}

func (p *parser) parseBracket(tok lexer.Token, nested bool) (item Item, err error) {
	if isOpening(tok) {
		// Escapes are only recognized at the top level.
		if !nested {
			if second, ok := p.tokens.nextIf(isOpening); ok {
				item = &EscapedBracket{Kind: lexer.BracketOpening, First: tok.Location, Second: second.Location}
				return
			}
		}

		return p.parseComponent(tok.Location)
	}

	// Closing brackets reaching the top level always arrive in escaped pairs.
	second, ok := p.tokens.nextIf(isClosing)
	if nested || !ok {
		panic(fmt.Sprintf("internal error: unmatched closing bracket at byte index %d", tok.Location.Byte))
	}
	item = &EscapedBracket{Kind: lexer.BracketClosing, First: tok.Location, Second: second.Location}

	return
}

// parseComponent consumes a component or optional group; the opening bracket has been consumed.
func (p *parser) parseComponent(opening types.Location) (item Item, err error) {
	var leading *Bytes
	if ws, ok := p.tokens.nextIf(isWhitespace); ok {
		leading = &ws.Value
	}

	name, ok := p.tokens.nextIf(isWord)
	if !ok {
		span := opening.Offset(1).Span()
		if leading != nil {
			span = leading.Span
		}
		err = newError(MissingComponentName, span.Error("expected component name"))
		return
	}

	if name.Value.Value.Equal(optionalKeyword) {
		return p.parseOptional(opening, leading, name.Value)
	}

	c := &Component{OpeningBracket: opening, LeadingWhitespace: leading, Name: name.Value}
	for {
		ws, ok := p.tokens.nextIf(isWhitespace)
		if !ok {
			break
		}

		tok, ok := p.tokens.peek()
		if ok && isOpening(tok) {
			err = newError(InvalidModifier, tok.Span().Error("modifiers cannot contain brackets")).withValue(string(lexer.OpeningBracket))
			return
		}
		if !ok || !isWord(tok) {
			c.TrailingWhitespace = &ws.Value
			break
		}
		p.tokens.next()

		var modifier Modifier
		if modifier, err = parseModifier(ws.Value, tok.Value); err != nil {
			return
		}
		c.Modifiers = append(c.Modifiers, modifier)
	}

	closing, ok := p.tokens.nextIf(isClosing)
	if !ok {
		err = newError(UnclosedOpeningBracket, opening.Error("unclosed bracket"))
		return
	}
	c.ClosingBracket = closing.Location
	item = c

	return
}

// parseModifier splits a `key:value` token.
func parseModifier(leading, tok Bytes) (m Modifier, err error) {
	span := tok.Span

	colon := tok.Value.Locate(':')
	if colon < 0 || tok.Value[colon+1:].Locate(':') >= 0 {
		err = newError(InvalidModifier, span.Error("modifier must be of the form `key:value`")).withValue(tok.Value.String())
		return
	}

	key, value, _ := tok.Value.Cut(':')
	switch {
	case len(key) < 1:
		err = newError(InvalidModifier, span.ShrinkToStart().Error("expected modifier key")).withValue("")
		return
	case len(value) < 1:
		err = newError(InvalidModifier, span.ShrinkToEnd().Error("expected modifier value")).withValue("")
		return
	}

	m = Modifier{
		LeadingWhitespace: leading,
		Key:               types.NewSpanned(key, span.ShrinkToBefore(colon)),
		Colon:             span.Start.Offset(colon),
		Value:             types.NewSpanned(value, span.ShrinkToAfter(colon)),
	}

	return
}

// parseOptional consumes the remainder of an optional group after its keyword.
func (p *parser) parseOptional(opening types.Location, leading *Bytes, keyword Bytes) (item Item, err error) {
	ws, ok := p.tokens.nextIf(isWhitespace)
	if !ok {
		err = newError(Expected, keyword.Span.ShrinkToEnd().Error("expected whitespace")).withWhat("whitespace after `optional`")
		return
	}

	o := &Optional{OpeningBracket: opening, LeadingWhitespace: leading, Keyword: keyword, Whitespace: ws.Value}
	if o.Nested, err = p.parseNested(ws.Value.Span.End); err != nil {
		return
	}

	closing, ok := p.tokens.nextIf(isClosing)
	if !ok {
		err = newError(UnclosedOpeningBracket, opening.Error("unclosed bracket"))
		return
	}
	o.ClosingBracket = closing.Location
	item = o

	return
}

// parseNested consumes a bracketed description; last is the end of the preceding token.
func (p *parser) parseNested(last types.Location) (nested NestedFormatDescription, err error) {
	opening, ok := p.tokens.nextIf(isOpening)
	if !ok {
		err = newError(Expected, last.Error("expected opening bracket")).withWhat("opening bracket")
		return
	}
	nested.OpeningBracket = opening.Location

	if nested.Items, err = p.parseItems(true); err != nil {
		return
	}

	closing, ok := p.tokens.nextIf(isClosing)
	if !ok {
		err = newError(UnclosedOpeningBracket, opening.Location.Error("unclosed bracket"))
		return
	}
	nested.ClosingBracket = closing.Location

	if ws, ok := p.tokens.nextIf(isWhitespace); ok {
		nested.TrailingWhitespace = &ws.Value
	}

	return
}
