// SPDX-License-Identifier: MIT

// Package combinator implements the low-level parsers used to scan text against a compiled format
// description.
//
// Every Parser either advances the Cursor past what it consumed and reports success, or leaves the
// Cursor unchanged and reports no match. Compound parsers are built from simpler ones through
// Lazy so that no parser partially consumes input on failure.
package combinator

import (
	"bytes"
)

type (
	// Parser attempts to consume a T from a Cursor.
	Parser[T any] interface {
		Parse(c *Cursor) (value T, ok bool)
	}

	// ParserFunc adapts a function to the Parser interface.
	ParserFunc[T any] func(c *Cursor) (T, bool)

	// LazyParser commits its inner parser's progress only on success.
	LazyParser[T any] struct {
		Inner Parser[T]
	}

	// FlatMapParser applies a fallible function to its inner parser's value.
	FlatMapParser[T, U any] struct {
		Inner Parser[T]
		Fn    func(T) (U, bool)
	}

	// OptionalParser never fails, reporting whether its inner parser matched.
	OptionalParser[T any] struct {
		Inner Parser[T]
	}

	// StringParser matches an exact byte sequence.
	StringParser struct {
		Expected []byte
		// Fold enables ASCII case-insensitive matching.
		Fold bool
	}

	// FirstStringOfParser matches the first of its candidates present at the Cursor.
	FirstStringOfParser struct {
		Candidates []StringParser
	}

	// Pair associates a literal with a value.
	Pair[T any] struct {
		Literal string
		Value   T
	}

	// FirstMatchParser yields the value of the first Pair whose literal is present at the Cursor.
	FirstMatchParser[T any] struct {
		Pairs []Pair[T]
		Fold  bool
	}

	// ByteParser matches a single byte satisfying Match.
	ByteParser struct {
		Match func(byte) bool
	}

	// EndParser matches only when the input is exhausted.
	EndParser struct{}

	// TakeParser consumes exactly N bytes of any value.
	TakeParser struct {
		N int
	}
)

// Parse implements the Parser interface.
func (f ParserFunc[T]) Parse(c *Cursor) (T, bool) { return f(c) }

// Lazy runs a parser against a scratch Cursor, only mutating the original on success.
//
// This is helpful when there may be multiple steps in parsing, as wrapping them ensures the
// input is never partially consumed.
func Lazy[T any](inner Parser[T]) LazyParser[T] { return LazyParser[T]{Inner: inner} }

// Parse implements the Parser interface.
func (p LazyParser[T]) Parse(c *Cursor) (value T, ok bool) {
	scratch := *c
	if value, ok = p.Inner.Parse(&scratch); ok {
		*c = scratch
	}

	return
}

// FlatMap maps the resulting value to a new value, which may be rejected.
func FlatMap[T, U any](inner Parser[T], fn func(T) (U, bool)) FlatMapParser[T, U] {
	return FlatMapParser[T, U]{Inner: inner, Fn: fn}
}

// Map maps the resulting value to a new value.
func Map[T, U any](inner Parser[T], fn func(T) U) FlatMapParser[T, U] {
	return FlatMap(inner, func(v T) (U, bool) { return fn(v), true })
}

// Parse implements the Parser interface.
func (p FlatMapParser[T, U]) Parse(c *Cursor) (value U, ok bool) {
	scratch := *c

	v, ok := p.Inner.Parse(&scratch)
	if !ok {
		return
	}

	if value, ok = p.Fn(v); ok {
		*c = scratch
	}

	return
}

// Optional wraps a parser so that it always succeeds.
func Optional[T any](inner Parser[T]) OptionalParser[T] { return OptionalParser[T]{Inner: inner} }

// Parse implements the Parser interface; matched is false when the inner parser failed.
func (p OptionalParser[T]) Parse(c *Cursor) (matched bool, ok bool) {
	_, matched = p.Inner.Parse(c)
	return matched, true
}

// String matches the expected string.
func String(expected string) StringParser { return StringParser{Expected: []byte(expected)} }

// StringFold matches the expected string, ignoring ASCII case.
func StringFold(expected string) StringParser {
	return StringParser{Expected: []byte(expected), Fold: true}
}

// Parse implements the Parser interface, returning the consumed bytes.
func (p StringParser) Parse(c *Cursor) (consumed []byte, ok bool) {
	n := len(p.Expected)
	if c.Len() < n {
		return
	}

	head := c.Remaining()[:n]
	if p.Fold {
		ok = equalFoldASCII(head, p.Expected)
	} else {
		ok = bytes.Equal(head, p.Expected)
	}

	if ok {
		consumed = c.advance(n)
	}

	return
}

// FirstStringOf matches the first candidate present at the Cursor.
//
// Candidates are tried in order: a candidate that is a prefix of a later one shadows it, so
// callers must order longer, more specific candidates first.
func FirstStringOf(candidates ...string) FirstStringOfParser {
	p := FirstStringOfParser{Candidates: make([]StringParser, len(candidates))}
	for index := range candidates {
		p.Candidates[index] = String(candidates[index])
	}

	return p
}

// Parse implements the Parser interface.
func (p FirstStringOfParser) Parse(c *Cursor) (consumed []byte, ok bool) {
	for _, candidate := range p.Candidates {
		if consumed, ok = candidate.Parse(c); ok {
			return
		}
	}

	return
}

// FirstMatch consumes the first matching literal, returning its associated value.
//
// Pairs share the ordering precondition of FirstStringOf.
func FirstMatch[T any](pairs ...Pair[T]) FirstMatchParser[T] { return FirstMatchParser[T]{Pairs: pairs} }

// FirstMatchFold is FirstMatch ignoring ASCII case.
func FirstMatchFold[T any](pairs ...Pair[T]) FirstMatchParser[T] {
	return FirstMatchParser[T]{Pairs: pairs, Fold: true}
}

// Parse implements the Parser interface.
func (p FirstMatchParser[T]) Parse(c *Cursor) (value T, ok bool) {
	for _, pair := range p.Pairs {
		s := StringParser{Expected: []byte(pair.Literal), Fold: p.Fold}
		if _, ok = s.Parse(c); ok {
			value = pair.Value
			return
		}
	}

	return
}

// ASCIIChar matches exactly one instance of char.
func ASCIIChar(char byte) ByteParser {
	return ByteParser{Match: func(b byte) bool { return b == char }}
}

// AnyDigit matches exactly one ASCII digit.
func AnyDigit() ByteParser { return ByteParser{Match: isDigit} }

// Parse implements the Parser interface.
func (p ByteParser) Parse(c *Cursor) (b byte, ok bool) {
	if c.Done() || !p.Match(c.src[c.pos]) {
		return
	}

	b, ok = c.src[c.pos], true
	c.pos++

	return
}

// End matches only when the input is exhausted, consuming nothing.
func End() EndParser { return EndParser{} }

// Parse implements the Parser interface.
func (EndParser) Parse(c *Cursor) (struct{}, bool) { return struct{}{}, c.Done() }

// Take consumes the next n bytes.
func Take(n int) TakeParser { return TakeParser{N: n} }

// Parse implements the Parser interface, returning the consumed bytes.
func (p TakeParser) Parse(c *Cursor) (consumed []byte, ok bool) {
	if p.N < 0 || c.Len() < p.N {
		return
	}

	return c.advance(p.N), true
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func equalFoldASCII(a, b []byte) bool {
	for index := range a {
		if toLowerASCII(a[index]) != toLowerASCII(b[index]) {
			return false
		}
	}

	return true
}

func toLowerASCII(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}

	return b
}
