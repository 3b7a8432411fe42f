// SPDX-License-Identifier: MIT
package timefmt

import (
	"gitlab.com/fisherprime/timefmt/lexer"
	"gitlab.com/fisherprime/timefmt/types"
)

type (
	// Bytes is a fragment of the parsed input along with its location.
	Bytes = types.Spanned[types.ByteSlice]

	// Item is one part of a parsed format description.
	//
	// The concrete types are *Literal, *EscapedBracket, *Component & *Optional.
	Item interface {
		// Span obtains the source range covered by the Item.
		Span() types.Span

		isItem()
	}

	// Literal is text formatted and parsed as-is.
	Literal struct {
		Value Bytes
	}

	// EscapedBracket is a pair of brackets standing for one literal bracket.
	EscapedBracket struct {
		Kind   lexer.BracketKind
		First  types.Location
		Second types.Location
	}

	// Component is a semantic field along with its modifiers.
	Component struct {
		OpeningBracket types.Location
		// LeadingWhitespace between the opening bracket & name.
		LeadingWhitespace *Bytes
		Name              Bytes
		// Modifiers in source order.
		Modifiers []Modifier
		// TrailingWhitespace between the modifiers & closing bracket.
		TrailingWhitespace *Bytes
		ClosingBracket     types.Location
	}

	// Optional is a sequence of items that may be absent from the scanned text.
	Optional struct {
		OpeningBracket types.Location
		// LeadingWhitespace between the opening bracket & keyword.
		LeadingWhitespace *Bytes
		Keyword           Bytes
		// Whitespace between the keyword & the nested description.
		Whitespace     Bytes
		Nested         NestedFormatDescription
		ClosingBracket types.Location
	}

	// NestedFormatDescription is a bracketed sequence of items within another description.
	NestedFormatDescription struct {
		OpeningBracket types.Location
		Items          []Item
		ClosingBracket types.Location
		// TrailingWhitespace between the closing bracket & the enclosing closing bracket.
		TrailingWhitespace *Bytes
	}

	// Modifier is a `key:value` pair refining a Component.
	Modifier struct {
		LeadingWhitespace Bytes
		Key               Bytes
		Colon             types.Location
		Value             Bytes
	}
)

func (*Literal) isItem()        {}
func (*EscapedBracket) isItem() {}
func (*Component) isItem()      {}
func (*Optional) isItem()       {}

// Span implements the Item interface.
func (l *Literal) Span() types.Span { return l.Value.Span }

// Span implements the Item interface.
func (e *EscapedBracket) Span() types.Span { return e.First.To(e.Second.Offset(1)) }

// Span implements the Item interface.
func (c *Component) Span() types.Span { return c.OpeningBracket.To(c.ClosingBracket.Offset(1)) }

// Span implements the Item interface.
func (o *Optional) Span() types.Span { return o.OpeningBracket.To(o.ClosingBracket.Offset(1)) }

// Leaves lists the source ranges of every token making up items, in source order.
//
// For a successfully parsed description the ranges are contiguous and cover the entire input.
func Leaves(items []Item) (spans []types.Span) {
	bracket := func(l types.Location) types.Span { return l.To(l.Offset(1)) }

	for _, item := range items {
		switch item := item.(type) {
		case *Literal:
			spans = append(spans, item.Value.Span)
		case *EscapedBracket:
			spans = append(spans, bracket(item.First), bracket(item.Second))
		case *Component:
			spans = append(spans, bracket(item.OpeningBracket))
			if item.LeadingWhitespace != nil {
				spans = append(spans, item.LeadingWhitespace.Span)
			}
			spans = append(spans, item.Name.Span)
			for _, m := range item.Modifiers {
				spans = append(spans, m.LeadingWhitespace.Span, m.Key.Span, bracket(m.Colon), m.Value.Span)
			}
			if item.TrailingWhitespace != nil {
				spans = append(spans, item.TrailingWhitespace.Span)
			}
			spans = append(spans, bracket(item.ClosingBracket))
		case *Optional:
			spans = append(spans, bracket(item.OpeningBracket))
			if item.LeadingWhitespace != nil {
				spans = append(spans, item.LeadingWhitespace.Span)
			}
			spans = append(spans, item.Keyword.Span, item.Whitespace.Span, bracket(item.Nested.OpeningBracket))
			spans = append(spans, Leaves(item.Nested.Items)...)
			spans = append(spans, bracket(item.Nested.ClosingBracket))
			if item.Nested.TrailingWhitespace != nil {
				spans = append(spans, item.Nested.TrailingWhitespace.Span)
			}
			spans = append(spans, bracket(item.ClosingBracket))
		}
	}

	return
}

// Reconstruct concatenates the source bytes of every leaf of items.
func Reconstruct(src []byte, items []Item) []byte {
	out := make([]byte, 0, len(src))
	for _, span := range Leaves(items) {
		out = append(out, span.Slice(src)...)
	}

	return out
}
