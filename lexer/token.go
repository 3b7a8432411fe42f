// SPDX-License-Identifier: MIT
package lexer

import (
	"fmt"

	"gitlab.com/fisherprime/timefmt/types"
)

type (
	// TokenKind identifies the variant held by a Token.
	TokenKind int

	// BracketKind distinguishes opening & closing brackets.
	BracketKind int

	// ComponentKind distinguishes whitespace & non-whitespace parts of a component.
	ComponentKind int

	// Token holds one lexed fragment of a format description.
	Token struct {
		// Value holds the bytes of a TokenLiteral or TokenComponentPart.
		Value types.Spanned[types.ByteSlice]
		// Location holds the position of a TokenBracket.
		Location types.Location

		Kind      TokenKind
		Bracket   BracketKind
		Component ComponentKind
	}
)

const (
	_                  TokenKind = iota // Consume 0 to start actual numbering at 1.
	TokenLiteral                        // Free text outside of brackets.
	TokenBracket                        // '[' or ']'.
	TokenComponentPart                  // A run of bytes within brackets.
)

const (
	BracketOpening BracketKind = iota // '['.
	BracketClosing                    // ']'.
)

const (
	ComponentWhitespace    ComponentKind = iota // A run of ASCII whitespace.
	ComponentNotWhitespace                      // A run of anything else.
)

// IsBracket reports whether the Token is a bracket of the provided kind.
func (t Token) IsBracket(kind BracketKind) bool { return t.Kind == TokenBracket && t.Bracket == kind }

// IsComponentPart reports whether the Token is a component part of the provided kind.
func (t Token) IsComponentPart(kind ComponentKind) bool {
	return t.Kind == TokenComponentPart && t.Component == kind
}

// Span obtains the source range covered by the Token.
func (t Token) Span() types.Span {
	if t.Kind == TokenBracket {
		return t.Location.To(t.Location.Offset(1))
	}

	return t.Value.Span
}

// String implements fmt.Stringer.
func (t Token) String() string {
	switch t.Kind {
	case TokenLiteral:
		return fmt.Sprintf("Literal(%q)@%s", t.Value.Value, t.Value.Span)
	case TokenBracket:
		return fmt.Sprintf("%s@%d", t.Bracket, t.Location.Byte)
	case TokenComponentPart:
		return fmt.Sprintf("%s(%q)@%s", t.Component, t.Value.Value, t.Value.Span)
	default:
		return "Invalid"
	}
}

// String implements fmt.Stringer.
func (k BracketKind) String() string {
	if k == BracketOpening {
		return "Opening"
	}

	return "Closing"
}

// String implements fmt.Stringer.
func (k ComponentKind) String() string {
	if k == ComponentWhitespace {
		return "Whitespace"
	}

	return "NotWhitespace"
}
