// SPDX-License-Identifier: MIT

// Package scan matches text against a compiled format description, extracting the raw values of
// its components.
package scan

import (
	"github.com/davecgh/go-spew/spew"

	"gitlab.com/fisherprime/timefmt"
	"gitlab.com/fisherprime/timefmt/combinator"
)

type scanner struct {
	cfg *timefmt.Config
}

// Scan matches the entire input against desc.
func Scan(desc timefmt.Description, input []byte, options ...timefmt.Option) (parsed *Parsed, err error) {
	parsed, n, err := ScanPrefix(desc, input, options...)
	if err != nil {
		return
	}

	if n < len(input) {
		parsed, err = nil, &Error{Kind: UnexpectedTrailingCharacters, Index: n}
	}

	return
}

// ScanPrefix matches the start of input against desc, returning the number of bytes consumed.
func ScanPrefix(desc timefmt.Description, input []byte, options ...timefmt.Option) (parsed *Parsed, n int, err error) {
	s := &scanner{cfg: timefmt.NewConfig(options...)}
	c := combinator.NewCursor(input)

	parsed = &Parsed{}
	if err = s.items(c, desc, parsed); err != nil {
		if s.cfg.Debug {
			s.cfg.Logger.Debugf("scan failed: %v, partial result: %s", err, spew.Sdump(parsed))
		}
		parsed = nil
		return
	}
	n = c.Pos()

	return
}

func (s *scanner) items(c *combinator.Cursor, desc timefmt.Description, parsed *Parsed) error {
	for _, item := range desc {
		switch item := item.(type) {
		case timefmt.LiteralItem:
			if _, ok := (combinator.StringParser{Expected: item.Value}).Parse(c); !ok {
				return s.failure(c, InvalidLiteral, "")
			}

		case timefmt.ComponentItem:
			if !scanComponent(c, item.Component, parsed) {
				return s.failure(c, InvalidComponent, item.Component.Name())
			}

		case timefmt.OptionalItem:
			// Optional items are all-or-nothing, fields included.
			scratch, scratchParsed := *c, *parsed
			if err := s.items(&scratch, item.Items, &scratchParsed); err != nil {
				if s.cfg.Debug {
					s.cfg.Logger.Debugf("optional item at %s skipped: %v", item.Span, err)
				}
				continue
			}
			*c, *parsed = scratch, scratchParsed
		}
	}

	return nil
}

func (s *scanner) failure(c *combinator.Cursor, kind ErrorKind, component string) *Error {
	if c.Done() {
		kind = InsufficientInput
	}

	return &Error{Kind: kind, Component: component, Index: c.Pos()}
}
