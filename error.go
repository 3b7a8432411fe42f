// SPDX-License-Identifier: MIT
package timefmt

import (
	"errors"
	"fmt"

	"gitlab.com/fisherprime/timefmt/types"
)

// ErrorKind classifies a format description error.
type ErrorKind int

// Format description error kinds.
const (
	MissingComponentName ErrorKind = iota + 1
	UnclosedOpeningBracket
	InvalidModifier
	Expected
	InvalidComponentName
	DuplicateModifier
	NotSupported
)

var (
	ErrMissingComponentName   = errors.New("missing component name")
	ErrUnclosedOpeningBracket = errors.New("unclosed opening bracket")
	ErrInvalidModifier        = errors.New("invalid modifier")
	ErrExpected               = errors.New("expected token")
	ErrInvalidComponentName   = errors.New("invalid component name")
	ErrDuplicateModifier      = errors.New("duplicate modifier")
	ErrNotSupported           = errors.New("not supported")

	ErrParseBatch = errors.New("failed to parse format descriptions")
	ErrPanicked   = errors.New("recovery from panic")
)

var kindSentinels = map[ErrorKind]error{
	MissingComponentName:   ErrMissingComponentName,
	UnclosedOpeningBracket: ErrUnclosedOpeningBracket,
	InvalidModifier:        ErrInvalidModifier,
	Expected:               ErrExpected,
	InvalidComponentName:   ErrInvalidComponentName,
	DuplicateModifier:      ErrDuplicateModifier,
	NotSupported:           ErrNotSupported,
}

type (
	// Error describes a malformed format description.
	//
	// Index is the byte offset of the offending input, Value the offending text (for
	// InvalidModifier, InvalidComponentName, DuplicateModifier & NotSupported) and What the
	// description of the missing token (for Expected).
	Error struct {
		Diagnostic types.Diagnostic

		Value string
		What  string

		Kind  ErrorKind
		Index int
	}

	// IndexError associates an error with the position of its input within a batch.
	IndexError struct {
		Err   error
		Index int
	}
)

func (k ErrorKind) String() string {
	if err, ok := kindSentinels[k]; ok {
		return err.Error()
	}

	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

func newError(kind ErrorKind, diagnostic types.Diagnostic) *Error {
	return &Error{Kind: kind, Index: diagnostic.Span.Start.Byte, Diagnostic: diagnostic}
}

func (e *Error) withValue(value string) *Error {
	e.Value = value
	return e
}

func (e *Error) withWhat(what string) *Error {
	e.What = what
	return e
}

func (e *Error) Error() string {
	switch e.Kind {
	case InvalidModifier, InvalidComponentName, DuplicateModifier, NotSupported:
		return fmt.Sprintf("%s `%s` at byte index %d", e.Kind, e.Value, e.Index)
	case Expected:
		return fmt.Sprintf("expected %s at byte index %d", e.What, e.Index)
	default:
		return fmt.Sprintf("%s at byte index %d", e.Kind, e.Index)
	}
}

// Unwrap obtains the sentinel error of the Error's kind.
func (e *Error) Unwrap() error { return kindSentinels[e.Kind] }

func (e *IndexError) Error() string { return fmt.Sprintf("[%d] %v", e.Index, e.Err) }

func (e *IndexError) Unwrap() error { return e.Err }
