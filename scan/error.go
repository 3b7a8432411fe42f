// SPDX-License-Identifier: MIT
package scan

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a scanning failure.
type ErrorKind int

// Scanning error kinds.
const (
	InvalidLiteral ErrorKind = iota + 1
	InvalidComponent
	InsufficientInput
	UnexpectedTrailingCharacters
)

// Scanning errors.
var (
	ErrInvalidLiteral               = errors.New("invalid literal")
	ErrInvalidComponent             = errors.New("invalid component")
	ErrInsufficientInput            = errors.New("insufficient input")
	ErrUnexpectedTrailingCharacters = errors.New("unexpected trailing characters")
)

// Error describes where & why the input did not match a Description.
type Error struct {
	// Component is the name of the component that failed, if any.
	Component string

	Kind  ErrorKind
	Index int
}

func (e *Error) Error() string {
	if e.Component != "" {
		return fmt.Sprintf("%v: `%s` at byte index %d", e.Unwrap(), e.Component, e.Index)
	}

	return fmt.Sprintf("%v at byte index %d", e.Unwrap(), e.Index)
}

// Unwrap obtains the sentinel error of the Error's kind.
func (e *Error) Unwrap() error {
	switch e.Kind {
	case InvalidLiteral:
		return ErrInvalidLiteral
	case InvalidComponent:
		return ErrInvalidComponent
	case InsufficientInput:
		return ErrInsufficientInput
	case UnexpectedTrailingCharacters:
		return ErrUnexpectedTrailingCharacters
	default:
		return nil
	}
}
