// SPDX-License-Identifier: MIT
package combinator

import (
	"golang.org/x/exp/constraints"

	"gitlab.com/fisherprime/timefmt/component"
)

type (
	// DigitsParser consumes a run of N to M ASCII digits as an unsigned integer.
	//
	// A value overflowing T is a non-match.
	DigitsParser[T constraints.Unsigned] struct {
		N, M uint8
		// RejectZero treats a zero value as a non-match.
		RejectZero bool
	}

	// PaddedDigitsParser consumes a numeric field padded to a width of N.
	PaddedDigitsParser[T constraints.Unsigned] struct {
		N          uint8
		Padding    component.Padding
		RejectZero bool
	}
)

// NToMDigits consumes between n and m digits, returning the numerical value.
func NToMDigits[T constraints.Unsigned](n, m uint8) DigitsParser[T] {
	checkBounds(n, m)

	return DigitsParser[T]{N: n, M: m}
}

// ExactlyNDigits consumes exactly n digits, returning the numerical value.
func ExactlyNDigits[T constraints.Unsigned](n uint8) DigitsParser[T] { return NToMDigits[T](n, n) }

// NonZero obtains a copy of the DigitsParser rejecting zero values.
func (p DigitsParser[T]) NonZero() DigitsParser[T] {
	p.RejectZero = true
	return p
}

// Parse implements the Parser interface.
func (p DigitsParser[T]) Parse(c *Cursor) (value T, ok bool) {
	run := NToMParser[byte]{Elem: AnyDigit(), N: p.N, M: p.M}

	return FlatMap[[]byte, T](run, func(digits []byte) (T, bool) {
		return digitsToUnsigned[T](digits, p.RejectZero)
	}).Parse(c)
}

// ExactlyNDigitsPadded consumes a numeric field of width n.
//
// With PaddingNone 1 to n digits are consumed. With PaddingSpace or PaddingZero up to n-1 pad
// characters are consumed first, then exactly the remaining width in digits.
func ExactlyNDigitsPadded[T constraints.Unsigned](n uint8, padding component.Padding) PaddedDigitsParser[T] {
	return PaddedDigitsParser[T]{N: n, Padding: padding}
}

// NonZero obtains a copy of the PaddedDigitsParser rejecting zero values.
func (p PaddedDigitsParser[T]) NonZero() PaddedDigitsParser[T] {
	p.RejectZero = true
	return p
}

// Parse implements the Parser interface.
func (p PaddedDigitsParser[T]) Parse(c *Cursor) (value T, ok bool) {
	if p.N < 1 {
		return
	}

	if p.Padding == component.PaddingNone {
		return DigitsParser[T]{N: 1, M: p.N, RejectZero: p.RejectZero}.Parse(c)
	}

	padChar := byte('0')
	if p.Padding == component.PaddingSpace {
		padChar = ' '
	}

	scratch := *c

	// At least one digit must remain; a zero-padded zero is written with a final '0' digit.
	pad, _ := NToM[byte](0, p.N-1, ASCIIChar(padChar)).Parse(&scratch)
	width := p.N - uint8(len(pad))

	if value, ok = (DigitsParser[T]{N: width, M: width, RejectZero: p.RejectZero}).Parse(&scratch); ok {
		*c = scratch
	}

	return
}

// digitsToUnsigned converts a run of ASCII digits, rejecting empty runs & overflows.
func digitsToUnsigned[T constraints.Unsigned](digits []byte, rejectZero bool) (value T, ok bool) {
	if len(digits) < 1 {
		return
	}

	maxValue := ^T(0)
	for _, d := range digits {
		digit := T(d - '0')
		if value > (maxValue-digit)/10 {
			value = 0
			return
		}
		value = value*10 + digit
	}

	if rejectZero && value == 0 {
		return
	}
	ok = true

	return
}
