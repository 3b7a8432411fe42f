// SPDX-License-Identifier: MIT

// Package component defines the typed components of a compiled format description and the
// modifiers refining them.
package component

type (
	// Padding describes how a numeric component is padded to its width.
	Padding int

	// MonthRepr is the representation of a Month component.
	MonthRepr int

	// WeekdayRepr is the representation of a Weekday component.
	WeekdayRepr int

	// WeekNumberRepr is the week numbering scheme of a WeekNumber component.
	WeekNumberRepr int

	// YearRepr is the representation of a Year component.
	YearRepr int

	// SubsecondDigits is the number of digits of a Subsecond component.
	SubsecondDigits int
)

const (
	PaddingZero  Padding = iota // Leading zeros, the default.
	PaddingSpace                // Leading spaces.
	PaddingNone                 // No padding; the minimum number of digits.
)

const (
	MonthNumerical MonthRepr = iota // 01 to 12, the default.
	MonthLong                       // January.
	MonthShort                      // Jan.
)

const (
	WeekdayLong   WeekdayRepr = iota // Monday, the default.
	WeekdayShort                     // Mon.
	WeekdaySunday                    // Numeric, counted from Sunday.
	WeekdayMonday                    // Numeric, counted from Monday.
)

const (
	WeekNumberISO    WeekNumberRepr = iota // ISO 8601 week, the default.
	WeekNumberSunday                       // Weeks start on Sunday.
	WeekNumberMonday                       // Weeks start on Monday.
)

const (
	YearFull    YearRepr = iota // The complete year, the default.
	YearLastTwo                 // The final two digits.
)

const (
	SubsecondOneOrMore SubsecondDigits = iota // Any number of digits, the default.
	SubsecondOne
	SubsecondTwo
	SubsecondThree
	SubsecondFour
	SubsecondFive
	SubsecondSix
	SubsecondSeven
	SubsecondEight
	SubsecondNine
)

// Width obtains the exact number of digits, 0 for SubsecondOneOrMore.
func (d SubsecondDigits) Width() uint8 { return uint8(d) }

// String implements fmt.Stringer.
func (p Padding) String() string {
	switch p {
	case PaddingSpace:
		return "space"
	case PaddingNone:
		return "none"
	default:
		return "zero"
	}
}
