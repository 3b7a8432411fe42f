// SPDX-License-Identifier: MIT
package component

type (
	// Component is a semantic field of a compiled format description.
	Component interface {
		// Name obtains the name the Component is written as in a format description.
		Name() string
	}

	// Day of the month.
	Day struct {
		Padding Padding
	}

	// Month of the year.
	Month struct {
		Padding       Padding
		Repr          MonthRepr
		CaseSensitive bool
	}

	// Ordinal is the day of the year.
	Ordinal struct {
		Padding Padding
	}

	// Weekday is the day of the week.
	Weekday struct {
		Repr WeekdayRepr
		// OneIndexed applies to the numeric representations.
		OneIndexed    bool
		CaseSensitive bool
	}

	// WeekNumber is the week of the year.
	WeekNumber struct {
		Padding Padding
		Repr    WeekNumberRepr
	}

	// Year is the calendar or ISO week-based year.
	Year struct {
		Padding         Padding
		Repr            YearRepr
		ISOWeekBased    bool
		SignIsMandatory bool
	}

	// Hour of the day.
	Hour struct {
		Padding       Padding
		Is12HourClock bool
	}

	// Minute of the hour.
	Minute struct {
		Padding Padding
	}

	// Period is AM or PM.
	Period struct {
		IsUppercase   bool
		CaseSensitive bool
	}

	// Second of the minute.
	Second struct {
		Padding Padding
	}

	// Subsecond is the fractional part of a second.
	Subsecond struct {
		Digits SubsecondDigits
	}

	// Ignore skips a fixed number of bytes.
	Ignore struct {
		Count uint16
	}

	// End matches only at the end of the input.
	End struct{}
)

// Name implements the Component interface.
func (Day) Name() string { return "day" }

// Name implements the Component interface.
func (Month) Name() string { return "month" }

// Name implements the Component interface.
func (Ordinal) Name() string { return "ordinal" }

// Name implements the Component interface.
func (Weekday) Name() string { return "weekday" }

// Name implements the Component interface.
func (WeekNumber) Name() string { return "week_number" }

// Name implements the Component interface.
func (Year) Name() string { return "year" }

// Name implements the Component interface.
func (Hour) Name() string { return "hour" }

// Name implements the Component interface.
func (Minute) Name() string { return "minute" }

// Name implements the Component interface.
func (Period) Name() string { return "period" }

// Name implements the Component interface.
func (Second) Name() string { return "second" }

// Name implements the Component interface.
func (Subsecond) Name() string { return "subsecond" }

// Name implements the Component interface.
func (Ignore) Name() string { return "ignore" }

// Name implements the Component interface.
func (End) Name() string { return "end" }

// NewMonth creates a Month with the default modifiers.
func NewMonth() Month { return Month{CaseSensitive: true} }

// NewWeekday creates a Weekday with the default modifiers.
func NewWeekday() Weekday { return Weekday{OneIndexed: true, CaseSensitive: true} }

// NewPeriod creates a Period with the default modifiers.
func NewPeriod() Period { return Period{IsUppercase: true, CaseSensitive: true} }
