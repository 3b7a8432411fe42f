// SPDX-License-Identifier: MIT
package scan

import "time"

type (
	// Field is a value scanned from the input, Set is false when no component produced it.
	Field[T any] struct {
		Value T
		Set   bool
	}

	// Parsed holds the raw field values scanned from an input.
	//
	// No calendar validation is performed; a Parsed may describe a date that does not exist.
	Parsed struct {
		Year           Field[int32]
		YearLastTwo    Field[uint8]
		ISOYear        Field[int32]
		ISOYearLastTwo Field[uint8]

		Month   Field[uint8]
		Day     Field[uint8]
		Ordinal Field[uint16]
		Weekday Field[time.Weekday]

		ISOWeekNumber    Field[uint8]
		SundayWeekNumber Field[uint8]
		MondayWeekNumber Field[uint8]

		Hour24   Field[uint8]
		Hour12   Field[uint8]
		HourIsPM Field[bool]
		Minute   Field[uint8]
		Second   Field[uint8]
		// Subsecond in nanoseconds.
		Subsecond Field[uint32]
	}
)

func (f *Field[T]) set(v T) { f.Value, f.Set = v, true }

// Map obtains the set fields keyed by their snake_case names.
func (p *Parsed) Map() map[string]any {
	m := make(map[string]any)

	put := func(name string, set bool, value any) {
		if set {
			m[name] = value
		}
	}

	put("year", p.Year.Set, p.Year.Value)
	put("year_last_two", p.YearLastTwo.Set, p.YearLastTwo.Value)
	put("iso_year", p.ISOYear.Set, p.ISOYear.Value)
	put("iso_year_last_two", p.ISOYearLastTwo.Set, p.ISOYearLastTwo.Value)
	put("month", p.Month.Set, p.Month.Value)
	put("day", p.Day.Set, p.Day.Value)
	put("ordinal", p.Ordinal.Set, p.Ordinal.Value)
	put("weekday", p.Weekday.Set, p.Weekday.Value.String())
	put("iso_week_number", p.ISOWeekNumber.Set, p.ISOWeekNumber.Value)
	put("sunday_week_number", p.SundayWeekNumber.Set, p.SundayWeekNumber.Value)
	put("monday_week_number", p.MondayWeekNumber.Set, p.MondayWeekNumber.Value)
	put("hour_24", p.Hour24.Set, p.Hour24.Value)
	put("hour_12", p.Hour12.Set, p.Hour12.Value)
	put("hour_is_pm", p.HourIsPM.Set, p.HourIsPM.Value)
	put("minute", p.Minute.Set, p.Minute.Value)
	put("second", p.Second.Set, p.Second.Value)
	put("subsecond", p.Subsecond.Set, p.Subsecond.Value)

	return m
}
