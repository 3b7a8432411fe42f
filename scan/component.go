// SPDX-License-Identifier: MIT
package scan

import (
	"time"

	"golang.org/x/exp/constraints"

	"gitlab.com/fisherprime/timefmt/combinator"
	"gitlab.com/fisherprime/timefmt/component"
)

var (
	monthsLong = []combinator.Pair[uint8]{
		{Literal: "January", Value: 1}, {Literal: "February", Value: 2}, {Literal: "March", Value: 3}, {Literal: "April", Value: 4}, {Literal: "May", Value: 5}, {Literal: "June", Value: 6},
		{Literal: "July", Value: 7}, {Literal: "August", Value: 8}, {Literal: "September", Value: 9}, {Literal: "October", Value: 10}, {Literal: "November", Value: 11}, {Literal: "December", Value: 12},
	}
	monthsShort = []combinator.Pair[uint8]{
		{Literal: "Jan", Value: 1}, {Literal: "Feb", Value: 2}, {Literal: "Mar", Value: 3}, {Literal: "Apr", Value: 4}, {Literal: "May", Value: 5}, {Literal: "Jun", Value: 6},
		{Literal: "Jul", Value: 7}, {Literal: "Aug", Value: 8}, {Literal: "Sep", Value: 9}, {Literal: "Oct", Value: 10}, {Literal: "Nov", Value: 11}, {Literal: "Dec", Value: 12},
	}

	weekdaysLong = []combinator.Pair[time.Weekday]{
		{Literal: "Monday", Value: time.Monday}, {Literal: "Tuesday", Value: time.Tuesday}, {Literal: "Wednesday", Value: time.Wednesday},
		{Literal: "Thursday", Value: time.Thursday}, {Literal: "Friday", Value: time.Friday}, {Literal: "Saturday", Value: time.Saturday},
		{Literal: "Sunday", Value: time.Sunday},
	}
	weekdaysShort = []combinator.Pair[time.Weekday]{
		{Literal: "Mon", Value: time.Monday}, {Literal: "Tue", Value: time.Tuesday}, {Literal: "Wed", Value: time.Wednesday}, {Literal: "Thu", Value: time.Thursday},
		{Literal: "Fri", Value: time.Friday}, {Literal: "Sat", Value: time.Saturday}, {Literal: "Sun", Value: time.Sunday},
	}

	periodsUpper = []combinator.Pair[bool]{{Literal: "AM", Value: false}, {Literal: "PM", Value: true}}
	periodsLower = []combinator.Pair[bool]{{Literal: "am", Value: false}, {Literal: "pm", Value: true}}
)

// scanComponent consumes a single component, recording its value in parsed.
//
// The Cursor is left unchanged when the component does not match.
func scanComponent(c *combinator.Cursor, comp component.Component, parsed *Parsed) bool {
	switch comp := comp.(type) {
	case component.Day:
		return assign(c, ranged(padded[uint8](2, comp.Padding), 1, 31), &parsed.Day)

	case component.Month:
		var p combinator.Parser[uint8]
		switch comp.Repr {
		case component.MonthLong:
			p = names(monthsLong, comp.CaseSensitive)
		case component.MonthShort:
			p = names(monthsShort, comp.CaseSensitive)
		default:
			p = ranged(padded[uint8](2, comp.Padding), 1, 12)
		}
		return assign(c, p, &parsed.Month)

	case component.Ordinal:
		return assign(c, ranged(padded[uint16](3, comp.Padding), 1, 366), &parsed.Ordinal)

	case component.Weekday:
		return assign(c, weekday(comp), &parsed.Weekday)

	case component.WeekNumber:
		switch comp.Repr {
		case component.WeekNumberSunday:
			return assign(c, ranged(padded[uint8](2, comp.Padding), 0, 53), &parsed.SundayWeekNumber)
		case component.WeekNumberMonday:
			return assign(c, ranged(padded[uint8](2, comp.Padding), 0, 53), &parsed.MondayWeekNumber)
		default:
			return assign(c, ranged(padded[uint8](2, comp.Padding), 1, 53), &parsed.ISOWeekNumber)
		}

	case component.Year:
		if comp.Repr == component.YearLastTwo {
			dst := &parsed.YearLastTwo
			if comp.ISOWeekBased {
				dst = &parsed.ISOYearLastTwo
			}
			return assign[uint8](c, padded[uint8](2, comp.Padding), dst)
		}

		dst := &parsed.Year
		if comp.ISOWeekBased {
			dst = &parsed.ISOYear
		}
		return assign(c, year(comp), dst)

	case component.Hour:
		if comp.Is12HourClock {
			return assign(c, ranged(padded[uint8](2, comp.Padding), 1, 12), &parsed.Hour12)
		}
		return assign(c, ranged(padded[uint8](2, comp.Padding), 0, 23), &parsed.Hour24)

	case component.Minute:
		return assign(c, ranged(padded[uint8](2, comp.Padding), 0, 59), &parsed.Minute)

	case component.Second:
		// Leap seconds are accepted.
		return assign(c, ranged(padded[uint8](2, comp.Padding), 0, 60), &parsed.Second)

	case component.Period:
		pairs := periodsLower
		if comp.IsUppercase {
			pairs = periodsUpper
		}
		return assign(c, names(pairs, comp.CaseSensitive), &parsed.HourIsPM)

	case component.Subsecond:
		return assign(c, subsecond(comp.Digits), &parsed.Subsecond)

	case component.Ignore:
		_, ok := combinator.Take(int(comp.Count)).Parse(c)
		return ok

	case component.End:
		_, ok := combinator.End().Parse(c)
		return ok

	default:
		return false
	}
}

func assign[T any](c *combinator.Cursor, p combinator.Parser[T], dst *Field[T]) bool {
	v, ok := p.Parse(c)
	if ok {
		dst.set(v)
	}

	return ok
}

func padded[T constraints.Unsigned](n uint8, padding component.Padding) combinator.Parser[T] {
	return combinator.ExactlyNDigitsPadded[T](n, padding)
}

// ranged rejects values outside of [lo, hi].
func ranged[T constraints.Unsigned](p combinator.Parser[T], lo, hi T) combinator.Parser[T] {
	return combinator.FlatMap(p, func(v T) (T, bool) { return v, v >= lo && v <= hi })
}

func names[T any](pairs []combinator.Pair[T], caseSensitive bool) combinator.Parser[T] {
	if caseSensitive {
		return combinator.FirstMatch(pairs...)
	}

	return combinator.FirstMatchFold(pairs...)
}

func weekday(w component.Weekday) combinator.Parser[time.Weekday] {
	switch w.Repr {
	case component.WeekdayLong:
		return names(weekdaysLong, w.CaseSensitive)
	case component.WeekdayShort:
		return names(weekdaysShort, w.CaseSensitive)
	}

	var offset uint8
	if w.OneIndexed {
		offset = 1
	}

	return combinator.FlatMap[uint8, time.Weekday](combinator.ExactlyNDigits[uint8](1), func(v uint8) (day time.Weekday, ok bool) {
		if v < offset || v-offset > 6 {
			return
		}

		index := time.Weekday(v - offset)
		if w.Repr == component.WeekdayMonday {
			index = (index + 1) % 7
		}

		return index, true
	})
}

func year(y component.Year) combinator.Parser[int32] {
	signs := combinator.FirstMatch(combinator.Pair[int32]{Literal: "+", Value: 1}, combinator.Pair[int32]{Literal: "-", Value: -1})
	digits := combinator.ExactlyNDigitsPadded[uint32](4, y.Padding)

	return combinator.Lazy[int32](combinator.ParserFunc[int32](func(c *combinator.Cursor) (value int32, ok bool) {
		sign, signed := signs.Parse(c)
		if !signed {
			if y.SignIsMandatory {
				return
			}
			sign = 1
		}

		v, ok := digits.Parse(c)
		if !ok {
			return
		}

		return sign * int32(v), true
	}))
}

// subsecond scans a fraction of a second, returning nanoseconds.
//
// Digits beyond the ninth are consumed but do not contribute to the value.
func subsecond(digits component.SubsecondDigits) combinator.Parser[uint32] {
	return combinator.ParserFunc[uint32](func(c *combinator.Cursor) (nanos uint32, ok bool) {
		var run []byte
		if width := digits.Width(); width > 0 {
			if run, ok = combinator.ExactlyN[byte](width, combinator.AnyDigit()).Parse(c); !ok {
				return
			}
		} else {
			mark, digit := c.Pos(), combinator.AnyDigit()
			for {
				if _, matched := digit.Parse(c); !matched {
					break
				}
			}
			if run = c.Since(mark); len(run) < 1 {
				return
			}
		}

		significant := min(len(run), 9)
		for _, d := range run[:significant] {
			nanos = nanos*10 + uint32(d-'0')
		}
		for index := significant; index < 9; index++ {
			nanos *= 10
		}

		return nanos, true
	})
}
