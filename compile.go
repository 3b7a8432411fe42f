// SPDX-License-Identifier: MIT
package timefmt

import (
	"github.com/davecgh/go-spew/spew"

	"gitlab.com/fisherprime/timefmt/combinator"
	"gitlab.com/fisherprime/timefmt/component"
	"gitlab.com/fisherprime/timefmt/lexer"
	"gitlab.com/fisherprime/timefmt/types"
)

type (
	// FormatItem is one part of a compiled Description.
	//
	// The concrete types are LiteralItem, ComponentItem & OptionalItem.
	FormatItem interface {
		isFormatItem()
	}

	// LiteralItem is text to be matched as-is.
	LiteralItem struct {
		Value []byte
	}

	// ComponentItem is a typed component along with the source range it was compiled from.
	ComponentItem struct {
		Component component.Component
		Span      types.Span
	}

	// OptionalItem is a sequence of items that may be absent.
	OptionalItem struct {
		Items Description
		Span  types.Span
	}

	// Description is a compiled format description.
	Description []FormatItem

	// setter applies a modifier value, reporting whether the value is valid.
	setter func(value types.ByteSlice) bool

	modifierSet map[string]setter
)

func (LiteralItem) isFormatItem()   {}
func (ComponentItem) isFormatItem() {}
func (OptionalItem) isFormatItem()  {}

var (
	paddings = map[string]component.Padding{
		"zero":  component.PaddingZero,
		"space": component.PaddingSpace,
		"none":  component.PaddingNone,
	}
	bools = map[string]bool{"true": true, "false": false}

	monthReprs = map[string]component.MonthRepr{
		"numerical": component.MonthNumerical,
		"long":      component.MonthLong,
		"short":     component.MonthShort,
	}
	weekdayReprs = map[string]component.WeekdayRepr{
		"long":   component.WeekdayLong,
		"short":  component.WeekdayShort,
		"sunday": component.WeekdaySunday,
		"monday": component.WeekdayMonday,
	}
	weekNumberReprs = map[string]component.WeekNumberRepr{
		"iso":    component.WeekNumberISO,
		"sunday": component.WeekNumberSunday,
		"monday": component.WeekNumberMonday,
	}
	yearReprs = map[string]component.YearRepr{
		"full":     component.YearFull,
		"last_two": component.YearLastTwo,
	}
	yearBases   = map[string]bool{"calendar": false, "iso_week": true}
	yearSigns   = map[string]bool{"automatic": false, "mandatory": true}
	hourReprs   = map[string]bool{"24": false, "12": true}
	periodCases = map[string]bool{"lower": false, "upper": true}

	subsecondDigits = map[string]component.SubsecondDigits{
		"1+": component.SubsecondOneOrMore,
		"1":  component.SubsecondOne,
		"2":  component.SubsecondTwo,
		"3":  component.SubsecondThree,
		"4":  component.SubsecondFour,
		"5":  component.SubsecondFive,
		"6":  component.SubsecondSix,
		"7":  component.SubsecondSeven,
		"8":  component.SubsecondEight,
		"9":  component.SubsecondNine,
	}

	unsupportedComponents = map[string]struct{}{
		"offset_hour":   {},
		"offset_minute": {},
		"offset_second": {},
	}
)

// Compile parses a format description & lowers it into a Description.
func Compile(input []byte, options ...Option) (desc Description, err error) {
	cfg := NewConfig(options...)

	items, err := Parse(input, WithConfig(cfg))
	if err != nil {
		return
	}

	if desc, err = Lower(items); err != nil {
		return
	}

	if cfg.Debug {
		cfg.Logger.Debugf("compiled description: %s", spew.Sdump(desc))
	}

	return
}

// Lower converts a syntax tree into a Description, validating component names & modifiers.
func Lower(items []Item) (desc Description, err error) {
	desc = make(Description, 0, len(items))

	for _, item := range items {
		var lowered FormatItem

		switch item := item.(type) {
		case *Literal:
			lowered = LiteralItem{Value: item.Value.Value}
		case *EscapedBracket:
			b := byte(lexer.OpeningBracket)
			if item.Kind == lexer.BracketClosing {
				b = lexer.ClosingBracket
			}
			lowered = LiteralItem{Value: []byte{b}}
		case *Component:
			var c component.Component
			if c, err = lowerComponent(item); err != nil {
				desc = nil
				return
			}
			lowered = ComponentItem{Component: c, Span: item.Span()}
		case *Optional:
			var nested Description
			if nested, err = Lower(item.Nested.Items); err != nil {
				desc = nil
				return
			}
			lowered = OptionalItem{Items: nested, Span: item.Span()}
		}

		desc = append(desc, lowered)
	}

	return
}

func lowerComponent(c *Component) (comp component.Component, err error) {
	name := c.Name.Value.String()

	switch name {
	case "day":
		d := component.Day{}
		err = applyModifiers(c, modifierSet{"padding": enumOf(&d.Padding, paddings)})
		comp = d

	case "month":
		m := component.NewMonth()
		err = applyModifiers(c, modifierSet{
			"padding":        enumOf(&m.Padding, paddings),
			"repr":           enumOf(&m.Repr, monthReprs),
			"case_sensitive": enumOf(&m.CaseSensitive, bools),
		})
		comp = m

	case "ordinal":
		o := component.Ordinal{}
		err = applyModifiers(c, modifierSet{"padding": enumOf(&o.Padding, paddings)})
		comp = o

	case "weekday":
		w := component.NewWeekday()
		err = applyModifiers(c, modifierSet{
			"repr":           enumOf(&w.Repr, weekdayReprs),
			"one_indexed":    enumOf(&w.OneIndexed, bools),
			"case_sensitive": enumOf(&w.CaseSensitive, bools),
		})
		comp = w

	case "week_number":
		w := component.WeekNumber{}
		err = applyModifiers(c, modifierSet{
			"padding": enumOf(&w.Padding, paddings),
			"repr":    enumOf(&w.Repr, weekNumberReprs),
		})
		comp = w

	case "year":
		y := component.Year{}
		err = applyModifiers(c, modifierSet{
			"padding": enumOf(&y.Padding, paddings),
			"repr":    enumOf(&y.Repr, yearReprs),
			"base":    enumOf(&y.ISOWeekBased, yearBases),
			"sign":    enumOf(&y.SignIsMandatory, yearSigns),
		})
		comp = y

	case "hour":
		h := component.Hour{}
		err = applyModifiers(c, modifierSet{
			"padding": enumOf(&h.Padding, paddings),
			"repr":    enumOf(&h.Is12HourClock, hourReprs),
		})
		comp = h

	case "minute":
		m := component.Minute{}
		err = applyModifiers(c, modifierSet{"padding": enumOf(&m.Padding, paddings)})
		comp = m

	case "period":
		p := component.NewPeriod()
		err = applyModifiers(c, modifierSet{
			"case":           enumOf(&p.IsUppercase, periodCases),
			"case_sensitive": enumOf(&p.CaseSensitive, bools),
		})
		comp = p

	case "second":
		s := component.Second{}
		err = applyModifiers(c, modifierSet{"padding": enumOf(&s.Padding, paddings)})
		comp = s

	case "subsecond":
		s := component.Subsecond{}
		err = applyModifiers(c, modifierSet{"digits": enumOf(&s.Digits, subsecondDigits)})
		comp = s

	case "ignore":
		i := component.Ignore{}
		if err = applyModifiers(c, modifierSet{"count": countOf(&i.Count)}); err != nil {
			break
		}
		if i.Count == 0 {
			err = newError(Expected, c.Name.Span.ShrinkToEnd().Error("missing required modifier")).withWhat("modifier `count`")
			break
		}
		comp = i

	case "end":
		err = applyModifiers(c, modifierSet{})
		comp = component.End{}

	default:
		if _, ok := unsupportedComponents[name]; ok {
			err = newError(NotSupported, c.Name.Span.Error("component not supported")).withValue(name)
			break
		}
		err = newError(InvalidComponentName, c.Name.Span.Error("invalid component")).withValue(name)
	}

	if err != nil {
		comp = nil
	}

	return
}

// applyModifiers runs the setter of every modifier in source order.
func applyModifiers(c *Component, setters modifierSet) error {
	seen := make(map[string]struct{}, len(c.Modifiers))

	for _, m := range c.Modifiers {
		key := m.Key.Value.String()

		set, ok := setters[key]
		if !ok {
			return newError(InvalidModifier, m.Key.Span.Error("invalid modifier key")).withValue(key)
		}

		if _, ok = seen[key]; ok {
			return newError(DuplicateModifier, m.Key.Span.Error("duplicate modifier key")).withValue(key)
		}
		seen[key] = struct{}{}

		if !set(m.Value.Value) {
			return newError(InvalidModifier, m.Value.Span.Error("invalid modifier value")).withValue(m.Value.Value.String())
		}
	}

	return nil
}

func enumOf[T any](dst *T, values map[string]T) setter {
	return func(value types.ByteSlice) bool {
		v, ok := values[string(value)]
		if ok {
			*dst = v
		}

		return ok
	}
}

// countOf accepts a non-zero decimal count fitting a uint16.
func countOf(dst *uint16) setter {
	return func(value types.ByteSlice) bool {
		c := combinator.NewCursor(value)

		v, ok := combinator.NToMDigits[uint16](1, 5).NonZero().Parse(c)
		if !ok || !c.Done() {
			return false
		}
		*dst = v

		return true
	}
}
