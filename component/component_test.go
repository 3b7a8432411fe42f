// SPDX-License-Identifier: MIT
package component

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	assert.Equal(t, Month{Padding: PaddingZero, Repr: MonthNumerical, CaseSensitive: true}, NewMonth())
	assert.Equal(t, Weekday{Repr: WeekdayLong, OneIndexed: true, CaseSensitive: true}, NewWeekday())
	assert.Equal(t, Period{IsUppercase: true, CaseSensitive: true}, NewPeriod())
}

func TestName(t *testing.T) {
	tests := []struct {
		component Component
		want      string
	}{
		{Day{}, "day"},
		{NewMonth(), "month"},
		{Ordinal{}, "ordinal"},
		{NewWeekday(), "weekday"},
		{WeekNumber{}, "week_number"},
		{Year{}, "year"},
		{Hour{}, "hour"},
		{Minute{}, "minute"},
		{NewPeriod(), "period"},
		{Second{}, "second"},
		{Subsecond{}, "subsecond"},
		{Ignore{Count: 1}, "ignore"},
		{End{}, "end"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.component.Name())
		})
	}
}

func TestModifiers(t *testing.T) {
	assert.Equal(t, "zero", PaddingZero.String())
	assert.Equal(t, "space", PaddingSpace.String())
	assert.Equal(t, "none", PaddingNone.String())

	assert.Zero(t, SubsecondOneOrMore.Width())
	assert.Equal(t, uint8(1), SubsecondOne.Width())
	assert.Equal(t, uint8(9), SubsecondNine.Width())
}
