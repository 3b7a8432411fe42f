// SPDX-License-Identifier: MIT
package scan

import (
	"errors"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.com/fisherprime/timefmt"
)

func compile(t *testing.T, description string) timefmt.Description {
	t.Helper()

	desc, err := timefmt.Compile([]byte(description))
	require.NoError(t, err)

	return desc
}

func TestScan(t *testing.T) {
	tests := []struct {
		name        string
		description string
		input       string
		want        map[string]any
	}{
		{
			name:        "date",
			description: "[year]-[month]-[day]",
			input:       "2024-03-09",
			want:        map[string]any{"year": int32(2024), "month": uint8(3), "day": uint8(9)},
		},
		{
			name:        "space padding",
			description: "[day padding:space]",
			input:       " 5",
			want:        map[string]any{"day": uint8(5)},
		},
		{
			name:        "no padding",
			description: "[day padding:none]/[month padding:none]",
			input:       "5/11",
			want:        map[string]any{"day": uint8(5), "month": uint8(11)},
		},
		{
			name:        "long month",
			description: "[month repr:long] [day]",
			input:       "March 01",
			want:        map[string]any{"month": uint8(3), "day": uint8(1)},
		},
		{
			name:        "case insensitive month",
			description: "[month repr:short case_sensitive:false]",
			input:       "mAR",
			want:        map[string]any{"month": uint8(3)},
		},
		{
			name:        "weekday name",
			description: "[weekday repr:short], [ordinal]",
			input:       "Thu, 069",
			want:        map[string]any{"weekday": time.Thursday.String(), "ordinal": uint16(69)},
		},
		{
			name:        "weekday from sunday",
			description: "[weekday repr:sunday]",
			input:       "1",
			want:        map[string]any{"weekday": time.Sunday.String()},
		},
		{
			name:        "weekday from monday zero indexed",
			description: "[weekday repr:monday one_indexed:false]",
			input:       "6",
			want:        map[string]any{"weekday": time.Sunday.String()},
		},
		{
			name:        "twelve hour clock",
			description: "[hour repr:12]:[minute] [period]",
			input:       "07:30 PM",
			want:        map[string]any{"hour_12": uint8(7), "minute": uint8(30), "hour_is_pm": true},
		},
		{
			name:        "lowercase period",
			description: "[period case:lower case_sensitive:false]",
			input:       "AM",
			want:        map[string]any{"hour_is_pm": false},
		},
		{
			name:        "subsecond",
			description: "[second].[subsecond]",
			input:       "05.123",
			want:        map[string]any{"second": uint8(5), "subsecond": uint32(123_000_000)},
		},
		{
			name:        "subsecond excess digits",
			description: "[subsecond]",
			input:       "1234567891",
			want:        map[string]any{"subsecond": uint32(123_456_789)},
		},
		{
			name:        "fixed subsecond",
			description: "[subsecond digits:6]",
			input:       "000042",
			want:        map[string]any{"subsecond": uint32(42_000)},
		},
		{
			name:        "signed year",
			description: "[year sign:mandatory]",
			input:       "-0044",
			want:        map[string]any{"year": int32(-44)},
		},
		{
			name:        "iso week",
			description: "[year base:iso_week]-W[week_number]",
			input:       "2020-W53",
			want:        map[string]any{"iso_year": int32(2020), "iso_week_number": uint8(53)},
		},
		{
			name:        "last two",
			description: "[year repr:last_two][week_number repr:sunday]",
			input:       "9900",
			want:        map[string]any{"year_last_two": uint8(99), "sunday_week_number": uint8(0)},
		},
		{
			name:        "ignore",
			description: "[ignore count:3][day][end]",
			input:       "x]z05",
			want:        map[string]any{"day": uint8(5)},
		},
		{
			name:        "escaped brackets",
			description: "[[[hour]]]",
			input:       "[23]",
			want:        map[string]any{"hour_24": uint8(23)},
		},
		{
			name:        "optional present",
			description: "[hour][optional [:[minute]]]",
			input:       "10:30",
			want:        map[string]any{"hour_24": uint8(10), "minute": uint8(30)},
		},
		{
			name:        "optional absent",
			description: "[hour][optional [:[minute]]]",
			input:       "10",
			want:        map[string]any{"hour_24": uint8(10)},
		},
		{
			name:        "leap second",
			description: "[second]",
			input:       "60",
			want:        map[string]any{"second": uint8(60)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, err := Scan(compile(t, tt.description), []byte(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.want, parsed.Map())
		})
	}
}

func TestScan_Errors(t *testing.T) {
	tests := []struct {
		name        string
		description string
		input       string
		sentinel    error
		component   string
		index       int
	}{
		{
			name: "invalid literal", description: "[year]-[month]", input: "2024/03",
			sentinel: ErrInvalidLiteral, index: 4,
		},
		{
			name: "insufficient input", description: "[year]-[month]", input: "2024-",
			sentinel: ErrInsufficientInput, component: "month", index: 5,
		},
		{
			name: "out of range", description: "[month]", input: "13",
			sentinel: ErrInvalidComponent, component: "month", index: 0,
		},
		{
			name: "zero day", description: "[day]", input: "00",
			sentinel: ErrInvalidComponent, component: "day", index: 0,
		},
		{
			name: "case sensitive", description: "[month repr:short]", input: "mar",
			sentinel: ErrInvalidComponent, component: "month", index: 0,
		},
		{
			name: "mandatory sign", description: "[year sign:mandatory]", input: "2024",
			sentinel: ErrInvalidComponent, component: "year", index: 0,
		},
		{
			name: "end", description: "[day][end]", input: "05x",
			sentinel: ErrInvalidComponent, component: "end", index: 2,
		},
		{
			name: "trailing", description: "[day]", input: "05x",
			sentinel: ErrUnexpectedTrailingCharacters, index: 2,
		},
		{
			name: "optional rolled back", description: "[hour][optional [:[minute]]]", input: "10:",
			sentinel: ErrUnexpectedTrailingCharacters, index: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, err := Scan(compile(t, tt.description), []byte(tt.input))
			require.Error(t, err)
			assert.Nil(t, parsed)
			assert.ErrorIs(t, err, tt.sentinel)

			var sErr *Error
			require.True(t, errors.As(err, &sErr))
			assert.Equal(t, tt.component, sErr.Component)
			assert.Equal(t, tt.index, sErr.Index)
		})
	}
}

// TestScan_OptionalRollback asserts that a failed optional item leaves no fields behind.
func TestScan_OptionalRollback(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	desc := compile(t, "[optional [[hour]:[minute]x]]")
	parsed, n, err := ScanPrefix(desc, []byte("10:30"), timefmt.WithLogger(logger), timefmt.WithDebug(true))
	require.NoError(t, err)

	assert.Zero(t, n)
	assert.False(t, parsed.Hour24.Set)
	assert.False(t, parsed.Minute.Set)
	assert.Empty(t, parsed.Map())
}

func TestScanPrefix(t *testing.T) {
	parsed, n, err := ScanPrefix(compile(t, "[subsecond digits:3]"), []byte("1234"))
	require.NoError(t, err)

	assert.Equal(t, 3, n)
	assert.Equal(t, Field[uint32]{Value: 123_000_000, Set: true}, parsed.Subsecond)
}

func TestError(t *testing.T) {
	assert.EqualError(t, &Error{Kind: InvalidComponent, Component: "day", Index: 3}, "invalid component: `day` at byte index 3")
	assert.EqualError(t, &Error{Kind: InvalidLiteral, Index: 0}, "invalid literal at byte index 0")
}

func BenchmarkScan(b *testing.B) {
	desc, err := timefmt.Compile([]byte("[year]-[month]-[day]T[hour]:[minute]:[second].[subsecond]"))
	require.NoError(b, err)

	input := []byte("2024-03-09T10:30:05.123456789")

	b.ReportAllocs()
	b.SetBytes(int64(len(input)))
	b.ResetTimer()

	for index := 0; index < b.N; index++ {
		_, _ = Scan(desc, input)
	}
}
