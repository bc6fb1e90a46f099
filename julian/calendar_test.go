package julian

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToJulianDay_KnownDates(t *testing.T) {
	tests := []struct {
		name string
		date CalendarDateTime
		want float64
	}{
		{"J2000.0", Date(2000, 1, 1, 12, 0, 0), 2451545.0},
		{"1987 January 27.0", Date(1987, 1, 27, 0, 0, 0), 2446822.5},
		{"1987 June 19.5", Date(1987, 6, 19, 12, 0, 0), 2446966.0},
		{"1988 January 27.0", Date(1988, 1, 27, 0, 0, 0), 2447187.5},
		{"1988 June 19.5", Date(1988, 6, 19, 12, 0, 0), 2447332.0},
		{"1900 January 1.0", Date(1900, 1, 1, 0, 0, 0), 2415020.5},
		{"1600 January 1.0", Date(1600, 1, 1, 0, 0, 0), 2305447.5},
		{"1600 December 31.0", Date(1600, 12, 31, 0, 0, 0), 2305812.5},
		{"unix epoch", Date(1970, 1, 1, 0, 0, 0), UnixEpochValue},
		{"julian epoch", Date(-4713, 11, 24, 12, 0, 0), 0},
		{"year zero", Date(0, 3, 1, 0, 0, 0), 1721119.5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			jd, err := ToJulianDay(tc.date)
			require.NoError(t, err)
			assert.Equal(t, tc.want, jd.Value())
		})
	}
}

func TestToJulianDay_FractionalSecond(t *testing.T) {
	jd, err := Date(2000, 1, 1, 12, 0, 0.5).JulianDay()
	require.NoError(t, err)
	assert.InDelta(t, 0.5, jd.Sub(J2000).Seconds(), 1e-9)
}

func TestFromDecimalDay(t *testing.T) {
	// Sputnik 1, Meeus example 7.a
	jd, err := FromDecimalDay(1957, 10, 4.81)
	require.NoError(t, err)
	assert.InDelta(t, 2436116.31, jd.Value(), 1e-9)

	_, err = FromDecimalDay(1957, 2, 29.5)
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = FromDecimalDay(1957, 10, math.NaN())
	assert.ErrorIs(t, err, ErrDomain)
}

func TestToJulianDay_InvalidDate(t *testing.T) {
	tests := []struct {
		name string
		date CalendarDateTime
		want error
	}{
		{"month thirteen", Date(2000, 13, 1, 0, 0, 0), ErrInvalidDate},
		{"month zero", Date(2000, 0, 1, 0, 0, 0), ErrInvalidDate},
		{"day zero", Date(2000, 1, 0, 0, 0, 0), ErrInvalidDate},
		{"negative day", Date(2000, 1, -3, 0, 0, 0), ErrInvalidDate},
		{"april 31", Date(2000, 4, 31, 0, 0, 0), ErrInvalidDate},
		{"1900 is not a leap year", Date(1900, 2, 29, 0, 0, 0), ErrInvalidDate},
		{"2023 is not a leap year", Date(2023, 2, 29, 0, 0, 0), ErrInvalidDate},
		{"hour 24", Date(2000, 1, 1, 24, 0, 0), ErrInvalidDate},
		{"minute 60", Date(2000, 1, 1, 0, 60, 0), ErrInvalidDate},
		{"second 61", Date(2000, 1, 1, 0, 0, 61), ErrInvalidDate},
		{"negative second", Date(2000, 1, 1, 0, 0, -1), ErrInvalidDate},
		{"NaN second", Date(2000, 1, 1, 0, 0, math.NaN()), ErrDomain},
		{"infinite second", Date(2000, 1, 1, 0, 0, math.Inf(1)), ErrDomain},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ToJulianDay(tc.date)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestToJulianDay_LeapYears(t *testing.T) {
	for _, year := range []int{2000, 2024, 1600, 0, -4} {
		_, err := ToJulianDay(Date(year, 2, 29, 6, 30, 0))
		assert.NoError(t, err, "year %d", year)
	}
}

func TestIsLeapYear(t *testing.T) {
	assert.True(t, IsLeapYear(2000))
	assert.True(t, IsLeapYear(1996))
	assert.True(t, IsLeapYear(0))
	assert.False(t, IsLeapYear(1900))
	assert.False(t, IsLeapYear(2100))
	assert.False(t, IsLeapYear(2023))
}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 29, DaysInMonth(2000, 2))
	assert.Equal(t, 28, DaysInMonth(1900, 2))
	assert.Equal(t, 30, DaysInMonth(2021, 11))
	assert.Equal(t, 31, DaysInMonth(2021, 12))
	assert.Equal(t, 0, DaysInMonth(2021, 13))
}

func TestToCalendarDateTime_KnownDays(t *testing.T) {
	tests := []struct {
		jd   float64
		want CalendarDateTime
	}{
		{2451545.0, Date(2000, 1, 1, 12, 0, 0)},
		{2436116.31, Date(1957, 10, 4, 19, 26, 24)},
		{2446966.0, Date(1987, 6, 19, 12, 0, 0)},
		{2305812.5, Date(1600, 12, 31, 0, 0, 0)},
		{0, Date(-4713, 11, 24, 12, 0, 0)},
		{-1000.25, Date(-4715, 2, 27, 6, 0, 0)},
	}

	for _, tc := range tests {
		got := ToCalendarDateTime(MustNew(tc.jd))
		diff := cmp.Diff(tc.want, got, cmpopts.EquateApprox(0, 1e-4))
		assert.Empty(t, diff, "JD %v", tc.jd)
	}
}

func TestToCalendarDateTime_CarriesIntoNextDay(t *testing.T) {
	jd := MustNew(2451545.0).Add(0.5 - 1e-15)

	got := ToCalendarDateTime(jd)
	assert.Equal(t, Date(2000, 1, 2, 0, 0, 0), got)
}

func TestToCalendarDateTime_AtMaxMagnitude(t *testing.T) {
	c := MustNew(MaxMagnitude).CalendarDateTime()
	assert.Greater(t, c.Year, 2_000_000_000_000)
	assert.NoError(t, c.Validate())
}

func TestToJulianDay_RejectsBeyondMaxMagnitude(t *testing.T) {
	_, err := ToJulianDay(Date(10_000_000_000_000, 1, 1, 0, 0, 0))
	assert.ErrorIs(t, err, ErrDomain)

	_, err = FromDecimalDay(-10_000_000_000_000, 6, 1.5)
	assert.ErrorIs(t, err, ErrDomain)
}

func TestCalendarRoundTrip(t *testing.T) {
	seconds := []float64{0, 0.000001, 12.345678, 30.5, 59.999}
	for year := -1000; year <= 3000; year += 37 {
		for month := 1; month <= 12; month++ {
			for _, day := range []int{1, 15, DaysInMonth(year, month)} {
				for i, second := range seconds {
					date := Date(year, month, day, (i*7)%24, (i*13)%60, second)

					jd, err := ToJulianDay(date)
					require.NoError(t, err)

					got := ToCalendarDateTime(jd)
					assert.Equal(t, date.Year, got.Year)
					assert.Equal(t, date.Month, got.Month)
					assert.Equal(t, date.Day, got.Day)
					assert.Equal(t, date.Hour, got.Hour)
					assert.Equal(t, date.Minute, got.Minute)
					assert.InDelta(t, date.Second, got.Second, 1e-6, "%s", date)
				}
			}
		}
	}
}

func TestToCalendarDateTime_Monotonic(t *testing.T) {
	prev := ToCalendarDateTime(MustNew(2400000))
	for jd := 2400000.0; jd < 2500000; jd += 123.4567 {
		next := ToCalendarDateTime(MustNew(jd + 123.4567))
		assert.True(t, prev.Before(next), "%s should precede %s", prev, next)
		prev = next
	}
}

func TestCalendarDateTime_String(t *testing.T) {
	assert.Equal(t, "2000-01-01T12:00:00.000000000Z", Date(2000, 1, 1, 12, 0, 0).String())
	assert.Equal(t, "1957-10-04T19:26:24.500000000Z", Date(1957, 10, 4, 19, 26, 24.5).String())
	assert.Equal(t, "-0044-03-15T00:00:00.000000000Z", Date(-44, 3, 15, 0, 0, 0).String())
}

func TestParseCalendarDateTime(t *testing.T) {
	tests := []struct {
		input string
		want  CalendarDateTime
	}{
		{"2000-01-01T12:00:00Z", Date(2000, 1, 1, 12, 0, 0)},
		{"2000-01-01T12:00:00.250000000Z", Date(2000, 1, 1, 12, 0, 0.25)},
		{"2000-01-01 06:30", Date(2000, 1, 1, 6, 30, 0)},
		{"1957-10-04", Date(1957, 10, 4, 0, 0, 0)},
		{"-0044-03-15T00:00:00Z", Date(-44, 3, 15, 0, 0, 0)},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParseCalendarDateTime(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	for _, input := range []string{"", "yesterday", "2000-1-1", "1900-02-29", "2000-13-01T00:00:00Z"} {
		_, err := ParseCalendarDateTime(input)
		assert.ErrorIs(t, err, ErrInvalidDate, "input %q", input)
	}
}

func TestCalendarDateTime_StringParseRoundTrip(t *testing.T) {
	date := Date(1987, 4, 10, 19, 21, 0.123456789)
	got, err := ParseCalendarDateTime(date.String())
	require.NoError(t, err)
	assert.Equal(t, date.Year, got.Year)
	assert.Equal(t, date.Minute, got.Minute)
	assert.InDelta(t, date.Second, got.Second, 1e-9)
}

func TestCalendarDateTime_Time(t *testing.T) {
	got := Date(2000, 1, 1, 12, 0, 1.5).Time()
	assert.Equal(t, "2000-01-01T12:00:01.5Z", got.Format("2006-01-02T15:04:05.999999999Z07:00"))
}
