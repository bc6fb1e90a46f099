package julian

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"time"
)

const nanosecondsPerDay = SecondsPerDay * float64(time.Second)

var daysInMonth = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// CalendarDateTime is a civil date and time in the proleptic Gregorian
// calendar on the UTC scale. Years before 1 CE are numbered
// astronomically, so 1 BCE is year 0.
type CalendarDateTime struct {
	Year   int
	Month  int // 1-12
	Day    int // 1-31
	Hour   int // 0-23
	Minute int // 0-59
	Second float64
}

// Date is shorthand for a CalendarDateTime literal. The fields are not
// validated until the value is converted.
func Date(year, month, day, hour, minute int, second float64) CalendarDateTime {
	return CalendarDateTime{
		Year:   year,
		Month:  month,
		Day:    day,
		Hour:   hour,
		Minute: minute,
		Second: second,
	}
}

// IsLeapYear reports whether year is a Gregorian leap year
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the length of month in year, or 0 if month is
// not in [1, 12].
func DaysInMonth(year, month int) int {
	if month < 1 || month > 12 {
		return 0
	}
	if month == 2 && IsLeapYear(year) {
		return 29
	}
	return daysInMonth[month-1]
}

// Validate returns ErrInvalidDate if any field names a date or time
// that does not exist. Second may be up to, but not including, 61 to
// allow for a leap second.
func (c CalendarDateTime) Validate() error {
	if c.Month < 1 || c.Month > 12 {
		return fmt.Errorf("%w: month %d", ErrInvalidDate, c.Month)
	}
	if c.Day < 1 || c.Day > DaysInMonth(c.Year, c.Month) {
		return fmt.Errorf("%w: day %d of %s-%02d", ErrInvalidDate, c.Day, formatYear(c.Year), c.Month)
	}
	if c.Hour < 0 || c.Hour > 23 {
		return fmt.Errorf("%w: hour %d", ErrInvalidDate, c.Hour)
	}
	if c.Minute < 0 || c.Minute > 59 {
		return fmt.Errorf("%w: minute %d", ErrInvalidDate, c.Minute)
	}
	if math.IsNaN(c.Second) || math.IsInf(c.Second, 0) {
		return fmt.Errorf("%w: second %v", ErrDomain, c.Second)
	}
	if c.Second < 0 || c.Second >= 61 {
		return fmt.Errorf("%w: second %v", ErrInvalidDate, c.Second)
	}

	return nil
}

// ToJulianDay converts a calendar date and time to a Julian day.
//
// Meeus, Astronomical Algorithms, chapter 7
func ToJulianDay(c CalendarDateTime) (JulianDay, error) {
	err := c.Validate()
	if err != nil {
		return JulianDay{}, err
	}

	seconds := float64(c.Hour)*3600 + float64(c.Minute)*60 + c.Second
	return fromCalendar(c.Year, c.Month, float64(c.Day), seconds/SecondsPerDay)
}

// JulianDay is equivalent to ToJulianDay(c)
func (c CalendarDateTime) JulianDay() (JulianDay, error) {
	return ToJulianDay(c)
}

// FromDecimalDay converts a date whose day of the month carries the
// time of day as a fraction, e.g. 1957 October 4.81
func FromDecimalDay(year, month int, day float64) (JulianDay, error) {
	if math.IsNaN(day) || math.IsInf(day, 0) {
		return JulianDay{}, fmt.Errorf("%w: day %v", ErrDomain, day)
	}
	if month < 1 || month > 12 {
		return JulianDay{}, fmt.Errorf("%w: month %d", ErrInvalidDate, month)
	}
	if day < 1 || day >= float64(DaysInMonth(year, month)+1) {
		return JulianDay{}, fmt.Errorf("%w: day %v of %s-%02d", ErrInvalidDate, day, formatYear(year), month)
	}

	whole := math.Floor(day)
	return fromCalendar(year, month, whole, day-whole)
}

// fromCalendar evaluates
//
//	JD = floor(365.25(Y+4716)) + floor(30.6001(M+1)) + D + B - 1524.5
//
// keeping the integral terms apart from the fraction of the day. Years
// so remote that the result exceeds MaxMagnitude fail with ErrDomain.
func fromCalendar(year, month int, day, fraction float64) (JulianDay, error) {
	y, m := year, month
	if m <= 2 {
		y--
		m += 12
	}

	a := math.Floor(float64(y) / 100)
	b := 2 - a + math.Floor(a/4)

	whole := math.Floor(365.25*float64(y+4716)) + math.Floor(30.6001*float64(m+1)) + b - 1525
	err := checkRange(whole + day)
	if err != nil {
		return JulianDay{}, err
	}

	return normalize(whole+day, fraction+0.5), nil
}

// ToCalendarDateTime converts a Julian day to a calendar date and
// time. It is defined for every Julian day New accepts.
//
// The time of day is resolved to the nearest nanosecond. A fraction
// that rounds up to a whole day carries into the following date, so
// Second is always below 60.
func ToCalendarDateTime(j JulianDay) CalendarDateTime {
	z, f := j.day, j.frac+0.5
	if f >= 1 {
		z++
		f--
	}

	nanos := math.Round(f * nanosecondsPerDay)
	if nanos >= nanosecondsPerDay {
		z++
		nanos = 0
	}

	year, month, day := civilDate(z)

	ns := int64(nanos)
	hour := ns / int64(time.Hour)
	ns -= hour * int64(time.Hour)
	minute := ns / int64(time.Minute)
	ns -= minute * int64(time.Minute)

	return CalendarDateTime{
		Year:   year,
		Month:  month,
		Day:    day,
		Hour:   int(hour),
		Minute: int(minute),
		Second: float64(ns) / float64(time.Second),
	}
}

// civilDate inverts fromCalendar for the day number z = floor(JD + 0.5)
func civilDate(z float64) (year, month, day int) {
	alpha := math.Floor((z - 1867216.25) / 36524.25)
	a := z + 1 + alpha - math.Floor(alpha/4)
	b := a + 1524
	c := math.Floor((b - 122.1) / 365.25)
	d := math.Floor(365.25 * c)
	e := math.Floor((b - d) / 30.6001)

	day = int(b - d - math.Floor(30.6001*e))
	if e < 14 {
		month = int(e) - 1
	} else {
		month = int(e) - 13
	}
	if month > 2 {
		year = int(c) - 4716
	} else {
		year = int(c) - 4715
	}

	return year, month, day
}

// Before reports whether c precedes other, comparing fields from year
// down to second.
func (c CalendarDateTime) Before(other CalendarDateTime) bool {
	switch {
	case c.Year != other.Year:
		return c.Year < other.Year
	case c.Month != other.Month:
		return c.Month < other.Month
	case c.Day != other.Day:
		return c.Day < other.Day
	case c.Hour != other.Hour:
		return c.Hour < other.Hour
	case c.Minute != other.Minute:
		return c.Minute < other.Minute
	default:
		return c.Second < other.Second
	}
}

// Time returns c as a time.Time in UTC. A leap second (Second >= 60)
// is folded into the following minute, as the time package does.
func (c CalendarDateTime) Time() time.Time {
	whole := math.Floor(c.Second)
	nanos := math.Round((c.Second - whole) * float64(time.Second))
	return time.Date(c.Year, time.Month(c.Month), c.Day, c.Hour, c.Minute, int(whole), int(nanos), time.UTC)
}

// String formats c as 2006-01-02T15:04:05.000000000Z. Negative years
// keep their sign.
func (c CalendarDateTime) String() string {
	return fmt.Sprintf("%s-%02d-%02dT%02d:%02d:%012.9fZ", formatYear(c.Year), c.Month, c.Day, c.Hour, c.Minute, c.Second)
}

func formatYear(year int) string {
	if year < 0 {
		return fmt.Sprintf("-%04d", -year)
	}
	return fmt.Sprintf("%04d", year)
}

var calendarPattern = regexp.MustCompile(`^(-?\d{4,})-(\d{2})-(\d{2})(?:[T ](\d{2}):(\d{2})(?::(\d{2}(?:\.\d+)?))?Z?)?$`)

// ParseCalendarDateTime parses the form produced by String. The time
// of day, the seconds and the trailing Z are optional.
func ParseCalendarDateTime(s string) (CalendarDateTime, error) {
	match := calendarPattern.FindStringSubmatch(s)
	if match == nil {
		return CalendarDateTime{}, fmt.Errorf("%w: cannot parse %q", ErrInvalidDate, s)
	}

	var c CalendarDateTime
	fields := []*int{&c.Year, &c.Month, &c.Day, &c.Hour, &c.Minute}
	for i, field := range fields {
		if match[i+1] == "" {
			continue
		}

		n, err := strconv.Atoi(match[i+1])
		if err != nil {
			return CalendarDateTime{}, fmt.Errorf("%w: parse %q: %s", ErrInvalidDate, match[i+1], err)
		}
		*field = n
	}

	if match[6] != "" {
		second, err := strconv.ParseFloat(match[6], 64)
		if err != nil {
			return CalendarDateTime{}, fmt.Errorf("%w: parse second %q: %s", ErrInvalidDate, match[6], err)
		}
		c.Second = second
	}

	err := c.Validate()
	if err != nil {
		return CalendarDateTime{}, err
	}

	return c, nil
}
