// Package julian implements the Julian day count along with conversions
// to the proleptic Gregorian calendar, sidereal time and the dynamical
// time scales (TT, TAI, UT1, UTC).
//
// A JulianDay is stored as an integral day number and a fraction of a
// day so that calendar round trips keep sub-microsecond precision even
// though the value exposed to callers is a single float64.
package julian

import (
	"encoding/json"
	"fmt"
	"math"
)

// JulianDay is a continuous count of days since noon on January 1st,
// 4713 BCE in the proleptic Julian calendar. The zero value is JD 0.
type JulianDay struct {
	day  float64 // integral
	frac float64 // [0, 1)
}

// New returns the JulianDay for value. NaN, infinite values and values
// whose magnitude exceeds MaxMagnitude are rejected with ErrDomain.
func New(value float64) (JulianDay, error) {
	err := checkRange(value)
	if err != nil {
		return JulianDay{}, err
	}

	return normalize(value, 0), nil
}

func checkRange(value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return fmt.Errorf("%w: julian day %v", ErrDomain, value)
	}
	if math.Abs(value) > MaxMagnitude {
		return fmt.Errorf("%w: julian day %g beyond ±%g", ErrDomain, value, MaxMagnitude)
	}
	return nil
}

// MustNew is like New but panics if value is not finite.
func MustNew(value float64) JulianDay {
	jd, err := New(value)
	if err != nil {
		panic(err)
	}
	return jd
}

// normalize folds day and frac into an integral day number and a
// fraction in [0, 1)
func normalize(day, frac float64) JulianDay {
	d := math.Floor(day)
	frac += day - d

	whole := math.Floor(frac)
	d += whole
	frac -= whole
	if frac >= 1 {
		d++
		frac = 0
	}

	return JulianDay{day: d, frac: frac}
}

// Value returns the Julian day as a single number of days.
func (j JulianDay) Value() float64 {
	return j.day + j.frac
}

// Modified returns the Modified Julian Day, JD - 2400000.5
func (j JulianDay) Modified() JulianDay {
	return normalize(j.day-(ModifiedJulianDayZeroValue+0.5), j.frac+0.5)
}

// Add returns the Julian day offset by days, which may be negative.
func (j JulianDay) Add(days float64) JulianDay {
	return normalize(j.day, j.frac+days)
}

// Sub returns the number of days from other to j.
func (j JulianDay) Sub(other JulianDay) Days {
	return Days((j.day - other.day) + (j.frac - other.frac))
}

func (j JulianDay) Equal(other JulianDay) bool {
	return j.day == other.day && j.frac == other.frac
}

func (j JulianDay) Before(other JulianDay) bool {
	return j.day < other.day || (j.day == other.day && j.frac < other.frac)
}

func (j JulianDay) After(other JulianDay) bool {
	return other.Before(j)
}

// JulianCenturies returns the number of Julian centuries elapsed
// since J2000.0
func (j JulianDay) JulianCenturies() float64 {
	return ((j.day - J2000Value) + j.frac) / DaysPerCentury
}

// CalendarDateTime converts j to a proleptic Gregorian date and time.
func (j JulianDay) CalendarDateTime() CalendarDateTime {
	return ToCalendarDateTime(j)
}

// String matches the two standard epochs exactly and otherwise prints
// the day count to two decimal places.
func (j JulianDay) String() string {
	switch j.Value() {
	case J2000Value:
		return "J2000.0"
	case B1950Value:
		return "B1950.0"
	default:
		return fmt.Sprintf("JD %.2f", j.Value())
	}
}

func (j JulianDay) MarshalJSON() ([]byte, error) {
	return json.Marshal(j.Value())
}

func (j *JulianDay) UnmarshalJSON(b []byte) error {
	var value float64
	err := json.Unmarshal(b, &value)
	if err != nil {
		return fmt.Errorf("decode julian day: %w", err)
	}

	jd, err := New(value)
	if err != nil {
		return err
	}

	*j = jd
	return nil
}
