package julian

import (
	"math"
	"time"

	"github.com/nathan-osman/go-sunrise"
)

// FromTime returns the Julian day of t on the UTC scale.
//
// The time package does not count leap seconds, so neither does the
// result. Use UTCtoTT to move onto a uniform scale.
func FromTime(t time.Time) JulianDay {
	u := t.UTC()
	midnight := time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
	elapsed := u.Sub(midnight)

	// whole days since the unix epoch are exact in a float64
	return MustNew(sunrise.TimeToJulianDay(midnight)).Add(elapsed.Seconds() / SecondsPerDay)
}

// Time returns j, taken to be on the UTC scale, as a time.Time
// rounded to the nearest nanosecond.
func (j JulianDay) Time() time.Time {
	midnight, elapsed := j.day-0.5, j.frac+0.5
	if elapsed >= 1 {
		midnight++
		elapsed--
	}

	base := sunrise.JulianDayToTime(midnight).UTC()
	return base.Add(time.Duration(math.Round(elapsed * nanosecondsPerDay)))
}
