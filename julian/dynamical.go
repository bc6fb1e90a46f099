package julian

import (
	"math"
	"time"

	"github.com/subtlepseudonym/almanac/timescale"
)

const (
	ttMinusTAI = TTMinusTAISeconds / SecondsPerDay

	// the fixed point iterations below converge in two or three steps
	// for any plausible ΔT model
	maxIterations = 10
	convergence   = 1e-14
)

// Days is a duration expressed as a fraction of a day of 86400 seconds
type Days float64

// DaysFromSeconds converts seconds into Days
func DaysFromSeconds(seconds float64) Days {
	return Days(seconds / SecondsPerDay)
}

func (d Days) Seconds() float64 {
	return float64(d) * SecondsPerDay
}

func (d Days) Duration() time.Duration {
	return time.Duration(math.Round(d.Seconds() * float64(time.Second)))
}

// TimeScaleProvider supplies the tabulated or modelled differences
// between time scales. Both methods take and return days.
type TimeScaleProvider interface {
	// DeltaT returns TT - UT1
	DeltaT(jd float64) float64

	// CumulativeLeapSeconds returns TAI - UTC, with jd on the UTC scale
	CumulativeLeapSeconds(jd float64) float64
}

// TimeScales converts Julian days between TT, TAI, UT1 and UTC
type TimeScales struct {
	provider TimeScaleProvider
}

func NewTimeScales(provider TimeScaleProvider) TimeScales {
	return TimeScales{provider: provider}
}

// DefaultTimeScales uses the Espenak-Meeus ΔT polynomials and the
// built-in leap second table
var DefaultTimeScales = NewTimeScales(timescale.Default())

// DeltaT returns TT - UT1 at jd
func (s TimeScales) DeltaT(jd JulianDay) Days {
	return Days(s.provider.DeltaT(jd.Value()))
}

// CumulativeLeapSeconds returns TAI - UTC at the UTC Julian day jd
func (s TimeScales) CumulativeLeapSeconds(jd JulianDay) Days {
	return Days(s.provider.CumulativeLeapSeconds(jd.Value()))
}

func (s TimeScales) TTtoTAI(tt JulianDay) JulianDay {
	return tt.Add(-ttMinusTAI)
}

func (s TimeScales) TAItoTT(tai JulianDay) JulianDay {
	return tai.Add(ttMinusTAI)
}

// TTtoUT1 removes ΔT, evaluated at tt
func (s TimeScales) TTtoUT1(tt JulianDay) JulianDay {
	return tt.Add(-s.provider.DeltaT(tt.Value()))
}

// UT1toTT finds the TT instant whose UT1 is ut1, so that it exactly
// inverts TTtoUT1.
func (s TimeScales) UT1toTT(ut1 JulianDay) JulianDay {
	return solve(ut1, func(tt JulianDay) float64 {
		return s.provider.DeltaT(tt.Value())
	})
}

// UTCtoTT applies TT - UTC = 32.184s + (TAI - UTC)
func (s TimeScales) UTCtoTT(utc JulianDay) JulianDay {
	return utc.Add(s.ttMinusUTC(utc))
}

// TTtoUTC inverts UTCtoTT. Leap seconds are tabulated against UTC, so
// the offset is found iteratively. An instant inside an inserted leap
// second has no UTC Julian day and resolves to within a second of the
// step.
func (s TimeScales) TTtoUTC(tt JulianDay) JulianDay {
	return solve(tt, func(utc JulianDay) float64 {
		return -s.ttMinusUTC(utc)
	})
}

// UT1minusUTC returns ΔUT1 at jd, derived as (TT - UTC) - ΔT
func (s TimeScales) UT1minusUTC(jd JulianDay) Days {
	return Days(s.ttMinusUTC(jd) - s.provider.DeltaT(jd.Value()))
}

func (s TimeScales) ttMinusUTC(utc JulianDay) float64 {
	return ttMinusTAI + s.provider.CumulativeLeapSeconds(utc.Value())
}

// solve returns the x satisfying x = base + offset(x)
func solve(base JulianDay, offset func(JulianDay) float64) JulianDay {
	x := base.Add(offset(base))
	for i := 0; i < maxIterations; i++ {
		next := base.Add(offset(x))
		if math.Abs(float64(next.Sub(x))) < convergence {
			return next
		}
		x = next
	}
	return x
}

func (j JulianDay) DeltaT() Days {
	return DefaultTimeScales.DeltaT(j)
}

func (j JulianDay) CumulativeLeapSeconds() Days {
	return DefaultTimeScales.CumulativeLeapSeconds(j)
}

func (j JulianDay) TTtoUTC() JulianDay {
	return DefaultTimeScales.TTtoUTC(j)
}

func (j JulianDay) UTCtoTT() JulianDay {
	return DefaultTimeScales.UTCtoTT(j)
}

func (j JulianDay) TTtoTAI() JulianDay {
	return DefaultTimeScales.TTtoTAI(j)
}

func (j JulianDay) TAItoTT() JulianDay {
	return DefaultTimeScales.TAItoTT(j)
}

func (j JulianDay) TTtoUT1() JulianDay {
	return DefaultTimeScales.TTtoUT1(j)
}

func (j JulianDay) UT1toTT() JulianDay {
	return DefaultTimeScales.UT1toTT(j)
}

func (j JulianDay) UT1minusUTC() Days {
	return DefaultTimeScales.UT1minusUTC(j)
}
