package julian

import (
	"fmt"
	"math"

	"github.com/subtlepseudonym/almanac/nutation"
)

// NutationProvider supplies the equation of the equinoxes, the
// difference between apparent and mean sidereal time.
type NutationProvider interface {
	// ApparentSiderealCorrection returns the correction in arcseconds
	// for the Julian day jd
	ApparentSiderealCorrection(jd float64) float64
}

// Sidereal computes sidereal time using an injected nutation model.
type Sidereal struct {
	nutation NutationProvider
}

func NewSidereal(provider NutationProvider) Sidereal {
	return Sidereal{nutation: provider}
}

// DefaultSidereal uses the abbreviated IAU 1980 nutation series
var DefaultSidereal = NewSidereal(nutation.Provider{})

// MeanGreenwich returns the mean sidereal time at Greenwich. The
// polynomial is evaluated at the preceding 0h and advanced by the
// elapsed part of the day at the sidereal rate.
//
// Meeus, Astronomical Algorithms, equation 12.3
func (s Sidereal) MeanGreenwich(jd JulianDay) Hour {
	midnight, elapsed := jd.day-0.5, jd.frac+0.5
	if elapsed >= 1 {
		midnight++
		elapsed--
	}

	t := (midnight - J2000Value) / DaysPerCentury
	degrees := 100.46061837 + 36000.770053608*t + 0.000387933*t*t - t*t*t/38710000
	degrees += elapsed * 360 * SiderealRate

	return Hour(math.Mod(degrees, 360) / 15).Normalize()
}

// ApparentGreenwich corrects the mean sidereal time for nutation
func (s Sidereal) ApparentGreenwich(jd JulianDay) Hour {
	correction := s.nutation.ApparentSiderealCorrection(jd.Value())
	return (s.MeanGreenwich(jd) + Hour(correction/54000)).Normalize()
}

// MeanLocal returns the mean sidereal time at longitude, given in
// degrees and measured positive west of Greenwich. East longitudes
// are negative.
func (s Sidereal) MeanLocal(jd JulianDay, longitude float64) (Hour, error) {
	err := checkLongitude(longitude)
	if err != nil {
		return 0, err
	}
	return (s.MeanGreenwich(jd) - Hour(longitude/15)).Normalize(), nil
}

// ApparentLocal is MeanLocal with the nutation correction applied.
// Longitude is positive westward.
func (s Sidereal) ApparentLocal(jd JulianDay, longitude float64) (Hour, error) {
	err := checkLongitude(longitude)
	if err != nil {
		return 0, err
	}
	return (s.ApparentGreenwich(jd) - Hour(longitude/15)).Normalize(), nil
}

func checkLongitude(longitude float64) error {
	if math.IsNaN(longitude) || math.IsInf(longitude, 0) {
		return fmt.Errorf("%w: longitude %v", ErrDomain, longitude)
	}
	return nil
}

func (j JulianDay) MeanGreenwichSiderealTime() Hour {
	return DefaultSidereal.MeanGreenwich(j)
}

func (j JulianDay) ApparentGreenwichSiderealTime() Hour {
	return DefaultSidereal.ApparentGreenwich(j)
}

// MeanLocalSiderealTime takes longitude in degrees, positive westward
func (j JulianDay) MeanLocalSiderealTime(longitude float64) (Hour, error) {
	return DefaultSidereal.MeanLocal(j, longitude)
}

// ApparentLocalSiderealTime takes longitude in degrees, positive westward
func (j JulianDay) ApparentLocalSiderealTime(longitude float64) (Hour, error) {
	return DefaultSidereal.ApparentLocal(j, longitude)
}
