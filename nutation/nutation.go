// Package nutation models the nutation of the Earth's axis and the
// obliquity of the ecliptic closely enough to correct sidereal time.
//
// The series is the abbreviated form of the IAU 1980 theory given in
// Meeus, Astronomical Algorithms, chapter 22. It is accurate to 0.5"
// in longitude and 0.1" in obliquity.
package nutation

import (
	"math"
)

const (
	j2000          = 2451545.0
	daysPerCentury = 36525
)

func centuries(jd float64) float64 {
	return (jd - j2000) / daysPerCentury
}

func radians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// arguments returns the mean longitudes of the sun and moon and the
// longitude of the moon's ascending node, in radians
func arguments(t float64) (sun, moon, node float64) {
	sun = radians(math.Mod(280.4665+36000.7698*t, 360))
	moon = radians(math.Mod(218.3165+481267.8813*t, 360))
	node = radians(math.Mod(125.04452-1934.136261*t+0.0020708*t*t+t*t*t/450000, 360))
	return sun, moon, node
}

// NutationInLongitude returns Δψ in arcseconds
func NutationInLongitude(jd float64) float64 {
	sun, moon, node := arguments(centuries(jd))
	return -17.20*math.Sin(node) - 1.32*math.Sin(2*sun) - 0.23*math.Sin(2*moon) + 0.21*math.Sin(2*node)
}

// NutationInObliquity returns Δε in arcseconds
func NutationInObliquity(jd float64) float64 {
	sun, moon, node := arguments(centuries(jd))
	return 9.20*math.Cos(node) + 0.57*math.Cos(2*sun) + 0.10*math.Cos(2*moon) - 0.09*math.Cos(2*node)
}

// MeanObliquity returns the mean obliquity of the ecliptic, ε0, in
// degrees. This is the IAU expression, equation 22.2
func MeanObliquity(jd float64) float64 {
	t := centuries(jd)
	arcseconds := 21.448 - 46.8150*t - 0.00059*t*t + 0.001813*t*t*t
	return 23 + 26.0/60 + arcseconds/3600
}

// TrueObliquity returns ε = ε0 + Δε in degrees
func TrueObliquity(jd float64) float64 {
	return MeanObliquity(jd) + NutationInObliquity(jd)/3600
}

// EquationOfEquinoxes returns Δψ cos ε in arcseconds, the amount by
// which apparent sidereal time leads mean sidereal time
func EquationOfEquinoxes(jd float64) float64 {
	return NutationInLongitude(jd) * math.Cos(radians(TrueObliquity(jd)))
}

// Provider exposes the model to the sidereal time calculator
type Provider struct{}

// ApparentSiderealCorrection returns the equation of the equinoxes in
// arcseconds
func (Provider) ApparentSiderealCorrection(jd float64) float64 {
	return EquationOfEquinoxes(jd)
}
