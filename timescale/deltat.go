package timescale

import (
	"math"
)

const (
	j2000             = 2451545.0
	daysPerJulianYear = 365.25
	secondsPerDay     = 86400
)

// DecimalYear approximates the calendar year of a Julian day as a
// real number, e.g. 2000.0 at J2000.0
func DecimalYear(jd float64) float64 {
	return 2000 + (jd-j2000)/daysPerJulianYear
}

// DeltaTSeconds returns ΔT = TT - UT1 in seconds for a decimal year.
//
// The piecewise polynomials are those of Espenak and Meeus, "Five
// Millennium Canon of Solar Eclipses" (NASA/TP-2006-214141). Outside
// -500 to 2150 the long-term parabola of Morrison and Stephenson is
// used.
func DeltaTSeconds(year float64) float64 {
	switch {
	case year < -500:
		return longTerm(year)
	case year < 500:
		u := year / 100
		return polynomial(u, 10583.6, -1014.41, 33.78311, -5.952053, -0.1798452, 0.022174192, 0.0090316521)
	case year < 1600:
		u := (year - 1000) / 100
		return polynomial(u, 1574.2, -556.01, 71.23472, 0.319781, -0.8503463, -0.005050998, 0.0083572073)
	case year < 1700:
		t := year - 1600
		return polynomial(t, 120, -0.9808, -0.01532, 1.0/7129)
	case year < 1800:
		t := year - 1700
		return polynomial(t, 8.83, 0.1603, -0.0059285, 0.00013336, -1.0/1174000)
	case year < 1860:
		t := year - 1800
		return polynomial(t, 13.72, -0.332447, 0.0068612, 0.0041116, -0.00037436, 0.0000121272, -0.0000001699, 0.000000000875)
	case year < 1900:
		t := year - 1860
		return polynomial(t, 7.62, 0.5737, -0.251754, 0.01680668, -0.0004473624, 1.0/233174)
	case year < 1920:
		t := year - 1900
		return polynomial(t, -2.79, 1.494119, -0.0598939, 0.0061966, -0.000197)
	case year < 1941:
		t := year - 1920
		return polynomial(t, 21.20, 0.84493, -0.076100, 0.0020936)
	case year < 1961:
		t := year - 1950
		return polynomial(t, 29.07, 0.407, -1.0/233, 1.0/2547)
	case year < 1986:
		t := year - 1975
		return polynomial(t, 45.45, 1.067, -1.0/260, -1.0/718)
	case year < 2005:
		t := year - 2000
		return polynomial(t, 63.86, 0.3345, -0.060374, 0.0017275, 0.000651814, 0.00002373599)
	case year < 2050:
		t := year - 2000
		return polynomial(t, 62.92, 0.32217, 0.005589)
	case year < 2150:
		return longTerm(year) - 0.5628*(2150-year)
	default:
		return longTerm(year)
	}
}

func longTerm(year float64) float64 {
	u := (year - 1820) / 100
	return -20 + 32*u*u
}

// polynomial evaluates c[0] + c[1]x + c[2]x^2 + ... by Horner's method
func polynomial(x float64, c ...float64) float64 {
	var sum float64
	for i := len(c) - 1; i >= 0; i-- {
		sum = sum*x + c[i]
	}
	return sum
}

// DeltaT returns ΔT in days for the Julian day jd
func DeltaT(jd float64) float64 {
	if math.IsNaN(jd) {
		return math.NaN()
	}
	return DeltaTSeconds(DecimalYear(jd)) / secondsPerDay
}
