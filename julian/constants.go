package julian

const (
	J2000Value                 = 2451545.0
	B1950Value                 = 2433282.4235
	ModifiedJulianDayZeroValue = 2400000.5
	UnixEpochValue             = 2440587.5

	TTMinusTAISeconds = 32.184
	SecondsPerDay     = 86400 // not including leap seconds
	DaysPerCentury    = 36525

	// SiderealRate is the number of sidereal days elapsed per mean solar day
	SiderealRate = 1.00273790935

	// MaxMagnitude bounds the Julian days accepted by New, about 2.7e12
	// years either side of the epoch. Calendar fields and the sidereal
	// polynomial stay finite well beyond it.
	MaxMagnitude = 1e15
)

// Standard epochs. These are assigned once and must not be modified.
var (
	J2000                 = MustNew(J2000Value)
	B1950                 = MustNew(B1950Value)
	ModifiedJulianDayZero = MustNew(ModifiedJulianDayZeroValue)
)
