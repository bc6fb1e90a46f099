// Package timescale provides the data behind time scale conversions:
// a model of ΔT = TT - UT1 and the history of TAI - UTC.
package timescale

// Provider answers ΔT and leap second queries. All values are in days.
type Provider struct {
	leapSeconds LeapSecondTable
}

type Option func(*Provider)

// WithLeapSeconds replaces the leap second table. Rows of the built-in
// table that precede the first row of table are kept.
func WithLeapSeconds(table LeapSecondTable) Option {
	return func(p *Provider) {
		p.leapSeconds = table.Merge(builtinLeapSeconds)
	}
}

func NewProvider(opts ...Option) *Provider {
	p := &Provider{
		leapSeconds: BuiltinLeapSeconds(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

var defaultProvider = NewProvider()

// Default returns the provider built from the compiled-in tables
func Default() *Provider {
	return defaultProvider
}

// DeltaT returns TT - UT1 in days
func (p *Provider) DeltaT(jd float64) float64 {
	return DeltaT(jd)
}

// CumulativeLeapSeconds returns TAI - UTC in days at the UTC Julian
// day jd
func (p *Provider) CumulativeLeapSeconds(jd float64) float64 {
	return p.leapSeconds.TAIMinusUTC(jd) / secondsPerDay
}

// LeapSeconds returns a copy of the table in use
func (p *Provider) LeapSeconds() LeapSecondTable {
	table := make(LeapSecondTable, len(p.leapSeconds))
	copy(table, p.leapSeconds)
	return table
}
