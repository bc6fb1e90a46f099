// Package almanac ties the julian package to an observer: readings of
// every time scale at an instant, cron schedules keyed to local
// sidereal time, and jobs that log those readings.
package almanac

import (
	"fmt"
	"time"

	"github.com/subtlepseudonym/almanac/julian"
)

// Location is an observer on the Earth's surface. Longitude is in
// degrees measured positive west of Greenwich.
type Location struct {
	Name      string  `json:"name,omitempty"`
	Latitude  float64 `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude float64 `json:"longitude" validate:"gte=-180,lte=180"`
}

// Reading is a snapshot of one instant on every supported scale
type Reading struct {
	Time     time.Time        `json:"time"`
	UTC      julian.JulianDay `json:"utc"`
	Modified julian.JulianDay `json:"mjd"`
	Calendar string           `json:"calendar"`

	TT  julian.JulianDay `json:"tt"`
	TAI julian.JulianDay `json:"tai"`
	UT1 julian.JulianDay `json:"ut1"`

	// seconds
	DeltaT      float64 `json:"deltaT"`
	LeapSeconds float64 `json:"leapSeconds"`
	UT1MinusUTC float64 `json:"ut1MinusUTC"`

	GMST julian.Hour `json:"gmst"`
	GAST julian.Hour `json:"gast"`
	LMST julian.Hour `json:"lmst"`
	LAST julian.Hour `json:"last"`
}

// Observer takes readings for a Location
type Observer struct {
	Location Location

	scales   julian.TimeScales
	sidereal julian.Sidereal
}

func NewObserver(location Location, scales julian.TimeScales) *Observer {
	return &Observer{
		Location: location,
		scales:   scales,
		sidereal: julian.DefaultSidereal,
	}
}

func (o *Observer) TimeScales() julian.TimeScales {
	return o.scales
}

func (o *Observer) Sidereal() julian.Sidereal {
	return o.sidereal
}

// Observe converts t to every scale. Sidereal times are evaluated on
// UT1, which is recovered from UTC with the current ΔUT1.
func (o *Observer) Observe(t time.Time) (Reading, error) {
	utc := julian.FromTime(t)
	tt := o.scales.UTCtoTT(utc)
	ut1 := o.scales.TTtoUT1(tt)

	lmst, err := o.sidereal.MeanLocal(ut1, o.Location.Longitude)
	if err != nil {
		return Reading{}, fmt.Errorf("local sidereal time: %w", err)
	}
	last, err := o.sidereal.ApparentLocal(ut1, o.Location.Longitude)
	if err != nil {
		return Reading{}, fmt.Errorf("local sidereal time: %w", err)
	}

	return Reading{
		Time:        t.UTC(),
		UTC:         utc,
		Modified:    utc.Modified(),
		Calendar:    utc.CalendarDateTime().String(),
		TT:          tt,
		TAI:         o.scales.TTtoTAI(tt),
		UT1:         ut1,
		DeltaT:      o.scales.DeltaT(tt).Seconds(),
		LeapSeconds: o.scales.CumulativeLeapSeconds(utc).Seconds(),
		UT1MinusUTC: o.scales.UT1minusUTC(utc).Seconds(),
		GMST:        o.sidereal.MeanGreenwich(ut1),
		GAST:        o.sidereal.ApparentGreenwich(ut1),
		LMST:        lmst,
		LAST:        last,
	}, nil
}
