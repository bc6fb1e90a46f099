package almanac

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/subtlepseudonym/almanac/julian"
)

var greenwich = Location{Name: "greenwich", Latitude: 51.4769, Longitude: 0}

func TestObserve(t *testing.T) {
	observer := NewObserver(greenwich, julian.DefaultTimeScales)
	noon := time.Date(2000, time.January, 1, 12, 0, 0, 0, time.UTC)

	reading, err := observer.Observe(noon)
	require.NoError(t, err)

	assert.True(t, reading.UTC.Equal(julian.J2000))
	assert.Equal(t, 51544.5, reading.Modified.Value())
	assert.Equal(t, "2000-01-01T12:00:00.000000000Z", reading.Calendar)

	assert.InDelta(t, 64.184, reading.TT.Sub(reading.UTC).Seconds(), 1e-6)
	assert.InDelta(t, 32, reading.TAI.Sub(reading.UTC).Seconds(), 1e-6)
	assert.InDelta(t, 32, reading.LeapSeconds, 1e-9)
	assert.InDelta(t, 63.86, reading.DeltaT, 1e-3)
	assert.InDelta(t, 0.324, reading.UT1MinusUTC, 1e-6)
	assert.InDelta(t, reading.UT1MinusUTC, reading.UT1.Sub(reading.UTC).Seconds(), 1e-3)

	// 18h41m50.548s at 0h UT1 on J2000
	assert.InDelta(t, 18.697374558, float64(reading.GMST), 1e-4)
	assert.InDelta(t, float64(reading.GMST), float64(reading.LMST), 1e-12)
	assert.InDelta(t, float64(reading.GAST), float64(reading.LAST), 1e-12)
}

func TestObserve_WestLongitude(t *testing.T) {
	observer := NewObserver(Location{Latitude: 40.7, Longitude: 75}, julian.DefaultTimeScales)

	reading, err := observer.Observe(time.Date(2024, time.March, 20, 3, 6, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.InDelta(t, float64((reading.GMST - 5).Normalize()), float64(reading.LMST), 1e-9)
}

func TestObserve_InvalidLongitude(t *testing.T) {
	observer := NewObserver(Location{Longitude: math.NaN()}, julian.DefaultTimeScales)

	_, err := observer.Observe(time.Now())
	assert.ErrorIs(t, err, julian.ErrDomain)
}
