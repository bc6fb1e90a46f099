package almanac

import (
	"testing"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/subtlepseudonym/almanac/julian"
)

func TestParseSchedule_Sidereal(t *testing.T) {
	observer := NewObserver(greenwich, julian.DefaultTimeScales)

	schedule, err := ParseSchedule("@sidereal 05:35", observer)
	require.NoError(t, err)

	sidereal, ok := schedule.(SiderealSchedule)
	require.True(t, ok)
	assert.InDelta(t, 5+35.0/60, float64(sidereal.Target), 1e-12)
	assert.Same(t, observer, sidereal.Observer)
}

func TestParseSchedule_Standard(t *testing.T) {
	schedule, err := ParseSchedule("0 6 * * *", nil)
	require.NoError(t, err)

	_, ok := schedule.(*cron.SpecSchedule)
	assert.True(t, ok)
}

func TestParseSchedule_Invalid(t *testing.T) {
	for _, spec := range []string{"@sidereal", "@sidereal 25:00", "@sidereal 05:35 daily", "not a schedule"} {
		_, err := ParseSchedule(spec, nil)
		assert.Error(t, err, spec)
	}
}

func TestSiderealSchedule_Next(t *testing.T) {
	for _, location := range []Location{greenwich, {Longitude: 122.4}, {Longitude: -151.2}} {
		observer := NewObserver(location, julian.DefaultTimeScales)
		schedule := SiderealSchedule{Observer: observer, Target: 5 + 35.0/60}

		now := time.Date(2024, time.June, 1, 8, 0, 0, 0, time.UTC)
		next := schedule.Next(now)

		require.True(t, next.After(now))
		assert.LessOrEqual(t, next.Sub(now), siderealDay+time.Second)

		reading, err := observer.Observe(next)
		require.NoError(t, err)
		assert.InDelta(t, float64(schedule.Target), float64(reading.LMST), 1e-6, "longitude %v", location.Longitude)
	}
}

func TestSiderealSchedule_NextDay(t *testing.T) {
	schedule := SiderealSchedule{
		Observer: NewObserver(greenwich, julian.DefaultTimeScales),
		Target:   12,
	}

	first := schedule.Next(time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC))
	second := schedule.Next(first)

	// a sidereal day is 3m56s shorter than a civil day
	assert.WithinDuration(t, first.Add(siderealDay), second, time.Second)
	assert.InDelta(t, (23*time.Hour + 56*time.Minute + 4*time.Second).Seconds(), siderealDay.Seconds(), 0.1)
}

func TestSiderealSchedule_InvalidLongitude(t *testing.T) {
	schedule := SiderealSchedule{
		Observer: NewObserver(Location{Longitude: nan()}, julian.DefaultTimeScales),
		Target:   1,
	}

	assert.True(t, schedule.Next(time.Now()).IsZero())
}
