package almanac

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/subtlepseudonym/almanac/julian"
)

const siderealPrefix = "@sidereal"

// siderealDay is the length of a mean sidereal day in civil time
var siderealDay = time.Duration(siderealDayNanos)

var siderealDayNanos float64 = julian.SecondsPerDay / julian.SiderealRate * float64(time.Second)

// SiderealSchedule fires each time the observer's mean local sidereal
// time reaches Target, roughly four minutes earlier every civil day.
type SiderealSchedule struct {
	Observer *Observer
	Target   julian.Hour
}

// Next returns the next instant after now at which the local mean
// sidereal time equals Target
//
// This implements robfig/cron.Schedule
func (s SiderealSchedule) Next(now time.Time) time.Time {
	reading, err := s.Observer.Observe(now)
	if err != nil {
		slog.Error("sidereal schedule", "error", err)
		return time.Time{}
	}

	remaining := (s.Target - reading.LMST).Normalize()
	delay := time.Duration(float64(remaining) * 3600 / julian.SiderealRate * float64(time.Second))
	if delay < time.Second {
		delay += siderealDay
	}

	return now.Add(delay)
}

// ParseSchedule accepts a standard cron spec or "@sidereal HH:MM[:SS]"
func ParseSchedule(spec string, observer *Observer) (cron.Schedule, error) {
	if !strings.HasPrefix(spec, siderealPrefix) {
		schedule, err := cron.ParseStandard(spec)
		if err != nil {
			return nil, fmt.Errorf("parse schedule: %w", err)
		}
		return schedule, nil
	}

	fields := strings.Fields(strings.TrimPrefix(spec, siderealPrefix))
	if len(fields) != 1 {
		return nil, fmt.Errorf("parse schedule: expected %s HH:MM[:SS], got %q", siderealPrefix, spec)
	}

	target, err := julian.ParseHour(fields[0])
	if err != nil {
		return nil, fmt.Errorf("parse sidereal target: %w", err)
	}

	return SiderealSchedule{
		Observer: observer,
		Target:   target,
	}, nil
}
