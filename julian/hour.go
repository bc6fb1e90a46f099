package julian

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
)

// Hour is an angle or time of day measured in hours.
type Hour float64

// Normalize wraps h into [0, 24)
func (h Hour) Normalize() Hour {
	v := math.Mod(float64(h), 24)
	if v < 0 {
		v += 24
	}
	if v >= 24 {
		v -= 24
	}
	return Hour(v)
}

// Degrees returns h as an angle in degrees
func (h Hour) Degrees() float64 {
	return float64(h) * 15
}

// HMS splits a normalized h into hours, minutes and seconds, rounded
// to the millisecond. Rounding carries into the minute and hour, and a
// value that rounds up to 24h wraps to zero.
func (h Hour) HMS() (hours, minutes int, seconds float64) {
	ms := int64(math.Round(float64(h.Normalize()) * millisecondsPerHour))
	if ms >= 24*millisecondsPerHour {
		ms = 0
	}

	hours = int(ms / millisecondsPerHour)
	ms %= millisecondsPerHour
	minutes = int(ms / 60000)
	ms %= 60000
	return hours, minutes, float64(ms) / 1000
}

const millisecondsPerHour = 3600000

func (h Hour) String() string {
	hours, minutes, seconds := h.HMS()
	return fmt.Sprintf("%02dh%02dm%06.3fs", hours, minutes, seconds)
}

var hourPattern = regexp.MustCompile(`^(\d{1,2}):(\d{2})(?::(\d{2}(?:\.\d+)?))?$`)

// ParseHour parses HH:MM or HH:MM:SS, where seconds may be fractional.
func ParseHour(s string) (Hour, error) {
	match := hourPattern.FindStringSubmatch(s)
	if match == nil {
		return 0, fmt.Errorf("parse hour %q: expected HH:MM[:SS]", s)
	}

	hours, err := strconv.Atoi(match[1])
	if err != nil {
		return 0, fmt.Errorf("parse hour %q: %w", s, err)
	}
	minutes, err := strconv.Atoi(match[2])
	if err != nil {
		return 0, fmt.Errorf("parse hour %q: %w", s, err)
	}
	var seconds float64
	if match[3] != "" {
		seconds, err = strconv.ParseFloat(match[3], 64)
		if err != nil {
			return 0, fmt.Errorf("parse hour %q: %w", s, err)
		}
	}

	if hours > 23 || minutes > 59 || seconds >= 60 {
		return 0, fmt.Errorf("parse hour %q: out of range", s)
	}

	return Hour(float64(hours) + float64(minutes)/60 + seconds/3600), nil
}
