package timescale

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
)

// ntpEpoch is the Julian day of 1900-01-01T00:00:00Z
const ntpEpoch = 2415020.5

// LeapSecondsList is the content of an IETF leap-seconds.list file
type LeapSecondsList struct {
	Table LeapSecondTable

	// Expires is the UTC Julian day after which the list should no
	// longer be trusted, or zero if the file does not say
	Expires float64
}

// Expired reports whether the list has expired by the UTC Julian day jd
func (l *LeapSecondsList) Expired(jd float64) bool {
	return l.Expires != 0 && jd > l.Expires
}

// ParseLeapSecondsList reads the format distributed by the IETF and
// IERS. Data lines hold NTP seconds and TAI - UTC; lines beginning
// with '#' are comments, except "#@" which gives the expiry.
//
// https://www.ietf.org/timezones/data/leap-seconds.list
func ParseLeapSecondsList(r io.Reader) (*LeapSecondsList, error) {
	var list LeapSecondsList

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		if strings.HasPrefix(text, "#@") {
			fields := strings.Fields(strings.TrimPrefix(text, "#@"))
			if len(fields) == 0 {
				return nil, fmt.Errorf("line %d: missing expiry", line)
			}
			ntp, err := strconv.ParseFloat(fields[0], 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: parse expiry: %w", line, err)
			}
			list.Expires = ntpEpoch + ntp/secondsPerDay
			continue
		}
		if strings.HasPrefix(text, "#") {
			continue
		}

		if idx := strings.Index(text, "#"); idx >= 0 {
			text = text[:idx]
		}
		fields := strings.Fields(text)
		if len(fields) < 2 {
			return nil, fmt.Errorf("line %d: expected ntp seconds and offset", line)
		}

		ntp, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: parse ntp seconds: %w", line, err)
		}
		offset, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: parse offset: %w", line, err)
		}

		list.Table = append(list.Table, LeapSecond{
			Effective: ntpEpoch + ntp/secondsPerDay,
			Offset:    offset,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan leap seconds list: %w", err)
	}

	if len(list.Table) == 0 {
		return nil, fmt.Errorf("leap seconds list has no entries")
	}

	sort.Slice(list.Table, func(i, j int) bool {
		return list.Table[i].Effective < list.Table[j].Effective
	})

	return &list, nil
}

// LoadLeapSecondsFile opens and parses a leap-seconds.list file
func LoadLeapSecondsFile(filename string) (*LeapSecondsList, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("open leap seconds file: %w", err)
	}
	defer f.Close()

	list, err := ParseLeapSecondsList(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", filename, err)
	}

	return list, nil
}
