package main

import (
	"fmt"
	"strconv"

	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"

	"github.com/subtlepseudonym/almanac/julian"
	"github.com/subtlepseudonym/almanac/timescale"
)

// clock is swapped for a fake in tests
var clock = clockwork.NewRealClock()

var leapSecondsFile string

var rootCmd = &cobra.Command{
	Use:   "almanac",
	Short: "Convert between Julian days, calendar dates, sidereal time and time scales",
	Long: `almanac converts instants between the Julian day count, the proleptic
Gregorian calendar, Greenwich and local sidereal time, and the TT, TAI,
UT1 and UTC time scales.

Longitudes are in degrees, positive west of Greenwich.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&leapSecondsFile, "leap-seconds", "", "IETF leap-seconds.list superseding the built-in table")
}

// timeScales uses the --leap-seconds file when one is given
func timeScales() (julian.TimeScales, error) {
	if leapSecondsFile == "" {
		return julian.DefaultTimeScales, nil
	}

	list, err := timescale.LoadLeapSecondsFile(leapSecondsFile)
	if err != nil {
		return julian.TimeScales{}, err
	}

	provider := timescale.NewProvider(timescale.WithLeapSeconds(list.Table))
	return julian.NewTimeScales(provider), nil
}

func parseJulianDay(arg string) (julian.JulianDay, error) {
	value, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		return julian.JulianDay{}, fmt.Errorf("parse julian day %q: %w", arg, julian.ErrDomain)
	}
	return julian.New(value)
}
