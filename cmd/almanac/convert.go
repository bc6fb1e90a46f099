package main

import (
	"github.com/spf13/cobra"

	"github.com/subtlepseudonym/almanac/julian"
)

var jdCmd = &cobra.Command{
	Use:   "jd [date]",
	Short: "Convert a UTC calendar date to a Julian day",
	Long: `Convert a proleptic Gregorian date and time on the UTC scale to a Julian
day. Dates take the form 2006-01-02T15:04:05Z; the time of day is
optional. Years before 1 CE are numbered astronomically.`,
	Args: cobra.ExactArgs(1),
	RunE: runJulianDay,
}

var calendarCmd = &cobra.Command{
	Use:   "calendar [jd]",
	Short: "Convert a Julian day to a UTC calendar date",
	Args:  cobra.ExactArgs(1),
	RunE:  runCalendar,
}

func init() {
	rootCmd.AddCommand(jdCmd)
	rootCmd.AddCommand(calendarCmd)
}

func runJulianDay(cmd *cobra.Command, args []string) error {
	date, err := julian.ParseCalendarDateTime(args[0])
	if err != nil {
		return err
	}

	jd, err := date.JulianDay()
	if err != nil {
		return err
	}

	printJulianDay(cmd, jd)
	return nil
}

func runCalendar(cmd *cobra.Command, args []string) error {
	jd, err := parseJulianDay(args[0])
	if err != nil {
		return err
	}

	printJulianDay(cmd, jd)
	return nil
}

func printJulianDay(cmd *cobra.Command, jd julian.JulianDay) {
	cmd.Printf("JD   %.9f\n", jd.Value())
	cmd.Printf("MJD  %.9f\n", jd.Modified().Value())
	cmd.Printf("UTC  %s\n", jd.CalendarDateTime())
	if s := jd.String(); s == "J2000.0" || s == "B1950.0" {
		cmd.Printf("     %s\n", s)
	}
}
