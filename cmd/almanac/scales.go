package main

import (
	"github.com/spf13/cobra"
)

var scalesCmd = &cobra.Command{
	Use:   "scales [jd]",
	Short: "Express a TT Julian day on the TAI, UT1 and UTC scales",
	Args:  cobra.ExactArgs(1),
	RunE:  runScales,
}

func init() {
	rootCmd.AddCommand(scalesCmd)
}

func runScales(cmd *cobra.Command, args []string) error {
	tt, err := parseJulianDay(args[0])
	if err != nil {
		return err
	}

	scales, err := timeScales()
	if err != nil {
		return err
	}

	utc := scales.TTtoUTC(tt)
	cmd.Printf("TT         %.9f\n", tt.Value())
	cmd.Printf("TAI        %.9f\n", scales.TTtoTAI(tt).Value())
	cmd.Printf("UT1        %.9f\n", scales.TTtoUT1(tt).Value())
	cmd.Printf("UTC        %.9f  %s\n", utc.Value(), utc.CalendarDateTime())
	cmd.Printf("ΔT         %.3fs\n", scales.DeltaT(tt).Seconds())
	cmd.Printf("TAI-UTC    %.3fs\n", scales.CumulativeLeapSeconds(utc).Seconds())
	cmd.Printf("UT1-UTC    %.3fs\n", scales.UT1minusUTC(utc).Seconds())
	return nil
}
