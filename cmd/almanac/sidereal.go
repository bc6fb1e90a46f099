package main

import (
	"github.com/spf13/cobra"

	"github.com/subtlepseudonym/almanac/julian"
)

var siderealLongitude float64

var siderealCmd = &cobra.Command{
	Use:   "sidereal [jd]",
	Short: "Print sidereal time for a UT1 Julian day",
	Long: `Print mean and apparent sidereal time at Greenwich for a Julian day on
the UT1 scale. With --longitude, local sidereal time is printed as well.`,
	Args: cobra.ExactArgs(1),
	RunE: runSidereal,
}

func init() {
	siderealCmd.Flags().Float64VarP(&siderealLongitude, "longitude", "l", 0, "observer longitude in degrees, positive west")
	rootCmd.AddCommand(siderealCmd)
}

func runSidereal(cmd *cobra.Command, args []string) error {
	jd, err := parseJulianDay(args[0])
	if err != nil {
		return err
	}

	cmd.Printf("GMST  %s\n", jd.MeanGreenwichSiderealTime())
	cmd.Printf("GAST  %s\n", jd.ApparentGreenwichSiderealTime())

	if !cmd.Flags().Changed("longitude") {
		return nil
	}

	lmst, err := julian.DefaultSidereal.MeanLocal(jd, siderealLongitude)
	if err != nil {
		return err
	}
	last, err := julian.DefaultSidereal.ApparentLocal(jd, siderealLongitude)
	if err != nil {
		return err
	}

	cmd.Printf("LMST  %s\n", lmst)
	cmd.Printf("LAST  %s\n", last)
	return nil
}
