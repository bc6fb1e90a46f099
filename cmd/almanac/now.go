package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/subtlepseudonym/almanac"
)

var (
	nowLongitude float64
	nowJSON      bool
)

var nowCmd = &cobra.Command{
	Use:   "now",
	Short: "Print the current instant on every scale",
	Args:  cobra.NoArgs,
	RunE:  runNow,
}

func init() {
	nowCmd.Flags().Float64VarP(&nowLongitude, "longitude", "l", 0, "observer longitude in degrees, positive west")
	nowCmd.Flags().BoolVar(&nowJSON, "json", false, "output the reading as JSON")
	rootCmd.AddCommand(nowCmd)
}

func runNow(cmd *cobra.Command, _ []string) error {
	scales, err := timeScales()
	if err != nil {
		return err
	}

	observer := almanac.NewObserver(almanac.Location{Longitude: nowLongitude}, scales)
	reading, err := observer.Observe(clock.Now())
	if err != nil {
		return err
	}

	if nowJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(reading)
	}

	cmd.Printf("UTC   %s\n", reading.Calendar)
	cmd.Printf("JD    %.9f\n", reading.UTC.Value())
	cmd.Printf("MJD   %.9f\n", reading.Modified.Value())
	cmd.Printf("TT    %.9f\n", reading.TT.Value())
	cmd.Printf("TAI   %.9f\n", reading.TAI.Value())
	cmd.Printf("UT1   %.9f\n", reading.UT1.Value())
	cmd.Printf("GMST  %s\n", reading.GMST)
	cmd.Printf("GAST  %s\n", reading.GAST)
	cmd.Printf("LMST  %s\n", reading.LMST)
	cmd.Printf("LAST  %s\n", reading.LAST)
	return nil
}
