package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gopanchang/jyotish/internal/chart"
	"github.com/gopanchang/jyotish/internal/chartstore"
	"github.com/gopanchang/jyotish/internal/dasha"
)

var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Compute a sidereal birth chart",
	Long: `Computes the Ascendant, Midheaven, whole-sign houses and the placements
of all nine grahas for a birth moment, plus the Vimshottari balance at birth
and the periods running now.`,
	RunE: runChart,
}

func init() {
	chartCmd.Flags().String("date", "", "birth date, YYYY-MM-DD (required)")
	chartCmd.Flags().String("time", "", "birth time, HH:MM")
	chartCmd.Flags().String("save", "", "archive the chart under this name")
	chartCmd.Flags().String("db", defaultDBPath, "chart archive database path")
	chartCmd.MarkFlagRequired("date")
	rootCmd.AddCommand(chartCmd)
}

func runChart(cmd *cobra.Command, _ []string) error {
	date, _ := cmd.Flags().GetString("date")
	clock, _ := cmd.Flags().GetString("time")
	lat, lon, tz := location(cmd)

	moment, err := momentFromFlags(date, clock, tz)
	if err != nil {
		return err
	}
	in := chart.Input{Moment: moment, Latitude: lat, Longitude: lon}
	ayanamsa := ayanamsaModel()

	c, err := chart.New(in, ayanamsa)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Chart for %04d-%02d-%02d %02d:%02d (UTC%+.1f) at %.4f°N %.4f°E\n",
		moment.Year, moment.Month, moment.Day, moment.Hour, moment.Minute, tz, lat, lon)
	fmt.Fprintf(out, "Julian Day %.6f, ayanamsa %.4f°\n\n", c.JulianDay, ayanamsa.At(c.JulianDay))

	fmt.Fprintf(out, "Ascendant  %8.4f°  %-11s %s pada %d\n",
		c.Ascendant.Longitude, c.Ascendant.Sign.Name, c.Ascendant.Nakshatra.Name, c.Ascendant.Pada)
	fmt.Fprintf(out, "Midheaven  %8.4f°  %-11s\n\n", c.Midheaven.Longitude, c.Midheaven.Sign.Name)

	fmt.Fprintf(out, "%-8s %10s  %-11s %-18s %4s %5s\n", "Graha", "Longitude", "Sign", "Nakshatra", "Pada", "House")
	for _, b := range c.Bodies {
		flag := ""
		if !b.Converged {
			flag = " *"
		}
		fmt.Fprintf(out, "%-8s %9.4f°  %-11s %-18s %4d %5d%s\n",
			b.Planet, b.Position.Longitude, b.Sign.Name, b.Nakshatra.Name, b.Pada, b.House, flag)
	}

	timeline := dasha.New(c.MoonLongitude(), c.JulianDay)
	fmt.Fprintf(out, "\nBalance of %s mahadasha at birth: %.2f years\n",
		timeline.Mahadashas()[0].Planet, timeline.BalanceYears)

	if name, _ := cmd.Flags().GetString("save"); name != "" {
		dbPath, _ := cmd.Flags().GetString("db")
		store, err := chartstore.Open(cmd.Context(), dbPath)
		if err != nil {
			return err
		}
		defer store.Close()
		if err := store.Save(cmd.Context(), name, in, c); err != nil {
			return err
		}
		fmt.Fprintf(out, "Saved as %q in %s\n", name, dbPath)
	}
	return nil
}
