package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gopanchang/jyotish/internal/chart"
	"github.com/gopanchang/jyotish/internal/dasha"
	"github.com/gopanchang/jyotish/internal/zodiac"
)

var dashaCmd = &cobra.Command{
	Use:   "dasha",
	Short: "Show the Vimshottari dasha timeline for a birth moment",
	RunE:  runDasha,
}

func init() {
	dashaCmd.Flags().String("date", "", "birth date, YYYY-MM-DD (required)")
	dashaCmd.Flags().String("time", "", "birth time, HH:MM")
	dashaCmd.Flags().Int("levels", 1, "nesting depth to print for the active period (1-3)")
	dashaCmd.Flags().String("at", "", "query date for the active period (default: today)")
	dashaCmd.MarkFlagRequired("date")
	rootCmd.AddCommand(dashaCmd)
}

func runDasha(cmd *cobra.Command, _ []string) error {
	date, _ := cmd.Flags().GetString("date")
	clock, _ := cmd.Flags().GetString("time")
	levels, _ := cmd.Flags().GetInt("levels")
	lat, lon, tz := location(cmd)

	if levels < 1 || levels > 3 {
		return fmt.Errorf("levels %d, want 1-3", levels)
	}

	moment, err := momentFromFlags(date, clock, tz)
	if err != nil {
		return err
	}
	c, err := chart.New(chart.Input{Moment: moment, Latitude: lat, Longitude: lon}, ayanamsaModel())
	if err != nil {
		return err
	}

	timeline := dasha.New(c.MoonLongitude(), c.JulianDay)
	out := cmd.OutOrStdout()

	first := timeline.Mahadashas()[0]
	fmt.Fprintf(out, "Moon in %s: %s mahadasha running at birth, %.2f years remain\n\n",
		c.Body(zodiac.Moon).Nakshatra.Name, first.Planet, timeline.BalanceYears)

	fmt.Fprintln(out, "Mahadashas:")
	for _, m := range timeline.Mahadashas() {
		fmt.Fprintf(out, "  %-8s %s  ->  %s\n", m.Planet, formatJD(m.Start), formatJD(m.End))
	}

	queryJD := nowJD()
	if at, _ := cmd.Flags().GetString("at"); at != "" {
		qm, err := momentFromFlags(at, "12:00", tz)
		if err != nil {
			return err
		}
		queryJD = qm.JulianDay()
	}

	maha, antar, praty, err := timeline.Active(queryJD)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "\nActive at %s:\n", formatJD(queryJD))
	active := []dasha.Period{maha, antar, praty}
	for i := 0; i < levels; i++ {
		p := active[i]
		fmt.Fprintf(out, "  %-16s %-8s %s  ->  %s\n", p.Level, p.Planet, formatJD(p.Start), formatJD(p.End))
	}
	return nil
}
