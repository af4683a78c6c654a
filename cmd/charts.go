package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gopanchang/jyotish/internal/chartstore"
	"github.com/gopanchang/jyotish/internal/dasha"
	"github.com/gopanchang/jyotish/internal/zodiac"
)

// defaultDBPath is the chart archive location relative to the cwd.
const defaultDBPath = ".jyotish.db"

var chartsCmd = &cobra.Command{
	Use:   "charts",
	Short: "List archived charts",
	RunE:  runCharts,
}

var chartsDeleteCmd = &cobra.Command{
	Use:   "delete NAME",
	Short: "Remove an archived chart",
	Args:  cobra.ExactArgs(1),
	RunE:  runChartsDelete,
}

func init() {
	chartsCmd.PersistentFlags().String("db", defaultDBPath, "chart archive database path")
	chartsCmd.AddCommand(chartsDeleteCmd)
	rootCmd.AddCommand(chartsCmd)
}

func runCharts(cmd *cobra.Command, _ []string) error {
	dbPath, _ := cmd.Flags().GetString("db")
	store, err := chartstore.Open(cmd.Context(), dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	charts, err := store.List(cmd.Context())
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if len(charts) == 0 {
		fmt.Fprintln(out, "no archived charts")
		return nil
	}

	fmt.Fprintf(out, "%-16s %-18s %-11s %-10s\n", "Name", "Moment", "Ascendant", "Mahadasha")
	for _, c := range charts {
		// The stored Moon longitude re-anchors the timeline, so the
		// currently running lord comes for free.
		timeline := dasha.New(c.MoonLongitude, c.JulianDay)
		running := "-"
		if maha, _, _, err := timeline.Active(nowJD()); err == nil {
			running = maha.Planet.String()
		}
		fmt.Fprintf(out, "%-16s %04d-%02d-%02d %02d:%02d   %-11s %-10s\n",
			c.Name, c.Moment.Year, c.Moment.Month, c.Moment.Day,
			c.Moment.Hour, c.Moment.Minute,
			zodiac.Signs[c.AscSign].Name, running)
	}
	return nil
}

func runChartsDelete(cmd *cobra.Command, args []string) error {
	dbPath, _ := cmd.Flags().GetString("db")
	store, err := chartstore.Open(cmd.Context(), dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Delete(cmd.Context(), args[0]); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "deleted %q\n", args[0])
	return nil
}
