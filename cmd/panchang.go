package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gopanchang/jyotish/internal/muhurat"
	"github.com/gopanchang/jyotish/internal/panchang"
)

var panchangCmd = &cobra.Command{
	Use:   "panchang",
	Short: "Show the five limbs, sun times and daily windows for a date",
	RunE:  runPanchang,
}

func init() {
	panchangCmd.Flags().String("date", "", "date, YYYY-MM-DD (required)")
	panchangCmd.Flags().String("time", "12:00", "time of day for the snapshot, HH:MM")
	panchangCmd.MarkFlagRequired("date")
	rootCmd.AddCommand(panchangCmd)
}

func runPanchang(cmd *cobra.Command, _ []string) error {
	date, _ := cmd.Flags().GetString("date")
	clock, _ := cmd.Flags().GetString("time")
	lat, lon, tz := location(cmd)

	moment, err := momentFromFlags(date, clock, tz)
	if err != nil {
		return err
	}
	snap, err := panchang.At(moment, ayanamsaModel())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Panchang for %04d-%02d-%02d %02d:%02d (UTC%+.1f)\n\n",
		moment.Year, moment.Month, moment.Day, moment.Hour, moment.Minute, tz)
	fmt.Fprintf(out, "Vara      %s\n", snap.Weekday)
	fmt.Fprintf(out, "Tithi     %s (%d)\n", snap.Tithi, snap.Tithi)
	fmt.Fprintf(out, "Nakshatra %s pada %d\n", snap.Nakshatra.Name, snap.Pada)
	fmt.Fprintf(out, "Yoga      %s (%d)\n", snap.Yoga, snap.Yoga)
	fmt.Fprintf(out, "Karana    %s (%d)\n", snap.Karana, snap.Karana)

	sun, err := panchang.SunTimes(moment.Year, moment.Month, moment.Day, lat, lon, tz)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "\nSunrise   %s\nSunset    %s\n",
		panchang.FormatClock(sun.Sunrise), panchang.FormatClock(sun.Sunset))
	if sun.Polar {
		fmt.Fprintln(out, "(polar day/night: the sun does not cross the horizon)")
	}

	p := muhurat.Periods(sun, snap.Weekday)
	fmt.Fprintf(out, "\nRaahu Kaal      %s\n", p.RaahuKaal)
	fmt.Fprintf(out, "Yamaganda       %s\n", p.Yamaganda)
	fmt.Fprintf(out, "Gulika          %s\n", p.Gulika)
	fmt.Fprintf(out, "Abhijit         %s\n", p.Abhijit)
	fmt.Fprintf(out, "Brahma Muhurat  %s\n", p.Brahma)
	return nil
}
