package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gopanchang/jyotish/internal/astrotime"
)

// nowJD returns the current instant as a Julian Day.
func nowJD() float64 {
	t := time.Now().UTC()
	return astrotime.JulianDay(t.Year(), int(t.Month()), t.Day(),
		t.Hour(), t.Minute(), float64(t.Second()))
}

// formatJD renders a Julian Day as a UT calendar timestamp.
func formatJD(jd float64) string {
	y, m, d, h, min, _ := astrotime.Calendar(jd)
	return fmt.Sprintf("%04d-%02d-%02d %02d:%02d UT", y, m, d, h, min)
}

// parseDate parses YYYY-MM-DD.
func parseDate(s string) (year, month, day int, err error) {
	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("date %q, want YYYY-MM-DD", s)
	}
	year, err1 := strconv.Atoi(parts[0])
	month, err2 := strconv.Atoi(parts[1])
	day, err3 := strconv.Atoi(parts[2])
	if err1 != nil || err2 != nil || err3 != nil {
		return 0, 0, 0, fmt.Errorf("date %q, want YYYY-MM-DD", s)
	}
	return year, month, day, nil
}

// parseClock parses HH:MM.
func parseClock(s string) (hour, minute int, err error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("time %q, want HH:MM", s)
	}
	hour, err1 := strconv.Atoi(parts[0])
	minute, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil {
		return 0, 0, fmt.Errorf("time %q, want HH:MM", s)
	}
	return hour, minute, nil
}

// momentFromFlags assembles a validated Moment from --date/--time/--tz.
func momentFromFlags(date, clock string, tz float64) (astrotime.Moment, error) {
	year, month, day, err := parseDate(date)
	if err != nil {
		return astrotime.Moment{}, err
	}
	hour, minute := 0, 0
	if clock != "" {
		if hour, minute, err = parseClock(clock); err != nil {
			return astrotime.Moment{}, err
		}
	}
	m := astrotime.Moment{
		Year: year, Month: month, Day: day,
		Hour: hour, Minute: minute,
		UTCOffset: tz,
	}
	return m, m.Validate()
}
