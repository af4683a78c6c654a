// Package muhurat derives the day's auspicious and inauspicious clock
// windows from sunrise and sunset, scores instants against per-activity
// rule tables, and searches date ranges for favorable windows.
package muhurat

import (
	"github.com/gopanchang/jyotish/internal/panchang"
)

// Window is a clock-time span on one local date, in fractional hours.
type Window struct {
	Start float64
	End   float64
}

// Contains reports whether a local clock time falls inside the window.
func (w Window) Contains(hours float64) bool {
	return hours >= w.Start && hours < w.End
}

// Midpoint returns the center of the window.
func (w Window) Midpoint() float64 { return w.Start + (w.End-w.Start)/2 }

// Hours returns the window length.
func (w Window) Hours() float64 { return w.End - w.Start }

// String renders the window as HH:MM-HH:MM.
func (w Window) String() string {
	return panchang.FormatClock(w.Start) + "-" + panchang.FormatClock(w.End)
}

// The daylight arc divides into eight equal parts; each inauspicious
// period occupies one of them, selected by weekday. Tables are 0-based
// eighths indexed Sunday..Saturday.
var (
	raahuKaalEighth = [7]int{7, 1, 6, 4, 5, 3, 2}
	yamagandaEighth = [7]int{4, 3, 2, 1, 0, 6, 5}
	gulikaEighth    = [7]int{6, 5, 4, 3, 2, 1, 0}
)

// abhijitHalfHours is the half-width of the Abhijit muhurat: 24 minutes
// either side of solar noon.
const abhijitHalfHours = 0.4

// DayPeriods holds every derived window for one local date.
type DayPeriods struct {
	Weekday panchang.Weekday

	RaahuKaal Window
	Yamaganda Window
	Gulika    Window

	// Abhijit is the auspicious window centered on solar noon.
	Abhijit Window
	// Brahma is the pre-dawn window from 96 to 48 minutes before sunrise.
	Brahma Window

	// Polar is carried from the sunrise solver: the eighths degenerate
	// when the sun never crosses the horizon.
	Polar bool
}

// Periods derives all windows for a day from its sun times and weekday.
func Periods(day panchang.DayTimes, weekday panchang.Weekday) DayPeriods {
	eighth := (day.Sunset - day.Sunrise) / 8
	slice := func(i int) Window {
		return Window{
			Start: day.Sunrise + float64(i)*eighth,
			End:   day.Sunrise + float64(i+1)*eighth,
		}
	}

	noon := day.Sunrise + (day.Sunset-day.Sunrise)/2
	return DayPeriods{
		Weekday:   weekday,
		RaahuKaal: slice(raahuKaalEighth[weekday]),
		Yamaganda: slice(yamagandaEighth[weekday]),
		Gulika:    slice(gulikaEighth[weekday]),
		Abhijit:   Window{Start: noon - abhijitHalfHours, End: noon + abhijitHalfHours},
		Brahma:    Window{Start: day.Sunrise - 1.6, End: day.Sunrise - 0.8},
		Polar:     day.Polar,
	}
}

// Inauspicious reports which of the three inauspicious windows contain the
// given clock time, in fixed order: Raahu Kaal, Yamaganda, Gulika.
func (d DayPeriods) Inauspicious(hours float64) []string {
	var names []string
	if d.RaahuKaal.Contains(hours) {
		names = append(names, "Raahu Kaal")
	}
	if d.Yamaganda.Contains(hours) {
		names = append(names, "Yamaganda")
	}
	if d.Gulika.Contains(hours) {
		names = append(names, "Gulika")
	}
	return names
}
