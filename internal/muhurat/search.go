package muhurat

import (
	"fmt"
	"runtime"
	"sort"
	"sync"

	"github.com/gopanchang/jyotish/internal/astrotime"
	"github.com/gopanchang/jyotish/internal/panchang"
	"github.com/gopanchang/jyotish/internal/zodiac"
)

// Query bounds a muhurat search.
type Query struct {
	StartYear  int
	StartMonth int
	StartDay   int
	Days       int

	Latitude  float64
	Longitude float64
	UTCOffset float64

	// MinScore drops candidates below the threshold; the "poor" tier is
	// always dropped regardless.
	MinScore float64

	// Workers caps the parallel per-day evaluations; 0 means NumCPU.
	Workers int
}

// Candidate is one scored window in the search result.
type Candidate struct {
	Year, Month, Day int
	Label            string // "morning", "abhijit" or "afternoon"
	Window           Window
	Score            Score
	Snapshot         panchang.Snapshot
}

// Search evaluates every candidate window in the date range against the
// rule and returns the survivors sorted by score descending, then date and
// start time ascending. Days are evaluated concurrently; each evaluation
// is a pure function of its inputs, so only the final sort serializes.
func Search(q Query, rule Rule, ayanamsa zodiac.AyanamsaModel) ([]Candidate, error) {
	if err := rule.Validate(); err != nil {
		return nil, err
	}
	if err := astrotime.ValidateDate(q.StartYear, q.StartMonth, q.StartDay, 0, 0); err != nil {
		return nil, err
	}
	if q.Days < 1 {
		return nil, fmt.Errorf("muhurat: day count %d, want at least 1", q.Days)
	}

	workers := q.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	startJD := astrotime.JulianDay(q.StartYear, q.StartMonth, q.StartDay, 12, 0, 0)
	perDay := make([][]Candidate, q.Days)
	errs := make([]error, q.Days)

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				y, m, d, _, _, _ := astrotime.Calendar(startJD + float64(i))
				perDay[i], errs[i] = evaluateDay(q, rule, ayanamsa, y, m, d)
			}
		}()
	}
	for i := 0; i < q.Days; i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	var out []Candidate
	for i := range perDay {
		if errs[i] != nil {
			return nil, errs[i]
		}
		out = append(out, perDay[i]...)
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Score.Total != b.Score.Total {
			return a.Score.Total > b.Score.Total
		}
		if a.Snapshot.JulianDay != b.Snapshot.JulianDay {
			return a.Snapshot.JulianDay < b.Snapshot.JulianDay
		}
		return a.Window.Start < b.Window.Start
	})
	return out, nil
}

// evaluateDay scores the day's candidate windows at their midpoints.
func evaluateDay(q Query, rule Rule, ayanamsa zodiac.AyanamsaModel, year, month, day int) ([]Candidate, error) {
	sun, err := panchang.SunTimes(year, month, day, q.Latitude, q.Longitude, q.UTCOffset)
	if err != nil {
		return nil, err
	}
	weekday := panchang.Weekday(astrotime.Weekday(astrotime.JulianDay(year, month, day, 12, 0, 0)))
	periods := Periods(sun, weekday)

	var kept []Candidate
	for _, cw := range candidateWindows(rule, sun, periods) {
		mid := cw.window.Midpoint()
		moment := astrotime.Moment{
			Year: year, Month: month, Day: day,
			Hour:      int(mid),
			Minute:    int((mid - float64(int(mid))) * 60),
			UTCOffset: q.UTCOffset,
		}
		snap, err := panchang.At(moment, ayanamsa)
		if err != nil {
			return nil, err
		}
		score := Evaluate(snap, mid, periods, rule)
		if score.Quality == Poor || score.Total < q.MinScore {
			continue
		}
		kept = append(kept, Candidate{
			Year: year, Month: month, Day: day,
			Label:    cw.label,
			Window:   cw.window,
			Score:    score,
			Snapshot: snap,
		})
	}
	return kept, nil
}

type labeledWindow struct {
	label  string
	window Window
}

// candidateWindows returns up to three windows for a day. A rule that
// requires Abhijit gets only the Abhijit window; otherwise the morning and
// afternoon flanks are included according to the rule's preference, and a
// rule with no preference gets all three.
func candidateWindows(rule Rule, sun panchang.DayTimes, periods DayPeriods) []labeledWindow {
	abhijit := labeledWindow{"abhijit", periods.Abhijit}
	if rule.RequiresAbhijit {
		return []labeledWindow{abhijit}
	}

	var out []labeledWindow
	morning := Window{Start: sun.Sunrise + 1, End: periods.Abhijit.Start}
	afternoon := Window{Start: periods.Abhijit.End, End: sun.Sunset - 1}

	if !rule.PreferAfternoon && morning.End > morning.Start {
		out = append(out, labeledWindow{"morning", morning})
	}
	out = append(out, abhijit)
	if !rule.PreferMorning && afternoon.End > afternoon.Start {
		out = append(out, labeledWindow{"afternoon", afternoon})
	}
	return out
}
