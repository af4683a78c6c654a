// Package dasha builds the Vimshottari planetary-period timeline: a
// 120-year cycle of nine planetary rulerships anchored at the birth Moon's
// nakshatra, subdivided proportionally into Antardashas and
// Pratyantardashas by a single allocation routine.
package dasha

import (
	"errors"
	"math"

	"github.com/gopanchang/jyotish/internal/zodiac"
)

// Level is the nesting depth of a period.
type Level int

const (
	Maha Level = iota
	Antar
	Pratyantar
)

var levelNames = [...]string{"Mahadasha", "Antardasha", "Pratyantardasha"}

func (l Level) String() string { return levelNames[l] }

// CycleYears is the length of one full Vimshottari cycle.
const CycleYears = 120.0

// yearDays converts dasha years to days on the Julian Day scale.
const yearDays = 365.25

// Order is the fixed Vimshottari planet sequence. The sequence of
// nakshatra lords repeats it, so the birth nakshatra's lord locates the
// starting point.
var Order = [9]zodiac.Planet{
	zodiac.Ketu, zodiac.Venus, zodiac.Sun, zodiac.Moon, zodiac.Mars,
	zodiac.Rahu, zodiac.Jupiter, zodiac.Saturn, zodiac.Mercury,
}

// Years is each planet's share of the 120-year cycle.
var Years = map[zodiac.Planet]float64{
	zodiac.Ketu:    7,
	zodiac.Venus:   20,
	zodiac.Sun:     6,
	zodiac.Moon:    10,
	zodiac.Mars:    7,
	zodiac.Rahu:    18,
	zodiac.Jupiter: 16,
	zodiac.Saturn:  19,
	zodiac.Mercury: 17,
}

// ErrOutsideTimeline is returned by Active when the query instant falls
// before birth or past the generated timeline.
var ErrOutsideTimeline = errors.New("dasha: instant outside computed timeline")

// Period is one ruling period at any nesting level. Start is inclusive,
// End exclusive, both Julian Days.
type Period struct {
	Planet zodiac.Planet
	Level  Level
	Start  float64
	End    float64
	Parent *Period // nil for Mahadashas
}

// Days returns the period's length in days.
func (p Period) Days() float64 { return p.End - p.Start }

// Timeline is the full Mahadasha sequence for one birth.
type Timeline struct {
	BirthJD float64

	// BalanceYears is the unexpired share of the first Mahadasha at
	// birth ("balance of dasha").
	BalanceYears float64

	mahas []Period
}

// New anchors a timeline at the birth Moon's sidereal longitude. The first
// Mahadasha's lord is the birth nakshatra's ruler, shortened by the
// fraction of the nakshatra the Moon has already crossed; subsequent
// periods run full length in cycle order, covering at least one whole
// 120-year cycle past birth.
func New(moonSidereal, birthJD float64) *Timeline {
	nakIndex := zodiac.NakshatraIndex(moonSidereal)
	startIdx := nakIndex % 9
	lord := Order[startIdx]

	within := math.Mod(moonSidereal, zodiac.NakshatraSpan)
	elapsedFraction := within / zodiac.NakshatraSpan

	t := &Timeline{
		BirthJD:      birthJD,
		BalanceYears: Years[lord] * (1 - elapsedFraction),
	}

	start := birthJD
	end := start + t.BalanceYears*yearDays
	t.mahas = append(t.mahas, Period{Planet: lord, Level: Maha, Start: start, End: end})

	horizon := birthJD + CycleYears*yearDays
	for i := 1; ; i++ {
		p := Order[(startIdx+i)%9]
		start = end
		end = start + Years[p]*yearDays
		t.mahas = append(t.mahas, Period{Planet: p, Level: Maha, Start: start, End: end})
		if start >= horizon {
			break
		}
	}
	return t
}

// Mahadashas returns the top-level periods in order.
func (t *Timeline) Mahadashas() []Period {
	out := make([]Period, len(t.mahas))
	copy(out, t.mahas)
	return out
}

// Subdivide allocates a parent period among the nine planets in cycle
// order starting from the parent's own lord, each child sized
// proportionally to its share of 120 years. The same routine produces
// Antardashas from Mahadashas and Pratyantardashas from Antardashas.
func Subdivide(parent Period) []Period {
	startIdx := 0
	for i, p := range Order {
		if p == parent.Planet {
			startIdx = i
			break
		}
	}

	children := make([]Period, 0, 9)
	start := parent.Start
	for i := 0; i < 9; i++ {
		p := Order[(startIdx+i)%9]
		end := start + parent.Days()*Years[p]/CycleYears
		if i == 8 {
			// Close the last child on the parent boundary exactly so
			// float rounding cannot open a gap.
			end = parent.End
		}
		pp := parent
		children = append(children, Period{
			Planet: p,
			Level:  parent.Level + 1,
			Start:  start,
			End:    end,
			Parent: &pp,
		})
		start = end
	}
	return children
}

// Active returns the Mahadasha, Antardasha and Pratyantardasha containing
// the query instant.
func (t *Timeline) Active(jd float64) (maha, antar, praty Period, err error) {
	m, ok := find(t.mahas, jd)
	if !ok {
		return Period{}, Period{}, Period{}, ErrOutsideTimeline
	}
	a, ok := find(Subdivide(m), jd)
	if !ok {
		return Period{}, Period{}, Period{}, ErrOutsideTimeline
	}
	p, ok := find(Subdivide(a), jd)
	if !ok {
		return Period{}, Period{}, Period{}, ErrOutsideTimeline
	}
	return m, a, p, nil
}

func find(periods []Period, jd float64) (Period, bool) {
	for _, p := range periods {
		if jd >= p.Start && jd < p.End {
			return p, true
		}
	}
	return Period{}, false
}
