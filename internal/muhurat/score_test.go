package muhurat

import (
	"testing"

	"github.com/gopanchang/jyotish/internal/panchang"
	"github.com/gopanchang/jyotish/internal/zodiac"
)

// snapshotWith builds a synthetic snapshot without touching the ephemeris.
func snapshotWith(tithi, nakshatra, yoga, karana, weekday int) panchang.Snapshot {
	return panchang.Snapshot{
		Tithi:     panchang.Tithi(tithi),
		Nakshatra: zodiac.Nakshatras[nakshatra],
		Yoga:      panchang.Yoga(yoga),
		Karana:    panchang.Karana(karana),
		Weekday:   panchang.Weekday(weekday),
		Pada:      1,
	}
}

func scoringRule() Rule {
	return Rule{
		Activity:              "t",
		FavorableTithis:       []int{2},
		UnfavorableTithis:     []int{29},
		FavorableNakshatras:   []int{3},
		UnfavorableNakshatras: []int{18},
		FavorableYogas:        []int{4},
		UnfavorableYogas:      []int{16},
		FavorableKaranas:      []int{0},
		UnfavorableKaranas:    []int{6},
		FavorableWeekdays:     []int{4},
		UnfavorableWeekdays:   []int{6},
		AvoidRaahuKaal:        true,
		AvoidYamaganda:        true,
		Weights:               Weights{Tithi: 20, Nakshatra: 20, Yoga: 15, Karana: 10, Weekday: 15, Periods: 20},
	}
}

func TestEvaluate_AllFavorable(t *testing.T) {
	p := Periods(sixToSix(), 4) // Thursday
	snap := snapshotWith(2, 3, 4, 0, 4)
	// 10:00 Thursday is clear of Raahu Kaal (13:30) and Yamaganda (06:00).
	// It sits inside Gulika, which the rule does not penalize.
	s := Evaluate(snap, 10, p, scoringRule())
	if s.Total != 100 {
		t.Errorf("total = %v, want 100", s.Total)
	}
	if s.Quality != Excellent {
		t.Errorf("quality = %s, want excellent", s.Quality)
	}
}

func TestEvaluate_AllUnfavorableInsideAvoidedWindow(t *testing.T) {
	p := Periods(sixToSix(), 6) // Saturday: Raahu Kaal 09:00-10:30
	snap := snapshotWith(29, 18, 16, 6, 6)
	s := Evaluate(snap, 9.5, p, scoringRule())
	if s.Total != 0 {
		t.Errorf("total = %v, want 0", s.Total)
	}
	if s.Quality != Poor {
		t.Errorf("quality = %s, want poor", s.Quality)
	}
	if len(s.Warnings) == 0 {
		t.Error("no warnings inside Raahu Kaal")
	}
}

func TestEvaluate_NeutralGetsHalfWeight(t *testing.T) {
	p := Periods(sixToSix(), 4)
	// Values in neither set everywhere.
	snap := snapshotWith(5, 10, 8, 2, 1)
	s := Evaluate(snap, 10, p, scoringRule())
	// Five half-weights plus the full periods weight.
	want := 10.0 + 10 + 7.5 + 5 + 7.5 + 20
	if s.Total != want {
		t.Errorf("total = %v, want %v", s.Total, want)
	}
}

func TestEvaluate_BoundedByConstruction(t *testing.T) {
	p := Periods(sixToSix(), 2)
	rule := scoringRule()
	for tithi := 0; tithi < 30; tithi += 3 {
		for clock := 6.0; clock < 18; clock += 1.7 {
			s := Evaluate(snapshotWith(tithi, tithi%27, tithi%27, tithi%11, tithi%7), clock, p, rule)
			if s.Total < 0 || s.Total > 100 {
				t.Fatalf("score %v outside [0,100] for tithi %d clock %v", s.Total, tithi, clock)
			}
		}
	}
}

func TestPeriodPoints_AbhijitForgivesYamaganda(t *testing.T) {
	// Build a day where Yamaganda overlaps Abhijit: Sunday's yamaganda
	// eighth is the 5th (12:00-13:30 on a 6-18 day), and Abhijit spans
	// 11:36-12:24.
	p := Periods(sixToSix(), 0)
	if !p.Yamaganda.Contains(12.2) || !p.Abhijit.Contains(12.2) {
		t.Fatal("fixture windows do not overlap as expected")
	}

	rule := scoringRule()
	rule.AvoidRaahuKaal = false // forgiveness applies only then
	if got := periodPoints(12.2, p, rule); got != 20 {
		t.Errorf("points = %v, want forgiven 20", got)
	}

	rule.AvoidRaahuKaal = true
	if got := periodPoints(12.2, p, rule); got != 0 {
		t.Errorf("points = %v, want 0 when rule avoids Raahu Kaal", got)
	}
}

func TestPeriodPoints_RequiresAbhijit(t *testing.T) {
	p := Periods(sixToSix(), 4)
	rule := scoringRule()
	rule.RequiresAbhijit = true

	if got := periodPoints(12, p, rule); got != 20 {
		t.Errorf("inside abhijit: points = %v, want 20", got)
	}
	if got := periodPoints(9, p, rule); got != 0 {
		t.Errorf("outside abhijit: points = %v, want 0", got)
	}
}

func TestQualityOf(t *testing.T) {
	cases := []struct {
		total float64
		want  Quality
	}{
		{100, Excellent},
		{80, Excellent},
		{79.99, Good},
		{60, Good},
		{59.99, Average},
		{40, Average},
		{39.99, Poor},
		{0, Poor},
	}
	for _, tc := range cases {
		if got := QualityOf(tc.total); got != tc.want {
			t.Errorf("QualityOf(%v) = %s, want %s", tc.total, got, tc.want)
		}
	}
}
