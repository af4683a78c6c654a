package muhurat

import (
	"github.com/gopanchang/jyotish/internal/panchang"
)

// Quality buckets a total score, thresholds per the classical grading.
type Quality int

const (
	Poor Quality = iota
	Average
	Good
	Excellent
)

var qualityNames = [...]string{"poor", "average", "good", "excellent"}

func (q Quality) String() string { return qualityNames[q] }

// QualityOf maps a total score to its tier.
func QualityOf(total float64) Quality {
	switch {
	case total >= 80:
		return Excellent
	case total >= 60:
		return Good
	case total >= 40:
		return Average
	default:
		return Poor
	}
}

// FactorScore is one factor's contribution to the total.
type FactorScore struct {
	Name   string
	Points float64
	Weight float64
}

// Score is the full evaluation of one instant against one rule.
type Score struct {
	Total   float64
	Quality Quality
	Factors [6]FactorScore

	// Warnings names every inauspicious window containing the instant,
	// whether or not the rule penalizes it.
	Warnings []string

	// InAbhijit reports whether the instant overlaps the Abhijit window.
	InAbhijit bool
}

// factorPoints awards the full weight for a favorable value, nothing for
// an unfavorable one, and half for neutral.
func factorPoints(value int, favorable, unfavorable []int, weight int) float64 {
	switch {
	case contains(favorable, value):
		return float64(weight)
	case contains(unfavorable, value):
		return 0
	default:
		return float64(weight) / 2
	}
}

// Evaluate scores a panchang snapshot at a local clock time against a
// rule. Construction keeps the total inside [0,100]: every contribution is
// bounded by its weight and the weights sum to 100.
func Evaluate(snap panchang.Snapshot, clock float64, periods DayPeriods, r Rule) Score {
	w := r.Weights
	s := Score{
		Warnings:  periods.Inauspicious(clock),
		InAbhijit: periods.Abhijit.Contains(clock),
	}

	s.Factors[0] = FactorScore{"tithi",
		factorPoints(int(snap.Tithi), r.FavorableTithis, r.UnfavorableTithis, w.Tithi),
		float64(w.Tithi)}
	s.Factors[1] = FactorScore{"nakshatra",
		factorPoints(snap.Nakshatra.Index, r.FavorableNakshatras, r.UnfavorableNakshatras, w.Nakshatra),
		float64(w.Nakshatra)}
	s.Factors[2] = FactorScore{"yoga",
		factorPoints(int(snap.Yoga), r.FavorableYogas, r.UnfavorableYogas, w.Yoga),
		float64(w.Yoga)}
	s.Factors[3] = FactorScore{"karana",
		factorPoints(int(snap.Karana), r.FavorableKaranas, r.UnfavorableKaranas, w.Karana),
		float64(w.Karana)}
	s.Factors[4] = FactorScore{"weekday",
		factorPoints(int(snap.Weekday), r.FavorableWeekdays, r.UnfavorableWeekdays, w.Weekday),
		float64(w.Weekday)}

	s.Factors[5] = FactorScore{"periods", periodPoints(clock, periods, r), float64(w.Periods)}

	for _, f := range s.Factors {
		s.Total += f.Points
	}
	s.Quality = QualityOf(s.Total)
	return s
}

// periodPoints awards the periods weight unless the instant sits inside a
// window the rule avoids. An Abhijit overlap forgives the penalty for
// rules that do not themselves avoid Raahu Kaal; a rule that requires
// Abhijit earns the weight only inside it.
func periodPoints(clock float64, periods DayPeriods, r Rule) float64 {
	inAbhijit := periods.Abhijit.Contains(clock)
	if r.RequiresAbhijit && !inAbhijit {
		return 0
	}

	penalized := (r.AvoidRaahuKaal && periods.RaahuKaal.Contains(clock)) ||
		(r.AvoidYamaganda && periods.Yamaganda.Contains(clock))
	if penalized && inAbhijit && !r.AvoidRaahuKaal {
		penalized = false
	}
	if penalized {
		return 0
	}
	return float64(r.Weights.Periods)
}
