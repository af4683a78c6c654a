package muhurat

import (
	"errors"
	"fmt"
	"os"
	"sort"

	toml "github.com/pelletier/go-toml/v2"
)

// ErrUnknownActivity is returned when no rule exists for an activity id.
var ErrUnknownActivity = errors.New("muhurat: unknown activity")

// ErrBadRule is returned when a rule table fails validation.
var ErrBadRule = errors.New("muhurat: invalid rule")

// Weights apportions the 100 score points across the six factors.
type Weights struct {
	Tithi     int `toml:"tithi"`
	Nakshatra int `toml:"nakshatra"`
	Yoga      int `toml:"yoga"`
	Karana    int `toml:"karana"`
	Weekday   int `toml:"weekday"`
	Periods   int `toml:"periods"`
}

// Sum returns the total weight, which a valid rule fixes at 100.
func (w Weights) Sum() int {
	return w.Tithi + w.Nakshatra + w.Yoga + w.Karana + w.Weekday + w.Periods
}

// Rule is the scoring table for one activity type. Favorable and
// unfavorable sets are indices into the fixed calendrical tables; anything
// in neither set is neutral.
type Rule struct {
	Activity string `toml:"activity"`

	FavorableTithis   []int `toml:"favorable_tithis"`
	UnfavorableTithis []int `toml:"unfavorable_tithis"`

	FavorableNakshatras   []int `toml:"favorable_nakshatras"`
	UnfavorableNakshatras []int `toml:"unfavorable_nakshatras"`

	FavorableYogas   []int `toml:"favorable_yogas"`
	UnfavorableYogas []int `toml:"unfavorable_yogas"`

	FavorableKaranas   []int `toml:"favorable_karanas"`
	UnfavorableKaranas []int `toml:"unfavorable_karanas"`

	FavorableWeekdays   []int `toml:"favorable_weekdays"`
	UnfavorableWeekdays []int `toml:"unfavorable_weekdays"`

	RequiresAbhijit bool `toml:"requires_abhijit"`
	AvoidRaahuKaal  bool `toml:"avoid_raahu_kaal"`
	AvoidYamaganda  bool `toml:"avoid_yamaganda"`
	PreferMorning   bool `toml:"prefer_morning"`
	PreferAfternoon bool `toml:"prefer_afternoon"`

	Weights Weights `toml:"weights"`
}

// Validate checks the structural invariants: weights sum to 100 and no
// index appears in both the favorable and unfavorable set of a factor.
func (r Rule) Validate() error {
	if r.Activity == "" {
		return fmt.Errorf("%w: empty activity id", ErrBadRule)
	}
	if s := r.Weights.Sum(); s != 100 {
		return fmt.Errorf("%w: %s weights sum to %d, want 100", ErrBadRule, r.Activity, s)
	}
	factors := []struct {
		name       string
		fav, unfav []int
	}{
		{"tithi", r.FavorableTithis, r.UnfavorableTithis},
		{"nakshatra", r.FavorableNakshatras, r.UnfavorableNakshatras},
		{"yoga", r.FavorableYogas, r.UnfavorableYogas},
		{"karana", r.FavorableKaranas, r.UnfavorableKaranas},
		{"weekday", r.FavorableWeekdays, r.UnfavorableWeekdays},
	}
	for _, f := range factors {
		for _, v := range f.fav {
			if contains(f.unfav, v) {
				return fmt.Errorf("%w: %s lists %s %d as both favorable and unfavorable",
					ErrBadRule, r.Activity, f.name, v)
			}
		}
	}
	return nil
}

func contains(set []int, v int) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

// builtinRules is the compiled-in rule table, keyed by activity id.
var builtinRules = map[string]Rule{
	"marriage": {
		Activity:              "marriage",
		FavorableTithis:       []int{1, 2, 4, 6, 9, 10, 12},
		UnfavorableTithis:     []int{3, 7, 13, 14, 28, 29},
		FavorableNakshatras:   []int{3, 12, 13, 16, 20, 21, 25, 26},
		UnfavorableNakshatras: []int{1, 8, 9, 17, 18},
		FavorableYogas:        []int{3, 7, 11, 15, 20, 22},
		UnfavorableYogas:      []int{5, 8, 9, 12, 16, 26},
		FavorableKaranas:      []int{0, 1, 2, 3},
		UnfavorableKaranas:    []int{6},
		FavorableWeekdays:     []int{1, 3, 4, 5},
		UnfavorableWeekdays:   []int{2, 6},
		AvoidRaahuKaal:        true,
		AvoidYamaganda:        true,
		Weights:               Weights{Tithi: 20, Nakshatra: 25, Yoga: 15, Karana: 10, Weekday: 15, Periods: 15},
	},
	"travel": {
		Activity:              "travel",
		FavorableTithis:       []int{1, 2, 4, 6, 10, 11},
		UnfavorableTithis:     []int{7, 8, 29},
		FavorableNakshatras:   []int{0, 7, 12, 14, 21, 23},
		UnfavorableNakshatras: []int{1, 5, 9, 18},
		FavorableYogas:        []int{1, 6, 10, 15, 20},
		UnfavorableYogas:      []int{16, 26},
		FavorableKaranas:      []int{0, 1, 4},
		UnfavorableKaranas:    []int{6},
		FavorableWeekdays:     []int{1, 3, 4, 5},
		UnfavorableWeekdays:   []int{2},
		AvoidRaahuKaal:        true,
		PreferMorning:         true,
		Weights:               Weights{Tithi: 15, Nakshatra: 20, Yoga: 15, Karana: 10, Weekday: 20, Periods: 20},
	},
	"business": {
		Activity:              "business",
		FavorableTithis:       []int{0, 1, 4, 6, 9, 10, 14},
		UnfavorableTithis:     []int{3, 8, 13, 29},
		FavorableNakshatras:   []int{2, 7, 11, 12, 15, 20, 22},
		UnfavorableNakshatras: []int{5, 8, 18},
		FavorableYogas:        []int{2, 6, 15, 20, 21, 24},
		UnfavorableYogas:      []int{9, 16, 26},
		FavorableKaranas:      []int{0, 2, 4},
		UnfavorableKaranas:    []int{6},
		FavorableWeekdays:     []int{3, 4, 5},
		UnfavorableWeekdays:   []int{6},
		AvoidRaahuKaal:        true,
		AvoidYamaganda:        true,
		RequiresAbhijit:       false,
		Weights:               Weights{Tithi: 20, Nakshatra: 20, Yoga: 15, Karana: 10, Weekday: 15, Periods: 20},
	},
	"education": {
		Activity:              "education",
		FavorableTithis:       []int{1, 2, 4, 5, 9, 10, 11},
		UnfavorableTithis:     []int{7, 14, 29},
		FavorableNakshatras:   []int{6, 8, 12, 14, 16, 21, 26},
		UnfavorableNakshatras: []int{1, 9, 18},
		FavorableYogas:        []int{2, 15, 20, 21, 24, 25},
		UnfavorableYogas:      []int{16, 26},
		FavorableKaranas:      []int{0, 1, 2},
		UnfavorableKaranas:    []int{6},
		FavorableWeekdays:     []int{1, 3, 4},
		UnfavorableWeekdays:   []int{6},
		PreferMorning:         true,
		Weights:               Weights{Tithi: 15, Nakshatra: 25, Yoga: 15, Karana: 10, Weekday: 20, Periods: 15},
	},
	"housewarming": {
		Activity:              "housewarming",
		FavorableTithis:       []int{1, 2, 4, 6, 9, 10, 12},
		UnfavorableTithis:     []int{3, 7, 13, 14, 29},
		FavorableNakshatras:   []int{3, 7, 12, 16, 20, 21, 25},
		UnfavorableNakshatras: []int{1, 8, 17, 18},
		FavorableYogas:        []int{3, 11, 15, 20, 22},
		UnfavorableYogas:      []int{5, 9, 16, 26},
		FavorableKaranas:      []int{0, 1, 3},
		UnfavorableKaranas:    []int{6},
		FavorableWeekdays:     []int{1, 3, 4, 5},
		UnfavorableWeekdays:   []int{2, 6},
		RequiresAbhijit:       true,
		AvoidRaahuKaal:        true,
		AvoidYamaganda:        true,
		Weights:               Weights{Tithi: 20, Nakshatra: 20, Yoga: 15, Karana: 10, Weekday: 15, Periods: 20},
	},
}

// Lookup returns the rule for an activity id from the given table, falling
// back to the built-in table when rules is nil.
func Lookup(rules map[string]Rule, activity string) (Rule, error) {
	if rules == nil {
		rules = builtinRules
	}
	r, ok := rules[activity]
	if !ok {
		return Rule{}, fmt.Errorf("%w: %q", ErrUnknownActivity, activity)
	}
	return r, nil
}

// Activities lists the known activity ids in sorted order.
func Activities(rules map[string]Rule) []string {
	if rules == nil {
		rules = builtinRules
	}
	out := make([]string, 0, len(rules))
	for k := range rules {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// rulesFile is the TOML document shape for an external rule table.
type rulesFile struct {
	Rules []Rule `toml:"rule"`
}

// LoadRules reads and validates a TOML rule table. Every rule in the file
// must pass Validate; the file replaces the built-in table wholesale.
func LoadRules(path string) (map[string]Rule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("muhurat: read rules: %w", err)
	}
	var f rulesFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("muhurat: parse rules %s: %w", path, err)
	}
	if len(f.Rules) == 0 {
		return nil, fmt.Errorf("%w: %s defines no rules", ErrBadRule, path)
	}

	out := make(map[string]Rule, len(f.Rules))
	for _, r := range f.Rules {
		if err := r.Validate(); err != nil {
			return nil, err
		}
		if _, dup := out[r.Activity]; dup {
			return nil, fmt.Errorf("%w: duplicate activity %q", ErrBadRule, r.Activity)
		}
		out[r.Activity] = r
	}
	return out, nil
}
