package zodiac

import (
	"math"
	"testing"

	"github.com/gopanchang/jyotish/internal/astrotime"
)

func TestSignIndex(t *testing.T) {
	cases := []struct {
		longitude float64
		want      int
	}{
		{0, 0},       // Aries begins
		{29.999, 0},  // still Aries
		{30, 1},      // Taurus begins
		{45, 1},      // Taurus
		{180, 6},     // Libra
		{359.999, 11}, // Pisces
		{360, 0},     // wraps to Aries
		{405, 1},     // periodic with 360
		{-15, 11},    // negative wraps to Pisces
	}
	for _, tc := range cases {
		if got := SignIndex(tc.longitude); got != tc.want {
			t.Errorf("SignIndex(%v) = %d, want %d", tc.longitude, got, tc.want)
		}
	}
}

func TestSignIndex_Monotonic(t *testing.T) {
	prev := SignIndex(0)
	for deg := 0.5; deg < 360; deg += 0.5 {
		cur := SignIndex(deg)
		if cur < prev {
			t.Fatalf("SignIndex decreased at %v°: %d -> %d", deg, prev, cur)
		}
		prev = cur
	}
}

func TestNakshatraIndex_Boundaries(t *testing.T) {
	if got := NakshatraIndex(0); got != 0 {
		t.Errorf("NakshatraIndex(0) = %d, want 0", got)
	}
	if got := NakshatraIndex(359.999); got != 26 {
		t.Errorf("NakshatraIndex(359.999) = %d, want 26", got)
	}
	// Pushya starts at 93°20′.
	if got := NakshatraIndex(7 * NakshatraSpan); got != 7 {
		t.Errorf("NakshatraIndex(93.33°) = %d, want 7", got)
	}
}

func TestPada(t *testing.T) {
	cases := []struct {
		longitude float64
		want      int
	}{
		{0, 1},
		{NakshatraSpan / 4, 2},
		{NakshatraSpan / 2, 3},
		{3 * NakshatraSpan / 4, 4},
		{NakshatraSpan, 1}, // next nakshatra, first pada
		{7 * NakshatraSpan, 1},
	}
	for _, tc := range cases {
		if got := Pada(tc.longitude); got != tc.want {
			t.Errorf("Pada(%v) = %d, want %d", tc.longitude, got, tc.want)
		}
	}
}

func TestDecompose(t *testing.T) {
	p := Decompose(45)
	if p.Sign.Name != "Taurus" {
		t.Errorf("sign = %s, want Taurus", p.Sign.Name)
	}
	if !approx(p.Degree, 15, 1e-9) {
		t.Errorf("degree = %v, want 15", p.Degree)
	}
	if p.Nakshatra.Index != 3 { // 45° is inside Rohini (40°–53°20′)
		t.Errorf("nakshatra = %d, want 3 (Rohini)", p.Nakshatra.Index)
	}
}

func TestNakshatraLords_RepeatVimshottariOrder(t *testing.T) {
	order := []Planet{Ketu, Venus, Sun, Moon, Mars, Rahu, Jupiter, Saturn, Mercury}
	for i, n := range Nakshatras {
		if n.Lord != order[i%9] {
			t.Errorf("nakshatra %d (%s) lord = %s, want %s", i, n.Name, n.Lord, order[i%9])
		}
	}
}

func TestPlanetString(t *testing.T) {
	if Sun.String() != "Sun" || Ketu.String() != "Ketu" {
		t.Error("planet names wrong at range ends")
	}
	if Planet(99).String() != "Unknown" {
		t.Error("out-of-range planet should stringify as Unknown")
	}
	if Planet(99).Valid() {
		t.Error("Planet(99).Valid() = true, want false")
	}
}

func TestAyanamsa_Lahiri(t *testing.T) {
	m := Lahiri()
	if !approx(m.At(astrotime.J2000), 23.85675, 1e-9) {
		t.Errorf("ayanamsa at J2000 = %v, want 23.85675", m.At(astrotime.J2000))
	}
	// One century later the drift is rate*100.
	jd := astrotime.J2000 + 365.25*100
	if !approx(m.At(jd), 23.85675+1.3972, 1e-9) {
		t.Errorf("ayanamsa at J2100 = %v", m.At(jd))
	}
}

func TestAyanamsa_SiderealTropicalRoundTrip(t *testing.T) {
	m := Lahiri()
	jd := astrotime.JulianDay(1990, 5, 15, 12, 0, 0)
	for _, trop := range []float64{0, 10.5, 180, 359.9} {
		sid := m.Sidereal(trop, jd)
		back := m.Tropical(sid, jd)
		if !approx(back, trop, 1e-9) {
			t.Errorf("round trip %v -> %v -> %v", trop, sid, back)
		}
	}
}

func approx(a, b, tol float64) bool {
	return math.Abs(a-b) < tol
}
