package chart

import (
	"errors"
	"math"
	"testing"

	"github.com/gopanchang/jyotish/internal/astrotime"
	"github.com/gopanchang/jyotish/internal/zodiac"
)

func TestMeanObliquity_J2000(t *testing.T) {
	got := MeanObliquity(astrotime.J2000)
	if math.Abs(got-23.4392911) > 1e-9 {
		t.Errorf("obliquity at J2000 = %v, want 23.4392911", got)
	}
}

func TestAscendant_EquatorAtZeroSiderealTime(t *testing.T) {
	// With LST = 0 at the equator the rising point is exactly 90°:
	// atan2(cos 0, -sin 0 · cos ε) = atan2(1, 0).
	jd := astrotime.JulianDay(2005, 8, 17, 3, 0, 0)
	lon := -astrotime.GreenwichSiderealTime(jd)
	got := Ascendant(jd, 0, lon)
	if math.Abs(got-90) > 1e-6 {
		t.Errorf("ascendant = %v, want 90", got)
	}
}

func TestAscendant_AdvancesWithTime(t *testing.T) {
	jd := astrotime.JulianDay(1990, 5, 15, 6, 0, 0)
	a1 := Ascendant(jd, 13.0, 77.6)
	a2 := Ascendant(jd+2.0/24, 13.0, 77.6)
	advance := astrotime.Normalize(a2 - a1)
	// Roughly 15°/sidereal hour near the equator, uneven across signs.
	if advance < 15 || advance > 50 {
		t.Errorf("ascendant advanced %v° in 2h, want something near 30°", advance)
	}
}

func TestMidheaven_QuadrantFollowsSiderealTime(t *testing.T) {
	// The MC stays in the same semicircle as the LST.
	for h := 0; h < 24; h += 2 {
		jd := astrotime.JulianDay(2000, 6, 1, h, 0, 0)
		lst := astrotime.LocalSiderealTime(jd, 0)
		mc := Midheaven(jd, 0)
		d := math.Abs(astrotime.Normalize(mc - lst))
		if d > 180 {
			d = 360 - d
		}
		// Obliquity distorts the mapping by a few degrees at most.
		if d > 30 {
			t.Errorf("at %02dh UT: LST=%v MC=%v, separation %v", h, lst, mc, d)
		}
	}
}

func TestHouse_WholeSign(t *testing.T) {
	cases := []struct {
		planetSign, ascSign, want int
	}{
		{0, 0, 1},
		{1, 0, 2},
		{11, 0, 12},
		{0, 11, 2},
		{5, 7, 11},
		{7, 7, 1},
	}
	for _, tc := range cases {
		if got := House(tc.planetSign, tc.ascSign); got != tc.want {
			t.Errorf("House(%d, %d) = %d, want %d", tc.planetSign, tc.ascSign, got, tc.want)
		}
	}
}

func TestHouseLord(t *testing.T) {
	// Aries rising: house 1 is ruled by Mars, house 2 (Taurus) by Venus.
	if got := HouseLord(1, 0); got != zodiac.Mars {
		t.Errorf("lord of house 1 for Aries asc = %s, want Mars", got)
	}
	if got := HouseLord(2, 0); got != zodiac.Venus {
		t.Errorf("lord of house 2 for Aries asc = %s, want Venus", got)
	}
	// Cancer rising: house 7 is Capricorn, ruled by Saturn.
	if got := HouseLord(7, 3); got != zodiac.Saturn {
		t.Errorf("lord of house 7 for Cancer asc = %s, want Saturn", got)
	}
}

func testInput() Input {
	return Input{
		Moment:    astrotime.Moment{Year: 1990, Month: 5, Day: 15, Hour: 6, Minute: 30, UTCOffset: 5.5},
		Latitude:  12.97,
		Longitude: 77.59,
	}
}

func TestNew_FullChart(t *testing.T) {
	c, err := New(testInput(), zodiac.Lahiri())
	if err != nil {
		t.Fatal(err)
	}

	ascSign := c.Ascendant.Sign.Index
	if c.Cusps[0] != float64(ascSign)*30 {
		t.Errorf("cusp 1 = %v, want start of ascendant sign %v", c.Cusps[0], float64(ascSign)*30)
	}
	for i, cusp := range c.Cusps {
		if math.Mod(cusp, 30) != 0 {
			t.Errorf("cusp %d = %v, want a sign boundary", i+1, cusp)
		}
	}

	for _, b := range c.Bodies {
		if b.House < 1 || b.House > 12 {
			t.Errorf("%s house = %d, outside 1..12", b.Planet, b.House)
		}
		if got := House(b.Sign.Index, ascSign); got != b.House {
			t.Errorf("%s house = %d, want whole-sign %d", b.Planet, b.House, got)
		}
		if b.Pada < 1 || b.Pada > 4 {
			t.Errorf("%s pada = %d", b.Planet, b.Pada)
		}
		if !b.Converged {
			t.Errorf("%s flagged non-converged", b.Planet)
		}
	}

	// Rahu and Ketu sit in opposite houses.
	rahu, ketu := c.Body(zodiac.Rahu), c.Body(zodiac.Ketu)
	if (rahu.House+6-1)%12+1 != ketu.House {
		t.Errorf("rahu house %d, ketu house %d, want opposition", rahu.House, ketu.House)
	}
}

func TestNew_RejectsInvalidMoment(t *testing.T) {
	in := testInput()
	in.Moment.Month = 13
	if _, err := New(in, zodiac.Lahiri()); !errors.Is(err, astrotime.ErrInvalidDate) {
		t.Errorf("err = %v, want ErrInvalidDate", err)
	}
}

func TestNew_Deterministic(t *testing.T) {
	a, err := New(testInput(), zodiac.Lahiri())
	if err != nil {
		t.Fatal(err)
	}
	b, err := New(testInput(), zodiac.Lahiri())
	if err != nil {
		t.Fatal(err)
	}
	if *a != *b {
		t.Error("identical inputs produced different charts")
	}
}
