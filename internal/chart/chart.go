package chart

import (
	"github.com/gopanchang/jyotish/internal/astrotime"
	"github.com/gopanchang/jyotish/internal/ephem"
	"github.com/gopanchang/jyotish/internal/zodiac"
)

// Input is a birth or query moment with its geographic place.
type Input struct {
	Moment    astrotime.Moment
	Latitude  float64 // degrees north
	Longitude float64 // degrees east
}

// Body is one graha's placement in a chart.
type Body struct {
	Planet   zodiac.Planet
	Tropical float64 // tropical longitude, degrees
	zodiac.Position
	House     int
	Converged bool
}

// Chart is a full sidereal birth chart.
type Chart struct {
	JulianDay float64
	Ascendant zodiac.Position
	Midheaven zodiac.Position
	Bodies    [9]Body
	// Cusps holds the 12 whole-sign house cusp longitudes (sidereal);
	// cusp 1 is the start of the Ascendant's sign.
	Cusps [12]float64
}

// New computes the full chart for an input moment and place.
func New(in Input, ayanamsa zodiac.AyanamsaModel) (*Chart, error) {
	if err := in.Moment.Validate(); err != nil {
		return nil, err
	}
	jd := in.Moment.JulianDay()

	c := &Chart{JulianDay: jd}
	c.Ascendant = zodiac.Decompose(ayanamsa.Sidereal(Ascendant(jd, in.Latitude, in.Longitude), jd))
	c.Midheaven = zodiac.Decompose(ayanamsa.Sidereal(Midheaven(jd, in.Longitude), jd))

	ascSign := c.Ascendant.Sign.Index
	for i := range c.Cusps {
		c.Cusps[i] = float64((ascSign+i)%12) * zodiac.SignSpan
	}

	for p := zodiac.Sun; p <= zodiac.Ketu; p++ {
		pos, err := ephem.Compute(p, jd)
		if err != nil {
			return nil, err
		}
		sid := zodiac.Decompose(ayanamsa.Sidereal(pos.Longitude, jd))
		c.Bodies[p] = Body{
			Planet:    p,
			Tropical:  pos.Longitude,
			Position:  sid,
			House:     House(sid.Sign.Index, ascSign),
			Converged: pos.Converged,
		}
	}
	return c, nil
}

// Body returns the placement of one graha.
func (c *Chart) Body(p zodiac.Planet) Body {
	return c.Bodies[p]
}

// MoonLongitude returns the sidereal longitude of the Moon, the anchor for
// the Vimshottari timeline.
func (c *Chart) MoonLongitude() float64 {
	return c.Bodies[zodiac.Moon].Position.Longitude
}
