// Package ephem computes geocentric tropical longitudes for the nine
// grahas. Sun and Moon use truncated trigonometric series; Mercury through
// Saturn use classical Keplerian elements with a Newton-Raphson anomaly
// solver; Rahu and Ketu are the mean lunar nodes.
//
// Accuracy is on the order of one arc-minute over 1900-2100, which is what
// sign, nakshatra and house placement require. This is deliberately not an
// ephemeris-grade integration.
package ephem

import (
	"fmt"

	"github.com/gopanchang/jyotish/internal/astrotime"
	"github.com/gopanchang/jyotish/internal/zodiac"
)

// Position is a computed geocentric tropical longitude for one graha.
type Position struct {
	Planet    zodiac.Planet
	Longitude float64 // tropical degrees, [0,360)

	// Converged is false when the Kepler solver hit its iteration cap
	// and the longitude is a best-effort estimate. Diagnostic only;
	// with real orbital eccentricities the solver always converges.
	Converged bool
}

// Compute returns the geocentric tropical longitude of one graha at jd.
// The only possible error is an unknown planet identifier.
func Compute(p zodiac.Planet, jd float64) (Position, error) {
	switch p {
	case zodiac.Sun:
		return Position{Planet: p, Longitude: SunLongitude(jd), Converged: true}, nil
	case zodiac.Moon:
		return Position{Planet: p, Longitude: MoonLongitude(jd), Converged: true}, nil
	case zodiac.Rahu:
		return Position{Planet: p, Longitude: NodeLongitude(jd), Converged: true}, nil
	case zodiac.Ketu:
		return Position{Planet: p, Longitude: astrotime.Normalize(NodeLongitude(jd) + 180), Converged: true}, nil
	case zodiac.Mars, zodiac.Mercury, zodiac.Jupiter, zodiac.Venus, zodiac.Saturn:
		lon, ok := planetLongitude(p, jd)
		return Position{Planet: p, Longitude: lon, Converged: ok}, nil
	default:
		return Position{}, fmt.Errorf("%w: %d", zodiac.ErrUnknownPlanet, int(p))
	}
}

// All returns positions for all nine grahas in enum order.
func All(jd float64) []Position {
	out := make([]Position, 0, 9)
	for p := zodiac.Sun; p <= zodiac.Ketu; p++ {
		pos, _ := Compute(p, jd)
		out = append(out, pos)
	}
	return out
}
