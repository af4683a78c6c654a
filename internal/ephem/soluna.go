package ephem

import (
	"math"

	"github.com/gopanchang/jyotish/internal/astrotime"
)

const deg2rad = math.Pi / 180

// SunLongitude returns the Sun's geocentric tropical longitude in degrees:
// mean longitude plus the equation of center, no nutation or aberration.
func SunLongitude(jd float64) float64 {
	t := astrotime.JulianCenturies(jd)

	meanLong := 280.46646 + 36000.76983*t + 0.0003032*t*t
	meanAnom := (357.52911 + 35999.05029*t - 0.0001537*t*t) * deg2rad

	center := (1.914602-0.004817*t-0.000014*t*t)*math.Sin(meanAnom) +
		(0.019993-0.000101*t)*math.Sin(2*meanAnom) +
		0.000289*math.Sin(3*meanAnom)

	return astrotime.Normalize(meanLong + center)
}

// MoonLongitude returns the Moon's geocentric tropical longitude in
// degrees from the mean longitude plus the ten largest periodic terms
// (evection, variation, annual equation and friends). Worst-case error is
// a few arc-minutes, which cannot move a tithi boundary by more than about
// ten minutes of clock time.
func MoonLongitude(jd float64) float64 {
	t := astrotime.JulianCenturies(jd)

	meanLong := 218.3164477 + 481267.88123421*t - 0.0015786*t*t
	elong := (297.8501921 + 445267.1114034*t - 0.0018819*t*t) * deg2rad    // mean elongation D
	sunAnom := (357.5291092 + 35999.0502909*t - 0.0001536*t*t) * deg2rad   // Sun mean anomaly M
	moonAnom := (134.9633964 + 477198.8675055*t + 0.0087414*t*t) * deg2rad // Moon mean anomaly M'
	lat := (93.2720950 + 483202.0175233*t - 0.0036539*t*t) * deg2rad       // argument of latitude F

	correction := 6.288774*math.Sin(moonAnom) +
		1.274027*math.Sin(2*elong-moonAnom) +
		0.658314*math.Sin(2*elong) +
		0.213618*math.Sin(2*moonAnom) -
		0.185116*math.Sin(sunAnom) -
		0.114332*math.Sin(2*lat) +
		0.058793*math.Sin(2*elong-2*moonAnom) +
		0.057066*math.Sin(2*elong-sunAnom-moonAnom) +
		0.053322*math.Sin(2*elong+moonAnom) +
		0.045758*math.Sin(2*elong-sunAnom)

	return astrotime.Normalize(meanLong + correction)
}

// NodeLongitude returns the mean longitude of the Moon's ascending node
// (Rahu). The node regresses through the zodiac in about 18.6 years.
func NodeLongitude(jd float64) float64 {
	t := astrotime.JulianCenturies(jd)
	node := 125.04452 - 1934.136261*t + 0.0020708*t*t + t*t*t/450000
	return astrotime.Normalize(node)
}
