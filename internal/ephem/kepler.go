package ephem

import (
	"math"

	"github.com/gopanchang/jyotish/internal/astrotime"
	"github.com/gopanchang/jyotish/internal/zodiac"
)

// keplerTolerance is the convergence threshold for the anomaly solver,
// in radians.
const keplerTolerance = 1e-9

// maxKeplerIterations caps the Newton-Raphson loop. Planetary
// eccentricities (all below 0.21) converge in four or five steps; the cap
// exists so pathological input degrades to a flagged estimate instead of
// spinning.
const maxKeplerIterations = 10

// SolveKepler solves Kepler's equation M = E - e*sin(E) for the eccentric
// anomaly E, in radians, seeded with E=M. Returns the best estimate and
// whether the correction dropped below tolerance within the iteration cap.
func SolveKepler(meanAnomaly, eccentricity float64) (float64, bool) {
	e := meanAnomaly
	for i := 0; i < maxKeplerIterations; i++ {
		delta := (e - eccentricity*math.Sin(e) - meanAnomaly) /
			(1 - eccentricity*math.Cos(e))
		e -= delta
		if math.Abs(delta) < keplerTolerance {
			return e, true
		}
	}
	return e, false
}

// elements holds classical Keplerian elements at J2000.0 and their linear
// rates per Julian century (Standish's low-precision planetary tables).
// Angles in degrees, semi-major axis in AU.
type elements struct {
	a, aDot       float64 // semi-major axis
	e, eDot       float64 // eccentricity
	i, iDot       float64 // inclination
	l, lDot       float64 // mean longitude
	peri, periDot float64 // longitude of perihelion
	node, nodeDot float64 // longitude of ascending node
}

var planetElements = map[zodiac.Planet]elements{
	zodiac.Mercury: {
		a: 0.38709927, aDot: 0.00000037,
		e: 0.20563593, eDot: 0.00001906,
		i: 7.00497902, iDot: -0.00594749,
		l: 252.25032350, lDot: 149472.67411175,
		peri: 77.45779628, periDot: 0.16047689,
		node: 48.33076593, nodeDot: -0.12534081,
	},
	zodiac.Venus: {
		a: 0.72333566, aDot: 0.00000390,
		e: 0.00677672, eDot: -0.00004107,
		i: 3.39467605, iDot: -0.00078890,
		l: 181.97909950, lDot: 58517.81538729,
		peri: 131.60246718, periDot: 0.00268329,
		node: 76.67984255, nodeDot: -0.27769418,
	},
	zodiac.Mars: {
		a: 1.52371034, aDot: 0.00001847,
		e: 0.09339410, eDot: 0.00007882,
		i: 1.84969142, iDot: -0.00813131,
		l: -4.55343205, lDot: 19140.30268499,
		peri: -23.94362959, periDot: 0.44441088,
		node: 49.55953891, nodeDot: -0.29257343,
	},
	zodiac.Jupiter: {
		a: 5.20288700, aDot: -0.00011607,
		e: 0.04838624, eDot: -0.00013253,
		i: 1.30439695, iDot: -0.00183714,
		l: 34.39644051, lDot: 3034.74612775,
		peri: 14.72847983, periDot: 0.21252668,
		node: 100.47390909, nodeDot: 0.20469106,
	},
	zodiac.Saturn: {
		a: 9.53667594, aDot: -0.00125060,
		e: 0.05386179, eDot: -0.00050991,
		i: 2.48599187, iDot: 0.00193609,
		l: 49.95424423, lDot: 1222.49362201,
		peri: 92.59887831, periDot: -0.41897216,
		node: 113.66242448, nodeDot: -0.28867794,
	},
}

// earthElements is the Earth-Moon barycenter, needed to translate
// heliocentric positions to geocentric longitudes.
var earthElements = elements{
	a: 1.00000261, aDot: 0.00000562,
	e: 0.01671123, eDot: -0.00004392,
	i: -0.00001531, iDot: -0.01294668,
	l: 100.46457166, lDot: 35999.37244981,
	peri: 102.93768193, periDot: 0.32327364,
	node: 0, nodeDot: 0,
}

// heliocentric returns the ecliptic rectangular coordinates (AU) of a body
// described by el at Julian centuries t, plus the solver's convergence flag.
func heliocentric(el elements, t float64) (x, y, z float64, converged bool) {
	a := el.a + el.aDot*t
	ecc := el.e + el.eDot*t
	inc := (el.i + el.iDot*t) * deg2rad
	meanLong := el.l + el.lDot*t
	periLong := el.peri + el.periDot*t
	nodeLong := (el.node + el.nodeDot*t) * deg2rad

	meanAnom := astrotime.Normalize(meanLong-periLong) * deg2rad
	eccAnom, converged := SolveKepler(meanAnom, ecc)

	// Position in the orbital plane, perihelion along +x.
	xOrb := a * (math.Cos(eccAnom) - ecc)
	yOrb := a * math.Sqrt(1-ecc*ecc) * math.Sin(eccAnom)

	// Argument of perihelion: longitude of perihelion minus the node.
	argPeri := periLong*deg2rad - nodeLong

	cosW, sinW := math.Cos(argPeri), math.Sin(argPeri)
	cosO, sinO := math.Cos(nodeLong), math.Sin(nodeLong)
	cosI, sinI := math.Cos(inc), math.Sin(inc)

	x = (cosW*cosO-sinW*sinO*cosI)*xOrb + (-sinW*cosO-cosW*sinO*cosI)*yOrb
	y = (cosW*sinO+sinW*cosO*cosI)*xOrb + (-sinW*sinO+cosW*cosO*cosI)*yOrb
	z = (sinW*sinI)*xOrb + (cosW*sinI)*yOrb
	return x, y, z, converged
}

// planetLongitude returns the geocentric tropical longitude of one of the
// five classical planets by subtracting Earth's heliocentric vector.
func planetLongitude(p zodiac.Planet, jd float64) (float64, bool) {
	t := astrotime.JulianCenturies(jd)

	px, py, _, pOK := heliocentric(planetElements[p], t)
	ex, ey, _, eOK := heliocentric(earthElements, t)

	lon := math.Atan2(py-ey, px-ex) / deg2rad
	return astrotime.Normalize(lon), pOK && eOK
}
