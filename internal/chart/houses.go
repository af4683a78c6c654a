// Package chart computes the Ascendant, Midheaven and whole-sign houses
// for a moment and place, and assembles the full birth chart from the
// ephemeris.
package chart

import (
	"math"

	"github.com/gopanchang/jyotish/internal/astrotime"
	"github.com/gopanchang/jyotish/internal/zodiac"
)

const deg2rad = math.Pi / 180

// MeanObliquity returns the mean obliquity of the ecliptic in degrees at
// jd, as a second-order polynomial in Julian centuries.
func MeanObliquity(jd float64) float64 {
	t := astrotime.JulianCenturies(jd)
	return 23.4392911 - 0.0130042*t - 0.00000016*t*t
}

// Ascendant returns the tropical longitude of the rising ecliptic point
// for an observer at the given latitude and longitude (degrees, east and
// north positive).
func Ascendant(jd, latitude, longitude float64) float64 {
	lst := astrotime.LocalSiderealTime(jd, longitude) * deg2rad
	eps := MeanObliquity(jd) * deg2rad
	lat := latitude * deg2rad

	asc := math.Atan2(
		math.Cos(lst),
		-math.Sin(lst)*math.Cos(eps)-math.Tan(lat)*math.Sin(eps),
	)
	return astrotime.Normalize(asc / deg2rad)
}

// Midheaven returns the tropical longitude of the meridian's intersection
// with the ecliptic. The arctangent is corrected into the same semicircle
// as the local sidereal time.
func Midheaven(jd, longitude float64) float64 {
	lstDeg := astrotime.LocalSiderealTime(jd, longitude)
	lst := lstDeg * deg2rad
	eps := MeanObliquity(jd) * deg2rad

	mc := math.Atan(math.Tan(lst)/math.Cos(eps)) / deg2rad
	if lstDeg > 90 && lstDeg <= 270 {
		mc += 180
	}
	return astrotime.Normalize(mc)
}

// House returns the whole-sign house (1..12) of a planet whose sidereal
// sign index is planetSign, for an Ascendant in ascSign.
func House(planetSign, ascSign int) int {
	return (planetSign-ascSign+12)%12 + 1
}

// HouseLord returns the ruling planet of the sign occupying the given
// house (1..12) for an Ascendant in ascSign.
func HouseLord(house, ascSign int) zodiac.Planet {
	return zodiac.Signs[(ascSign+house-1)%12].Lord
}
