// Package zodiac holds the fixed sidereal reference tables (signs,
// nakshatras, planetary rulerships) and the ayanamsa correction that maps
// tropical longitudes onto them.
package zodiac

import (
	"errors"
	"math"
)

// Planet identifies one of the nine grahas.
type Planet int

const (
	Sun Planet = iota
	Moon
	Mars
	Mercury
	Jupiter
	Venus
	Saturn
	Rahu
	Ketu
)

// ErrUnknownPlanet is returned when a planet identifier is outside the
// nine grahas. It is a configuration error, not a computational one.
var ErrUnknownPlanet = errors.New("zodiac: unknown planet")

var planetNames = [...]string{"Sun", "Moon", "Mars", "Mercury", "Jupiter", "Venus", "Saturn", "Rahu", "Ketu"}

func (p Planet) String() string {
	if p < Sun || p > Ketu {
		return "Unknown"
	}
	return planetNames[p]
}

// Valid reports whether p is one of the nine grahas.
func (p Planet) Valid() bool {
	return p >= Sun && p <= Ketu
}

// Element is a classical sign element.
type Element int

const (
	Fire Element = iota
	Earth
	Air
	Water
)

var elementNames = [...]string{"Fire", "Earth", "Air", "Water"}

func (e Element) String() string { return elementNames[e] }

// Sign is one of the 12 zodiac signs. Index runs 0 (Aries) to 11 (Pisces).
type Sign struct {
	Index   int
	Name    string
	Element Element
	Lord    Planet
}

// SignSpan is the width of one zodiac sign in degrees.
const SignSpan = 30.0

// Signs is the fixed table of the 12 signs. Element cycles
// Fire/Earth/Air/Water; lords follow the classical rulership scheme.
var Signs = [12]Sign{
	{0, "Aries", Fire, Mars},
	{1, "Taurus", Earth, Venus},
	{2, "Gemini", Air, Mercury},
	{3, "Cancer", Water, Moon},
	{4, "Leo", Fire, Sun},
	{5, "Virgo", Earth, Mercury},
	{6, "Libra", Air, Venus},
	{7, "Scorpio", Water, Mars},
	{8, "Sagittarius", Fire, Jupiter},
	{9, "Capricorn", Earth, Saturn},
	{10, "Aquarius", Air, Saturn},
	{11, "Pisces", Water, Jupiter},
}

// SignIndex returns the 0-based sign index for a longitude in degrees.
func SignIndex(longitude float64) int {
	return int(math.Floor(norm(longitude)/SignSpan)) % 12
}

// SignAt returns the sign containing the given longitude.
func SignAt(longitude float64) Sign {
	return Signs[SignIndex(longitude)]
}

// Nakshatra is one of the 27 lunar mansions, each spanning 13°20′.
type Nakshatra struct {
	Index int
	Name  string
	Lord  Planet
}

// NakshatraSpan is the width of one nakshatra in degrees (13°20′).
const NakshatraSpan = 360.0 / 27

// Nakshatras is the fixed table of the 27 lunar mansions. The lord column
// repeats the 9-planet Vimshottari sequence three times.
var Nakshatras = [27]Nakshatra{
	{0, "Ashwini", Ketu},
	{1, "Bharani", Venus},
	{2, "Krittika", Sun},
	{3, "Rohini", Moon},
	{4, "Mrigashira", Mars},
	{5, "Ardra", Rahu},
	{6, "Punarvasu", Jupiter},
	{7, "Pushya", Saturn},
	{8, "Ashlesha", Mercury},
	{9, "Magha", Ketu},
	{10, "Purva Phalguni", Venus},
	{11, "Uttara Phalguni", Sun},
	{12, "Hasta", Moon},
	{13, "Chitra", Mars},
	{14, "Swati", Rahu},
	{15, "Vishakha", Jupiter},
	{16, "Anuradha", Saturn},
	{17, "Jyeshtha", Mercury},
	{18, "Mula", Ketu},
	{19, "Purva Ashadha", Venus},
	{20, "Uttara Ashadha", Sun},
	{21, "Shravana", Moon},
	{22, "Dhanishta", Mars},
	{23, "Shatabhisha", Rahu},
	{24, "Purva Bhadrapada", Jupiter},
	{25, "Uttara Bhadrapada", Saturn},
	{26, "Revati", Mercury},
}

// NakshatraIndex returns the 0-based nakshatra index for a longitude.
func NakshatraIndex(longitude float64) int {
	return int(math.Floor(norm(longitude)/NakshatraSpan)) % 27
}

// Pada returns the quarter (1..4) of the nakshatra the longitude falls in.
func Pada(longitude float64) int {
	within := math.Mod(norm(longitude), NakshatraSpan)
	return int(math.Floor(within/(NakshatraSpan/4))) + 1
}

// Position is the full sidereal decomposition of one longitude.
type Position struct {
	Longitude float64 // sidereal degrees, [0,360)
	Sign      Sign
	Degree    float64 // degrees into the sign, [0,30)
	Nakshatra Nakshatra
	Pada      int
}

// Decompose splits a sidereal longitude into its sign, degree-in-sign,
// nakshatra and pada.
func Decompose(sidereal float64) Position {
	l := norm(sidereal)
	return Position{
		Longitude: l,
		Sign:      SignAt(l),
		Degree:    math.Mod(l, SignSpan),
		Nakshatra: Nakshatras[NakshatraIndex(l)],
		Pada:      Pada(l),
	}
}

func norm(deg float64) float64 {
	return math.Mod(math.Mod(deg, 360)+360, 360)
}
