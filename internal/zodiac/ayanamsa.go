package zodiac

import "github.com/gopanchang/jyotish/internal/astrotime"

// AyanamsaModel is a linear precession model: a fixed value at J2000.0
// plus an annual drift. The Lahiri model is canonical throughout this
// module; a nutation-based variant exists in the literature but is not
// numerically compatible, so exactly one formula is applied everywhere
// sidereal longitudes are produced.
type AyanamsaModel struct {
	// J2000 is the ayanamsa in degrees at the J2000.0 epoch.
	J2000 float64
	// AnnualRate is the drift in degrees per Julian year.
	AnnualRate float64
}

// Lahiri returns the default linear Lahiri model (23°51′24.3″ at J2000,
// 50.29″/yr).
func Lahiri() AyanamsaModel {
	return AyanamsaModel{J2000: 23.85675, AnnualRate: 0.013972}
}

// At returns the ayanamsa in degrees at the given Julian Day.
func (a AyanamsaModel) At(jd float64) float64 {
	years := (jd - astrotime.J2000) / 365.25
	return a.J2000 + a.AnnualRate*years
}

// Sidereal converts a tropical longitude to sidereal at jd.
func (a AyanamsaModel) Sidereal(tropical, jd float64) float64 {
	return astrotime.Normalize(tropical - a.At(jd))
}

// Tropical converts a sidereal longitude back to tropical at jd.
func (a AyanamsaModel) Tropical(sidereal, jd float64) float64 {
	return astrotime.Normalize(sidereal + a.At(jd))
}
