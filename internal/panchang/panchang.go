// Package panchang decomposes an instant into the five limbs of the lunar
// calendar (tithi, nakshatra, yoga, karana, weekday) and solves the day's
// sunrise and sunset.
package panchang

import (
	"math"

	"github.com/gopanchang/jyotish/internal/astrotime"
	"github.com/gopanchang/jyotish/internal/ephem"
	"github.com/gopanchang/jyotish/internal/zodiac"
)

// TithiSpan is the Moon-Sun elongation covered by one tithi.
const TithiSpan = 12.0

// YogaSpan is the arc of combined Sun+Moon longitude per yoga.
const YogaSpan = 360.0 / 27

var tithiNames = [15]string{
	"Pratipada", "Dwitiya", "Tritiya", "Chaturthi", "Panchami",
	"Shashthi", "Saptami", "Ashtami", "Navami", "Dashami",
	"Ekadashi", "Dwadashi", "Trayodashi", "Chaturdashi", "Purnima",
}

// movable karanas cycle through slots 1..56; the four fixed ones pin the
// ends of the month.
var karanaNames = [11]string{
	"Bava", "Balava", "Kaulava", "Taitila", "Gara", "Vanija", "Vishti",
	"Shakuni", "Chatushpada", "Naga", "Kimstughna",
}

var yogaNames = [27]string{
	"Vishkambha", "Priti", "Ayushman", "Saubhagya", "Shobhana",
	"Atiganda", "Sukarma", "Dhriti", "Shula", "Ganda",
	"Vriddhi", "Dhruva", "Vyaghata", "Harshana", "Vajra",
	"Siddhi", "Vyatipata", "Variyana", "Parigha", "Shiva",
	"Siddha", "Sadhya", "Shubha", "Shukla", "Brahma",
	"Indra", "Vaidhriti",
}

var weekdayNames = [7]string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}

// Tithi is a lunar day, indexed 0..29 across the synodic month.
type Tithi int

// Shukla reports whether the tithi belongs to the waxing fortnight.
func (t Tithi) Shukla() bool { return t < 15 }

func (t Tithi) String() string {
	if t == 29 {
		return "Amavasya"
	}
	name := tithiNames[int(t)%15]
	if t.Shukla() {
		return "Shukla " + name
	}
	return "Krishna " + name
}

// Karana is a half-tithi, indexed 0..10 over the eleven named karanas.
type Karana int

func (k Karana) String() string { return karanaNames[k] }

// Yoga indexes the 27 divisions of combined solar and lunar longitude.
type Yoga int

func (y Yoga) String() string { return yogaNames[y] }

// Weekday indexes days 0 (Sunday) through 6 (Saturday).
type Weekday int

func (w Weekday) String() string { return weekdayNames[w] }

// Snapshot is the five-limb decomposition of one instant at one place.
type Snapshot struct {
	JulianDay float64

	Tithi     Tithi
	Karana    Karana
	Yoga      Yoga
	Nakshatra zodiac.Nakshatra
	Pada      int
	Weekday   Weekday

	// Longitudes backing the decomposition, for downstream consumers.
	SunTropical  float64
	MoonTropical float64
	SunSidereal  float64
	MoonSidereal float64
}

// TithiIndex returns the tithi (0..29) for a Moon-Sun elongation.
func TithiIndex(elongation float64) Tithi {
	return Tithi(int(math.Floor(astrotime.Normalize(elongation)/TithiSpan)) % 30)
}

// KaranaIndex maps an elongation onto the eleven karanas: half-tithi slot
// 0 is fixed Kimstughna, slots 57..59 are fixed Shakuni, Chatushpada and
// Naga, and every slot between cycles through the seven movable karanas.
func KaranaIndex(elongation float64) Karana {
	slot := int(math.Floor(astrotime.Normalize(elongation)/(TithiSpan/2))) % 60
	switch slot {
	case 0:
		return 10 // Kimstughna
	case 57:
		return 7 // Shakuni
	case 58:
		return 8 // Chatushpada
	case 59:
		return 9 // Naga
	default:
		return Karana((slot - 1) % 7)
	}
}

// YogaIndex returns the yoga (0..26) for the sum of sidereal Sun and Moon
// longitudes.
func YogaIndex(sunSidereal, moonSidereal float64) Yoga {
	return Yoga(int(math.Floor(astrotime.Normalize(sunSidereal+moonSidereal)/YogaSpan)) % 27)
}

// At computes the snapshot for a moment. The weekday is taken from the
// local calendar date, matching the weekday-keyed daylight tables built on
// top of this package.
func At(m astrotime.Moment, ayanamsa zodiac.AyanamsaModel) (Snapshot, error) {
	if err := m.Validate(); err != nil {
		return Snapshot{}, err
	}
	jd := m.JulianDay()

	sun := ephem.SunLongitude(jd)
	moon := ephem.MoonLongitude(jd)
	sunSid := ayanamsa.Sidereal(sun, jd)
	moonSid := ayanamsa.Sidereal(moon, jd)
	elong := astrotime.Normalize(moon - sun)

	localJD := jd + m.UTCOffset/24

	return Snapshot{
		JulianDay:    jd,
		Tithi:        TithiIndex(elong),
		Karana:       KaranaIndex(elong),
		Yoga:         YogaIndex(sunSid, moonSid),
		Nakshatra:    zodiac.Nakshatras[zodiac.NakshatraIndex(moonSid)],
		Pada:         zodiac.Pada(moonSid),
		Weekday:      Weekday(astrotime.Weekday(localJD)),
		SunTropical:  sun,
		MoonTropical: moon,
		SunSidereal:  sunSid,
		MoonSidereal: moonSid,
	}, nil
}
