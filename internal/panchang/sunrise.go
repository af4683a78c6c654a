package panchang

import (
	"fmt"
	"math"

	"github.com/gopanchang/jyotish/internal/astrotime"
)

// riseSetAltitude is the Sun's altitude at rise/set: 16' of solar radius
// plus 34' of atmospheric refraction below the geometric horizon.
const riseSetAltitude = -0.833

// DayTimes holds one local date's sunrise and sunset.
type DayTimes struct {
	SunriseJD float64 // UT scale
	SunsetJD  float64

	Sunrise float64 // local wall-clock fractional hours
	Sunset  float64

	// Polar is set when the hour-angle cosine left [-1,1] and was
	// clamped: the sun never crosses the horizon on this date at this
	// latitude. Sunrise and sunset then collapse toward solar midnight
	// or span the whole day.
	Polar bool
}

// SolarNoonJD returns the midpoint of sunrise and sunset.
func (d DayTimes) SolarNoonJD() float64 {
	return d.SunriseJD + (d.SunsetJD-d.SunriseJD)/2
}

// DaylightHours returns the length of the day in hours.
func (d DayTimes) DaylightHours() float64 {
	return (d.SunsetJD - d.SunriseJD) * 24
}

// SunTimes solves sunrise and sunset for a local calendar date. The solar
// position uses the short mean-anomaly/equation-of-center formula; the
// hour-angle cosine is clamped into [-1,1] so polar latitudes degrade to
// all-day or no-day sunlight instead of a domain error.
func SunTimes(year, month, day int, latitude, longitude, utcOffset float64) (DayTimes, error) {
	if err := astrotime.ValidateDate(year, month, day, 0, 0); err != nil {
		return DayTimes{}, err
	}

	// UT of local mean solar noon on this date.
	noon := astrotime.JulianDay(year, month, day, 12, 0, 0) - longitude/360
	n := noon - astrotime.J2000

	meanAnom := astrotime.Normalize(357.5291 + 0.98560028*n)
	m := meanAnom * deg2rad
	center := 1.9148*math.Sin(m) + 0.0200*math.Sin(2*m) + 0.0003*math.Sin(3*m)
	// Ecliptic longitude: mean anomaly + center + perihelion + 180°.
	eclLong := astrotime.Normalize(meanAnom + center + 282.9372)
	l := eclLong * deg2rad

	transit := noon + 0.0053*math.Sin(m) - 0.0069*math.Sin(2*l)

	sinDec := math.Sin(l) * math.Sin(23.4397*deg2rad)
	dec := math.Asin(sinDec)
	lat := latitude * deg2rad

	cosHA := (math.Sin(riseSetAltitude*deg2rad) - math.Sin(lat)*sinDec) /
		(math.Cos(lat) * math.Cos(dec))
	polar := cosHA < -1 || cosHA > 1
	cosHA = math.Max(-1, math.Min(1, cosHA))
	hourAngle := math.Acos(cosHA) / deg2rad

	d := DayTimes{
		SunriseJD: transit - hourAngle/360,
		SunsetJD:  transit + hourAngle/360,
		Polar:     polar,
	}
	d.Sunrise = localHours(d.SunriseJD, utcOffset)
	d.Sunset = localHours(d.SunsetJD, utcOffset)
	return d, nil
}

// localHours converts a UT Julian Day to local fractional hours of day.
func localHours(jd, utcOffset float64) float64 {
	frac := math.Mod(jd+utcOffset/24+0.5, 1)
	if frac < 0 {
		frac += 1
	}
	return frac * 24
}

// FormatClock renders fractional hours as HH:MM.
func FormatClock(hours float64) string {
	total := int(math.Round(hours * 60))
	total = ((total % 1440) + 1440) % 1440
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

const deg2rad = math.Pi / 180
