// Package astrotime converts between civil calendar time and the Julian
// Day scale used by every astronomical routine in this module, and derives
// sidereal time from it. All angles are degrees unless noted.
package astrotime

import (
	"errors"
	"fmt"
	"math"
)

// J2000 is the Julian Day of the J2000.0 epoch (2000-01-01 12:00 UT).
const J2000 = 2451545.0

// DaysPerCentury is the length of a Julian century in days.
const DaysPerCentury = 36525.0

// ErrInvalidDate is returned for calendar input that does not exist
// (month outside 1..12, day outside the month, hour or minute out of range).
var ErrInvalidDate = errors.New("astrotime: invalid calendar date")

// Normalize wraps an angle in degrees into [0, 360).
func Normalize(deg float64) float64 {
	return math.Mod(math.Mod(deg, 360)+360, 360)
}

// IsLeapYear reports whether year is a Gregorian leap year.
func IsLeapYear(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

var monthLengths = [13]int{0, 31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// DaysInMonth returns the number of days in the given month, accounting
// for leap years.
func DaysInMonth(year, month int) int {
	if month == 2 && IsLeapYear(year) {
		return 29
	}
	return monthLengths[month]
}

// ValidateDate rejects calendar input before it reaches any Julian Day
// arithmetic, which would silently absorb nonsense like month 13.
func ValidateDate(year, month, day, hour, minute int) error {
	if month < 1 || month > 12 {
		return fmt.Errorf("%w: month %d", ErrInvalidDate, month)
	}
	if day < 1 || day > DaysInMonth(year, month) {
		return fmt.Errorf("%w: day %d of %d-%02d", ErrInvalidDate, day, year, month)
	}
	if hour < 0 || hour > 23 {
		return fmt.Errorf("%w: hour %d", ErrInvalidDate, hour)
	}
	if minute < 0 || minute > 59 {
		return fmt.Errorf("%w: minute %d", ErrInvalidDate, minute)
	}
	return nil
}

// JulianDay converts a Gregorian calendar moment (treated as UT) to a
// Julian Day number. Months January and February are counted as months 13
// and 14 of the preceding year, with the usual century correction.
func JulianDay(year, month, day int, hour, minute int, second float64) float64 {
	y, m := year, month
	if m <= 2 {
		y--
		m += 12
	}
	a := y / 100
	b := 2 - a + a/4

	dayFraction := (float64(hour) + float64(minute)/60 + second/3600) / 24
	return math.Floor(365.25*float64(y+4716)) +
		math.Floor(30.6001*float64(m+1)) +
		float64(day) + float64(b) - 1524.5 + dayFraction
}

// Calendar converts a Julian Day back to a Gregorian calendar moment in UT.
// Round-trips with JulianDay to within rounding of the second.
func Calendar(jd float64) (year, month, day, hour, minute int, second float64) {
	z, f := math.Modf(jd + 0.5)

	a := z
	if z >= 2299161 {
		alpha := math.Floor((z - 1867216.25) / 36524.25)
		a = z + 1 + alpha - math.Floor(alpha/4)
	}
	b := a + 1524
	c := math.Floor((b - 122.1) / 365.25)
	d := math.Floor(365.25 * c)
	e := math.Floor((b - d) / 30.6001)

	day = int(b - d - math.Floor(30.6001*e))
	if e < 14 {
		month = int(e - 1)
	} else {
		month = int(e - 13)
	}
	if month > 2 {
		year = int(c - 4716)
	} else {
		year = int(c - 4715)
	}

	hours := f * 24
	hour = int(hours)
	minutes := (hours - float64(hour)) * 60
	minute = int(minutes)
	second = (minutes - float64(minute)) * 60
	return year, month, day, hour, minute, second
}

// JulianCenturies returns Julian centuries elapsed since J2000.0.
func JulianCenturies(jd float64) float64 {
	return (jd - J2000) / DaysPerCentury
}

// Weekday returns the day of week for a Julian Day, 0 = Sunday.
func Weekday(jd float64) int {
	return int(math.Floor(jd+1.5)) % 7
}

// GreenwichSiderealTime returns the Greenwich mean sidereal time at jd,
// in degrees.
func GreenwichSiderealTime(jd float64) float64 {
	t := JulianCenturies(jd)
	gst := 280.46061837 +
		360.98564736629*(jd-J2000) +
		0.000387933*t*t -
		t*t*t/38710000
	return Normalize(gst)
}

// LocalSiderealTime returns the local mean sidereal time in degrees for an
// observer at the given geographic longitude (degrees east positive).
func LocalSiderealTime(jd, longitude float64) float64 {
	return Normalize(GreenwichSiderealTime(jd) + longitude)
}
