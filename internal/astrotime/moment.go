package astrotime

// Moment is a civil wall-clock reading together with its UTC offset.
// It is the input type for every computation in this module.
type Moment struct {
	Year   int
	Month  int
	Day    int
	Hour   int
	Minute int

	// UTCOffset is the offset of the wall clock from UT, in hours,
	// east positive (IST is +5.5).
	UTCOffset float64
}

// Validate rejects moments whose calendar fields do not exist.
func (m Moment) Validate() error {
	return ValidateDate(m.Year, m.Month, m.Day, m.Hour, m.Minute)
}

// UniversalTime converts the local wall-clock reading to UT, rolling the
// calendar date backward or forward across midnight as needed. Month and
// year boundaries honor leap years.
func (m Moment) UniversalTime() (year, month, day int, hours float64) {
	year, month, day = m.Year, m.Month, m.Day
	hours = float64(m.Hour) + float64(m.Minute)/60 - m.UTCOffset

	for hours < 0 {
		hours += 24
		day--
		if day < 1 {
			month--
			if month < 1 {
				month = 12
				year--
			}
			day = DaysInMonth(year, month)
		}
	}
	for hours >= 24 {
		hours -= 24
		day++
		if day > DaysInMonth(year, month) {
			day = 1
			month++
			if month > 12 {
				month = 1
				year++
			}
		}
	}
	return year, month, day, hours
}

// JulianDay returns the Julian Day of the moment on the UT scale.
func (m Moment) JulianDay() float64 {
	year, month, day, hours := m.UniversalTime()
	h := int(hours)
	min := (hours - float64(h)) * 60
	return JulianDay(year, month, day, h, int(min), (min-float64(int(min)))*60)
}
