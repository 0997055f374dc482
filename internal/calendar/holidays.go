package calendar

import "time"

// IsHessenHoliday reports whether d is a public holiday in the German
// state of Hessen. Holidays influence display only, per spec.md #6 — the
// solve never reads this function unless a caller folds it into a
// per-day staffing override before building a Problem.
func IsHessenHoliday(d time.Time) bool {
	d = dateOnly(d)
	year := d.Year()

	easter := easterSunday(year)
	fixed := map[time.Time]bool{
		dateOnly(time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)):   true, // New Year
		dateOnly(time.Date(year, time.May, 1, 0, 0, 0, 0, time.UTC)):       true, // Labour Day
		dateOnly(time.Date(year, time.October, 3, 0, 0, 0, 0, time.UTC)):  true, // German Unity Day
		dateOnly(time.Date(year, time.December, 25, 0, 0, 0, 0, time.UTC)): true, // Christmas Day
		dateOnly(time.Date(year, time.December, 26, 0, 0, 0, 0, time.UTC)): true, // 2nd Christmas Day

		easter.AddDate(0, 0, -2): true, // Good Friday
		easter.AddDate(0, 0, 1):  true, // Easter Monday
		easter.AddDate(0, 0, 39): true, // Ascension Day
		easter.AddDate(0, 0, 50): true, // Whit Monday
		easter.AddDate(0, 0, 60): true, // Corpus Christi (Hessen-specific)
	}
	return fixed[d]
}

// easterSunday computes the Gregorian Easter Sunday date for year using
// the anonymous (Gauss) algorithm.
func easterSunday(year int) time.Time {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := (h+l-7*m+114)%31 + 1
	return dateOnly(time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC))
}
