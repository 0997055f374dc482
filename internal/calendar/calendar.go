// Package calendar expands a caller's requested date range to whole ISO
// calendar weeks (spec.md #4.1) and provides the German state of Hessen's
// public-holiday calendar for display purposes.
package calendar

import "time"

// Week is a Monday-to-Sunday slice of the planning horizon.
type Week struct {
	// Index is this week's position (0-based) in the extended horizon.
	Index int
	// Dates holds exactly 7 consecutive dates, Monday first.
	Dates [7]time.Time
	// Partial is true when any of Dates falls outside the caller's
	// originally requested [OriginalStart, OriginalEnd] window.
	Partial bool
}

// Weekdays returns the Monday-Friday dates of the week.
func (w Week) Weekdays() []time.Time {
	return w.Dates[:5]
}

// WeekendDays returns the Saturday-Sunday dates of the week.
func (w Week) WeekendDays() []time.Time {
	return w.Dates[5:]
}

// Contains reports whether d (compared by calendar date) is one of the
// week's 7 dates.
func (w Week) Contains(d time.Time) bool {
	for _, wd := range w.Dates {
		if sameDate(wd, d) {
			return true
		}
	}
	return false
}

// Horizon is the result of expanding a caller's requested range to whole
// ISO weeks (spec.md #4.1).
type Horizon struct {
	OriginalStart time.Time
	OriginalEnd   time.Time
	ExtendedStart time.Time
	ExtendedEnd   time.Time
	Weeks         []Week
}

// Dates returns every date in the extended horizon, chronological.
func (h Horizon) Dates() []time.Time {
	out := make([]time.Time, 0, len(h.Weeks)*7)
	for _, w := range h.Weeks {
		out = append(out, w.Dates[:]...)
	}
	return out
}

// InOriginalRange reports whether d falls inside [OriginalStart, OriginalEnd].
func (h Horizon) InOriginalRange(d time.Time) bool {
	d = dateOnly(d)
	return !d.Before(dateOnly(h.OriginalStart)) && !d.After(dateOnly(h.OriginalEnd))
}

// WeekOf returns the week containing d and true, or the zero Week and
// false if d falls outside the horizon.
func (h Horizon) WeekOf(d time.Time) (Week, bool) {
	for _, w := range h.Weeks {
		if w.Contains(d) {
			return w, true
		}
	}
	return Week{}, false
}

// Expand widens [start, end] to the Monday on or before start through the
// Sunday on or after end, per spec.md #4.1. start must not be after end.
func Expand(start, end time.Time) Horizon {
	start, end = dateOnly(start), dateOnly(end)

	extendedStart := mondayOnOrBefore(start)
	extendedEnd := sundayOnOrAfter(end)

	var weeks []Week
	idx := 0
	for cursor := extendedStart; !cursor.After(extendedEnd); cursor = cursor.AddDate(0, 0, 7) {
		var w Week
		w.Index = idx
		for i := 0; i < 7; i++ {
			d := cursor.AddDate(0, 0, i)
			w.Dates[i] = d
			if d.Before(start) || d.After(end) {
				w.Partial = true
			}
		}
		weeks = append(weeks, w)
		idx++
	}

	return Horizon{
		OriginalStart: start,
		OriginalEnd:   end,
		ExtendedStart: extendedStart,
		ExtendedEnd:   extendedEnd,
		Weeks:         weeks,
	}
}

// IsWeekend reports whether d is a Saturday or Sunday.
func IsWeekend(d time.Time) bool {
	wd := d.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// ISOWeek returns the ISO-8601 (year, week) pair for d (spec.md #6).
func ISOWeek(d time.Time) (year, week int) {
	return d.ISOWeek()
}

func mondayOnOrBefore(d time.Time) time.Time {
	// time.Monday == 1, time.Sunday == 0; normalize so Monday maps to 0.
	offset := (int(d.Weekday()) + 6) % 7
	return d.AddDate(0, 0, -offset)
}

func sundayOnOrAfter(d time.Time) time.Time {
	offset := (7 - int(d.Weekday())) % 7
	return d.AddDate(0, 0, offset)
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func sameDate(a, b time.Time) bool {
	return dateOnly(a).Equal(dateOnly(b))
}
