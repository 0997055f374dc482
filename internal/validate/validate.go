// Package validate implements spec.md #4.7's single-cell validation API:
// it checks one manual (employee, date, shift) edit against rules 4, 6,
// 8, 9, 10 and 14 with plain predicates over the employee's existing
// assignments. It does not build or reuse internal/model's constraint
// encoding; the rules are written out a second time here.
package validate

import (
	"time"

	"github.com/timux/dienstplan-engine"
	"github.com/timux/dienstplan-engine/internal/calendar"
)

// State is the minimal read-only context Edit needs: the employee being
// edited, their existing assignments in a window wide enough to cover
// the 7-day/6-day lookback of rules 9 and 10 (the caller is expected to
// supply at least 6 days either side of date), their absences and any
// locks touching date.
type State struct {
	Employee    roster.Employee
	Assignments map[string]roster.ShiftCode // time.DateOnly -> shift, excluding the cell being edited
	Absences    []roster.Absence
	Locks       []roster.LockedAssignment
}

func dateKey(t time.Time) string { return t.Format(time.DateOnly) }

// Edit checks whether assigning shift to state.Employee on date is
// admissible, returning a Warning describing the first violated rule if
// not. A nil Warning means Ok.
func Edit(state State, date time.Time, shift roster.ShiftCode) *roster.Warning {
	if w := checkLock(state, date, shift); w != nil {
		return w
	}
	if w := checkAbsence(state, date); w != nil {
		return w
	}
	if w := checkRest(state, date, shift); w != nil {
		return w
	}
	if w := checkWeeklyHours(state, date, shift); w != nil {
		return w
	}
	if w := checkConsecutive(state, date, shift); w != nil {
		return w
	}
	return nil
}

// checkLock encodes rule 14 reduced to a single cell: a locked
// (employee, date) may only be edited to its own locked shift.
func checkLock(state State, date time.Time, shift roster.ShiftCode) *roster.Warning {
	for _, lk := range state.Locks {
		if lk.EmployeeID != state.Employee.ID || dateKey(lk.Date) != dateKey(date) {
			continue
		}
		if lk.Shift != shift {
			return &roster.Warning{
				Kind:    roster.WarnLockConflict,
				Message: "date is locked to " + string(lk.Shift),
			}
		}
	}
	return nil
}

// checkAbsence encodes rule 6 reduced to a single cell.
func checkAbsence(state State, date time.Time) *roster.Warning {
	for _, a := range state.Absences {
		if a.EmployeeID != state.Employee.ID {
			continue
		}
		if !date.Before(dateOnly(a.Start)) && !date.After(dateOnly(a.End)) {
			return &roster.Warning{Kind: roster.WarnAbsenceConflict, Message: "employee is absent on this date"}
		}
	}
	return nil
}

// checkRest encodes rule 8's three forbidden adjacent-day transitions.
func checkRest(state State, date time.Time, shift roster.ShiftCode) *roster.Warning {
	prev, hasPrev := state.Assignments[dateKey(date.AddDate(0, 0, -1))]
	next, hasNext := state.Assignments[dateKey(date.AddDate(0, 0, 1))]

	if hasPrev && forbidden(prev, shift) {
		return &roster.Warning{Kind: roster.WarnRestViolation, Message: "violates rest period after " + string(prev)}
	}
	if hasNext && forbidden(shift, next) {
		return &roster.Warning{Kind: roster.WarnRestViolation, Message: "violates rest period before " + string(next)}
	}
	return nil
}

func forbidden(from, to roster.ShiftCode) bool {
	switch {
	case from == roster.ShiftS && to == roster.ShiftF:
		return true
	case from == roster.ShiftN && to == roster.ShiftF:
		return true
	case from == roster.ShiftN && to == roster.ShiftS:
		return true
	default:
		return false
	}
}

// checkWeeklyHours encodes rule 9 reduced to a single cell: the
// employee's week (Monday-Sunday containing date), with shift applied,
// must not exceed 48h scaled by WeeklyHoursFraction.
func checkWeeklyHours(state State, date time.Time, shift roster.ShiftCode) *roster.Warning {
	week := calendar.Expand(date, date).Weeks[0]
	var total time.Duration
	for _, d := range week.Dates {
		code := state.Assignments[dateKey(d)]
		if dateKey(d) == dateKey(date) {
			code = shift
		}
		total += roster.ShiftDuration(code, d.Weekday())
	}

	hoursCap := 48.0 * state.Employee.WeeklyHoursFraction
	if total.Hours() > hoursCap {
		return &roster.Warning{Kind: roster.WarnHoursCapExceeded, Message: "weekly hours cap exceeded"}
	}
	return nil
}

// checkConsecutive encodes rule 10: any 7-day window containing date may
// have at most 6 active days; any 6-day window may have at most 5 night
// shifts.
func checkConsecutive(state State, date time.Time, shift roster.ShiftCode) *roster.Warning {
	assigned := func(d time.Time) roster.ShiftCode {
		if dateKey(d) == dateKey(date) {
			return shift
		}
		return state.Assignments[dateKey(d)]
	}

	for offset := -6; offset <= 0; offset++ {
		start := date.AddDate(0, 0, offset)
		active := 0
		for i := 0; i < 7; i++ {
			if isWorkCode(assigned(start.AddDate(0, 0, i))) {
				active++
			}
		}
		if active > 6 {
			return &roster.Warning{Kind: roster.WarnConsecutiveCapExceeded, Message: "7-day active cap exceeded"}
		}
	}

	for offset := -5; offset <= 0; offset++ {
		start := date.AddDate(0, 0, offset)
		nights := 0
		for i := 0; i < 6; i++ {
			if assigned(start.AddDate(0, 0, i)) == roster.ShiftN {
				nights++
			}
		}
		if nights > 5 {
			return &roster.Warning{Kind: roster.WarnConsecutiveCapExceeded, Message: "6-day night cap exceeded"}
		}
	}

	return nil
}

func isWorkCode(c roster.ShiftCode) bool {
	return c == roster.ShiftF || c == roster.ShiftN || c == roster.ShiftS
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
