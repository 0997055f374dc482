// Package model builds one github.com/nextmv-io/go-mip Model per solve
// attempt from a roster.Problem: the decision variables of spec.md #4.2,
// the hard constraints of #4.3, and the soft-constraint objective terms
// of #4.4. Every public entry point is a pure function of its inputs
// (spec.md #5's determinism guarantee): employees are indexed by id
// order, dates chronologically, shifts in [F, N, S].
package model

import (
	"sort"
	"time"

	"github.com/timux/dienstplan-engine"
	"github.com/timux/dienstplan-engine/internal/calendar"
)

// Index is the dense (employee, date, shift) coordinate system every
// constraint emitter builds against, per spec.md #9's "integer-indexed
// dense arrays keyed by precomputed strides" design note.
type Index struct {
	Horizon calendar.Horizon

	Employees  []roster.Employee
	EmployeeAt map[string]int // employee id -> dense index

	Dates   []time.Time
	DateAt  map[string]int // time.DateOnly string -> dense index
	WeekOf  []int          // date index -> week index

	Shifts  [3]roster.ShiftCode // fixed order: F, N, S
	ShiftAt map[roster.ShiftCode]int

	RotatingTeams []roster.Team // ordered by RotationIndex, len 0 or 3
	TeamOfEmp     []int         // employee index -> rotating team index, or -1

	nE, nD, nS, nW, nT int
}

func dateKey(t time.Time) string { return t.Format(time.DateOnly) }

// NewIndex builds the coordinate system for p over its extended horizon.
func NewIndex(p roster.Problem, horizon calendar.Horizon) *Index {
	idx := &Index{Horizon: horizon}

	idx.Employees = append([]roster.Employee(nil), p.Employees...)
	sort.Slice(idx.Employees, func(i, j int) bool { return idx.Employees[i].ID < idx.Employees[j].ID })
	idx.EmployeeAt = make(map[string]int, len(idx.Employees))
	for i, e := range idx.Employees {
		idx.EmployeeAt[e.ID] = i
	}

	idx.Dates = horizon.Dates()
	idx.DateAt = make(map[string]int, len(idx.Dates))
	idx.WeekOf = make([]int, len(idx.Dates))
	di := 0
	for _, w := range horizon.Weeks {
		for _, d := range w.Dates {
			idx.DateAt[dateKey(d)] = di
			idx.WeekOf[di] = w.Index
			di++
		}
	}

	idx.Shifts = roster.WorkShifts
	idx.ShiftAt = map[roster.ShiftCode]int{
		idx.Shifts[0]: 0,
		idx.Shifts[1]: 1,
		idx.Shifts[2]: 2,
	}

	rotating := p.RotatingTeams()
	sort.Slice(rotating, func(i, j int) bool { return rotating[i].RotationIndex < rotating[j].RotationIndex })
	idx.RotatingTeams = rotating

	teamAt := make(map[string]int, len(rotating))
	for i, t := range rotating {
		teamAt[t.ID] = i
	}
	idx.TeamOfEmp = make([]int, len(idx.Employees))
	for i, e := range idx.Employees {
		if ti, ok := teamAt[e.TeamID]; ok {
			idx.TeamOfEmp[i] = ti
		} else {
			idx.TeamOfEmp[i] = -1
		}
	}

	idx.nE = len(idx.Employees)
	idx.nD = len(idx.Dates)
	idx.nS = len(idx.Shifts)
	idx.nW = len(horizon.Weeks)
	idx.nT = len(rotating)

	return idx
}

func (idx *Index) NumEmployees() int { return idx.nE }
func (idx *Index) NumDates() int     { return idx.nD }
func (idx *Index) NumWeeks() int     { return idx.nW }
func (idx *Index) NumRotatingTeams() int { return idx.nT }

// DateIndex returns the dense index of d, or -1 if d is outside the
// horizon.
func (idx *Index) DateIndex(d time.Time) int {
	if i, ok := idx.DateAt[dateKey(d)]; ok {
		return i
	}
	return -1
}

// EmployeeIndex returns the dense index of employee id, or -1 if unknown.
func (idx *Index) EmployeeIndex(id string) int {
	if i, ok := idx.EmployeeAt[id]; ok {
		return i
	}
	return -1
}

// WeekdayDateIndices returns the dense date indices of the five weekdays
// of week w.
func (idx *Index) WeekdayDateIndices(w calendar.Week) []int {
	out := make([]int, 0, 5)
	for _, d := range w.Weekdays() {
		out = append(out, idx.DateIndex(d))
	}
	return out
}
