// Package extract turns a solved internal/model.Built plus its
// mip.Solution into the flat []roster.Assignment list spec.md #4.6
// describes, restricted to the caller's originally requested window.
package extract

import (
	"time"

	mip "github.com/nextmv-io/go-mip"

	"github.com/timux/dienstplan-engine"
	"github.com/timux/dienstplan-engine/internal/model"
)

const solutionTrue = 0.5 // mip.Solution.Value() on a Bool rounds to {0,1}; compare against the midpoint.

type lockKey struct {
	employeeID string
	date       string
}

// Assignments extracts every (employee, date, shift) with value 1 inside
// the original window, plus, for every (employee, week) TD/BMT/BSB role
// that is set, one pseudo-assignment record per weekday of that week
// inside the window (spec.md #4.6: "emitted as separate records
// with pseudo-shift codes"). Cross-team assignments (xc=1) are emitted
// identically to regular ones, per #4.6; IsFixed marks cells spec.md
// rule 14 locked.
func Assignments(p roster.Problem, built *model.Built, sol mip.Solution) []roster.Assignment {
	idx := built.Index
	var out []roster.Assignment

	locks := make(map[lockKey]bool, len(p.Locks))
	for _, lk := range p.Locks {
		locks[lockKey{lk.EmployeeID, dateKey(lk.Date)}] = true
	}

	for e := 0; e < idx.NumEmployees(); e++ {
		emp := idx.Employees[e]
		for d := 0; d < idx.NumDates(); d++ {
			date := idx.Dates[d]
			if !idx.Horizon.InOriginalRange(date) {
				continue
			}
			for s, code := range idx.Shifts {
				if sol.Value(built.Vars.X_(e, d, s)) > solutionTrue || sol.Value(built.Vars.XC_(e, d, s)) > solutionTrue {
					out = append(out, roster.Assignment{
						EmployeeID: emp.ID,
						Date:       date,
						Shift:      code,
						IsFixed:    locks[lockKey{emp.ID, dateKey(date)}],
					})
				}
			}
		}
	}

	for e := 0; e < idx.NumEmployees(); e++ {
		emp := idx.Employees[e]
		for w := 0; w < idx.NumWeeks(); w++ {
			appendRole(&out, idx, sol, emp.ID, w, built.Vars.TD_(e, w), roster.ShiftTD)
			appendRole(&out, idx, sol, emp.ID, w, built.Vars.BMT_(e, w), roster.ShiftBMT)
			appendRole(&out, idx, sol, emp.ID, w, built.Vars.BSB_(e, w), roster.ShiftBSB)
		}
	}

	return out
}

func appendRole(
	out *[]roster.Assignment,
	idx *model.Index,
	sol mip.Solution,
	employeeID string,
	w int,
	role mip.Bool,
	code roster.ShiftCode,
) {
	if sol.Value(role) <= solutionTrue {
		return
	}
	for _, d := range idx.Horizon.Weeks[w].Weekdays() {
		if !idx.Horizon.InOriginalRange(d) {
			continue
		}
		*out = append(*out, roster.Assignment{
			EmployeeID: employeeID,
			Date:       d,
			Shift:      code,
		})
	}
}

func dateKey(t time.Time) string { return t.Format(time.DateOnly) }
