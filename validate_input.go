package roster

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

var structValidator = validator.New()

// checkInput runs struct-tag validation (types.go's `validate:"..."`
// tags) followed by the cross-field contradictions struct tags cannot
// express, per spec.md #7's InvalidInput contract: surfaced synchronously,
// before any solve is attempted.
func checkInput(p Problem) error {
	if err := structValidator.Struct(p); err != nil {
		return wrapError(KindInvalidInput, err, "problem failed structural validation")
	}

	employees := make(map[string]Employee, len(p.Employees))
	for _, e := range p.Employees {
		if _, dup := employees[e.ID]; dup {
			return newError(KindInvalidInput, "duplicate employee id %q", e.ID)
		}
		employees[e.ID] = e
	}

	teams := make(map[string]Team, len(p.Teams))
	rotatingCount := 0
	rotatingIndexSeen := make(map[int]bool)
	for _, t := range p.Teams {
		if _, dup := teams[t.ID]; dup {
			return newError(KindInvalidInput, "duplicate team id %q", t.ID)
		}
		teams[t.ID] = t
		if t.IsRotating {
			rotatingCount++
			if t.RotationIndex < 0 || t.RotationIndex > 2 {
				return newError(KindInvalidInput, "rotating team %q has rotation_index %d, want 0..2", t.ID, t.RotationIndex)
			}
			if rotatingIndexSeen[t.RotationIndex] {
				return newError(KindInvalidInput, "two rotating teams share rotation_index %d", t.RotationIndex)
			}
			rotatingIndexSeen[t.RotationIndex] = true
		}
	}
	if rotatingCount != 0 && rotatingCount != 3 {
		return newError(KindInvalidInput, "rotation requires exactly 3 rotating teams, got %d", rotatingCount)
	}

	for _, e := range p.Employees {
		if e.TeamID != "" {
			if _, ok := teams[e.TeamID]; !ok {
				return newError(KindInvalidInput, "employee %q references unknown team %q", e.ID, e.TeamID)
			}
		}
	}

	for _, a := range p.Absences {
		if _, ok := employees[a.EmployeeID]; !ok {
			return newError(KindInvalidInput, "absence references unknown employee %q", a.EmployeeID)
		}
	}

	bands := make(map[string]StaffingBand)
	for _, b := range p.StaffingBands {
		key := fmt.Sprintf("%s/%t", b.Shift, b.Weekend)
		if _, dup := bands[key]; dup {
			return newError(KindInvalidInput, "duplicate staffing band for shift %s weekend=%t", b.Shift, b.Weekend)
		}
		bands[key] = b
		if b.Min > b.Max {
			return newError(KindInvalidInput, "staffing band for shift %s weekend=%t has min %d > max %d", b.Shift, b.Weekend, b.Min, b.Max)
		}
	}

	// Rule 14 precondition: no two locks may disagree on the same cell,
	// and no lock may fall on a date the same employee is absent.
	seen := make(map[string]ShiftCode)
	for _, lk := range p.Locks {
		if _, ok := employees[lk.EmployeeID]; !ok {
			return newError(KindInvalidInput, "lock references unknown employee %q", lk.EmployeeID)
		}
		key := fmt.Sprintf("%s/%s", lk.EmployeeID, lk.Date.Format(time.DateOnly))
		if existing, dup := seen[key]; dup && existing != lk.Shift {
			return newError(KindInvalidInput, "conflicting locks for employee %q on %s: %s vs %s",
				lk.EmployeeID, lk.Date.Format(time.DateOnly), existing, lk.Shift)
		}
		seen[key] = lk.Shift

		for _, a := range p.Absences {
			if a.EmployeeID != lk.EmployeeID {
				continue
			}
			if !lk.Date.Before(a.Start) && !lk.Date.After(a.End) {
				return newError(KindInvalidInput, "locked assignment for employee %q on %s falls inside an absence (%s)",
					lk.EmployeeID, lk.Date.Format(time.DateOnly), a.Kind)
			}
		}
	}

	return nil
}
