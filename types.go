package roster

import "time"

// ShiftCode identifies a working shift or a pseudo-label used at output
// time only. F, S and N are the three shifts the solver assigns; the rest
// are produced by auxiliary roles or absences and never appear as a
// decision variable.
type ShiftCode string

const (
	ShiftF ShiftCode = "F" // early, 05:45-13:45
	ShiftS ShiftCode = "S" // late, 13:45-21:45
	ShiftN ShiftCode = "N" // night, 21:45-05:45

	ShiftRest ShiftCode = "REST"
	ShiftU    ShiftCode = "U"   // vacation
	ShiftAU   ShiftCode = "AU"  // sick
	ShiftL    ShiftCode = "L"   // training
	ShiftTD   ShiftCode = "TD"  // weekly day-service role
	ShiftBMT  ShiftCode = "BMT" // fire-alarm technician role
	ShiftBSB  ShiftCode = "BSB" // fire-safety officer role
)

// WorkShifts is the fixed rotation alphabet rules 1-3 partition every
// week across. Order matters: it is the rotation baseline cycle R.
var WorkShifts = [3]ShiftCode{ShiftF, ShiftN, ShiftS}

// ShiftDuration returns the nominal duration of a shift code, used for
// weekly-hours accounting (spec.md rule 9; BMT/BSB resolved in
// SPEC_FULL.md #12).
func ShiftDuration(s ShiftCode, weekday time.Weekday) time.Duration {
	switch s {
	case ShiftF, ShiftS, ShiftN:
		return 8 * time.Hour
	case ShiftBMT:
		return 8 * time.Hour
	case ShiftBSB:
		if weekday == time.Saturday || weekday == time.Sunday {
			return 0
		}
		return 9*time.Hour + 30*time.Minute
	default:
		return 0
	}
}

// AbsenceKind is the reason an employee is unavailable.
type AbsenceKind string

const (
	AbsenceVacation AbsenceKind = "U"
	AbsenceSick     AbsenceKind = "AU"
	AbsenceTraining AbsenceKind = "L"
)

// LockSource distinguishes carry-over locks (which may induce a
// team-level rotation lock, rule 14) from manual pins (which never do).
type LockSource string

const (
	LockCarryOver LockSource = "carry_over"
	LockManual    LockSource = "manual"
)

// Employee is input-only and immutable during a solve.
type Employee struct {
	ID       string `json:"id" validate:"required"`
	TeamID   string `json:"team_id,omitempty"`
	Springer bool   `json:"springer"`

	TDQualified  bool `json:"td_qualified"`
	BMTQualified bool `json:"bmt_qualified"`
	BSBQualified bool `json:"bsb_qualified"`
	Ferienjobber bool `json:"ferienjobber"`

	// WeeklyHoursFraction scales the 48h weekly cap (rule 9): 1.0 is a
	// full-time quota, 0.5 a half-time one.
	WeeklyHoursFraction float64 `json:"weekly_hours_fraction" validate:"gt=0,lte=1.5"`
}

// Team is input-only. Only the first three rotating teams participate in
// the F->N->S weekly rotation (rule 3).
type Team struct {
	ID         string `json:"id" validate:"required"`
	Name       string `json:"name"`
	IsRotating bool   `json:"is_rotating"`
	// RotationIndex is this team's position (0..2) in the rotation cycle.
	// Only meaningful when IsRotating is true.
	RotationIndex int `json:"rotation_index"`
}

// Absence marks an employee unavailable over [Start, End], inclusive.
type Absence struct {
	EmployeeID string      `json:"employee_id" validate:"required"`
	Start      time.Time   `json:"start" validate:"required"`
	End        time.Time   `json:"end" validate:"required,gtefield=Start"`
	Kind       AbsenceKind `json:"kind" validate:"required,oneof=U AU L"`
	Notes      string      `json:"notes,omitempty"`
}

// LockedAssignment pre-fixes a cell. Carry-over locks from an adjacent
// month's plan may additionally fix the owning team's weekly rotation
// (rule 14) when the date falls inside the caller's original window;
// manual pins never do.
type LockedAssignment struct {
	EmployeeID string     `json:"employee_id" validate:"required"`
	Date       time.Time  `json:"date" validate:"required"`
	Shift      ShiftCode  `json:"shift" validate:"required"`
	Source     LockSource `json:"source" validate:"required,oneof=carry_over manual"`
}

// StaffingBand bounds how many employees may be assigned to a given
// shift on a weekday or a weekend day.
type StaffingBand struct {
	Shift   ShiftCode `json:"shift" validate:"required,oneof=F S N"`
	Weekend bool      `json:"weekend"`
	Min     int       `json:"min" validate:"gte=0"`
	Max     int       `json:"max" validate:"gtefield=Min"`
}

// Assignment is one produced (employee, date, shift) record.
type Assignment struct {
	EmployeeID string    `json:"employee_id"`
	Date       time.Time `json:"date"`
	Shift      ShiftCode `json:"shift_code"`
	IsFixed    bool      `json:"is_fixed"`
	Notes      string    `json:"notes,omitempty"`
}

// Problem is the caller-owned, read-only input to Solve. YTD* fields
// seed the fairness penalties (spec.md #4.4) with counts accrued before
// the current planning horizon.
type Problem struct {
	Start time.Time `json:"start" validate:"required"`
	End   time.Time `json:"end" validate:"required,gtefield=Start"`

	Employees     []Employee         `json:"employees" validate:"required,dive"`
	Teams         []Team             `json:"teams" validate:"required,dive"`
	Absences      []Absence          `json:"absences" validate:"dive"`
	Locks         []LockedAssignment `json:"locks" validate:"dive"`
	StaffingBands []StaffingBand     `json:"staffing_bands" validate:"required,dive"`

	YTDWeekendCounts map[string]int `json:"ytd_weekend_counts,omitempty"`
	YTDNightCounts   map[string]int `json:"ytd_night_counts,omitempty"`
	YTDTDCounts      map[string]int `json:"ytd_td_counts,omitempty"`
}

// RotatingTeams returns the problem's teams with IsRotating set, in their
// input order; it does not sort them by RotationIndex.
func (p Problem) RotatingTeams() []Team {
	out := make([]Team, 0, 3)
	for _, t := range p.Teams {
		if t.IsRotating {
			out = append(out, t)
		}
	}
	return out
}
