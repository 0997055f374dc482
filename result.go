package roster

import (
	"fmt"
	"time"
)

// Status is the outcome of a Solve invocation.
type Status string

const (
	StatusOptimal    Status = "optimal"
	StatusFeasible   Status = "feasible"
	StatusInfeasible Status = "infeasible"
	StatusUnknown    Status = "unknown"
)

// WarningKind enumerates the non-fatal conditions Solve accumulates into
// Stats.Warnings instead of failing outright (spec.md #7).
type WarningKind string

const (
	WarnShortRotatingTeam  WarningKind = "short_rotating_team"
	WarnGroupingViolated   WarningKind = "grouping_violated"
	WarnRotationRelaxed    WarningKind = "rotation_relaxed"
	WarnReserveDropped     WarningKind = "reserve_dropped"
	WarnCrossTeamRelaxed   WarningKind = "cross_team_block_relaxed"
	WarnTDUniquenessLoosed WarningKind = "td_uniqueness_relaxed"
	WarnTDUnfilled         WarningKind = "td_unfilled"

	// Warning kinds emitted by internal/validate's single-cell edit API
	// (spec.md #4.7).
	WarnLockConflict          WarningKind = "lock_conflict"
	WarnAbsenceConflict       WarningKind = "absence_conflict"
	WarnRestViolation         WarningKind = "rest_violation"
	WarnHoursCapExceeded      WarningKind = "hours_cap_exceeded"
	WarnConsecutiveCapExceeded WarningKind = "consecutive_cap_exceeded"
)

// Warning is a single accumulated, non-silent diagnostic.
type Warning struct {
	Kind    WarningKind `json:"kind"`
	Message string      `json:"message"`
}

// RelaxationRecord documents one step of the relaxation ladder
// (spec.md #4.5) that was applied to reach a feasible solution.
type RelaxationRecord struct {
	Step        int    `json:"step"`
	Description string `json:"description"`
}

// Stats carries solver diagnostics alongside a Result.
type Stats struct {
	RunID          string             `json:"run_id"`
	SolveDuration  time.Duration      `json:"solve_duration"`
	ObjectiveValue float64            `json:"objective_value"`
	Relaxations    []RelaxationRecord `json:"relaxations,omitempty"`
	Warnings       []Warning          `json:"warnings,omitempty"`
	// Custom mirrors mip.DefaultCustomResultStatistics's shape: solver
	// node counts, variable/constraint counts, and similar MIP internals.
	// Solve does not fill it in, so it is always empty.
	Custom map[string]any `json:"custom,omitempty"`
}

// Result is what Solve returns. Assignments only ever cover dates inside
// the caller's originally requested [Start, End] window (spec.md #4.6);
// assignments produced for the extended pre/post period are internal to
// the solve and never surface.
type Result struct {
	Status      Status       `json:"status"`
	Assignments []Assignment `json:"assignments"`
	Stats       Stats        `json:"stats"`
}

func (r Result) addWarning(kind WarningKind, format string, args ...any) Result {
	r.Stats.Warnings = append(r.Stats.Warnings, Warning{Kind: kind, Message: fmt.Sprintf(format, args...)})
	return r
}
