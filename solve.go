package roster

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/timux/dienstplan-engine/internal/calendar"
	"github.com/timux/dienstplan-engine/internal/extract"
	"github.com/timux/dienstplan-engine/internal/solveengine"
)

// Solve runs the full pipeline of spec.md #2 against p: validates the
// input (#7), expands the calendar (#4.1), builds and solves the model
// through the relaxation ladder (#4.3-#4.5), and extracts the caller's
// assignments (#4.6).
//
// InvalidInput is returned directly; Infeasible and Timeout are reported
// as a Result with a matching Status (plus a matching error, so callers
// can still errors.Is against it) rather than panicking, per #7's "not
// exceptional control flow" rule.
func Solve(p Problem, opts Options) (Result, error) {
	if err := checkInput(p); err != nil {
		return Result{}, err
	}

	opts = opts.withDefaults()
	runID := uuid.NewString()
	start := time.Now()

	horizon := calendar.Expand(p.Start, p.End)

	attempt, relaxations, err := solveengine.Run(p, horizon, opts)
	if err != nil {
		if errors.Is(err, ErrCancelled) {
			return Result{
				Status: StatusUnknown,
				Stats: Stats{
					RunID:         runID,
					SolveDuration: time.Since(start),
				},
			}, ErrCancelled
		}
		return Result{}, err
	}

	result := Result{
		Status: attempt.Status,
		Stats: Stats{
			RunID:         runID,
			SolveDuration: time.Since(start),
			Relaxations:   relaxations,
		},
	}

	if attempt.Built != nil {
		result.Stats.Warnings = append(result.Stats.Warnings, attempt.Built.Warnings...)
	}

	switch attempt.Status {
	case StatusInfeasible:
		return result, wrapError(KindInfeasible, nil, "no feasible solution after exhausting the relaxation ladder")
	case StatusUnknown:
		return result, wrapError(KindTimeout, nil, "solve budget exhausted before a feasible incumbent was found")
	}

	result.Assignments = extract.Assignments(p, attempt.Built, attempt.Solution)
	result.Stats.ObjectiveValue = attempt.Solution.ObjectiveValue()

	countGroupingViolations(&result, attempt)

	return result, nil
}

func countGroupingViolations(result *Result, attempt solveengine.Attempt) {
	if attempt.Built == nil || attempt.Solution == nil {
		return
	}
	violations := 0
	for _, p := range attempt.Built.GroupingPenalties {
		if attempt.Solution.Value(p) > 0.5 {
			violations++
		}
	}
	if violations > 0 {
		result.Stats.Warnings = append(result.Stats.Warnings, Warning{
			Kind:    WarnGroupingViolated,
			Message: fmt.Sprintf("grouping violated on %d occurrences", violations),
		})
	}
}
