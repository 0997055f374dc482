// Package solveengine drives spec.md #4.5's solver: build the tight
// model, invoke the HiGHS MIP backend, and on infeasibility walk the
// relaxation ladder of internal/model until a feasible solution is
// found or the ladder is exhausted.
package solveengine

import (
	"time"

	highs "github.com/nextmv-io/go-highs"
	mip "github.com/nextmv-io/go-mip"

	"github.com/timux/dienstplan-engine"
	"github.com/timux/dienstplan-engine/internal/calendar"
	"github.com/timux/dienstplan-engine/internal/model"
)

// Attempt is one build+solve cycle, returned so the extractor and the
// caller's Stats can see exactly what happened (spec.md #9's
// BuiltTight -> Solve -> {Feasible,Unknown,Infeasible} state machine).
type Attempt struct {
	Built    *model.Built
	Solution mip.Solution
	Status   roster.Status
}

// cancelled reports whether cancel has fired. A nil channel never does.
func cancelled(cancel <-chan struct{}) bool {
	if cancel == nil {
		return false
	}
	select {
	case <-cancel:
		return true
	default:
		return false
	}
}

// Run executes the relaxation loop against p over horizon. opts.Budget is
// the wall-clock ceiling shared across every attempt (the ladder does
// not get a fresh budget per step); opts.Cancel is checked cooperatively
// between attempts, since the underlying HiGHS binding's Solve call is
// itself blocking and exposes no interrupt hook from the caller side
// (spec.md #5's "suspension points: none observable ... beyond the
// single blocking call").
//
// go-highs's mip.SolveOptions surface (as used throughout the teacher
// pack) exposes Duration, MIP.Gap.Relative and Verbosity, but no
// worker-count or random-seed knob; opts.Workers and opts.Seed are
// therefore accepted (Workers clamped by Options.withDefaults) but have
// no effect on this backend (documented in DESIGN.md).
//
// When the tight build reports a short rotating team
// (roster.WarnShortRotatingTeam), the tight attempt is not solved and the
// ladder starts at step 1.
func Run(p roster.Problem, horizon calendar.Horizon, opts roster.Options) (Attempt, []roster.RelaxationRecord, error) {
	deadline := time.Now().Add(opts.Budget)
	log := opts.Logger

	var relaxations []roster.RelaxationRecord
	var last Attempt

	for step := 0; step <= model.MaxStep; step++ {
		if cancelled(opts.Cancel) {
			last.Status = roster.StatusUnknown
			return last, relaxations, roster.ErrCancelled
		}

		remaining := time.Until(deadline)
		if remaining <= 0 {
			remaining = time.Millisecond
		}

		level := model.LevelForStep(step)
		built, err := model.Build(p, horizon, level)
		if err != nil {
			return Attempt{}, relaxations, err
		}

		if step == 0 {
			short := false
			for _, w := range built.Warnings {
				if w.Kind == roster.WarnShortRotatingTeam {
					short = true
				}
			}
			if short {
				log.Warn().Msg("short rotating team, starting at relaxation step 1")
				relaxations = append(relaxations, roster.RelaxationRecord{Step: 1, Description: model.LevelForStep(1).Description()})
				continue
			}
		}

		log.Info().Int("step", step).Str("level", level.Description()).Msg("solving attempt")

		solver := highs.NewSolver(built.Model)
		solveOpts := mip.SolveOptions{}
		solveOpts.Duration = remaining
		solveOpts.MIP.Gap.Relative = opts.RelativeGapPercent / 100.0
		solveOpts.Verbosity = mip.Off

		sol, err := solver.Solve(solveOpts)
		if err != nil {
			return Attempt{}, relaxations, roster.WrapError(roster.KindInternal, err, "highs solve failed")
		}

		attempt := Attempt{Built: built, Solution: sol}
		switch {
		case sol.IsOptimal():
			attempt.Status = roster.StatusOptimal
		case sol.IsSubOptimal() || sol.HasValues():
			attempt.Status = roster.StatusFeasible
		default:
			attempt.Status = roster.StatusInfeasible
		}
		last = attempt

		if attempt.Status != roster.StatusInfeasible {
			log.Info().Str("status", string(attempt.Status)).Msg("solve attempt succeeded")
			return attempt, relaxations, nil
		}

		log.Warn().Int("step", step).Msg("attempt infeasible, relaxing")

		if step < model.MaxStep {
			relaxations = append(relaxations, roster.RelaxationRecord{
				Step:        step + 1,
				Description: model.LevelForStep(step + 1).Description(),
			})
		}

		if time.Now().After(deadline) {
			last.Status = roster.StatusUnknown
			return last, relaxations, nil
		}
	}

	return last, relaxations, nil
}
