package model

import (
	mip "github.com/nextmv-io/go-mip"

	"github.com/timux/dienstplan-engine"
)

// emitRotationBaseline encodes spec.md rule 3: team t (rotation index i)
// defaults to shift R[(i+j) mod 3] in week j, R = [F, N, S]
// (roster.WorkShifts). The default is a hard equality unless a team-level
// lock already pins that team-week to something else (locks.go runs
// after this and simply wins on conflict via a tighter equality — we
// skip emitting the baseline equality for any team-week a team-level
// lock covers), the week lies entirely before the caller's original
// window (pre-period context, already correct from the prior solve),
// or the relaxation ladder has downgraded rule 3 to a soft preference.
func emitRotationBaseline(c *ctx) {
	idx := c.idx
	if idx.nT == 0 {
		return
	}

	if c.level.RotationSoft {
		c.warn(roster.WarnRotationRelaxed, "rotation baseline downgraded to a soft preference")
	}

	lockedTeamWeeks := teamLevelLockedWeeks(c)

	for t := 0; t < idx.nT; t++ {
		i := idx.RotatingTeams[t].RotationIndex
		for w := 0; w < idx.nW; w++ {
			if lockedTeamWeeks[[2]int{t, w}] {
				continue
			}
			if isPrePeriodWeek(c, w) {
				continue
			}

			baseline := roster.WorkShifts[(i+w)%3]
			s := idx.ShiftAt[baseline]
			tv := c.v.T_(t, w, s)

			if c.level.RotationSoft {
				// Soft preference: reward T=1 without forcing it.
				c.obj.Add(-WeightRotationRelaxed, tv)
				continue
			}

			eq := c.m.NewConstraint(mip.Equal, 1)
			eq.NewTerm(1, tv)
		}
	}
}

// isPrePeriodWeek reports whether week w's dates all fall before the
// caller's originally requested window — i.e. it is read-only context
// carried in from an adjacent month's plan.
func isPrePeriodWeek(c *ctx, w int) bool {
	week := c.idx.Horizon.Weeks[w]
	return week.Dates[6].Before(c.idx.Horizon.OriginalStart)
}

// teamLevelLockedWeeks returns the set of (teamIndex, weekIndex) pairs a
// carry-over lock inside the original window has already pinned to a
// specific shift (spec.md rule 14's team-level lock conversion).
func teamLevelLockedWeeks(c *ctx) map[[2]int]bool {
	out := make(map[[2]int]bool)
	for _, lk := range c.p.Locks {
		if lk.Source != roster.LockCarryOver {
			continue
		}
		if !c.idx.Horizon.InOriginalRange(lk.Date) {
			continue
		}
		e := c.idx.EmployeeIndex(lk.EmployeeID)
		if e < 0 || c.idx.TeamOfEmp[e] < 0 {
			continue
		}
		d := c.idx.DateIndex(lk.Date)
		if d < 0 {
			continue
		}
		out[[2]int{c.idx.TeamOfEmp[e], c.idx.WeekOf[d]}] = true
	}
	return out
}
