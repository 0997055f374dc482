package model

import (
	mip "github.com/nextmv-io/go-mip"

	"github.com/timux/dienstplan-engine"
)

// emitTeamExclusivityAndPartition encodes spec.md rule 1 (every rotating
// team works exactly one shift per week) and rule 2 (no two rotating
// teams share a shift in the same week — together with rule 1, a full
// partition when there are exactly three rotating teams).
func emitTeamExclusivityAndPartition(c *ctx) {
	idx := c.idx
	if idx.nT == 0 {
		return
	}

	for t := 0; t < idx.nT; t++ {
		for w := 0; w < idx.nW; w++ {
			// Rule 1: sum_s T[t,w,s] = 1.
			exclusivity := c.m.NewConstraint(mip.Equal, 1)
			for s := 0; s < idx.nS; s++ {
				exclusivity.NewTerm(1, c.v.T_(t, w, s))
			}
		}
	}

	for w := 0; w < idx.nW; w++ {
		for s := 0; s < idx.nS; s++ {
			// Rule 2: sum_t T[t,w,s] <= 1.
			partition := c.m.NewConstraint(mip.LessThanOrEqual, 1)
			for t := 0; t < idx.nT; t++ {
				partition.NewTerm(1, c.v.T_(t, w, s))
			}
		}
	}

	warnShortRotatingTeams(c)
}

// warnShortRotatingTeams implements the Open Question decision in
// SPEC_FULL.md #12: when a rotating team has fewer than 3 employees
// available (not absent for the entire week) in a given week, the team
// cannot realistically cover an 8h shift with normal reserve/TD
// carve-outs. Rather than silently falling back to a legacy heuristic,
// this records a warning and leaves this build's constraints untouched;
// internal/solveengine.Run reads the warning from the tight build and
// skips straight to relaxation step 1 (spec.md #4.5).
func warnShortRotatingTeams(c *ctx) {
	idx := c.idx
	for t := 0; t < idx.nT; t++ {
		for w := 0; w < idx.nW; w++ {
			week := idx.Horizon.Weeks[w]
			available := 0
			for e := 0; e < idx.nE; e++ {
				if idx.TeamOfEmp[e] != t {
					continue
				}
				if weekFullyAbsent(c, e, week) {
					continue
				}
				available++
			}
			if available < 3 {
				c.warn(roster.WarnShortRotatingTeam,
					"rotating team %q has only %d employee(s) available in week %d",
					idx.RotatingTeams[t].ID, available, w)
			}
		}
	}
}
