package model

import (
	mip "github.com/nextmv-io/go-mip"

	"github.com/timux/dienstplan-engine"
)

// emitTeamCoupling encodes spec.md rule 5 (a regular assignment requires
// the employee's own team to be rostered to that shift that week, and a
// cross-team assignment requires the opposite) and rule 13 (cross-team
// block: once an employee escapes to another team's shift on one weekday
// of a week, every other non-absent weekday of that week must carry the
// same escape).
//
// Employees with no team (TeamOfEmp == -1, e.g. springers floating
// outside the rotation) have no "own shift" to be bound to, so x is
// forbidden for them entirely and xc is unrestricted by any team
// equality — they may cover any shift any rotating team works that week.
func emitTeamCoupling(c *ctx) {
	idx := c.idx
	for e := 0; e < idx.nE; e++ {
		team := idx.TeamOfEmp[e]
		for d := 0; d < idx.nD; d++ {
			w := idx.WeekOf[d]
			for s := 0; s < idx.nS; s++ {
				x := c.v.X_(e, d, s)
				xc := c.v.XC_(e, d, s)

				if team < 0 {
					zero := c.m.NewConstraint(mip.Equal, 0)
					zero.NewTerm(1, x)

					bound := c.m.NewConstraint(mip.LessThanOrEqual, 0)
					bound.NewTerm(1, xc)
					for t := 0; t < idx.nT; t++ {
						bound.NewTerm(-1, c.v.T_(t, w, s))
					}
					continue
				}

				// x[e,d,s] <= T[team(e), w, s].
				ownBound := c.m.NewConstraint(mip.LessThanOrEqual, 0)
				ownBound.NewTerm(1, x)
				ownBound.NewTerm(-1, c.v.T_(team, w, s))

				// xc[e,d,s] <= sum_{t != team} T[t,w,s].
				crossBound := c.m.NewConstraint(mip.LessThanOrEqual, 0)
				crossBound.NewTerm(1, xc)
				for t := 0; t < idx.nT; t++ {
					if t == team {
						continue
					}
					crossBound.NewTerm(-1, c.v.T_(t, w, s))
				}

				// xc[e,d,s] + T[team(e),w,s] <= 1.
				exclusive := c.m.NewConstraint(mip.LessThanOrEqual, 1)
				exclusive.NewTerm(1, xc)
				exclusive.NewTerm(1, c.v.T_(team, w, s))
			}
		}
	}

	if !c.level.DropCrossTeamBlock {
		emitCrossTeamBlock(c)
	} else {
		c.warn(roster.WarnCrossTeamRelaxed, "cross-team block constraint dropped")
	}
}

// emitCrossTeamBlock encodes rule 13: for a given employee and week, if
// any weekday carries xc[e,d,s]=1, every other non-absent weekday in
// that week must carry xc[e,d',s]=1 for the same s. Expressed as a
// chain of equalities across the week's non-absent weekdays rather than
// an all-pairs one — equivalent, and linear in the week length.
func emitCrossTeamBlock(c *ctx) {
	idx := c.idx
	for e := 0; e < idx.nE; e++ {
		for _, w := range idx.Horizon.Weeks {
			var chain []int
			for _, d := range w.Weekdays() {
				di := idx.DateIndex(d)
				if di < 0 || c.isAbsent(e, di) {
					continue
				}
				chain = append(chain, di)
			}
			for i := 1; i < len(chain); i++ {
				prev, cur := chain[i-1], chain[i]
				for s := 0; s < idx.nS; s++ {
					eq := c.m.NewConstraint(mip.Equal, 0)
					eq.NewTerm(1, c.v.XC_(e, prev, s))
					eq.NewTerm(-1, c.v.XC_(e, cur, s))
				}
			}
		}
	}
}
