package model

import (
	mip "github.com/nextmv-io/go-mip"

	"github.com/timux/dienstplan-engine"
	"github.com/timux/dienstplan-engine/internal/calendar"
)

// emitWeeklyReserve encodes spec.md rule 12: every week, at least one
// non-springer, non-TD employee who is not absent for the whole week
// sits out entirely (Σ_d active[e,d] = 0). Dropped under
// level.DropReserve (spec.md #4.5 step 2).
//
// Reserve_[e,w] is the indicator used to pick that employee: Reserve=1
// forces the week's active sum to 0 for e, and at least one eligible e
// per week must have Reserve=1.
func emitWeeklyReserve(c *ctx) {
	if c.level.DropReserve {
		return
	}

	idx := c.idx
	for w := 0; w < idx.nW; w++ {
		week := idx.Horizon.Weeks[w]
		atLeastOne := c.m.NewConstraint(mip.GreaterThanOrEqual, 1)
		any := false

		for e := 0; e < idx.nE; e++ {
			if idx.Employees[e].Springer {
				continue
			}
			if weekFullyAbsent(c, e, week) {
				continue
			}

			reserve := c.v.Reserve_(e, w)
			atLeastOne.NewTerm(1, reserve)
			any = true

			for _, d := range week.Dates {
				di := idx.DateIndex(d)
				if di < 0 {
					continue
				}
				link := c.m.NewConstraint(mip.LessThanOrEqual, 1)
				link.NewTerm(1, reserve)
				link.NewTerm(1, c.v.Active_(e, di))
			}

			// td[e,w]=1 excludes reserve: they already sit out via the
			// TD role, not this one.
			tdExclusive := c.m.NewConstraint(mip.LessThanOrEqual, 1)
			tdExclusive.NewTerm(1, reserve)
			tdExclusive.NewTerm(1, c.v.TD_(e, w))
		}

		if !any {
			c.warn(roster.WarnReserveDropped, "week %d has no eligible reserve candidate", w)
		}
	}
}

func weekFullyAbsent(c *ctx, e int, week calendar.Week) bool {
	for _, d := range week.Dates {
		di := c.idx.DateIndex(d)
		if di < 0 {
			continue
		}
		if !c.isAbsent(e, di) {
			return false
		}
	}
	return true
}
