package model

import (
	mip "github.com/nextmv-io/go-mip"

	"github.com/timux/dienstplan-engine"
)

// emitWeeklyTD encodes spec.md rule 11: in every week whose five
// weekdays all fall inside the caller's original window, exactly one
// td-qualified employee holds the role (relaxed to at-most-one under
// level.TDAtMostOne, spec.md #4.5 step 4); partial weeks allow zero.
// Holding the role blocks every regular weekday shift that week.
//
// SPEC_FULL.md #12 extends the same weekly-role shape to the BMT and
// BSB qualified-person roles: only a qualified employee may hold either,
// and at most one employee per week holds each (the spec names no upper
// bound higher than one for these roles, and a weekly role shared by
// more than one person has no meaning here).
func emitWeeklyTD(c *ctx) {
	idx := c.idx

	if c.level.TDAtMostOne {
		c.warn(roster.WarnTDUniquenessLoosed, "weekly TD uniqueness relaxed from exactly-one to at-most-one")
	}

	for w := 0; w < idx.nW; w++ {
		week := idx.Horizon.Weeks[w]
		weekdaysInRange := true
		for _, d := range week.Weekdays() {
			if !c.idx.Horizon.InOriginalRange(d) {
				weekdaysInRange = false
				break
			}
		}

		op := mip.Equal
		if c.level.TDAtMostOne {
			op = mip.LessThanOrEqual
		}
		rhs := 1.0
		if !weekdaysInRange {
			if op == mip.Equal {
				rhs = 0
			} else {
				rhs = 1 // at-most-one is already <= 1; zero-or-one both legal
			}
		}

		assign := c.m.NewConstraint(op, rhs)
		any := false
		for e := 0; e < idx.nE; e++ {
			if !idx.Employees[e].TDQualified {
				continue
			}
			assign.NewTerm(1, c.v.TD_(e, w))
			any = true
		}
		if !any && weekdaysInRange && op == mip.Equal {
			c.warn(roster.WarnTDUnfilled, "week %d has no td-qualified employee available", w)
		}

		for e := 0; e < idx.nE; e++ {
			if idx.Employees[e].TDQualified {
				continue
			}
			zero := c.m.NewConstraint(mip.Equal, 0)
			zero.NewTerm(1, c.v.TD_(e, w))
		}

		// td[e,w]=1 implies active[e,d]=0 for every weekday d in w.
		for e := 0; e < idx.nE; e++ {
			td := c.v.TD_(e, w)
			for _, d := range week.Weekdays() {
				di := idx.DateIndex(d)
				if di < 0 {
					continue
				}
				block := c.m.NewConstraint(mip.LessThanOrEqual, 1)
				block.NewTerm(1, td)
				block.NewTerm(1, c.v.Active_(e, di))
			}
		}
	}

	emitWeeklyQualifiedRole(c, c.v.BMT, func(e int) bool { return c.idx.Employees[e].BMTQualified })
	emitWeeklyQualifiedRole(c, c.v.BSB, func(e int) bool { return c.idx.Employees[e].BSBQualified })
}

// emitWeeklyQualifiedRole pins a weekly-role variable slice to 0 for
// unqualified employees and caps at most one holder per week.
func emitWeeklyQualifiedRole(c *ctx, vars []mip.Bool, qualified func(e int) bool) {
	idx := c.idx
	for w := 0; w < idx.nW; w++ {
		atMostOne := c.m.NewConstraint(mip.LessThanOrEqual, 1)
		for e := 0; e < idx.nE; e++ {
			v := vars[idx.ewIndex(e, w)]
			if !qualified(e) {
				zero := c.m.NewConstraint(mip.Equal, 0)
				zero.NewTerm(1, v)
				continue
			}
			atMostOne.NewTerm(1, v)
		}
	}
}
