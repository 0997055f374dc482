package model

import (
	"time"

	mip "github.com/nextmv-io/go-mip"
)

// emitDailyExclusivity encodes spec.md rule 4 (at most one shift per day
// per employee) and the active[e,d]/we[e,d] linking of #4.2: binding
// Active to the sum as an equality is enough to also enforce the
// at-most-one bound, since Active is itself boolean.
func emitDailyExclusivity(c *ctx) {
	idx := c.idx
	for e := 0; e < idx.nE; e++ {
		for d := 0; d < idx.nD; d++ {
			active := c.v.Active_(e, d)

			link := c.m.NewConstraint(mip.Equal, 0)
			link.NewTerm(1, active)
			for s := 0; s < idx.nS; s++ {
				link.NewTerm(-1, c.v.X_(e, d, s))
				link.NewTerm(-1, c.v.XC_(e, d, s))
			}

			we := c.v.Weekend_(e, d)
			weekday := idx.Dates[d].Weekday()
			if weekday == time.Saturday || weekday == time.Sunday {
				weLink := c.m.NewConstraint(mip.Equal, 0)
				weLink.NewTerm(1, we)
				weLink.NewTerm(-1, active)
			} else {
				// Never meaningful on a weekday; pin to 0 so the weekend
				// fairness penalty (sequence.go) never sees a stray 1.
				weZero := c.m.NewConstraint(mip.Equal, 0)
				weZero.NewTerm(1, we)
			}
		}
	}
}
