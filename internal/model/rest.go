package model

import (
	mip "github.com/nextmv-io/go-mip"

	"github.com/timux/dienstplan-engine"
)

// emitRestPeriods encodes spec.md rule 8's three forbidden adjacent-day
// transitions, on x_any = x + xc.
func emitRestPeriods(c *ctx) {
	idx := c.idx
	type pair struct{ from, to roster.ShiftCode }
	forbidden := []pair{
		{roster.ShiftS, roster.ShiftF},
		{roster.ShiftN, roster.ShiftF},
		{roster.ShiftN, roster.ShiftS},
	}

	for e := 0; e < idx.nE; e++ {
		for d := 0; d+1 < idx.nD; d++ {
			for _, fb := range forbidden {
				sFrom, sTo := idx.ShiftAt[fb.from], idx.ShiftAt[fb.to]
				c2 := c.m.NewConstraint(mip.LessThanOrEqual, 1)
				c2.NewTerm(1, c.v.X_(e, d, sFrom))
				c2.NewTerm(1, c.v.XC_(e, d, sFrom))
				c2.NewTerm(1, c.v.X_(e, d+1, sTo))
				c2.NewTerm(1, c.v.XC_(e, d+1, sTo))
			}
		}
	}
}
