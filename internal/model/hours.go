package model

import (
	"time"

	mip "github.com/nextmv-io/go-mip"

	"github.com/timux/dienstplan-engine"
)

// bmtWeeklyHours and bsbWeeklyHours are the weekly-role hour figures
// SPEC_FULL.md #12 resolves the source's BMT/BSB disagreement with:
// both are declared-duration shift kinds that count toward the rule 9
// cap, not ad-hoc bonus assignments.
var (
	bmtWeeklyHours = roster.ShiftDuration(roster.ShiftBMT, time.Monday).Hours()
	bsbWeeklyHours = roster.ShiftDuration(roster.ShiftBSB, time.Monday).Hours()
)

// emitHoursCaps encodes spec.md rule 9 (weekly hours cap, scaled by
// WeeklyHoursFraction and including BMT/BSB per SPEC_FULL.md #12) and
// rule 10 (consecutive-work caps: 7-day active window <= 6, 6-day night
// window <= 5).
func emitHoursCaps(c *ctx) {
	idx := c.idx

	for e := 0; e < idx.nE; e++ {
		fraction := idx.Employees[e].WeeklyHoursFraction
		cap48 := 48.0 * fraction

		for w := 0; w < idx.nW; w++ {
			hours := c.m.NewConstraint(mip.LessThanOrEqual, cap48)
			for _, d := range idx.Horizon.Weeks[w].Dates {
				di := idx.DateIndex(d)
				if di < 0 {
					continue
				}
				hours.NewTerm(8, c.v.Active_(e, di))
			}
			hours.NewTerm(bmtWeeklyHours, c.v.BMT_(e, w))
			hours.NewTerm(bsbWeeklyHours, c.v.BSB_(e, w))
		}
	}

	for e := 0; e < idx.nE; e++ {
		for start := 0; start+7 <= idx.nD; start++ {
			window := c.m.NewConstraint(mip.LessThanOrEqual, 6)
			for d := start; d < start+7; d++ {
				window.NewTerm(1, c.v.Active_(e, d))
			}
		}

		nIdx := idx.ShiftAt[roster.ShiftN]
		for start := 0; start+6 <= idx.nD; start++ {
			window := c.m.NewConstraint(mip.LessThanOrEqual, 5)
			for d := start; d < start+6; d++ {
				window.NewTerm(1, c.v.X_(e, d, nIdx))
				window.NewTerm(1, c.v.XC_(e, d, nIdx))
			}
		}
	}
}
