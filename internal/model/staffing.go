package model

import (
	mip "github.com/nextmv-io/go-mip"

	"github.com/timux/dienstplan-engine"
	"github.com/timux/dienstplan-engine/internal/calendar"
)

// emitStaffingBands encodes spec.md rule 7: for every date and shift,
// the assigned headcount lies in [min,max] of the band matching that
// shift and whether the date is a weekend day. A date/shift with no
// matching band is left unconstrained, same as the source's "bands are
// opt-in per shift" behaviour.
func emitStaffingBands(c *ctx) {
	idx := c.idx

	type key struct {
		shift   roster.ShiftCode
		weekend bool
	}
	bands := make(map[key]roster.StaffingBand, len(c.p.StaffingBands))
	for _, b := range c.p.StaffingBands {
		bands[key{b.Shift, b.Weekend}] = b
	}

	for d := 0; d < idx.nD; d++ {
		weekend := calendar.IsWeekend(idx.Dates[d])
		for s := 0; s < idx.nS; s++ {
			band, ok := bands[key{idx.Shifts[s], weekend}]
			if !ok {
				continue
			}

			if band.Min > 0 {
				lower := c.m.NewConstraint(mip.GreaterThanOrEqual, float64(band.Min))
				for e := 0; e < idx.nE; e++ {
					lower.NewTerm(1, c.v.X_(e, d, s))
					lower.NewTerm(1, c.v.XC_(e, d, s))
				}
			}

			upper := c.m.NewConstraint(mip.LessThanOrEqual, float64(band.Max))
			for e := 0; e < idx.nE; e++ {
				upper.NewTerm(1, c.v.X_(e, d, s))
				upper.NewTerm(1, c.v.XC_(e, d, s))
			}
		}
	}
}
