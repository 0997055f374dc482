package model

import mip "github.com/nextmv-io/go-mip"

// emitAbsences encodes spec.md rule 6: active[e,d] = 0 for every date an
// employee is absent. X/XC on that cell are already forced to 0 by the
// Active link in exclusivity.go; pinning Active directly keeps this
// emitter independent of emission order.
func emitAbsences(c *ctx) {
	idx := c.idx
	for e := 0; e < idx.nE; e++ {
		for d := 0; d < idx.nD; d++ {
			if !c.isAbsent(e, d) {
				continue
			}
			zero := c.m.NewConstraint(mip.Equal, 0)
			zero.NewTerm(1, c.v.Active_(e, d))
		}
	}
}
