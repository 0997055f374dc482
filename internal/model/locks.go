package model

import mip "github.com/nextmv-io/go-mip"

// emitLocks encodes spec.md rule 14: a locked (e,d,s) forces
// x_any(e,d,s)=1 and every other shift on that cell to 0. Team-level
// lock conversion (rotation.go's teamLevelLockedWeeks) only reads
// carry-over locks whose date falls inside the original window; this
// emitter itself applies to every lock regardless of source.
func emitLocks(c *ctx) {
	idx := c.idx
	for _, lk := range c.p.Locks {
		e := idx.EmployeeIndex(lk.EmployeeID)
		d := idx.DateIndex(lk.Date)
		if e < 0 || d < 0 {
			continue
		}
		s, ok := idx.ShiftAt[lk.Shift]
		if !ok {
			continue
		}

		pin := c.m.NewConstraint(mip.Equal, 1)
		pin.NewTerm(1, c.v.X_(e, d, s))
		pin.NewTerm(1, c.v.XC_(e, d, s))

		for other := 0; other < idx.nS; other++ {
			if other == s {
				continue
			}
			zero := c.m.NewConstraint(mip.Equal, 0)
			zero.NewTerm(1, c.v.X_(e, d, other))
			zero.NewTerm(1, c.v.XC_(e, d, other))
		}
	}
}
