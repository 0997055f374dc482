package model

import (
	mip "github.com/nextmv-io/go-mip"
)

// Vars holds every decision variable of spec.md #4.2, dense-indexed
// through Index's strides. A zero-value entry for a (employee, date)
// combination that an absence rules out entirely is simply never
// constrained to anything but zero — the absence emitter (absence.go)
// pins it.
type Vars struct {
	idx *Index

	// X[e,d,s]: employee e works shift s on date d via their own team.
	X []mip.Bool
	// XC[e,d,s]: cross-team assignment.
	XC []mip.Bool
	// T[t,w,s]: rotating team t works shift s in week w.
	T []mip.Bool
	// Active[e,d]: employee e works some shift on date d (regular or
	// cross-team).
	Active []mip.Bool
	// Weekend[e,d]: like Active, but only meaningful for weekend dates
	// (pinned to 0 on weekdays by exclusivity.go); allocated for every
	// date, the same shape as Active, for index symmetry.
	Weekend []mip.Bool
	// TD[e,w]: employee e holds the weekly day-service role in week w.
	TD []mip.Bool
	// BMT[e,w], BSB[e,w]: qualified-person weekly roles (SPEC_FULL.md #12).
	BMT []mip.Bool
	BSB []mip.Bool
	// Reserve[e,w]: employee e is the weekly reserve (rule 12).
	Reserve []mip.Bool
}

func (idx *Index) edsStride() (dStride, sStride int) {
	return idx.nD * idx.nS, idx.nS
}

func (idx *Index) edIndex(e, d int) int { return e*idx.nD + d }
func (idx *Index) edsIndex(e, d, s int) int {
	dStride, sStride := idx.edsStride()
	return e*dStride + d*sStride + s
}
func (idx *Index) twsIndex(t, w, s int) int { return t*idx.nW*idx.nS + w*idx.nS + s }
func (idx *Index) ewIndex(e, w int) int     { return e*idx.nW + w }

// NewVars allocates every decision variable against m.
func NewVars(m mip.Model, idx *Index) *Vars {
	v := &Vars{idx: idx}

	v.X = make([]mip.Bool, idx.nE*idx.nD*idx.nS)
	v.XC = make([]mip.Bool, idx.nE*idx.nD*idx.nS)
	for i := range v.X {
		v.X[i] = m.NewBool()
		v.XC[i] = m.NewBool()
	}

	v.T = make([]mip.Bool, idx.nT*idx.nW*idx.nS)
	for i := range v.T {
		v.T[i] = m.NewBool()
	}

	v.Active = make([]mip.Bool, idx.nE*idx.nD)
	v.Weekend = make([]mip.Bool, idx.nE*idx.nD)
	for i := range v.Active {
		v.Active[i] = m.NewBool()
		v.Weekend[i] = m.NewBool()
	}

	v.TD = make([]mip.Bool, idx.nE*idx.nW)
	v.BMT = make([]mip.Bool, idx.nE*idx.nW)
	v.BSB = make([]mip.Bool, idx.nE*idx.nW)
	v.Reserve = make([]mip.Bool, idx.nE*idx.nW)
	for i := range v.TD {
		v.TD[i] = m.NewBool()
		v.BMT[i] = m.NewBool()
		v.BSB[i] = m.NewBool()
		v.Reserve[i] = m.NewBool()
	}

	return v
}

func (v *Vars) X_(e, d, s int) mip.Bool  { return v.X[v.idx.edsIndex(e, d, s)] }
func (v *Vars) XC_(e, d, s int) mip.Bool { return v.XC[v.idx.edsIndex(e, d, s)] }
func (v *Vars) T_(t, w, s int) mip.Bool  { return v.T[v.idx.twsIndex(t, w, s)] }
func (v *Vars) Active_(e, d int) mip.Bool { return v.Active[v.idx.edIndex(e, d)] }
func (v *Vars) Weekend_(e, d int) mip.Bool { return v.Weekend[v.idx.edIndex(e, d)] }
func (v *Vars) TD_(e, w int) mip.Bool  { return v.TD[v.idx.ewIndex(e, w)] }
func (v *Vars) BMT_(e, w int) mip.Bool { return v.BMT[v.idx.ewIndex(e, w)] }
func (v *Vars) BSB_(e, w int) mip.Bool { return v.BSB[v.idx.ewIndex(e, w)] }
func (v *Vars) Reserve_(e, w int) mip.Bool { return v.Reserve[v.idx.ewIndex(e, w)] }
