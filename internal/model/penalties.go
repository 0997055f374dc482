package model

import mip "github.com/nextmv-io/go-mip"

// Literal is a signed reference to a 0/1-valued expression: the sum of
// Vars (itself guaranteed to land in [0,1], e.g. x[e,d,s]+xc[e,d,s] once
// rule 4's exclusivity holds). Want=true means the literal is satisfied
// when that sum is 1 ("assigned"), Want=false when it is 0 ("not
// assigned"). Every soft-constraint helper in this file takes its
// triggering condition as a conjunction of Literals rather than a
// bespoke constraint shape per rule.
type Literal struct {
	Vars []mip.Bool
	Want bool
}

func lit(vars ...mip.Bool) Literal    { return Literal{Vars: vars, Want: true} }
func litNot(vars ...mip.Bool) Literal { return Literal{Vars: vars, Want: false} }

// addSoftConjunction allocates a [0,1] penalty float p and forces p=1
// whenever every literal in lits is satisfied, p free to fall to 0
// otherwise; weight*p is added to the objective. Returns p so callers
// can inspect it (emitGroupingPenalty keeps it for the post-solve
// grouping warning).
//
// Derivation: let e_i = Var_i if Want else (1-Var_i), each in [0,1] and
// exactly 1 when the literal holds. The conjunction holds iff
// sum(e_i) = k = len(lits). Requiring p >= sum(e_i) - (k-1) forces p=1
// when the conjunction holds (sum=k) and allows p=0 whenever at least
// one literal fails (sum <= k-1). Expanding e_i and moving the constant
// term to the right-hand side gives the linear constraint below.
func addSoftConjunction(c *ctx, weight float64, lits []Literal) mip.Float {
	p := c.m.NewFloat(0, 1)
	if weight != 0 {
		c.obj.AddFloat(weight, p)
	}

	k := len(lits)
	negatedCount := 0
	for _, l := range lits {
		if !l.Want {
			negatedCount++
		}
	}

	con := c.m.NewConstraint(mip.LessThanOrEqual, float64(k-1-negatedCount))
	for _, l := range lits {
		sign := 1.0
		if !l.Want {
			sign = -1.0
		}
		for _, v := range l.Vars {
			con.NewTerm(sign, v)
		}
	}
	con.NewTerm(-1, p)

	return p
}

// addBalancePenalty links a non-negative float penalty to the absolute
// difference between two counts, each given as a sum of booleans plus a
// constant offset (a YTD-accrued count carried in from before the
// horizon), via the classic diffPos/diffNeg slack decomposition:
// (sum(aVars)+aOffset) - (sum(bVars)+bOffset) = diffPos - diffNeg, both
// slacks non-negative, so diffPos+diffNeg = |difference| at the optimum
// (the objective never rewards inflating both at once). weight*(diffPos+
// diffNeg) is added to the objective. Used by every pairwise fairness
// rule (weekend, night, td counts).
func addBalancePenalty(c *ctx, weight float64, aVars []mip.Bool, aOffset float64, bVars []mip.Bool, bOffset float64) {
	offset := aOffset - bOffset
	if offset < 0 {
		offset = -offset
	}
	bound := float64(len(aVars)+len(bVars)) + offset
	diffPos := c.m.NewFloat(0, bound)
	diffNeg := c.m.NewFloat(0, bound)

	eq := c.m.NewConstraint(mip.Equal, bOffset-aOffset)
	for _, v := range aVars {
		eq.NewTerm(1, v)
	}
	for _, v := range bVars {
		eq.NewTerm(-1, v)
	}
	eq.NewTerm(-1, diffPos)
	eq.NewTerm(1, diffNeg)

	if weight != 0 {
		c.obj.AddFloat(weight, diffPos)
		c.obj.AddFloat(weight, diffNeg)
	}
}
