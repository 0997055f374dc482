package model

import (
	mip "github.com/nextmv-io/go-mip"

	"github.com/timux/dienstplan-engine"
	"github.com/timux/dienstplan-engine/internal/calendar"
)

// emitSoftConstraints wires every soft rule of spec.md #4.4 (plus rule
// 15's soft-escalated grouping penalty) onto the objective built in
// build.go. Ordering is heaviest weight first, except that weekly
// diversity (500) is emitted before night consistency (600).
func emitSoftConstraints(c *ctx) {
	emitGroupingPenalty(c)
	emitWeeklyDiversity(c)
	emitNightConsistency(c)
	emitWeekendConsistency(c)
	emitShiftHopping(c)
	emitWeekendFairness(c)
	emitNightFairness(c)
	emitTDFairness(c)
	emitGapMinimisation(c)
	emitWeekendToWeekdayContinuity(c)
	emitOwnTeamPreference(c)
}

func xAny(c *ctx, e, d, s int) []mip.Bool {
	return []mip.Bool{c.v.X_(e, d, s), c.v.XC_(e, d, s)}
}

// emitGroupingPenalty: rule 15 / #4.4's weight-1000 rule. For any triple
// of dates a<b<c in one week with x_any(e,a,A) and x_any(e,b,B) and
// x_any(e,c,A), A != B, penalty 1000. The solved value of each returned
// penalty float is inspected post-solve (build.go's GroupingPenalties)
// to report warnings per rule 15's "unsatisfied groupings as warnings".
func emitGroupingPenalty(c *ctx) {
	idx := c.idx
	for e := 0; e < idx.nE; e++ {
		for _, w := range idx.Horizon.Weeks {
			dates := w.Dates[:]
			for ai := 0; ai < len(dates); ai++ {
				a := idx.DateIndex(dates[ai])
				if a < 0 {
					continue
				}
				for bi := ai + 1; bi < len(dates); bi++ {
					b := idx.DateIndex(dates[bi])
					if b < 0 {
						continue
					}
					for ci := bi + 1; ci < len(dates); ci++ {
						cc := idx.DateIndex(dates[ci])
						if cc < 0 {
							continue
						}
						for A := 0; A < idx.nS; A++ {
							for B := 0; B < idx.nS; B++ {
								if A == B {
									continue
								}
								p := addSoftConjunction(c, WeightShiftSequenceGrouping, []Literal{
									lit(xAny(c, e, a, A)...),
									lit(xAny(c, e, b, B)...),
									lit(xAny(c, e, cc, A)...),
								})
								c.groupingPenalties = append(c.groupingPenalties, p)
							}
						}
					}
				}
			}
		}
	}
}

// emitWeeklyDiversity: rule #4.4 weight 500. uses(e,w,s) is a [0,1] float
// forced to 1 whenever employee e is assigned shift s on any day of week
// w; the weekly diversity penalty is the amount by which the count of
// distinct shifts used exceeds 2.
func emitWeeklyDiversity(c *ctx) {
	idx := c.idx
	for e := 0; e < idx.nE; e++ {
		for w := 0; w < idx.nW; w++ {
			week := idx.Horizon.Weeks[w]
			uses := make([]mip.Float, idx.nS)
			for s := 0; s < idx.nS; s++ {
				uses[s] = c.m.NewFloat(0, 1)
				for _, d := range week.Dates {
					di := idx.DateIndex(d)
					if di < 0 {
						continue
					}
					bound := c.m.NewConstraint(mip.LessThanOrEqual, 0)
					bound.NewTerm(1, c.v.X_(e, di, s))
					bound.NewTerm(1, c.v.XC_(e, di, s))
					bound.NewTerm(-1, uses[s])
				}
			}

			diversity := c.m.NewFloat(0, float64(idx.nS))
			excess := c.m.NewConstraint(mip.LessThanOrEqual, 2)
			for s := 0; s < idx.nS; s++ {
				excess.NewTerm(1, uses[s])
			}
			excess.NewTerm(-1, diversity)
			c.obj.AddFloat(WeightWeeklyDiversity, diversity)
		}
	}
}

// emitNightConsistency: rule #4.4 weight 600. Breaking a run of N with a
// non-N shift then returning to N within the same week, on 3 consecutive
// dates inside the week.
func emitNightConsistency(c *ctx) {
	idx := c.idx
	nIdx := idx.ShiftAt[roster.ShiftN]
	for e := 0; e < idx.nE; e++ {
		for _, w := range idx.Horizon.Weeks {
			dates := w.Dates[:]
			for i := 0; i+2 < len(dates); i++ {
				a, b, cc := idx.DateIndex(dates[i]), idx.DateIndex(dates[i+1]), idx.DateIndex(dates[i+2])
				if a < 0 || b < 0 || cc < 0 {
					continue
				}
				addSoftConjunction(c, WeightNightConsistency, []Literal{
					lit(xAny(c, e, a, nIdx)...),
					litNot(xAny(c, e, b, nIdx)...),
					lit(xAny(c, e, cc, nIdx)...),
				})
			}
		}
	}
}

// emitWeekendConsistency: rule #4.4 weight 300. Friday's shift code
// should match Saturday's and Sunday's for the same employee; penalize
// every mismatching pair directly (same shape as emitGroupingPenalty and
// emitShiftHopping) rather than rewarding a match, since
// addSoftConjunction's penalty float only carries a lower bound — a
// negative weight drives it to its unconstrained ceiling regardless of
// whether the conjunction holds, collecting the reward unconditionally.
func emitWeekendConsistency(c *ctx) {
	idx := c.idx
	for e := 0; e < idx.nE; e++ {
		for _, w := range idx.Horizon.Weeks {
			fri := idx.DateIndex(w.Dates[4])
			sat := idx.DateIndex(w.Dates[5])
			sun := idx.DateIndex(w.Dates[6])
			if fri < 0 {
				continue
			}
			for A := 0; A < idx.nS; A++ {
				for B := 0; B < idx.nS; B++ {
					if A == B {
						continue
					}
					if sat >= 0 {
						addSoftConjunction(c, WeightWeekendConsistency, []Literal{
							lit(xAny(c, e, fri, A)...),
							lit(xAny(c, e, sat, B)...),
						})
					}
					if sun >= 0 {
						addSoftConjunction(c, WeightWeekendConsistency, []Literal{
							lit(xAny(c, e, fri, A)...),
							lit(xAny(c, e, sun, B)...),
						})
					}
				}
			}
		}
	}
}

// emitShiftHopping: rule #4.4 weight 200. A-B-A over 3 consecutive
// calendar dates, not restricted to a single week.
func emitShiftHopping(c *ctx) {
	idx := c.idx
	for e := 0; e < idx.nE; e++ {
		for d := 0; d+2 < idx.nD; d++ {
			for A := 0; A < idx.nS; A++ {
				for B := 0; B < idx.nS; B++ {
					if A == B {
						continue
					}
					addSoftConjunction(c, WeightShiftHopping, []Literal{
						lit(xAny(c, e, d, A)...),
						lit(xAny(c, e, d+1, B)...),
						lit(xAny(c, e, d+2, A)...),
					})
				}
			}
		}
	}
}

// emitWeekendFairness: rule #4.4 weight 10, pairwise over YTD-adjusted
// weekend-shift counts.
func emitWeekendFairness(c *ctx) {
	idx := c.idx
	weekendVars := make([][]mip.Bool, idx.nE)
	for e := 0; e < idx.nE; e++ {
		for d := 0; d < idx.nD; d++ {
			if calendar.IsWeekend(idx.Dates[d]) {
				weekendVars[e] = append(weekendVars[e], c.v.Weekend_(e, d))
			}
		}
	}
	for i := 0; i < idx.nE; i++ {
		for j := i + 1; j < idx.nE; j++ {
			oi := float64(c.p.YTDWeekendCounts[idx.Employees[i].ID])
			oj := float64(c.p.YTDWeekendCounts[idx.Employees[j].ID])
			addBalancePenalty(c, WeightWeekendFairness, weekendVars[i], oi, weekendVars[j], oj)
		}
	}
}

// emitNightFairness: rule #4.4 weight 8, pairwise over YTD-adjusted
// night-shift counts.
func emitNightFairness(c *ctx) {
	idx := c.idx
	nIdx := idx.ShiftAt[roster.ShiftN]
	nightVars := make([][]mip.Bool, idx.nE)
	for e := 0; e < idx.nE; e++ {
		for d := 0; d < idx.nD; d++ {
			nightVars[e] = append(nightVars[e], c.v.X_(e, d, nIdx), c.v.XC_(e, d, nIdx))
		}
	}
	for i := 0; i < idx.nE; i++ {
		for j := i + 1; j < idx.nE; j++ {
			oi := float64(c.p.YTDNightCounts[idx.Employees[i].ID])
			oj := float64(c.p.YTDNightCounts[idx.Employees[j].ID])
			addBalancePenalty(c, WeightNightFairness, nightVars[i], oi, nightVars[j], oj)
		}
	}
}

// emitTDFairness: rule #4.4 weight 4, pairwise over YTD-adjusted TD
// counts.
func emitTDFairness(c *ctx) {
	idx := c.idx
	tdVars := make([][]mip.Bool, idx.nE)
	for e := 0; e < idx.nE; e++ {
		for w := 0; w < idx.nW; w++ {
			tdVars[e] = append(tdVars[e], c.v.TD_(e, w))
		}
	}
	for i := 0; i < idx.nE; i++ {
		for j := i + 1; j < idx.nE; j++ {
			oi := float64(c.p.YTDTDCounts[idx.Employees[i].ID])
			oj := float64(c.p.YTDTDCounts[idx.Employees[j].ID])
			addBalancePenalty(c, WeightTDFairness, tdVars[i], oi, tdVars[j], oj)
		}
	}
}

// emitGapMinimisation: rule #4.4 weight 3. active-rest-active over 3
// consecutive calendar dates.
func emitGapMinimisation(c *ctx) {
	idx := c.idx
	for e := 0; e < idx.nE; e++ {
		for d := 0; d+2 < idx.nD; d++ {
			addSoftConjunction(c, WeightGapMinimisation, []Literal{
				lit(c.v.Active_(e, d)),
				litNot(c.v.Active_(e, d+1)),
				lit(c.v.Active_(e, d+2)),
			})
		}
	}
}

// emitWeekendToWeekdayContinuity: rule #4.4 weight 2. At least 3 weekday
// actives but zero weekend actives in the same week. Gap is a
// continuous slack: 5*Gap >= weekdayActiveCount - 2 - 5*weekendAny; the
// solver always sets weekendAny as high as the true weekend activity
// allows (it only ever helps minimise Gap, never hurts), so it behaves
// as the logical "any weekend day worked" indicator without an explicit
// lower-bound constraint.
func emitWeekendToWeekdayContinuity(c *ctx) {
	idx := c.idx
	for e := 0; e < idx.nE; e++ {
		for w := 0; w < idx.nW; w++ {
			week := idx.Horizon.Weeks[w]
			weekendAny := c.m.NewFloat(0, 1)
			weekendBound := c.m.NewConstraint(mip.LessThanOrEqual, 0)
			weekendBound.NewTerm(1, weekendAny)
			for _, d := range week.WeekendDays() {
				di := idx.DateIndex(d)
				if di < 0 {
					continue
				}
				weekendBound.NewTerm(-1, c.v.Weekend_(e, di))
			}

			gap := c.m.NewFloat(0, 1)
			cont := c.m.NewConstraint(mip.LessThanOrEqual, 2)
			for _, d := range week.Weekdays() {
				di := idx.DateIndex(d)
				if di < 0 {
					continue
				}
				cont.NewTerm(1, c.v.Active_(e, di))
			}
			cont.NewTerm(-5, gap)
			cont.NewTerm(-5, weekendAny)

			c.obj.AddFloat(WeightWeekendToWeekdayCont, gap)
		}
	}
}

// emitOwnTeamPreference: rule #4.4 weight 1. Every cross-team day costs
// 1, directly on the objective — no conjunction machinery needed.
func emitOwnTeamPreference(c *ctx) {
	idx := c.idx
	for e := 0; e < idx.nE; e++ {
		for d := 0; d < idx.nD; d++ {
			for s := 0; s < idx.nS; s++ {
				c.obj.Add(WeightOwnTeamPreference, c.v.XC_(e, d, s))
			}
		}
	}
}
