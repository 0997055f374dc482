package model

import (
	mip "github.com/nextmv-io/go-mip"

	"github.com/timux/dienstplan-engine"
	"github.com/timux/dienstplan-engine/internal/calendar"
)

// Built is one fully-constructed attempt: a mip.Model plus the index and
// variable table needed to read a solution back (internal/extract) and
// the warnings accumulated while building it (e.g. a short rotating
// team, SPEC_FULL.md #12).
type Built struct {
	Model    mip.Model
	Index    *Index
	Vars     *Vars
	Warnings []roster.Warning

	// GroupingPenalties are the rule-15 shift-sequence-grouping penalty
	// floats (sequence.go), kept so the solver driver can read back their
	// solved value and turn any non-zero one into a WarnGroupingViolated
	// warning (spec.md rule 15: "reports unsatisfied groupings as
	// warnings").
	GroupingPenalties []mip.Float
}

// ctx is threaded through every constraint emitter in this package.
type ctx struct {
	m     mip.Model
	idx   *Index
	v     *Vars
	obj   *Objective
	p     roster.Problem
	level Level

	absent map[[2]int]bool // [employeeIndex, dateIndex] -> true

	warnings          []roster.Warning
	groupingPenalties []mip.Float
}

func (c *ctx) warn(kind roster.WarningKind, format string, args ...any) {
	c.warnings = append(c.warnings, roster.Warning{Kind: kind, Message: fmtSprintf(format, args...)})
}

func (c *ctx) isAbsent(e, d int) bool { return c.absent[[2]int{e, d}] }

// Build assembles a full mip.Model for p over horizon at the given
// relaxation level, per spec.md #4.2-#4.4 and the ladder in #4.5/#9.
func Build(p roster.Problem, horizon calendar.Horizon, level Level) (*Built, error) {
	idx := NewIndex(p, horizon)
	m := mip.NewModel()
	v := NewVars(m, idx)
	obj := newObjective(m)

	c := &ctx{m: m, idx: idx, v: v, obj: obj, p: p, level: level}
	c.precomputeAbsences()

	emitTeamExclusivityAndPartition(c)
	emitRotationBaseline(c)
	emitDailyExclusivity(c)
	emitTeamCoupling(c)
	emitAbsences(c)
	emitStaffingBands(c)
	emitRestPeriods(c)
	emitHoursCaps(c)
	emitWeeklyTD(c)
	emitWeeklyReserve(c)
	emitLocks(c)
	emitSoftConstraints(c)

	return &Built{
		Model:             m,
		Index:             idx,
		Vars:              v,
		Warnings:          c.warnings,
		GroupingPenalties: c.groupingPenalties,
	}, nil
}

func (c *ctx) precomputeAbsences() {
	c.absent = make(map[[2]int]bool)
	for _, a := range c.p.Absences {
		e := c.idx.EmployeeIndex(a.EmployeeID)
		if e < 0 {
			continue
		}
		for di, d := range c.idx.Dates {
			if !d.Before(dateOnly(a.Start)) && !d.After(dateOnly(a.End)) {
				c.absent[[2]int{e, di}] = true
			}
		}
	}
}
