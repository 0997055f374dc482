package model

import mip "github.com/nextmv-io/go-mip"

// Weights are policy (spec.md #4.4), not contract, but their relative
// ordering is: grouping (1000) > night consistency (600) > diversity
// (500) > weekend consistency (300) > shift-hopping (200) > weekend
// fairness (10) > night fairness (8) > td fairness (4) > gap
// minimisation (3) > weekend-to-weekday continuity (2) > own-team
// preference (1).
const (
	WeightWeekendFairness       = 10.0
	WeightNightFairness         = 8.0
	WeightShiftSequenceGrouping = 1000.0
	WeightWeeklyDiversity       = 500.0
	WeightNightConsistency      = 600.0
	WeightWeekendConsistency    = 300.0
	WeightShiftHopping          = 200.0
	WeightTDFairness            = 4.0
	WeightGapMinimisation       = 3.0
	WeightWeekendToWeekdayCont  = 2.0
	WeightOwnTeamPreference     = 1.0

	// WeightRotationRelaxed is the relaxation-ladder weight the rotation
	// baseline gets downgraded to (spec.md #4.5 step 1), not a base
	// objective weight.
	WeightRotationRelaxed = 10000.0
)

// Objective accumulates (weight, variable) pairs from every constraint
// emitter before they are concatenated into the model's objective
// (spec.md #9's "weighted-sum objective" design note).
type Objective struct {
	m mip.Model
}

func newObjective(m mip.Model) *Objective {
	m.Objective().SetMinimize()
	return &Objective{m: m}
}

// Add appends weight*v to the objective. A zero weight is a no-op, since
// some emitters are toggled off by relaxation.
func (o *Objective) Add(weight float64, v mip.Bool) {
	if weight == 0 {
		return
	}
	o.m.Objective().NewTerm(weight, v)
}

// AddFloat appends weight*v for a continuous (mip.Float) penalty/slack
// variable.
func (o *Objective) AddFloat(weight float64, v mip.Float) {
	if weight == 0 {
		return
	}
	o.m.Objective().NewTerm(weight, v)
}
