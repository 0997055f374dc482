package model

// Level describes which of spec.md #4.5's relaxation-ladder steps are
// active for a given solve attempt. Steps are cumulative: attempt k
// carries every relaxation of attempts 1..k-1 plus its own, matching
// spec.md #9's "Relax(k) rebuilds the model with the k-th relaxation
// applied" state machine (each transition adds one relaxation, it does
// not replace the previous one).
type Level struct {
	// Step is 0 for the tight (unrelaxed) model.
	Step int
	// RotationSoft downgrades the rotation baseline (rule 3) from a hard
	// equality to a WeightRotationRelaxed-weighted objective penalty.
	RotationSoft bool
	// DropReserve removes the weekly-reserve constraint (rule 12).
	DropReserve bool
	// DropCrossTeamBlock removes the cross-team block constraint (rule 13).
	DropCrossTeamBlock bool
	// TDAtMostOne relaxes the weekly TD uniqueness (rule 11) from exactly
	// one to at most one.
	TDAtMostOne bool
}

// Tight is the unrelaxed model: every hard constraint in spec.md #4.3
// applies as written.
var Tight = Level{Step: 0}

// MaxStep is the number of relaxation steps in the ladder.
const MaxStep = 4

// LevelForStep returns the cumulative relaxation level after applying
// steps 1..step of the ladder (step 0 is Tight).
func LevelForStep(step int) Level {
	l := Level{Step: step}
	if step >= 1 {
		l.RotationSoft = true
	}
	if step >= 2 {
		l.DropReserve = true
	}
	if step >= 3 {
		l.DropCrossTeamBlock = true
	}
	if step >= 4 {
		l.TDAtMostOne = true
	}
	return l
}

// Description returns the human-readable reason the step was applied,
// for Stats.Relaxations (spec.md #4.5: "the list of relaxations is
// included in stats").
func (l Level) Description() string {
	switch l.Step {
	case 1:
		return "rotation baseline downgraded from hard equality to soft penalty (weight 10000)"
	case 2:
		return "weekly reserve constraint dropped"
	case 3:
		return "cross-team block constraint dropped"
	case 4:
		return "weekly TD uniqueness relaxed from exactly-one to at-most-one"
	default:
		return "no relaxation"
	}
}
