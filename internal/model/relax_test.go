package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelForStep_Cumulative(t *testing.T) {
	cases := []struct {
		step               int
		rotationSoft       bool
		dropReserve        bool
		dropCrossTeamBlock bool
		tdAtMostOne        bool
	}{
		{0, false, false, false, false},
		{1, true, false, false, false},
		{2, true, true, false, false},
		{3, true, true, true, false},
		{4, true, true, true, true},
	}
	for _, c := range cases {
		l := LevelForStep(c.step)
		assert.Equal(t, c.step, l.Step)
		assert.Equal(t, c.rotationSoft, l.RotationSoft, "step %d RotationSoft", c.step)
		assert.Equal(t, c.dropReserve, l.DropReserve, "step %d DropReserve", c.step)
		assert.Equal(t, c.dropCrossTeamBlock, l.DropCrossTeamBlock, "step %d DropCrossTeamBlock", c.step)
		assert.Equal(t, c.tdAtMostOne, l.TDAtMostOne, "step %d TDAtMostOne", c.step)
	}
}

func TestTight_IsStepZero(t *testing.T) {
	assert.Equal(t, Level{Step: 0}, Tight)
}

func TestLevel_Description(t *testing.T) {
	assert.Equal(t, "no relaxation", LevelForStep(0).Description())
	assert.Contains(t, LevelForStep(1).Description(), "rotation baseline")
	assert.Contains(t, LevelForStep(2).Description(), "reserve")
	assert.Contains(t, LevelForStep(3).Description(), "cross-team")
	assert.Contains(t, LevelForStep(4).Description(), "TD uniqueness")
}

func TestMaxStep_MatchesLadderLength(t *testing.T) {
	assert.Equal(t, 4, MaxStep)
}
