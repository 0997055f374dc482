package roster

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestShiftDuration_RegularShiftsAreEightHours(t *testing.T) {
	for _, s := range []ShiftCode{ShiftF, ShiftS, ShiftN} {
		assert.Equal(t, 8*time.Hour, ShiftDuration(s, time.Monday))
		assert.Equal(t, 8*time.Hour, ShiftDuration(s, time.Sunday))
	}
}

func TestShiftDuration_BMTIsAlwaysEightHours(t *testing.T) {
	assert.Equal(t, 8*time.Hour, ShiftDuration(ShiftBMT, time.Monday))
	assert.Equal(t, 8*time.Hour, ShiftDuration(ShiftBMT, time.Saturday))
}

func TestShiftDuration_BSBIsWeekdaysOnly(t *testing.T) {
	assert.Equal(t, 9*time.Hour+30*time.Minute, ShiftDuration(ShiftBSB, time.Monday))
	assert.Equal(t, 9*time.Hour+30*time.Minute, ShiftDuration(ShiftBSB, time.Friday))
	assert.Equal(t, time.Duration(0), ShiftDuration(ShiftBSB, time.Saturday))
	assert.Equal(t, time.Duration(0), ShiftDuration(ShiftBSB, time.Sunday))
}

func TestShiftDuration_PseudoLabelsAreZero(t *testing.T) {
	for _, s := range []ShiftCode{ShiftRest, ShiftU, ShiftAU, ShiftL, ShiftTD} {
		assert.Equal(t, time.Duration(0), ShiftDuration(s, time.Monday))
	}
}

func TestWorkShifts_RotationBaselineOrder(t *testing.T) {
	assert.Equal(t, [3]ShiftCode{ShiftF, ShiftN, ShiftS}, WorkShifts)
}

func TestProblem_RotatingTeams_FiltersAndPreservesOrder(t *testing.T) {
	p := Problem{
		Teams: []Team{
			{ID: "floaters", IsRotating: false},
			{ID: "a", IsRotating: true, RotationIndex: 0},
			{ID: "b", IsRotating: true, RotationIndex: 1},
			{ID: "c", IsRotating: true, RotationIndex: 2},
		},
	}
	rotating := p.RotatingTeams()
	assert.Len(t, rotating, 3)
	assert.Equal(t, "a", rotating[0].ID)
	assert.Equal(t, "b", rotating[1].ID)
	assert.Equal(t, "c", rotating[2].ID)
}

func TestProblem_RotatingTeams_EmptyWhenNoneRotating(t *testing.T) {
	p := Problem{Teams: []Team{{ID: "a", IsRotating: false}}}
	assert.Empty(t, p.RotatingTeams())
}
