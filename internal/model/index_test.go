package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/timux/dienstplan-engine"
	"github.com/timux/dienstplan-engine/internal/calendar"
)

func TestNewIndex_EmployeesOrderedByID(t *testing.T) {
	p := smallProblem()
	horizon := calendar.Expand(p.Start, p.End)
	idx := NewIndex(p, horizon)

	for i := 1; i < len(idx.Employees); i++ {
		assert.Less(t, idx.Employees[i-1].ID, idx.Employees[i].ID)
	}
}

func TestNewIndex_ShiftOrderIsFNS(t *testing.T) {
	p := smallProblem()
	horizon := calendar.Expand(p.Start, p.End)
	idx := NewIndex(p, horizon)

	require.Equal(t, 3, len(idx.Shifts))
	assert.Equal(t, [3]roster.ShiftCode{roster.ShiftF, roster.ShiftN, roster.ShiftS}, idx.Shifts)
	assert.Equal(t, 0, idx.ShiftAt[idx.Shifts[0]])
	assert.Equal(t, 1, idx.ShiftAt[idx.Shifts[1]])
	assert.Equal(t, 2, idx.ShiftAt[idx.Shifts[2]])
}

func TestNewIndex_DatesChronological(t *testing.T) {
	p := smallProblem()
	horizon := calendar.Expand(p.Start, p.End)
	idx := NewIndex(p, horizon)

	for i := 1; i < len(idx.Dates); i++ {
		assert.True(t, idx.Dates[i].After(idx.Dates[i-1]))
	}
}

func TestNewIndex_RotatingTeamsOrderedByRotationIndex(t *testing.T) {
	p := smallProblem()
	horizon := calendar.Expand(p.Start, p.End)
	idx := NewIndex(p, horizon)

	require.Len(t, idx.RotatingTeams, 3)
	for i, team := range idx.RotatingTeams {
		assert.Equal(t, i, team.RotationIndex)
	}
}

func TestNewIndex_TeamOfEmp_UnknownTeamIsMinusOne(t *testing.T) {
	p := smallProblem()
	p.Employees = append(p.Employees, roster.Employee{ID: "floater", WeeklyHoursFraction: 1.0})
	horizon := calendar.Expand(p.Start, p.End)
	idx := NewIndex(p, horizon)

	e := idx.EmployeeIndex("floater")
	require.GreaterOrEqual(t, e, 0)
	assert.Equal(t, -1, idx.TeamOfEmp[e])
}

func TestIndex_EmployeeIndex_UnknownReturnsMinusOne(t *testing.T) {
	p := smallProblem()
	horizon := calendar.Expand(p.Start, p.End)
	idx := NewIndex(p, horizon)

	assert.Equal(t, -1, idx.EmployeeIndex("does-not-exist"))
}

func TestIndex_DateIndex_OutsideHorizonReturnsMinusOne(t *testing.T) {
	p := smallProblem()
	horizon := calendar.Expand(p.Start, p.End)
	idx := NewIndex(p, horizon)

	assert.Equal(t, -1, idx.DateIndex(date(2099, 1, 1)))
}

func TestIndex_WeekdayDateIndices_ReturnsFive(t *testing.T) {
	p := smallProblem()
	horizon := calendar.Expand(p.Start, p.End)
	idx := NewIndex(p, horizon)

	indices := idx.WeekdayDateIndices(horizon.Weeks[0])
	assert.Len(t, indices, 5)
	for _, i := range indices {
		assert.GreaterOrEqual(t, i, 0)
	}
}
