package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/timux/dienstplan-engine"
	"github.com/timux/dienstplan-engine/internal/calendar"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// smallProblem builds a minimal but structurally valid problem: 3
// rotating teams of 3 employees each, one two-week horizon, staffing
// bands permissive enough that Build never needs to prove (in)
// feasibility — these tests only exercise model construction, never the
// solver backend.
func smallProblem() roster.Problem {
	teams := []roster.Team{
		{ID: "team-a", IsRotating: true, RotationIndex: 0},
		{ID: "team-b", IsRotating: true, RotationIndex: 1},
		{ID: "team-c", IsRotating: true, RotationIndex: 2},
	}

	var employees []roster.Employee
	for _, t := range teams {
		for i := 0; i < 3; i++ {
			employees = append(employees, roster.Employee{
				ID:                  t.ID + "-e" + string(rune('1'+i)),
				TeamID:              t.ID,
				WeeklyHoursFraction: 1.0,
				TDQualified:         i == 0,
			})
		}
	}

	bands := []roster.StaffingBand{
		{Shift: roster.ShiftF, Weekend: false, Min: 0, Max: 3},
		{Shift: roster.ShiftS, Weekend: false, Min: 0, Max: 3},
		{Shift: roster.ShiftN, Weekend: false, Min: 0, Max: 3},
		{Shift: roster.ShiftF, Weekend: true, Min: 0, Max: 3},
		{Shift: roster.ShiftS, Weekend: true, Min: 0, Max: 3},
		{Shift: roster.ShiftN, Weekend: true, Min: 0, Max: 3},
	}

	return roster.Problem{
		Start:         date(2026, time.January, 5),
		End:           date(2026, time.January, 18),
		Employees:     employees,
		Teams:         teams,
		StaffingBands: bands,
	}
}

func TestBuild_TightLevel_NoError(t *testing.T) {
	p := smallProblem()
	horizon := calendar.Expand(p.Start, p.End)

	built, err := Build(p, horizon, Tight)
	require.NoError(t, err)
	require.NotNil(t, built.Model)
	assert.NotNil(t, built.Index)
	assert.NotNil(t, built.Vars)
}

func TestBuild_EveryRelaxationLevel_NoError(t *testing.T) {
	p := smallProblem()
	horizon := calendar.Expand(p.Start, p.End)

	for step := 0; step <= MaxStep; step++ {
		level := LevelForStep(step)
		_, err := Build(p, horizon, level)
		require.NoError(t, err, "step %d", step)
	}
}

func TestBuild_ShortRotatingTeamWarning(t *testing.T) {
	p := smallProblem()
	// Knock team-a down to a single employee for the whole horizon by
	// marking its other two members absent throughout.
	p.Absences = []roster.Absence{
		{EmployeeID: "team-a-e2", Start: p.Start, End: p.End, Kind: roster.AbsenceSick},
		{EmployeeID: "team-a-e3", Start: p.Start, End: p.End, Kind: roster.AbsenceSick},
	}
	horizon := calendar.Expand(p.Start, p.End)

	built, err := Build(p, horizon, Tight)
	require.NoError(t, err)

	found := false
	for _, w := range built.Warnings {
		if w.Kind == roster.WarnShortRotatingTeam {
			found = true
		}
	}
	assert.True(t, found, "expected a WarnShortRotatingTeam warning, got %+v", built.Warnings)
}

func TestBuild_NoShortRotatingTeamWarning_WhenFullyStaffed(t *testing.T) {
	p := smallProblem()
	horizon := calendar.Expand(p.Start, p.End)

	built, err := Build(p, horizon, Tight)
	require.NoError(t, err)

	for _, w := range built.Warnings {
		assert.NotEqual(t, roster.WarnShortRotatingTeam, w.Kind)
	}
}

func TestBuild_TDUnfilledWarning_WhenNoQualifiedEmployee(t *testing.T) {
	p := smallProblem()
	for i := range p.Employees {
		p.Employees[i].TDQualified = false
	}
	horizon := calendar.Expand(p.Start, p.End)

	built, err := Build(p, horizon, Tight)
	require.NoError(t, err)

	found := false
	for _, w := range built.Warnings {
		if w.Kind == roster.WarnTDUnfilled {
			found = true
		}
	}
	assert.True(t, found, "expected a WarnTDUnfilled warning, got %+v", built.Warnings)
}

func TestBuild_ReserveDroppedWarning_WhenEveryoneIneligible(t *testing.T) {
	p := smallProblem()
	for i := range p.Employees {
		p.Employees[i].Springer = true
	}
	horizon := calendar.Expand(p.Start, p.End)

	built, err := Build(p, horizon, Tight)
	require.NoError(t, err)

	found := false
	for _, w := range built.Warnings {
		if w.Kind == roster.WarnReserveDropped {
			found = true
		}
	}
	assert.True(t, found, "expected a WarnReserveDropped warning, got %+v", built.Warnings)
}

func TestBuild_ReserveNotEmitted_WhenDroppedByRelaxation(t *testing.T) {
	p := smallProblem()
	for i := range p.Employees {
		p.Employees[i].Springer = true
	}
	horizon := calendar.Expand(p.Start, p.End)

	level := LevelForStep(2) // step 2 drops the weekly reserve constraint
	built, err := Build(p, horizon, level)
	require.NoError(t, err)

	for _, w := range built.Warnings {
		assert.NotEqual(t, roster.WarnReserveDropped, w.Kind)
	}
}

func TestBuild_RotationRelaxedWarning_WhenStepOneApplied(t *testing.T) {
	p := smallProblem()
	horizon := calendar.Expand(p.Start, p.End)

	level := LevelForStep(1) // step 1 downgrades the rotation baseline
	built, err := Build(p, horizon, level)
	require.NoError(t, err)

	found := false
	for _, w := range built.Warnings {
		if w.Kind == roster.WarnRotationRelaxed {
			found = true
		}
	}
	assert.True(t, found, "expected a WarnRotationRelaxed warning, got %+v", built.Warnings)
}

func TestBuild_RotationRelaxedWarning_NotEmittedWhenTight(t *testing.T) {
	p := smallProblem()
	horizon := calendar.Expand(p.Start, p.End)

	built, err := Build(p, horizon, Tight)
	require.NoError(t, err)

	for _, w := range built.Warnings {
		assert.NotEqual(t, roster.WarnRotationRelaxed, w.Kind)
	}
}

func TestBuild_CrossTeamRelaxedWarning_WhenStepThreeApplied(t *testing.T) {
	p := smallProblem()
	horizon := calendar.Expand(p.Start, p.End)

	level := LevelForStep(3) // step 3 drops the cross-team block constraint
	built, err := Build(p, horizon, level)
	require.NoError(t, err)

	found := false
	for _, w := range built.Warnings {
		if w.Kind == roster.WarnCrossTeamRelaxed {
			found = true
		}
	}
	assert.True(t, found, "expected a WarnCrossTeamRelaxed warning, got %+v", built.Warnings)
}

func TestBuild_TDUniquenessLoosedWarning_WhenStepFourApplied(t *testing.T) {
	p := smallProblem()
	horizon := calendar.Expand(p.Start, p.End)

	level := LevelForStep(4) // step 4 relaxes weekly TD uniqueness
	built, err := Build(p, horizon, level)
	require.NoError(t, err)

	found := false
	for _, w := range built.Warnings {
		if w.Kind == roster.WarnTDUniquenessLoosed {
			found = true
		}
	}
	assert.True(t, found, "expected a WarnTDUniquenessLoosed warning, got %+v", built.Warnings)
}

func TestBuild_NoRotatingTeams_SkipsTeamConstraints(t *testing.T) {
	p := smallProblem()
	for i := range p.Teams {
		p.Teams[i].IsRotating = false
	}
	for i := range p.Employees {
		p.Employees[i].TeamID = ""
	}
	horizon := calendar.Expand(p.Start, p.End)

	built, err := Build(p, horizon, Tight)
	require.NoError(t, err)
	assert.Equal(t, 0, built.Index.NumRotatingTeams())
}
