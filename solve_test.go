package roster

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSolve_InvalidInput_ShortCircuitsBeforeAnySolve is spec.md #7's
// "InvalidInput is surfaced synchronously, no solve attempted" contract:
// checkInput runs and fails before the calendar, model or solver are
// ever touched, so this needs no real MIP backend to verify.
func TestSolve_InvalidInput_ShortCircuitsBeforeAnySolve(t *testing.T) {
	p := validProblem()
	p.Employees = append(p.Employees, p.Employees[0]) // duplicate id

	result, err := Solve(p, Options{})
	require.Error(t, err)
	assert.Equal(t, Result{}, result)

	var rerr *Error
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, KindInvalidInput, rerr.Kind)
}

// TestSolve_Cancelled_ReturnsUnknownWithoutBuildingAModel exercises
// spec.md #5's cooperative cancellation: solveengine.Run checks the
// cancellation token at the very top of its attempt loop, before
// building a model or invoking the solver backend, so a pre-closed
// channel is observable without ever touching HiGHS.
func TestSolve_Cancelled_ReturnsUnknownWithoutBuildingAModel(t *testing.T) {
	p := validProblem()
	cancel := make(chan struct{})
	close(cancel)

	result, err := Solve(p, Options{Cancel: cancel})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrCancelled))
	assert.Equal(t, StatusUnknown, result.Status)
	assert.Empty(t, result.Assignments)
	assert.NotEmpty(t, result.Stats.RunID)
}
