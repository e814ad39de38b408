package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/curiouspeterson/schedule-app-router/pkg/models"
)

func TestNoAvailabilityPatternMeansIneligible(t *testing.T) {
	in := cashierInput()
	// pattern only covers Monday; the requirement moves to Tuesday
	in.CoverageRequirements[0].Date = tuesday

	res := generate(t, in)

	assert.Empty(t, res.Assignments)
	assert.Len(t, res.UnassignedShifts, 1)
}

func TestAvailabilityMustContainWholeShift(t *testing.T) {
	in := cashierInput()
	in.Availability[0].StartTime = "10:00"
	in.Availability[0].EndTime = "12:00"

	res := generate(t, in)

	assert.Empty(t, res.Assignments, "a window inside the shift is not containment")
}

func TestAvailabilityExactMatchIsEligible(t *testing.T) {
	in := cashierInput()
	in.Availability[0].StartTime = "09:00"
	in.Availability[0].EndTime = "13:00"

	res := generate(t, in)
	assert.Len(t, res.Assignments, 1)
}

func TestRoleMismatchIneligible(t *testing.T) {
	in := cashierInput()
	in.Employees[0].Role = "cook"

	res := generate(t, in)

	assert.Empty(t, res.Assignments)
	assert.Len(t, res.UnassignedShifts, 1)
}

func TestDoubleBookingAcrossDates(t *testing.T) {
	in := cashierInput()
	in.Availability = append(in.Availability,
		models.AvailabilityPattern{EmployeeID: "e1", DayOfWeek: 2, StartTime: "08:00", EndTime: "17:00"})
	in.Shifts = append(in.Shifts,
		models.Shift{ID: "s2", Role: "cashier", StartTime: "10:00", EndTime: "12:00"})
	in.CoverageRequirements = append(in.CoverageRequirements,
		models.CoverageRequirement{Date: tuesday, ShiftID: "s2"})

	res := generate(t, in)

	// shift windows are compared on time-of-day regardless of date, so the
	// contained Tuesday window clashes with Monday's commitment
	require.Len(t, res.Assignments, 1)
	assert.Equal(t, monday, res.Assignments[0].Date)
	require.Len(t, res.UnassignedShifts, 1)
	assert.Equal(t, "s2", res.UnassignedShifts[0].ShiftID)
}

func TestAdjacentShiftsDoNotConflict(t *testing.T) {
	in := cashierInput()
	in.Availability[0].EndTime = "20:00"
	in.Shifts = append(in.Shifts,
		models.Shift{ID: "s2", Role: "cashier", StartTime: "13:00", EndTime: "17:00"})
	in.CoverageRequirements = append(in.CoverageRequirements,
		models.CoverageRequirement{Date: monday, ShiftID: "s2"})

	res := generate(t, in)

	assert.Len(t, res.Assignments, 2, "half-open windows let shifts touch at the boundary")
}
