package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/curiouspeterson/schedule-app-router/pkg/models"
)

func TestMaxHoursPerDay(t *testing.T) {
	in := cashierInput()
	in.Availability[0].EndTime = "20:00"
	in.Shifts = []models.Shift{
		{ID: "s1", Role: "cashier", StartTime: "08:00", EndTime: "14:00"}, // 6h
		{ID: "s2", Role: "cashier", StartTime: "15:00", EndTime: "19:00"}, // 4h
	}
	in.CoverageRequirements = []models.CoverageRequirement{
		{Date: monday, ShiftID: "s1"},
		{Date: monday, ShiftID: "s2"},
	}
	in.Constraints = models.SchedulingConstraints{MaxHoursPerDay: 8}

	res := generate(t, in)

	require.Len(t, res.Assignments, 1)
	assert.Equal(t, "s1", res.Assignments[0].ShiftID)
	require.Len(t, res.UnassignedShifts, 1)
	assert.Equal(t, "s2", res.UnassignedShifts[0].ShiftID, "6h committed + 4h candidate exceeds the daily cap")
}

func TestMaxHoursPerDayDoesNotSpanDates(t *testing.T) {
	in := cashierInput()
	in.Availability = append(in.Availability,
		models.AvailabilityPattern{EmployeeID: "e1", DayOfWeek: 2, StartTime: "08:00", EndTime: "20:00"})
	in.Availability[0].EndTime = "20:00"
	in.Shifts = []models.Shift{
		{ID: "s1", Role: "cashier", StartTime: "08:00", EndTime: "14:00"},
		{ID: "s2", Role: "cashier", StartTime: "15:00", EndTime: "19:00"},
	}
	in.CoverageRequirements = []models.CoverageRequirement{
		{Date: monday, ShiftID: "s1"},
		{Date: tuesday, ShiftID: "s2"},
	}
	in.Constraints = models.SchedulingConstraints{MaxHoursPerDay: 8}

	res := generate(t, in)

	assert.Len(t, res.Assignments, 2, "hours on different dates are counted separately")
}

func TestMinHoursBetweenShifts(t *testing.T) {
	in := cashierInput()
	in.Availability = append(in.Availability,
		models.AvailabilityPattern{EmployeeID: "e1", DayOfWeek: 2, StartTime: "00:00", EndTime: "23:59"})
	in.Availability[0].EndTime = "23:59"
	in.Shifts = []models.Shift{
		{ID: "late", Role: "cashier", StartTime: "14:00", EndTime: "22:00"},
		{ID: "early", Role: "cashier", StartTime: "06:00", EndTime: "14:00"},
	}
	in.CoverageRequirements = []models.CoverageRequirement{
		{Date: monday, ShiftID: "late"},
		{Date: tuesday, ShiftID: "early"},
	}
	in.Constraints = models.SchedulingConstraints{MinHoursBetweenShifts: 10}

	res := generate(t, in)

	require.Len(t, res.Assignments, 1)
	assert.Equal(t, "late", res.Assignments[0].ShiftID)
	require.Len(t, res.UnassignedShifts, 1)
	assert.Equal(t, "early", res.UnassignedShifts[0].ShiftID, "ending 22:00 then starting 06:00 violates a 10h rest gap")
}

func TestMinHoursBetweenShiftsSatisfied(t *testing.T) {
	in := cashierInput()
	in.Availability = append(in.Availability,
		models.AvailabilityPattern{EmployeeID: "e1", DayOfWeek: 2, StartTime: "00:00", EndTime: "23:59"})
	in.Availability[0].EndTime = "23:59"
	in.Shifts = []models.Shift{
		{ID: "morning", Role: "cashier", StartTime: "06:00", EndTime: "10:00"},
		{ID: "evening", Role: "cashier", StartTime: "20:00", EndTime: "23:00"},
	}
	in.CoverageRequirements = []models.CoverageRequirement{
		{Date: monday, ShiftID: "morning"},
		{Date: tuesday, ShiftID: "evening"},
	}
	in.Constraints = models.SchedulingConstraints{MinHoursBetweenShifts: 7}

	res := generate(t, in)
	assert.Len(t, res.Assignments, 2)
}

func TestMaxConsecutiveDays(t *testing.T) {
	in := cashierInput()
	in.Availability = []models.AvailabilityPattern{
		{EmployeeID: "e1", DayOfWeek: 1, StartTime: "00:00", EndTime: "23:59"},
		{EmployeeID: "e1", DayOfWeek: 2, StartTime: "00:00", EndTime: "23:59"},
		{EmployeeID: "e1", DayOfWeek: 3, StartTime: "00:00", EndTime: "23:59"},
	}
	// distinct windows so the date-independent overlap check stays out of
	// the way
	in.Shifts = []models.Shift{
		{ID: "s1", Role: "cashier", StartTime: "06:00", EndTime: "08:00"},
		{ID: "s2", Role: "cashier", StartTime: "09:00", EndTime: "11:00"},
		{ID: "s3", Role: "cashier", StartTime: "12:00", EndTime: "14:00"},
	}
	in.CoverageRequirements = []models.CoverageRequirement{
		{Date: monday, ShiftID: "s1"},
		{Date: tuesday, ShiftID: "s2"},
		{Date: wednesday, ShiftID: "s3"},
	}
	in.Constraints = models.SchedulingConstraints{MaxConsecutiveDays: 2}

	res := generate(t, in)

	require.Len(t, res.Assignments, 2)
	require.Len(t, res.UnassignedShifts, 1)
	assert.Equal(t, wednesday, res.UnassignedShifts[0].Date, "third consecutive day exceeds the limit")
}

func TestConsecutiveDaysCountsBothDirections(t *testing.T) {
	in := cashierInput()
	in.Availability = []models.AvailabilityPattern{
		{EmployeeID: "e1", DayOfWeek: 1, StartTime: "00:00", EndTime: "23:59"},
		{EmployeeID: "e1", DayOfWeek: 2, StartTime: "00:00", EndTime: "23:59"},
		{EmployeeID: "e1", DayOfWeek: 3, StartTime: "00:00", EndTime: "23:59"},
	}
	in.Shifts = []models.Shift{
		{ID: "s1", Role: "cashier", StartTime: "06:00", EndTime: "08:00"},
		{ID: "s2", Role: "cashier", StartTime: "09:00", EndTime: "11:00"},
		{ID: "s3", Role: "cashier", StartTime: "12:00", EndTime: "14:00"},
	}
	// Tuesday and Wednesday are already committed; the Monday candidate
	// extends the run forward to 3 days
	in.CurrentAssignments = []models.ShiftAssignment{
		{EmployeeID: "e1", ShiftID: "s2", Date: tuesday},
		{EmployeeID: "e1", ShiftID: "s3", Date: wednesday},
	}
	in.CoverageRequirements = []models.CoverageRequirement{
		{Date: monday, ShiftID: "s1"},
	}
	in.Constraints = models.SchedulingConstraints{MaxConsecutiveDays: 2}

	res := generate(t, in)

	assert.Empty(t, res.Assignments)
	require.Len(t, res.UnassignedShifts, 1)
	assert.Equal(t, monday, res.UnassignedShifts[0].Date)
}

func TestWeeklyHourCap(t *testing.T) {
	in := cashierInput()
	in.Employees[0].MaxHoursPerWeek = 6
	in.Availability = []models.AvailabilityPattern{
		{EmployeeID: "e1", DayOfWeek: 1, StartTime: "00:00", EndTime: "23:59"},
		{EmployeeID: "e1", DayOfWeek: 2, StartTime: "00:00", EndTime: "23:59"},
	}
	in.Shifts = []models.Shift{
		{ID: "s1", Role: "cashier", StartTime: "08:00", EndTime: "12:00"},
		{ID: "s2", Role: "cashier", StartTime: "13:00", EndTime: "17:00"},
	}
	in.CoverageRequirements = []models.CoverageRequirement{
		{Date: monday, ShiftID: "s1"},
		{Date: tuesday, ShiftID: "s2"},
	}

	res := generate(t, in)

	require.Len(t, res.Assignments, 1, "second 4h shift would exceed the 6h weekly cap")
	assert.Equal(t, "s1", res.Assignments[0].ShiftID)
}

func TestUnsetConstraintsAreUnconstrained(t *testing.T) {
	in := cashierInput()
	in.Availability = []models.AvailabilityPattern{
		{EmployeeID: "e1", DayOfWeek: 1, StartTime: "00:00", EndTime: "23:59"},
	}
	in.Shifts = []models.Shift{
		{ID: "s1", Role: "cashier", StartTime: "06:00", EndTime: "12:00"},
		{ID: "s2", Role: "cashier", StartTime: "12:00", EndTime: "18:00"},
		{ID: "s3", Role: "cashier", StartTime: "18:00", EndTime: "23:00"},
	}
	in.CoverageRequirements = []models.CoverageRequirement{
		{Date: monday, ShiftID: "s1"},
		{Date: monday, ShiftID: "s2"},
		{Date: monday, ShiftID: "s3"},
	}

	res := generate(t, in)
	assert.Len(t, res.Assignments, 3, "17h in one day is fine with no constraints set")
}
