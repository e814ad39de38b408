package models

// Employee represents a schedulable worker
type Employee struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Role            string  `json:"role"`
	MaxHoursPerWeek float64 `json:"max_hours_per_week,omitempty"` // 0 = no weekly cap
}

// Shift defines a work slot. Times are time-of-day strings ("HH:MM" or
// "HH:MM:SS"), matching the shape of a Postgres time column.
type Shift struct {
	ID        string `json:"id"`
	Name      string `json:"name,omitempty"`
	Role      string `json:"role"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// AvailabilityPattern is a recurring weekly availability window for one
// employee. DayOfWeek runs 0 (Sunday) through 6 (Saturday); an employee with
// no pattern for a day is unavailable that day.
type AvailabilityPattern struct {
	EmployeeID string `json:"employee_id"`
	DayOfWeek  int    `json:"day_of_week"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
}

// CoverageRequirement is a staffing need: EmployeeCount workers for ShiftID
// on Date ("2006-01-02"). Role, when set, overrides the shift's nominal role.
type CoverageRequirement struct {
	ID            string `json:"id,omitempty"`
	Date          string `json:"date"`
	ShiftID       string `json:"shift_id"`
	Role          string `json:"role,omitempty"`
	EmployeeCount int    `json:"employee_count,omitempty"` // 0 is treated as 1
}

// ShiftAssignment is a committed employee-shift pairing for one date.
type ShiftAssignment struct {
	ScheduleID string `json:"schedule_id"`
	EmployeeID string `json:"employee_id"`
	ShiftID    string `json:"shift_id"`
	Date       string `json:"date"`
}

// SchedulingConstraints holds the soft limits for a run. A zero value means
// the corresponding limit is unconstrained.
type SchedulingConstraints struct {
	MaxHoursPerDay        float64 `json:"max_hours_per_day,omitempty"`
	MinHoursBetweenShifts float64 `json:"min_hours_between_shifts,omitempty"`
	MaxConsecutiveDays    int     `json:"max_consecutive_days,omitempty"`
}

// EmployeeStats summarizes one employee's workload for a run
type EmployeeStats struct {
	AssignedShiftCount int     `json:"assigned_shift_count"`
	AssignedHours      float64 `json:"assigned_hours"`
}

// ScheduleInput is the full input snapshot for one generation run
type ScheduleInput struct {
	ScheduleID           string                `json:"schedule_id"`
	WeekStart            string                `json:"week_start"`
	Employees            []Employee            `json:"employees"`
	Shifts               []Shift               `json:"shifts"`
	Availability         []AvailabilityPattern `json:"availability"`
	CoverageRequirements []CoverageRequirement `json:"coverage_requirements"`
	CurrentAssignments   []ShiftAssignment     `json:"current_assignments,omitempty"`
	Constraints          SchedulingConstraints `json:"constraints"`
}

// ScheduleResult is the engine's output: committed assignments, the
// requirements that could not be filled, and per-employee workload stats.
type ScheduleResult struct {
	Assignments      []ShiftAssignment        `json:"assignments"`
	UnassignedShifts []CoverageRequirement    `json:"unassigned_shifts"`
	EmployeeStats    map[string]EmployeeStats `json:"employee_stats"`
}
