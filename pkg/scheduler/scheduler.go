package scheduler

import (
	"fmt"
	"sort"
	"time"

	"github.com/curiouspeterson/schedule-app-router/pkg/models"
)

// Generator runs one schedule generation pass over an immutable input
// snapshot. All mutable state for the run — the committed assignments and the
// per-employee tallies — is owned by the Generator and discarded with it, so
// concurrent runs over separate snapshots need no coordination.
type Generator struct {
	ScheduleID  string
	WeekStart   time.Time
	Employees   map[string]*models.Employee
	Shifts      map[string]*models.Shift
	Constraints models.SchedulingConstraints

	employeeIDs  []string                  // sorted for deterministic iteration
	availability map[string]map[int]window // employee id -> day of week -> window
	shiftWindows map[string]window
	slots        []slot

	assignments []models.ShiftAssignment
	unassigned  []models.CoverageRequirement
	committed   map[string][]booking
	workedDates map[string]map[string]bool
	hours       map[string]float64
	counts      map[string]int
}

// slot is one normalized unit of demand: a requirement expanded to a single
// headcount, with its shift, effective role and parsed date/window resolved.
type slot struct {
	req   models.CoverageRequirement
	shift *models.Shift
	role  string
	date  time.Time
	win   window
}

// booking is a committed claim on an employee's time
type booking struct {
	date time.Time
	win  window
}

// NewGenerator validates and indexes the input snapshot. Malformed records —
// duplicate ids, unparseable times or dates, a shift ending before it starts,
// a requirement referencing an unknown shift — fail fast here; an infeasible
// but well-formed snapshot is never an error.
func NewGenerator(in models.ScheduleInput) (*Generator, error) {
	g := &Generator{
		ScheduleID:   in.ScheduleID,
		Employees:    make(map[string]*models.Employee, len(in.Employees)),
		Shifts:       make(map[string]*models.Shift, len(in.Shifts)),
		Constraints:  in.Constraints,
		availability: make(map[string]map[int]window),
		shiftWindows: make(map[string]window, len(in.Shifts)),
		assignments:  []models.ShiftAssignment{},
		unassigned:   []models.CoverageRequirement{},
		committed:    make(map[string][]booking),
		workedDates:  make(map[string]map[string]bool),
		hours:        make(map[string]float64),
		counts:       make(map[string]int),
	}

	if in.WeekStart != "" {
		ws, err := parseDate(in.WeekStart)
		if err != nil {
			return nil, fmt.Errorf("week start: %w", err)
		}
		g.WeekStart = ws
	}

	for i := range in.Employees {
		emp := &in.Employees[i]
		if _, dup := g.Employees[emp.ID]; dup {
			return nil, fmt.Errorf("duplicate employee id %q", emp.ID)
		}
		g.Employees[emp.ID] = emp
		g.employeeIDs = append(g.employeeIDs, emp.ID)
	}
	sort.Strings(g.employeeIDs)

	for i := range in.Shifts {
		sh := &in.Shifts[i]
		if _, dup := g.Shifts[sh.ID]; dup {
			return nil, fmt.Errorf("duplicate shift id %q", sh.ID)
		}
		win, err := parseWindow(sh.StartTime, sh.EndTime)
		if err != nil {
			return nil, fmt.Errorf("shift %q: %w", sh.ID, err)
		}
		if win.end <= win.start {
			return nil, fmt.Errorf("shift %q: end time %s must be after start time %s", sh.ID, sh.EndTime, sh.StartTime)
		}
		g.Shifts[sh.ID] = sh
		g.shiftWindows[sh.ID] = win
	}

	for _, ap := range in.Availability {
		if ap.DayOfWeek < 0 || ap.DayOfWeek > 6 {
			return nil, fmt.Errorf("availability for employee %q: day of week %d out of range", ap.EmployeeID, ap.DayOfWeek)
		}
		win, err := parseWindow(ap.StartTime, ap.EndTime)
		if err != nil {
			return nil, fmt.Errorf("availability for employee %q: %w", ap.EmployeeID, err)
		}
		if win.end <= win.start {
			return nil, fmt.Errorf("availability for employee %q: end time %s must be after start time %s", ap.EmployeeID, ap.EndTime, ap.StartTime)
		}
		if _, known := g.Employees[ap.EmployeeID]; !known {
			// availability rows for workers outside this snapshot are normal
			continue
		}
		if g.availability[ap.EmployeeID] == nil {
			g.availability[ap.EmployeeID] = make(map[int]window)
		}
		if _, dup := g.availability[ap.EmployeeID][ap.DayOfWeek]; dup {
			return nil, fmt.Errorf("availability for employee %q: duplicate pattern for day %d", ap.EmployeeID, ap.DayOfWeek)
		}
		g.availability[ap.EmployeeID][ap.DayOfWeek] = win
	}

	for _, req := range in.CoverageRequirements {
		sh, ok := g.Shifts[req.ShiftID]
		if !ok {
			return nil, fmt.Errorf("coverage requirement on %s: unknown shift id %q", req.Date, req.ShiftID)
		}
		date, err := parseDate(req.Date)
		if err != nil {
			return nil, fmt.Errorf("coverage requirement for shift %q: %w", req.ShiftID, err)
		}
		role := req.Role
		if role == "" {
			role = sh.Role
		}
		count := req.EmployeeCount
		if count < 1 {
			count = 1
		}
		for i := 0; i < count; i++ {
			g.slots = append(g.slots, slot{
				req:   req,
				shift: sh,
				role:  role,
				date:  date,
				win:   g.shiftWindows[req.ShiftID],
			})
		}
	}

	// Fixed processing order: earlier dates first, then earlier shift starts.
	// Shift id is the final tie-break so the order is total.
	sort.SliceStable(g.slots, func(i, j int) bool {
		a, b := g.slots[i], g.slots[j]
		if !a.date.Equal(b.date) {
			return a.date.Before(b.date)
		}
		if a.win.start != b.win.start {
			return a.win.start < b.win.start
		}
		return a.shift.ID < b.shift.ID
	})

	if err := g.prefill(in.CurrentAssignments); err != nil {
		return nil, err
	}
	return g, nil
}

// prefill records assignments committed before this run so they count against
// overlap, rest and hour checks
func (g *Generator) prefill(assignments []models.ShiftAssignment) error {
	for _, asgn := range assignments {
		if _, ok := g.Employees[asgn.EmployeeID]; !ok {
			return fmt.Errorf("current assignment references unknown employee id %q", asgn.EmployeeID)
		}
		win, ok := g.shiftWindows[asgn.ShiftID]
		if !ok {
			return fmt.Errorf("current assignment references unknown shift id %q", asgn.ShiftID)
		}
		date, err := parseDate(asgn.Date)
		if err != nil {
			return fmt.Errorf("current assignment for employee %q: %w", asgn.EmployeeID, err)
		}
		g.book(asgn.EmployeeID, date, win)
	}
	return nil
}

// Generate walks the normalized requirements in order, committing the first
// candidate that passes both the eligibility and constraint checks. A
// requirement with no passing candidate is recorded as unassigned and
// processing continues; there is no backtracking across earlier commits.
func (g *Generator) Generate() models.ScheduleResult {
	for _, sl := range g.slots {
		emp := g.pickCandidate(sl)
		if emp == nil {
			g.unassigned = append(g.unassigned, sl.req)
			continue
		}
		g.assignments = append(g.assignments, models.ShiftAssignment{
			ScheduleID: g.ScheduleID,
			EmployeeID: emp.ID,
			ShiftID:    sl.shift.ID,
			Date:       sl.req.Date,
		})
		g.book(emp.ID, sl.date, sl.win)
	}

	stats := make(map[string]models.EmployeeStats, len(g.employeeIDs))
	for _, id := range g.employeeIDs {
		stats[id] = models.EmployeeStats{
			AssignedShiftCount: g.counts[id],
			AssignedHours:      g.hours[id],
		}
	}

	return models.ScheduleResult{
		Assignments:      g.assignments,
		UnassignedShifts: g.unassigned,
		EmployeeStats:    stats,
	}
}

// pickCandidate ranks role-matching employees by committed hours ascending so
// load spreads evenly, and returns the first one passing all checks
func (g *Generator) pickCandidate(sl slot) *models.Employee {
	pool := make([]*models.Employee, 0, len(g.employeeIDs))
	for _, id := range g.employeeIDs {
		if emp := g.Employees[id]; emp.Role == sl.role {
			pool = append(pool, emp)
		}
	}
	sort.SliceStable(pool, func(i, j int) bool {
		hi, hj := g.hours[pool[i].ID], g.hours[pool[j].ID]
		if hi != hj {
			return hi < hj
		}
		return pool[i].ID < pool[j].ID
	})

	for _, emp := range pool {
		if g.IsEligible(emp, sl) && g.SatisfiesConstraints(emp, sl) {
			return emp
		}
	}
	return nil
}

func (g *Generator) book(empID string, date time.Time, win window) {
	g.committed[empID] = append(g.committed[empID], booking{date: date, win: win})
	if g.workedDates[empID] == nil {
		g.workedDates[empID] = make(map[string]bool)
	}
	g.workedDates[empID][date.Format(dateLayout)] = true
	g.hours[empID] += win.hours()
	g.counts[empID]++
}
