package scheduler

import "github.com/curiouspeterson/schedule-app-router/pkg/models"

// SatisfiesConstraints applies the soft limits to a candidate that already
// passed eligibility. Each limit is skipped when unset.
func (g *Generator) SatisfiesConstraints(emp *models.Employee, sl slot) bool {
	return g.fitsWeeklyCap(emp, sl) &&
		g.fitsDailyHours(emp, sl) &&
		g.fitsRestGap(emp, sl) &&
		g.fitsConsecutiveDays(emp, sl)
}

func (g *Generator) fitsWeeklyCap(emp *models.Employee, sl slot) bool {
	if emp.MaxHoursPerWeek <= 0 {
		return true
	}
	return g.hours[emp.ID]+sl.win.hours() <= emp.MaxHoursPerWeek
}

func (g *Generator) fitsDailyHours(emp *models.Employee, sl slot) bool {
	limit := g.Constraints.MaxHoursPerDay
	if limit <= 0 {
		return true
	}
	total := sl.win.hours()
	for _, b := range g.committed[emp.ID] {
		if b.date.Equal(sl.date) {
			total += b.win.hours()
		}
	}
	return total <= limit
}

func (g *Generator) fitsRestGap(emp *models.Employee, sl slot) bool {
	limit := g.Constraints.MinHoursBetweenShifts
	if limit <= 0 {
		return true
	}
	for _, b := range g.committed[emp.ID] {
		// gap is measured on clock times in both orderings, independent of
		// date, matching the double-booking check's scope
		if absHours(sl.win.start-b.win.end) < limit || absHours(b.win.start-sl.win.end) < limit {
			return false
		}
	}
	return true
}

func (g *Generator) fitsConsecutiveDays(emp *models.Employee, sl slot) bool {
	limit := g.Constraints.MaxConsecutiveDays
	if limit <= 0 {
		return true
	}
	worked := g.workedDates[emp.ID]
	run := 1
	for d := sl.date.AddDate(0, 0, -1); worked[d.Format(dateLayout)]; d = d.AddDate(0, 0, -1) {
		run++
	}
	for d := sl.date.AddDate(0, 0, 1); worked[d.Format(dateLayout)]; d = d.AddDate(0, 0, 1) {
		run++
	}
	return run <= limit
}
