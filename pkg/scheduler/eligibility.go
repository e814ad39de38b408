package scheduler

import "github.com/curiouspeterson/schedule-app-router/pkg/models"

// IsEligible applies the hard checks for handing the slot's shift to emp:
// role match, an availability window for that weekday fully containing the
// shift, and no clash with any committed booking. Missing availability is a
// normal ineligible result, never an error.
func (g *Generator) IsEligible(emp *models.Employee, sl slot) bool {
	if emp.Role != sl.role {
		return false
	}

	avail, ok := g.availability[emp.ID][int(sl.date.Weekday())]
	if !ok || !avail.contains(sl.win) {
		return false
	}

	// Double-booking compares time-of-day extents regardless of date, the
	// same scope the rest-gap check uses.
	for _, b := range g.committed[emp.ID] {
		if b.win.overlaps(sl.win) {
			return false
		}
	}
	return true
}
