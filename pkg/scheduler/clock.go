package scheduler

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// ParseTimeOfDay parses "HH:MM" or "HH:MM:SS" into minutes since midnight.
func ParseTimeOfDay(s string) (int, error) {
	t, err := time.Parse("15:04:05", s)
	if err != nil {
		t, err = time.Parse("15:04", s)
	}
	if err != nil {
		return 0, fmt.Errorf("invalid time of day %q", s)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// window is a half-open [start,end) time-of-day range in minutes
type window struct {
	start int
	end   int
}

func (w window) hours() float64 {
	return float64(w.end-w.start) / 60.0
}

// overlaps reports whether two windows intersect, treating partial overlap,
// containment and exact match all as conflicts.
func (w window) overlaps(o window) bool {
	return w.start < o.end && o.start < w.end
}

// contains reports whether o lies entirely within w
func (w window) contains(o window) bool {
	return w.start <= o.start && o.end <= w.end
}

func parseWindow(start, end string) (window, error) {
	s, err := ParseTimeOfDay(start)
	if err != nil {
		return window{}, err
	}
	e, err := ParseTimeOfDay(end)
	if err != nil {
		return window{}, err
	}
	return window{start: s, end: e}, nil
}

func parseDate(s string) (time.Time, error) {
	d, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q", s)
	}
	return d, nil
}

func absHours(minutes int) float64 {
	if minutes < 0 {
		minutes = -minutes
	}
	return float64(minutes) / 60.0
}
