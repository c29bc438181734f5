package domain

import "time"

// ScheduleDay is one study day: a calendar date and the units assigned to it.
// Units is never empty; days with nothing assigned are omitted from the
// schedule entirely.
type ScheduleDay struct {
	Date    time.Time
	Weekday string
	Units   []StudyUnit
}

// Schedule is a complete generated study plan. It is immutable once
// generated; changing any input requires regenerating from scratch.
type Schedule struct {
	ID          string
	Name        string
	Granularity Granularity

	StartDate time.Time
	EndDate   time.Time
	Weekdays  WeekdaySet

	Days []ScheduleDay

	// Derived metadata, fixed at generation time.
	TotalUnits     int
	TotalStudyDays int
	UnitsPerDay    int

	CreatedAt time.Time
}

// UnitCount returns the number of units actually assigned across all days.
func (s *Schedule) UnitCount() int {
	n := 0
	for _, d := range s.Days {
		n += len(d.Units)
	}
	return n
}

// DisplayID returns a short identifier for display, truncating the UUID.
func (s *Schedule) DisplayID() string {
	if len(s.ID) >= 8 {
		return s.ID[:8]
	}
	return s.ID
}
