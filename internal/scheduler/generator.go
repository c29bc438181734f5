package scheduler

import (
	"fmt"
	"time"

	"github.com/shayacohen/limud/internal/domain"
)

// Parameters is one generation request. Exactly one pacing mode must be
// set: a non-nil EndDate distributes the corpus evenly across the range,
// a positive UnitsPerDay walks forward at a fixed rate until exhaustion.
type Parameters struct {
	Corpus      []domain.StudyUnit
	StartDate   time.Time
	EndDate     *time.Time
	UnitsPerDay int
	Weekdays    domain.WeekdaySet
}

// Generate produces a day-by-day schedule from the given parameters.
// It is pure: identical parameters yield identical schedules, and the
// returned schedule carries no identity or timestamps (the caller adds
// those). All parameter validation happens before any day is walked.
func Generate(p Parameters) (*domain.Schedule, error) {
	if err := validate(p); err != nil {
		return nil, err
	}

	start := dateOnly(p.StartDate)
	if p.EndDate != nil {
		return generateToEndDate(p.Corpus, start, dateOnly(*p.EndDate), p.Weekdays)
	}
	return generateAtRate(p.Corpus, start, p.UnitsPerDay, p.Weekdays)
}

func validate(p Parameters) error {
	if len(p.Corpus) == 0 {
		return ErrEmptyCorpus
	}
	if p.Weekdays.Count() == 0 {
		return ErrInvalidWeekdays
	}
	if p.EndDate == nil && p.UnitsPerDay == 0 {
		return ErrMissingPacingMode
	}
	if p.EndDate != nil && p.UnitsPerDay != 0 {
		return ErrConflictingPacing
	}
	if p.EndDate != nil {
		start, end := dateOnly(p.StartDate), dateOnly(*p.EndDate)
		if !start.Before(end) {
			return fmt.Errorf("%w: end date %s is not after start date %s",
				ErrInvalidDateRange, end.Format(dateLayout), start.Format(dateLayout))
		}
		if countStudyDays(start, end, p.Weekdays) == 0 {
			return fmt.Errorf("%w: no eligible study days between %s and %s",
				ErrInvalidDateRange, start.Format(dateLayout), end.Format(dateLayout))
		}
	}
	if p.EndDate == nil && p.UnitsPerDay < 1 {
		return ErrInvalidRate
	}
	return nil
}

// generateToEndDate walks every calendar day of [start, end]. On each
// eligible day it assigns ceil(remaining / eligibleDaysLeft) units, so
// rounding remainders are spread over the range instead of piling up on
// the final day. The walk stops as soon as the corpus runs out.
func generateToEndDate(corpus []domain.StudyUnit, start, end time.Time, weekdays domain.WeekdaySet) (*domain.Schedule, error) {
	totalStudyDays := countStudyDays(start, end, weekdays)

	sched := &domain.Schedule{
		StartDate:      start,
		EndDate:        end,
		Weekdays:       weekdays,
		TotalUnits:     len(corpus),
		TotalStudyDays: totalStudyDays,
		UnitsPerDay:    ceilDiv(len(corpus), totalStudyDays),
	}

	idx := 0
	for cur := start; !cur.After(end) && idx < len(corpus); cur = cur.AddDate(0, 0, 1) {
		if !weekdays.Contains(cur.Weekday()) {
			continue
		}
		daysLeft := countStudyDays(cur, end, weekdays)
		if daysLeft == 0 {
			break
		}
		take := ceilDiv(len(corpus)-idx, daysLeft)
		sched.Days = append(sched.Days, newDay(cur, corpus[idx:idx+take]))
		idx += take
	}

	return sched, nil
}

// generateAtRate walks forward from start assigning unitsPerDay units on
// each eligible day until the corpus is exhausted. The end date is derived
// from the final assignment.
func generateAtRate(corpus []domain.StudyUnit, start time.Time, unitsPerDay int, weekdays domain.WeekdaySet) (*domain.Schedule, error) {
	sched := &domain.Schedule{
		StartDate:   start,
		Weekdays:    weekdays,
		TotalUnits:  len(corpus),
		UnitsPerDay: unitsPerDay,
	}

	idx := 0
	for cur := start; idx < len(corpus); cur = cur.AddDate(0, 0, 1) {
		if !weekdays.Contains(cur.Weekday()) {
			continue
		}
		take := unitsPerDay
		if rest := len(corpus) - idx; rest < take {
			take = rest
		}
		sched.Days = append(sched.Days, newDay(cur, corpus[idx:idx+take]))
		idx += take
	}

	sched.TotalStudyDays = len(sched.Days)
	sched.EndDate = sched.Days[len(sched.Days)-1].Date
	return sched, nil
}

func newDay(date time.Time, units []domain.StudyUnit) domain.ScheduleDay {
	day := domain.ScheduleDay{
		Date:    date,
		Weekday: date.Weekday().String(),
		Units:   make([]domain.StudyUnit, len(units)),
	}
	copy(day.Units, units)
	return day
}

// countStudyDays counts calendar days in [start, end] whose weekday is in
// the set. Both bounds inclusive.
func countStudyDays(start, end time.Time, weekdays domain.WeekdaySet) int {
	count := 0
	for cur := start; !cur.After(end); cur = cur.AddDate(0, 0, 1) {
		if weekdays.Contains(cur.Weekday()) {
			count++
		}
	}
	return count
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

const dateLayout = "2006-01-02"

// dateOnly truncates a timestamp to midnight UTC so date arithmetic is
// immune to time-of-day and zone differences in the inputs.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
