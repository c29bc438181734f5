package domain

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// WeekdaySet is the set of weekdays on which studying happens.
// time.Weekday numbering is used throughout (Sunday = 0).
type WeekdaySet map[time.Weekday]bool

// NewWeekdaySet builds a WeekdaySet from the given weekdays.
func NewWeekdaySet(days ...time.Weekday) WeekdaySet {
	s := make(WeekdaySet, len(days))
	for _, d := range days {
		s[d] = true
	}
	return s
}

// ParseWeekdaySet parses a comma-separated list of weekday names or
// indices (0-6, 0 = Sunday), e.g. "sun,tue,thu" or "0,2,4".
func ParseWeekdaySet(spec string) (WeekdaySet, error) {
	s := make(WeekdaySet)
	for _, part := range strings.Split(spec, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		d, err := parseWeekday(part)
		if err != nil {
			return nil, err
		}
		s[d] = true
	}
	return s, nil
}

var weekdayNames = map[string]time.Weekday{
	"sun": time.Sunday, "sunday": time.Sunday,
	"mon": time.Monday, "monday": time.Monday,
	"tue": time.Tuesday, "tuesday": time.Tuesday,
	"wed": time.Wednesday, "wednesday": time.Wednesday,
	"thu": time.Thursday, "thursday": time.Thursday,
	"fri": time.Friday, "friday": time.Friday,
	"sat": time.Saturday, "saturday": time.Saturday,
}

func parseWeekday(s string) (time.Weekday, error) {
	if d, ok := weekdayNames[strings.ToLower(s)]; ok {
		return d, nil
	}
	if len(s) == 1 && s[0] >= '0' && s[0] <= '6' {
		return time.Weekday(s[0] - '0'), nil
	}
	return 0, fmt.Errorf("invalid weekday %q (use sun..sat or 0..6)", s)
}

// Contains reports whether d is an active study day.
func (s WeekdaySet) Contains(d time.Weekday) bool { return s[d] }

// Count returns the number of active weekdays.
func (s WeekdaySet) Count() int { return len(s) }

// Days returns the active weekdays in ascending order.
func (s WeekdaySet) Days() []time.Weekday {
	days := make([]time.Weekday, 0, len(s))
	for d := range s {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i] < days[j] })
	return days
}

// String renders the set as a comma-separated list of short day names.
func (s WeekdaySet) String() string {
	names := make([]string, 0, len(s))
	for _, d := range s.Days() {
		names = append(names, d.String()[:3])
	}
	return strings.Join(names, ",")
}
