package domain

import "time"

// HebrewMilestone is the resolved Gregorian date of a Hebrew-calendar
// anniversary (e.g. a 5th Hebrew birthday). It comes from the external
// conversion provider and is treated as authoritative once resolved.
type HebrewMilestone struct {
	Gregorian   time.Time
	HebrewYear  int
	HebrewMonth string
	HebrewDay   int
}
