package testutil

import (
	"context"
	"fmt"
	"time"

	"github.com/shayacohen/limud/internal/domain"
	"github.com/shayacohen/limud/internal/hebcal"
)

// Corpus builds a numbered corpus of n units for generator tests.
func Corpus(n int) []domain.StudyUnit {
	units := make([]domain.StudyUnit, n)
	for i := range units {
		units[i] = domain.StudyUnit(fmt.Sprintf("Unit %d", i+1))
	}
	return units
}

// Date is shorthand for a UTC midnight date.
func Date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// FixtureSchedule returns a small saved-schedule fixture.
func FixtureSchedule(id, name string) *domain.Schedule {
	return &domain.Schedule{
		ID:          id,
		Name:        name,
		Granularity: domain.GranularityChapter,
		StartDate:   Date(2024, time.January, 1),
		EndDate:     Date(2024, time.January, 14),
		Weekdays:    domain.NewWeekdaySet(time.Sunday, time.Tuesday),
		Days: []domain.ScheduleDay{
			{Date: Date(2024, time.January, 2), Weekday: "Tuesday", Units: []domain.StudyUnit{"Ruth 1", "Ruth 2"}},
			{Date: Date(2024, time.January, 7), Weekday: "Sunday", Units: []domain.StudyUnit{"Ruth 3", "Ruth 4"}},
		},
		TotalUnits:     4,
		TotalStudyDays: 4,
		UnitsPerDay:    1,
		CreatedAt:      Date(2024, time.January, 1),
	}
}

// OffsetConverter is a deterministic hebcal.Converter fake: the Hebrew year
// is the Gregorian year plus 3760, month and day carry over unchanged, and
// the round trip is exact. Good enough for contract tests that only need
// idempotent, invertible conversions.
type OffsetConverter struct {
	// Err, when set, is returned from every call.
	Err error
}

var hebrewMonthNames = []string{
	"Nisan", "Iyyar", "Sivan", "Tamuz", "Av", "Elul",
	"Tishrei", "Cheshvan", "Kislev", "Tevet", "Sh'vat", "Adar",
}

func (c *OffsetConverter) GregorianToHebrew(_ context.Context, t time.Time) (hebcal.HebrewDate, error) {
	if c.Err != nil {
		return hebcal.HebrewDate{}, c.Err
	}
	return hebcal.HebrewDate{
		Year:  t.Year() + 3760,
		Month: hebrewMonthNames[int(t.Month())-1],
		Day:   t.Day(),
	}, nil
}

func (c *OffsetConverter) HebrewToGregorian(_ context.Context, d hebcal.HebrewDate) (time.Time, error) {
	if c.Err != nil {
		return time.Time{}, c.Err
	}
	month := 0
	for i, name := range hebrewMonthNames {
		if name == d.Month {
			month = i + 1
			break
		}
	}
	if month == 0 {
		return time.Time{}, hebcal.ErrBadResponse
	}
	return time.Date(d.Year-3760, time.Month(month), d.Day, 0, 0, 0, 0, time.UTC), nil
}
