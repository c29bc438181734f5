package formatter

import (
	"testing"
	"time"

	"github.com/shayacohen/limud/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSchedule() *domain.Schedule {
	wd, _ := domain.ParseWeekdaySet("sun,tue")
	return &domain.Schedule{
		ID:          "abcdef12-3456-7890-abcd-ef1234567890",
		Name:        "ruth-review",
		Granularity: domain.GranularityChapter,
		StartDate:   time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2024, 1, 9, 0, 0, 0, 0, time.UTC),
		Weekdays:    wd,
		Days: []domain.ScheduleDay{
			{Date: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), Weekday: "Tuesday", Units: []domain.StudyUnit{"Ruth 1", "Ruth 2"}},
			{Date: time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC), Weekday: "Sunday", Units: []domain.StudyUnit{"Ruth 3", "Ruth 4"}},
		},
		TotalUnits:     4,
		TotalStudyDays: 2,
		UnitsPerDay:    2,
		CreatedAt:      time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestFormatScheduleList_TruncatesID(t *testing.T) {
	out := FormatScheduleList([]*domain.Schedule{testSchedule()})

	assert.Contains(t, out, "abcdef12")
	assert.NotContains(t, out, "abcdef12-3456")
	assert.Contains(t, out, "ruth-review")
}

func TestFormatScheduleSummary_ShowsPaceAndRange(t *testing.T) {
	out := FormatScheduleSummary(testSchedule())

	assert.Contains(t, out, "2 per day")
	assert.Contains(t, out, "Jan 2, 2024")
	assert.Contains(t, out, "Jan 9, 2024")
	assert.Contains(t, out, "Sun,Tue")
}

func TestFormatScheduleDays_JoinsUnits(t *testing.T) {
	out := FormatScheduleDays(testSchedule())

	assert.Contains(t, out, "2024-01-02")
	assert.Contains(t, out, "Ruth 1, Ruth 2")
	assert.Contains(t, out, "Tuesday")
}

func TestFormatMilestone_IncludesHebrewDate(t *testing.T) {
	m := &domain.HebrewMilestone{
		Gregorian:   time.Date(2020, 6, 20, 0, 0, 0, 0, time.UTC),
		HebrewYear:  5780,
		HebrewMonth: "Sivan",
		HebrewDay:   28,
	}

	out := FormatMilestone("5TH BIRTHDAY", m)

	assert.Contains(t, out, "Jun 20, 2020")
	assert.Contains(t, out, "28 Sivan 5780")
}

func TestRenderTable_AlignsColumns(t *testing.T) {
	out := RenderTable([]string{"A", "BB"}, [][]string{{"x", "y"}, {"longer", "z"}})

	require.NotEmpty(t, out)
	assert.Contains(t, out, "─")
	assert.Contains(t, out, "longer")
}
