package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/shayacohen/limud/internal/domain"
)

// HumanDate formats a date for display, e.g. "Jan 2, 2006".
func HumanDate(t time.Time) string {
	return t.Format("Jan 2, 2006")
}

// FormatScheduleList renders a styled schedule list inside a bordered box.
func FormatScheduleList(schedules []*domain.Schedule) string {
	headers := []string{"ID", "NAME", "UNITS", "DAYS", "START", "END", "PACE"}
	rows := make([][]string, 0, len(schedules))

	for _, s := range schedules {
		rows = append(rows, []string{
			TruncID(s.ID),
			Bold(s.Name),
			StyleFg.Render(string(s.Granularity)),
			fmt.Sprintf("%s %s", StyleYellow.Render(fmt.Sprintf("%d", s.TotalStudyDays)), Dim(s.Weekdays.String())),
			HumanDate(s.StartDate),
			HumanDate(s.EndDate),
			StyleGreen.Render(fmt.Sprintf("%d/day", s.UnitsPerDay)),
		})
	}

	table := RenderTable(headers, rows)
	return RenderBox("Schedules", table)
}

// FormatScheduleSummary renders the metadata card shown after generation
// and at the top of the show view.
func FormatScheduleSummary(s *domain.Schedule) string {
	var b strings.Builder

	b.WriteString(StyleBold.Render(s.Name) + "\n\n")
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("ID        "), TruncID(s.ID)))
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("UNITS     "), StyleFg.Render(fmt.Sprintf("%d %ss", s.TotalUnits, s.Granularity))))
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("STUDY DAYS"), StyleFg.Render(fmt.Sprintf("%d", s.TotalStudyDays))))
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("PACE      "), StyleGreen.Render(fmt.Sprintf("%d per day", s.UnitsPerDay))))
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("WEEKDAYS  "), StyleYellow.Render(s.Weekdays.String())))
	b.WriteString(fmt.Sprintf("%s  %s %s %s\n",
		StyleDim.Render("RANGE     "),
		StyleFg.Render(HumanDate(s.StartDate)),
		Dim("→"),
		StyleFg.Render(HumanDate(s.EndDate))))

	return RenderBox("Schedule", b.String())
}

// FormatScheduleDays renders the full day-by-day plan as a table.
func FormatScheduleDays(s *domain.Schedule) string {
	headers := []string{"DATE", "DAY", "READING"}
	rows := make([][]string, 0, len(s.Days))

	for _, d := range s.Days {
		rows = append(rows, []string{
			StyleFg.Render(d.Date.Format("2006-01-02")),
			Dim(d.Weekday),
			formatUnits(d.Units),
		})
	}

	return RenderTable(headers, rows)
}

// formatUnits joins a day's units into a single display string.
func formatUnits(units []domain.StudyUnit) string {
	parts := make([]string, len(units))
	for i, u := range units {
		parts[i] = string(u)
	}
	return strings.Join(parts, ", ")
}

// FormatMilestone renders a Hebrew milestone line, e.g. birthday anchors.
func FormatMilestone(label string, m *domain.HebrewMilestone) string {
	return fmt.Sprintf("%s  %s %s",
		StyleDim.Render(label),
		StyleFg.Render(HumanDate(m.Gregorian)),
		Dim(fmt.Sprintf("(%d %s %d)", m.HebrewDay, m.HebrewMonth, m.HebrewYear)))
}
