package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/shayacohen/limud/internal/domain"
)

const dateLayout = "2006-01-02"

// WriteCSV writes one row per study day: date, weekday name, and the day's
// readings joined with ", ".
func WriteCSV(w io.Writer, s *domain.Schedule) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"Date", "Day of Week", "Reading"}); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	for _, day := range s.Days {
		units := make([]string, len(day.Units))
		for i, u := range day.Units {
			units[i] = string(u)
		}
		row := []string{day.Date.Format(dateLayout), day.Weekday, strings.Join(units, ", ")}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing csv row for %s: %w", row[0], err)
		}
	}

	cw.Flush()
	return cw.Error()
}
