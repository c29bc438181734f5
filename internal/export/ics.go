package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/shayacohen/limud/internal/domain"
)

const icsDateLayout = "20060102"

// WriteICS writes the schedule as an iCalendar file with one all-day event
// per study day. The description carries the day's readings; DTEND is the
// following day, as RFC 5545 requires for all-day events.
func WriteICS(w io.Writer, s *domain.Schedule) error {
	var b strings.Builder

	writeLine(&b, "BEGIN:VCALENDAR")
	writeLine(&b, "VERSION:2.0")
	writeLine(&b, "PRODID:-//limud//Study Schedule//EN")
	writeLine(&b, "CALSCALE:GREGORIAN")
	writeLine(&b, "METHOD:PUBLISH")

	for i, day := range s.Days {
		units := make([]string, len(day.Units))
		for j, u := range day.Units {
			units[j] = string(u)
		}

		writeLine(&b, "BEGIN:VEVENT")
		writeLine(&b, fmt.Sprintf("UID:%s-%d@limud", day.Date.Format(icsDateLayout), i))
		writeLine(&b, fmt.Sprintf("DTSTAMP:%sT000000Z", s.CreatedAt.Format(icsDateLayout)))
		writeLine(&b, fmt.Sprintf("DTSTART;VALUE=DATE:%s", day.Date.Format(icsDateLayout)))
		writeLine(&b, fmt.Sprintf("DTEND;VALUE=DATE:%s", day.Date.AddDate(0, 0, 1).Format(icsDateLayout)))
		writeLine(&b, "SUMMARY:"+escapeText(s.Name+" study schedule"))
		writeLine(&b, "DESCRIPTION:"+escapeText(strings.Join(units, ", ")))
		writeLine(&b, "END:VEVENT")
	}

	writeLine(&b, "END:VCALENDAR")

	_, err := io.WriteString(w, b.String())
	return err
}

// writeLine appends an iCalendar content line with CRLF termination.
func writeLine(b *strings.Builder, line string) {
	b.WriteString(line)
	b.WriteString("\r\n")
}

// escapeText escapes commas, semicolons, backslashes, and newlines per
// RFC 5545 §3.3.11.
func escapeText(s string) string {
	r := strings.NewReplacer(`\`, `\\`, ";", `\;`, ",", `\,`, "\n", `\n`)
	return r.Replace(s)
}
