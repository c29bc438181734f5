package export

import (
	"strings"
	"testing"

	"github.com/shayacohen/limud/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteCSV(t *testing.T) {
	var b strings.Builder
	require.NoError(t, WriteCSV(&b, testutil.FixtureSchedule("id-1", "ruth")))

	lines := strings.Split(strings.TrimSpace(b.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Date,Day of Week,Reading", lines[0])
	assert.Equal(t, `2024-01-02,Tuesday,"Ruth 1, Ruth 2"`, lines[1])
	assert.Equal(t, `2024-01-07,Sunday,"Ruth 3, Ruth 4"`, lines[2])
}

func TestWriteICS(t *testing.T) {
	var b strings.Builder
	require.NoError(t, WriteICS(&b, testutil.FixtureSchedule("id-1", "ruth")))
	out := b.String()

	assert.True(t, strings.HasPrefix(out, "BEGIN:VCALENDAR\r\n"))
	assert.True(t, strings.HasSuffix(out, "END:VCALENDAR\r\n"))
	assert.Equal(t, 2, strings.Count(out, "BEGIN:VEVENT"))
	assert.Contains(t, out, "DTSTART;VALUE=DATE:20240102")
	assert.Contains(t, out, "DTEND;VALUE=DATE:20240103")
	assert.Contains(t, out, `DESCRIPTION:Ruth 1\, Ruth 2`)
	assert.Contains(t, out, "UID:20240102-0@limud")
}

func TestWriteICS_EscapesSummary(t *testing.T) {
	s := testutil.FixtureSchedule("id-1", "ruth; fast, deep")
	var b strings.Builder
	require.NoError(t, WriteICS(&b, s))
	assert.Contains(t, b.String(), `SUMMARY:ruth\; fast\, deep study schedule`)
}

func TestWriteCSV_EveryDayPresent(t *testing.T) {
	s := testutil.FixtureSchedule("id-1", "ruth")
	var b strings.Builder
	require.NoError(t, WriteCSV(&b, s))
	for _, day := range s.Days {
		assert.Contains(t, b.String(), day.Date.Format("2006-01-02"))
	}
}
