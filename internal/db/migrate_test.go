package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_CreatesTables(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	for _, table := range []string{"schedules", "schedule_days"} {
		var name string
		err := database.QueryRow(
			`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table,
		).Scan(&name)
		assert.NoError(t, err, "table %s must exist", table)
	}
}

func TestMigrate_Idempotent(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	// Running migrations again must not fail.
	assert.NoError(t, Migrate(database))
}

func TestMigrate_CascadeDeleteDays(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	_, err = database.Exec(`INSERT INTO schedules
		(id, name, granularity, start_date, end_date, weekdays, total_units, total_study_days, units_per_day, created_at)
		VALUES ('s1', 'test', 'chapter', '2024-01-01', '2024-02-01', 'Sun', 10, 5, 2, '2024-01-01T00:00:00Z')`)
	require.NoError(t, err)
	_, err = database.Exec(`INSERT INTO schedule_days (schedule_id, day_index, date, weekday, units)
		VALUES ('s1', 0, '2024-01-07', 'Sunday', '["Genesis 1"]')`)
	require.NoError(t, err)

	_, err = database.Exec(`DELETE FROM schedules WHERE id = 's1'`)
	require.NoError(t, err)

	var count int
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM schedule_days`).Scan(&count))
	assert.Equal(t, 0, count)
}
