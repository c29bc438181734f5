package db

import (
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS schedules (
		id               TEXT PRIMARY KEY,
		name             TEXT NOT NULL UNIQUE,
		granularity      TEXT NOT NULL
		                 CHECK(granularity IN ('chapter','verse','mishnah')),
		start_date       TEXT NOT NULL,
		end_date         TEXT NOT NULL,
		weekdays         TEXT NOT NULL,
		total_units      INTEGER NOT NULL,
		total_study_days INTEGER NOT NULL,
		units_per_day    INTEGER NOT NULL,
		created_at       TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS schedule_days (
		schedule_id TEXT NOT NULL REFERENCES schedules(id) ON DELETE CASCADE,
		day_index   INTEGER NOT NULL,
		date        TEXT NOT NULL,
		weekday     TEXT NOT NULL,
		units       TEXT NOT NULL,
		PRIMARY KEY (schedule_id, day_index)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_schedule_days_date ON schedule_days(schedule_id, date)`,
}
