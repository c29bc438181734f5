package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shayacohen/limud/internal/domain"
)

const dateLayout = "2006-01-02"

// SQLiteScheduleRepo implements ScheduleRepo using a SQLite database.
type SQLiteScheduleRepo struct {
	db *sql.DB
}

// NewSQLiteScheduleRepo creates a new SQLiteScheduleRepo.
func NewSQLiteScheduleRepo(db *sql.DB) *SQLiteScheduleRepo {
	return &SQLiteScheduleRepo{db: db}
}

func (r *SQLiteScheduleRepo) Save(ctx context.Context, s *domain.Schedule) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting save transaction: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO schedules (id, name, granularity, start_date, end_date, weekdays, total_units, total_study_days, units_per_day, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		s.ID,
		s.Name,
		string(s.Granularity),
		s.StartDate.Format(dateLayout),
		s.EndDate.Format(dateLayout),
		s.Weekdays.String(),
		s.TotalUnits,
		s.TotalStudyDays,
		s.UnitsPerDay,
		s.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting schedule: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO schedule_days (schedule_id, day_index, date, weekday, units) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing day insert: %w", err)
	}
	defer stmt.Close()

	for i, day := range s.Days {
		units, err := json.Marshal(day.Units)
		if err != nil {
			return fmt.Errorf("encoding units for day %d: %w", i, err)
		}
		if _, err := stmt.ExecContext(ctx, s.ID, i, day.Date.Format(dateLayout), day.Weekday, string(units)); err != nil {
			return fmt.Errorf("inserting day %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing schedule save: %w", err)
	}
	committed = true
	return nil
}

const scheduleColumns = `id, name, granularity, start_date, end_date, weekdays, total_units, total_study_days, units_per_day, created_at`

func (r *SQLiteScheduleRepo) GetByID(ctx context.Context, id string) (*domain.Schedule, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+scheduleColumns+` FROM schedules WHERE id = ?`, id)
	s, err := scanSchedule(row)
	if err != nil {
		return nil, err
	}
	if err := r.loadDays(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

func (r *SQLiteScheduleRepo) GetByName(ctx context.Context, name string) (*domain.Schedule, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+scheduleColumns+` FROM schedules WHERE name = ?`, name)
	s, err := scanSchedule(row)
	if err != nil {
		return nil, err
	}
	if err := r.loadDays(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

func (r *SQLiteScheduleRepo) List(ctx context.Context) ([]*domain.Schedule, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+scheduleColumns+` FROM schedules ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("listing schedules: %w", err)
	}
	defer rows.Close()

	var schedules []*domain.Schedule
	for rows.Next() {
		s, err := scanSchedule(rows)
		if err != nil {
			return nil, err
		}
		schedules = append(schedules, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating schedules: %w", err)
	}
	return schedules, nil
}

func (r *SQLiteScheduleRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM schedules WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting schedule: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking delete result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("schedule: %w", ErrNotFound)
	}
	return nil
}

func (r *SQLiteScheduleRepo) loadDays(ctx context.Context, s *domain.Schedule) error {
	rows, err := r.db.QueryContext(ctx,
		`SELECT date, weekday, units FROM schedule_days WHERE schedule_id = ? ORDER BY day_index`, s.ID)
	if err != nil {
		return fmt.Errorf("loading schedule days: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var dateStr, weekday, unitsJSON string
		if err := rows.Scan(&dateStr, &weekday, &unitsJSON); err != nil {
			return fmt.Errorf("scanning schedule day: %w", err)
		}
		date, err := time.Parse(dateLayout, dateStr)
		if err != nil {
			return fmt.Errorf("parsing day date %q: %w", dateStr, err)
		}
		var units []domain.StudyUnit
		if err := json.Unmarshal([]byte(unitsJSON), &units); err != nil {
			return fmt.Errorf("decoding day units: %w", err)
		}
		s.Days = append(s.Days, domain.ScheduleDay{Date: date, Weekday: weekday, Units: units})
	}
	return rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanSchedule(row rowScanner) (*domain.Schedule, error) {
	var s domain.Schedule
	var granularity, startStr, endStr, weekdaysStr, createdStr string
	err := row.Scan(&s.ID, &s.Name, &granularity, &startStr, &endStr, &weekdaysStr,
		&s.TotalUnits, &s.TotalStudyDays, &s.UnitsPerDay, &createdStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("schedule: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning schedule: %w", err)
	}

	s.Granularity = domain.Granularity(granularity)
	if s.StartDate, err = time.Parse(dateLayout, startStr); err != nil {
		return nil, fmt.Errorf("parsing start date: %w", err)
	}
	if s.EndDate, err = time.Parse(dateLayout, endStr); err != nil {
		return nil, fmt.Errorf("parsing end date: %w", err)
	}
	if s.Weekdays, err = domain.ParseWeekdaySet(weekdaysStr); err != nil {
		return nil, fmt.Errorf("parsing weekdays: %w", err)
	}
	if s.CreatedAt, err = time.Parse(time.RFC3339, createdStr); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	return &s, nil
}
