package service

import (
	"context"
	"time"

	"github.com/shayacohen/limud/internal/corpus"
	"github.com/shayacohen/limud/internal/domain"
)

// CreateRequest describes a plain schedule-generation request. Exactly one
// of EndDate or UnitsPerDay must be set.
type CreateRequest struct {
	Name        string
	Selection   corpus.Selection
	StartDate   time.Time
	EndDate     *time.Time
	UnitsPerDay int
	Weekdays    domain.WeekdaySet
}

// ChildRequest describes a child schedule anchored to Hebrew birthdays:
// the 5th Hebrew birthday is the start (or today, if the 5th has passed)
// and the 10th Hebrew birthday is the end.
type ChildRequest struct {
	Name      string
	Selection corpus.Selection
	BirthDate time.Time
	Weekdays  domain.WeekdaySet
}

// ChildResult pairs the generated schedule with the milestones that
// anchored it, so callers can show both birthdays to the user.
type ChildResult struct {
	Schedule *domain.Schedule
	Fifth    *domain.HebrewMilestone
	Tenth    *domain.HebrewMilestone
}

type ScheduleService interface {
	// Create builds the corpus, generates the schedule, and persists it
	// under the request name.
	Create(ctx context.Context, req CreateRequest) (*domain.Schedule, error)

	// CreateChild resolves the 5th and 10th Hebrew birthday milestones
	// and generates a schedule spanning them.
	CreateChild(ctx context.Context, req ChildRequest) (*ChildResult, error)

	// Get resolves a schedule by name, full ID, or unique ID prefix.
	Get(ctx context.Context, ref string) (*domain.Schedule, error)

	// List returns saved schedule metadata in creation order.
	List(ctx context.Context) ([]*domain.Schedule, error)

	// Delete removes a schedule by name, full ID, or unique ID prefix.
	Delete(ctx context.Context, ref string) error
}

// MilestoneResolver resolves Hebrew-calendar anniversaries. Satisfied by
// hebcal.MilestoneResolver; tests substitute a deterministic fake.
type MilestoneResolver interface {
	Resolve(ctx context.Context, birthDate time.Time, yearsAhead int) (*domain.HebrewMilestone, error)
}
