package repository

import (
	"context"
	"errors"

	"github.com/shayacohen/limud/internal/domain"
)

// ErrNotFound indicates the requested record does not exist.
var ErrNotFound = errors.New("not found")

type ScheduleRepo interface {
	// Save stores a schedule with all its days atomically.
	Save(ctx context.Context, s *domain.Schedule) error

	// GetByID loads a full schedule, days included.
	GetByID(ctx context.Context, id string) (*domain.Schedule, error)

	// GetByName loads a full schedule by its unique name.
	GetByName(ctx context.Context, name string) (*domain.Schedule, error)

	// List returns schedule metadata only; Days is left nil.
	List(ctx context.Context) ([]*domain.Schedule, error)

	// Delete removes a schedule and its days.
	Delete(ctx context.Context, id string) error
}
