package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shayacohen/limud/internal/corpus"
	"github.com/shayacohen/limud/internal/domain"
	"github.com/shayacohen/limud/internal/repository"
	"github.com/shayacohen/limud/internal/scheduler"
)

type scheduleServiceImpl struct {
	repo     repository.ScheduleRepo
	resolver MilestoneResolver
	now      func() time.Time
}

// NewScheduleService creates a ScheduleService over the given repository
// and milestone resolver.
func NewScheduleService(repo repository.ScheduleRepo, resolver MilestoneResolver) ScheduleService {
	return &scheduleServiceImpl{
		repo:     repo,
		resolver: resolver,
		now:      time.Now,
	}
}

func (s *scheduleServiceImpl) Create(ctx context.Context, req CreateRequest) (*domain.Schedule, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("schedule name is required")
	}

	units, err := corpus.Build(req.Selection)
	if err != nil {
		return nil, err
	}

	sched, err := scheduler.Generate(scheduler.Parameters{
		Corpus:      units,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		UnitsPerDay: req.UnitsPerDay,
		Weekdays:    req.Weekdays,
	})
	if err != nil {
		return nil, err
	}

	sched.ID = uuid.New().String()
	sched.Name = req.Name
	sched.Granularity = req.Selection.Granularity
	sched.CreatedAt = s.now().UTC()

	if err := s.repo.Save(ctx, sched); err != nil {
		return nil, err
	}
	return sched, nil
}

func (s *scheduleServiceImpl) CreateChild(ctx context.Context, req ChildRequest) (*ChildResult, error) {
	fifth, err := s.resolver.Resolve(ctx, req.BirthDate, 5)
	if err != nil {
		return nil, fmt.Errorf("resolving 5th hebrew birthday: %w", err)
	}
	tenth, err := s.resolver.Resolve(ctx, req.BirthDate, 10)
	if err != nil {
		return nil, fmt.Errorf("resolving 10th hebrew birthday: %w", err)
	}

	// The resolver returns raw milestones; substituting today for a 5th
	// birthday already behind us is this caller's decision.
	start := fifth.Gregorian
	if today := dateOnly(s.now()); start.Before(today) {
		start = today
	}
	end := tenth.Gregorian

	sched, err := s.Create(ctx, CreateRequest{
		Name:      req.Name,
		Selection: req.Selection,
		StartDate: start,
		EndDate:   &end,
		Weekdays:  req.Weekdays,
	})
	if err != nil {
		return nil, err
	}
	return &ChildResult{Schedule: sched, Fifth: fifth, Tenth: tenth}, nil
}

func (s *scheduleServiceImpl) Get(ctx context.Context, ref string) (*domain.Schedule, error) {
	id, err := s.resolveRef(ctx, ref)
	if err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *scheduleServiceImpl) List(ctx context.Context) ([]*domain.Schedule, error) {
	return s.repo.List(ctx)
}

func (s *scheduleServiceImpl) Delete(ctx context.Context, ref string) error {
	id, err := s.resolveRef(ctx, ref)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// resolveRef resolves user input to a schedule ID: exact name match first,
// then exact ID, then unique ID prefix.
func (s *scheduleServiceImpl) resolveRef(ctx context.Context, ref string) (string, error) {
	if ref == "" {
		return "", fmt.Errorf("schedule name or ID is required")
	}

	if sched, err := s.repo.GetByName(ctx, ref); err == nil {
		return sched.ID, nil
	} else if !errors.Is(err, repository.ErrNotFound) {
		return "", err
	}

	schedules, err := s.repo.List(ctx)
	if err != nil {
		return "", err
	}
	for _, sched := range schedules {
		if sched.ID == ref {
			return sched.ID, nil
		}
	}

	var matches []string
	for _, sched := range schedules {
		if strings.HasPrefix(sched.ID, ref) {
			matches = append(matches, sched.ID)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("schedule %q: %w", ref, repository.ErrNotFound)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("schedule ID prefix %q is ambiguous (%d matches)", ref, len(matches))
	}
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
