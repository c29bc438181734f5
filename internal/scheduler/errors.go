package scheduler

import "errors"

var (
	// ErrEmptyCorpus indicates generation was requested with no study units.
	ErrEmptyCorpus = errors.New("corpus is empty")

	// ErrInvalidWeekdays indicates the weekday set is empty.
	ErrInvalidWeekdays = errors.New("at least one weekday must be selected")

	// ErrInvalidDateRange indicates the end date is not after the start
	// date, or the range contains no eligible study days.
	ErrInvalidDateRange = errors.New("invalid date range")

	// ErrInvalidRate indicates a units-per-day rate below 1.
	ErrInvalidRate = errors.New("units per day must be at least 1")

	// ErrMissingPacingMode indicates neither an end date nor a
	// units-per-day rate was supplied.
	ErrMissingPacingMode = errors.New("either an end date or a units-per-day rate is required")

	// ErrConflictingPacing indicates both pacing modes were supplied.
	ErrConflictingPacing = errors.New("end date and units-per-day rate are mutually exclusive")
)
