package hebcal

import (
	"context"
	"fmt"
	"time"

	"github.com/shayacohen/limud/internal/domain"
)

// MilestoneResolver computes the Gregorian date of the Nth Hebrew-calendar
// anniversary of a birth date. All calendar math is delegated to the
// Converter; the resolver only shifts the Hebrew year. It never retries and
// never substitutes a fallback date; callers decide what a failure means.
type MilestoneResolver struct {
	conv Converter
}

// NewMilestoneResolver creates a resolver over the given converter.
func NewMilestoneResolver(conv Converter) *MilestoneResolver {
	return &MilestoneResolver{conv: conv}
}

// Resolve returns the milestone for birthDate + yearsAhead Hebrew years:
// the birth date is converted to its Hebrew date, the year is advanced with
// month and day fixed, and the result converted back. Leap-month and
// day-count adjustments are the provider's concern.
func (r *MilestoneResolver) Resolve(ctx context.Context, birthDate time.Time, yearsAhead int) (*domain.HebrewMilestone, error) {
	hd, err := r.conv.GregorianToHebrew(ctx, birthDate)
	if err != nil {
		return nil, fmt.Errorf("converting birth date: %w", err)
	}

	target := HebrewDate{Year: hd.Year + yearsAhead, Month: hd.Month, Day: hd.Day}
	greg, err := r.conv.HebrewToGregorian(ctx, target)
	if err != nil {
		return nil, fmt.Errorf("converting %s: %w", target, err)
	}

	return &domain.HebrewMilestone{
		Gregorian:   greg,
		HebrewYear:  target.Year,
		HebrewMonth: target.Month,
		HebrewDay:   target.Day,
	}, nil
}
