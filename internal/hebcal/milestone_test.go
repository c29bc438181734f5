package hebcal

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tableConverter answers conversions from a fixed reference table, the way
// the live provider would.
type tableConverter struct {
	g2h map[string]HebrewDate
	h2g map[HebrewDate]time.Time
	err error
}

func (c *tableConverter) GregorianToHebrew(_ context.Context, t time.Time) (HebrewDate, error) {
	if c.err != nil {
		return HebrewDate{}, c.err
	}
	hd, ok := c.g2h[t.Format("2006-01-02")]
	if !ok {
		return HebrewDate{}, ErrBadResponse
	}
	return hd, nil
}

func (c *tableConverter) HebrewToGregorian(_ context.Context, d HebrewDate) (time.Time, error) {
	if c.err != nil {
		return time.Time{}, c.err
	}
	g, ok := c.h2g[d]
	if !ok {
		return time.Time{}, ErrBadResponse
	}
	return g, nil
}

func TestResolve_FifthHebrewBirthday(t *testing.T) {
	// Reference values: 2015-06-15 is 28 Sivan 5775; 28 Sivan 5780 falls
	// on 2020-06-20.
	conv := &tableConverter{
		g2h: map[string]HebrewDate{
			"2015-06-15": {Year: 5775, Month: "Sivan", Day: 28},
		},
		h2g: map[HebrewDate]time.Time{
			{Year: 5780, Month: "Sivan", Day: 28}: time.Date(2020, time.June, 20, 0, 0, 0, 0, time.UTC),
		},
	}

	m, err := NewMilestoneResolver(conv).Resolve(context.Background(),
		time.Date(2015, time.June, 15, 0, 0, 0, 0, time.UTC), 5)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2020, time.June, 20, 0, 0, 0, 0, time.UTC), m.Gregorian)
	assert.Equal(t, 5780, m.HebrewYear)
	assert.Equal(t, "Sivan", m.HebrewMonth)
	assert.Equal(t, 28, m.HebrewDay)
}

func TestResolve_KeepsMonthAndDayFixed(t *testing.T) {
	conv := &tableConverter{
		g2h: map[string]HebrewDate{
			"2015-06-15": {Year: 5775, Month: "Sivan", Day: 28},
		},
		h2g: map[HebrewDate]time.Time{
			{Year: 5785, Month: "Sivan", Day: 28}: time.Date(2025, time.June, 24, 0, 0, 0, 0, time.UTC),
		},
	}

	m, err := NewMilestoneResolver(conv).Resolve(context.Background(),
		time.Date(2015, time.June, 15, 0, 0, 0, 0, time.UTC), 10)
	require.NoError(t, err)
	assert.Equal(t, 5785, m.HebrewYear)
	assert.Equal(t, "Sivan", m.HebrewMonth)
	assert.Equal(t, 28, m.HebrewDay)
}

func TestResolve_ProviderFailurePropagates(t *testing.T) {
	conv := &tableConverter{err: ErrUnavailable}
	_, err := NewMilestoneResolver(conv).Resolve(context.Background(), time.Now(), 5)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestResolve_NoFallbackOnBadResponse(t *testing.T) {
	// An empty table means every lookup fails; the resolver must surface
	// the error rather than guess.
	conv := &tableConverter{g2h: map[string]HebrewDate{}, h2g: map[HebrewDate]time.Time{}}
	_, err := NewMilestoneResolver(conv).Resolve(context.Background(), time.Now(), 5)
	assert.ErrorIs(t, err, ErrBadResponse)
}

func TestResolve_WrappedErrorsRemainDistinguishable(t *testing.T) {
	conv := &tableConverter{err: ErrTimeout}
	_, err := NewMilestoneResolver(conv).Resolve(context.Background(), time.Now(), 10)
	assert.True(t, errors.Is(err, ErrTimeout))
	assert.False(t, errors.Is(err, ErrUnavailable))
}
