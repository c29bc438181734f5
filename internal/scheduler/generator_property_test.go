package scheduler

import (
	"math/rand"
	"testing"
	"time"

	"github.com/shayacohen/limud/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allWeekdays = []time.Weekday{
	time.Sunday, time.Monday, time.Tuesday, time.Wednesday,
	time.Thursday, time.Friday, time.Saturday,
}

func randomWeekdaySet(rng *rand.Rand) domain.WeekdaySet {
	n := rng.Intn(7) + 1
	perm := rng.Perm(7)
	days := make([]time.Weekday, 0, n)
	for _, i := range perm[:n] {
		days = append(days, allWeekdays[i])
	}
	return domain.NewWeekdaySet(days...)
}

// TestGenerate_EndDateMode_Invariants property-tests the core guarantees of
// end-date pacing: the corpus is assigned exactly once in order, every day
// falls on an active weekday, and dates strictly increase.
func TestGenerate_EndDateMode_Invariants(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 200; trial++ {
		corpus := makeCorpus(rng.Intn(800) + 1)
		start := date(2024, time.January, 1).AddDate(0, 0, rng.Intn(365))
		end := start.AddDate(0, 0, rng.Intn(400)+1)
		weekdays := randomWeekdaySet(rng)

		if countStudyDays(start, end, weekdays) == 0 {
			continue
		}

		sched, err := Generate(Parameters{
			Corpus:    corpus,
			StartDate: start,
			EndDate:   &end,
			Weekdays:  weekdays,
		})
		require.NoError(t, err, "trial %d", trial)

		// Invariant 1: exhaustion, all units assigned exactly once, in order.
		var got []domain.StudyUnit
		for _, day := range sched.Days {
			got = append(got, day.Units...)
		}
		assert.Equal(t, corpus, got, "trial %d: schedule must cover the corpus in order", trial)

		// Invariant 2: weekday conformance.
		for _, day := range sched.Days {
			assert.True(t, weekdays.Contains(day.Date.Weekday()),
				"trial %d: %s falls on inactive weekday %s", trial, day.Date, day.Date.Weekday())
		}

		// Invariant 3: strict date monotonicity, within range.
		for i := 1; i < len(sched.Days); i++ {
			assert.True(t, sched.Days[i-1].Date.Before(sched.Days[i].Date),
				"trial %d: dates must strictly increase", trial)
		}
		if len(sched.Days) > 0 {
			last := sched.Days[len(sched.Days)-1]
			assert.False(t, last.Date.After(end), "trial %d: last day past end date", trial)
		}

		// Invariant 4: reported rate matches ceil(total/studyDays).
		assert.Equal(t, ceilDiv(len(corpus), sched.TotalStudyDays), sched.UnitsPerDay,
			"trial %d: rate derivation", trial)

		// Invariant 5: no empty days.
		for _, day := range sched.Days {
			assert.NotEmpty(t, day.Units, "trial %d", trial)
		}
	}
}

// TestGenerate_RateMode_Invariants property-tests fixed-rate pacing: every
// day carries exactly the requested count except possibly the last.
func TestGenerate_RateMode_Invariants(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for trial := 0; trial < 200; trial++ {
		n := rng.Intn(500) + 1
		k := rng.Intn(12) + 1
		corpus := makeCorpus(n)
		start := date(2024, time.January, 1).AddDate(0, 0, rng.Intn(365))
		weekdays := randomWeekdaySet(rng)

		sched, err := Generate(Parameters{
			Corpus:      corpus,
			StartDate:   start,
			UnitsPerDay: k,
			Weekdays:    weekdays,
		})
		require.NoError(t, err, "trial %d", trial)

		wantDays := ceilDiv(n, k)
		require.Len(t, sched.Days, wantDays, "trial %d", trial)

		for i, day := range sched.Days {
			if i < wantDays-1 {
				assert.Len(t, day.Units, k, "trial %d day %d", trial, i)
			}
		}
		lastLen := len(sched.Days[wantDays-1].Units)
		if n%k == 0 {
			assert.Equal(t, k, lastLen, "trial %d", trial)
		} else {
			assert.Equal(t, n%k, lastLen, "trial %d", trial)
		}

		assert.Equal(t, sched.Days[wantDays-1].Date, sched.EndDate,
			"trial %d: derived end date must be the final assignment", trial)

		var got []domain.StudyUnit
		for _, day := range sched.Days {
			got = append(got, day.Units...)
		}
		assert.Equal(t, corpus, got, "trial %d", trial)
	}
}
