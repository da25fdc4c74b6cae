package domain_test

import (
	"testing"
	"time"

	"github.com/smulube/stashboard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	up      = domain.Status{ID: 1, Slug: "up", Image: "tick-circle", Severity: 10}
	warning = domain.Status{ID: 2, Slug: "warning", Image: "exclamation", Severity: 30}
	down    = domain.Status{ID: 3, Slug: "down", Image: "cross-circle", Severity: 40}
)

func TestSummarizeDays(t *testing.T) {
	today := time.Date(2024, time.March, 2, 15, 4, 5, 0, time.UTC)

	events := []domain.Event{
		// two events on the same day, one above default
		{Start: time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC), Status: down},
		{Start: time.Date(2024, time.March, 1, 10, 0, 0, 0, time.UTC), Status: up},
		// month boundary
		{Start: time.Date(2024, time.February, 27, 23, 59, 0, 0, time.UTC), Status: warning},
		// today and outside the window are ignored
		{Start: time.Date(2024, time.March, 2, 1, 0, 0, 0, time.UTC), Status: down},
		{Start: time.Date(2024, time.February, 25, 12, 0, 0, 0, time.UTC), Status: down},
	}

	days := domain.SummarizeDays(today, 5, up, events)
	require.Len(t, days, 5)

	assert.Equal(t, []domain.DaySummary{
		{Day: time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC), Image: "cross-circle", Information: true},
		{Day: time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC), Image: "tick-circle"},
		{Day: time.Date(2024, time.February, 28, 0, 0, 0, 0, time.UTC), Image: "tick-circle"},
		{Day: time.Date(2024, time.February, 27, 0, 0, 0, 0, time.UTC), Image: "exclamation", Information: true},
		{Day: time.Date(2024, time.February, 26, 0, 0, 0, 0, time.UTC), Image: "tick-circle"},
	}, days)
}

func TestSummarizeDays_MostSevereWins(t *testing.T) {
	today := time.Date(2024, time.March, 2, 0, 0, 0, 0, time.UTC)
	day := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)

	orders := [][]domain.Event{
		{{Start: day.Add(time.Hour), Status: down}, {Start: day.Add(2 * time.Hour), Status: warning}},
		{{Start: day.Add(time.Hour), Status: warning}, {Start: day.Add(2 * time.Hour), Status: down}},
	}

	for _, events := range orders {
		days := domain.SummarizeDays(today, 5, up, events)
		assert.Equal(t, "cross-circle", days[0].Image)
		assert.True(t, days[0].Information)
	}
}

func TestSummarizeDays_Timezone(t *testing.T) {
	loc := time.FixedZone("UTC-8", -8*60*60)
	today := time.Date(2024, time.March, 2, 12, 0, 0, 0, loc)

	// 2024-03-01 05:00 UTC is still February 29th in UTC-8
	events := []domain.Event{
		{Start: time.Date(2024, time.March, 1, 5, 0, 0, 0, time.UTC), Status: down},
	}

	days := domain.SummarizeDays(today, 5, up, events)
	assert.False(t, days[0].Information)
	assert.True(t, days[1].Information)
	assert.Equal(t, loc, days[1].Day.Location())
}

func TestDayWindow(t *testing.T) {
	today := time.Date(2024, time.March, 2, 15, 0, 0, 0, time.UTC)

	from, to := domain.DayWindow(today, 5)

	assert.Equal(t, time.Date(2024, time.February, 26, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2024, time.March, 2, 0, 0, 0, 0, time.UTC), to)
}

func TestDateRange(t *testing.T) {
	testCases := []struct {
		name             string
		year, month, day string
		wantFrom         time.Time
		wantTo           time.Time
		wantErr          bool
	}{
		{
			name:     "year",
			year:     "2023",
			wantFrom: time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC),
			wantTo:   time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "month",
			year:     "2024",
			month:    "2",
			wantFrom: time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC),
			wantTo:   time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "day",
			year:     "2024",
			month:    "02",
			day:      "29",
			wantFrom: time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC),
			wantTo:   time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
		},
		{name: "non numeric year", year: "abc", wantErr: true},
		{name: "non numeric month", year: "2024", month: "feb", wantErr: true},
		{name: "month out of range", year: "2024", month: "13", wantErr: true},
		{name: "day out of range", year: "2023", month: "2", day: "29", wantErr: true},
		{name: "non numeric day", year: "2023", month: "2", day: "x", wantErr: true},
		{name: "day without month", year: "2023", day: "1", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			from, to, err := domain.DateRange(tc.year, tc.month, tc.day, time.UTC)
			if tc.wantErr {
				assert.ErrorIs(t, err, domain.ErrMalformedDate)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tc.wantFrom, from)
			assert.Equal(t, tc.wantTo, to)
		})
	}
}
