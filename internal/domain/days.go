package domain

import (
	"errors"
	"strconv"
	"time"
)

const DateLayout = "2006-01-02"

var ErrMalformedDate = errors.New("malformed date")

type DaySummary struct {
	Day         time.Time
	Image       string
	Information bool
}

// StartOfDay truncates t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// DayWindow returns [from, to) covering the n whole days before today.
func DayWindow(today time.Time, n int) (time.Time, time.Time) {
	to := StartOfDay(today)
	return to.AddDate(0, 0, -n), to
}

// SummarizeDays builds one summary per day for the n days before today,
// most recent first. A day whose events include a status more severe than
// def takes the image of the most severe one and is flagged.
func SummarizeDays(today time.Time, n int, def Status, events []Event) []DaySummary {
	start := StartOfDay(today)
	loc := start.Location()

	days := make([]DaySummary, n)
	index := make(map[string]int, n)
	worst := make([]int, n)
	for i := range n {
		day := start.AddDate(0, 0, -(i + 1))
		days[i] = DaySummary{Day: day, Image: def.Image}
		index[day.Format(DateLayout)] = i
		worst[i] = def.Severity
	}

	for _, e := range events {
		i, ok := index[e.Start.In(loc).Format(DateLayout)]
		if !ok || e.Status.Severity <= worst[i] {
			continue
		}
		worst[i] = e.Status.Severity
		days[i].Image = e.Status.Image
		days[i].Information = true
	}

	return days
}

// DateRange parses year, month and day path components into [from, to).
// month and day may be empty to select a whole year or month.
func DateRange(year, month, day string, loc *time.Location) (time.Time, time.Time, error) {
	y, err := strconv.Atoi(year)
	if err != nil || y < 1 || y > 9999 {
		return time.Time{}, time.Time{}, ErrMalformedDate
	}

	if month == "" {
		if day != "" {
			return time.Time{}, time.Time{}, ErrMalformedDate
		}
		from := time.Date(y, time.January, 1, 0, 0, 0, 0, loc)
		return from, from.AddDate(1, 0, 0), nil
	}

	m, err := strconv.Atoi(month)
	if err != nil || m < 1 || m > 12 {
		return time.Time{}, time.Time{}, ErrMalformedDate
	}

	if day == "" {
		from := time.Date(y, time.Month(m), 1, 0, 0, 0, 0, loc)
		return from, from.AddDate(0, 1, 0), nil
	}

	d, err := strconv.Atoi(day)
	if err != nil {
		return time.Time{}, time.Time{}, ErrMalformedDate
	}
	from := time.Date(y, time.Month(m), d, 0, 0, 0, 0, loc)
	// time.Date normalizes out-of-range days, reject those
	if from.Day() != d || from.Month() != time.Month(m) {
		return time.Time{}, time.Time{}, ErrMalformedDate
	}
	return from, from.AddDate(0, 0, 1), nil
}
