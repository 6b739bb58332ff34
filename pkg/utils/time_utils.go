package utils

import "time"

const dayLength = 24 * time.Hour

// TripDayCount returns the inclusive number of calendar days between start
// and end, or fallback when either is missing or end is before start.
func TripDayCount(start, end *time.Time, fallback int) int {
	if start == nil || end == nil || start.IsZero() || end.IsZero() {
		return fallback
	}
	s := truncateToDay(*start)
	e := truncateToDay(*end)
	if e.Before(s) {
		return fallback
	}
	return int(e.Sub(s)/dayLength) + 1
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DayDateLabel formats the calendar date of a 1-based trip day, or returns
// "" when the trip has no start date.
func DayDateLabel(start *time.Time, day int) string {
	if start == nil || start.IsZero() {
		return ""
	}
	return truncateToDay(*start).AddDate(0, 0, day-1).Format("2006-01-02")
}

func FormatRFC3339(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
