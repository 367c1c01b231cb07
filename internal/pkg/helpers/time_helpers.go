package helpers

import (
	"time"
)

// StartOfDay truncates t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// DaysBefore returns the date that lies the given number of days before t.
func DaysBefore(t time.Time, days int) time.Time {
	return StartOfDay(t).AddDate(0, 0, -days)
}

// FormatDate formats t as an ISO calendar date (YYYY-MM-DD).
func FormatDate(t time.Time) string {
	return t.Format(time.DateOnly)
}
