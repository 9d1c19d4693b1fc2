package domain

import "time"

// DayLayout is the YYYY-MM-DD format used everywhere dates cross a boundary
// (CLI flags, YAML import, SQLite storage).
const DayLayout = "2006-01-02"

// DayFloor truncates t to midnight UTC, discarding time-of-day and zone.
// All timeline arithmetic operates on day-floored values.
func DayFloor(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the whole-day distance from a to b. Negative when b
// precedes a.
func DaysBetween(a, b time.Time) int {
	return int(DayFloor(b).Sub(DayFloor(a)).Hours() / 24)
}

// AddDays shifts t by n whole days, preserving day granularity.
func AddDays(t time.Time, n int) time.Time {
	return DayFloor(t).AddDate(0, 0, n)
}

// ParseDay parses a YYYY-MM-DD string into a day-floored UTC time.
func ParseDay(s string) (time.Time, error) {
	return time.Parse(DayLayout, s)
}

// FormatDay renders t as YYYY-MM-DD.
func FormatDay(t time.Time) string {
	return t.Format(DayLayout)
}

// DayPtr returns a pointer to the day-floored value of t.
func DayPtr(t time.Time) *time.Time {
	d := DayFloor(t)
	return &d
}
