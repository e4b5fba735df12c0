// Package calendar holds the date arithmetic used to group tasks into weeks.
package calendar

import "time"

// FirstDayOfWeek is the weekday every week bucket starts on.
const FirstDayOfWeek = time.Sunday

const daysPerWeek = 7

// DateOf drops the clock part of t, keeping the year, month and day as
// seen in t's own location. The result is midnight UTC.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// WeekStart returns the most recent FirstDayOfWeek on or before the date of t.
func WeekStart(t time.Time) time.Time {
	date := DateOf(t)
	offset := (int(date.Weekday()) - int(FirstDayOfWeek) + daysPerWeek) % daysPerWeek
	return date.AddDate(0, 0, -offset)
}

// WeekEnd returns the last day of the week that begins on weekStart.
func WeekEnd(weekStart time.Time) time.Time {
	return DateOf(weekStart).AddDate(0, 0, daysPerWeek-1)
}

// ParseISODate parses a YYYY-MM-DD calendar date.
func ParseISODate(s string) (time.Time, error) {
	return time.Parse(time.DateOnly, s)
}

// FormatISODate formats the date of t as YYYY-MM-DD.
func FormatISODate(t time.Time) string {
	return t.Format(time.DateOnly)
}
