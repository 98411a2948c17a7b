package domain

import (
	"fmt"
	"time"
)

// WeekStart returns the Monday of the week containing t, at local midnight.
func WeekStart(t time.Time) time.Time {
	day := DayOf(t)
	// time.Weekday numbers Sunday as 0; weeks here start on Monday.
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

// WeekDates returns the seven dates of the week beginning at start.
func WeekDates(start time.Time) []time.Time {
	dates := make([]time.Time, 7)
	for i := range dates {
		dates[i] = start.AddDate(0, 0, i)
	}
	return dates
}

// WeekStartForOffset returns the Monday of the week offset weeks away from
// the week containing now (0 = current week, -1 = last week).
func WeekStartForOffset(offset int, now time.Time) time.Time {
	return WeekStart(now).AddDate(0, 0, offset*7)
}

// FormatWeekRange formats the inclusive date range of the week beginning
// at start, e.g. "2026-01-12 to 2026-01-18".
func FormatWeekRange(start time.Time) string {
	end := start.AddDate(0, 0, 6)
	return fmt.Sprintf("%s to %s", start.Format("2006-01-02"), end.Format("2006-01-02"))
}
