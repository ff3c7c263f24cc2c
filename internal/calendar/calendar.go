// Package calendar holds the pure date helpers shared by the availability
// and booking surfaces. No state, safe for concurrent use.
package calendar

import "time"

// DateKey renders the canonical YYYY-MM-DD key used wherever a date is
// stored or compared.
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// ParseDateKey parses a canonical YYYY-MM-DD key back into a UTC date.
func ParseDateKey(key string) (time.Time, error) {
	return time.Parse("2006-01-02", key)
}

// DaysInMonth enumerates a month as a row-major grid of 7-wide weeks:
// nil placeholders for the leading weekday offset of the 1st (Sunday-first),
// then one entry per day, then nil placeholders to complete the last week.
func DaysInMonth(year int, month time.Month) []*time.Time {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	offset := int(first.Weekday())
	lastDay := first.AddDate(0, 1, -1).Day()

	days := make([]*time.Time, 0, offset+lastDay+6)
	for i := 0; i < offset; i++ {
		days = append(days, nil)
	}
	for d := 1; d <= lastDay; d++ {
		day := time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
		days = append(days, &day)
	}
	for len(days)%7 != 0 {
		days = append(days, nil)
	}
	return days
}

// IsBookable reports whether a date can still be booked: it must not lie
// before today (date-only comparison) and the station must have at least
// one open slot published for it.
func IsBookable(slots []string, date, today time.Time) bool {
	if len(slots) == 0 {
		return false
	}
	return !truncateToDay(date).Before(truncateToDay(today))
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
