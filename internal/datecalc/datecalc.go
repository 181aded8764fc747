package datecalc

import (
	"fmt"
	"time"
)

// dayKeyLayout is the canonical calendar-day key format.
const dayKeyLayout = "2006-01-02"

// DayKey returns the canonical day key (YYYY-MM-DD) of t's UTC calendar day.
// Two timestamps share a key iff they fall on the same UTC day; streak
// continuity and daily totals are defined entirely by this convention.
func DayKey(t time.Time) string {
	return t.UTC().Format(dayKeyLayout)
}

// ParseDayKey parses a day key back into midnight UTC of that day.
func ParseDayKey(key string) (time.Time, error) {
	d, err := time.Parse(dayKeyLayout, key)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid day key %q: %w", key, err)
	}
	return d, nil
}

// AddDays shifts a day key by n calendar days, handling month and year
// rollover. A malformed key is returned unchanged.
func AddDays(key string, n int) string {
	d, err := ParseDayKey(key)
	if err != nil {
		return key
	}
	return d.AddDate(0, 0, n).Format(dayKeyLayout)
}

// WeekKey returns an ISO week label like "2026-W09" (Monday start). It is
// used strictly as an equality key for same-week grouping.
func WeekKey(t time.Time) string {
	year, week := t.UTC().ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, week)
}

// StartOfWeek returns the day key of the Monday on or before t (UTC).
func StartOfWeek(t time.Time) string {
	u := t.UTC()
	// Go's weekday: Sunday=0, Monday=1, …, Saturday=6
	wd := int(u.Weekday())
	if wd == 0 {
		wd = 7 // treat Sunday as 7 (ISO)
	}
	return u.AddDate(0, 0, -(wd - 1)).Format(dayKeyLayout)
}
