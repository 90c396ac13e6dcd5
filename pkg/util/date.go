package util

import (
	"strconv"
	"time"
)

// DayLabel identifies a UTC calendar day the way archive files name it:
// four-digit year and zero-padded day of year.
type DayLabel struct {
	Year string
	Doy  string
}

// Day returns the DayLabel for t in UTC.
func Day(t time.Time) DayLabel {
	u := t.UTC()
	return DayLabel{Year: strconv.Itoa(u.Year()), Doy: padDoy(u.YearDay())}
}

func padDoy(d int) string {
	s := strconv.Itoa(d)
	for len(s) < 3 {
		s = "0" + s
	}
	return s
}

// SameDay reports whether a and b fall on the same UTC calendar day.
func SameDay(a, b time.Time) bool {
	return Day(a) == Day(b)
}

// ParseTime tries RFC3339, RFC3339Nano, and unix seconds. Returns (t, true) if any worked.
func ParseTime(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, true
	}
	if ts, err := strconv.ParseInt(s, 10, 64); err == nil && ts > 0 {
		return time.Unix(ts, 0), true
	}
	return time.Time{}, false
}

// ParseTimeDefault parses time or returns default if empty/invalid.
func ParseTimeDefault(s string, def time.Time) time.Time {
	if t, ok := ParseTime(s); ok {
		return t
	}
	return def
}
