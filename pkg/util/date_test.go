package util

import (
	"strconv"
	"testing"
	"time"
)

func TestDayLabel(t *testing.T) {
	d := Day(time.Date(2020, 1, 1, 12, 0, 0, 0, time.UTC))
	if d.Year != "2020" || d.Doy != "001" {
		t.Fatalf("unexpected label %v", d)
	}
	d = Day(time.Date(2020, 12, 31, 0, 0, 0, 0, time.UTC))
	if d.Doy != "366" {
		t.Fatalf("expected leap-year doy 366, got %s", d.Doy)
	}
}

func TestSameDayAcrossMidnight(t *testing.T) {
	a := time.Date(2020, 1, 1, 23, 59, 59, 0, time.UTC)
	b := time.Date(2020, 1, 2, 0, 0, 0, 0, time.UTC)
	if SameDay(a, b) {
		t.Fatalf("expected different days")
	}
	if !SameDay(a, a.Add(-time.Hour)) {
		t.Fatalf("expected same day")
	}
}

func TestParseTimeRFC3339(t *testing.T) {
	s := "2024-10-10T10:10:10Z"
	got, ok := ParseTime(s)
	if !ok {
		t.Fatalf("expected ok")
	}
	if got.UTC().Format(time.RFC3339) != s {
		t.Fatalf("unexpected time %v", got)
	}
}

func TestParseTimeUnix(t *testing.T) {
	ts := time.Date(2024, 10, 10, 10, 10, 10, 0, time.UTC).Unix()
	got, ok := ParseTime(strconv.FormatInt(ts, 10))
	if !ok {
		t.Fatalf("expected ok")
	}
	if got.Unix() != ts {
		t.Fatalf("unexpected unix %v", got.Unix())
	}
}

func TestParseTimeDefault(t *testing.T) {
	def := time.Date(2024, 10, 10, 10, 10, 10, 0, time.UTC)
	got := ParseTimeDefault("", def)
	if !got.Equal(def) {
		t.Fatalf("expected default")
	}
}
