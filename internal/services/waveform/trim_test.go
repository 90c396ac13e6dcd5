package waveform

import (
	"testing"
	"time"

	"WavePull/internal/domain/models"
)

func window(t *testing.T, start time.Time, d time.Duration) models.TimeWindow {
	t.Helper()
	win, err := models.NewTimeWindow(start, start.Add(d))
	if err != nil {
		t.Fatalf("window: %v", err)
	}
	return win
}

func TestTrimInclusiveEndpoints(t *testing.T) {
	start := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	s := sineSeries(40, 30000, 2) // 12.5 minutes of data
	s.Start = start.Add(-time.Minute)

	win := window(t, start, 10*time.Minute)
	out, ok := Trim(s, win)
	if !ok {
		t.Fatal("trim failed on a covering series")
	}
	if !out.Start.Equal(win.Start) {
		t.Fatalf("trimmed start %v", out.Start)
	}
	// Both endpoints are kept: 600 s at 40 Hz is 24001 samples.
	if len(out.Data) != 24001 {
		t.Fatalf("expected 24001 samples, got %d", len(out.Data))
	}
}

func TestTrimFailsWithoutCoverage(t *testing.T) {
	start := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	s := sineSeries(40, 4000, 2) // 100 s only
	s.Start = start

	if _, ok := Trim(s, window(t, start, 10*time.Minute)); ok {
		t.Fatal("trim accepted a series shorter than the window")
	}
	if _, ok := Trim(s, window(t, start.Add(-time.Second), 10*time.Second)); ok {
		t.Fatal("trim accepted a series starting after the window")
	}
}

func TestFinalizeAcceptsMatchedBundle(t *testing.T) {
	start := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	win := window(t, start, 10*time.Minute)

	mk := func(ch string) models.SampleSeries {
		s := sineSeries(40, 24001, 2)
		s.Channel = ch
		s.Start = start
		return s
	}
	b := models.ComponentBundle{Z: mk("BHZ"), N: mk("BHN"), E: mk("BHE"), Orientation: models.OrientZNE}

	reason, diags := Finalize(&b, win)
	if reason != models.ReasonNone {
		t.Fatalf("expected acceptance, got %s (%v)", reason, diags)
	}
	if len(b.Z.Data) != 24001 || len(b.N.Data) != 24001 || len(b.E.Data) != 24001 {
		t.Fatalf("lengths after finalize: %d %d %d", len(b.Z.Data), len(b.N.Data), len(b.E.Data))
	}
}

func TestFinalizeRejectsShortChannel(t *testing.T) {
	start := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	win := window(t, start, 10*time.Minute)

	mk := func(ch string, n int) models.SampleSeries {
		s := sineSeries(40, n, 2)
		s.Channel = ch
		s.Start = start
		return s
	}
	b := models.ComponentBundle{Z: mk("BHZ", 24001), N: mk("BHN", 4000), E: mk("BHE", 24001)}

	reason, diags := Finalize(&b, win)
	if reason != models.ReasonTrimFailed {
		t.Fatalf("expected TrimFailed, got %s", reason)
	}
	if len(diags) == 0 || diags[0].Component != "N" {
		t.Fatalf("expected a diagnostic for N, got %v", diags)
	}
}

func TestFinalizeRejectsLengthMismatch(t *testing.T) {
	start := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	win := window(t, start, 10*time.Minute)

	mk := func(ch string, rate float64, n int) models.SampleSeries {
		s := sineSeries(rate, n, 2)
		s.Channel = ch
		s.Start = start
		return s
	}
	// N runs at 20 Hz, so its trim yields half the samples.
	b := models.ComponentBundle{Z: mk("BHZ", 40, 24001), N: mk("BHN", 20, 12001), E: mk("BHE", 40, 24001)}

	reason, _ := Finalize(&b, win)
	if reason != models.ReasonLengthMismatch {
		t.Fatalf("expected LengthMismatch, got %s", reason)
	}
}
