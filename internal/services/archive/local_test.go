package archive

import (
	"fmt"
	"testing"
	"time"

	"WavePull/internal/domain/models"
	drepo "WavePull/internal/domain/repository"
	"WavePull/internal/services/waveform"
	"WavePull/pkg/logger"
)

// mapReader serves canned series by path.
type mapReader struct {
	files map[string][]models.SampleSeries
}

func (r *mapReader) Read(path string) ([]models.SampleSeries, error) {
	s, ok := r.files[path]
	if !ok {
		return nil, fmt.Errorf("no such file %s", path)
	}
	return s, nil
}

func rampSeries(channel string, start time.Time, rate float64, n int) models.SampleSeries {
	data := make([]float64, n)
	for i := range data {
		data[i] = float64(i % 100)
	}
	return models.SampleSeries{
		Network: "XX", Station: "STA", Channel: channel,
		SampleRate: rate, Start: start, Data: data, Format: models.FormatSAC,
	}
}

func newTestLocal(files map[string][]models.SampleSeries) *Local {
	return NewLocal(&mapReader{files: files}, waveform.NewFilter("nan"), drepo.NopMetrics{}, logger.Nop())
}

func twoDayWindow(t *testing.T) models.TimeWindow {
	t.Helper()
	win, err := models.NewTimeWindow(
		time.Date(2020, 1, 1, 23, 55, 0, 0, time.UTC),
		time.Date(2020, 1, 2, 0, 5, 0, 0, time.UTC),
	)
	if err != nil {
		t.Fatalf("window: %v", err)
	}
	return win
}

func TestComponentMergesAcrossDayBoundary(t *testing.T) {
	day1Path := "/arch/2020.001.XX.STA.00.BHZ.SAC"
	day2Path := "/arch/2020.002.XX.STA.00.BHZ.SAC"
	// Day 1 ends 23:59:59.975; day 2 starts on the next sample slot.
	day1 := rampSeries("BHZ", time.Date(2020, 1, 1, 23, 50, 0, 0, time.UTC), 40, 24000)
	day2 := rampSeries("BHZ", time.Date(2020, 1, 2, 0, 0, 0, 0, time.UTC), 40, 24000)

	local := newTestLocal(map[string][]models.SampleSeries{
		day1Path: {day1},
		day2Path: {day2},
	})
	spec := testSpec(t)
	win := twoDayWindow(t)

	got, _, reason := local.Component("Z", spec, win, "SAC", []string{day1Path, day2Path})
	if reason != models.ReasonNone {
		t.Fatalf("expected merge success, got %s", reason)
	}
	if !got.Start.Equal(win.Start) {
		t.Fatalf("unexpected start %v", got.Start)
	}
	if n := len(got.Data); n != 24001 {
		t.Fatalf("expected 24001 samples, got %d", n)
	}
}

func TestComponentMergeFailedOnGap(t *testing.T) {
	day1Path := "/arch/2020.001.XX.STA.00.BHZ.SAC"
	day2Path := "/arch/2020.002.XX.STA.00.BHZ.SAC"
	// Day 1 stops two intervals short of day 2.
	day1 := rampSeries("BHZ", time.Date(2020, 1, 1, 23, 50, 0, 0, time.UTC), 40, 23999)
	day2 := rampSeries("BHZ", time.Date(2020, 1, 2, 0, 0, 0, 0, time.UTC), 40, 24000)

	local := newTestLocal(map[string][]models.SampleSeries{
		day1Path: {day1},
		day2Path: {day2},
	})

	_, diags, reason := local.Component("Z", testSpec(t), twoDayWindow(t), "SAC", []string{day1Path, day2Path})
	if reason != models.ReasonMergeFailed {
		t.Fatalf("expected MergeFailed, got %s", reason)
	}
	found := false
	for _, d := range diags {
		if d.Reason == models.ReasonMergeFailed {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected merge diagnostic, got %v", diags)
	}
}

func TestComponentUnavailableWhenOneDayMissing(t *testing.T) {
	day1Path := "/arch/2020.001.XX.STA.00.BHZ.SAC"
	day1 := rampSeries("BHZ", time.Date(2020, 1, 1, 23, 50, 0, 0, time.UTC), 40, 24000)

	local := newTestLocal(map[string][]models.SampleSeries{day1Path: {day1}})
	_, _, reason := local.Component("Z", testSpec(t), twoDayWindow(t), "SAC", []string{day1Path})
	if reason != models.ReasonDataUnavailable {
		t.Fatalf("expected DataUnavailable, got %s", reason)
	}
}

func TestComponentSkipsUnreadableCandidate(t *testing.T) {
	good := "/arch/2020.001.XX.STA.10.BHZ.SAC"
	bad := "/arch/2020.001.XX.STA.00.BHZ.SAC"
	start := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	win, err := models.NewTimeWindow(start, start.Add(10*time.Minute))
	if err != nil {
		t.Fatalf("window: %v", err)
	}

	local := newTestLocal(map[string][]models.SampleSeries{
		good: {rampSeries("BHZ", start, 40, 24100)},
		// bad is absent, so reading it errors; the pipeline must move on.
	})
	got, _, reason := local.Component("Z", testSpec(t), win, "SAC", []string{bad, good})
	if reason != models.ReasonNone {
		t.Fatalf("expected success from second candidate, got %s", reason)
	}
	if len(got.Data) != 24001 {
		t.Fatalf("unexpected length %d", len(got.Data))
	}
}
