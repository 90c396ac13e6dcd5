package archive

import (
	"math"
	"testing"
	"time"

	"WavePull/internal/domain/models"
)

func makeSeries(start time.Time, rate float64, n int, fill float64) models.SampleSeries {
	data := make([]float64, n)
	for i := range data {
		data[i] = fill
	}
	return models.SampleSeries{
		Network: "XX", Station: "STA", Channel: "BHZ",
		SampleRate: rate,
		Start:      start,
		Data:       data,
		Format:     models.FormatSAC,
	}
}

func TestContiguousBoundary(t *testing.T) {
	day2Start := time.Date(2020, 1, 2, 0, 0, 0, 0, time.UTC)

	// Day 1 ends exactly one sample interval before day 2 starts: mergeable.
	day1 := makeSeries(time.Date(2020, 1, 1, 23, 50, 0, 0, time.UTC), 100, 59999, 1)
	if got := day1.End(); !got.Equal(time.Date(2020, 1, 1, 23, 59, 59, 980000000, time.UTC)) {
		t.Fatalf("unexpected day1 end %v", got)
	}
	day1.Data = append(day1.Data, 1) // now ends at 23:59:59.99
	day2 := makeSeries(day2Start, 100, 1000, 2)
	if !Contiguous(&day1, &day2) {
		t.Fatalf("one-interval gap must be contiguous")
	}

	// A gap of two sample intervals is not.
	short := makeSeries(time.Date(2020, 1, 1, 23, 50, 0, 0, time.UTC), 100, 59999, 1)
	if Contiguous(&short, &day2) {
		t.Fatalf("two-interval gap must not be contiguous")
	}
}

func TestMergeSeriesConcatenates(t *testing.T) {
	start1 := time.Date(2020, 1, 1, 23, 59, 0, 0, time.UTC)
	day1 := makeSeries(start1, 40, 2400, 1) // ends 23:59:59.975
	day2 := makeSeries(time.Date(2020, 1, 2, 0, 0, 0, 0, time.UTC), 40, 2400, 2)

	merged, err := MergeSeries(day1, day2, math.NaN())
	if err != nil {
		t.Fatalf("merge: %v", err)
	}
	if len(merged.Data) != 4800 {
		t.Fatalf("expected 4800 samples, got %d", len(merged.Data))
	}
	if !merged.Start.Equal(start1) {
		t.Fatalf("merged start moved: %v", merged.Start)
	}
	if merged.Data[2399] != 1 || merged.Data[2400] != 2 {
		t.Fatalf("segments misplaced around boundary: %v %v", merged.Data[2399], merged.Data[2400])
	}
	for _, v := range merged.Data {
		if v == models.FillMarker {
			t.Fatalf("unexpected fill marker in gapless merge")
		}
	}
}

func TestMergeSeriesMarksGap(t *testing.T) {
	day1 := makeSeries(time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), 40, 400, 1)
	// Start day2 two intervals after day1's last sample so exactly one grid
	// slot between the segments stays unfilled.
	day2 := makeSeries(day1.End().Add(50*time.Millisecond), 40, 400, 2)

	merged, err := MergeSeries(day1, day2, math.NaN())
	if err != nil {
		t.Fatalf("merge: %v", err)
	}
	marks := 0
	for _, v := range merged.Data {
		if v == models.FillMarker {
			marks++
		}
	}
	if marks != 1 {
		t.Fatalf("expected exactly one fill marker, got %d", marks)
	}
}

func TestMergeSeriesRejectsRateMismatch(t *testing.T) {
	day1 := makeSeries(time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), 40, 100, 1)
	day2 := makeSeries(day1.End().Add(25*time.Millisecond), 50, 100, 2)
	if _, err := MergeSeries(day1, day2, math.NaN()); err == nil {
		t.Fatalf("expected rate mismatch error")
	}
}

func TestMergeSeriesAppliesBothSentinels(t *testing.T) {
	day1 := makeSeries(time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), 40, 100, 1)
	day1.HasSentinel, day1.Sentinel = true, -999
	day1.Data[10] = -999
	day2 := makeSeries(day1.End().Add(25*time.Millisecond), 40, 100, 2)
	day2.HasSentinel, day2.Sentinel = true, -888
	day2.Data[20] = -888

	merged, err := MergeSeries(day1, day2, 0)
	if err != nil {
		t.Fatalf("merge: %v", err)
	}
	if !merged.SentinelApplied {
		t.Fatalf("expected SentinelApplied on merged series")
	}
	if merged.Data[10] != 0 || merged.Data[120] != 0 {
		t.Fatalf("sentinels not replaced in both segments: %v %v", merged.Data[10], merged.Data[120])
	}
}
