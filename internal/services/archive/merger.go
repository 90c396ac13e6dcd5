package archive

import (
	"fmt"
	"math"
	"time"

	"WavePull/internal/domain/models"
	"WavePull/internal/services/waveform"
)

// Contiguous reports whether two day segments may be merged: the first must
// end no earlier than one sample interval before the second starts.
func Contiguous(day1, day2 *models.SampleSeries) bool {
	gap := day2.Start.Sub(day1.End()).Seconds()
	return gap <= day2.Delta()*(1+1e-9)
}

// MergeSeries concatenates two day segments of the same channel into one
// continuous series on the first segment's sample grid. Samples are copied
// without interpolation; any true temporal gap is filled with the reserved
// fill marker, and overlapping samples take the second segment's values.
//
// Each segment's sentinel is replaced with missing before merging, so the
// merged series carries a definite SentinelApplied flag for both inputs.
func MergeSeries(day1, day2 models.SampleSeries, missing float64) (models.SampleSeries, error) {
	if day1.SampleRate <= 0 || math.Abs(day1.SampleRate-day2.SampleRate) > 1e-9 {
		return models.SampleSeries{}, fmt.Errorf("merge: sampling rates differ (%g vs %g)", day1.SampleRate, day2.SampleRate)
	}
	if day2.Start.Before(day1.Start) {
		return models.SampleSeries{}, fmt.Errorf("merge: segments out of order")
	}

	a, b := day1.Copy(), day2.Copy()
	applied1 := waveform.ReplaceSentinel(&a, missing)
	applied2 := waveform.ReplaceSentinel(&b, missing)

	rate := a.SampleRate
	span := b.End().Sub(a.Start).Seconds()
	n := int(math.Round(span*rate)) + 1
	if n < len(a.Data) {
		n = len(a.Data)
	}

	data := make([]float64, n)
	for i := range data {
		data[i] = models.FillMarker
	}
	copy(data, a.Data)

	off := int(math.Round(b.Start.Sub(a.Start).Seconds() * rate))
	if off < 0 || off+len(b.Data) > n {
		return models.SampleSeries{}, fmt.Errorf("merge: second segment outside merged span")
	}
	copy(data[off:], b.Data)

	out := a
	out.Data = data
	out.HasSentinel = false
	out.SentinelApplied = applied1 || applied2
	return out, nil
}

// nearestPair carries the best failing pair's timestamps for diagnostics.
type nearestPair struct {
	gap  float64
	end1 time.Time
	ot2  time.Time
}
