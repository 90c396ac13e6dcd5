package waveform

import (
	"fmt"
	"math"
	"time"

	"WavePull/internal/domain/models"
)

func durationOf(sec float64) time.Duration {
	return time.Duration(math.Round(sec * float64(time.Second)))
}

// Trim cuts a series to the requested window on nearest-sample boundaries.
// Fails when the series does not cover the window to within half a sample.
func Trim(s models.SampleSeries, win models.TimeWindow) (models.SampleSeries, bool) {
	n := len(s.Data)
	if n == 0 || s.SampleRate <= 0 {
		return s, false
	}
	rate := s.SampleRate
	half := 0.5

	i0 := int(math.Round(win.Start.Sub(s.Start).Seconds() * rate))
	i1 := int(math.Round(win.End.Sub(s.Start).Seconds() * rate))
	if float64(i0) < -half || i1 > n-1 {
		return s, false
	}
	if i0 < 0 {
		i0 = 0
	}
	if i1 < i0 {
		return s, false
	}

	out := s
	out.Data = make([]float64, i1-i0+1)
	copy(out.Data, s.Data[i0:i1+1])
	out.Start = s.Start.Add(durationOf(float64(i0) / rate))
	return out, true
}

// Finalize trims every channel of a bundle to the window and checks the
// cross-channel geometric invariants: equal lengths, and length within one
// sample of the window duration times the rate. Returns the bundle's
// rejection reason, or ReasonNone with an accepted bundle.
func Finalize(b *models.ComponentBundle, win models.TimeWindow) (models.Reason, []models.Diagnostic) {
	for _, ch := range b.Channels() {
		trimmed, ok := Trim(*ch, win)
		if !ok {
			return models.ReasonTrimFailed, []models.Diagnostic{{
				Stage:     models.StageTrim,
				Component: ch.Component(),
				Reason:    models.ReasonTrimFailed,
				Message:   fmt.Sprintf("window [%s, %s] not covered by series [%s, %s]", win.Start, win.End, ch.Start, ch.End()),
			}}
		}
		*ch = trimmed
	}

	nz, nn, ne := len(b.Z.Data), len(b.N.Data), len(b.E.Data)
	if nz != nn || nz != ne {
		return models.ReasonLengthMismatch, []models.Diagnostic{{
			Stage:   models.StageTrim,
			Reason:  models.ReasonLengthMismatch,
			Message: fmt.Sprintf("incompatible lengths Z=%d N=%d E=%d", nz, nn, ne),
		}}
	}

	expected := int(math.Round(win.Seconds() * b.Z.SampleRate))
	if abs(nz-expected) > 1 {
		return models.ReasonTooShort, []models.Diagnostic{{
			Stage:   models.StageTrim,
			Reason:  models.ReasonTooShort,
			Message: fmt.Sprintf("length too short: %d != %d", nz, expected),
		}}
	}

	return models.ReasonNone, nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
