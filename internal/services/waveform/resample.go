package waveform

import (
	"math"

	"gonum.org/v1/gonum/dsp/fourier"

	"WavePull/internal/domain/models"
)

// Normalize truncates the sample rate to its integer part and resamples when
// the rate was fractional. Reports whether resampling ran.
func Normalize(s models.SampleSeries) (models.SampleSeries, bool) {
	rTrunc := math.Floor(s.SampleRate)
	if s.SampleRate == rTrunc || rTrunc <= 0 {
		return s, false
	}
	return Resample(s, rTrunc), true
}

// Resample converts a series to newRate by Fourier-domain spectrum
// truncation (downsampling) or zero padding (upsampling). Truncation drops
// every bin above the new Nyquist frequency, so no aliasing is introduced.
func Resample(s models.SampleSeries, newRate float64) models.SampleSeries {
	n := len(s.Data)
	if n == 0 || s.SampleRate == newRate {
		out := s.Copy()
		out.SampleRate = newRate
		return out
	}

	m := int(math.Round(float64(n) * newRate / s.SampleRate))
	if m < 1 {
		m = 1
	}

	fwd := fourier.NewFFT(n)
	coeff := fwd.Coefficients(nil, s.Data)

	resized := make([]complex128, m/2+1)
	copy(resized, coeff[:min(len(coeff), len(resized))])

	inv := fourier.NewFFT(m)
	data := inv.Sequence(nil, resized)
	scale := 1 / float64(n)
	for i := range data {
		data[i] *= scale
	}

	out := s.Copy()
	out.Data = data
	out.SampleRate = newRate
	return out
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
