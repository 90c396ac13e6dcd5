package waveform

import (
	"math"
	"math/cmplx"
	"time"

	"gonum.org/v1/gonum/dsp/fourier"

	"WavePull/internal/domain/models"
)

// Align shifts a series to targetStart by a linear phase rotation in the
// frequency domain (Fourier shift theorem). The sample count is preserved
// exactly and the start timestamp becomes targetStart.
//
// The shift is circular, so this is only valid for sub-few-sample delays;
// no bound is enforced here and callers must not rely on it for large shifts.
func Align(s models.SampleSeries, targetStart time.Time) models.SampleSeries {
	delay := s.Start.Sub(targetStart).Seconds()
	if delay == 0 || len(s.Data) == 0 {
		return s
	}

	n := len(s.Data)
	dt := s.Delta()

	fft := fourier.NewFFT(n)
	coeff := fft.Coefficients(nil, s.Data)
	for k := range coeff {
		f := float64(k) / (float64(n) * dt)
		coeff[k] *= cmplx.Exp(complex(0, -2*math.Pi*f*delay))
	}

	out := s.Copy()
	out.Data = fft.Sequence(out.Data, coeff)
	inv := 1 / float64(n)
	for i := range out.Data {
		out.Data[i] *= inv
	}
	out.Start = targetStart
	return out
}
