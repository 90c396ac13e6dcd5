package waveform

import (
	"math"

	"WavePull/internal/domain/models"
)

// Condition applies the standard pre-validation conditioning: remove the
// mean, remove a best-fit linear trend, then taper both ends with a cosine
// ramp of at most 5% of the trace or 5 seconds, whichever is shorter.
func Condition(s models.SampleSeries) models.SampleSeries {
	out := s.Copy()
	Demean(&out)
	DetrendLinear(&out)
	Taper(&out, 0.05, 5.0)
	return out
}

// Demean subtracts the mean in place.
func Demean(s *models.SampleSeries) {
	n := len(s.Data)
	if n == 0 {
		return
	}
	var sum float64
	for _, v := range s.Data {
		sum += v
	}
	mean := sum / float64(n)
	for i := range s.Data {
		s.Data[i] -= mean
	}
}

// DetrendLinear subtracts the least-squares line in place.
func DetrendLinear(s *models.SampleSeries) {
	n := len(s.Data)
	if n < 2 {
		return
	}
	// Closed-form simple regression over sample index.
	var sumY, sumXY float64
	for i, v := range s.Data {
		sumY += v
		sumXY += float64(i) * v
	}
	fn := float64(n)
	sumX := fn * (fn - 1) / 2
	sumXX := (fn - 1) * fn * (2*fn - 1) / 6
	slope := (fn*sumXY - sumX*sumY) / (fn*sumXX - sumX*sumX)
	intercept := (sumY - slope*sumX) / fn
	for i := range s.Data {
		s.Data[i] -= intercept + slope*float64(i)
	}
}

// Taper applies a cosine ramp to both ends in place. The ramp length is
// maxPercentage of the trace capped at maxLength seconds.
func Taper(s *models.SampleSeries, maxPercentage, maxLength float64) {
	n := len(s.Data)
	if n == 0 {
		return
	}
	ramp := int(maxPercentage * float64(n))
	if maxLength > 0 {
		cap := int(maxLength * s.SampleRate)
		if cap < ramp {
			ramp = cap
		}
	}
	if ramp > n/2 {
		ramp = n / 2
	}
	for i := 0; i < ramp; i++ {
		w := 0.5 * (1 - math.Cos(math.Pi*float64(i)/float64(ramp)))
		s.Data[i] *= w
		s.Data[n-1-i] *= w
	}
}
