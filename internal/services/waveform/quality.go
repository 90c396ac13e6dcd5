package waveform

import (
	"fmt"
	"math"

	"WavePull/internal/domain/models"
)

// Filter screens a series for missing-data contamination. Missing is the
// value written over format sentinel samples; NaN by default, zero when the
// downstream consumer cannot carry NaN.
type Filter struct {
	Missing float64
}

// NewFilter builds a Filter; missing of "zero" maps to 0, anything else NaN.
func NewFilter(missing string) Filter {
	if missing == "zero" {
		return Filter{Missing: 0}
	}
	return Filter{Missing: math.NaN()}
}

// ReplaceSentinel overwrites every sample equal to the series' declared
// sentinel with missing. No-op when the sentinel field is zero or holds the
// SAC "no value" flag. Reports whether any replacement pass ran.
func ReplaceSentinel(s *models.SampleSeries, missing float64) bool {
	if !s.HasSentinel || s.Sentinel == 0 || s.Sentinel == models.SACNoValue {
		return false
	}
	for i, v := range s.Data {
		if v == s.Sentinel {
			s.Data[i] = missing
		}
	}
	s.SentinelApplied = true
	return true
}

// Validate applies the quality rules in order: sentinel replacement, NaN
// rejection, merge fill-marker rejection, then the zero-ambiguity advisory.
// Acceptance is otherwise unconditional; no amplitude or range checks.
func (f Filter) Validate(s models.SampleSeries) (models.SampleSeries, []models.Diagnostic, models.Reason) {
	out := s.Copy()
	ReplaceSentinel(&out, f.Missing)

	for _, v := range out.Data {
		if math.IsNaN(v) {
			return out, []models.Diagnostic{{
				Stage:     models.StageQuality,
				Component: out.Component(),
				Reason:    models.ReasonNaN,
				Message:   "missing data present, skipping (NaNs)",
			}}, models.ReasonNaN
		}
	}

	for _, v := range out.Data {
		if v == models.FillMarker {
			return out, []models.Diagnostic{{
				Stage:     models.StageQuality,
				Component: out.Component(),
				Reason:    models.ReasonFillMarker,
				Message:   "missing data present, skipping (merge fill)",
			}}, models.ReasonFillMarker
		}
	}

	var diags []models.Diagnostic
	if out.SentinelApplied && f.Missing == 0 {
		zeros := 0
		for _, v := range out.Data {
			if v == 0 {
				zeros++
			}
		}
		if zeros > 0 {
			diags = append(diags, models.Diagnostic{
				Stage:     models.StageQuality,
				Component: out.Component(),
				Reason:    models.ReasonZeroAmbiguity,
				Message:   fmt.Sprintf("%d zero samples after sentinel replacement; genuine zeros indistinguishable", zeros),
			})
		}
	}

	return out, diags, models.ReasonNone
}
