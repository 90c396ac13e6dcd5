package usecase

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"WavePull/internal/domain/models"
	drepo "WavePull/internal/domain/repository"
	"WavePull/internal/services/archive"
	"WavePull/internal/services/waveform"
	"WavePull/pkg/config"
	"WavePull/pkg/logger"
)

// Result is the terminal outcome of one acquisition.
type Result struct {
	Status models.Status
	Reason models.Reason
	// Source is "disk" or "network" on success.
	Source      string
	Bundle      *models.ComponentBundle
	Diagnostics []models.Diagnostic
}

type acquireState int

const (
	stateTryLocal acquireState = iota
	stateTryRemote
	stateValidating
	stateDone
	stateFailed
)

// Acquirer assembles a validated three-component bundle for a station and
// window, preferring archived files and falling back to the remote service.
type Acquirer struct {
	roots   []string
	dtype   string
	locator archive.Locator
	local   *archive.Local
	remote  drepo.RemoteFetcher
	metrics drepo.Metrics
	log     *logger.Logger
}

func NewAcquirer(cfg *config.Config, reader drepo.TraceReader, remote drepo.RemoteFetcher, metrics drepo.Metrics, log *logger.Logger) *Acquirer {
	quality := waveform.NewFilter(cfg.Archive.MissingValue)
	return &Acquirer{
		roots:   cfg.Archive.Roots,
		dtype:   cfg.Archive.Dtype,
		local:   archive.NewLocal(reader, quality, metrics, log),
		remote:  remote,
		metrics: metrics,
		log:     log,
	}
}

// Acquire runs the acquisition state machine to completion. Every failure is
// reported in the result; nothing panics past this boundary. dtype overrides
// the configured archive format when non-empty.
func (a *Acquirer) Acquire(ctx context.Context, spec models.StationSpec, win models.TimeWindow, dtype string) Result {
	if dtype == "" {
		dtype = a.dtype
	}

	res := Result{Status: models.StatusFailed}
	var bundle models.ComponentBundle

	candidates := a.locator.Find(a.roots, spec, dtype)
	res.Diagnostics = append(res.Diagnostics, models.Diagnostic{
		Stage:      models.StageLocate,
		Candidates: len(candidates),
		Message:    fmt.Sprintf("%d station files located", len(candidates)),
	})

	state := stateTryLocal
	for {
		switch state {
		case stateTryLocal:
			b, ok := a.tryLocal(&res, spec, win, dtype, candidates)
			if ok {
				bundle = b
				res.Source = "disk"
				state = stateValidating
			} else {
				// Local failure is a fallback signal, not an error.
				state = stateTryRemote
			}

		case stateTryRemote:
			b, ok := a.tryRemote(ctx, &res, spec, win)
			if ok {
				bundle = b
				res.Source = "network"
				state = stateValidating
			} else {
				res.Reason = models.ReasonDataUnavailable
				state = stateFailed
			}

		case stateValidating:
			reason, diags := a.validate(&bundle, win)
			res.Diagnostics = append(res.Diagnostics, diags...)
			if reason != models.ReasonNone {
				res.Reason = reason
				state = stateFailed
			} else {
				state = stateDone
			}

		case stateDone:
			res.Status = models.StatusDone
			res.Bundle = &bundle
			a.metrics.RecordAcquisition("done", res.Source)
			a.metrics.RecordBundleSamples(spec.Station, float64(len(bundle.Z.Data)))
			a.log.Info("waveforms retrieved",
				logger.String("station", spec.Station),
				logger.String("source", res.Source),
				logger.Int("samples", len(bundle.Z.Data)))
			return res

		case stateFailed:
			res.Source = "none"
			a.metrics.RecordAcquisition("failed", res.Source)
			a.metrics.RecordError(string(res.Reason))
			a.log.Warn("acquisition failed",
				logger.String("station", spec.Station),
				logger.String("reason", string(res.Reason)))
			return res
		}
	}
}

// tryLocal acquires all three components from disk; a miss on any component
// fails the whole local attempt.
func (a *Acquirer) tryLocal(res *Result, spec models.StationSpec, win models.TimeWindow, dtype string, candidates []string) (models.ComponentBundle, bool) {
	var bundle models.ComponentBundle
	bundle.Orientation = models.OrientZNE

	targets := []struct {
		comp string
		dst  *models.SampleSeries
	}{
		{"Z", &bundle.Z},
		{"N", &bundle.N},
		{"E", &bundle.E},
	}

	for _, t := range targets {
		s, diags, reason := a.local.Component(t.comp, spec, win, dtype, candidates)
		res.Diagnostics = append(res.Diagnostics, diags...)
		if reason != models.ReasonNone {
			return models.ComponentBundle{}, false
		}
		*t.dst = s
	}
	return bundle, true
}

// tryRemote walks the location codes in order; at each, the ZNE triplet is
// attempted first and the Z12 triplet only when ZNE did not return exactly
// three channels. One attempt per (location, triplet) pair, no retry.
func (a *Acquirer) tryRemote(ctx context.Context, res *Result, spec models.StationSpec, win models.TimeWindow) (models.ComponentBundle, bool) {
	if a.remote == nil {
		return models.ComponentBundle{}, false
	}

	// One extra second on the end so traces are never cropped short; the
	// final trim cuts back to the exact window.
	end := win.End.Add(time.Second)

	for _, loc := range spec.Locations {
		for _, conv := range []string{models.OrientZNE, models.OrientZ12} {
			traces, err := a.fetch(ctx, spec, loc, conv, win.Start, end)
			if err != nil {
				// Treated identically to "no data here": advance the loop.
				res.Diagnostics = append(res.Diagnostics, models.Diagnostic{
					Stage:   models.StageRemote,
					Reason:  models.ReasonNetworkError,
					Message: fmt.Sprintf("location %q convention %s: %v", loc, conv, err),
				})
				continue
			}
			bundle, ok := assemble(traces, conv)
			res.Diagnostics = append(res.Diagnostics, models.Diagnostic{
				Stage:      models.StageRemote,
				Candidates: len(traces),
				Message:    fmt.Sprintf("location %q convention %s returned %d traces", loc, conv, len(traces)),
			})
			if ok {
				return bundle, true
			}
		}
	}
	return models.ComponentBundle{}, false
}

func (a *Acquirer) fetch(ctx context.Context, spec models.StationSpec, loc, convention string, start, end time.Time) ([]models.SampleSeries, error) {
	suffixes := "ZNE"
	if convention == models.OrientZ12 {
		suffixes = "Z12"
	}
	parts := make([]string, 0, 3)
	for _, c := range suffixes {
		parts = append(parts, spec.Channel+string(c))
	}
	channels := strings.Join(parts, ",")

	began := time.Now()
	traces, err := a.remote.GetWaveforms(ctx, spec.Network, spec.Station, loc, channels, start, end)
	a.metrics.RecordFetchLatency(convention, time.Since(began).Seconds())
	return traces, err
}

// assemble keys exactly three traces into component slots. Z12 channels "1"
// and "2" fill the N and E slots unrotated; the bundle orientation records it.
func assemble(traces []models.SampleSeries, convention string) (models.ComponentBundle, bool) {
	if len(traces) != 3 {
		return models.ComponentBundle{}, false
	}
	slots := map[string]string{"Z": "Z", "N": "N", "E": "E"}
	if convention == models.OrientZ12 {
		slots = map[string]string{"Z": "Z", "1": "N", "2": "E"}
	}

	var bundle models.ComponentBundle
	bundle.Orientation = convention
	seen := map[string]bool{}
	for _, tr := range traces {
		slot, ok := slots[tr.Component()]
		if !ok || seen[slot] {
			return models.ComponentBundle{}, false
		}
		seen[slot] = true
		switch slot {
		case "Z":
			bundle.Z = tr
		case "N":
			bundle.N = tr
		case "E":
			bundle.E = tr
		}
	}
	return bundle, len(seen) == 3
}

// validate conditions the bundle and enforces the final geometric invariants:
// detrend and taper, shift to the true window start, normalize the rate to an
// integer, then trim and cross-check the three channels.
func (a *Acquirer) validate(b *models.ComponentBundle, win models.TimeWindow) (models.Reason, []models.Diagnostic) {
	var diags []models.Diagnostic

	for _, ch := range b.Channels() {
		*ch = waveform.Condition(*ch)
	}

	shifted := false
	for _, ch := range b.Channels() {
		if !ch.Start.Equal(win.Start) {
			*ch = waveform.Align(*ch, win.Start)
			shifted = true
		}
	}
	if shifted {
		diags = append(diags, models.Diagnostic{
			Stage:   models.StageAlign,
			Message: "start times shifted to true window start",
		})
	}

	for _, ch := range b.Channels() {
		if normalized, ok := waveform.Normalize(*ch); ok {
			diags = append(diags, models.Diagnostic{
				Stage:     models.StageResample,
				Component: ch.Component(),
				Message:   fmt.Sprintf("non-integer rate %g resampled to %g", ch.SampleRate, math.Floor(ch.SampleRate)),
			})
			*ch = normalized
		}
	}

	reason, fdiags := waveform.Finalize(b, win)
	return reason, append(diags, fdiags...)
}
