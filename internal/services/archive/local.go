package archive

import (
	"fmt"

	"WavePull/internal/domain/models"
	drepo "WavePull/internal/domain/repository"
	"WavePull/internal/services/waveform"
	"WavePull/pkg/logger"
	"WavePull/pkg/util"
)

// Local acquires one component from archived files: resolve candidate paths
// through the convention tiers, merge across a day boundary when the window
// spans one, and quality-screen the result.
type Local struct {
	reader  drepo.TraceReader
	quality waveform.Filter
	metrics drepo.Metrics
	log     *logger.Logger
}

func NewLocal(reader drepo.TraceReader, quality waveform.Filter, metrics drepo.Metrics, log *logger.Logger) *Local {
	return &Local{reader: reader, quality: quality, metrics: metrics, log: log}
}

// Component returns the accepted series for one component letter, the
// diagnostics gathered along the way, and the failure reason when no
// candidate survived. Failure here is a fallback signal, not an error.
func (l *Local) Component(comp string, spec models.StationSpec, win models.TimeWindow, dtype string, candidates []string) (models.SampleSeries, []models.Diagnostic, models.Reason) {
	if util.SameDay(win.Start, win.End) {
		return l.singleDay(comp, spec, win, dtype, candidates)
	}
	return l.twoDay(comp, spec, win, dtype, candidates)
}

func (l *Local) singleDay(comp string, spec models.StationSpec, win models.TimeWindow, dtype string, candidates []string) (models.SampleSeries, []models.Diagnostic, models.Reason) {
	res := Resolve(comp, util.Day(win.Start), spec, dtype, candidates)
	diags := []models.Diagnostic{resolveDiag(res)}
	if !res.Found() {
		return models.SampleSeries{}, diags, models.ReasonDataUnavailable
	}
	l.metrics.RecordTierHit(comp, res.Tier.String())

	for _, path := range res.Paths {
		s, ok := l.readOne(path)
		if !ok {
			continue
		}
		if !covers(&s, win) {
			continue
		}
		trimmed, ok := waveform.Trim(s, win)
		if !ok {
			continue
		}
		accepted, qdiags, reason := l.quality.Validate(trimmed)
		diags = append(diags, qdiags...)
		if reason == models.ReasonNone {
			l.log.Debug("component from disk",
				logger.String("component", comp),
				logger.String("path", path),
				logger.String("tier", res.Tier.String()))
			return accepted, diags, models.ReasonNone
		}
		l.metrics.RecordError(string(reason))
	}

	return models.SampleSeries{}, diags, models.ReasonDataUnavailable
}

func (l *Local) twoDay(comp string, spec models.StationSpec, win models.TimeWindow, dtype string, candidates []string) (models.SampleSeries, []models.Diagnostic, models.Reason) {
	res1 := Resolve(comp, util.Day(win.Start), spec, dtype, candidates)
	res2 := Resolve(comp, util.Day(win.End), spec, dtype, candidates)
	diags := []models.Diagnostic{resolveDiag(res1), resolveDiag(res2)}
	if !res1.Found() || !res2.Found() {
		return models.SampleSeries{}, diags, models.ReasonDataUnavailable
	}
	l.metrics.RecordTierHit(comp, res1.Tier.String())

	var nearest *nearestPair
	sawPair := false

	for _, p1 := range res1.Paths {
		s1, ok := l.readOne(p1)
		if !ok {
			continue
		}
		for _, p2 := range res2.Paths {
			s2, ok := l.readOne(p2)
			if !ok {
				continue
			}
			sawPair = true
			if !Contiguous(&s1, &s2) {
				gap := s2.Start.Sub(s1.End()).Seconds()
				if nearest == nil || gap < nearest.gap {
					nearest = &nearestPair{gap: gap, end1: s1.End(), ot2: s2.Start}
				}
				continue
			}

			merged, err := MergeSeries(s1, s2, l.quality.Missing)
			if err != nil {
				// This pair failed; the loop continues to the next pair.
				l.log.Debug("merge pair failed", logger.String("component", comp), logger.Error(err))
				continue
			}
			if !covers(&merged, win) {
				continue
			}
			trimmed, ok := waveform.Trim(merged, win)
			if !ok {
				continue
			}
			accepted, qdiags, reason := l.quality.Validate(trimmed)
			diags = append(diags, qdiags...)
			if reason == models.ReasonNone {
				l.log.Debug("component merged from disk",
					logger.String("component", comp),
					logger.String("day1", p1),
					logger.String("day2", p2))
				return accepted, diags, models.ReasonNone
			}
			l.metrics.RecordError(string(reason))
		}
	}

	if sawPair && nearest != nil {
		diags = append(diags, models.Diagnostic{
			Stage:     models.StageMerge,
			Component: comp,
			Reason:    models.ReasonMergeFailed,
			Message:   fmt.Sprintf("merge failed: no overlap %s - %s", nearest.end1.Format("2006-01-02 15:04:05"), nearest.ot2.Format("2006-01-02 15:04:05")),
		})
		return models.SampleSeries{}, diags, models.ReasonMergeFailed
	}
	return models.SampleSeries{}, diags, models.ReasonDataUnavailable
}

// readOne reads a file and keeps it only when it holds exactly one channel
// segment. Read errors skip the file rather than failing the request.
func (l *Local) readOne(path string) (models.SampleSeries, bool) {
	series, err := l.reader.Read(path)
	if err != nil {
		l.log.Warn("unreadable archive file", logger.String("path", path), logger.Error(err))
		return models.SampleSeries{}, false
	}
	if len(series) != 1 {
		return models.SampleSeries{}, false
	}
	return series[0], true
}

func covers(s *models.SampleSeries, win models.TimeWindow) bool {
	return !s.Start.After(win.Start) && !s.End().Before(win.End)
}

func resolveDiag(res models.SearchResult) models.Diagnostic {
	d := models.Diagnostic{
		Stage:      models.StageResolve,
		Component:  res.Component,
		Tier:       res.Tier,
		Candidates: len(res.Paths),
		Message:    fmt.Sprintf("day %s.%s", res.Year, res.Doy),
	}
	if !res.Found() {
		d.Reason = models.ReasonDataUnavailable
	}
	return d
}
