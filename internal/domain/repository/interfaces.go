package repository

import (
	"context"
	"time"

	"WavePull/internal/domain/models"
)

// TraceReader parses one archive file into in-memory sample series. Readers
// for formats that store multiple segments per file merge same-channel
// segments themselves, writing models.FillMarker into any gap.
type TraceReader interface {
	Read(path string) ([]models.SampleSeries, error)
}

// RemoteFetcher retrieves waveforms from a remote data service. Channels is a
// comma-joined triplet string, e.g. "BHZ,BHN,BHE". One attempt per call; any
// transport or service failure surfaces as an error, which callers treat as
// "no data here".
type RemoteFetcher interface {
	GetWaveforms(ctx context.Context, network, station, location, channels string, start, end time.Time) ([]models.SampleSeries, error)
}

// Metrics abstracts operational metric recording for acquisitions.
type Metrics interface {
	RecordAcquisition(outcome, source string)
	RecordTierHit(component, tier string)
	RecordError(reason string)
	RecordFetchLatency(convention string, seconds float64)
	RecordBundleSamples(station string, n float64)
}

// NopMetrics discards all recordings. Useful in tests.
type NopMetrics struct{}

func (NopMetrics) RecordAcquisition(string, string)    {}
func (NopMetrics) RecordTierHit(string, string)        {}
func (NopMetrics) RecordError(string)                  {}
func (NopMetrics) RecordFetchLatency(string, float64)  {}
func (NopMetrics) RecordBundleSamples(string, float64) {}
