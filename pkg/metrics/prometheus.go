package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain.repository.Metrics using Prometheus.
type Recorder struct {
	acquisitions *prometheus.CounterVec
	tierHits     *prometheus.CounterVec
	errorsTotal  *prometheus.CounterVec
	fetchLatency *prometheus.HistogramVec
	samples      *prometheus.GaugeVec
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		acquisitions: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "wavepull_acquisitions_total",
				Help: "Total number of acquisition requests by outcome and source",
			},
			[]string{"outcome", "source"},
		),
		tierHits: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "wavepull_resolver_tier_hits_total",
				Help: "Local naming-convention tier that produced candidates",
			},
			[]string{"component", "tier"},
		),
		errorsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "wavepull_errors_total",
				Help: "Total number of stage failures by reason",
			},
			[]string{"reason"},
		),
		fetchLatency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "wavepull_remote_fetch_duration_seconds",
				Help:    "Duration of remote waveform fetch attempts in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"convention"},
		),
		samples: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "wavepull_bundle_samples",
				Help: "Samples per channel in the last accepted bundle for a station",
			},
			[]string{"station"},
		),
	}
}

// RecordAcquisition records a finished acquisition with its outcome ("done",
// "failed") and winning source ("disk", "network", "none").
func (r *Recorder) RecordAcquisition(outcome, source string) {
	r.acquisitions.WithLabelValues(outcome, source).Inc()
}

// RecordTierHit records which resolver tier yielded candidates for a component.
func (r *Recorder) RecordTierHit(component, tier string) {
	r.tierHits.WithLabelValues(component, tier).Inc()
}

// RecordError records a stage failure reason.
func (r *Recorder) RecordError(reason string) {
	r.errorsTotal.WithLabelValues(reason).Inc()
}

// RecordFetchLatency records a remote fetch attempt duration in seconds.
func (r *Recorder) RecordFetchLatency(convention string, seconds float64) {
	r.fetchLatency.WithLabelValues(convention).Observe(seconds)
}

// RecordBundleSamples records the per-channel sample count of an accepted bundle.
func (r *Recorder) RecordBundleSamples(station string, n float64) {
	r.samples.WithLabelValues(station).Set(n)
}
