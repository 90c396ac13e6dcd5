package models

import (
	"math"
	"time"
)

const (
	// FillMarker is the reserved value the merge step writes into genuine
	// sample gaps. Distinct from any format sentinel.
	FillMarker = -123456789.0

	// SACNoValue is the SAC header "undefined" flag; a sentinel field holding
	// this value declares no sentinel at all.
	SACNoValue = -12345.0
)

// Format tags for the source of a SampleSeries.
const (
	FormatSAC   = "SAC"
	FormatMSEED = "MSEED"
)

// SampleSeries is a single uniformly sampled channel segment.
type SampleSeries struct {
	Network  string
	Station  string
	Location string
	// Channel is the full channel code, e.g. "BHZ".
	Channel    string
	SampleRate float64
	Start      time.Time
	Data       []float64
	Format     string

	// Sentinel is the format-declared missing-data value; valid only when
	// HasSentinel is set.
	Sentinel    float64
	HasSentinel bool
	// SentinelApplied records that sentinel samples were replaced by the
	// configured missing value.
	SentinelApplied bool
}

// Delta returns the sample interval in seconds.
func (s *SampleSeries) Delta() float64 {
	if s.SampleRate == 0 {
		return 0
	}
	return 1.0 / s.SampleRate
}

// End returns the timestamp of the last sample.
func (s *SampleSeries) End() time.Time {
	if len(s.Data) == 0 {
		return s.Start
	}
	return s.Start.Add(secondsToDuration(float64(len(s.Data)-1) * s.Delta()))
}

// Component returns the final character of the channel code.
func (s *SampleSeries) Component() string {
	if s.Channel == "" {
		return ""
	}
	return s.Channel[len(s.Channel)-1:]
}

// Copy returns a deep copy, so stages can rewrite samples without aliasing.
func (s *SampleSeries) Copy() SampleSeries {
	out := *s
	out.Data = make([]float64, len(s.Data))
	copy(out.Data, s.Data)
	return out
}

func secondsToDuration(sec float64) time.Duration {
	return time.Duration(math.Round(sec * float64(time.Second)))
}

// Orientation of a bundle's horizontal channels.
const (
	OrientZNE = "ZNE"
	OrientZ12 = "Z12"
)

// ComponentBundle holds exactly three channels keyed by component slot.
// For Z12 data the 1/2 channels occupy the N/E slots untouched; rotation is
// the caller's business.
type ComponentBundle struct {
	Z           SampleSeries
	N           SampleSeries
	E           SampleSeries
	Orientation string
}

// Channels returns pointers to the three series in Z, N, E order.
func (b *ComponentBundle) Channels() []*SampleSeries {
	return []*SampleSeries{&b.Z, &b.N, &b.E}
}

// ResolveTier identifies which naming-convention fallback produced a result.
type ResolveTier int

const (
	TierNone ResolveTier = iota
	// TierPrimaryExact: channel prefix + component letter, primary network.
	TierPrimaryExact
	// TierPrimaryWildcard: wildcard final channel character, primary network.
	TierPrimaryWildcard
	// TierAltExact: exact match against alternate network aliases.
	TierAltExact
	// TierAltWildcard: wildcard match against alternate network aliases.
	TierAltWildcard
)

func (t ResolveTier) String() string {
	switch t {
	case TierPrimaryExact:
		return "primary-exact"
	case TierPrimaryWildcard:
		return "primary-wildcard"
	case TierAltExact:
		return "alt-exact"
	case TierAltWildcard:
		return "alt-wildcard"
	default:
		return "none"
	}
}

// SearchResult is the outcome of one component/day resolution. An empty path
// list means "not found", never an error.
type SearchResult struct {
	Component string
	Year      string
	Doy       string
	Tier      ResolveTier
	Paths     []string
}

// Found reports whether any candidate file matched.
func (r SearchResult) Found() bool {
	return len(r.Paths) > 0
}
