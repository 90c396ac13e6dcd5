package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// StationSpec identifies a station and the naming variants under which its
// data may be archived. Immutable after construction.
type StationSpec struct {
	Network string `validate:"required,max=8"`
	Station string `validate:"required,max=8"`
	// Channel is the two-character band/instrument prefix, e.g. "BH".
	Channel string `validate:"required,len=2"`
	// Locations are the location codes to try against the remote service, in order.
	Locations []string
	// AltNet are alternate network aliases the same data may be filed under.
	AltNet []string
}

// NewStationSpec builds a validated StationSpec. Codes are uppercased; an
// empty location list defaults to the blank location code.
func NewStationSpec(network, station, channel string, locations, altnet []string) (StationSpec, error) {
	s := StationSpec{
		Network:   strings.ToUpper(strings.TrimSpace(network)),
		Station:   strings.ToUpper(strings.TrimSpace(station)),
		Channel:   strings.ToUpper(strings.TrimSpace(channel)),
		Locations: upperAll(locations),
		AltNet:    upperAll(altnet),
	}
	if len(s.Locations) == 0 {
		s.Locations = []string{""}
	}
	if err := validate.Struct(&s); err != nil {
		return StationSpec{}, fmt.Errorf("station spec: %w", err)
	}
	return s, nil
}

func upperAll(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = strings.ToUpper(strings.TrimSpace(s))
	}
	return out
}

// TimeWindow is an absolute UTC request window.
type TimeWindow struct {
	Start time.Time
	End   time.Time
}

// NewTimeWindow builds a validated window; start must precede end.
func NewTimeWindow(start, end time.Time) (TimeWindow, error) {
	start, end = start.UTC(), end.UTC()
	if !start.Before(end) {
		return TimeWindow{}, fmt.Errorf("time window: start %s is not before end %s", start, end)
	}
	return TimeWindow{Start: start, End: end}, nil
}

// Seconds returns the window length in seconds.
func (w TimeWindow) Seconds() float64 {
	return w.End.Sub(w.Start).Seconds()
}
