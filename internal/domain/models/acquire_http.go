package models

import "time"

// Requests and responses for the acquisition HTTP endpoint. Defined in domain
// for consistency and reuse.

type AcquireRequest struct {
	Network  string   `json:"network" validate:"required,max=8"`
	Station  string   `json:"station" validate:"required,max=8"`
	Channel  string   `json:"channel" default:"BH" validate:"len=2"`
	Location []string `json:"location"`
	AltNet   []string `json:"altnet"`
	Start    string   `json:"start" validate:"required"`
	End      string   `json:"end" validate:"required"`
	Dtype    string   `json:"dtype" default:"SAC" validate:"oneof=SAC MSEED"`
	// IncludeData controls whether raw samples are returned in the response.
	IncludeData bool `json:"include_data" default:"false"`
}

type ChannelResponse struct {
	Channel    string    `json:"channel"`
	Location   string    `json:"location"`
	SampleRate float64   `json:"sample_rate"`
	Start      time.Time `json:"start"`
	Samples    int       `json:"samples"`
	Data       []float64 `json:"data,omitempty"`
}

type AcquireResponse struct {
	Status      Status            `json:"status"`
	Reason      Reason            `json:"reason,omitempty"`
	Orientation string            `json:"orientation,omitempty"`
	Channels    []ChannelResponse `json:"channels,omitempty"`
	Diagnostics []Diagnostic      `json:"diagnostics,omitempty"`
}
