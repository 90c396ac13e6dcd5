package repository

import (
	"context"
	"fmt"
	"time"

	"WavePull/internal/domain/models"
	drepo "WavePull/internal/domain/repository"
	xhttp "WavePull/pkg/http"
)

// WaveformService is the remote fetcher: a JSON-over-HTTP client for a
// waveform data service. One request per call; transport, auth and retry
// policy all live on the server side of this boundary.
type WaveformService struct {
	baseURL string
	client  *xhttp.Client
}

func NewWaveformService(baseURL string, timeout time.Duration) *WaveformService {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &WaveformService{
		baseURL: baseURL,
		client:  xhttp.NewClient(xhttp.WithTimeout(timeout)),
	}
}

type waveformReq struct {
	Network  string    `json:"network"`
	Station  string    `json:"station"`
	Location string    `json:"location"`
	Channels string    `json:"channels"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
}

type waveformResp struct {
	Traces []struct {
		Network    string    `json:"network"`
		Station    string    `json:"station"`
		Location   string    `json:"location"`
		Channel    string    `json:"channel"`
		SampleRate float64   `json:"sample_rate"`
		Start      time.Time `json:"start"`
		Format     string    `json:"format"`
		Samples    []float64 `json:"samples"`
	} `json:"traces"`
}

// GetWaveforms requests the comma-joined channel triplet for the window.
// An empty location code is sent as "--" per service convention.
func (s *WaveformService) GetWaveforms(ctx context.Context, network, station, location, channels string, start, end time.Time) ([]models.SampleSeries, error) {
	if s.baseURL == "" {
		return nil, fmt.Errorf("waveform service not configured")
	}
	loc := location
	if loc == "" {
		loc = "--"
	}

	var wr waveformResp
	err := s.client.SendAndParse(ctx, &xhttp.RequestOptions{
		Method: xhttp.MethodPost,
		URL:    s.baseURL + "/waveforms",
		Headers: map[string]string{
			"Content-Type": "application/json",
		},
		Body: waveformReq{
			Network:  network,
			Station:  station,
			Location: loc,
			Channels: channels,
			Start:    start,
			End:      end,
		},
	}, &wr)
	if err != nil {
		return nil, fmt.Errorf("get waveforms: %w", err)
	}

	out := make([]models.SampleSeries, 0, len(wr.Traces))
	for _, tr := range wr.Traces {
		format := tr.Format
		if format == "" {
			format = models.FormatMSEED
		}
		loc := tr.Location
		if loc == "--" {
			loc = ""
		}
		out = append(out, models.SampleSeries{
			Network:    tr.Network,
			Station:    tr.Station,
			Location:   loc,
			Channel:    tr.Channel,
			SampleRate: tr.SampleRate,
			Start:      tr.Start.UTC(),
			Data:       tr.Samples,
			Format:     format,
		})
	}
	return out, nil
}

var _ drepo.RemoteFetcher = (*WaveformService)(nil)
