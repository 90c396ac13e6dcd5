package api

import (
	"net/http"

	"WavePull/internal/domain/models"
	"WavePull/internal/usecase"
	xhttp "WavePull/pkg/http"
	xlogger "WavePull/pkg/logger"
	"WavePull/pkg/util"

	"github.com/labstack/echo/v4"
)

// AcquireEchoHandler exposes the acquisition pipeline over HTTP.
type AcquireEchoHandler struct {
	logger *xlogger.Logger
	acq    *usecase.Acquirer
}

func NewAcquireEchoHandler(logger *xlogger.Logger, acq *usecase.Acquirer) *AcquireEchoHandler {
	return &AcquireEchoHandler{logger: logger, acq: acq}
}

func (h *AcquireEchoHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api")
	g.POST("/acquire", h.Acquire)
	e.GET("/health", h.Health)
}

func (h *AcquireEchoHandler) Health(c echo.Context) error {
	return xhttp.SuccessResponse(c, map[string]string{"status": "ok"})
}

func (h *AcquireEchoHandler) Acquire(c echo.Context) error {
	req := &models.AcquireRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	spec, err := models.NewStationSpec(req.Network, req.Station, req.Channel, req.Location, req.AltNet)
	if err != nil {
		return xhttp.BadRequestResponse(c, err.Error())
	}

	start, ok := util.ParseTime(req.Start)
	if !ok {
		return xhttp.BadRequestResponse(c, "start: unrecognized time format")
	}
	end, ok := util.ParseTime(req.End)
	if !ok {
		return xhttp.BadRequestResponse(c, "end: unrecognized time format")
	}
	win, err := models.NewTimeWindow(start, end)
	if err != nil {
		return xhttp.BadRequestResponse(c, err.Error())
	}

	res := h.acq.Acquire(c.Request().Context(), spec, win, req.Dtype)

	resp := models.AcquireResponse{
		Status:      res.Status,
		Reason:      res.Reason,
		Diagnostics: res.Diagnostics,
	}
	if res.Bundle != nil {
		resp.Orientation = res.Bundle.Orientation
		for _, ch := range res.Bundle.Channels() {
			cr := models.ChannelResponse{
				Channel:    ch.Channel,
				Location:   ch.Location,
				SampleRate: ch.SampleRate,
				Start:      ch.Start,
				Samples:    len(ch.Data),
			}
			if req.IncludeData {
				cr.Data = ch.Data
			}
			resp.Channels = append(resp.Channels, cr)
		}
	}

	return xhttp.DataResponse(c, reasonStatus(res), resp)
}

// reasonStatus maps a terminal acquisition outcome to an HTTP status: missing
// data is a 404, upstream transport failure a 502, any validation rejection
// a 422.
func reasonStatus(res usecase.Result) int {
	if res.Status == models.StatusDone {
		return http.StatusOK
	}
	switch res.Reason {
	case models.ReasonDataUnavailable:
		return http.StatusNotFound
	case models.ReasonNetworkError:
		return http.StatusBadGateway
	default:
		return http.StatusUnprocessableEntity
	}
}
