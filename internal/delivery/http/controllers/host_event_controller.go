package controllers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"partnerevents/internal/delivery/http/helpers"
	"partnerevents/internal/domain"
)

type HostEventController struct {
	Logger  *slog.Logger
	Service domain.HostEventService
}

func NewHostEventController(logger *slog.Logger, svc domain.HostEventService) *HostEventController {
	return &HostEventController{
		Logger:  logger,
		Service: svc,
	}
}

// PlanSuccessResponse is the success response envelope for POST /host-event/plan.
type PlanSuccessResponse struct {
	Data  *domain.HostEventPlan `json:"data"`
	Error *helpers.APIError     `json:"error"`
}

// RunSuccessResponse is the success response envelope for POST /host-event/run.
type RunSuccessResponse struct {
	Data  *domain.HostEventResult `json:"data"`
	Error *helpers.APIError       `json:"error"`
}

// Plan godoc
// @Summary Preview each country's event window
// @Description Fetches the partner roster and computes, per country, the two consecutive days most partners can attend. Nothing is sent.
// @Tags host-event
// @Produce json
// @Success 200 {object} controllers.PlanSuccessResponse
// @Failure 422 {object} helpers.APIResponse "error.code: data_format"
// @Failure 502 {object} helpers.APIResponse "error.code: upstream_unavailable, no_partners"
// @Failure 504 {object} helpers.APIResponse "error.code: timeout"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /host-event/plan [post]
func (c *HostEventController) Plan(w http.ResponseWriter, r *http.Request) {
	plan, err := c.Service.Plan(r.Context())
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, plan)
}

// Run godoc
// @Summary Select event windows and send invitations
// @Description Computes each country's event window and dispatches the invitation payload. Any malformed date aborts the whole run.
// @Tags host-event
// @Produce json
// @Success 200 {object} controllers.RunSuccessResponse
// @Failure 422 {object} helpers.APIResponse "error.code: data_format"
// @Failure 502 {object} helpers.APIResponse "error.code: upstream_unavailable, no_partners, dispatch_failed"
// @Failure 504 {object} helpers.APIResponse "error.code: timeout"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /host-event/run [post]
func (c *HostEventController) Run(w http.ResponseWriter, r *http.Request) {
	res, err := c.Service.Run(r.Context())
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, res)
}

func (c *HostEventController) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, code := http.StatusInternalServerError, helpers.ErrCodeInternalError
	switch {
	case errors.Is(err, domain.ErrDataFormat):
		status, code = http.StatusUnprocessableEntity, helpers.ErrCodeDataFormat
	case errors.Is(err, domain.ErrNoPartners):
		status, code = http.StatusBadGateway, helpers.ErrCodeNoPartners
	case errors.Is(err, domain.ErrDirectoryUnavailable):
		status, code = http.StatusBadGateway, helpers.ErrCodeUpstreamUnavailable
	case errors.Is(err, domain.ErrDispatchFailed):
		status, code = http.StatusBadGateway, helpers.ErrCodeDispatchFailed
	case errors.Is(err, context.DeadlineExceeded):
		status, code = http.StatusGatewayTimeout, helpers.ErrCodeTimeout
	}
	c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "code", code, "err", err)
	helpers.WriteJSONError(w, status, code, err.Error())
}
