package controllers

import (
	"net/http"

	"partnerevents/internal/delivery/http/helpers"
	"partnerevents/internal/observability"
)

type HealthController struct {
	Metrics *observability.RunMetrics
}

func NewHealthController(metrics *observability.RunMetrics) *HealthController {
	return &HealthController{Metrics: metrics}
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status string                           `json:"status"`
	Runs   observability.RunMetricsSnapshot `json:"runs"`
}

// Health godoc
// @Summary Liveness and run counters
// @Tags health
// @Produce json
// @Success 200 {object} helpers.APIResponse
// @Router /health [get]
func (c *HealthController) Health(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSONSuccess(w, http.StatusOK, HealthResponse{Status: "ok", Runs: c.Metrics.Snapshot()})
}
