package http

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"partnerevents/internal/delivery/http/controllers"
	"partnerevents/internal/delivery/http/middleware"
)

// NewRouter initializes the HTTP router with all application routes
func NewRouter(logger *slog.Logger, hostEvent *controllers.HostEventController, health *controllers.HealthController) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", health.Health)

	// Host event
	mux.HandleFunc("POST /host-event/plan", hostEvent.Plan)
	mux.HandleFunc("POST /host-event/run", hostEvent.Run)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return middleware.LoggingMiddleware(logger, mux)
}
