package http

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"partnerevents/internal/delivery/http/controllers"
	"partnerevents/internal/delivery/http/middleware"
	"partnerevents/internal/domain"
	"partnerevents/internal/observability"
)

type stubHostEventService struct {
	plans int
	runs  int
}

func (s *stubHostEventService) Plan(ctx context.Context) (*domain.HostEventPlan, error) {
	s.plans++
	return &domain.HostEventPlan{RunID: "p"}, nil
}

func (s *stubHostEventService) Run(ctx context.Context) (*domain.HostEventResult, error) {
	s.runs++
	return &domain.HostEventResult{Plan: &domain.HostEventPlan{RunID: "r"}}, nil
}

func TestNewRouter(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := &stubHostEventService{}
	router := NewRouter(logger,
		controllers.NewHostEventController(logger, svc),
		controllers.NewHealthController(observability.NewRunMetrics()),
	)

	tests := []struct {
		method string
		path   string
		want   int
	}{
		{http.MethodGet, "/health", http.StatusOK},
		{http.MethodPost, "/host-event/plan", http.StatusOK},
		{http.MethodPost, "/host-event/run", http.StatusOK},
		{http.MethodGet, "/host-event/run", http.StatusMethodNotAllowed},
		{http.MethodGet, "/nope", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, tt.want, w.Code)
			assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
		})
	}
	require.Equal(t, 1, svc.plans)
	require.Equal(t, 1, svc.runs)
}
