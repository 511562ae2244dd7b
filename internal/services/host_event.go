package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"partnerevents/internal/domain"
	"partnerevents/internal/observability"
	"partnerevents/internal/scheduling"
)

type hostEventService struct {
	directory      domain.PartnerDirectory
	dispatcher     domain.InvitationDispatcher
	logger         *slog.Logger
	tracer         trace.Tracer
	metrics        *observability.RunMetrics
	contextTimeout time.Duration
	now            func() time.Time
}

// NewHostEventService wires the partner directory and invitation dispatcher around the window selection.
// Each Plan or Run call is bounded by timeout.
func NewHostEventService(
	directory domain.PartnerDirectory,
	dispatcher domain.InvitationDispatcher,
	logger *slog.Logger,
	metrics *observability.RunMetrics,
	timeout time.Duration,
) domain.HostEventService {
	if metrics == nil {
		metrics = observability.NewRunMetrics()
	}
	return &hostEventService{
		directory:      directory,
		dispatcher:     dispatcher,
		logger:         logger,
		tracer:         observability.Tracer(),
		metrics:        metrics,
		contextTimeout: timeout,
		now:            time.Now,
	}
}

func (s *hostEventService) Plan(ctx context.Context) (*domain.HostEventPlan, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	ctx, span := s.tracer.Start(ctx, "hostevent.plan")
	defer span.End()

	start := s.now()
	plan, err := s.plan(ctx, uuid.NewString())
	s.metrics.ObserveDuration(s.now().Sub(start))
	if err != nil {
		s.fail(span, err)
		return nil, err
	}
	return plan, nil
}

func (s *hostEventService) Run(ctx context.Context) (*domain.HostEventResult, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	ctx, span := s.tracer.Start(ctx, "hostevent.run")
	defer span.End()

	start := s.now()
	defer func() { s.metrics.ObserveDuration(s.now().Sub(start)) }()

	runID := uuid.NewString()
	plan, err := s.plan(ctx, runID)
	if err != nil {
		s.fail(span, err)
		return nil, err
	}
	result := &domain.HostEventResult{Plan: plan}
	if len(plan.Payload.Countries) == 0 {
		s.logger.WarnContext(ctx, "no country has a two-day window; nothing to dispatch", "run_id", runID)
		return result, nil
	}

	ack, err := s.dispatch(ctx, plan)
	if err != nil {
		s.fail(span, err)
		return nil, err
	}
	result.Ack = ack
	s.logger.InfoContext(ctx, "invitations dispatched",
		"run_id", runID,
		"provider", ack.Provider,
		"status", ack.StatusCode,
		"delivered", ack.Delivered,
	)
	return result, nil
}

func (s *hostEventService) plan(ctx context.Context, runID string) (*domain.HostEventPlan, error) {
	span := trace.SpanFromContext(ctx)
	span.SetAttributes(attribute.String("run.id", runID))

	partners, err := s.directory.Fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch partners: %w", err)
	}

	index := scheduling.IndexAttendance(partners)
	windows, err := scheduling.SelectBestWindows(index)
	if err != nil {
		// no partial payload: one bad date fails every country
		return nil, fmt.Errorf("select windows: %w", err)
	}

	skipped := scheduling.SkippedCountries(index, windows)
	for _, country := range skipped {
		s.logger.WarnContext(ctx, "no consecutive-day window for country", "run_id", runID, "country", country)
	}

	plan := &domain.HostEventPlan{
		RunID:            runID,
		PartnerCount:     len(partners),
		Payload:          scheduling.BuildPayload(windows),
		SkippedCountries: skipped,
		PlannedAt:        s.now().UTC(),
	}
	span.SetAttributes(
		attribute.Int("partners", plan.PartnerCount),
		attribute.Int("countries.planned", len(plan.Payload.Countries)),
		attribute.Int("countries.skipped", len(skipped)),
	)
	s.metrics.IncPlanned()
	s.logger.InfoContext(ctx, "event windows planned",
		"run_id", runID,
		"partners", plan.PartnerCount,
		"countries", len(plan.Payload.Countries),
		"skipped", len(skipped),
	)
	return plan, nil
}

func (s *hostEventService) dispatch(ctx context.Context, plan *domain.HostEventPlan) (*domain.DispatchAck, error) {
	ctx, span := s.tracer.Start(ctx, "hostevent.dispatch")
	defer span.End()

	ack, err := s.dispatcher.Send(ctx, plan.Payload)
	if err != nil {
		return nil, fmt.Errorf("dispatch invitations: %w", err)
	}
	s.metrics.IncDispatched()
	s.metrics.AddInvited(ack.Delivered)
	return ack, nil
}

func (s *hostEventService) fail(span trace.Span, err error) {
	s.metrics.IncFailed()
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
