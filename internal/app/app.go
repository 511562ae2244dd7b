// Package app builds the host-event service from configuration.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"partnerevents/config"
	"partnerevents/internal/adapters/directory"
	"partnerevents/internal/adapters/dispatch"
	"partnerevents/internal/adapters/email"
	"partnerevents/internal/domain"
	"partnerevents/internal/observability"
	"partnerevents/internal/repository/postgres"
	"partnerevents/internal/services"
)

// App holds the wired service and what must be released on shutdown.
type App struct {
	Service domain.HostEventService
	Metrics *observability.RunMetrics
	closers []func() error
}

// Close releases resources opened by New, such as the database pool.
func (a *App) Close() error {
	var firstErr error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// New wires the partner directory and invitation dispatcher selected by cfg.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	a := &App{Metrics: observability.NewRunMetrics()}
	httpClient := &http.Client{Timeout: cfg.HTTPTimeout}

	dir, err := a.newDirectory(ctx, cfg, httpClient)
	if err != nil {
		_ = a.Close()
		return nil, err
	}
	disp, err := newDispatcher(cfg, httpClient, logger)
	if err != nil {
		_ = a.Close()
		return nil, err
	}

	a.Service = services.NewHostEventService(dir, disp, logger, a.Metrics, cfg.RunTimeout)
	logger.Info("host event service ready",
		"partner_source", cfg.PartnerSource,
		"dispatch_provider", cfg.DispatchProvider,
	)
	return a, nil
}

func (a *App) newDirectory(ctx context.Context, cfg *config.Config, client *http.Client) (domain.PartnerDirectory, error) {
	switch cfg.PartnerSource {
	case config.PartnerSourcePostgres:
		db, err := postgres.Open(ctx, cfg.DBUrl)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, db.Close)
		return postgres.NewPartnerRepository(db), nil
	case config.PartnerSourceHTTP, "":
		return directory.NewHTTPDirectory(client, cfg.DirectoryURL, cfg.AccessKey), nil
	default:
		return nil, fmt.Errorf("unknown partner source %q", cfg.PartnerSource)
	}
}

func newDispatcher(cfg *config.Config, client *http.Client, logger *slog.Logger) (domain.InvitationDispatcher, error) {
	switch cfg.DispatchProvider {
	case config.DispatchProviderEmail:
		mailer, err := email.NewMailer(email.MailerConfig{
			Provider:    cfg.Email.Provider,
			FromAddress: cfg.Email.FromAddress,
			FromName:    cfg.Email.FromName,
			SES: email.SESConfig{
				Region:             cfg.Email.Region,
				AccessKeyID:        cfg.Email.AccessKeyID,
				SecretAccessKey:    cfg.Email.SecretAccessKey,
				InsecureSkipVerify: cfg.Email.InsecureSkipVerify,
			},
		}, logger)
		if err != nil {
			return nil, fmt.Errorf("create mailer: %w", err)
		}
		renderer, err := email.NewTemplateRenderer()
		if err != nil {
			return nil, err
		}
		emails := services.NewEmailService(mailer, renderer, logger)
		return services.NewEmailDispatcher(emails), nil
	case config.DispatchProviderHTTP, "":
		return dispatch.NewHTTPDispatcher(client, cfg.DispatchURL, cfg.AccessKey), nil
	default:
		return nil, fmt.Errorf("unknown dispatch provider %q", cfg.DispatchProvider)
	}
}
