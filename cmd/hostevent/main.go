// Command hostevent plans each country's partner event once and sends the invitations.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"partnerevents/config"
	"partnerevents/internal/app"
	"partnerevents/internal/observability"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		log.Printf("load config: %v", err)
		return 1
	}
	logger := config.NewLogger(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracer, err := observability.InitTracer(ctx, cfg.ServiceName, cfg.OTLPEndpoint)
	if err != nil {
		logger.Error("init tracer", "err", err)
		return 1
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdownTracer(flushCtx)
	}()

	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		logger.Error("build app", "err", err)
		return 1
	}
	defer a.Close()

	res, err := a.Service.Run(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "host event run failed", "err", err)
		return 1
	}
	for _, c := range res.Plan.Payload.Countries {
		logger.Info("country window", "country", c.Name, "start_date", c.StartDate, "attendees", c.AttendeeCount)
	}
	if res.Ack != nil && res.Ack.Body != "" {
		logger.Info("dispatch response", "status", res.Ack.StatusCode, "body", res.Ack.Body)
	}
	return 0
}
