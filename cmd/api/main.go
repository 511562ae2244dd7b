package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"partnerevents/config"
	_ "partnerevents/docs"
	"partnerevents/internal/app"
	delivery "partnerevents/internal/delivery/http"
	"partnerevents/internal/delivery/http/controllers"
	"partnerevents/internal/observability"
)

// @title Partner Events API
// @version 1.0
// @description Selects each country's best two-day partner event window and sends the invitations.
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := config.NewLogger(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracer, err := observability.InitTracer(ctx, cfg.ServiceName, cfg.OTLPEndpoint)
	if err != nil {
		logger.Error("init tracer", "err", err)
		os.Exit(1)
	}

	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		logger.Error("build app", "err", err)
		os.Exit(1)
	}

	router := delivery.NewRouter(logger,
		controllers.NewHostEventController(logger, a.Service),
		controllers.NewHealthController(a.Metrics),
	)
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      cfg.RunTimeout + 5*time.Second,
	}

	go func() {
		logger.Info("server starting", "addr", srv.Addr, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "err", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown", "err", err)
	}
	if err := a.Close(); err != nil {
		logger.Error("close app", "err", err)
	}
	if err := shutdownTracer(shutdownCtx); err != nil {
		logger.Error("tracer shutdown", "err", err)
	}
}
