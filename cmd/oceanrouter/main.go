package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"ocean-router/internal/config"
	"ocean-router/internal/logging"
	"ocean-router/internal/planner"
	"ocean-router/internal/weather"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "oceanrouter: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger := logging.New(cfg.Logging)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, err := loadGraph(cfg.Grid, logger)
	if err != nil {
		return err
	}

	samples, err := weather.Collect(ctx, weather.Simulated{Seed: cfg.Weather.Seed}, g.Nodes(), weather.CollectOptions{
		Concurrency: cfg.Weather.Concurrency,
		Logger:      logger,
	})
	if err != nil {
		return fmt.Errorf("collect weather: %w", err)
	}
	cost := weather.WindModel{Samples: samples, Default: cfg.Weather.DefaultWind}

	p, err := planner.New(g, cost,
		planner.WithSnapCacheSize(cfg.Planner.SnapCacheSize),
		planner.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("create planner: %w", err)
	}

	srv := &http.Server{
		Addr:         cfg.HTTP.Addr(),
		Handler:      newServer(p, cfg.Voyage.HazardThresholdKm, logger).routes(),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting",
			slog.String("addr", srv.Addr),
			slog.Int("nodes", g.Len()),
			slog.Int("edges", g.EdgeCount()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return <-errCh
}
