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

	"github.com/prometheus/client_golang/prometheus"

	httpadapter "agency-hub/internal/adapter/http"
	"agency-hub/internal/adapter/memory"
	"agency-hub/internal/adapter/postgres"
	"agency-hub/internal/adapter/usecase"
	"agency-hub/internal/config"
	"agency-hub/internal/config/configs"
	"agency-hub/internal/core/port"
	"agency-hub/internal/db"
)

// main loads configuration, opens the configured record store, optionally
// seeds it and serves the dashboard API until SIGINT or SIGTERM arrives.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return
	}

	logger := slog.New(cfg.Log.Handler(os.Stdout)).With(slog.String("env", cfg.Env))

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	store, closeStore, err := openStore(ctx, cfg, logger)
	if err != nil {
		logger.Error("record store error", slog.String("backend", cfg.Storage.Backend), slog.Any("error", err))
		return
	}
	defer closeStore()

	if cfg.Storage.Seed {
		if err = db.Seed(ctx, store, logger); err != nil {
			logger.Error("seed error", slog.Any("error", err))
			return
		}
	}

	var metrics *httpadapter.Metrics
	if cfg.Metrics.Enabled {
		metrics = httpadapter.NewMetrics(prometheus.NewRegistry(), cfg.Metrics.Path)
	}

	dashboard := usecase.NewDashboardUseCase(store, logger, cfg.Dashboard.ClientSatisfaction)
	users := usecase.NewUserUseCase(store)

	handler := httpadapter.NewHandler(store, dashboard, users, logger, metrics)
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:      handler.Router(),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server listening",
			slog.Int("port", int(cfg.HTTP.Port)),
			slog.String("backend", cfg.Storage.Backend),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err = <-serveErr:
		logger.Error("server error", slog.Any("error", err))
		return
	case <-ctx.Done():
		exitCode = 0
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer shutdownCancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
		exitCode = 1
	} else {
		logger.Info("server gracefully stopped")
	}
}

// openStore builds the record store selected by cfg.Storage.Backend. The
// returned func releases its resources.
func openStore(ctx context.Context, cfg config.Config, logger *slog.Logger) (port.RecordStore, func(), error) {
	if cfg.Storage.Backend != configs.BackendPostgres {
		return memory.NewStore(), func() {}, nil
	}

	if cfg.Psql.RunMigrations {
		if err := db.Migrate(cfg.Psql.Addr.String()); err != nil {
			return nil, nil, fmt.Errorf("migrate: %w", err)
		}
		logger.Info("migrations applied successfully")
	}

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		return nil, nil, fmt.Errorf("connect: %w", err)
	}
	return postgres.NewRecordStore(pool), pool.Close, nil
}
