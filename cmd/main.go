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
	"time"

	httpadapter "stellar-fund/internal/adapter/http"
	"stellar-fund/internal/adapter/memory"
	"stellar-fund/internal/adapter/postgres"
	"stellar-fund/internal/adapter/sqlite"
	"stellar-fund/internal/adapter/stellar"
	"stellar-fund/internal/adapter/usecase"
	"stellar-fund/internal/adapter/worker"
	"stellar-fund/internal/config"
	"stellar-fund/internal/core/port"
	"stellar-fund/internal/db"
)

// main is the entry point of the stellar-fund service. It loads
// configuration, opens the selected campaign store (running migrations when
// configured), checks that Horizon answers, then starts the reconciler and
// the HTTP server. On receiving a termination signal it gracefully shuts
// both down.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return
	}
	logger := cfg.Log.New(os.Stdout, cfg.Env)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	store, closeStore, err := openStore(ctx, cfg, logger)
	if err != nil {
		logger.Error("campaign store error", slog.Any("error", err))
		return
	}
	defer closeStore()

	gateway := stellar.New(stellar.NewClient(cfg.Stellar), cfg.Stellar)
	pingCtx, cancelPing := context.WithTimeout(ctx, cfg.Stellar.RequestTimeout)
	err = gateway.Ping(pingCtx)
	cancelPing()
	if err != nil {
		logger.Error("horizon unreachable", slog.String("url", cfg.Stellar.HorizonURL), slog.Any("error", err))
		return
	}

	svc := usecase.NewCampaignUseCase(store, gateway, logger, usecase.Options{
		StartingBalance: cfg.Stellar.StartingBalance,
		MaxRetries:      cfg.Reconcile.MaxRetries,
		FaucetEnabled:   cfg.Stellar.EnableFaucet,
	})

	workerDone := make(chan struct{})
	if cfg.Reconcile.Enabled {
		reconciler := worker.Reconciler{Campaigns: svc, Interval: cfg.Reconcile.Interval, Logger: logger}
		go func() {
			defer close(workerDone)
			_ = reconciler.Run(ctx)
		}()
	} else {
		close(workerDone)
	}

	handler := httpadapter.NewHandler(svc, logger, cfg.HTTP.CORSOrigins)
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           handler.Router(),
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	select {
	case <-ctx.Done():
		exitCode = 0
	case err = <-serveErr:
		logger.Error("server error", slog.Any("error", err))
		cancel()
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancelShutdown()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
	cancel()
	select {
	case <-workerDone:
	case <-time.After(cfg.HTTP.ShutdownTimeout):
		logger.Warn("reconciler did not stop in time")
	}
}

// openStore returns the campaign store selected by STORE_DRIVER and a
// function releasing its resources.
func openStore(ctx context.Context, cfg config.Config, logger *slog.Logger) (port.CampaignStore, func(), error) {
	switch cfg.Store.Normalized() {
	case "postgres":
		if cfg.Psql.RunMigrations {
			if err := db.Migrate("postgres", cfg.Psql.Addr.String()); err != nil {
				return nil, nil, fmt.Errorf("run postgres migrations: %w", err)
			}
			logger.Info("migrations applied successfully")
		}
		pool, err := db.NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			return nil, nil, fmt.Errorf("database connection error: %w", err)
		}
		return postgres.NewCampaignStore(pool), pool.Close, nil
	case "sqlite":
		sqlDB, err := db.OpenSQLite(ctx, cfg.SQLite)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("sqlite store opened", slog.String("path", cfg.SQLite.Path))
		return sqlite.NewCampaignStore(sqlDB), func() { _ = sqlDB.Close() }, nil
	case "memory":
		logger.Warn("using in-memory campaign store; data is lost on restart")
		return memory.NewCampaignStore(), func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}
