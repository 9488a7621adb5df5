// Stockyard API server.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"stockyard/internal/infrastructure/config"
	v1 "stockyard/internal/infrastructure/http/v1"
	"stockyard/internal/infrastructure/storage/postgres"
	"stockyard/pkg/logger"
	"stockyard/pkg/numerator"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Default().Fatalw("failed to load configuration", "error", err)
	}

	log, err := logger.New(logger.Config{
		Level:       cfg.Log.Level,
		Development: cfg.Log.Development,
	})
	if err != nil {
		logger.Default().Fatalw("failed to initialize logger", "error", err)
	}
	defer log.Sync()

	ctx := context.Background()

	pool, err := postgres.NewPool(ctx, postgres.PoolConfig{
		DSN:               cfg.Database.URL,
		MaxConns:          cfg.Database.MaxConns,
		MinConns:          cfg.Database.MinConns,
		MaxConnLifetime:   cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:   cfg.Database.MaxConnIdleTime,
		HealthCheckPeriod: cfg.Database.HealthCheckPeriod,
	})
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}
	defer pool.Close()

	log.Infow("connected to database",
		"max_conns", cfg.Database.MaxConns,
		"min_conns", cfg.Database.MinConns)

	txManager := postgres.NewTxManager(pool)
	numeratorService := numerator.New(pool)

	var auditService *postgres.AuditService
	if cfg.Audit.Enabled {
		auditService, err = postgres.NewAuditService(txManager)
		if err != nil {
			log.Fatalw("failed to initialize audit service", "error", err)
		}
	}

	router := v1.NewRouter(v1.RouterConfig{
		Pool:      pool,
		TxManager: txManager,
		Logger:    log,
		Numerator: numeratorService,
		Audit:     auditService,
	})

	server := &http.Server{
		Addr:         ":" + cfg.HTTP.Port,
		Handler:      router,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	go func() {
		log.Infow("starting HTTP server", "addr", server.Addr, "env", cfg.App.Env)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalw("HTTP server failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	log.Infow("shutting down", "signal", sig.String())

	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Errorw("graceful shutdown failed", "error", err)
	}

	log.Infow("server stopped")
}
