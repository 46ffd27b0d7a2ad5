package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nats-io/nats.go"

	"postboard/config"
	"postboard/events"
	"postboard/internal/retry"
	"postboard/notifier"
	"postboard/storage"
	"postboard/ui"
	"postboard/ui/service"
)

func main() {
	// 1. Config & Logger
	cfg := config.Load()
	initLogger(cfg)
	slog.Info("Starting postboard", "env", cfg.Env, "db_host", cfg.PostgresHost)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 2. Database pool. Creating the pool does not require Postgres to be
	// reachable yet; readiness is handled by the background retry below.
	pool, err := pgxpool.New(ctx, cfg.DatabaseURL())
	if err != nil {
		slog.Error("Invalid database configuration", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	store := storage.NewPostgresStore(pool)

	// 3. Startup readiness: ensure the posts table exists, retrying while
	// Postgres comes up. Runs in the background so the listener binds
	// immediately; until initialization succeeds, requests fail with
	// per-request store errors.
	go func() {
		retryCfg := &retry.Config{
			MaxAttempts: retry.DefaultMaxAttempts,
			Delay:       retry.DefaultDelay,
			OnRetry: func(attempt int, err error) {
				slog.Warn("Database initialization attempt failed",
					"attempt", attempt, "max_attempts", retry.DefaultMaxAttempts, "error", err)
			},
		}
		if err := retry.Do(ctx, retryCfg, store.EnsureSchema); err != nil {
			slog.Error("Database initialization failed after all retries", "error", err)
			return
		}
		slog.Info("Database initialized successfully")
	}()

	// 4. Optional event broker
	var publisher events.Publisher = events.NoopPublisher{}
	if cfg.NatsURL != "" {
		nc, err := nats.Connect(cfg.NatsURL)
		if err != nil {
			slog.Warn("Unable to connect to NATS, events disabled", "url", cfg.NatsURL, "error", err)
		} else {
			defer nc.Close()
			publisher = events.NewNatsPublisher(nc)
			slog.Info("Connected to NATS", "url", cfg.NatsURL)
		}
	}

	// 5. Live update notifier
	changes := notifier.New(pool, &notifier.Config{
		OnError: func(err error) {
			slog.Warn("Post change listener disconnected", "error", err)
		},
	})
	if err := changes.Start(ctx); err != nil {
		slog.Error("Failed to start change notifier", "error", err)
		os.Exit(1)
	}
	defer func() { _ = changes.Stop() }()

	// 6. HTTP server
	svc := service.New(store, publisher, slog.Default())
	handler := ui.Handler(svc, changes, &ui.Config{Logger: slog.Default()})

	server := &http.Server{
		Addr:    ":" + config.HTTPPort,
		Handler: handler,
	}

	go func() {
		slog.Info("Server started", "port", config.HTTPPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			os.Exit(1)
		}
	}()

	// 7. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
	}

	slog.Info("Server exited")
}

func initLogger(cfg config.Config) {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if cfg.Env == "local" {
		opts.Level = slog.LevelDebug
	}
	var handler slog.Handler
	if cfg.Env == "local" {
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}
	slog.SetDefault(slog.New(handler))
}
