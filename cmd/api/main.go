// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command api is the entry point for the portfolio catalog HTTP API.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to PostgreSQL (pgxpool) and Redis.
//  4. Run database migrations when AUTO_MIGRATE is set.
//  5. Wire services and HTTP handlers.
//  6. Start HTTP server with graceful shutdown.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ptd0409/portfolio/internal/api"
	"github.com/ptd0409/portfolio/internal/auth"
	"github.com/ptd0409/portfolio/internal/core/item"
	"github.com/ptd0409/portfolio/internal/core/language"
	"github.com/ptd0409/portfolio/internal/core/media"
	"github.com/ptd0409/portfolio/internal/core/tag"
	"github.com/ptd0409/portfolio/internal/platform/config"
	"github.com/ptd0409/portfolio/internal/platform/constants"
	"github.com/ptd0409/portfolio/internal/platform/migration"
	pgstore "github.com/ptd0409/portfolio/internal/platform/postgres"
	redisstore "github.com/ptd0409/portfolio/internal/platform/redis"
	"github.com/ptd0409/portfolio/internal/platform/sec"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	log := newLogger(slog.LevelInfo)
	slog.SetDefault(log)

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		log = newLogger(slog.LevelDebug)
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.Any("languages", cfg.SupportedLanguages),
	)

	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// ── 3. PostgreSQL & Redis ─────────────────────────────────────────────
	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer func() {
		log.Info("closing postgres pool")
		pool.Close()
	}()

	rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
	must(log, err, "connect to redis")
	defer func() {
		log.Info("closing redis client")
		if cerr := rdb.Close(); cerr != nil {
			log.Error("redis close error", slog.Any("error", cerr))
		}
	}()

	// ── 4. Migrations ─────────────────────────────────────────────────────
	if cfg.AutoMigrate {
		must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")
	}

	// ── 5. Domain Wiring ──────────────────────────────────────────────────
	registry, err := language.NewRegistry(cfg.SupportedLanguages, cfg.DefaultLanguage)
	must(log, err, "build language registry")

	tokens, err := sec.NewTokenService(cfg.JWTSecret, cfg.JWTIssuer)
	must(log, err, "initialize token service")

	store, err := media.NewDiskStore(cfg.UploadDir)
	must(log, err, "prepare upload directory")

	admin := auth.Admin{Username: cfg.AdminUsername, PasswordHash: cfg.AdminPasswordHash, TokenTTL: cfg.AccessTokenTTL}
	throttle := auth.NewRedisThrottle(rdb, cfg.LoginMaxAttempts, cfg.LoginLockout)

	liveness, readiness := api.NewHealthHandlers([]api.HealthCheck{
		{Name: "postgres", Check: func(ctx context.Context) error { return pgstore.Ping(ctx, pool) }},
		{Name: "redis", Check: func(ctx context.Context) error { return redisstore.Ping(ctx, rdb) }},
	}, log)

	handlers := api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Auth:      auth.NewHandler(auth.NewService(admin, tokens, throttle, log)),
		Items:     item.NewHandler(item.NewService(item.NewPostgresRepository(pool), registry, log)),
		Tags:      tag.NewHandler(tag.NewService(tag.NewPostgresRepository(pool), registry, log)),
		Languages: language.NewHandler(registry),
		Media:     media.NewHandler(media.NewService(store, cfg.MaxUploadBytes(), log)),
		Uploads:   http.FileServer(http.Dir(cfg.UploadDir)),
	}

	// ── 6. HTTP Server ────────────────────────────────────────────────────
	serverCtx, serverCancel := context.WithCancel(context.Background())
	defer serverCancel()

	server := api.NewServer(serverCtx, cfg, log, tokens, handlers)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case sig := <-quit:
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server startup error", slog.Any("error", err))
	}

	log.Info("shutting down server", slog.Duration("timeout", constants.ShutdownTimeout))
	if err := server.Shutdown(constants.ShutdownTimeout); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server stopped cleanly")
}

func newLogger(level slog.Level) *slog.Logger {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With(slog.String("app", constants.AppName), slog.String("version", constants.AppVersion))
}

// must logs a structured fatal error and terminates the process if err is non-nil.
// Startup wiring only.
func must(log *slog.Logger, err error, step string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", step),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
