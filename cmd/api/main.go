// Package main is the entry point for the Viaggio API server.
// Its sole responsibility is wiring dependencies together and starting the
// server. No business logic belongs here.
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

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/pbellini/viaggio/backend/internal/config"
	"github.com/pbellini/viaggio/backend/internal/domain"
	"github.com/pbellini/viaggio/backend/internal/genai"
	"github.com/pbellini/viaggio/backend/internal/handler"
	"github.com/pbellini/viaggio/backend/internal/middleware"
	"github.com/pbellini/viaggio/backend/internal/repo"
	"github.com/pbellini/viaggio/backend/internal/service"
)

// maxBodySize caps incoming request bodies at 1 MiB — preference text and
// CRUD payloads are tiny.
const maxBodySize = 1 << 20

func main() {
	// --- Config -----------------------------------------------------------
	// .env is optional and only used for local development.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		// Use the default logger before the real one is configured.
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	// --- Logger -----------------------------------------------------------
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// --- Database ---------------------------------------------------------
	// pgxpool manages a pool of Postgres connections.
	// New() does not open connections immediately — the first query does.
	pool, err := pgxpool.New(context.Background(), cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to create database pool", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	// Verify the DB is reachable before accepting traffic.
	if err := pool.Ping(context.Background()); err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	slog.Info("database connection established")

	// --- Repos and services ----------------------------------------------
	trips := repo.NewTripRepo(pool)
	days := repo.NewDayRepo(pool)
	dests := repo.NewDestinationRepo(pool)
	acts := repo.NewActivityRepo(pool)

	model := genai.New(cfg.GenAIBaseURL, cfg.GenAIAPIKey, cfg.GenAIModel, cfg.GenAITimeout)

	var cache service.GenerationCache
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			slog.Error("invalid REDIS_URL", "error", err)
			os.Exit(1)
		}
		cache = service.NewRedisCache(redis.NewClient(opts), time.Hour)
		slog.Info("generation cache enabled")
	}

	tripSvc := service.NewTripService(trips, dests)
	daySvc := service.NewDayService(trips, days)
	actSvc := service.NewActivityService(days, acts)
	genSvc := service.NewGenerationService(trips, days, dests, acts, model, cache, domain.DefaultRepairPolicy(), logger)
	exportSvc := service.NewExportService(trips, days, acts)

	// --- Router -----------------------------------------------------------
	// Middleware is applied in order: RequestID → RealIP → Logger → Recoverer.
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	r.Use(middleware.NewMaxBodySizeHandler(maxBodySize))

	limiter := middleware.NewRateLimiter(cfg.GenerateRPM)
	srvHandler := handler.NewServer(tripSvc, daySvc, actSvc, genSvc, exportSvc, limiter.Handler)
	r.Mount("/", srvHandler.Routes())

	// --- HTTP Server ------------------------------------------------------
	// Explicit timeouts prevent slowloris and resource exhaustion; the write
	// timeout leaves headroom for one full model call.
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: cfg.GenAITimeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown: wait for OS signal, then give in-flight requests
	// up to 15 seconds to complete before forcefully closing.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-stop
	slog.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}
