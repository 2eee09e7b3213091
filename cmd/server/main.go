package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/radiusdt/wellwave-hub/internal/config"
	"github.com/radiusdt/wellwave-hub/internal/database"
	"github.com/radiusdt/wellwave-hub/internal/httpserver"
	"github.com/radiusdt/wellwave-hub/internal/hub"
	"github.com/radiusdt/wellwave-hub/internal/metrics"
	"github.com/radiusdt/wellwave-hub/internal/middleware"
	"github.com/radiusdt/wellwave-hub/internal/notion"
	"github.com/radiusdt/wellwave-hub/internal/storage"
)

func main() {
	// A missing .env is fine; the environment alone is enough.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "failed to read .env: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger, err := middleware.NewLogger(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("starting wellwave hub",
		zap.String("env", cfg.Server.Env),
		zap.String("addr", cfg.Server.Addr),
	)

	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.NewMetrics("wellwave", prometheus.DefaultRegisterer)
	}

	var api notion.API
	if cfg.Notion.Enabled() {
		api = notion.NewClient(cfg.Notion, logger, m)
		logger.Info("using hosted database", zap.String("base_url", cfg.Notion.BaseURL))
	} else {
		api = notion.NewMemoryStore()
		logger.Warn("NOTION_TOKEN not set, using in-memory store")
	}

	var redis *database.RedisDB
	if cfg.Redis.Enabled() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		redis, err = database.NewRedisDB(ctx, cfg.Redis, logger)
		cancel()
		if err != nil {
			logger.Warn("Redis not available, rate limits stay per process", zap.Error(err))
			redis = nil
		} else {
			defer redis.Close()
		}
	}

	repos := storage.NewNotionRepos(api, cfg.Notion, logger)
	services := hub.NewServices(hub.Deps{
		Brands:       repos.Brands,
		Influencers:  repos.Influencers,
		Campaigns:    repos.Campaigns,
		DailyReports: repos.DailyReports,
		Mentions:     repos.Mentions,
		Schema:       repos.Schema,
		Logger:       logger,
		Metrics:      m,
	})

	handler := httpserver.NewServer(&httpserver.Dependencies{
		Services: services,
		Redis:    redis,
		Config:   cfg,
		Logger:   logger,
		Metrics:  m,
	})

	rl := middleware.NewRateLimitMiddleware(cfg.RateLimit, logger)
	rl.SetMetrics(m)
	if redis != nil {
		rl.SetWindowCounter(middleware.NewRedisWindowCounter(redis.Client, cfg.RateLimit.PerIPBurst, cfg.RateLimit.Window))
	}

	// Outermost first: request id, recovery, logging, rate limit.
	handler = rl.Handler(handler)
	handler = middleware.NewLoggingMiddleware(logger).Handler(handler)
	handler = middleware.NewRecoveryMiddleware(logger).Handler(handler)
	handler = middleware.RequestID(handler)

	srv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.Notion.Timeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	stopCleanup := make(chan struct{})
	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				rl.CleanupIPLimiters()
			case <-stopCleanup:
				return
			}
		}
	}()

	go func() {
		logger.Info("HTTP server listening", zap.String("addr", cfg.Server.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")
	close(stopCleanup)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", zap.Error(err))
	}

	logger.Info("server stopped")
}
