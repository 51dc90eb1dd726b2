package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/fitlocal/classdex/internal/config"
	"github.com/fitlocal/classdex/internal/db"
	dbRedis "github.com/fitlocal/classdex/internal/db/redis"
	logpkg "github.com/fitlocal/classdex/internal/logger"
	"github.com/fitlocal/classdex/internal/metrics"
	catalogrepo "github.com/fitlocal/classdex/internal/repository/catalog"
	historyrepo "github.com/fitlocal/classdex/internal/repository/history"
	chiTransport "github.com/fitlocal/classdex/internal/transport/chi"
	healthuc "github.com/fitlocal/classdex/internal/usecase/health"
	searchuc "github.com/fitlocal/classdex/internal/usecase/search"
	"github.com/fitlocal/classdex/internal/version"
)

func main() {
	// Load configuration based on ENV
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.New(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting classdex API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("db_driver", cfg.Database.Driver),
	)

	// Build the catalog collaborator for the configured driver.
	var (
		cat     searchuc.Catalog
		checker healthuc.CatalogChecker
		pinger  healthuc.StorePinger
		store   db.Store
	)
	switch cfg.Database.Driver {
	case "redis":
		store, err = dbRedis.NewStore(dbRedis.Config{
			Addrs:    cfg.Database.Addrs,
			Password: cfg.Database.Password,
		})
		if err != nil {
			logger.Fatal("Failed to create redis store", zap.Error(err))
		}
		defer store.Close()

		readiness := time.Duration(cfg.Database.ReadinessTimeout) * time.Second
		if err := store.WaitForReady(context.Background(), readiness); err != nil {
			logger.Fatal("Database not ready", zap.Error(err))
		}
		logger.Info("Connected to redis")

		repo := catalogrepo.New(store).WithKeyPrefix(cfg.Storage.KeyPrefix)
		cat, checker, pinger = repo, repo, store
	case "sqlite":
		repo, err := catalogrepo.OpenSQLite(cfg.Database.Path)
		if err != nil {
			logger.Fatal("Failed to open sqlite catalog", zap.Error(err))
		}
		defer repo.Close()
		logger.Info("Opened sqlite catalog", zap.String("path", cfg.Database.Path))

		cat, checker, pinger = repo, repo, repo
	case "memory":
		repo := catalogrepo.NewMemorySeeded(time.Now())
		logger.Info("Using seeded in-memory catalog")

		cat, checker = repo, repo
	default:
		logger.Fatal("Unknown database driver", zap.String("driver", cfg.Database.Driver))
	}

	// Register search metrics explicitly (no init())
	metrics.RegisterSearchMetrics()

	searchSvc := searchuc.New(cat)
	if cfg.History.Enabled && store != nil {
		ttl := time.Duration(cfg.History.RetentionHrs) * time.Hour
		searchSvc = searchSvc.WithHistory(
			historyrepo.New(store, cfg.Storage.KeyPrefix).WithTTL(ttl),
		)
		logger.Info("Search history enabled", zap.Duration("retention", ttl))
	}

	healthSvc := healthuc.New(pinger, checker)

	server := chiTransport.NewServer(searchSvc, healthSvc, logger).
		WithLimits(cfg.Search.TrendingLimit, cfg.History.RecentLimit)

	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	r.Use(chiTransport.BearerAuthMiddleware(cfg.Auth.APIKeys))
	r.Use(metrics.Middleware())
	server.Routes(r)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}

// jsonRecoverer is a recovery middleware that returns JSON instead of a plain text stacktrace.
func jsonRecoverer(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					logger.Error("panic recovered",
						zap.Any("panic", rvr),
						zap.Stack("stacktrace"),
					)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_ = json.NewEncoder(w).Encode(map[string]string{
						"code":    "internal_error",
						"message": "internal error",
					})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// wideEventMiddleware emits a canonical log line per request and propagates X-Request-ID.
func wideEventMiddleware(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// chi.middleware.RequestID already placed request_id in context
			requestID := chiMiddleware.GetReqID(r.Context())

			// Set X-Request-ID in response header
			if requestID != "" {
				w.Header().Set("X-Request-ID", requestID)
			}

			// Per-request logger with request_id
			reqLogger := logger.With(zap.String("request_id", requestID))
			ctx := logpkg.ContextWithLogger(r.Context(), reqLogger)

			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			// Canonical log line, one per request
			reqLogger.Info("http_request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("latency", time.Since(start)),
				zap.String("ip", r.RemoteAddr),
				zap.Int("response_bytes", ww.BytesWritten()),
			)
		})
	}
}
