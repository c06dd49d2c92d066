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
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/slabstack/smartpills/internal/config"
	"github.com/slabstack/smartpills/internal/db"
	dbRedis "github.com/slabstack/smartpills/internal/db/redis"
	logpkg "github.com/slabstack/smartpills/internal/logger"
	"github.com/slabstack/smartpills/internal/metrics"
	"github.com/slabstack/smartpills/internal/repository/pillcache"
	"github.com/slabstack/smartpills/internal/repository/watchstore"
	algoliaTransport "github.com/slabstack/smartpills/internal/transport/algolia"
	chiTransport "github.com/slabstack/smartpills/internal/transport/chi"
	healthuc "github.com/slabstack/smartpills/internal/usecase/health"
	pillsuc "github.com/slabstack/smartpills/internal/usecase/pills"
	watchuc "github.com/slabstack/smartpills/internal/usecase/watch"
	"github.com/slabstack/smartpills/internal/version"
)

func main() {
	// Load configuration based on ENV
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting smartpills API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("index", cfg.Algolia.Index),
		zap.Bool("cache_enabled", cfg.Cache.Enabled()),
	)

	// Optional cache store. The service runs fully without it; every
	// request just pays the index round trips.
	ctx := context.Background()
	var store db.Store
	if cfg.Cache.Enabled() {
		store, err = dbRedis.NewStore(dbRedis.Config{
			Addrs:    cfg.Cache.Addrs,
			Password: cfg.Cache.Password,
		})
		if err != nil {
			logger.Fatal("Failed to create cache store", zap.Error(err))
		}
		defer store.Close()

		readiness := time.Duration(cfg.Cache.ReadinessTimeout) * time.Second
		if err := store.WaitForReady(ctx, readiness); err != nil {
			logger.Fatal("Cache store not ready", zap.Error(err))
		}
		logger.Info("Connected to cache store")
	}

	// Register pill metrics explicitly (no init())
	metrics.RegisterPillMetrics()

	index := algoliaTransport.NewIndex(&algoliaTransport.Config{
		AppID:     cfg.Algolia.AppID,
		APIKey:    cfg.Algolia.APIKey,
		IndexName: cfg.Algolia.Index,
		Logger:    logger,
	})

	// Pass nil interface (not typed nil pointer!) if the cache is not
	// configured. Go gotcha: a typed nil wrapped in an interface != nil.
	var responseCache pillsuc.ResponseCache
	var watchSvc *watchuc.Service
	var cachePinger healthuc.CachePinger
	if store != nil {
		responseCache = pillcache.New(
			store,
			time.Duration(cfg.Cache.QueryTTLSec)*time.Second,
			time.Duration(cfg.Cache.DefaultTTLSec)*time.Second,
			metrics.CacheOpsTotal,
			logger,
		)
		watchSvc = watchuc.New(index, watchstore.New(store), logger)
		cachePinger = store
	}

	pillsSvc := pillsuc.New(index, responseCache, pillsuc.Config{
		Threshold:   cfg.Pills.Threshold,
		SampleSize:  cfg.Pills.SampleSize,
		Concurrency: cfg.Pills.LookupConcurrency,
	}, logger)

	healthSvc := healthuc.New(index, cachePinger)

	server := chiTransport.NewServer(pillsSvc, watchSvc, healthSvc, logger)

	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	r.Use(chiTransport.CORSMiddleware(cfg.HTTP.AllowedOrigins))
	r.Use(chiTransport.RateLimitMiddleware(cfg.RateLimit.RequestsPerSec, cfg.RateLimit.Burst))
	r.Use(metrics.Middleware())
	server.Register(r)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

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
						"error": "internal error",
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
				zap.String("user_agent", r.UserAgent()),
				zap.Int("response_bytes", ww.BytesWritten()),
			)
		})
	}
}
