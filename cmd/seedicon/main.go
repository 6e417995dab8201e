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

	"github.com/kailas-cloud/seedicon/internal/config"
	"github.com/kailas-cloud/seedicon/internal/db"
	dbRedis "github.com/kailas-cloud/seedicon/internal/db/redis"
	dbValkey "github.com/kailas-cloud/seedicon/internal/db/valkey"
	"github.com/kailas-cloud/seedicon/internal/domain/figure"
	logpkg "github.com/kailas-cloud/seedicon/internal/logger"
	"github.com/kailas-cloud/seedicon/internal/metrics"
	"github.com/kailas-cloud/seedicon/internal/repository/paramcache"
	chiTransport "github.com/kailas-cloud/seedicon/internal/transport/chi"
	facemeshuc "github.com/kailas-cloud/seedicon/internal/usecase/facemesh"
	healthuc "github.com/kailas-cloud/seedicon/internal/usecase/health"
	identiconuc "github.com/kailas-cloud/seedicon/internal/usecase/identicon"
	"github.com/kailas-cloud/seedicon/internal/version"
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

	logger.Info("Starting seedicon API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("db_driver", cfg.Database.Driver),
		zap.Strings("db_addrs", cfg.Database.Addrs),
	)

	// Create cache store based on driver. The store is optional: with no
	// addrs configured the service runs on the in-process LRU alone.
	var store db.Store
	if len(cfg.Database.Addrs) > 0 {
		switch cfg.Database.Driver {
		case "valkey":
			store, err = dbValkey.NewStore(dbValkey.Config{
				Addrs:    cfg.Database.Addrs,
				Password: cfg.Database.Password,
			})
		case "redis":
			store, err = dbRedis.NewStore(dbRedis.Config{
				Addrs:    cfg.Database.Addrs,
				Password: cfg.Database.Password,
			})
		default:
			logger.Fatal("Unknown database driver", zap.String("driver", cfg.Database.Driver))
		}
		if err != nil {
			logger.Fatal("Failed to create cache store", zap.Error(err))
		}
		defer store.Close()

		ctx := context.Background()
		if err := store.WaitForReady(ctx, time.Duration(cfg.Database.ReadinessTimeout)*time.Second); err != nil {
			logger.Fatal("Cache store not ready", zap.Error(err))
		}
		logger.Info("Connected to cache store")
	} else {
		logger.Info("No cache store configured, using in-process LRU only")
	}

	// Register derivation metrics explicitly (no init())
	metrics.RegisterDerivationMetrics()

	// Parameter cache — LRU in front of the shared store
	cache := paramcache.New(
		store,
		cfg.Cache.KeyPrefix,
		time.Duration(cfg.Cache.TTLSec)*time.Second,
		cfg.Cache.LRUSize,
		metrics.ParamCacheTotal,
		logger,
	)

	// Create use case services
	identiconSvc := identiconuc.New(
		[]figure.Composer{figure.Classic{}, figure.Orbit{}},
		cfg.Identicon.DefaultStrategy,
		cfg.Identicon.DefaultPrimitives,
		cfg.Identicon.MaxPrimitives,
	).WithCache(cache)

	meshSvc := facemeshuc.New()
	healthSvc := healthuc.New(store)

	// Create chi server
	server := chiTransport.NewServer(identiconSvc, meshSvc, healthSvc, logger)

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

			// Canonical log line — one line per request
			reqLogger.Info("http_request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("latency", time.Since(start)),
				zap.String("ip", r.RemoteAddr),
				zap.Int64("content_length", r.ContentLength),
				zap.String("user_agent", r.UserAgent()),
				zap.Int("response_bytes", ww.BytesWritten()),
			)
		})
	}
}
