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

	"github.com/opencamara/actadex/internal/config"
	"github.com/opencamara/actadex/internal/corpus"
	dbRedis "github.com/opencamara/actadex/internal/db/redis"
	logpkg "github.com/opencamara/actadex/internal/logger"
	"github.com/opencamara/actadex/internal/metrics"
	"github.com/opencamara/actadex/internal/repository/narrcache"
	chiTransport "github.com/opencamara/actadex/internal/transport/chi"
	openaiNarr "github.com/opencamara/actadex/internal/transport/openai"
	"github.com/opencamara/actadex/internal/usecase/answer"
	healthuc "github.com/opencamara/actadex/internal/usecase/health"
	queryuc "github.com/opencamara/actadex/internal/usecase/query"
	"github.com/opencamara/actadex/internal/version"
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

	logger.Info("Starting actadex API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("corpus_path", cfg.Corpus.Path),
		zap.Bool("narrative_enabled", cfg.NarrativeEnabled()),
	)

	// Register narrative metrics explicitly (no init())
	metrics.RegisterNarrativeMetrics()

	// Corpus store — warm the lazy load so a broken corpus fails at startup,
	// not on the first query.
	corpusStore := corpus.NewStore(cfg.Corpus.Path)
	chunks, err := corpusStore.Chunks()
	if err != nil {
		logger.Fatal("Failed to load corpus", zap.Error(err))
	}
	logger.Info("Corpus loaded", zap.Int("chunks", len(chunks)))

	// Narrator chain — composition root
	ctx := context.Background()
	var narrator queryuc.Narrator
	var narrChecker healthuc.NarrativeChecker
	if cfg.NarrativeEnabled() {
		base := openaiNarr.NewNarrator(&openaiNarr.Config{
			APIKey:   cfg.Narrative.APIKey,
			BaseURL:  cfg.Narrative.BaseURL,
			Model:    cfg.Narrative.Model,
			Provider: cfg.Narrative.Provider,
			Logger:   logger,
		})
		narrator = base
		narrChecker = base

		if cfg.CacheEnabled() {
			store, err := dbRedis.NewStore(dbRedis.Config{
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
			logger.Info("Connected to narrative cache", zap.Strings("addrs", cfg.Cache.Addrs))

			ttl := time.Duration(cfg.Narrative.CacheTTLSec) * time.Second
			narrator = narrcache.New(base, store, ttl, metrics.NarrativeCacheTotal, logger)
		}

		logger.Info("Narrator created",
			zap.String("provider", cfg.Narrative.Provider),
			zap.String("model", cfg.Narrative.Model),
			zap.Bool("cached", cfg.CacheEnabled()),
		)
	}

	// Use case services
	querySvc := queryuc.New(corpusStore, answer.NewBuilder())
	if narrator != nil {
		querySvc = querySvc.WithNarrator(narrator)
	}
	healthSvc := healthuc.New(corpusStore, narrChecker)

	// Create chi server
	server := chiTransport.NewServer(querySvc, healthSvc, logger)

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
