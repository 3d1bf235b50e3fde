// Package server собирает все зависимости процесса и запускает HTTP сервер.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/akshat3144/inkquiry/internal/server/auth"
	"github.com/akshat3144/inkquiry/internal/server/config"
	"github.com/akshat3144/inkquiry/internal/server/handlers"
	"github.com/akshat3144/inkquiry/internal/server/metrics"
	"github.com/akshat3144/inkquiry/internal/server/middleware"
	"github.com/akshat3144/inkquiry/internal/server/storage/sqlite"
	"github.com/akshat3144/inkquiry/internal/vision"
)

const shutdownTimeout = 10 * time.Second

// NewLogger создает slog логгер с уровнем из конфигурации
func NewLogger(level string) *slog.Logger {
	var slogLevel slog.Level
	switch level {
	case "debug":
		slogLevel = slog.LevelDebug
	case "warn":
		slogLevel = slog.LevelWarn
	case "error":
		slogLevel = slog.LevelError
	default:
		slogLevel = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slogLevel})
	return slog.New(handler)
}

// Run строит все компоненты и обслуживает HTTP до отмены контекста.
// Хранилище конструируется один раз на старте процесса и передается
// компонентам явно, без глобального состояния
func Run(ctx context.Context, cfg *config.Config, version string) error {
	logger := NewLogger(cfg.LogLevel)

	logger.Info("starting server",
		slog.String("addr", cfg.Addr),
		slog.String("version", version))

	store, err := sqlite.New(ctx, cfg.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to init storage: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("failed to close storage", slog.Any("error", err))
		}
	}()

	registry := prometheus.NewRegistry()
	collector := metrics.NewCollector(registry)

	// Ядро аутентификации
	hasher := auth.NewPasswordHasher(cfg.BcryptCost)
	codec := auth.NewTokenCodec([]byte(cfg.JWTSecret))
	authenticator := auth.NewAuthenticator(store, hasher)
	validator := auth.NewSessionValidator(codec, store)

	visionClient := vision.NewClient(cfg.VisionBaseURL, cfg.VisionAPIKey, cfg.VisionModel)

	// Handlers
	healthHandler := handlers.NewHealthHandler(logger, version)
	authHandler := handlers.NewAuthHandler(logger, store, authenticator, hasher, codec, cfg.TokenTTL, collector)
	notebookHandler := handlers.NewNotebookHandler(logger, store)
	analyzeHandler := handlers.NewAnalyzeHandler(logger, visionClient)

	protected := middleware.AuthMiddleware(logger, validator, collector)

	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", healthHandler.Root)
	mux.HandleFunc("GET /health", healthHandler.Health)
	mux.Handle("GET /metrics", metrics.Handler(registry))

	mux.HandleFunc("POST /auth/signup", authHandler.Signup)
	mux.HandleFunc("POST /auth/token", authHandler.Login)
	mux.Handle("GET /auth/me", protected(http.HandlerFunc(authHandler.Me)))

	mux.Handle("GET /notebook/pages", protected(http.HandlerFunc(notebookHandler.ListPages)))
	mux.Handle("POST /notebook/pages", protected(http.HandlerFunc(notebookHandler.CreatePage)))
	mux.Handle("PUT /notebook/pages/{page_id}", protected(http.HandlerFunc(notebookHandler.UpdatePage)))
	mux.Handle("DELETE /notebook/pages/{page_id}", protected(http.HandlerFunc(notebookHandler.DeletePage)))

	mux.HandleFunc("POST /calculate", analyzeHandler.Analyze)

	// Общая цепочка: recovery снаружи, затем CORS, логирование и метрики
	var handler http.Handler = mux
	handler = middleware.MetricsMiddleware(collector)(handler)
	handler = middleware.LoggingMiddleware(logger)(handler)
	handler = middleware.CORSMiddleware()(handler)
	handler = middleware.RecoveryMiddleware(logger)(handler)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}

	logger.Info("server stopped")
	return nil
}
