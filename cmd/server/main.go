// Package main implements the entry point for the flashforge API server,
// which generates study flashcards from a subject and topic, with an
// optional LLM backend and a deterministic template fallback.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/flashforge/flashforge-api/internal/config"
	"github.com/flashforge/flashforge-api/internal/generation"
	"github.com/flashforge/flashforge-api/internal/platform/gemini"
	"github.com/flashforge/flashforge-api/internal/platform/logger"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}

// run loads configuration, wires the generation service and serves HTTP
// until a shutdown signal arrives.
func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logg := logger.Setup(cfg.Server)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// The live backend is optional: without an API key the service runs in
	// fallback-only mode and every request is served from the built-in
	// knowledge bank and templates.
	var opts []generation.Option
	if cfg.LLM.BackendConfigured() {
		backend, err := gemini.NewGenerator(ctx, logg, cfg.LLM)
		if err != nil {
			return fmt.Errorf("failed to initialize Gemini backend: %w", err)
		}
		opts = append(opts, generation.WithBackend(backend))
		logg.Info("live generation backend enabled", "model", cfg.LLM.ModelName)
	} else {
		logg.Info("no live generation backend configured, using fallback only")
	}

	service, err := generation.NewService(logg, opts...)
	if err != nil {
		return fmt.Errorf("failed to create generation service: %w", err)
	}

	return serve(ctx, cfg.Server, logg, newRouter(service, logg))
}

// serve runs the HTTP server with graceful shutdown support.
func serve(ctx context.Context, cfg config.ServerConfig, logg *slog.Logger, handler http.Handler) error {
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logg.Info("starting server", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
		logg.Info("shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	logg.Info("server shutdown completed")
	return nil
}
