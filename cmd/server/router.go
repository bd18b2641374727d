package main

import (
	"log/slog"
	"net/http"

	"github.com/flashforge/flashforge-api/internal/api"
	apiMiddleware "github.com/flashforge/flashforge-api/internal/api/middleware"
	"github.com/flashforge/flashforge-api/internal/generation"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// newRouter configures the application router with all routes and middleware.
func newRouter(service *generation.Service, logg *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.Trace)

	generateHandler := api.NewGenerateHandler(service, logg)

	r.Route("/api", func(r chi.Router) {
		r.Post("/generate", generateHandler.Generate)
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			logg.Error("failed to write health check response", "error", err)
		}
	})

	return r
}
