// Package api provides HTTP handlers for the API.
package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/flashforge/flashforge-api/internal/api/shared"
	"github.com/flashforge/flashforge-api/internal/domain"
	"github.com/flashforge/flashforge-api/internal/generation"
)

// GenerateHandler handles flashcard generation requests.
type GenerateHandler struct {
	service *generation.Service
	logger  *slog.Logger
}

// NewGenerateHandler creates a new GenerateHandler.
func NewGenerateHandler(service *generation.Service, logger *slog.Logger) *GenerateHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for GenerateHandler")
	}
	if service == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("service cannot be nil for GenerateHandler")
	}

	return &GenerateHandler{
		service: service,
		logger:  logger.With(slog.String("component", "generate_handler")),
	}
}

// Generate handles POST /api/generate requests.
//
// The body is a JSON GenerationRequest; the response is always a
// GenerationResult, with status 200 on success and 400 on input or policy
// rejection. The handler adds no semantics of its own beyond the status
// mapping; the pipeline owns all validation and fallback behavior.
func (h *GenerateHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req domain.GenerationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.DebugContext(r.Context(), "malformed generation request body",
			"error", err,
			"trace_id", shared.GetTraceID(r.Context()))
		shared.RespondWithJSON(w, r, http.StatusBadRequest, domain.FailureResult(
			"invalid request body",
			"Send JSON with subject, topic, and cardCount fields",
		))
		return
	}

	result := h.service.Generate(r.Context(), req)

	status := http.StatusOK
	if !result.Success {
		status = http.StatusBadRequest
	}

	h.logger.InfoContext(r.Context(), "generation request handled",
		"success", result.Success,
		"cards", len(result.Cards),
		"status", status,
		"trace_id", shared.GetTraceID(r.Context()))

	shared.RespondWithJSON(w, r, status, result)
}
