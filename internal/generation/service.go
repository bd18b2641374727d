package generation

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/flashforge/flashforge-api/internal/domain"
)

// fallbackWarning is attached to every result whose cards came (fully or
// partly) from the deterministic fallback path. It is the caller's signal
// that output is templated, not model-generated.
const fallbackWarning = "cards were generated from built-in study templates because live generation was unavailable"

// partialBackendWarning is attached when a live backend returned fewer valid
// cards than requested and the remainder was filled from the fallback path.
const partialBackendWarning = "live generation returned fewer cards than requested; the remainder was filled from built-in templates"

// Service orchestrates the generation pipeline: input validation, topic
// policy, an optional live backend attempt, and the deterministic fallback.
// It is stateless per invocation and safe for concurrent use; the knowledge
// bank and template tables it reads are immutable.
type Service struct {
	logger  *slog.Logger
	backend Backend
}

// Option customizes a Service.
type Option func(*Service)

// WithBackend injects a live generation backend. Without this option the
// service runs in fallback-only mode, which is a fully supported first-class
// configuration rather than a degraded one.
func WithBackend(backend Backend) Option {
	return func(s *Service) {
		s.backend = backend
	}
}

// NewService creates the generation service with the provided dependencies.
func NewService(logger *slog.Logger, opts ...Option) (*Service, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	s := &Service{
		logger: logger.With(slog.String("component", "generation_service")),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Generate runs the full pipeline for one request and always returns a
// well-formed result. The only failing outcomes are malformed input and
// policy-rejected topics; once generation begins, the fallback path
// guarantees a usable result regardless of backend availability.
func (s *Service) Generate(ctx context.Context, req domain.GenerationRequest) (result domain.GenerationResult) {
	// The pipeline boundary must never let a panic escape to the caller.
	defer func() {
		if r := recover(); r != nil {
			s.logger.ErrorContext(ctx, "generation pipeline panic recovered", "panic", r)
			result = domain.FailureResult(
				"card generation failed unexpectedly",
				"Please try again",
			)
		}
	}()

	if err := req.Validate(); err != nil {
		s.logger.DebugContext(ctx, "request validation failed", "error", err)
		return domain.FailureResult(err.Error(), suggestionFor(err))
	}

	if violation := CheckTopic(req.Topic); violation != nil {
		s.logger.InfoContext(ctx, "topic rejected by policy",
			"topic", req.Topic,
			"reason", violation.Reason)
		return domain.FailureResult(violation.Reason, violation.Suggestion)
	}

	if s.backend != nil {
		cards, err := s.tryBackend(ctx, req)
		if err == nil {
			if len(cards) >= req.CardCount {
				return domain.SuccessResult(cards[:req.CardCount], "")
			}
			// Live generation came up short: top up from the fallback path
			// so the exact-count guarantee holds uniformly.
			s.logger.InfoContext(ctx, "live generation returned short batch",
				"returned", len(cards),
				"requested", req.CardCount)
			cards = append(cards, s.fallbackCards(req, req.CardCount-len(cards))...)
			return domain.SuccessResult(cards, partialBackendWarning)
		}
		// Backend and parse failures are recovered locally, never propagated.
		s.logger.WarnContext(ctx, "live generation failed, using fallback", "error", err)
	}

	cards := s.fallbackCards(req, req.CardCount)
	return domain.SuccessResult(cards, fallbackWarning)
}

// tryBackend runs the live path: prompt building, the backend call, and
// response parsing. Any error triggers the fallback.
func (s *Service) tryBackend(ctx context.Context, req domain.GenerationRequest) ([]domain.Flashcard, error) {
	prompt, err := BuildPrompt(req)
	if err != nil {
		return nil, err
	}

	s.logger.DebugContext(ctx, "calling live generation backend",
		"prompt_length", len(prompt),
		"card_count", req.CardCount)

	raw, err := s.backend.GenerateText(ctx, prompt)
	if err != nil {
		return nil, err
	}

	cards, err := ParseCards(raw)
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "live generation succeeded",
		"valid_cards", len(cards),
		"requested", req.CardCount)
	return cards, nil
}

// fallbackCards assembles exactly count cards from the deterministic
// sources: curated knowledge-bank pairs first, topped up from the subject
// template engine when the curated list is shorter than requested.
func (s *Service) fallbackCards(req domain.GenerationRequest, count int) []domain.Flashcard {
	banked := LookupTopic(strings.ToLower(req.Topic))
	if len(banked) == 0 {
		return GenerateFromTemplates(req.Topic, req.Subject, count)
	}

	if len(banked) >= count {
		return append([]domain.Flashcard(nil), banked[:count]...)
	}

	cards := append([]domain.Flashcard(nil), banked...)
	cards = append(cards, GenerateFromTemplates(req.Topic, req.Subject, count-len(banked))...)
	return cards
}

// suggestionFor maps a request validation error to actionable guidance.
func suggestionFor(err error) string {
	switch {
	case errors.Is(err, domain.ErrSubjectEmpty):
		return "Provide a subject, such as Biology or Math"
	case errors.Is(err, domain.ErrTopicEmpty):
		return "Provide a topic to generate cards for"
	case errors.Is(err, domain.ErrCardCountRange):
		return "Request between 1 and 15 cards"
	default:
		return "Check the request fields and try again"
	}
}
