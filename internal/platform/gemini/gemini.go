// Package gemini implements the generation.Backend interface using Google's
// Gemini API.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"time"

	"github.com/flashforge/flashforge-api/internal/config"
	"github.com/flashforge/flashforge-api/internal/generation"
	"google.golang.org/genai"
)

// Defaults applied when the retry configuration is missing or invalid.
const (
	defaultMaxRetries        = 3
	defaultRetryDelaySeconds = 2
	defaultTimeoutSeconds    = 30
)

// Generator calls the Gemini API to produce raw candidate card text.
// Parsing and validation of that text belong to the generation package; this
// type only handles transport, timeouts and retries.
type Generator struct {
	logger  *slog.Logger
	config  config.LLMConfig
	client  *genai.Client
	timeout time.Duration
}

// NewGenerator creates a Gemini-backed generator from the LLM configuration.
// Returns an error wrapping generation.ErrInvalidConfig when required
// settings are missing.
func NewGenerator(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig) (*Generator, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("%w: gemini API key cannot be empty", generation.ErrInvalidConfig)
	}

	if cfg.ModelName == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v", generation.ErrInvalidConfig, err)
	}

	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if cfg.TimeoutSeconds <= 0 {
		timeout = defaultTimeoutSeconds * time.Second
	}

	return &Generator{
		logger:  logger.With(slog.String("component", "gemini_backend")),
		config:  cfg,
		client:  client,
		timeout: timeout,
	}, nil
}

// GenerateText sends the prompt to the Gemini API and returns the raw
// response text. Transient failures are retried with exponential backoff and
// jitter up to the configured attempt limit; every individual call is
// bounded by the configured timeout.
func (g *Generator) GenerateText(ctx context.Context, prompt string) (string, error) {
	if prompt == "" {
		return "", generation.ErrEmptyPrompt
	}

	maxRetries := g.config.MaxRetries
	if maxRetries < 0 {
		g.logger.WarnContext(ctx, "invalid max retries value, using default",
			"configured", g.config.MaxRetries,
			"default", defaultMaxRetries)
		maxRetries = defaultMaxRetries
	}

	baseDelaySeconds := g.config.RetryDelaySeconds
	if baseDelaySeconds < 1 {
		baseDelaySeconds = defaultRetryDelaySeconds
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		g.logger.DebugContext(ctx, "calling Gemini API",
			"attempt", attempt+1,
			"max_attempts", maxRetries+1,
			"model", g.config.ModelName)

		text, err := g.generateOnce(ctx, prompt)
		if err == nil {
			g.logger.InfoContext(ctx, "Gemini API call succeeded",
				"attempt", attempt+1,
				"response_length", len(text))
			return text, nil
		}

		lastErr = err
		g.logger.WarnContext(ctx, "Gemini API call failed",
			"attempt", attempt+1,
			"error", err)

		if attempt >= maxRetries {
			break
		}

		// delay = baseDelay * 2^attempt * jitter, jitter in [0.5, 1.0)
		backoffSeconds := float64(baseDelaySeconds) * math.Pow(2, float64(attempt))
		jitter := 0.5 + rng.Float64()*0.5
		delay := time.Duration(backoffSeconds * jitter * float64(time.Second))

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return "", fmt.Errorf("%w: %v", generation.ErrTransientFailure, ctx.Err())
		}
	}

	return "", fmt.Errorf("%w: exceeded %d attempts: %v",
		generation.ErrTransientFailure, maxRetries+1, lastErr)
}

// generateOnce performs a single bounded API call.
func (g *Generator) generateOnce(ctx context.Context, prompt string) (string, error) {
	callCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	resp, err := g.client.Models.GenerateContent(callCtx, g.config.ModelName, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("gemini call failed: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", errors.New("empty response from model")
	}

	return text, nil
}
