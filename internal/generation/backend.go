package generation

import "context"

// Backend defines the interface for a live generative text service.
// This interface serves as a boundary between the generation pipeline and
// external AI/LLM services: the pipeline builds a prompt, the backend
// returns raw candidate text, and the pipeline's parser decides whether any
// of it is usable.
//
// Implementations must honor context cancellation and bound their own
// network calls with a timeout; any error they return triggers the
// deterministic fallback path rather than surfacing to the caller.
type Backend interface {
	// GenerateText sends the prompt to the generative service and returns
	// the raw response text.
	GenerateText(ctx context.Context, prompt string) (string, error)
}
