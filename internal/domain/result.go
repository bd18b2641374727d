package domain

// GenerationResult is the uniform shape every generation call returns.
// When Success is true, Cards holds exactly the requested number of
// flashcards. When Success is false, Cards is absent and Error carries a
// human-readable reason. Warning may accompany either outcome to surface
// advisory text, e.g. that template-based fallback content was used.
type GenerationResult struct {
	Success bool        `json:"success"`
	Cards   []Flashcard `json:"cards,omitempty"`
	Warning string      `json:"warning,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// SuccessResult builds a successful result carrying the given cards and an
// optional advisory warning.
func SuccessResult(cards []Flashcard, warning string) GenerationResult {
	return GenerationResult{
		Success: true,
		Cards:   cards,
		Warning: warning,
	}
}

// FailureResult builds a failed result with a reason and an optional
// suggestion surfaced through the warning field.
func FailureResult(reason, suggestion string) GenerationResult {
	return GenerationResult{
		Success: false,
		Error:   reason,
		Warning: suggestion,
	}
}
