package generation

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/flashforge/flashforge-api/internal/domain"
)

// candidateCard is the raw shape of a single card in a backend reply,
// before structural validation.
type candidateCard struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// ParseCards extracts and validates flashcards from raw backend response text.
//
// The text is cleaned of Markdown code fences, the substring between the
// first '[' and the last ']' is parsed as JSON, and each element is validated
// against the structural constraints (6-18 word question, 1-2 sentence
// answer). Elements that fail validation are dropped individually; they do
// not invalidate the batch. Free-text model output routinely mixes good and
// bad cards, so an all-or-nothing parser would make the live path far less
// usable than the deterministic fallback.
//
// The surviving list may be shorter than the caller requested; topping up is
// the orchestrator's job, not the parser's. An error is returned only when no
// array can be located, the JSON is malformed, or zero cards survive.
func ParseCards(raw string) ([]domain.Flashcard, error) {
	cleaned := stripCodeFences(raw)

	start := strings.Index(cleaned, "[")
	end := strings.LastIndex(cleaned, "]")
	if start == -1 || end == -1 || end < start {
		return nil, ErrNoJSONArray
	}
	payload := cleaned[start : end+1]

	var elements []json.RawMessage
	if err := json.Unmarshal([]byte(payload), &elements); err != nil {
		// Distinguish malformed JSON from valid JSON of the wrong shape.
		var probe interface{}
		if probeErr := json.Unmarshal([]byte(payload), &probe); probeErr != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
		}
		return nil, ErrNotArray
	}

	cards := make([]domain.Flashcard, 0, len(elements))
	for _, element := range elements {
		var candidate candidateCard
		if err := json.Unmarshal(element, &candidate); err != nil {
			// Not an object with string question/answer fields.
			continue
		}

		if strings.TrimSpace(candidate.Question) == "" || strings.TrimSpace(candidate.Answer) == "" {
			continue
		}

		card, err := domain.NewFlashcard(candidate.Question, candidate.Answer)
		if err != nil {
			continue
		}

		cards = append(cards, card)
	}

	if len(cards) == 0 {
		return nil, ErrNoValidCards
	}

	return cards, nil
}

// stripCodeFences removes Markdown code-fence markers around the response.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```json") {
		s = strings.TrimSpace(strings.TrimPrefix(s, "```json"))
	} else if strings.HasPrefix(s, "```") {
		s = strings.TrimSpace(strings.TrimPrefix(s, "```"))
	}
	if strings.HasSuffix(s, "```") {
		s = strings.TrimSpace(strings.TrimSuffix(s, "```"))
	}
	return s
}
