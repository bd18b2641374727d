package domain

import (
	"errors"
	"strings"
)

// Request-specific validation errors
var (
	// ErrSubjectEmpty is returned when the subject field is missing or blank.
	ErrSubjectEmpty = errors.New("subject is required")

	// ErrTopicEmpty is returned when the topic field is missing or blank.
	ErrTopicEmpty = errors.New("topic is required")

	// ErrCardCountRange is returned when the requested card count is outside
	// the accepted range.
	ErrCardCountRange = errors.New("card count must be between 1 and 15")
)

// Bounds on the number of cards a single request may ask for.
const (
	MinCardCount = 1
	MaxCardCount = 15
)

// GenerationRequest describes a single flashcard generation call: the study
// subject (e.g. "Biology"), the topic within it (e.g. "Pollination") and the
// number of cards to produce.
type GenerationRequest struct {
	Subject   string `json:"subject"`
	Topic     string `json:"topic"`
	CardCount int    `json:"cardCount"`
}

// Validate checks the request fields. Subject and topic must be non-empty
// after trimming and the card count must be within [MinCardCount, MaxCardCount].
func (r GenerationRequest) Validate() error {
	if strings.TrimSpace(r.Subject) == "" {
		return ErrSubjectEmpty
	}

	if strings.TrimSpace(r.Topic) == "" {
		return ErrTopicEmpty
	}

	if r.CardCount < MinCardCount || r.CardCount > MaxCardCount {
		return ErrCardCountRange
	}

	return nil
}
