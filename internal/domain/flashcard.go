package domain

import (
	"errors"
	"strings"
	"unicode"
)

// Flashcard-specific validation errors
var (
	// ErrQuestionEmpty is returned when a flashcard question is empty.
	ErrQuestionEmpty = errors.New("flashcard question cannot be empty")

	// ErrQuestionLength is returned when a question's word count is outside
	// the accepted range.
	ErrQuestionLength = errors.New("flashcard question must be 6-18 words")

	// ErrAnswerEmpty is returned when a flashcard answer is empty.
	ErrAnswerEmpty = errors.New("flashcard answer cannot be empty")

	// ErrAnswerLength is returned when an answer's sentence count is outside
	// the accepted range.
	ErrAnswerLength = errors.New("flashcard answer must be 1-2 sentences")
)

// Structural bounds enforced on every accepted flashcard.
const (
	MinQuestionWords   = 6
	MaxQuestionWords   = 18
	MinAnswerSentences = 1
	MaxAnswerSentences = 2
)

// Flashcard is a single question/answer pair produced by the generation
// pipeline. Instances are transient: constructed per request and discarded
// once the caller consumes the result.
type Flashcard struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// NewFlashcard builds a Flashcard from raw question and answer text.
// Both sides are trimmed and trailing sentence punctuation is stripped from
// the answer before validation. Returns an error if either side violates the
// structural bounds.
func NewFlashcard(question, answer string) (Flashcard, error) {
	card := Flashcard{
		Question: strings.TrimSpace(question),
		Answer:   TrimAnswer(answer),
	}

	if err := card.Validate(); err != nil {
		return Flashcard{}, err
	}

	return card, nil
}

// Validate checks the flashcard against the structural bounds: the question
// must split into 6-18 whitespace-separated words and the answer must contain
// 1-2 sentences.
func (c Flashcard) Validate() error {
	if strings.TrimSpace(c.Question) == "" {
		return ErrQuestionEmpty
	}

	if strings.TrimSpace(c.Answer) == "" {
		return ErrAnswerEmpty
	}

	words := WordCount(c.Question)
	if words < MinQuestionWords || words > MaxQuestionWords {
		return ErrQuestionLength
	}

	sentences := SentenceCount(c.Answer)
	if sentences < MinAnswerSentences || sentences > MaxAnswerSentences {
		return ErrAnswerLength
	}

	return nil
}

// WordCount returns the number of whitespace-separated tokens in s.
func WordCount(s string) int {
	return len(strings.Fields(s))
}

// SentenceCount returns the number of sentence-terminated clauses in s.
// The text is split on '.', '!' and '?'; fragments that contain no
// non-whitespace characters are ignored, so a single trailing terminator does
// not count as an extra sentence.
func SentenceCount(s string) int {
	fragments := strings.FieldsFunc(s, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})

	count := 0
	for _, f := range fragments {
		if strings.TrimSpace(f) != "" {
			count++
		}
	}
	return count
}

// TrimAnswer normalizes answer text: leading/trailing whitespace and any
// trailing sentence punctuation are removed.
func TrimAnswer(answer string) string {
	trimmed := strings.TrimSpace(answer)
	trimmed = strings.TrimRightFunc(trimmed, func(r rune) bool {
		return r == '.' || r == '!' || r == '?' || unicode.IsSpace(r)
	})
	return trimmed
}
