// Package domain defines the core business entities of the flashcard
// generation service: requests, generated flashcards with their structural
// invariants, and the uniform result shape returned to callers.
package domain
