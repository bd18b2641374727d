package generation

import "errors"

// Common errors returned by the generation package
var (
	// ErrNoJSONArray is returned when the backend reply contains no JSON array.
	ErrNoJSONArray = errors.New("no JSON array found in response")

	// ErrInvalidJSON is returned when the extracted array text is not valid JSON.
	ErrInvalidJSON = errors.New("invalid JSON format in response")

	// ErrNotArray is returned when the parsed JSON value is not an array.
	ErrNotArray = errors.New("response is not a valid array")

	// ErrNoValidCards is returned when every candidate card fails validation.
	ErrNoValidCards = errors.New("no valid flashcards found in response")

	// ErrEmptyPrompt is returned when a backend is invoked with an empty prompt.
	ErrEmptyPrompt = errors.New("prompt cannot be empty")

	// ErrInvalidConfig is returned when a backend configuration is invalid.
	ErrInvalidConfig = errors.New("invalid backend configuration")

	// ErrTransientFailure is returned for temporary backend errors that might
	// resolve on retry.
	ErrTransientFailure = errors.New("transient error during card generation")
)
