package generation

import (
	"fmt"
	"strings"
)

// Topic length bounds checked before any generation attempt.
const (
	minTopicLength = 3
	maxTopicLength = 100
)

// complexityIndicators flags topics too specialized for simple flashcards.
// Matched case-insensitively as substrings of the topic.
var complexityIndicators = []string{
	"graduate",
	"postgraduate",
	"phd",
	"doctoral",
	"dissertation",
	"thesis",
	"theoretical",
	"epistemology",
	"ontology",
	"quantum field theory",
	"stochastic calculus",
	"homotopy",
}

// contentIndicators flags topics that violate content guidelines. Rejections
// based on this list carry a generic message only.
var contentIndicators = []string{
	"violence",
	"weapon",
	"explicit",
	"nsfw",
	"gambling",
	"narcotic",
	"suicide",
	"terror",
}

// PolicyViolation describes why a topic was rejected, together with
// actionable guidance a UI can show next to the rejection reason.
type PolicyViolation struct {
	Reason     string
	Suggestion string
}

// CheckTopic validates a topic against the generation content policy.
// Checks run in order and the first failure wins; a nil return means the
// topic is acceptable. The function is pure: it only consults the fixed
// indicator lists above.
func CheckTopic(topic string) *PolicyViolation {
	trimmed := strings.TrimSpace(topic)

	if len(trimmed) < minTopicLength {
		return &PolicyViolation{
			Reason:     "topic is too short or empty",
			Suggestion: "Try a longer, more descriptive topic name",
		}
	}

	if len(trimmed) > maxTopicLength {
		return &PolicyViolation{
			Reason:     "topic is too long or complex",
			Suggestion: "Try shortening the topic to its key phrase",
		}
	}

	lower := strings.ToLower(trimmed)

	var matched []string
	for _, indicator := range complexityIndicators {
		if strings.Contains(lower, indicator) {
			matched = append(matched, indicator)
		}
	}
	if len(matched) > 0 {
		return &PolicyViolation{
			Reason: fmt.Sprintf(
				"topic appears too specialized for flashcard generation (matched: %s)",
				strings.Join(matched, ", "),
			),
			Suggestion: "Try a simpler, more general version of this topic",
		}
	}

	for _, indicator := range contentIndicators {
		if strings.Contains(lower, indicator) {
			return &PolicyViolation{
				Reason:     "topic does not meet content guidelines",
				Suggestion: "Try a different study topic",
			}
		}
	}

	return nil
}
