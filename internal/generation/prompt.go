package generation

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/flashforge/flashforge-api/internal/domain"
)

// promptData represents the data passed to the prompt template.
type promptData struct {
	Subject   string
	Topic     string
	CardCount int
}

// promptTemplateText is the full generation instruction sent to a live
// backend. It states the structural constraints, shows worked examples from
// different subjects, and demands a JSON-array-only reply. Rendering is
// byte-for-byte deterministic for a given request, which matters for
// testability and for any caching layer a caller might add.
const promptTemplateText = `You are creating study flashcards for students.

Question rules:
- Each question must be 6 to 18 words long.
- Each question must be 1 to 2 sentences.
- Questions must stay on the given topic, be unbiased, and suit a general audience.

Answer rules:
- Each answer must be 1 to 2 sentences.
- Answers must be simple, directly relevant to the question, and contain no filler.

Examples of the expected quality:
[
  {"question": "What process do plants use to turn sunlight into food?", "answer": "Photosynthesis, which converts sunlight, water, and carbon dioxide into glucose and oxygen"},
  {"question": "In which year did the French Revolution begin?", "answer": "It began in 1789 with the storming of the Bastille"},
  {"question": "What does the slope of a line on a graph represent?", "answer": "The rate of change, showing how much y changes for each unit of x"}
]

Now create exactly {{.CardCount}} flashcards for the subject "{{.Subject}}" on the topic "{{.Topic}}".

Reply with ONLY a JSON array of objects, each with a "question" and an "answer" field. No other text.`

// promptTemplate is parsed once at startup; BuildPrompt only executes it.
var promptTemplate = template.Must(template.New("flashcards").Parse(promptTemplateText))

// BuildPrompt renders the generation instruction for the given request.
// The output is deterministic: identical requests produce identical prompts.
func BuildPrompt(req domain.GenerationRequest) (string, error) {
	data := promptData{
		Subject:   req.Subject,
		Topic:     req.Topic,
		CardCount: req.CardCount,
	}

	var buf bytes.Buffer
	if err := promptTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute prompt template: %w", err)
	}

	return buf.String(), nil
}
