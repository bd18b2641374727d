package generation

import (
	"fmt"
	"strings"

	"github.com/flashforge/flashforge-api/internal/domain"
)

// templatePair is a question/answer template. The question format string
// receives a short topic label; answers are fixed text. Base question
// wording is kept between 5 and 15 words so that after interpolating a
// label of at most maxLabelWords words the result stays inside the 6-18
// word bound.
type templatePair struct {
	question string
	answer   string
}

// subjectBucket maps subject name patterns to a generic template list.
type subjectBucket struct {
	patterns []string
	pairs    []templatePair
}

// maxLabelWords caps how much of the topic is interpolated into template
// questions, keeping interpolated questions inside the word bound for any
// policy-acceptable topic.
const maxLabelWords = 3

// GenerateFromTemplates produces exactly count flashcards for the topic
// using the subject's template bucket. The bucket is chosen by
// case-insensitive substring match of the subject; no match selects the
// generic study-skills bucket. When count exceeds the bucket size the pairs
// are cycled in order, so a 5-pair bucket asked for 8 cards repeats pairs
// 1-3 a second time. Output is deterministic for a given input.
func GenerateFromTemplates(topic, subject string, count int) []domain.Flashcard {
	if count <= 0 {
		return nil
	}

	pairs := bucketForSubject(subject)
	label := topicLabel(topic)

	cards := make([]domain.Flashcard, 0, count)
	for i := 0; i < count; i++ {
		pair := pairs[i%len(pairs)]
		cards = append(cards, domain.Flashcard{
			Question: fmt.Sprintf(pair.question, label),
			Answer:   pair.answer,
		})
	}
	return cards
}

// bucketForSubject selects the template list for a subject.
func bucketForSubject(subject string) []templatePair {
	lower := strings.ToLower(subject)
	for _, bucket := range subjectBuckets {
		for _, pattern := range bucket.patterns {
			if strings.Contains(lower, pattern) {
				return bucket.pairs
			}
		}
	}
	return studySkillsPairs
}

// topicLabel shortens a topic to its first few words for interpolation.
func topicLabel(topic string) string {
	words := strings.Fields(strings.TrimSpace(topic))
	if len(words) > maxLabelWords {
		words = words[:maxLabelWords]
	}
	return strings.Join(words, " ")
}

// subjectBuckets is evaluated in order; the first matching pattern wins.
var subjectBuckets = []subjectBucket{
	{
		patterns: []string{"math", "algebra", "geometry", "calculus"},
		pairs: []templatePair{
			{question: "What is the first step when solving a problem about %s?", answer: "Identify what is given and what you need to find, then choose a method"},
			{question: "Which formula or rule is most often used in %s?", answer: "Review the core definitions first. The main formula follows directly from them"},
			{question: "How can you check your answer to a %s problem?", answer: "Substitute the result back into the original problem and confirm both sides agree"},
			{question: "What common mistake should you avoid when working on %s?", answer: "Rushing through steps without writing them down, which hides sign and arithmetic errors"},
			{question: "Why is practicing many %s problems more effective than rereading notes?", answer: "Working problems forces you to recall methods actively, which strengthens memory far more than passive review"},
		},
	},
	{
		patterns: []string{"history", "social studies"},
		pairs: []templatePair{
			{question: "What were the main causes that led to %s?", answer: "Look for political, economic, and social pressures that built up beforehand"},
			{question: "Who were the key figures involved in %s?", answer: "Identify the leaders and groups on each side and what each of them wanted"},
			{question: "What were the most important consequences of %s?", answer: "Consider both the immediate outcomes and the longer-term changes that followed"},
			{question: "How did ordinary people experience the events of %s?", answer: "Daily life, work, and family routines usually changed well before governments did"},
			{question: "Why do historians still debate the significance of %s?", answer: "Sources are incomplete and each generation asks new questions of the same events"},
		},
	},
	{
		patterns: []string{"literature", "english"},
		pairs: []templatePair{
			{question: "What is the central theme explored in %s?", answer: "Look for the idea the work keeps returning to through its characters and conflicts"},
			{question: "How does the author use language to create meaning in %s?", answer: "Watch for imagery, tone, and word choice that reinforce the main ideas"},
			{question: "What role does the setting play in %s?", answer: "Setting shapes the mood and often mirrors the conflicts the characters face"},
			{question: "How do the main characters change throughout %s?", answer: "Trace their decisions at key turning points and what each one costs them"},
			{question: "What questions should you ask when analyzing %s?", answer: "Ask who is speaking, what they want, and how the structure supports the message"},
		},
	},
	{
		patterns: []string{"language", "spanish", "french", "german", "japanese", "chinese"},
		pairs: []templatePair{
			{question: "What are the most useful everyday phrases related to %s?", answer: "Start with greetings, questions, and polite requests you can reuse in many situations"},
			{question: "How can you practice vocabulary for %s every day?", answer: "Use spaced repetition with flashcards and speak the words aloud in full sentences"},
			{question: "What grammar patterns appear most often in %s?", answer: "Focus on word order, verb conjugation, and agreement rules before rare exceptions"},
			{question: "Why is listening practice important when studying %s?", answer: "It trains your ear to real speed and pronunciation, which reading alone cannot teach"},
			{question: "How do you remember tricky spelling or characters in %s?", answer: "Break them into smaller parts and write them repeatedly while saying them aloud"},
		},
	},
	{
		patterns: []string{"business", "accounting", "economics", "finance"},
		pairs: []templatePair{
			{question: "What key terms should you define first when studying %s?", answer: "Master the basic vocabulary first. Every later concept is built on those definitions"},
			{question: "How is %s applied in a real company setting?", answer: "Connect each concept to a concrete business decision, such as pricing or budgeting"},
			{question: "What numbers or statements matter most in %s?", answer: "Identify the core figures and reports, then learn how each one is calculated"},
			{question: "What risks or trade-offs are involved in %s?", answer: "Every decision balances cost against benefit, so list both sides before judging"},
			{question: "How would you explain %s to a new coworker?", answer: "Use one plain-language sentence and a simple example from daily operations"},
		},
	},
}

// studySkillsPairs is the default bucket used when no subject pattern matches.
var studySkillsPairs = []templatePair{
	{question: "What are the key ideas you should master about %s?", answer: "Break the topic into smaller parts and summarize each one in your own words"},
	{question: "How would you explain %s to a complete beginner?", answer: "Use simple words and a concrete example. Teaching a topic is the fastest way to learn it"},
	{question: "What is a real-world example or application of %s?", answer: "Connecting ideas to everyday situations makes them easier to remember and use"},
	{question: "Which parts of %s do students usually find hardest?", answer: "Identify the confusing pieces early and spend extra practice time on exactly those"},
	{question: "How can you test yourself on %s without looking at notes?", answer: "Close your materials and write down everything you remember, then check for gaps"},
	{question: "Why is it helpful to review %s more than once?", answer: "Spaced reviews move knowledge into long-term memory far better than one long session"},
}
