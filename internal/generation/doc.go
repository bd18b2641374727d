// Package generation implements the flashcard content generation pipeline.
//
// Given a subject, a topic and a requested card count, the pipeline
// validates the topic against content policy, optionally attempts a live
// LLM backend (prompt building, calling, response parsing), and falls back
// to a deterministic, topic-aware knowledge bank and template engine when no
// backend is configured or its output is unusable. Callers always receive a
// uniform GenerationResult; backend failures are recovered locally, never
// propagated.
//
// The Backend interface is the boundary to external AI/LLM services,
// following the hexagonal architecture pattern. The no-backend path is a
// first-class branch, not a nil-check afterthought.
package generation
