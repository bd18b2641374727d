package generation_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/flashforge/flashforge-api/internal/domain"
	"github.com/flashforge/flashforge-api/internal/generation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubBackend returns a canned reply or error; panicReply triggers a panic
// to exercise the orchestrator's recovery boundary.
type stubBackend struct {
	reply      string
	err        error
	panicReply bool
	calls      int
}

func (b *stubBackend) GenerateText(ctx context.Context, prompt string) (string, error) {
	b.calls++
	if b.panicReply {
		panic("backend exploded")
	}
	return b.reply, b.err
}

func newTestService(t *testing.T, opts ...generation.Option) *generation.Service {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc, err := generation.NewService(logger, opts...)
	require.NoError(t, err)
	return svc
}

func TestNewService(t *testing.T) {
	t.Parallel()

	_, err := generation.NewService(nil)
	assert.Error(t, err, "nil logger must be rejected")
}

func TestGenerateInputValidation(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	ctx := context.Background()

	t.Run("missing subject fails identifying the field", func(t *testing.T) {
		t.Parallel()

		result := svc.Generate(ctx, domain.GenerationRequest{Subject: "", Topic: "Anything", CardCount: 5})
		assert.False(t, result.Success)
		assert.Empty(t, result.Cards)
		assert.Contains(t, result.Error, "subject")
		assert.NotEmpty(t, result.Warning, "validation failures carry a fix suggestion")
	})

	t.Run("missing topic fails identifying the field", func(t *testing.T) {
		t.Parallel()

		result := svc.Generate(ctx, domain.GenerationRequest{Subject: "Biology", Topic: " ", CardCount: 5})
		assert.False(t, result.Success)
		assert.Contains(t, result.Error, "topic")
	})

	t.Run("card count out of range fails", func(t *testing.T) {
		t.Parallel()

		for _, count := range []int{0, -1, 16, 100} {
			result := svc.Generate(ctx, domain.GenerationRequest{Subject: "Biology", Topic: "Pollination", CardCount: count})
			assert.False(t, result.Success, "cardCount=%d should be rejected", count)
			assert.Contains(t, result.Error, "between 1 and 15")
		}
	})

	t.Run("policy-rejected topic maps reason and suggestion", func(t *testing.T) {
		t.Parallel()

		result := svc.Generate(ctx, domain.GenerationRequest{Subject: "Science", Topic: "PhD research", CardCount: 5})
		assert.False(t, result.Success)
		assert.Contains(t, result.Error, "phd")
		assert.NotEmpty(t, result.Warning)
	})
}

func TestGenerateFallbackPath(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	ctx := context.Background()

	t.Run("known topic draws from the knowledge bank", func(t *testing.T) {
		t.Parallel()

		result := svc.Generate(ctx, domain.GenerationRequest{Subject: "Biology", Topic: "Pollination", CardCount: 3})
		require.True(t, result.Success)
		require.Len(t, result.Cards, 3)
		assert.NotEmpty(t, result.Warning, "fallback output must be flagged")

		for _, card := range result.Cards {
			assert.NoError(t, card.Validate())
			assert.Contains(t, card.Question, "pollinat")
		}
	})

	t.Run("unknown topic uses the subject template bucket with cycling", func(t *testing.T) {
		t.Parallel()

		result := svc.Generate(ctx, domain.GenerationRequest{Subject: "Math", Topic: "xyzzy-nonexistent-topic", CardCount: 6})
		require.True(t, result.Success)
		require.Len(t, result.Cards, 6)
		assert.NotEmpty(t, result.Warning)

		// The math bucket has 5 pairs, so the 6th card repeats the 1st.
		assert.Equal(t, result.Cards[0], result.Cards[5])
		for _, card := range result.Cards {
			assert.NoError(t, card.Validate())
		}
	})

	t.Run("short bank entry is topped up from templates", func(t *testing.T) {
		t.Parallel()

		// The digestive-system entry has 4 curated pairs; requesting 10
		// must extend with template cards to the exact count.
		result := svc.Generate(ctx, domain.GenerationRequest{Subject: "Biology", Topic: "digestive system", CardCount: 10})
		require.True(t, result.Success)
		assert.Len(t, result.Cards, 10)
	})

	t.Run("is deterministic across repeated calls", func(t *testing.T) {
		t.Parallel()

		req := domain.GenerationRequest{Subject: "History", Topic: "World War II", CardCount: 5}
		first := svc.Generate(ctx, req)
		require.True(t, first.Success)

		for i := 0; i < 3; i++ {
			again := svc.Generate(ctx, req)
			assert.Equal(t, first, again)
		}
	})

	t.Run("every valid request returns exactly the requested count", func(t *testing.T) {
		t.Parallel()

		for count := domain.MinCardCount; count <= domain.MaxCardCount; count++ {
			result := svc.Generate(ctx, domain.GenerationRequest{Subject: "Chemistry", Topic: "the atom", CardCount: count})
			require.True(t, result.Success)
			assert.Len(t, result.Cards, count)
		}
	})
}

func TestGenerateBackendPath(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("successful backend output is returned without warning", func(t *testing.T) {
		t.Parallel()

		backend := &stubBackend{reply: `[
			{"question": "What process moves pollen between flowering plants?", "answer": "Pollination, carried out mostly by insects, wind, and birds."},
			{"question": "Which organ pumps blood around the human body?", "answer": "The heart, a muscular organ with four chambers."}
		]`}
		svc := newTestService(t, generation.WithBackend(backend))

		result := svc.Generate(ctx, domain.GenerationRequest{Subject: "Biology", Topic: "the heart", CardCount: 2})
		require.True(t, result.Success)
		assert.Len(t, result.Cards, 2)
		assert.Empty(t, result.Warning, "fully live output carries no fallback warning")
		assert.Equal(t, 1, backend.calls)
	})

	t.Run("surplus backend cards are truncated to the requested count", func(t *testing.T) {
		t.Parallel()

		backend := &stubBackend{reply: `[
			{"question": "What process moves pollen between flowering plants?", "answer": "Pollination, carried out mostly by insects, wind, and birds."},
			{"question": "Which organ pumps blood around the human body?", "answer": "The heart, a muscular organ with four chambers."}
		]`}
		svc := newTestService(t, generation.WithBackend(backend))

		result := svc.Generate(ctx, domain.GenerationRequest{Subject: "Biology", Topic: "the heart", CardCount: 1})
		require.True(t, result.Success)
		assert.Len(t, result.Cards, 1)
	})

	t.Run("short backend batch is topped up and flagged", func(t *testing.T) {
		t.Parallel()

		backend := &stubBackend{reply: `[
			{"question": "What process moves pollen between flowering plants?", "answer": "Pollination, carried out mostly by insects, wind, and birds."}
		]`}
		svc := newTestService(t, generation.WithBackend(backend))

		result := svc.Generate(ctx, domain.GenerationRequest{Subject: "Biology", Topic: "xyzzy-nonexistent-topic", CardCount: 4})
		require.True(t, result.Success)
		assert.Len(t, result.Cards, 4)
		assert.NotEmpty(t, result.Warning, "mixed live/template output must be flagged")
	})

	t.Run("backend error falls back without failing", func(t *testing.T) {
		t.Parallel()

		backend := &stubBackend{err: errors.New("network unreachable")}
		svc := newTestService(t, generation.WithBackend(backend))

		result := svc.Generate(ctx, domain.GenerationRequest{Subject: "Biology", Topic: "Pollination", CardCount: 3})
		require.True(t, result.Success, "backend failures must never surface to the caller")
		assert.Len(t, result.Cards, 3)
		assert.NotEmpty(t, result.Warning)
	})

	t.Run("unparseable backend output falls back", func(t *testing.T) {
		t.Parallel()

		backend := &stubBackend{reply: "Sorry, I cannot help with that."}
		svc := newTestService(t, generation.WithBackend(backend))

		result := svc.Generate(ctx, domain.GenerationRequest{Subject: "Biology", Topic: "Pollination", CardCount: 3})
		require.True(t, result.Success)
		assert.Len(t, result.Cards, 3)
		assert.NotEmpty(t, result.Warning)
	})

	t.Run("panicking backend yields a generic failure, not a crash", func(t *testing.T) {
		t.Parallel()

		backend := &stubBackend{panicReply: true}
		svc := newTestService(t, generation.WithBackend(backend))

		result := svc.Generate(ctx, domain.GenerationRequest{Subject: "Biology", Topic: "Pollination", CardCount: 3})
		assert.False(t, result.Success)
		assert.Contains(t, result.Error, "unexpectedly")
		assert.Empty(t, result.Cards)
	})

	t.Run("rejected input never reaches the backend", func(t *testing.T) {
		t.Parallel()

		backend := &stubBackend{reply: validArray}
		svc := newTestService(t, generation.WithBackend(backend))

		svc.Generate(ctx, domain.GenerationRequest{Subject: "", Topic: "Pollination", CardCount: 3})
		svc.Generate(ctx, domain.GenerationRequest{Subject: "Science", Topic: "x", CardCount: 3})
		assert.Zero(t, backend.calls)
	})
}
