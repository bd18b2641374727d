package generation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupTopic(t *testing.T) {
	t.Parallel()

	t.Run("matches pattern as substring of the topic", func(t *testing.T) {
		t.Parallel()

		cards := LookupTopic("pollination in spring flowers")
		require.NotEmpty(t, cards)
		assert.Contains(t, cards[0].Question, "pollination")
	})

	t.Run("alternate patterns reach the same entry", func(t *testing.T) {
		t.Parallel()

		byName := LookupTopic("the brain")
		bySystem := LookupTopic("nervous system basics")
		require.NotEmpty(t, byName)
		assert.Equal(t, byName, bySystem)
	})

	t.Run("first matching entry wins", func(t *testing.T) {
		t.Parallel()

		// "brain" appears before "heart" in the table; a topic containing
		// both must resolve to the earlier entry.
		cards := LookupTopic("how the brain controls the heart")
		require.NotEmpty(t, cards)
		assert.Equal(t, LookupTopic("brain"), cards)
	})

	t.Run("unknown topic returns empty without error", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, LookupTopic("xyzzy-nonexistent-topic"))
	})
}

// Every curated pair must satisfy the structural constraints by
// construction; a bank entry that fails its own invariants would leak
// invalid cards into otherwise successful results.
func TestKnowledgeBankInvariants(t *testing.T) {
	t.Parallel()

	for _, entry := range knowledgeBank {
		require.NotEmpty(t, entry.patterns)
		require.NotEmpty(t, entry.cards)

		for _, card := range entry.cards {
			assert.NoError(t, card.Validate(),
				"curated card violates constraints: %q", card.Question)
		}
	}
}
