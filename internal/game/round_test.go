package game

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/lox/pokerhands/internal/deck"
	"github.com/lox/pokerhands/internal/evaluator"
	"github.com/lox/pokerhands/internal/randutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.DebugLevel})
}

func TestPlayStages(t *testing.T) {
	t.Parallel()

	r, err := Play(randutil.New(42), 5, 4, WithLogger(testLogger()), WithSeed(42))
	require.NoError(t, err)

	assert.NotEmpty(t, r.ID)
	assert.Equal(t, int64(42), r.Seed)
	assert.Equal(t, 5, r.CardsPerHand)
	assert.Equal(t, 4, r.Players)
	assert.Equal(t, deck.NewOrdered(), r.Ordered)
	assert.ElementsMatch(t, r.Ordered.Cards(), r.Shuffled.Cards())

	require.Len(t, r.Dealt, 4)
	require.Len(t, r.Sorted, 4)
	require.Len(t, r.Ranked, 4)

	for i := range r.Dealt {
		for slot, c := range r.Dealt[i].Cards {
			assert.Equal(t, r.Shuffled[slot*4+i], c)
		}
		assert.ElementsMatch(t, r.Dealt[i].Cards[:], r.Sorted[i].Cards[:])
		assert.Equal(t, r.Sorted[i].Cards, r.Ranked[i].Cards)
		assert.Equal(t, evaluator.Classify(r.Dealt[i].Sorted()), r.Ranked[i].Category)
	}

	assert.Equal(t, evaluator.Best(r.Ranked), r.Best)
	require.NotEmpty(t, r.Winners)
	for _, w := range r.Winners {
		assert.True(t, r.IsWinner(w))
		assert.Equal(t, r.Best, r.Ranked[w].Category)
	}
}

func TestPlayDeterministic(t *testing.T) {
	t.Parallel()

	a, err := Play(randutil.New(7), 5, 6)
	require.NoError(t, err)
	b, err := Play(randutil.New(7), 5, 6)
	require.NoError(t, err)

	assert.Equal(t, a.Shuffled, b.Shuffled)
	assert.Equal(t, a.Ranked, b.Ranked)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestPlayWithDeck(t *testing.T) {
	t.Parallel()

	// Ordered deck, two players: hands alternate through the first ten cards.
	r, err := Play(nil, 5, 2, WithDeck(deck.NewOrdered()), WithID("fixed"))
	require.NoError(t, err)

	assert.Equal(t, "fixed", r.ID)
	assert.Equal(t, r.Ordered, r.Shuffled)
	assert.Equal(t, deck.MustParseCards("Ah3h5h7h9h"), r.Dealt[0].Cards[:])
	assert.Equal(t, deck.MustParseCards("2h4h6h8hTh"), r.Dealt[1].Cards[:])
	assert.Equal(t, evaluator.Flush, r.Ranked[0].Category)
	assert.Equal(t, evaluator.Flush, r.Ranked[1].Category)
	assert.Equal(t, evaluator.Flush, r.Best)
	assert.Equal(t, []int{0, 1}, r.Winners)
}

func TestPlayMaxPlayersUsesWholeDeckPrefix(t *testing.T) {
	t.Parallel()

	r, err := Play(randutil.New(1), 5, 10)
	require.NoError(t, err)

	seen := make(map[deck.Card]bool)
	for _, h := range r.Dealt {
		for _, c := range h.Cards {
			assert.False(t, seen[c], "card %s dealt twice", c)
			seen[c] = true
		}
	}
	assert.Len(t, seen, 50)
}

func TestPlayRejectsInvalidInput(t *testing.T) {
	t.Parallel()

	_, err := Play(randutil.New(1), 5, 11)
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = Play(randutil.New(1), 0, 4)
	require.ErrorIs(t, err, ErrInvalidInput)
}
