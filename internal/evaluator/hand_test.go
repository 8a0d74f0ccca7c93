package evaluator

import (
	"testing"

	"github.com/lox/pokerhands/internal/deck"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHand(t *testing.T) {
	t.Parallel()

	_, err := NewHand(deck.MustParseCards("2d3c4d6s"))
	assert.ErrorIs(t, err, ErrHandSize)

	_, err = NewHand(deck.MustParseCards("2d3c4d6sQh9h"))
	assert.ErrorIs(t, err, ErrHandSize)

	_, err = NewHand(deck.MustParseCards("2d3c4d6s2d"))
	assert.ErrorIs(t, err, ErrDuplicateCard)

	h, err := NewHand(deck.MustParseCards("2d3c4d6sQh"))
	require.NoError(t, err)
	assert.Equal(t, HighCard, h.Category)
	assert.Equal(t, deck.Card{Rank: deck.Queen, Suit: deck.Hearts}, h.Cards[4])
}

func TestParseHandRejectsBadNotation(t *testing.T) {
	t.Parallel()
	_, err := ParseHand("2d3c4d6sQx")
	assert.ErrorIs(t, err, deck.ErrInvalidCard)
}

func TestSortOrdersByRankThenSuit(t *testing.T) {
	t.Parallel()
	h := MustParseHand("Qh3s3d5cAs")
	h.Sort()
	assert.Equal(t, deck.MustParseCards("As3d3s5cQh"), h.Cards[:])
}

func TestSortIsIdempotent(t *testing.T) {
	t.Parallel()
	h := MustParseHand("KdTd2cAhJs")
	h.Sort()
	once := h.Cards
	h.Sort()
	assert.Equal(t, once, h.Cards)
}

func TestSortedLeavesHandUntouched(t *testing.T) {
	t.Parallel()
	h := MustParseHand("KdTd2cAhJs")
	original := h.Cards

	sorted := h.Sorted()

	assert.Equal(t, original, h.Cards)
	got := sorted.Cards()
	assert.Equal(t, deck.MustParseCards("Ah2cTdJsKd"), got[:])
}

func TestSortAll(t *testing.T) {
	t.Parallel()
	hands := []Hand{MustParseHand("5h4h3h2hAh"), MustParseHand("KsQsJsTs9s")}

	SortAll(hands)

	assert.Equal(t, deck.MustParseCards("Ah2h3h4h5h"), hands[0].Cards[:])
	assert.Equal(t, deck.MustParseCards("9sTsJsQsKs"), hands[1].Cards[:])
}

func TestHandString(t *testing.T) {
	t.Parallel()
	h := MustParseHand("AdTdJdQdKd")
	h.Category = StraightFlush
	assert.Equal(t, "Straight Flush [Ad Td Jd Qd Kd]", h.String())
}
