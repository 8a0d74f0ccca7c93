package reference

import (
	"context"
	"testing"

	"github.com/lox/pokerhands/internal/deck"
	"github.com/lox/pokerhands/internal/evaluator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCardConvertsEveryCard(t *testing.T) {
	t.Parallel()

	seen := make(map[any]bool)
	for _, c := range deck.NewOrdered() {
		pc, err := Card(c)
		require.NoError(t, err, "card %s", c)
		assert.False(t, seen[pc], "card %s collides", c)
		seen[pc] = true
	}
	assert.Len(t, seen, deck.Size)
}

func TestCardRejectsInvalid(t *testing.T) {
	t.Parallel()

	_, err := Card(deck.Card{Rank: deck.Ace, Suit: deck.Suit(7)})
	assert.ErrorIs(t, err, deck.ErrInvalidCard)

	_, err = Card(deck.Card{Rank: deck.Rank(13), Suit: deck.Hearts})
	assert.ErrorIs(t, err, deck.ErrInvalidCard)
}

func TestScoreFollowsCategoryOrder(t *testing.T) {
	t.Parallel()

	cases := evaluator.SelfTestCases()
	for i := 1; i < len(cases); i++ {
		lower, err := Score(cases[i-1].Hand)
		require.NoError(t, err)
		higher, err := Score(cases[i].Hand)
		require.NoError(t, err)
		assert.Greater(t, higher, lower, "%s should outscore %s", cases[i].Expected, cases[i-1].Expected)
	}
}

func TestScoreIgnoresCardOrder(t *testing.T) {
	t.Parallel()

	a, err := Score(evaluator.MustParseHand("KdQdJdTdAd"))
	require.NoError(t, err)
	b, err := Score(evaluator.MustParseHand("AdTdJdQdKd"))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestDescribe(t *testing.T) {
	t.Parallel()

	desc, err := Describe(evaluator.MustParseHand("3d3h3s3cQc"))
	require.NoError(t, err)
	assert.NotEmpty(t, desc)
}

func TestVerify(t *testing.T) {
	t.Parallel()

	report, err := Verify(context.Background(), Config{Hands: 20000, Seed: 7, Workers: 4})
	require.NoError(t, err)
	assert.Equal(t, 20000, report.Hands)

	total := 0
	for _, b := range report.Bounds {
		total += b.Count
		if b.Count > 0 {
			assert.LessOrEqual(t, b.Min, b.Max)
		}
	}
	assert.Equal(t, 20000, total)
	assert.Positive(t, report.Bounds[evaluator.HighCard].Count)
	assert.Positive(t, report.Bounds[evaluator.OnePair].Count)
}

func TestVerifyFixtureHands(t *testing.T) {
	t.Parallel()

	report := &Report{}
	for _, h := range evaluator.SelfTestHands() {
		h.Category = evaluator.Classify(h.Sorted())
		score, err := Score(h)
		require.NoError(t, err)
		report.add(h.Category, score)
	}
	assert.NoError(t, report.Check())
}

func TestCheckDetectsOverlap(t *testing.T) {
	t.Parallel()

	report := &Report{}
	report.add(evaluator.HighCard, 100)
	report.add(evaluator.OnePair, 50)

	assert.ErrorIs(t, report.Check(), ErrMismatch)
}

func TestVerifyRejectsZeroHands(t *testing.T) {
	t.Parallel()

	_, err := Verify(context.Background(), Config{})
	assert.Error(t, err)
}

func TestVerifyCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Verify(ctx, Config{Hands: 100, Workers: 2})
	assert.ErrorIs(t, err, context.Canceled)
}
