package dealer

import (
	"testing"

	"github.com/lox/pokerhands/internal/deck"
	"github.com/lox/pokerhands/internal/evaluator"
	"github.com/lox/pokerhands/internal/randutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDealRoundRobin(t *testing.T) {
	t.Parallel()
	d := deck.NewOrdered()

	hands, err := Deal(d.Cards(), 3)
	require.NoError(t, err)
	require.Len(t, hands, 3)

	// Player 0 gets positions 0, 3, 6, 9, 12
	assert.Equal(t, [evaluator.HandSize]deck.Card{d[0], d[3], d[6], d[9], d[12]}, hands[0].Cards)
	assert.Equal(t, [evaluator.HandSize]deck.Card{d[1], d[4], d[7], d[10], d[13]}, hands[1].Cards)
	assert.Equal(t, [evaluator.HandSize]deck.Card{d[2], d[5], d[8], d[11], d[14]}, hands[2].Cards)
	for _, h := range hands {
		assert.Equal(t, evaluator.HighCard, h.Category)
	}
}

func TestDealSinglePlayerTakesTopFive(t *testing.T) {
	t.Parallel()
	d := deck.NewOrdered()
	hands, err := Deal(d.Cards(), 1)
	require.NoError(t, err)
	require.Len(t, hands, 1)
	assert.Equal(t, d[:5], hands[0].Cards[:])
}

func TestDealPartitionsPrefix(t *testing.T) {
	t.Parallel()
	for players := 1; players <= MaxPlayers; players++ {
		d := deck.NewOrdered()
		d.Shuffle(randutil.New(int64(players)))

		hands, err := Deal(d.Cards(), players)
		require.NoError(t, err)
		require.Len(t, hands, players)

		prefix := make(map[deck.Card]bool)
		for _, c := range d[:players*evaluator.HandSize] {
			prefix[c] = true
		}
		seen := make(map[deck.Card]bool)
		for _, h := range hands {
			for _, c := range h.Cards {
				assert.False(t, seen[c], "card %s dealt twice", c)
				assert.True(t, prefix[c], "card %s outside dealt prefix", c)
				seen[c] = true
			}
		}
		assert.Len(t, seen, players*evaluator.HandSize)
	}
}

func TestDealIsDeterministic(t *testing.T) {
	t.Parallel()
	d := deck.NewOrdered()
	d.Shuffle(randutil.New(5))
	a, err := Deal(d.Cards(), 4)
	require.NoError(t, err)
	b, err := Deal(d.Cards(), 4)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestDealContractViolations(t *testing.T) {
	t.Parallel()
	d := deck.NewOrdered()

	_, err := Deal(d.Cards(), 0)
	assert.ErrorIs(t, err, ErrInvalidPlayers)

	_, err = Deal(d.Cards(), MaxPlayers+1)
	assert.ErrorIs(t, err, ErrNotEnoughCards)

	_, err = Deal(d.Cards()[:9], 2)
	assert.ErrorIs(t, err, ErrNotEnoughCards)

	hands, err := Deal(d.Cards()[:10], 2)
	require.NoError(t, err)
	assert.Len(t, hands, 2)
}
