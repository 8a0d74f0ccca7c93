package deck

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCards(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		input    string
		expected []Card
		wantErr  bool
	}{
		{
			name:  "broadway diamonds",
			input: "AdTdJdQdKd",
			expected: []Card{
				{Rank: Ace, Suit: Diamonds},
				{Rank: Ten, Suit: Diamonds},
				{Rank: Jack, Suit: Diamonds},
				{Rank: Queen, Suit: Diamonds},
				{Rank: King, Suit: Diamonds},
			},
		},
		{
			name:  "mixed suits with spaces",
			input: "2d 3c 4d 6s Qh",
			expected: []Card{
				{Rank: Two, Suit: Diamonds},
				{Rank: Three, Suit: Clubs},
				{Rank: Four, Suit: Diamonds},
				{Rank: Six, Suit: Spades},
				{Rank: Queen, Suit: Hearts},
			},
		},
		{
			name:  "case insensitive",
			input: "aSkHqDjc",
			expected: []Card{
				{Rank: Ace, Suit: Spades},
				{Rank: King, Suit: Hearts},
				{Rank: Queen, Suit: Diamonds},
				{Rank: Jack, Suit: Clubs},
			},
		},
		{name: "invalid rank", input: "XsKs", wantErr: true},
		{name: "invalid suit", input: "AsKx", wantErr: true},
		{name: "odd length", input: "AsK", wantErr: true},
		{name: "empty string", input: "", expected: []Card{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseCards(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidCard))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParseErrorsQuoteInput(t *testing.T) {
	t.Parallel()
	tests := []struct {
		input string
		want  string
	}{
		{"A♥", `unknown suit "♥"`},
		{"♠K", `unknown rank "♠"`},
		{"AhK♦", `unknown suit "♦"`},
		{"Xs", `unknown rank "X"`},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			_, err := ParseCards(tt.input)
			require.ErrorIs(t, err, ErrInvalidCard)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestCardString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "Ah", Card{Rank: Ace, Suit: Hearts}.String())
	assert.Equal(t, "Ts", Card{Rank: Ten, Suit: Spades}.String())
	assert.Equal(t, "Kc", Card{Rank: King, Suit: Clubs}.String())
	assert.Equal(t, "♦", Diamonds.String())
	assert.Equal(t, "?", Suit(9).String())
	assert.Equal(t, "?", Rank(-1).String())
}

func TestCardKeyOrdersRankThenSuit(t *testing.T) {
	t.Parallel()
	aceHearts := Card{Rank: Ace, Suit: Hearts}
	aceSpades := Card{Rank: Ace, Suit: Spades}
	twoHearts := Card{Rank: Two, Suit: Hearts}

	assert.Equal(t, 0, aceHearts.Key())
	assert.Equal(t, 3, aceSpades.Key())
	assert.Equal(t, 4, twoHearts.Key())
	assert.Equal(t, 12*4+3, Card{Rank: King, Suit: Spades}.Key())
}

func TestCardIndexRoundTrip(t *testing.T) {
	t.Parallel()
	seen := make(map[Card]bool)
	for i := 0; i < Size; i++ {
		card := CardAt(i)
		require.False(t, seen[card], "duplicate card %s at %d", card, i)
		seen[card] = true
		assert.Equal(t, i, card.Index())
	}
}

func TestNewCardValidates(t *testing.T) {
	t.Parallel()
	card, err := NewCard(Queen, Clubs)
	require.NoError(t, err)
	assert.Equal(t, Card{Rank: Queen, Suit: Clubs}, card)

	_, err = NewCard(Rank(13), Clubs)
	assert.ErrorIs(t, err, ErrInvalidCard)

	_, err = NewCard(Ace, Suit(4))
	assert.ErrorIs(t, err, ErrInvalidCard)
}

func TestIsRed(t *testing.T) {
	t.Parallel()
	assert.True(t, Card{Rank: Five, Suit: Hearts}.IsRed())
	assert.True(t, Card{Rank: Five, Suit: Diamonds}.IsRed())
	assert.False(t, Card{Rank: Five, Suit: Clubs}.IsRed())
	assert.False(t, Card{Rank: Five, Suit: Spades}.IsRed())
}

func TestCardTextRoundTrip(t *testing.T) {
	t.Parallel()

	for _, c := range NewOrdered() {
		text, err := c.MarshalText()
		require.NoError(t, err)

		var got Card
		require.NoError(t, got.UnmarshalText(text))
		assert.Equal(t, c, got)
	}

	_, err := Card{Rank: Rank(20), Suit: Hearts}.MarshalText()
	assert.ErrorIs(t, err, ErrInvalidCard)
}
