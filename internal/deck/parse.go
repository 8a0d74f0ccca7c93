package deck

import (
	"fmt"
	"strings"
)

// ParseCard parses a single two-character card such as "Ah" or "tc".
func ParseCard(s string) (Card, error) {
	r := []rune(s)
	if len(r) != 2 {
		return Card{}, fmt.Errorf("%w: %q must be exactly 2 characters", ErrInvalidCard, s)
	}
	rank, err := parseRank(string(r[0]))
	if err != nil {
		return Card{}, err
	}
	suit, err := parseSuit(string(r[1]))
	if err != nil {
		return Card{}, err
	}
	return Card{Rank: rank, Suit: suit}, nil
}

// ParseCards parses a string of card notation into a slice of cards.
// Format: "2d3c4d6sQh" where each card is [Rank][Suit]; spaces are ignored.
// Ranks: A, 2-9, T, J, Q, K. Suits: h, d, c, s.
func ParseCards(s string) ([]Card, error) {
	r := []rune(strings.ReplaceAll(s, " ", ""))
	if len(r)%2 != 0 {
		return nil, fmt.Errorf("%w: card string length %d is odd", ErrInvalidCard, len(r))
	}

	cards := make([]Card, 0, len(r)/2)
	for i := 0; i < len(r); i += 2 {
		card, err := ParseCard(string(r[i : i+2]))
		if err != nil {
			return nil, fmt.Errorf("position %d: %w", i, err)
		}
		cards = append(cards, card)
	}
	return cards, nil
}

// MustParseCards parses cards and panics on error (for fixtures and tests)
func MustParseCards(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(fmt.Sprintf("failed to parse cards '%s': %v", s, err))
	}
	return cards
}

func parseRank(s string) (Rank, error) {
	if i := strings.Index(rankSymbols, strings.ToUpper(s)); len(s) == 1 && i >= 0 {
		return Rank(i), nil
	}
	return 0, fmt.Errorf("%w: unknown rank %q", ErrInvalidCard, s)
}

func parseSuit(s string) (Suit, error) {
	switch strings.ToLower(s) {
	case "h":
		return Hearts, nil
	case "d":
		return Diamonds, nil
	case "c":
		return Clubs, nil
	case "s":
		return Spades, nil
	default:
		return 0, fmt.Errorf("%w: unknown suit %q", ErrInvalidCard, s)
	}
}
