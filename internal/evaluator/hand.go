package evaluator

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/lox/pokerhands/internal/deck"
)

// HandSize is the number of cards in every hand
const HandSize = 5

var (
	// ErrHandSize is returned when a hand is built from the wrong number of cards.
	ErrHandSize = errors.New("hand must contain exactly 5 cards")
	// ErrDuplicateCard is returned when a hand contains the same card twice.
	ErrDuplicateCard = errors.New("duplicate card in hand")
)

// Hand is five cards held by one player plus the category assigned by the
// classifier. The zero Category is HighCard until ClassifyAll runs.
type Hand struct {
	Cards    [HandSize]deck.Card `json:"cards"`
	Category Category            `json:"category"`
}

// NewHand builds a hand from exactly five distinct cards.
func NewHand(cards []deck.Card) (Hand, error) {
	var h Hand
	if len(cards) != HandSize {
		return h, fmt.Errorf("%w: got %d", ErrHandSize, len(cards))
	}
	for i, c := range cards {
		if slices.Contains(cards[:i], c) {
			return h, fmt.Errorf("%w: %s", ErrDuplicateCard, c)
		}
	}
	copy(h.Cards[:], cards)
	return h, nil
}

// ParseHand parses a hand from card notation such as "2d3c4d6sQh".
func ParseHand(s string) (Hand, error) {
	cards, err := deck.ParseCards(s)
	if err != nil {
		return Hand{}, err
	}
	return NewHand(cards)
}

// MustParseHand parses a hand and panics on error (for fixtures and tests)
func MustParseHand(s string) Hand {
	h, err := ParseHand(s)
	if err != nil {
		panic(fmt.Sprintf("failed to parse hand '%s': %v", s, err))
	}
	return h
}

// String returns a string representation of the hand
func (h Hand) String() string {
	strs := make([]string, len(h.Cards))
	for i, card := range h.Cards {
		strs[i] = card.String()
	}
	return fmt.Sprintf("%s [%s]", h.Category, strings.Join(strs, " "))
}

// Sort orders the hand's cards ascending by rank, then suit.
func (h *Hand) Sort() {
	slices.SortStableFunc(h.Cards[:], compareCards)
}

// Sorted returns the hand's cards in sorted order without modifying h.
func (h Hand) Sorted() SortedHand {
	h.Sort()
	return SortedHand{cards: h.Cards}
}

// SortAll sorts every hand in place.
func SortAll(hands []Hand) {
	for i := range hands {
		hands[i].Sort()
	}
}

// SortedHand is a hand whose cards are known to be in ascending key order.
// The classifier's adjacency checks rely on that order, so it only accepts
// values produced by Hand.Sorted.
type SortedHand struct {
	cards [HandSize]deck.Card
}

// Cards returns the sorted cards
func (s SortedHand) Cards() [HandSize]deck.Card {
	return s.cards
}

func compareCards(a, b deck.Card) int {
	return cmp.Compare(a.Key(), b.Key())
}
