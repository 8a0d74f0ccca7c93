package deck

import (
	"errors"
	"fmt"
)

// ErrInvalidCard is returned when a rank, suit or card notation is out of range.
var ErrInvalidCard = errors.New("invalid card")

// Suit represents a card suit
type Suit int

const (
	Hearts Suit = iota
	Diamonds
	Clubs
	Spades
)

// NumSuits is the number of suits in a deck
const NumSuits = 4

// String returns the glyph for a suit
func (s Suit) String() string {
	switch s {
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	case Spades:
		return "♠"
	default:
		return "?"
	}
}

// Letter returns the single-letter notation for a suit (h, d, c, s)
func (s Suit) Letter() byte {
	switch s {
	case Hearts:
		return 'h'
	case Diamonds:
		return 'd'
	case Clubs:
		return 'c'
	case Spades:
		return 's'
	default:
		return '?'
	}
}

// IsRed returns true if the suit is red (Hearts or Diamonds)
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// Valid reports whether s is one of the four suits
func (s Suit) Valid() bool {
	return s >= Hearts && s <= Spades
}

// Rank represents a card rank. Ace is the lowest rank; straights treat it as
// high when it completes T-J-Q-K.
type Rank int

const (
	Ace Rank = iota
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

// NumRanks is the number of ranks per suit
const NumRanks = 13

const rankSymbols = "A23456789TJQK"

// String returns the single-character symbol for a rank
func (r Rank) String() string {
	if !r.Valid() {
		return "?"
	}
	return rankSymbols[r : r+1]
}

// Valid reports whether r is between Ace and King
func (r Rank) Valid() bool {
	return r >= Ace && r <= King
}

// Card represents a playing card
type Card struct {
	Rank Rank
	Suit Suit
}

// NewCard creates a new card, rejecting out-of-range values
func NewCard(rank Rank, suit Suit) (Card, error) {
	if !rank.Valid() {
		return Card{}, fmt.Errorf("%w: rank %d", ErrInvalidCard, rank)
	}
	if !suit.Valid() {
		return Card{}, fmt.Errorf("%w: suit %d", ErrInvalidCard, suit)
	}
	return Card{Rank: rank, Suit: suit}, nil
}

// String returns the compact notation of a card (e.g., "Ah", "Tc")
func (c Card) String() string {
	return c.Rank.String() + string(c.Suit.Letter())
}

// Key is the total ordering used to sort hands: rank first, suit as tiebreak.
func (c Card) Key() int {
	return int(c.Rank)*NumSuits + int(c.Suit)
}

// Index returns the card's position in a freshly ordered deck (0-51).
func (c Card) Index() int {
	return int(c.Suit)*NumRanks + int(c.Rank)
}

// CardAt is the inverse of Index.
func CardAt(index int) Card {
	return Card{Rank: Rank(index % NumRanks), Suit: Suit(index / NumRanks)}
}

// IsRed returns true if the card is red
func (c Card) IsRed() bool {
	return c.Suit.IsRed()
}

// MarshalText implements encoding.TextMarshaler using card notation
func (c Card) MarshalText() ([]byte, error) {
	if !c.Rank.Valid() || !c.Suit.Valid() {
		return nil, fmt.Errorf("%w: rank %d suit %d", ErrInvalidCard, c.Rank, c.Suit)
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (c *Card) UnmarshalText(text []byte) error {
	parsed, err := ParseCard(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
