// Package dealer distributes cards from the top of a deck into player hands.
package dealer

import (
	"errors"
	"fmt"

	"github.com/lox/pokerhands/internal/deck"
	"github.com/lox/pokerhands/internal/evaluator"
)

var (
	// ErrInvalidPlayers is returned when fewer than one player is requested.
	ErrInvalidPlayers = errors.New("at least one player is required")
	// ErrNotEnoughCards is returned when the deck cannot fill every hand.
	ErrNotEnoughCards = errors.New("not enough cards to deal")
)

// MaxPlayers is the largest table a single deck can serve with 5-card hands.
const MaxPlayers = deck.Size / evaluator.HandSize

// Deal hands out players*5 cards round-robin from the front of cards: card k
// goes to player k%players as that player's (k/players)-th card. Cards past
// the dealt prefix are left unused. The same input always yields the same
// hands.
func Deal(cards []deck.Card, players int) ([]evaluator.Hand, error) {
	if players < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidPlayers, players)
	}
	need := players * evaluator.HandSize
	if need > len(cards) {
		return nil, fmt.Errorf("%w: %d players need %d cards, have %d",
			ErrNotEnoughCards, players, need, len(cards))
	}

	hands := make([]evaluator.Hand, players)
	for k, card := range cards[:need] {
		hands[k%players].Cards[k/players] = card
	}
	return hands, nil
}
