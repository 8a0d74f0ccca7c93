package game

import (
	"errors"
	"fmt"

	"github.com/lox/pokerhands/internal/deck"
	"github.com/lox/pokerhands/internal/evaluator"
)

// ErrInvalidInput is returned when the requested table cannot be dealt.
var ErrInvalidInput = errors.New("invalid input")

// Bounds accepted for both the cards-per-hand and players arguments.
const (
	MinInput = 1
	MaxInput = 13
)

// ValidateInput checks the two round arguments. Each must be within
// MinInput..MaxInput and the players must fit into one deck with 5-card
// hands. cardsPerHand is range-checked only; hands are always five cards.
func ValidateInput(cardsPerHand, players int) error {
	if cardsPerHand < MinInput || cardsPerHand > MaxInput {
		return fmt.Errorf("%w: cards per hand must be between %d and %d, got %d",
			ErrInvalidInput, MinInput, MaxInput, cardsPerHand)
	}
	if players < MinInput || players > MaxInput {
		return fmt.Errorf("%w: players must be between %d and %d, got %d",
			ErrInvalidInput, MinInput, MaxInput, players)
	}
	if players*evaluator.HandSize > deck.Size {
		return fmt.Errorf("%w: %d players with %d-card hands exceed the %d-card deck",
			ErrInvalidInput, players, evaluator.HandSize, deck.Size)
	}
	return nil
}
