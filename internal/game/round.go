package game

import (
	"fmt"
	"io"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/lox/pokerhands/internal/dealer"
	"github.com/lox/pokerhands/internal/deck"
	"github.com/lox/pokerhands/internal/evaluator"
)

// Round is the full record of one deal, stage by stage.
type Round struct {
	ID           string             `json:"id"`
	Seed         int64              `json:"seed,omitempty"`
	CardsPerHand int                `json:"cards_per_hand"`
	Players      int                `json:"players"`
	Ordered      deck.Deck          `json:"-"`
	Shuffled     deck.Deck          `json:"shuffled"`
	Dealt        []evaluator.Hand   `json:"dealt"`
	Sorted       []evaluator.Hand   `json:"-"`
	Ranked       []evaluator.Hand   `json:"ranked"`
	Best         evaluator.Category `json:"best"`
	Winners      []int              `json:"winners"`
}

// RoundOption configures Play.
type RoundOption func(*roundConfig)

type roundConfig struct {
	logger *log.Logger
	deck   *deck.Deck
	id     string
	seed   int64
}

// WithLogger sets the logger used to trace each stage.
func WithLogger(logger *log.Logger) RoundOption {
	return func(c *roundConfig) {
		c.logger = logger
	}
}

// WithDeck deals from the given deck instead of shuffling a fresh one.
func WithDeck(d deck.Deck) RoundOption {
	return func(c *roundConfig) {
		c.deck = &d
	}
}

// WithID overrides the generated round ID.
func WithID(id string) RoundOption {
	return func(c *roundConfig) {
		c.id = id
	}
}

// WithSeed records the seed the random source was built from.
func WithSeed(seed int64) RoundOption {
	return func(c *roundConfig) {
		c.seed = seed
	}
}

// Play validates the arguments, then creates an ordered deck, shuffles it with
// rng, deals players hands, sorts and classifies them and picks the best
// category.
func Play(rng deck.RandSource, cardsPerHand, players int, opts ...RoundOption) (*Round, error) {
	cfg := &roundConfig{
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.id == "" {
		cfg.id = uuid.NewString()
	}

	if err := ValidateInput(cardsPerHand, players); err != nil {
		return nil, err
	}

	logger := cfg.logger.WithPrefix("round").With("id", cfg.id)
	r := &Round{
		ID:           cfg.id,
		Seed:         cfg.seed,
		CardsPerHand: cardsPerHand,
		Players:      players,
		Ordered:      deck.NewOrdered(),
	}

	if cfg.deck != nil {
		r.Shuffled = *cfg.deck
		logger.Debug("Using supplied deck")
	} else {
		r.Shuffled = r.Ordered
		r.Shuffled.Shuffle(rng)
		logger.Debug("Shuffled deck", "top", r.Shuffled[0])
	}

	dealt, err := dealer.Deal(r.Shuffled.Cards(), players)
	if err != nil {
		return nil, fmt.Errorf("deal round %s: %w", r.ID, err)
	}
	r.Dealt = dealt
	logger.Debug("Dealt hands", "players", players, "cards", players*evaluator.HandSize)

	r.Sorted = slices.Clone(dealt)
	evaluator.SortAll(r.Sorted)

	r.Ranked = slices.Clone(r.Sorted)
	evaluator.ClassifyAll(r.Ranked)

	r.Best = evaluator.Best(r.Ranked)
	r.Winners = evaluator.Winners(r.Ranked)
	logger.Info("Round complete", "best", r.Best, "winners", len(r.Winners))

	return r, nil
}

// IsWinner reports whether player i holds the winning category.
func (r *Round) IsWinner(i int) bool {
	return slices.Contains(r.Winners, i)
}
