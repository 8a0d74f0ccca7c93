package main

import (
	"fmt"

	"github.com/lox/pokerhands/internal/evaluator"
	"github.com/lox/pokerhands/internal/fileutil"
	"github.com/lox/pokerhands/internal/game"
	"github.com/lox/pokerhands/internal/randutil"
	"github.com/lox/pokerhands/internal/tui"
	"github.com/sanity-io/litter"
)

// DealCmd plays one round and prints every stage
type DealCmd struct {
	CardsPerHand *int   `kong:"arg,optional,name='cards-per-hand',help='Cards per hand, 1-13 (recorded only; hands are always five cards)'"`
	Players      *int   `kong:"arg,optional,help='Number of players, 1-10'"`
	Seed         *int64 `kong:"help='Deterministic shuffle seed (omit to use the config seed or the clock)'"`
	Interactive  bool   `kong:"short='i',help='Step through the stages in a terminal viewer'"`
	Dump         bool   `kong:"help='Print the full round structure after the stages'"`
	NoTests      bool   `kong:"help='Skip the built-in test hands'"`
	Save         string `kong:"type='path',help='Write the round as JSON to this file'"`
}

// Validate rejects out-of-range arguments before any command runs. Omitted
// arguments come from the config file.
func (c *DealCmd) Validate() error {
	return game.ValidateInput(valueOr(c.CardsPerHand, game.MinInput), valueOr(c.Players, game.MinInput))
}

func (c *DealCmd) Run(g *Globals) error {
	e, err := g.setup()
	if err != nil {
		return err
	}

	cards, players := c.CardsPerHand, c.Players
	if cards == 0 {
		cards = e.cfg.Deal.CardsPerHand
	}
	if players == 0 {
		players = e.cfg.Deal.Players
	}

	seed := randutil.Seed(e.clock, c.Seed, e.cfg.Deal.Seed)
	e.logger.Debug("Dealing round", "cards_per_hand", cards, "players", players, "seed", seed)

	round, err := game.Play(randutil.New(seed), cards, players,
		game.WithSeed(seed), game.WithLogger(e.logger))
	if err != nil {
		return err
	}

	var tests []evaluator.Hand
	if !c.NoTests && *e.cfg.Display.ShowTests {
		if tests, err = evaluator.SelfTest(); err != nil {
			return fmt.Errorf("self-test failed: %w", err)
		}
	}

	if c.Save != "" {
		if err := fileutil.WriteJSON(c.Save, round); err != nil {
			return err
		}
		e.logger.Info("Saved round", "path", c.Save, "id", round.ID)
	}

	stages := e.renderer.Stages(round, tests)
	if c.Interactive {
		return tui.Run(fmt.Sprintf("Round %s", round.ID), stages, e.logger)
	}

	for _, s := range stages {
		if _, err := fmt.Fprint(e.out, s.Body); err != nil {
			return err
		}
	}

	if c.Dump {
		_, err := fmt.Fprintln(e.out, litter.Sdump(round))
		return err
	}
	return nil
}

func valueOr[T any](v *T, fallback T) T {
	if v != nil {
		return *v
	}
	return fallback
}
