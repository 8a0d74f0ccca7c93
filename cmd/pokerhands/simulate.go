package main

import (
	"cmp"
	"fmt"

	"github.com/lox/pokerhands/cmd/pokerhands/shared"
	"github.com/lox/pokerhands/internal/display"
	"github.com/lox/pokerhands/internal/fileutil"
	"github.com/lox/pokerhands/internal/randutil"
	"github.com/lox/pokerhands/internal/simulator"
)

// SimulateCmd deals many rounds and reports category frequencies
type SimulateCmd struct {
	Rounds  int    `kong:"help='Rounds to deal (overrides config)'"`
	Players int    `kong:"help='Players per round (overrides config)'"`
	Workers int    `kong:"help='Parallel workers (overrides config, 0 = GOMAXPROCS)'"`
	Seed    int64  `kong:"help='Base RNG seed (0 picks one from the clock)'"`
	Save    string `kong:"type='path',help='Write the statistics as JSON to this file'"`
}

func (c *SimulateCmd) Run(g *Globals) error {
	e, err := g.setup()
	if err != nil {
		return err
	}

	cfg := e.cfg.Simulate
	rounds := cmp.Or(c.Rounds, cfg.Rounds)
	players := cmp.Or(c.Players, cfg.Players)
	workers := cmp.Or(c.Workers, cfg.Workers)
	seed := randutil.Seed(e.clock, c.Seed, e.cfg.Deal.Seed)

	ctx := shared.SetupSignalHandler(e.logger)
	result, err := simulator.New(simulator.Config{
		Rounds:       rounds,
		Players:      players,
		CardsPerHand: e.cfg.Deal.CardsPerHand,
		Workers:      workers,
		Seed:         seed,
		Clock:        e.clock,
		Logger:       e.logger,
	}).Run(ctx)
	if err != nil {
		return err
	}

	if c.Save != "" {
		if err := fileutil.WriteJSON(c.Save, result); err != nil {
			return err
		}
		e.logger.Info("Saved simulation", "path", c.Save)
	}

	report, err := display.SimulationReport(result)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(e.out, report)
	return err
}
