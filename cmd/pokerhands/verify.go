package main

import (
	"fmt"

	"github.com/lox/pokerhands/cmd/pokerhands/shared"
	"github.com/lox/pokerhands/internal/display"
	"github.com/lox/pokerhands/internal/randutil"
	"github.com/lox/pokerhands/internal/reference"
)

// VerifyCmd cross-checks category order against the reference evaluator
type VerifyCmd struct {
	Hands   int   `kong:"default='100000',help='Random hands to check'"`
	Workers int   `kong:"default='0',help='Parallel workers (0 = GOMAXPROCS)'"`
	Seed    int64 `kong:"help='RNG seed (0 picks one from the clock)'"`
}

func (c *VerifyCmd) Run(g *Globals) error {
	e, err := g.setup()
	if err != nil {
		return err
	}

	seed := randutil.Seed(e.clock, c.Seed)
	ctx := shared.SetupSignalHandler(e.logger)
	report, verifyErr := reference.Verify(ctx, reference.Config{
		Hands:   c.Hands,
		Seed:    seed,
		Workers: c.Workers,
		Logger:  e.logger,
	})
	if report != nil {
		table, err := display.VerifyReport(report)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprint(e.out, table); err != nil {
			return err
		}
	}
	if verifyErr != nil {
		return fmt.Errorf("verify with seed %d: %w", seed, verifyErr)
	}
	e.logger.Info("Classifier agrees with reference", "hands", report.Hands, "seed", seed)
	return nil
}
