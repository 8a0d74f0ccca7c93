package main

import (
	"context"
	"fmt"

	"github.com/lox/pokerhands/internal/display"
	"github.com/lox/pokerhands/internal/evaluator"
)

// ClassifyCmd ranks hands given on the command line
type ClassifyCmd struct {
	Hands   []string `kong:"arg,help='Hands in card notation, e.g. 2d3c4d6sQh'"`
	Workers int      `kong:"default='0',help='Classification workers (0 = GOMAXPROCS)'"`
}

func (c *ClassifyCmd) Run(g *Globals) error {
	e, err := g.setup()
	if err != nil {
		return err
	}

	hands := make([]evaluator.Hand, len(c.Hands))
	for i, s := range c.Hands {
		if hands[i], err = evaluator.ParseHand(s); err != nil {
			return fmt.Errorf("hand %d %q: %w", i+1, s, err)
		}
	}

	if err := evaluator.ClassifyConcurrent(context.Background(), hands, c.Workers); err != nil {
		return err
	}

	best := evaluator.Best(hands)
	e.logger.Debug("Classified hands", "hands", len(hands), "best", best)
	_, err = fmt.Fprint(e.out, e.renderer.Hands("classified", hands, display.WithWinner, best))
	return err
}
