package main

import (
	"fmt"

	"github.com/lox/pokerhands/internal/display"
	"github.com/lox/pokerhands/internal/evaluator"
)

// SelfTestCmd prints the built-in test hands and fails on any misclassification
type SelfTestCmd struct{}

func (c *SelfTestCmd) Run(g *Globals) error {
	e, err := g.setup()
	if err != nil {
		return err
	}

	hands, testErr := evaluator.SelfTest()
	if _, err := fmt.Fprint(e.out, e.renderer.Hands(display.TestTitle, hands, display.Testing, 0)); err != nil {
		return err
	}
	if testErr != nil {
		return fmt.Errorf("self-test failed: %w", testErr)
	}
	e.logger.Info("Self-test passed", "hands", len(hands))
	return nil
}
