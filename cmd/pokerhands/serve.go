package main

import (
	"github.com/lox/pokerhands/cmd/pokerhands/shared"
	"github.com/lox/pokerhands/internal/server"
)

// ServeCmd deals rounds to WebSocket clients
type ServeCmd struct {
	Addr string `kong:"help='Listen address (overrides config, e.g. :8080)'"`
}

func (c *ServeCmd) Run(g *Globals) error {
	e, err := g.setup()
	if err != nil {
		return err
	}

	addr := c.Addr
	if addr == "" {
		addr = e.cfg.ServerAddress()
	}

	s := server.NewServer(server.Config{
		Addr:         addr,
		CardsPerHand: e.cfg.Deal.CardsPerHand,
		Players:      e.cfg.Deal.Players,
	}, e.logger, e.clock)

	ctx := shared.SetupSignalHandler(e.logger)
	return s.Serve(ctx)
}
