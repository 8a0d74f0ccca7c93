package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Globals

	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Deal     DealCmd          `cmd:"" default:"withargs" help:"Shuffle, deal and rank a round (default command)"`
	Classify ClassifyCmd      `cmd:"" help:"Classify hands given in card notation"`
	SelfTest SelfTestCmd      `cmd:"selftest" help:"Classify the built-in test hands"`
	Simulate SimulateCmd      `cmd:"" help:"Deal many rounds and report category frequencies"`
	Verify   VerifyCmd        `cmd:"" help:"Cross-check the classifier against a reference evaluator"`
	Serve    ServeCmd         `cmd:"" help:"Deal rounds over WebSocket"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("pokerhands"),
		kong.Description("Shuffle a deck, deal five-card hands and rank them"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
