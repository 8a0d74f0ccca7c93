package main

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/pokerhands/cmd/pokerhands/shared"
	"github.com/lox/pokerhands/internal/config"
	"github.com/lox/pokerhands/internal/display"
)

// Globals are flags shared by every command
type Globals struct {
	Config    string `kong:"default='pokerhands.hcl',type='path',help='HCL config file (missing file uses defaults)'"`
	LogLevel  string `kong:"help='Log level: debug, info, warn, error (overrides config)'"`
	LogFormat string `kong:"help='Log format: text, json, logfmt (overrides config)'"`
	NoColor   bool   `kong:"help='Disable colored output'"`

	Stdout io.Writer    `kong:"-"`
	Stderr io.Writer    `kong:"-"`
	Clock  quartz.Clock `kong:"-"`
}

// env is everything a command needs once flags and config are merged
type env struct {
	cfg      *config.Config
	logger   *log.Logger
	renderer *display.Renderer
	out      io.Writer
	clock    quartz.Clock
}

func (g *Globals) setup() (*env, error) {
	out := g.Stdout
	if out == nil {
		out = os.Stdout
	}
	errOut := g.Stderr
	if errOut == nil {
		errOut = os.Stderr
	}
	clock := g.Clock
	if clock == nil {
		clock = quartz.NewReal()
	}

	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, err
	}
	if g.LogLevel != "" {
		cfg.Log.Level = g.LogLevel
	}
	if g.LogFormat != "" {
		cfg.Log.Format = g.LogFormat
	}
	if g.NoColor {
		*cfg.Display.Color = false
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger, err := shared.SetupLogger(errOut, cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return nil, err
	}
	logger.Debug("Loaded config", "path", g.Config)

	return &env{
		cfg:      cfg,
		logger:   logger,
		renderer: display.NewRenderer(out, *cfg.Display.Color),
		out:      out,
		clock:    clock,
	}, nil
}
