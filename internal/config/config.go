package config

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/lox/pokerhands/internal/game"
)

// DefaultPath is where the CLI looks for a config file when none is given.
const DefaultPath = "pokerhands.hcl"

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("invalid config")

// Config represents the complete pokerhands configuration
type Config struct {
	Deal     *DealSettings     `hcl:"deal,block"`
	Display  *DisplaySettings  `hcl:"display,block"`
	Log      *LogSettings      `hcl:"log,block"`
	Simulate *SimulateSettings `hcl:"simulate,block"`
	Server   *ServerSettings   `hcl:"server,block"`
}

// DealSettings are the defaults for a single round
type DealSettings struct {
	CardsPerHand int   `hcl:"cards_per_hand,optional"`
	Players      int   `hcl:"players,optional"`
	Seed         int64 `hcl:"seed,optional"`
}

// DisplaySettings control terminal output
type DisplaySettings struct {
	Color     *bool `hcl:"color,optional"`
	ShowTests *bool `hcl:"show_tests,optional"`
}

// LogSettings control the logger
type LogSettings struct {
	Level  string `hcl:"level,optional"`
	Format string `hcl:"format,optional"`
}

// SimulateSettings are the defaults for the simulate command
type SimulateSettings struct {
	Rounds  int `hcl:"rounds,optional"`
	Players int `hcl:"players,optional"`
	Workers int `hcl:"workers,optional"`
}

// ServerSettings contains websocket server configuration
type ServerSettings struct {
	Address string `hcl:"address,optional"`
	Port    int    `hcl:"port,optional"`
}

// Default returns the configuration used when no file is present
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// Load reads configuration from an HCL file. A missing file yields defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	config.applyDefaults()
	return &config, nil
}

func (c *Config) applyDefaults() {
	if c.Deal == nil {
		c.Deal = &DealSettings{}
	}
	if c.Deal.CardsPerHand == 0 {
		c.Deal.CardsPerHand = 5
	}
	if c.Deal.Players == 0 {
		c.Deal.Players = 4
	}

	if c.Display == nil {
		c.Display = &DisplaySettings{}
	}
	if c.Display.Color == nil {
		c.Display.Color = boolPtr(true)
	}
	if c.Display.ShowTests == nil {
		c.Display.ShowTests = boolPtr(true)
	}

	if c.Log == nil {
		c.Log = &LogSettings{}
	}
	if c.Log.Level == "" {
		c.Log.Level = "warn"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}

	if c.Simulate == nil {
		c.Simulate = &SimulateSettings{}
	}
	if c.Simulate.Rounds == 0 {
		c.Simulate.Rounds = 10000
	}
	if c.Simulate.Players == 0 {
		c.Simulate.Players = 4
	}

	if c.Server == nil {
		c.Server = &ServerSettings{}
	}
	if c.Server.Address == "" {
		c.Server.Address = "localhost"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
}

// Validate checks every block for out-of-range values
func (c *Config) Validate() error {
	if err := game.ValidateInput(c.Deal.CardsPerHand, c.Deal.Players); err != nil {
		return fmt.Errorf("%w: deal: %w", ErrInvalidConfig, err)
	}
	if !slices.Contains(LogLevels, c.Log.Level) {
		return fmt.Errorf("%w: log level %q", ErrInvalidConfig, c.Log.Level)
	}
	if !slices.Contains(LogFormats, c.Log.Format) {
		return fmt.Errorf("%w: log format %q", ErrInvalidConfig, c.Log.Format)
	}
	if c.Simulate.Rounds < 1 {
		return fmt.Errorf("%w: simulate rounds must be positive, got %d", ErrInvalidConfig, c.Simulate.Rounds)
	}
	if err := game.ValidateInput(c.Deal.CardsPerHand, c.Simulate.Players); err != nil {
		return fmt.Errorf("%w: simulate: %w", ErrInvalidConfig, err)
	}
	if c.Simulate.Workers < 0 {
		return fmt.Errorf("%w: simulate workers must not be negative", ErrInvalidConfig)
	}
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("%w: invalid port: %d", ErrInvalidConfig, c.Server.Port)
	}
	return nil
}

// ServerAddress returns the host:port the server listens on
func (c *Config) ServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Address, c.Server.Port)
}

// LogLevels are the accepted values for log.level
var LogLevels = []string{"debug", "info", "warn", "error"}

// LogFormats are the accepted values for log.format
var LogFormats = []string{"text", "json", "logfmt"}

func boolPtr(b bool) *bool {
	return &b
}
