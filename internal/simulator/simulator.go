package simulator

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/pokerhands/internal/game"
	"github.com/lox/pokerhands/internal/randutil"
	"github.com/lox/pokerhands/internal/statistics"
	"golang.org/x/sync/errgroup"
)

// Config holds configuration for running simulations
type Config struct {
	Rounds       int
	Players      int
	CardsPerHand int
	Workers      int // <= 0 uses GOMAXPROCS
	Seed         int64
	Clock        quartz.Clock
	Logger       *log.Logger
}

// Result is the outcome of a simulation run
type Result struct {
	Stats   *statistics.Statistics
	Seed    int64
	Workers int
	Elapsed time.Duration
}

// Simulator deals many independent rounds and collects category frequencies
type Simulator struct {
	config Config
}

// New creates a new simulator with the given configuration
func New(config Config) *Simulator {
	if config.Clock == nil {
		config.Clock = quartz.NewReal()
	}
	if config.Logger == nil {
		config.Logger = log.New(io.Discard)
	}
	if config.CardsPerHand == 0 {
		config.CardsPerHand = 5
	}
	if config.Workers <= 0 {
		config.Workers = runtime.GOMAXPROCS(0)
	}
	return &Simulator{config: config}
}

// Run executes the simulation. Round i is dealt from randutil.Derive(Seed, i),
// so results do not depend on the number of workers.
func (s *Simulator) Run(ctx context.Context) (*Result, error) {
	if s.config.Rounds < 1 {
		return nil, fmt.Errorf("rounds must be positive, got %d", s.config.Rounds)
	}
	if err := game.ValidateInput(s.config.CardsPerHand, s.config.Players); err != nil {
		return nil, err
	}

	logger := s.config.Logger.WithPrefix("simulator")
	start := s.config.Clock.Now()

	workers := min(s.config.Workers, s.config.Rounds)
	partials := make([]statistics.Statistics, workers)

	logger.Info("Starting simulation", "rounds", s.config.Rounds, "players", s.config.Players,
		"workers", workers, "seed", s.config.Seed)

	g, ctx := errgroup.WithContext(ctx)
	for w := range workers {
		g.Go(func() error {
			for i := w; i < s.config.Rounds; i += workers {
				if err := ctx.Err(); err != nil {
					return err
				}
				result, err := s.playRound(i)
				if err != nil {
					return fmt.Errorf("round %d: %w", i, err)
				}
				partials[w].Add(result)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats := &statistics.Statistics{}
	for i := range partials {
		stats.Merge(&partials[i])
	}

	if err := stats.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}

	elapsed := s.config.Clock.Since(start)
	logger.Info("Simulation complete", "rounds", stats.Rounds, "elapsed", elapsed)

	return &Result{
		Stats:   stats,
		Seed:    s.config.Seed,
		Workers: workers,
		Elapsed: elapsed,
	}, nil
}

// playRound deals a single round from its derived seed
func (s *Simulator) playRound(i int) (statistics.RoundResult, error) {
	seed := randutil.Derive(s.config.Seed, i)
	round, err := game.Play(randutil.New(seed), s.config.CardsPerHand, s.config.Players,
		game.WithID(fmt.Sprintf("sim-%d", i)), game.WithSeed(seed))
	if err != nil {
		return statistics.RoundResult{}, err
	}
	return statistics.ResultFromHands(seed, round.Ranked), nil
}

// RunSimulation is a convenience function for running a simulation with basic parameters
func RunSimulation(ctx context.Context, rounds, players int, seed int64, logger *log.Logger) (*Result, error) {
	return New(Config{
		Rounds:  rounds,
		Players: players,
		Seed:    seed,
		Logger:  logger,
	}).Run(ctx)
}
