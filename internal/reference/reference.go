// Package reference cross-checks the category classifier against the
// paulhankin/poker evaluator. The reference scores hands on a single
// int16 scale where larger is stronger; any hand placed in a higher
// category by the classifier must therefore score strictly higher there.
package reference

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"

	"github.com/charmbracelet/log"
	"github.com/lox/pokerhands/internal/deck"
	"github.com/lox/pokerhands/internal/evaluator"
	"github.com/lox/pokerhands/internal/randutil"
	"github.com/paulhankin/poker"
	"golang.org/x/sync/errgroup"
)

// ErrMismatch is returned by Verify when the two evaluators disagree.
var ErrMismatch = errors.New("classifier disagrees with reference evaluator")

var suits = map[deck.Suit]poker.Suit{
	deck.Hearts:   poker.Heart,
	deck.Diamonds: poker.Diamond,
	deck.Clubs:    poker.Club,
	deck.Spades:   poker.Spade,
}

// Card converts a deck card to the reference representation.
func Card(c deck.Card) (poker.Card, error) {
	s, ok := suits[c.Suit]
	if !ok || !c.Rank.Valid() {
		var zero poker.Card
		return zero, fmt.Errorf("%w: %v", deck.ErrInvalidCard, c)
	}
	// Reference ranks run 1 (Ace) to 13 (King).
	return poker.MakeCard(s, poker.Rank(c.Rank+1))
}

func convert(h evaluator.Hand) ([evaluator.HandSize]poker.Card, error) {
	var out [evaluator.HandSize]poker.Card
	for i, c := range h.Cards {
		pc, err := Card(c)
		if err != nil {
			return out, err
		}
		out[i] = pc
	}
	return out, nil
}

// Score returns the reference score for a hand
func Score(h evaluator.Hand) (int16, error) {
	cards, err := convert(h)
	if err != nil {
		return 0, err
	}
	return poker.Eval5(&cards), nil
}

// Describe returns the reference evaluator's description of a hand
func Describe(h evaluator.Hand) (string, error) {
	cards, err := convert(h)
	if err != nil {
		return "", err
	}
	return poker.Describe(cards[:])
}

// Config controls a verification run
type Config struct {
	Hands   int
	Seed    int64
	Workers int // <= 0 uses GOMAXPROCS
	Logger  *log.Logger
}

// Bounds is the reference score range observed for one category
type Bounds struct {
	Count int
	Min   int16
	Max   int16
}

// Report summarises a verification run
type Report struct {
	Hands  int
	Bounds [evaluator.NumCategories]Bounds
}

func (r *Report) add(c evaluator.Category, score int16) {
	b := &r.Bounds[c]
	if b.Count == 0 || score < b.Min {
		b.Min = score
	}
	if b.Count == 0 || score > b.Max {
		b.Max = score
	}
	b.Count++
	r.Hands++
}

func (r *Report) merge(other *Report) {
	for c := range other.Bounds {
		o := other.Bounds[c]
		if o.Count == 0 {
			continue
		}
		b := &r.Bounds[c]
		if b.Count == 0 || o.Min < b.Min {
			b.Min = o.Min
		}
		if b.Count == 0 || o.Max > b.Max {
			b.Max = o.Max
		}
		b.Count += o.Count
	}
	r.Hands += other.Hands
}

// Check reports an error when the score ranges of two observed categories
// overlap or are out of order. Comparing every category with the next
// observed one is enough because score ranges are totally ordered.
func (r *Report) Check() error {
	prev := -1
	for c := range r.Bounds {
		if r.Bounds[c].Count == 0 {
			continue
		}
		if prev >= 0 && r.Bounds[prev].Max >= r.Bounds[c].Min {
			return fmt.Errorf("%w: %s scores up to %d but %s scores from %d",
				ErrMismatch, evaluator.Category(prev), r.Bounds[prev].Max,
				evaluator.Category(c), r.Bounds[c].Min)
		}
		prev = c
	}
	return nil
}

// Verify deals random hands, classifies them and checks the category order
// against the reference scores.
func Verify(ctx context.Context, cfg Config) (*Report, error) {
	if cfg.Hands < 1 {
		return nil, fmt.Errorf("hands must be positive, got %d", cfg.Hands)
	}
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard)
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	workers = min(workers, cfg.Hands)
	logger := cfg.Logger.WithPrefix("verify")

	partials := make([]Report, workers)
	g, ctx := errgroup.WithContext(ctx)
	for w := range workers {
		n := cfg.Hands / workers
		if w < cfg.Hands%workers {
			n++
		}
		g.Go(func() error {
			return verifyChunk(ctx, &partials[w], randutil.Derive(cfg.Seed, w), n)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := &Report{}
	for i := range partials {
		report.merge(&partials[i])
	}
	logger.Debug("Verified hands", "hands", report.Hands, "workers", workers)

	if err := report.Check(); err != nil {
		return report, err
	}
	return report, nil
}

func verifyChunk(ctx context.Context, report *Report, seed int64, n int) error {
	rng := randutil.New(seed)
	d := deck.NewOrdered()
	perDeck := deck.Size / evaluator.HandSize

	hands := make([]evaluator.Hand, 0, perDeck)
	for report.Hands < n {
		if err := ctx.Err(); err != nil {
			return err
		}
		d.Shuffle(rng)
		hands = hands[:0]
		for i := 0; i < perDeck && report.Hands+len(hands) < n; i++ {
			h, err := evaluator.NewHand(d[i*evaluator.HandSize : (i+1)*evaluator.HandSize])
			if err != nil {
				return err
			}
			hands = append(hands, h)
		}
		evaluator.ClassifyAll(hands)
		for _, h := range hands {
			score, err := Score(h)
			if err != nil {
				return err
			}
			report.add(h.Category, score)
		}
	}
	return nil
}
