package evaluator

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// ClassifyConcurrent is ClassifyAll spread over up to workers goroutines.
// Each hand is an independent unit of work; results land on the hands in
// place, so the outcome is identical to ClassifyAll. workers <= 0 uses
// GOMAXPROCS.
func ClassifyConcurrent(ctx context.Context, hands []Hand, workers int) error {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range hands {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			hands[i].Category = Classify(hands[i].Sorted())
			return nil
		})
	}
	return g.Wait()
}
