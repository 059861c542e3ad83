package evaluator

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// EvaluateBatch ranks many hands concurrently with at most workers goroutines
// (unlimited when workers <= 0). Results are in input order. The first failure
// cancels the remaining work and is returned. Hands must not be mutated while
// the batch runs.
func EvaluateBatch(ctx context.Context, hands []Rankable, workers int) ([]Rank, error) {
	ranks := make([]Rank, len(hands))

	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}

	for i, h := range hands {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rank, err := h.Rank()
			if err != nil {
				return fmt.Errorf("hand %d: %w", i, err)
			}
			ranks[i] = rank
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return ranks, nil
}
