package engine

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"seed-almanac/category"
)

// Trace walks v to target and returns every value visited, v included.
// Backward walks stop early only if the missing-table sentinel lands in the
// chain's first category.
func (e *Engine) Trace(v category.Value, target category.Category) ([]category.Value, error) {
	hops, err := e.chain.Distance(v.Category(), target)
	if err != nil {
		return nil, fmt.Errorf("trace %s to %s: %w", v, target, err)
	}

	step := e.ResolveForward
	if hops < 0 {
		step = e.ResolveHop
		hops = -hops
	}

	path := make([]category.Value, 0, hops+1)
	path = append(path, v)

	for range hops {
		if len(path) > 1 && v.Is(e.chain.First()) {
			break
		}

		v, err = step(v)
		if err != nil {
			return path, fmt.Errorf("trace to %s: %w", target, err)
		}

		path = append(path, v)
	}

	return path, nil
}

// Walk is Trace returning only the final value.
func (e *Engine) Walk(v category.Value, target category.Category) (category.Value, error) {
	path, err := e.Trace(v, target)
	if err != nil {
		return category.Value{}, err
	}

	return path[len(path)-1], nil
}

// Locate walks a raw seed number from the first category to the last.
func (e *Engine) Locate(seed int64) (category.Value, error) {
	return e.Walk(category.New(e.chain.First(), seed), e.chain.Last())
}

// Origin walks a terminal magnitude back to the first category.
func (e *Engine) Origin(magnitude int64) (category.Value, error) {
	return e.Walk(category.New(e.chain.Last(), magnitude), e.chain.First())
}

// ResolveSeeds locates every seed concurrently. Results keep seed order.
func (e *Engine) ResolveSeeds(ctx context.Context, seeds []int64) ([]category.Value, error) {
	out := make([]category.Value, len(seeds))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)

	for i, seed := range seeds {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}

			v, err := e.Locate(seed)
			if err != nil {
				return fmt.Errorf("seed %d: %w", seed, err)
			}

			out[i] = v

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// Lowest returns the smallest terminal value over all seeds.
func (e *Engine) Lowest(ctx context.Context, seeds []int64) (category.Value, error) {
	if len(seeds) == 0 {
		return category.Value{}, ErrNoSeeds
	}

	values, err := e.ResolveSeeds(ctx, seeds)
	if err != nil {
		return category.Value{}, err
	}

	lowest := values[0]
	for _, v := range values[1:] {
		if v.Magnitude() < lowest.Magnitude() {
			lowest = v
		}
	}

	e.logger.Debug("lowest terminal value",
		zap.Int("seeds", len(seeds)),
		zap.Stringer("value", lowest),
	)

	return lowest, nil
}
