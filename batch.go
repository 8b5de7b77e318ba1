package gazeseg

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Trace bundles one gaze recording for batch classification.
type Trace struct {
	X     []float64
	Y     []float64
	Times Times
}

// ClassifyNSLRBatch classifies independent traces concurrently. Every
// call operates on its own input copies, so traces may share backing
// arrays. Results align positionally with traces; the first failure
// cancels outstanding work and is returned with the trace's position.
func (c *Classifier) ClassifyNSLRBatch(ctx context.Context, traces []Trace, opts NSLROptions) ([]*Result, error) {
	results := make([]*Result, len(traces))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, trace := range traces {
		i, trace := i, trace
		g.Go(func() error {
			res, err := c.ClassifyNSLR(ctx, trace.X, trace.Y, trace.Times, opts)
			if err != nil {
				return fmt.Errorf("trace %d: %w", i, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// ClassifyRemodnavBatch classifies independent traces concurrently with
// a shared pixel-to-degree ratio. Same semantics as ClassifyNSLRBatch.
func (c *Classifier) ClassifyRemodnavBatch(ctx context.Context, traces []Trace, px2deg float64, opts RemodnavOptions) ([]*Result, error) {
	results := make([]*Result, len(traces))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, trace := range traces {
		i, trace := i, trace
		g.Go(func() error {
			res, err := c.ClassifyRemodnav(ctx, trace.X, trace.Y, trace.Times, px2deg, opts)
			if err != nil {
				return fmt.Errorf("trace %d: %w", i, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
