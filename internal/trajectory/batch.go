package trajectory

import (
	"context"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"probelab/internal/corpus"
	"probelab/internal/manifest"
)

// BatchOptions controls the batch driver.
type BatchOptions struct {
	// Concurrency bounds parallel generation calls. Specs are independent,
	// so any bound is safe; 1 keeps generation strictly sequential.
	Concurrency int
	Logger      *zap.Logger
}

// Failure records a spec whose generation failed and was skipped.
type Failure struct {
	TrajectoryID string
	Err          error
}

// RunAll runs every spec through the generator. One spec's failure never
// aborts the batch: failed specs are skipped and reported. Results come back
// in spec order regardless of completion order, since downstream code
// indexes artifact stores by position.
func RunAll(ctx context.Context, specs []manifest.TrajectorySpec, polarity corpus.Polarity, gen Generator, opts BatchOptions) ([]Result, []Failure) {
	if opts.Concurrency <= 0 {
		opts.Concurrency = 1
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	results := make([]*Result, len(specs))
	var mu sync.Mutex
	var failures []Failure

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Concurrency)

	for i, spec := range specs {
		g.Go(func() error {
			res, err := Run(ctx, spec, polarity, gen)
			if err != nil {
				logger.Warn("trajectory generation failed, skipping spec",
					zap.String("trajectory_id", spec.TrajectoryID),
					zap.Error(err))
				mu.Lock()
				failures = append(failures, Failure{TrajectoryID: spec.TrajectoryID, Err: err})
				mu.Unlock()
				return nil
			}
			results[i] = &res
			return nil
		})
	}
	// Workers never return errors, so this only waits for completion.
	_ = g.Wait()

	out := make([]Result, 0, len(specs))
	for _, r := range results {
		if r != nil {
			out = append(out, *r)
		}
	}
	return out, failures
}
