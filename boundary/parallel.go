package boundary

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/plotgrid/internal/ctxlog"
	"github.com/katalvlaran/plotgrid/region"
)

// MeasureAll measures every region concurrently and returns the metrics in
// the same order as regions. Cancelling ctx stops scheduling further
// regions and returns ctx's error.
func MeasureAll(ctx context.Context, regions []*region.Region, opts ...Option) ([]Metrics, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	workers := o.Workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	logger := ctxlog.FromContext(ctx)
	logger.Debug("Measuring regions.", "regions", len(regions), "workers", workers)

	out := make([]Metrics, len(regions))
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i, r := range regions {
		i, r := i, r
		if egCtx.Err() != nil {
			break
		}
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			out[i] = Measure(r)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	logger.Debug("Regions measured.", "regions", len(regions))
	return out, nil
}
