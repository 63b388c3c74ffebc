package score

import (
	"context"
	"fmt"

	"github.com/katalvlaran/plotgrid/boundary"
	"github.com/katalvlaran/plotgrid/grid"
	"github.com/katalvlaran/plotgrid/internal/ctxlog"
	"github.com/katalvlaran/plotgrid/region"
)

// RegionReport is the diagnostic line for one region.
type RegionReport struct {
	ID     int
	Label  grid.Label
	Anchor grid.Point
	boundary.Metrics
}

// FencePrice returns Area×Perimeter of the report.
func (r RegionReport) FencePrice() int { return r.Area * r.Perimeter }

// BulkPrice returns Area×Sides of the report.
func (r RegionReport) BulkPrice() int { return r.Area * r.Sides }

// Summary holds both totals and the per-region reports in region ID order.
type Summary struct {
	FencePrice int
	BulkPrice  int
	Regions    []RegionReport
}

// Options configures Evaluate and Summarize.
type Options struct {
	Region   []region.Option
	Boundary []boundary.Option
}

// Option configures Evaluate and Summarize via functional arguments.
type Option func(*Options)

// WithStrategy forwards the decomposition strategy to region.NewPartition.
func WithStrategy(s region.Strategy) Option {
	return func(o *Options) {
		o.Region = append(o.Region, region.WithStrategy(s))
	}
}

// WithWorkers forwards the fan-out bound to boundary.MeasureAll.
func WithWorkers(n int) Option {
	return func(o *Options) {
		o.Boundary = append(o.Boundary, boundary.WithWorkers(n))
	}
}

// FencePrice returns Σ Area(r) × Perimeter(r).
func FencePrice(regions []*region.Region) int {
	total := 0
	for _, r := range regions {
		total += r.Area() * boundary.Perimeter(r)
	}
	return total
}

// BulkPrice returns Σ Area(r) × Sides(r).
func BulkPrice(regions []*region.Region) int {
	total := 0
	for _, r := range regions {
		total += r.Area() * boundary.Sides(r)
	}
	return total
}

// Summarize measures every region of p and returns both totals with the
// per-region reports.
func Summarize(ctx context.Context, p *region.Partition, opts ...Option) (*Summary, error) {
	if p == nil {
		return nil, region.ErrGridNil
	}
	o := resolve(opts)
	metrics, err := boundary.MeasureAll(ctx, p.Regions, o.Boundary...)
	if err != nil {
		return nil, fmt.Errorf("measure regions: %w", err)
	}

	s := &Summary{Regions: make([]RegionReport, len(p.Regions))}
	for i, r := range p.Regions {
		rep := RegionReport{ID: r.ID, Label: r.Label, Anchor: r.Anchor(), Metrics: metrics[i]}
		s.Regions[i] = rep
		s.FencePrice += rep.FencePrice()
		s.BulkPrice += rep.BulkPrice()
	}
	return s, nil
}

// Evaluate parses text, decomposes it and summarizes the result. Parse
// failures wrap grid.ErrMalformedGrid.
func Evaluate(ctx context.Context, text string, opts ...Option) (*Summary, error) {
	logger := ctxlog.FromContext(ctx)

	g, err := grid.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("parse grid: %w", err)
	}
	logger.Debug("Grid parsed.", "width", g.Width, "height", g.Height)

	o := resolve(opts)
	p, err := region.NewPartition(g, o.Region...)
	if err != nil {
		return nil, fmt.Errorf("decompose grid: %w", err)
	}
	logger.Debug("Grid decomposed.", "regions", len(p.Regions))

	return Summarize(ctx, p, opts...)
}

func resolve(opts []Option) Options {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
