package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/plotgrid/grid"
	"github.com/katalvlaran/plotgrid/internal/config"
	"github.com/katalvlaran/plotgrid/internal/ctxlog"
	"github.com/katalvlaran/plotgrid/region"
	"github.com/katalvlaran/plotgrid/render"
	"github.com/katalvlaran/plotgrid/score"
)

// ScreenFactory opens and initializes the terminal screen used by the
// -view mode.
type ScreenFactory func() (tcell.Screen, error)

// terminalScreen opens the process terminal.
func terminalScreen() (tcell.Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := s.Init(); err != nil {
		return nil, err
	}
	return s, nil
}

// App holds the collaborators of one run.
type App struct {
	outW      io.Writer
	cfg       *config.Config
	logger    *slog.Logger
	newScreen ScreenFactory
}

// NewApp creates an App writing results to outW and logs to logW.
func NewApp(outW, logW io.Writer, cfg *config.Config) *App {
	return &App{
		outW:      outW,
		cfg:       cfg,
		logger:    cfg.NewLogger(logW),
		newScreen: terminalScreen,
	}
}

// WithScreenFactory replaces the terminal screen constructor.
func (a *App) WithScreenFactory(f ScreenFactory) *App {
	a.newScreen = f
	return a
}

// Run executes the pipeline described by the configuration.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Info("Starting run.", "input", a.cfg.Input, "strategy", a.cfg.Strategy)

	text, err := os.ReadFile(a.cfg.Input)
	if err != nil {
		return fmt.Errorf("failed to read input %s: %w", a.cfg.Input, err)
	}

	strategy, err := region.ParseStrategy(a.cfg.Strategy)
	if err != nil {
		return err
	}

	g, err := grid.Parse(string(text))
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", a.cfg.Input, err)
	}
	p, err := region.NewPartition(g, region.WithStrategy(strategy))
	if err != nil {
		return err
	}
	a.logger.Debug("Grid decomposed.", "width", g.Width, "height", g.Height, "regions", len(p.Regions))

	sum, err := score.Summarize(ctx, p, score.WithWorkers(a.cfg.Workers))
	if err != nil {
		return err
	}

	fmt.Fprintf(a.outW, "fence price: %d\n", sum.FencePrice)
	fmt.Fprintf(a.outW, "bulk price: %d\n", sum.BulkPrice)
	if a.cfg.Report {
		if err := a.writeReport(sum); err != nil {
			return err
		}
	}
	a.logger.Info("Run finished.", "regions", len(sum.Regions))

	if a.cfg.View {
		return a.view(p)
	}
	return nil
}

func (a *App) writeReport(sum *score.Summary) error {
	tw := tabwriter.NewWriter(a.outW, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tLABEL\tANCHOR\tAREA\tPERIMETER\tSIDES\tFENCE\tBULK")
	for _, r := range sum.Regions {
		fmt.Fprintf(tw, "%d\t%s\t%d,%d\t%d\t%d\t%d\t%d\t%d\n",
			r.ID, r.Label, r.Anchor.X, r.Anchor.Y, r.Area, r.Perimeter, r.Sides, r.FencePrice(), r.BulkPrice())
	}
	return tw.Flush()
}

func (a *App) view(p *region.Partition) error {
	s, err := a.newScreen()
	if err != nil {
		return fmt.Errorf("failed to open screen: %w", err)
	}
	defer s.Fini()
	return render.Show(s, p, a.cfg.Seed)
}
