package render

import (
	"errors"
	"math/rand"

	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/katalvlaran/plotgrid/region"
)

// DefaultSeed keeps palettes stable between runs.
const DefaultSeed = 42

// ErrScreenTooSmall is returned when the partition does not fit the screen.
var ErrScreenTooSmall = errors.New("render: screen smaller than grid")

// Palette returns n distinct-looking colors drawn from a seeded generator.
// Hues are spread with the golden-ratio step from a random start, and
// saturation/value vary slightly so neighbors with close hues still differ.
func Palette(seed int64, n int) []tcell.Color {
	rng := rand.New(rand.NewSource(seed))
	const golden = 0.618033988749895
	hue := rng.Float64()
	out := make([]tcell.Color, n)
	for i := range out {
		hue += golden
		if hue >= 1 {
			hue--
		}
		c := colorful.Hsv(hue*360, 0.55+0.35*rng.Float64(), 0.75+0.25*rng.Float64())
		r, g, b := c.RGB255()
		out[i] = tcell.NewRGBColor(int32(r), int32(g), int32(b))
	}
	return out
}

// Draw paints every cell of p at its grid coordinate (offset by originX,
// originY) with its label, colored by its region's palette entry.
// palette must hold at least len(p.Regions) colors.
func Draw(s tcell.Screen, p *region.Partition, palette []tcell.Color, originX, originY int) error {
	w, h := s.Size()
	if originX+p.Grid.Width > w || originY+p.Grid.Height > h {
		return ErrScreenTooSmall
	}
	base := tcell.StyleDefault.Background(tcell.ColorBlack)
	for _, r := range p.Regions {
		style := base.Foreground(palette[r.ID]).Bold(true)
		for _, c := range r.Cells() {
			s.SetContent(originX+c.X, originY+c.Y, rune(r.Label), nil, style)
		}
	}
	return nil
}

// Show draws p on s, flushes it, and blocks until a key is pressed.
// Resize events redraw the partition.
func Show(s tcell.Screen, p *region.Partition, seed int64) error {
	palette := Palette(seed, len(p.Regions))
	redraw := func() error {
		s.Clear()
		if err := Draw(s, p, palette, 0, 0); err != nil {
			return err
		}
		s.Show()
		return nil
	}
	if err := redraw(); err != nil {
		return err
	}
	for {
		switch s.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventResize:
			s.Sync()
			if err := redraw(); err != nil {
				return err
			}
		case *tcell.EventKey:
			return nil
		}
	}
}
