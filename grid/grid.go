package grid

import (
	"fmt"
	"strings"
)

// Parse builds a Grid from newline-separated text, one label per rune.
// Empty lines are skipped and a trailing '\r' on each line is dropped.
// Returns ErrEmptyGrid if no non-empty line remains and ErrNonRectangular
// if the lines differ in rune count.
// Complexity: O(len(text)).
func Parse(text string) (*Grid, error) {
	var rows [][]Label
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			continue
		}
		row := make([]Label, 0, len(line))
		for _, r := range line {
			row = append(row, Label(r))
		}
		rows = append(rows, row)
	}

	return New(rows)
}

// New constructs a Grid from pre-split rows. It deep-copies the input.
// Returns ErrEmptyGrid if rows has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H) time and memory.
func New(rows [][]Label) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	cells := make([]Label, 0, w*h)
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("row %d has %d cells, want %d: %w", y, len(row), w, ErrNonRectangular)
		}
		cells = append(cells, row...)
	}

	return &Grid{Width: w, Height: h, cells: cells}, nil
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// LabelAt returns the label at (x,y). ok is false when (x,y) is out of bounds.
// Complexity: O(1).
func (g *Grid) LabelAt(x, y int) (l Label, ok bool) {
	if !g.InBounds(x, y) {
		return 0, false
	}
	return g.cells[g.Index(x, y)], true
}

// Len returns the number of cells, Width×Height.
func (g *Grid) Len() int {
	return len(g.cells)
}

// Neighbors4 returns the N, E, S, W neighbors of (x,y), bounds unchecked.
func (g *Grid) Neighbors4(x, y int) [4]Point {
	return Point{X: x, Y: y}.Neighbors4()
}

// Neighbors8 returns the eight neighbors of (x,y) clockwise from N, bounds unchecked.
func (g *Grid) Neighbors8(x, y int) [8]Point {
	return Point{X: x, Y: y}.Neighbors8()
}

// Index maps (x,y) to a row-major index: y*Width + x.
// Complexity: O(1).
func (g *Grid) Index(x, y int) int {
	return y*g.Width + x
}

// Coordinate converts a row-major index back to (x,y).
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) (x, y int) {
	return idx % g.Width, idx / g.Width
}

// String renders the grid back to text, one line per row, each line
// terminated by '\n'.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(g.Len() + g.Height)
	for y := 0; y < g.Height; y++ {
		for _, l := range g.cells[y*g.Width : (y+1)*g.Width] {
			b.WriteRune(rune(l))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
