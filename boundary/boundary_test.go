package boundary_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/plotgrid/boundary"
	"github.com/katalvlaran/plotgrid/grid"
	"github.com/katalvlaran/plotgrid/region"
)

// partition parses text and decomposes it, failing the test on error.
func partition(t testing.TB, text string) *region.Partition {
	t.Helper()
	g, err := grid.Parse(text)
	require.NoError(t, err)
	p, err := region.NewPartition(g)
	require.NoError(t, err)
	return p
}

// regionAt returns the region owning (x,y).
func regionAt(t testing.TB, p *region.Partition, x, y int) *region.Region {
	t.Helper()
	r, ok := p.RegionAt(x, y)
	require.True(t, ok, "no region at (%d,%d)", x, y)
	return r
}

// TestSingleCell checks the isolated-cell edge case: 4 fence units, 4 sides.
func TestSingleCell(t *testing.T) {
	for _, text := range []string{"A", "AB\nBA", "BBB\nBAB\nBBB"} {
		p := partition(t, text)
		var r *region.Region
		for _, c := range p.Regions {
			if c.Label == 'A' {
				r = c
				break
			}
		}
		require.NotNil(t, r)
		assert.Equal(t, boundary.Metrics{Area: 1, Perimeter: 4, Sides: 4}, boundary.Measure(r), "grid %q", text)
	}
}

// TestRectangles verifies perimeter 2(w+h) and 4 sides for solid blocks,
// both spanning the whole grid and embedded in a frame of another label.
func TestRectangles(t *testing.T) {
	cases := []struct {
		name string
		text string
		w, h int
	}{
		{"1x1", "A", 1, 1},
		{"4x1", "AAAA", 4, 1},
		{"1x3", "A\nA\nA", 1, 3},
		{"3x2", "AAA\nAAA", 3, 2},
		{"framed2x2", "BBBB\nBAAB\nBAAB\nBBBB", 2, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := partition(t, tc.text)
			var r *region.Region
			for _, c := range p.Regions {
				if c.Label == 'A' {
					r = c
				}
			}
			require.NotNil(t, r)
			assert.Equal(t, 2*(tc.w+tc.h), boundary.Perimeter(r))
			assert.Equal(t, 4, boundary.Sides(r))
		})
	}
}

// TestCorners_LShape checks per-cell corner counts on an L-shaped region.
//
//	AA
//	AB
//
// Each A cell holds two corners: the L has six sides.
func TestCorners_LShape(t *testing.T) {
	p := partition(t, "AA\nAB")
	a := regionAt(t, p, 0, 0)

	for _, c := range a.Cells() {
		assert.Equal(t, 2, boundary.Corners(a, c), "corners at %v", c)
	}
	assert.Equal(t, 6, boundary.Sides(a))
	assert.Equal(t, 8, boundary.Perimeter(a))
}

// TestRing checks a region with an enclosed hole of another label:
// 4 outer + 4 inner sides; 12 outer + 4 inner fence units.
func TestRing(t *testing.T) {
	p := partition(t, "AAA\nABA\nAAA")
	a := regionAt(t, p, 0, 0)
	assert.Equal(t, boundary.Metrics{Area: 8, Perimeter: 16, Sides: 8}, boundary.Measure(a))

	b := regionAt(t, p, 1, 1)
	assert.Equal(t, boundary.Metrics{Area: 1, Perimeter: 4, Sides: 4}, boundary.Measure(b))
}

// TestSampleSmall pins every region of the 4×4 sample.
func TestSampleSmall(t *testing.T) {
	p := partition(t, "AAAA\nBBCD\nBBCC\nEEEC")
	want := map[grid.Label]boundary.Metrics{
		'A': {Area: 4, Perimeter: 10, Sides: 4},
		'B': {Area: 4, Perimeter: 8, Sides: 4},
		'C': {Area: 4, Perimeter: 10, Sides: 8},
		'D': {Area: 1, Perimeter: 4, Sides: 4},
		'E': {Area: 3, Perimeter: 8, Sides: 4},
	}
	for _, r := range p.Regions {
		assert.Equal(t, want[r.Label], boundary.Measure(r), "label %s", r.Label)
	}
}

// TestDiagonalPinch covers two holes touching only at a corner, where the
// surrounding region meets itself diagonally: 12 sides in total.
//
//	AAAAAA
//	AAABBA
//	AAABBA
//	ABBAAA
//	ABBAAA
//	AAAAAA
func TestDiagonalPinch(t *testing.T) {
	p := partition(t, "AAAAAA\nAAABBA\nAAABBA\nABBAAA\nABBAAA\nAAAAAA")
	a := regionAt(t, p, 0, 0)
	assert.Equal(t, 28, a.Area())
	assert.Equal(t, 12, boundary.Sides(a))
	assert.Equal(t, 40, boundary.Perimeter(a))
}

// TestPerimeterLowerBound asserts perimeter ≥ 4 with equality only for area 1.
func TestPerimeterLowerBound(t *testing.T) {
	p := partition(t, `RRRRIICCFF
RRRRIICCCF
VVRRRCCFFF
VVRCCCJFFF
VVVVCJJCFE
VVIVCCJJEE
VVIIICJJEE
MIIIIIJJEE
MIIISIJEEE
MMMISSJEEE`)
	for _, r := range p.Regions {
		per := boundary.Perimeter(r)
		assert.GreaterOrEqual(t, per, 4)
		assert.Equal(t, r.Area() == 1, per == 4, "region %d (%s)", r.ID, r.Label)
		assert.Zero(t, boundary.Sides(r)%2, "side count must be even")
	}
}

//----------------------------------------------------------------------------//
// MeasureAll Tests
//----------------------------------------------------------------------------//

// TestMeasureAll_MatchesSequential compares the parallel map to Measure.
func TestMeasureAll_MatchesSequential(t *testing.T) {
	p := partition(t, "OOOOO\nOXOXO\nOOOOO\nOXOXO\nOOOOO")
	for _, workers := range []int{0, 1, 3} {
		got, err := boundary.MeasureAll(context.Background(), p.Regions, boundary.WithWorkers(workers))
		require.NoError(t, err)
		require.Len(t, got, len(p.Regions))
		for i, r := range p.Regions {
			assert.Equal(t, boundary.Measure(r), got[i], "workers=%d region %d", workers, i)
		}
	}
}

// TestMeasureAll_Errors covers option violations and cancellation.
func TestMeasureAll_Errors(t *testing.T) {
	p := partition(t, "AB\nBA")

	_, err := boundary.MeasureAll(context.Background(), p.Regions, boundary.WithWorkers(-1))
	assert.True(t, errors.Is(err, boundary.ErrOptionViolation), "got %v", err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = boundary.MeasureAll(ctx, p.Regions)
	assert.True(t, errors.Is(err, context.Canceled), "got %v", err)

	got, err := boundary.MeasureAll(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}
