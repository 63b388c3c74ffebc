package grid_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/plotgrid/grid"
)

//----------------------------------------------------------------------------//
// Parse and New Tests
//----------------------------------------------------------------------------//

// TestParse_Errors verifies that Parse rejects empty or ragged inputs and that
// every failure is also reported as ErrMalformedGrid.
func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		text string
		err  error
	}{
		{"Empty", "", grid.ErrEmptyGrid},
		{"OnlyNewlines", "\n\n\n", grid.ErrEmptyGrid},
		{"Ragged", "AAA\nBB\n", grid.ErrNonRectangular},
		{"RaggedLonger", "AA\nBBB", grid.ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := grid.Parse(tc.text)
			assert.Nil(t, g)
			assert.True(t, errors.Is(err, tc.err), "Parse(%q) error = %v; want %v", tc.text, err, tc.err)
			assert.True(t, errors.Is(err, grid.ErrMalformedGrid), "error %v should wrap ErrMalformedGrid", err)
		})
	}
}

// TestParse_TrailingNewlineAndCRLF checks the documented tolerance rules.
func TestParse_TrailingNewlineAndCRLF(t *testing.T) {
	for _, text := range []string{"AB\nCD", "AB\nCD\n", "AB\r\nCD\r\n", "\nAB\n\nCD\n\n"} {
		g, err := grid.Parse(text)
		require.NoError(t, err, "Parse(%q)", text)
		assert.Equal(t, 2, g.Width)
		assert.Equal(t, 2, g.Height)
		assert.Equal(t, "AB\nCD\n", g.String())
	}
}

// TestParse_AnyRuneIsALabel ensures punctuation and multi-byte runes are
// ordinary labels and widths are counted in runes.
func TestParse_AnyRuneIsALabel(t *testing.T) {
	g, err := grid.Parse(".#é\n# .")
	require.NoError(t, err)
	assert.Equal(t, 3, g.Width)

	l, ok := g.LabelAt(2, 0)
	require.True(t, ok)
	assert.Equal(t, grid.Label('é'), l)

	l, ok = g.LabelAt(1, 1)
	require.True(t, ok)
	assert.Equal(t, grid.Label(' '), l)
}

// TestNew_DeepCopy verifies that mutating the source rows does not leak
// into the constructed grid.
func TestNew_DeepCopy(t *testing.T) {
	rows := [][]grid.Label{{'A', 'B'}, {'C', 'D'}}
	g, err := grid.New(rows)
	require.NoError(t, err)

	rows[0][0] = 'Z'
	l, _ := g.LabelAt(0, 0)
	assert.Equal(t, grid.Label('A'), l)
}

//----------------------------------------------------------------------------//
// Query Tests
//----------------------------------------------------------------------------//

// TestLabelAt_Bounds checks LabelAt and InBounds on a 3×2 grid.
func TestLabelAt_Bounds(t *testing.T) {
	g, err := grid.Parse("ABC\nDEF")
	require.NoError(t, err)

	valid := map[[2]int]grid.Label{{0, 0}: 'A', {2, 0}: 'C', {1, 1}: 'E', {2, 1}: 'F'}
	for xy, want := range valid {
		got, ok := g.LabelAt(xy[0], xy[1])
		assert.True(t, ok, "LabelAt(%d,%d) ok", xy[0], xy[1])
		assert.Equal(t, want, got)
		assert.True(t, g.InBounds(xy[0], xy[1]))
	}
	invalid := [][2]int{{-1, 0}, {3, 0}, {1, 2}, {2, -1}}
	for _, xy := range invalid {
		_, ok := g.LabelAt(xy[0], xy[1])
		assert.False(t, ok, "LabelAt(%d,%d) should be out of bounds", xy[0], xy[1])
		assert.False(t, g.InBounds(xy[0], xy[1]))
	}
}

// TestIndexCoordinate_RoundTrip checks the row-major mapping on every cell.
func TestIndexCoordinate_RoundTrip(t *testing.T) {
	g, err := grid.Parse("ABCD\nEFGH\nIJKL")
	require.NoError(t, err)
	require.Equal(t, 12, g.Len())

	for i := 0; i < g.Len(); i++ {
		x, y := g.Coordinate(i)
		assert.Equal(t, i, g.Index(x, y))
	}
}

// TestNeighbors_Order pins the neighbor orders that boundary analysis relies on.
func TestNeighbors_Order(t *testing.T) {
	g, err := grid.Parse("A")
	require.NoError(t, err)

	n4 := g.Neighbors4(0, 0)
	assert.Equal(t, [4]grid.Point{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}, n4)

	n8 := g.Neighbors8(0, 0)
	assert.Equal(t, [8]grid.Point{
		{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1},
	}, n8)

	// Even positions of the 8-neighborhood are the 4-neighborhood.
	for i, p := range n4 {
		assert.Equal(t, p, n8[2*i])
	}
}

// TestPoint_Adjacent4 covers orthogonal, diagonal and distant pairs.
func TestPoint_Adjacent4(t *testing.T) {
	p := grid.Point{X: 2, Y: 2}
	for _, q := range p.Neighbors4() {
		assert.True(t, p.Adjacent4(q), "%v should be 4-adjacent to %v", q, p)
	}
	for _, q := range []grid.Point{{1, 1}, {3, 3}, {2, 2}, {4, 2}, {2, 0}} {
		assert.False(t, p.Adjacent4(q), "%v should not be 4-adjacent to %v", q, p)
	}
}

// TestPoint_Less verifies row-major ordering.
func TestPoint_Less(t *testing.T) {
	assert.True(t, grid.Point{X: 5, Y: 0}.Less(grid.Point{X: 0, Y: 1}))
	assert.True(t, grid.Point{X: 0, Y: 1}.Less(grid.Point{X: 1, Y: 1}))
	assert.False(t, grid.Point{X: 1, Y: 1}.Less(grid.Point{X: 1, Y: 1}))
}
