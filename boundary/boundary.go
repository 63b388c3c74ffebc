package boundary

import (
	"github.com/katalvlaran/plotgrid/grid"
	"github.com/katalvlaran/plotgrid/region"
)

// Perimeter counts, over every cell of r, the 4-neighbors that are not
// members of r. Grid-edge sides count because out-of-bounds points are
// never members.
func Perimeter(r *region.Region) int {
	n := 0
	for _, p := range r.Cells() {
		for _, q := range p.Neighbors4() {
			if !r.Contains(q) {
				n++
			}
		}
	}
	return n
}

// Corners returns the number of outline corners at cell p of r, in 0..4.
// p is assumed to be a member of r.
func Corners(r *region.Region, p grid.Point) int {
	var in [8]bool
	for i, q := range p.Neighbors8() {
		in[i] = r.Contains(q)
	}

	n := 0
	for w := 0; w < 4; w++ {
		a, d, c := in[2*w], in[2*w+1], in[(2*w+2)%8]
		switch {
		case !a && !c:
			n++ // convex
		case a && c && !d:
			n++ // concave
		}
	}
	return n
}

// Sides returns the number of straight boundary segments of r, computed
// as the total corner count.
func Sides(r *region.Region) int {
	n := 0
	for _, p := range r.Cells() {
		n += Corners(r, p)
	}
	return n
}

// Measure returns area, perimeter and side count of r.
func Measure(r *region.Region) Metrics {
	return Metrics{
		Area:      r.Area(),
		Perimeter: Perimeter(r),
		Sides:     Sides(r),
	}
}
