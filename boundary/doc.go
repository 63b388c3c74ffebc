// Package boundary measures the outline of a region.Region.
//
// What:
//
//   - Perimeter: the fence length, one unit per cell side that faces a
//     non-member cell or the grid edge.
//   - Sides: the number of straight boundary segments. For a rectilinear
//     outline the number of sides equals the number of corners, so Sides sums
//     Corners over every member cell.
//   - MeasureAll: a bounded parallel map of Measure over a region slice.
//
// Corner rules:
//
// Each cell's eight neighbors are read clockwise from N (see
// grid.Point.Neighbors8), giving four overlapping windows
// (N,NE,E) (E,SE,S) (S,SW,W) (W,NW,N). Within a window with axis
// neighbors a, c and diagonal d:
//
//   - convex corner:  a ∉ R and c ∉ R            (d ignored)
//   - concave corner: a ∈ R and c ∈ R and d ∉ R
//
// Every window contributes 0 or 1, so a cell contributes 0..4 corners.
// A single isolated cell has Perimeter 4 and Sides 4.
//
// Concurrency:
//
// Regions are immutable once built, so MeasureAll fans out one task per
// region with no locking; results are stored by index.
//
// Complexity:
//
//   - Perimeter, Sides, Measure: O(A) for a region of area A.
//   - MeasureAll: O(Σ A) work spread over the configured workers.
package boundary
