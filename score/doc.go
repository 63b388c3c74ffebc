// Package score combines region areas with boundary metrics into the two
// plot-pricing totals.
//
//   - FencePrice = Σ Area(r) × Perimeter(r)
//   - BulkPrice  = Σ Area(r) × Sides(r)
//
// Summarize runs the parallel measurement and keeps a per-region report
// (label, anchor, area, perimeter, sides) for callers that want to print
// or visualize regions. Evaluate is the text-in, totals-out convenience.
package score
