// Package plotgrid splits a labeled 2D grid into plots and prices the fences
// around them.
//
// What:
//
//	A small, deterministic engine built from four leaf-first packages:
//		• grid/     — immutable labeled grid, parsing, bounds and neighbor order
//		• region/   — maximal 4-connected same-label regions (flood fill or
//		              seed-and-merge, identical output)
//		• boundary/ — perimeter (fence length) and side count (corner rules)
//		• score/    — Σ area×perimeter and Σ area×sides, per-region reports
//
//	render/ paints a partition on a terminal for debugging; cmd/plots is the
//	command-line front end.
//
// Quick ASCII example:
//
//	AAAA      A: area 4, perimeter 10, sides 4
//	BBCD      B: area 4, perimeter  8, sides 4
//	BBCC      C: area 4, perimeter 10, sides 8
//	EEEC      D: area 1, perimeter  4, sides 4
//	          E: area 3, perimeter  8, sides 4
//
//	fence price 140, bulk price 80.
package plotgrid
