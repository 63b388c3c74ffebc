// Package grid holds an immutable 2D grid of labeled cells parsed from text.
//
// What:
//
//   - Grid wraps a rectangular block of Labels (one rune per cell).
//   - Parse reads newline-separated text; New deep-copies pre-split rows.
//   - LabelAt and InBounds answer O(1) coordinate queries.
//   - Neighbors4 (N, E, S, W) and Neighbors8 (clockwise from N) return fixed,
//     stable neighbor orders. Returned coordinates may lie outside the grid;
//     anything outside [0,Width) x [0,Height) belongs to no region.
//
// Parsing rules:
//
//   - Lines are split on '\n'; a trailing '\r' is dropped.
//   - Empty lines are skipped, so a trailing newline is never an error.
//   - Every remaining line must have the same number of runes.
//   - Any rune is a valid label, including '.', '#' and spaces.
//
// Errors:
//
//   - ErrMalformedGrid: umbrella for every parse/construction failure.
//   - ErrEmptyGrid: no rows or no columns (wraps ErrMalformedGrid).
//   - ErrNonRectangular: rows of differing length (wraps ErrMalformedGrid).
//
// Complexity:
//
//   - Parse, New: O(W×H) time and memory.
//   - LabelAt, InBounds, Index, Coordinate: O(1).
package grid
