// Package region partitions a grid.Grid into maximal 4-connected regions of
// identical label.
//
// What:
//
//   - NewPartition assigns every cell to exactly one Region.
//   - Two strategies produce the same partition:
//   - FloodFill: breadth-first traversal over same-label 4-neighbors,
//     one pass, O(W×H).
//   - SeedMerge: one singleton region per cell, then pairwise merging of
//     touching same-label regions until a full pass performs no merge.
//     Quadratic in the number of regions per label; kept as a reference
//     for equivalence testing.
//   - Regions are ordered by anchor (their first cell in row-major order)
//     and numbered 0..n-1 in that order, so output never depends on the
//     strategy or on map iteration.
//   - Partition.RegionAt answers "which region owns (x,y)" in O(1).
//   - Decompose groups regions by label.
//
// Invariants:
//
//   - Σ Area(r) == Width×Height.
//   - No two distinct regions with the same label are 4-adjacent.
//   - Regions are immutable once NewPartition returns.
//
// Errors:
//
//   - ErrGridNil: a nil grid was passed.
//   - ErrOptionViolation: an Option received an invalid value.
package region
