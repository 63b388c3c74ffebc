package region

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/plotgrid/grid"
)

// Sentinel errors for region construction.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("region: grid is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("region: invalid option supplied")
)

// Strategy selects the decomposition algorithm.
type Strategy int

const (
	// FloodFill runs one breadth-first traversal per unvisited cell.
	FloodFill Strategy = iota
	// SeedMerge merges singleton regions pairwise until a fixpoint.
	SeedMerge
)

// String returns the lowercase strategy name used in configuration.
func (s Strategy) String() string {
	switch s {
	case FloodFill:
		return "flood"
	case SeedMerge:
		return "merge"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy maps a configuration name ("flood" or "merge") to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "flood", "":
		return FloodFill, nil
	case "merge":
		return SeedMerge, nil
	default:
		return 0, fmt.Errorf("%w: unknown strategy %q", ErrOptionViolation, name)
	}
}

// Option configures NewPartition via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation
// when NewPartition is invoked.
type Option func(*Options)

// Options holds the parameters of a decomposition.
type Options struct {
	// Strategy chooses FloodFill (default) or SeedMerge.
	Strategy Strategy

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options using FloodFill.
func DefaultOptions() Options {
	return Options{Strategy: FloodFill}
}

// WithStrategy selects the decomposition algorithm.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		if s != FloodFill && s != SeedMerge {
			o.err = fmt.Errorf("%w: unknown strategy %d", ErrOptionViolation, int(s))
			return
		}
		o.Strategy = s
	}
}

// Region is a maximal set of same-label cells connected by 4-adjacency.
// It is immutable once its Partition is built.
type Region struct {
	// ID is the region's position in Partition.Regions.
	ID int

	// Label is shared by every cell of the region.
	Label grid.Label

	cells   []grid.Point // row-major
	members map[grid.Point]struct{}
}

// Area returns the number of cells in the region.
func (r *Region) Area() int {
	return len(r.cells)
}

// Anchor returns the region's first cell in row-major order.
func (r *Region) Anchor() grid.Point {
	return r.cells[0]
}

// Cells returns a row-major copy of the region's cells.
func (r *Region) Cells() []grid.Point {
	out := make([]grid.Point, len(r.cells))
	copy(out, r.cells)
	return out
}

// Contains reports whether p is a member of the region. Out-of-bounds
// points are never members.
func (r *Region) Contains(p grid.Point) bool {
	_, ok := r.members[p]
	return ok
}

// Partition is the complete decomposition of one grid.
type Partition struct {
	// Grid is the decomposed grid.
	Grid *grid.Grid

	// Regions are ordered by anchor; Regions[i].ID == i.
	Regions []*Region

	owner []int // row-major cell index -> region ID
}
