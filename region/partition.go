package region

import (
	"slices"

	"github.com/katalvlaran/plotgrid/grid"
)

// NewPartition decomposes g into maximal same-label 4-connected regions.
// Returns ErrGridNil for a nil grid and ErrOptionViolation for bad options.
//
// Time:   O(W·H) for FloodFill; SeedMerge is quadratic per label.
// Memory: O(W·H).
func NewPartition(g *grid.Grid, opts ...Option) (*Partition, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	var groups [][]grid.Point
	switch o.Strategy {
	case SeedMerge:
		groups = seedAndMerge(g)
	default:
		groups = floodFill(g)
	}

	return assemble(g, groups), nil
}

// Decompose returns the flood-fill partition of g grouped by label. Each
// slice is ordered by anchor. A nil grid yields a nil map.
func Decompose(g *grid.Grid) map[grid.Label][]*Region {
	p, err := NewPartition(g)
	if err != nil {
		return nil
	}
	return p.ByLabel()
}

// ByLabel groups the partition's regions by label, preserving anchor order.
func (p *Partition) ByLabel() map[grid.Label][]*Region {
	out := make(map[grid.Label][]*Region)
	for _, r := range p.Regions {
		out[r.Label] = append(out[r.Label], r)
	}
	return out
}

// RegionAt returns the region owning (x,y), or false when out of bounds.
// Complexity: O(1).
func (p *Partition) RegionAt(x, y int) (*Region, bool) {
	if !p.Grid.InBounds(x, y) {
		return nil, false
	}
	return p.Regions[p.owner[p.Grid.Index(x, y)]], true
}

// assemble normalizes raw cell groups: cells sorted row-major, groups sorted
// by anchor, IDs assigned in that order.
func assemble(g *grid.Grid, groups [][]grid.Point) *Partition {
	cmpPoint := func(a, b grid.Point) int {
		switch {
		case a.Less(b):
			return -1
		case b.Less(a):
			return 1
		default:
			return 0
		}
	}
	for _, cells := range groups {
		slices.SortFunc(cells, cmpPoint)
	}
	slices.SortFunc(groups, func(a, b []grid.Point) int {
		return cmpPoint(a[0], b[0])
	})

	p := &Partition{
		Grid:    g,
		Regions: make([]*Region, len(groups)),
		owner:   make([]int, g.Len()),
	}
	for id, cells := range groups {
		label, _ := g.LabelAt(cells[0].X, cells[0].Y)
		members := make(map[grid.Point]struct{}, len(cells))
		for _, c := range cells {
			members[c] = struct{}{}
			p.owner[g.Index(c.X, c.Y)] = id
		}
		p.Regions[id] = &Region{ID: id, Label: label, cells: cells, members: members}
	}
	return p
}
