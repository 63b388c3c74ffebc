package region

import "github.com/katalvlaran/plotgrid/grid"

// cluster is a transient, mutable region used only while merging.
type cluster struct {
	cells   []grid.Point
	members map[grid.Point]struct{}
}

// touches reports whether any cell of c is 4-adjacent to any cell of o.
// It walks the smaller cluster and probes the larger one's member set.
func (c *cluster) touches(o *cluster) bool {
	small, large := c, o
	if len(small.cells) > len(large.cells) {
		small, large = large, small
	}
	for _, p := range small.cells {
		for _, q := range p.Neighbors4() {
			if _, ok := large.members[q]; ok {
				return true
			}
		}
	}
	return false
}

// absorb moves every cell of o into c.
func (c *cluster) absorb(o *cluster) {
	c.cells = append(c.cells, o.cells...)
	for _, p := range o.cells {
		c.members[p] = struct{}{}
	}
}

// seedAndMerge starts from one singleton cluster per cell and repeatedly
// merges touching clusters of the same label until a full pass over every
// label performs no merge. Each merge removes one cluster, so the loop
// terminates after at most W·H-1 merges.
//
// Time:   O(k²·a) per pass for a label with k clusters of size ≤ a.
// Memory: O(W·H).
func seedAndMerge(g *grid.Grid) [][]grid.Point {
	buckets := make(map[grid.Label][]*cluster)
	var order []grid.Label
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			l, _ := g.LabelAt(x, y)
			p := grid.Point{X: x, Y: y}
			if _, ok := buckets[l]; !ok {
				order = append(order, l)
			}
			buckets[l] = append(buckets[l], &cluster{
				cells:   []grid.Point{p},
				members: map[grid.Point]struct{}{p: {}},
			})
		}
	}

	var groups [][]grid.Point
	for _, l := range order {
		cs := buckets[l]
		for merged := true; merged; {
			merged = false
			for i := 0; i < len(cs); i++ {
				for j := i + 1; j < len(cs); {
					if !cs[i].touches(cs[j]) {
						j++
						continue
					}
					cs[i].absorb(cs[j])
					cs = append(cs[:j], cs[j+1:]...)
					merged = true
				}
			}
		}
		for _, c := range cs {
			groups = append(groups, c.cells)
		}
	}
	return groups
}
