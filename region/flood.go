package region

import "github.com/katalvlaran/plotgrid/grid"

// floodFill collects same-label 4-connected components by BFS, scanning
// seeds in row-major order.
//
// Time:   O(W·H·4).
// Memory: O(W·H) for visited flags and output.
func floodFill(g *grid.Grid) [][]grid.Point {
	seen := make([]bool, g.Len())
	var groups [][]grid.Point

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			i0 := g.Index(x, y)
			if seen[i0] {
				continue
			}
			label, _ := g.LabelAt(x, y)
			queue := []grid.Point{{X: x, Y: y}}
			seen[i0] = true

			for qi := 0; qi < len(queue); qi++ {
				for _, v := range queue[qi].Neighbors4() {
					l, ok := g.LabelAt(v.X, v.Y)
					if !ok || l != label {
						continue
					}
					vi := g.Index(v.X, v.Y)
					if !seen[vi] {
						seen[vi] = true
						queue = append(queue, v)
					}
				}
			}
			groups = append(groups, queue)
		}
	}
	return groups
}
