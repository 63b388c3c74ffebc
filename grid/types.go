package grid

// Label is the symbol stored in a cell. Two cells belong to the same region
// only if their labels are equal.
type Label rune

// String returns the label as a one-rune string.
func (l Label) String() string {
	return string(rune(l))
}

// Point is a cell coordinate. X grows to the right, Y grows downward.
type Point struct {
	X, Y int
}

// offsets4 lists the orthogonal neighbor offsets: N, E, S, W.
var offsets4 = [4]Point{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// offsets8 lists all neighbor offsets clockwise from N:
// N, NE, E, SE, S, SW, W, NW. Even indices are orthogonal, odd are diagonal.
var offsets8 = [8]Point{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}

// Add returns p translated by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Neighbors4 returns the four orthogonal neighbors of p in N, E, S, W order.
func (p Point) Neighbors4() [4]Point {
	var out [4]Point
	for i, d := range offsets4 {
		out[i] = p.Add(d)
	}
	return out
}

// Neighbors8 returns the eight surrounding cells of p clockwise from N.
func (p Point) Neighbors8() [8]Point {
	var out [8]Point
	for i, d := range offsets8 {
		out[i] = p.Add(d)
	}
	return out
}

// Adjacent4 reports whether p and q differ by exactly one unit on exactly one axis.
func (p Point) Adjacent4(q Point) bool {
	dx, dy := p.X-q.X, p.Y-q.Y
	return (dy == 0 && (dx == 1 || dx == -1)) || (dx == 0 && (dy == 1 || dy == -1))
}

// Less orders points row-major: by Y, then by X.
func (p Point) Less(q Point) bool {
	if p.Y != q.Y {
		return p.Y < q.Y
	}
	return p.X < q.X
}

// Grid is a rectangular block of labeled cells. It is immutable once built.
// Width and Height define dimensions; cells are stored row-major.
type Grid struct {
	Width, Height int
	cells         []Label
}
