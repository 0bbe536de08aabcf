package geom

// Coord is an exact 2D coordinate pair. Point identity within a layer is the
// exact (X, Y) value; there is no floating-point tolerance.
type Coord struct {
	X, Y float64
}

// Point is a vertex in the layer graph. Points are created and deduplicated
// by [Layer.AddPoint]; two lookups with identical coordinates return the same
// *Point. A point keeps a non-owning back-reference list of the lines
// incident at it, in attachment order.
type Point struct {
	X, Y  float64
	lines []*Line
}

// Coord returns the point's coordinates as a map key value.
func (p *Point) Coord() Coord {
	return Coord{X: p.X, Y: p.Y}
}

// Lines returns the lines incident at this point, in attachment order.
// The returned slice is the point's own list; callers must not modify it.
func (p *Point) Lines() []*Line {
	return p.lines
}

// Degree returns the number of lines incident at this point.
func (p *Point) Degree() int {
	return len(p.lines)
}

func (p *Point) attach(l *Line) {
	p.lines = append(p.lines, l)
}

func (p *Point) detach(l *Line) {
	for i, in := range p.lines {
		if in == l {
			p.lines = append(p.lines[:i], p.lines[i+1:]...)
			return
		}
	}
}
