package geom

// Polyline is an ordered cycle of lines forming a closed loop: consecutive
// lines share an endpoint and the last shares one with the first. A closed
// polyline has at least three lines, and within its own line set every point
// has degree two.
//
// A polyline is either the contour of a surface, a hole attached to a
// surface, or not yet classified; at most one of the two back-reference
// slots is ever set.
type Polyline struct {
	lines     []*Line
	contourOf *Surface
	holeOf    *Surface
}

// NewPolyline wraps an ordered line list forming a closed loop and tags each
// line with its owning polyline. The lines must already be in cycle order.
func NewPolyline(lines []*Line) *Polyline {
	pl := &Polyline{lines: lines}
	for _, l := range lines {
		l.Loop = pl
	}
	return pl
}

// Lines returns the polyline's lines in cycle order. The returned slice is
// the polyline's own list; callers must not modify it.
func (p *Polyline) Lines() []*Line {
	return p.lines
}

// ContourOf returns the surface this polyline bounds as outer contour, or nil.
func (p *Polyline) ContourOf() *Surface {
	return p.contourOf
}

// HoleOf returns the surface this polyline is attached to as a hole, or nil.
func (p *Polyline) HoleOf() *Surface {
	return p.holeOf
}

// Points returns the polyline's vertices in traversal order, one per line.
// The first vertex is the endpoint of the first line that is shared with the
// last line, so Points()[i] and Points()[(i+1) mod n] are the endpoints of
// Lines()[i].
func (p *Polyline) Points() []*Point {
	if len(p.lines) == 0 {
		return nil
	}
	cur := p.lines[0].A
	if last := p.lines[len(p.lines)-1]; !last.HasEndpoint(cur) {
		cur = p.lines[0].B
	}
	pts := make([]*Point, 0, len(p.lines))
	for _, l := range p.lines {
		pts = append(pts, cur)
		cur = l.Other(cur)
	}
	return pts
}

// samplePoint returns a representative vertex used for containment tests.
func (p *Polyline) samplePoint() *Point {
	return p.Points()[0]
}

// ContainsPoint reports whether the coordinate lies inside the closed
// polyline, using an even-odd ray crossing test. Points exactly on the
// boundary are not reliably classified; callers sample vertices of other
// loops, which well-formed slice geometry keeps off the boundary.
func (p *Polyline) ContainsPoint(c Coord) bool {
	inside := false
	for _, l := range p.lines {
		a, b := l.A, l.B
		if (a.Y > c.Y) != (b.Y > c.Y) {
			x := a.X + (c.Y-a.Y)*(b.X-a.X)/(b.Y-a.Y)
			if c.X < x {
				inside = !inside
			}
		}
	}
	return inside
}

// bounds returns the polyline's axis-aligned bounding box.
func (p *Polyline) bounds() (minX, minY, maxX, maxY float64) {
	first := true
	for _, l := range p.lines {
		for _, pt := range [2]*Point{l.A, l.B} {
			if first || pt.X < minX {
				minX = pt.X
			}
			if first || pt.Y < minY {
				minY = pt.Y
			}
			if first || pt.X > maxX {
				maxX = pt.X
			}
			if first || pt.Y > maxY {
				maxY = pt.Y
			}
			first = false
		}
	}
	return minX, minY, maxX, maxY
}
