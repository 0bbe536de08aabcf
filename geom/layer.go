package geom

import "errors"

// ErrBadOutline reports a surface outline with fewer than three distinct
// vertices or a repeated consecutive vertex.
var ErrBadOutline = errors.New("geom: surface outline needs at least 3 distinct vertices")

// ErrSurfaceTypeMismatch reports an attempt to merge two adjacent surfaces
// whose types disagree. This is a modeling invariant violation, not a
// recoverable data-quality issue.
var ErrSurfaceTypeMismatch = errors.New("geom: cannot merge surfaces of different types")

// Layer holds all reconstruction state for one slice: the point registry,
// the active line set, the traced polylines, and the finished surfaces. The
// layer is the sole mutator of these collections and is not safe for
// concurrent use; layers for different Z heights are fully independent.
type Layer struct {
	points    map[Coord]*Point
	lines     []*Line
	polylines []*Polyline
	surfaces  []*Surface
}

// NewLayer returns an empty layer.
func NewLayer() *Layer {
	return &Layer{points: make(map[Coord]*Point)}
}

// Lines returns the layer's active lines in insertion order.
func (l *Layer) Lines() []*Line {
	return l.lines
}

// Polylines returns the closed polylines traced so far, in creation order.
func (l *Layer) Polylines() []*Polyline {
	return l.polylines
}

// Surfaces returns the layer's surfaces in creation order.
func (l *Layer) Surfaces() []*Surface {
	return l.surfaces
}

// Points returns the layer's live points. Order is unspecified.
func (l *Layer) Points() []*Point {
	out := make([]*Point, 0, len(l.points))
	for _, p := range l.points {
		out = append(out, p)
	}
	return out
}

// AddPoint returns the layer's point for the exact coordinate pair, creating
// it on first reference. Two calls with identical coordinates return the
// same *Point regardless of call order or intervening calls.
func (l *Layer) AddPoint(x, y float64) *Point {
	key := Coord{X: x, Y: y}
	if p, ok := l.points[key]; ok {
		return p
	}
	p := &Point{X: x, Y: y}
	l.points[key] = p
	return p
}

// AddLine returns the layer's line connecting a and b, creating it if no
// coincident line exists. Dedup scans the incident-line sets of both
// endpoints for a line with the same unordered endpoint pair. Both endpoints
// must be points of this layer; a nil endpoint is a caller bug and panics.
func (l *Layer) AddLine(a, b *Point) *Line {
	if a == nil || b == nil {
		panic("geom: AddLine requires two endpoints")
	}
	cand := Line{A: a, B: b}
	for _, set := range [2][]*Line{a.lines, b.lines} {
		for _, in := range set {
			if in.CoincidentWith(&cand) {
				return in
			}
		}
	}
	ln := &Line{A: a, B: b}
	a.attach(ln)
	if b != a {
		b.attach(ln)
	}
	l.lines = append(l.lines, ln)
	return ln
}

// AddSegment is a coordinate convenience wrapper: both endpoints are
// normalized through AddPoint before the line is deduplicated.
func (l *Layer) AddSegment(x1, y1, x2, y2 float64) *Line {
	return l.AddLine(l.AddPoint(x1, y1), l.AddPoint(x2, y2))
}

// RemovePoint evicts the point from the registry if it is the live point for
// its coordinates. Incident lines are not touched; callers evict points only
// once their degree has dropped to zero.
func (l *Layer) RemovePoint(p *Point) {
	if l.points[p.Coord()] == p {
		delete(l.points, p.Coord())
	}
}

// RemoveLine removes the line from the layer's line set and detaches it from
// both endpoints' incident lists.
func (l *Layer) RemoveLine(ln *Line) {
	ln.A.detach(ln)
	if ln.B != ln.A {
		ln.B.detach(ln)
	}
	for i, in := range l.lines {
		if in == ln {
			l.lines = append(l.lines[:i], l.lines[i+1:]...)
			return
		}
	}
}

// RemoveSurface removes the surface from the layer by identity.
func (l *Layer) RemoveSurface(s *Surface) {
	for i, in := range l.surfaces {
		if in == s {
			l.surfaces = append(l.surfaces[:i], l.surfaces[i+1:]...)
			return
		}
	}
}

func (l *Layer) removePolyline(p *Polyline) {
	for i, in := range l.polylines {
		if in == p {
			l.polylines = append(l.polylines[:i], l.polylines[i+1:]...)
			return
		}
	}
}

// AddSurface builds a one-contour internal surface directly from an ordered
// vertex list, bypassing the merge/trace/classify pipeline. Points and lines
// are normalized through the registry, so repeated calls with the same
// vertices reuse the same Point and Line objects while still producing a new
// Surface each time. An explicitly closed outline (last vertex equal to the
// first) is accepted. Fewer than three distinct vertices, or a repeated
// consecutive vertex, returns [ErrBadOutline].
func (l *Layer) AddSurface(vertices []Coord) (*Surface, error) {
	if len(vertices) < 3 {
		return nil, ErrBadOutline
	}
	pts := make([]*Point, 0, len(vertices))
	for _, v := range vertices {
		p := l.AddPoint(v.X, v.Y)
		if len(pts) > 0 && pts[len(pts)-1] == p {
			return nil, ErrBadOutline
		}
		pts = append(pts, p)
	}
	if pts[0] == pts[len(pts)-1] {
		pts = pts[:len(pts)-1]
	}
	if len(pts) < 3 {
		return nil, ErrBadOutline
	}
	lines := make([]*Line, 0, len(pts))
	for i := range pts {
		lines = append(lines, l.AddLine(pts[i], pts[(i+1)%len(pts)]))
	}
	s := NewSurface(NewPolyline(lines), SurfaceInternal)
	l.surfaces = append(l.surfaces, s)
	return s, nil
}
