package geom

// SlopeKind classifies a line's slope.
type SlopeKind int

const (
	// SlopeNumeric is an ordinary finite slope.
	SlopeNumeric SlopeKind = iota
	// SlopeVertical marks a vertical line; it is distinct from every numeric
	// slope value.
	SlopeVertical
	// SlopeDegenerate marks a zero-length line.
	SlopeDegenerate
)

// Slope is a line's slope classification.
type Slope struct {
	Kind SlopeKind
	M    float64 // rise over run; meaningful only when Kind is SlopeNumeric
}

// ContinuousWith reports whether two slopes are equal for the purpose of
// collinear merging: both vertical, or both numeric with exactly equal
// values. A degenerate line never continues anything.
func (s Slope) ContinuousWith(o Slope) bool {
	if s.Kind == SlopeDegenerate || o.Kind == SlopeDegenerate {
		return false
	}
	if s.Kind != o.Kind {
		return false
	}
	return s.Kind == SlopeVertical || s.M == o.M
}

// Line is a segment between two points. Endpoint order carries no meaning for
// identity but is preserved for traversal. Lines are created and deduplicated
// by [Layer.AddLine]; each live Line is a distinct object and two lines are
// coincident when they connect the same unordered endpoint pair.
type Line struct {
	A, B *Point

	// Loop is the closed polyline this line has been traced into, or nil.
	Loop *Polyline
}

// Slope returns the line's slope classification.
func (l *Line) Slope() Slope {
	dx := l.B.X - l.A.X
	dy := l.B.Y - l.A.Y
	switch {
	case dx == 0 && dy == 0:
		return Slope{Kind: SlopeDegenerate}
	case dx == 0:
		return Slope{Kind: SlopeVertical}
	}
	return Slope{Kind: SlopeNumeric, M: dy / dx}
}

// HasEndpoint reports whether p is one of the line's endpoints.
func (l *Line) HasEndpoint(p *Point) bool {
	return l.A == p || l.B == p
}

// Other returns the endpoint opposite p. If p is not an endpoint of the
// line, A is returned.
func (l *Line) Other(p *Point) *Point {
	if p == l.A {
		return l.B
	}
	return l.A
}

// CoincidentWith reports whether the two lines connect the same unordered
// pair of endpoints.
func (l *Line) CoincidentWith(o *Line) bool {
	return (l.A == o.A && l.B == o.B) || (l.A == o.B && l.B == o.A)
}

// Neighbors returns the lines sharing either endpoint with l, excluding l
// itself. Order follows the endpoints' incident lists, A side first.
func (l *Line) Neighbors() []*Line {
	out := make([]*Line, 0, l.A.Degree()+l.B.Degree()-2)
	for _, in := range l.A.lines {
		if in != l {
			out = append(out, in)
		}
	}
	if l.B == l.A {
		return out
	}
	for _, in := range l.B.lines {
		if in != l {
			out = append(out, in)
		}
	}
	return out
}
