package geom

// SurfaceType tags the role of a surface within a layer.
type SurfaceType string

// SurfaceInternal marks an ordinary solid region of the sliced model.
const SurfaceInternal SurfaceType = "internal"

// Surface is a solid region bounded by one outer contour and zero or more
// holes. Every hole is geometrically enclosed by the contour; that invariant
// is established by [Layer.MakeSurfaces] and not re-validated on mutation.
type Surface struct {
	Contour *Polyline
	Type    SurfaceType

	holes []*Polyline
}

// NewSurface creates a surface with the given contour and type, and records
// the contour back-reference on the polyline.
func NewSurface(contour *Polyline, typ SurfaceType) *Surface {
	s := &Surface{Contour: contour, Type: typ}
	contour.contourOf = s
	return s
}

// Holes returns the surface's holes. Order is not significant.
func (s *Surface) Holes() []*Polyline {
	return s.holes
}

// AddHole attaches a polyline to the surface as a hole and records the hole
// back-reference on the polyline.
func (s *Surface) AddHole(p *Polyline) {
	p.holeOf = s
	s.holes = append(s.holes, p)
}
