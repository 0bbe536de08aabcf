package geom

import (
	"fmt"
	"sort"

	"github.com/peterstace/simplefeatures/rtree"
)

// MakeSurfaces classifies the traced polylines as contours or holes and
// builds surfaces from them.
//
// Each polyline's nesting depth is the number of other polylines whose
// interior contains one of its sample vertices: even depth marks an outer
// contour, odd depth a hole. Polylines are processed from the deepest level
// up to zero so that a hole's parent contour, which sits exactly one level
// shallower, can always be materialized before or together with the hole.
//
// The final contour/hole structure does not depend on the order polylines
// were traced in; only the creation order of surfaces may differ.
//
// Two data-quality cases are reported and handled best-effort: a hole with
// no enclosing polyline exactly one level shallower is skipped, and a hole
// with several such candidates is attached to the first one in trace order.
func (l *Layer) MakeSurfaces() []Warning {
	pls := l.polylines
	if len(pls) == 0 {
		return nil
	}

	// Bounding-box index to prune the quadratic containment scan. All boxes
	// are known up front, so the tree is bulk-loaded. Candidate IDs are
	// re-sorted into trace order because tree iteration order is not
	// deterministic with respect to the input.
	items := make([]rtree.BulkItem, len(pls))
	for i, pl := range pls {
		minX, minY, maxX, maxY := pl.bounds()
		items[i] = rtree.BulkItem{
			Box:      rtree.Box{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY},
			RecordID: i,
		}
	}
	tree := rtree.BulkLoad(items)

	classified := make([]bool, len(pls))
	for i, pl := range pls {
		classified[i] = pl.contourOf != nil || pl.holeOf != nil
	}

	depth := make([]int, len(pls))
	enclosing := make([][]int, len(pls))
	maxDepth := 0
	for i, pl := range pls {
		if classified[i] {
			continue
		}
		sp := pl.samplePoint()
		probe := rtree.Box{MinX: sp.X, MinY: sp.Y, MaxX: sp.X, MaxY: sp.Y}
		var candidates []int
		_ = tree.RangeSearch(probe, func(id int) error {
			if id != i {
				candidates = append(candidates, id)
			}
			return nil
		})
		sort.Ints(candidates)
		for _, j := range candidates {
			if pls[j].ContainsPoint(sp.Coord()) {
				depth[i]++
				enclosing[i] = append(enclosing[i], j)
			}
		}
		if depth[i] > maxDepth {
			maxDepth = depth[i]
		}
	}

	var warnings []Warning
	for d := maxDepth; d >= 0; d-- {
		for i, pl := range pls {
			if classified[i] || depth[i] != d {
				continue
			}
			if d%2 == 0 {
				l.surfaces = append(l.surfaces, NewSurface(pl, SurfaceInternal))
				classified[i] = true
				continue
			}
			var parents []int
			for _, j := range enclosing[i] {
				if depth[j] == d-1 {
					parents = append(parents, j)
				}
			}
			if len(parents) == 0 {
				warnings = append(warnings, Warning{
					Stage:   StageClassify,
					Message: fmt.Sprintf("hole at depth %d has no enclosing contour at depth %d; skipped", d, d-1),
				})
				classified[i] = true
				continue
			}
			if len(parents) > 1 {
				warnings = append(warnings, Warning{
					Stage:   StageClassify,
					Message: fmt.Sprintf("hole at depth %d has %d candidate parent contours; using the first", d, len(parents)),
				})
			}
			parent := pls[parents[0]]
			if s := parent.contourOf; s != nil {
				s.AddHole(pl)
			} else {
				s := NewSurface(parent, SurfaceInternal)
				s.AddHole(pl)
				l.surfaces = append(l.surfaces, s)
				classified[parents[0]] = true
			}
			classified[i] = true
		}
	}
	return warnings
}
