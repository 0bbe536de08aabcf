package geom

import (
	"fmt"
)

// MergeContiguousSurfaces joins surfaces whose contours share boundary
// lines, repeating the pairwise scan until a full pass performs no merge
// (the same restart-on-change fixpoint as [Layer.MergeContinuousLines]; a
// merge can create new adjacencies, and every merge shrinks the surface
// set, so the loop terminates).
//
// Two surfaces are contiguous when their contours share at least one line
// by identity. Sharing more than two lines indicates degenerate geometry
// and is warned about, but the merge proceeds. Contiguous surfaces with
// different types cannot be merged; that aborts with
// [ErrSurfaceTypeMismatch] rather than silently picking a type.
//
// The merged surface's contour is the union of both contours' lines minus
// the shared ones, its holes are the union of both hole sets, and its type
// carries over. The shared lines no longer bound anything and are detached
// from the layer.
func (l *Layer) MergeContiguousSurfaces() ([]Warning, error) {
	var warnings []Warning
	for {
		merged, ws, err := l.mergeSurfacePass()
		warnings = append(warnings, ws...)
		if err != nil {
			return warnings, err
		}
		if !merged {
			return warnings, nil
		}
	}
}

// mergeSurfacePass scans every unordered surface pair and performs at most
// one merge, reporting whether it did.
func (l *Layer) mergeSurfacePass() (bool, []Warning, error) {
	var warnings []Warning
	for i := 0; i < len(l.surfaces); i++ {
		for j := i + 1; j < len(l.surfaces); j++ {
			a, b := l.surfaces[i], l.surfaces[j]
			shared := sharedLines(a.Contour, b.Contour)
			if len(shared) == 0 {
				continue
			}
			if len(shared) > 2 {
				warnings = append(warnings, Warning{
					Stage:   StageRegions,
					Message: fmt.Sprintf("adjacent surfaces share %d boundary lines; geometry may be degenerate", len(shared)),
				})
			}
			if a.Type != b.Type {
				return false, warnings, fmt.Errorf("geom: adjacent surfaces have types %q and %q: %w", a.Type, b.Type, ErrSurfaceTypeMismatch)
			}

			merged := NewSurface(mergedContour(a.Contour, b.Contour, shared), a.Type)
			for _, h := range a.Holes() {
				merged.AddHole(h)
			}
			for _, h := range b.Holes() {
				merged.AddHole(h)
			}

			for _, ln := range a.Contour.lines {
				if shared[ln] {
					l.RemoveLine(ln)
				}
			}
			l.removePolyline(a.Contour)
			l.removePolyline(b.Contour)
			l.polylines = append(l.polylines, merged.Contour)
			l.RemoveSurface(a)
			l.RemoveSurface(b)
			l.surfaces = append(l.surfaces, merged)
			return true, warnings, nil
		}
	}
	return false, warnings, nil
}

// sharedLines returns the lines common to both polylines, by identity.
func sharedLines(a, b *Polyline) map[*Line]bool {
	in := make(map[*Line]bool, len(a.lines))
	for _, ln := range a.lines {
		in[ln] = true
	}
	shared := make(map[*Line]bool)
	for _, ln := range b.lines {
		if in[ln] {
			shared[ln] = true
		}
	}
	return shared
}

// mergedContour builds the contour of a merged surface from the two source
// contours minus their shared lines. The remaining lines are re-chained
// into cycle order so the polyline ordering invariant holds; if the chain
// cannot close (possible when the shared-line anomaly was warned about),
// the concatenation order is kept as-is.
func mergedContour(a, b *Polyline, shared map[*Line]bool) *Polyline {
	rest := make([]*Line, 0, len(a.lines)+len(b.lines)-2*len(shared))
	for _, ln := range a.lines {
		if !shared[ln] {
			rest = append(rest, ln)
		}
	}
	for _, ln := range b.lines {
		if !shared[ln] {
			rest = append(rest, ln)
		}
	}
	if chained, ok := chainLines(rest); ok {
		rest = chained
	}
	return NewPolyline(rest)
}

// chainLines reorders lines into a single closed cycle in which consecutive
// lines share an endpoint. It reports false if the lines do not form one
// closed chain.
func chainLines(lines []*Line) ([]*Line, bool) {
	if len(lines) < 3 {
		return nil, false
	}
	used := make([]bool, len(lines))
	out := make([]*Line, 0, len(lines))
	out = append(out, lines[0])
	used[0] = true
	first := lines[0].A
	cur := lines[0].B
	for len(out) < len(lines) {
		found := -1
		for i, ln := range lines {
			if !used[i] && ln.HasEndpoint(cur) {
				found = i
				break
			}
		}
		if found == -1 {
			return nil, false
		}
		used[found] = true
		out = append(out, lines[found])
		cur = lines[found].Other(cur)
	}
	if cur != first {
		return nil, false
	}
	return out, true
}
