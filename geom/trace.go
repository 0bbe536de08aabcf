package geom

import "fmt"

// MakePolylines walks the untraced line graph and stitches closed polylines.
//
// Every point referenced by an untraced line should have degree at least
// two; a lower degree indicates a dangling segment from upstream slicing and
// is reported as a warning, not a fatal error. Each walk keeps its own
// visited set and repeatedly steps to the first unvisited neighbor of the
// current line. A walk closes into a polyline only when its lines form a
// true cycle, every point touching exactly two of them; otherwise the walk's
// lines are reported as unclosed, once, and left unassigned.
//
// After tracing, every line in the layer belongs to exactly one polyline or
// was part of a reported non-closing walk; no line is silently dropped.
func (l *Layer) MakePolylines() ([]*Polyline, []Warning) {
	var warnings []Warning

	checked := make(map[*Point]bool)
	for _, ln := range l.lines {
		if ln.Loop != nil {
			continue
		}
		for _, p := range [2]*Point{ln.A, ln.B} {
			if checked[p] {
				continue
			}
			checked[p] = true
			if p.Degree() < 2 {
				warnings = append(warnings, Warning{
					Stage:   StageTrace,
					Message: fmt.Sprintf("point (%g, %g) touches only %d line(s); dangling segment", p.X, p.Y, p.Degree()),
				})
			}
		}
	}

	var made []*Polyline
	failed := make(map[*Line]bool)
	for _, start := range l.lines {
		if start.Loop != nil || failed[start] {
			continue
		}
		visited := map[*Line]bool{start: true}
		order := []*Line{start}
		cur := start
		for {
			var next *Line
			for _, nb := range cur.Neighbors() {
				if !visited[nb] && nb.Loop == nil && !failed[nb] {
					next = nb
					break
				}
			}
			if next == nil {
				break
			}
			visited[next] = true
			order = append(order, next)
			cur = next
		}
		if len(order) >= 3 && closedCycle(order) {
			made = append(made, NewPolyline(order))
			continue
		}
		for _, ln := range order {
			failed[ln] = true
		}
		warnings = append(warnings, Warning{
			Stage:   StageTrace,
			Message: fmt.Sprintf("walk of %d line(s) did not close; segments left unassigned", len(order)),
		})
	}
	l.polylines = append(l.polylines, made...)
	return made, warnings
}

// closedCycle reports whether the walked lines form a single closed loop:
// every point they reference is an endpoint of exactly two of them. A walk
// that merely ends near its start, for example after absorbing a spur at a
// junction, fails this and is reported unclosed.
func closedCycle(lines []*Line) bool {
	deg := make(map[*Point]int, len(lines))
	for _, ln := range lines {
		deg[ln.A]++
		deg[ln.B]++
	}
	for _, d := range deg {
		if d != 2 {
			return false
		}
	}
	return true
}
