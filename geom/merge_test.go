package geom

import "testing"

// assertNoContinuousPairs fails if any two lines meeting at a degree-2
// junction are still slope-continuous, which would mean the merge fixpoint
// stopped early.
func assertNoContinuousPairs(t *testing.T, l *Layer) {
	t.Helper()
	for _, ln := range l.Lines() {
		if ln.Loop != nil {
			continue
		}
		for _, p := range [2]*Point{ln.A, ln.B} {
			if p.Degree() != 2 {
				continue
			}
			for _, other := range p.Lines() {
				if other == ln || other.Loop != nil {
					continue
				}
				if ln.Slope().ContinuousWith(other.Slope()) {
					t.Errorf("lines at (%g, %g) are still slope-continuous after merge", p.X, p.Y)
				}
			}
		}
	}
}

func TestMergeContinuousLines_CollapsesSubdividedEdge(t *testing.T) {
	l := NewLayer()
	// Square whose bottom edge arrives as two collinear halves.
	l.AddSegment(0, 0, 5, 0)
	l.AddSegment(5, 0, 10, 0)
	l.AddSegment(10, 0, 10, 10)
	l.AddSegment(10, 10, 0, 10)
	l.AddSegment(0, 10, 0, 0)

	mid := l.AddPoint(5, 0)
	l.MergeContinuousLines()

	if got := len(l.Lines()); got != 4 {
		t.Fatalf("len(Lines()) = %d, want 4", got)
	}
	assertNoContinuousPairs(t, l)

	// The junction point was orphaned and must have been evicted.
	if l.AddPoint(5, 0) == mid {
		t.Errorf("orphaned junction point was not evicted from the registry")
	}

	// The synthesized line spans the two outer endpoints.
	a := l.AddPoint(0, 0)
	b := l.AddPoint(10, 0)
	found := false
	for _, ln := range l.Lines() {
		if ln.HasEndpoint(a) && ln.HasEndpoint(b) {
			found = true
		}
	}
	if !found {
		t.Errorf("no line spans (0,0)-(10,0) after merge")
	}
}

func TestMergeContinuousLines_VerticalRun(t *testing.T) {
	l := NewLayer()
	l.AddSegment(0, 0, 0, 5)
	l.AddSegment(0, 5, 0, 10)
	l.AddSegment(0, 10, 0, 15)

	l.MergeContinuousLines()

	if got := len(l.Lines()); got != 1 {
		t.Fatalf("len(Lines()) = %d, want 1", got)
	}
	ln := l.Lines()[0]
	if !ln.HasEndpoint(l.AddPoint(0, 0)) || !ln.HasEndpoint(l.AddPoint(0, 15)) {
		t.Errorf("merged line does not span (0,0)-(0,15)")
	}
}

func TestMergeContinuousLines_SlopeMismatch(t *testing.T) {
	l := NewLayer()
	l.AddSegment(0, 0, 5, 0) // horizontal
	l.AddSegment(5, 0, 5, 5) // vertical

	l.MergeContinuousLines()

	if got := len(l.Lines()); got != 2 {
		t.Errorf("len(Lines()) = %d, want 2 (corner must not merge)", got)
	}
}

func TestMergeContinuousLines_BranchPoint(t *testing.T) {
	l := NewLayer()
	// Two collinear lines plus a third branch at the junction.
	l.AddSegment(0, 0, 5, 0)
	l.AddSegment(5, 0, 10, 0)
	l.AddSegment(5, 0, 5, 5)

	l.MergeContinuousLines()

	if got := len(l.Lines()); got != 3 {
		t.Errorf("len(Lines()) = %d, want 3 (degree-3 junction must not merge)", got)
	}
}

func TestMergeContinuousLines_SkipsTracedLines(t *testing.T) {
	l := NewLayer()
	// AddSurface tags its lines with a polyline; the merger must leave them
	// alone even though the outline contains a collinear junction.
	s, err := l.AddSurface([]Coord{{0, 0}, {5, 0}, {10, 0}, {10, 10}, {0, 10}})
	if err != nil {
		t.Fatalf("AddSurface() failed: %v", err)
	}

	l.MergeContinuousLines()

	if got := len(l.Lines()); got != 5 {
		t.Errorf("len(Lines()) = %d, want 5 (traced lines must be skipped)", got)
	}
	if got := len(s.Contour.Lines()); got != 5 {
		t.Errorf("contour has %d lines after merge, want 5", got)
	}
}

func TestMergeContinuousLines_CascadingMerges(t *testing.T) {
	l := NewLayer()
	// Chain of four collinear diagonal segments; each merge exposes the next.
	l.AddSegment(0, 0, 1, 2)
	l.AddSegment(1, 2, 2, 4)
	l.AddSegment(2, 4, 3, 6)
	l.AddSegment(3, 6, 4, 8)

	l.MergeContinuousLines()

	if got := len(l.Lines()); got != 1 {
		t.Fatalf("len(Lines()) = %d, want 1", got)
	}
	assertNoContinuousPairs(t, l)
}
