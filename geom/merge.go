package geom

// MergeContinuousLines collapses runs of collinear lines that meet at
// degree-2 junctions into single longer lines, so that loop tracing only has
// to follow real geometric corners.
//
// The algorithm is a restart-on-change fixpoint: after every merge the whole
// scan starts over, because a merge can expose new continuity anywhere in
// the graph. Correctness comes from rescanning until a full pass performs no
// merge, not from scan order. Each pass strictly shrinks the line set, so
// the loop terminates.
//
// When a junction has more than one continuous neighbor the first one found
// in the point's incident-list order wins. That tie-break is a determinism
// contract, not a geometric choice; such input is ambiguous upstream data.
func (l *Layer) MergeContinuousLines() {
	for l.mergePass() {
	}
}

// mergePass scans the line set once and performs at most one merge,
// reporting whether it did.
func (l *Layer) mergePass() bool {
	for _, ln := range l.lines {
		if ln.Loop != nil {
			continue
		}
		slope := ln.Slope()
		for _, p := range [2]*Point{ln.A, ln.B} {
			if p.Degree() > 2 {
				// Branch point; never merge through it.
				continue
			}
			for _, other := range p.lines {
				if other == ln || other.Loop != nil {
					continue
				}
				if !slope.ContinuousWith(other.Slope()) {
					continue
				}
				a, b := ln.Other(p), other.Other(p)
				if a == b {
					continue
				}
				l.AddLine(a, b)
				l.RemoveLine(ln)
				l.RemoveLine(other)
				if p.Degree() == 0 {
					l.RemovePoint(p)
				}
				return true
			}
		}
	}
	return false
}
