// Package lamina reconstructs closed 2D regions from the unordered
// line-segment soup produced by slicing a 3D mesh at one Z height.
//
// Basic usage:
//
//	surfaces, warnings, err := lamina.Reconstruct(segments).Surfaces()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", lamina.FormatWarnings(warnings))
//	}
//
// With options:
//
//	layer, _, err := lamina.Reconstruct(segments).
//	    WithoutCollinearMerge().
//	    Layer()
//
// For direct control over the layer graph and the individual pipeline
// stages, the lower-level geom package is also available.
package lamina

import (
	"fmt"

	"github.com/printforge/lamina/geom"
)

// Segment is one raw input line segment at a single Z height.
type Segment struct {
	X1, Y1, X2, Y2 float64
}

// Warning is a non-fatal data-quality report from the reconstruction
// pipeline. See the geom package for the underlying taxonomy.
type Warning = geom.Warning

// FormatWarnings joins warnings into a single human-readable string.
func FormatWarnings(ws []Warning) string {
	return geom.FormatWarnings(ws)
}

// Reconstruct returns a Pipeline over the given segments for fluent
// configuration. Terminal operations such as Surfaces run the full
// reconstruction: segment dedup, collinear merging, loop tracing,
// contour/hole classification, and contiguous-region merging.
//
// Example:
//
//	surfaces, warnings, err := lamina.Reconstruct(segments).Surfaces()
func Reconstruct(segments []Segment) *Pipeline {
	return &Pipeline{
		segments: append([]Segment(nil), segments...),
		options:  defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustSurfaces wraps a terminal pipeline call, panics if the error is
// non-nil, and discards warnings.
//
// Example:
//
//	surfaces := lamina.MustSurfaces(lamina.Reconstruct(segments).Surfaces())
func MustSurfaces[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// Pipeline provides a fluent interface for reconstructing one layer. Each
// configuration method returns a new Pipeline instance, making it safe to
// configure shared pipelines without aliasing surprises.
type Pipeline struct {
	segments []Segment
	options  reconstructOptions
}

// clone creates a copy of the Pipeline with its own options. The segment
// slice is shared; terminal operations never mutate it.
func (p *Pipeline) clone() *Pipeline {
	return &Pipeline{
		segments: p.segments,
		options:  p.options,
	}
}

// Layer runs the full reconstruction pipeline and returns the resulting
// layer along with any data-quality warnings. The error is non-nil only for
// fatal inconsistencies (see [geom.ErrSurfaceTypeMismatch]) or, in strict
// mode, when any warning was produced.
func (p *Pipeline) Layer() (*geom.Layer, []Warning, error) {
	l := geom.NewLayer()
	for _, s := range p.segments {
		l.AddSegment(s.X1, s.Y1, s.X2, s.Y2)
	}

	var warnings []Warning
	if !p.options.skipCollinearMerge {
		l.MergeContinuousLines()
	}
	_, ws := l.MakePolylines()
	warnings = append(warnings, ws...)
	warnings = append(warnings, l.MakeSurfaces()...)
	ws, err := l.MergeContiguousSurfaces()
	warnings = append(warnings, ws...)
	if err != nil {
		return nil, warnings, err
	}
	if p.options.strict && len(warnings) > 0 {
		return nil, warnings, fmt.Errorf("lamina: %d data-quality warning(s) in strict mode: %s",
			len(warnings), FormatWarnings(warnings))
	}
	return l, warnings, nil
}

// Surfaces runs the full pipeline and returns the reconstructed surfaces.
//
// Example:
//
//	surfaces, warnings, err := lamina.Reconstruct(segments).Surfaces()
func (p *Pipeline) Surfaces() ([]*geom.Surface, []Warning, error) {
	l, warnings, err := p.Layer()
	if err != nil {
		return nil, warnings, err
	}
	return l.Surfaces(), warnings, nil
}
