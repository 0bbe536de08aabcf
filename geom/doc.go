// Package geom reconstructs closed 2D regions from the unordered line-segment
// soup produced by slicing a triangle mesh at a single Z height.
//
// All state for one slice lives in a [Layer]. The layer owns a point registry
// (exact coordinate dedup), the active line set, the traced polylines, and the
// finished surfaces. A layer is single-threaded; different layers share no
// state and may be processed in parallel by a caller.
//
// # Pipeline
//
// Reconstruction runs four stages in a fixed order, each depending on the
// previous stage's output:
//
//  1. [Layer.MergeContinuousLines] - collapse collinear runs at degree-2
//     junctions into single longer lines.
//  2. [Layer.MakePolylines] - walk the line graph and stitch closed loops.
//  3. [Layer.MakeSurfaces] - classify loops as contours or holes by nesting
//     depth and build [Surface] values.
//  4. [Layer.MergeContiguousSurfaces] - join surfaces whose contours share
//     boundary lines, repeating until stable.
//
// # Data Model
//
// The graph is built from four entity types:
//
//   - [Point] - a vertex with exact (X, Y) identity and a back-reference list
//     of incident lines. At most one live Point exists per coordinate pair
//     within a layer.
//   - [Line] - a segment between two points, deduplicated by unordered
//     endpoint pair. Its [Slope] distinguishes numeric, vertical, and
//     degenerate (zero-length) classifications.
//   - [Polyline] - an ordered cycle of lines forming a closed loop, with
//     back-reference slots recording whether it is the contour or a hole of
//     a surface.
//   - [Surface] - one contour plus zero or more holes, tagged with a
//     [SurfaceType].
//
// # Warnings and Errors
//
// Degenerate input (dangling segments, loops that fail to close, surfaces
// sharing more than two boundary lines) is reported through accumulated
// [Warning] values and processing continues best-effort. Merging surfaces
// with different types is a modeling invariant violation and fails with
// [ErrSurfaceTypeMismatch]. Precondition violations such as a nil line
// endpoint panic immediately.
package geom
