// Package polyclip2d implements a 2D polygon boolean engine: intersection,
// union, difference, and symmetric difference (xor) of two planar polygons
// whose boundaries are one or more closed polygonal contours.
//
// The package is a thin public facade
// over the Martínez-Rueda-style sweep-line core in package sweep, which does
// the actual edge subdivision, inside/outside classification, and contour
// reconstruction. This package additionally applies the disjoint
// bounding-box fast path before ever invoking the sweep core, and
// attaches a SourceEdge to every edge of every result contour so callers can
// trace output geometry back to the input polygon, contour, and edge it
// came from.
//
// # Inputs
//
// A [Polygon] is an ordered list of contours, each an ordered list of
// [point.Point]; contour closure is implicit (the last point connects back
// to the first). Contours may represent shells or holes; nesting and
// orientation of the *output* is computed by the engine, not asserted by the
// caller on input.
//
// # Degenerate input
//
// Empty contours, zero-length edges, and duplicate consecutive points are
// silently dropped by the sweep engine's Event Generator. NaN
// coordinates are a fatal, unrecoverable input error and panic rather than
// returning an error value, matching geom2d's own treatment of programmer
// errors.
package polyclip2d

func init() {
	logDebugf("polyclip2d debug logging enabled")
}
