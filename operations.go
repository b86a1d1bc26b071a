package polyclip2d

import (
	"github.com/mikenye/polyclip2d/options"
	"github.com/mikenye/polyclip2d/sweep"
	"github.com/mikenye/polyclip2d/types"
)

// Intersection returns the parts of subject covered by clip and vice versa.
// By default the result's coordinates are exactly what the sweep core
// produced; WithEpsilon snaps near-integer residue in the output to whole
// numbers (see normalizeResult).
func Intersection(subject, clip Polygon, opts ...options.GeometryOptionsFunc) BooleanResult {
	return runOperation(types.OpIntersection, subject, clip, opts...)
}

// Union returns every part covered by either subject or clip.
func Union(subject, clip Polygon, opts ...options.GeometryOptionsFunc) BooleanResult {
	return runOperation(types.OpUnion, subject, clip, opts...)
}

// Difference returns the parts of subject not covered by clip.
func Difference(subject, clip Polygon, opts ...options.GeometryOptionsFunc) BooleanResult {
	return runOperation(types.OpDifference, subject, clip, opts...)
}

// Xor returns the parts covered by exactly one of subject and clip.
func Xor(subject, clip Polygon, opts ...options.GeometryOptionsFunc) BooleanResult {
	return runOperation(types.OpXOR, subject, clip, opts...)
}

// runOperation is the shared entry point behind the four public operations:
// it takes the bounding-box fast path when the inputs can't
// possibly interact, and otherwise hands off to the sweep-line core. The
// sweep core itself stays exact (see package sweep's order.go); opts only
// affects the output-normalization pass applied afterward.
func runOperation(op types.BooleanOperation, subject, clip Polygon, opts ...options.GeometryOptionsFunc) BooleanResult {
	geomOpts := options.ApplyGeometryOptions(options.GeometryOptions{}, opts...)

	if res, ok := tryFastPath(op, subject, clip); ok {
		logDebugf("%s: disjoint bounding boxes or empty input, skipping sweep core", op)
		return normalizeResult(res, geomOpts)
	}

	logDebugf("%s: running sweep core (subject contours=%d, clip contours=%d)", op, len(subject.Contours), len(clip.Contours))
	contours, sourceEdges := sweep.Run(op, subject.Contours, clip.Contours)
	return normalizeResult(BooleanResult{
		Polygon:            Polygon{Contours: contours},
		ContourSourceEdges: sourceEdges,
	}, geomOpts)
}

// tryFastPath implements disjoint/empty-input fast path: when the
// two inputs' bounding boxes don't overlap, or either input is empty, the
// result is computed by simple enumeration of the relevant input's
// contours, and the sweep core is never invoked.
func tryFastPath(op types.BooleanOperation, subject, clip Polygon) (BooleanResult, bool) {
	subjectBox := computeBoundingBox(subject)
	clipBox := computeBoundingBox(clip)
	if !subjectBox.disjoint(clipBox) {
		return BooleanResult{}, false
	}

	switch op {
	case types.OpIntersection:
		return BooleanResult{}, true

	case types.OpUnion, types.OpXOR:
		subjectContours, subjectEdges := trivialContours(subject, true)
		clipContours, clipEdges := trivialContours(clip, false)
		return BooleanResult{
			Polygon:            Polygon{Contours: append(subjectContours, clipContours...)},
			ContourSourceEdges: append(subjectEdges, clipEdges...),
		}, true

	case types.OpDifference:
		subjectContours, subjectEdges := trivialContours(subject, true)
		return BooleanResult{
			Polygon:            Polygon{Contours: subjectContours},
			ContourSourceEdges: subjectEdges,
		}, true

	default:
		panic("polyclip2d: unsupported boolean operation")
	}
}
