package polyclip2d

import (
	"github.com/mikenye/polyclip2d/numeric"
	"github.com/mikenye/polyclip2d/options"
	"github.com/mikenye/polyclip2d/point"
)

// normalizeResult snaps every coordinate of result's polygon to the nearest
// whole number wherever numeric.SnapToEpsilon finds one within geomOpts.Epsilon,
// cleaning up the float64 residue a sweep can leave on an otherwise
// axis-aligned or grid-aligned result. A zero Epsilon (the default) leaves
// result untouched: the sweep core itself never needs this, only callers
// who know their input was meant to land on round coordinates.
func normalizeResult(result BooleanResult, geomOpts options.GeometryOptions) BooleanResult {
	if geomOpts.Epsilon == 0 {
		return result
	}

	contours := make([][]point.Point, len(result.Polygon.Contours))
	for i, contour := range result.Polygon.Contours {
		pts := make([]point.Point, len(contour))
		for j, pt := range contour {
			pts[j] = point.New(
				numeric.SnapToEpsilon(pt.X(), geomOpts.Epsilon),
				numeric.SnapToEpsilon(pt.Y(), geomOpts.Epsilon),
			)
		}
		contours[i] = pts
	}
	result.Polygon.Contours = contours
	return result
}
