package polyclip2d

import (
	"github.com/mikenye/polyclip2d/point"
	"github.com/mikenye/polyclip2d/types"
)

// Polygon is an ordered list of contours. Each contour is an ordered list of
// points with implicit closure: the contour's last point connects back to
// its first. A contour may be empty. Contours are not tagged shell/hole on
// input; which contours are shells and which are holes in a boolean
// result is an output of the engine, derived from nesting depth.
type Polygon struct {
	Contours [][]point.Point
}

// NewPolygon builds a Polygon from the given contours. Contours are stored
// as given; the engine itself normalizes degenerate edges rather
// than rejecting them here.
func NewPolygon(contours ...[]point.Point) Polygon {
	return Polygon{Contours: contours}
}

// SourceEdge identifies the input polygon, contour, and edge a result
// fragment traces back to.
type SourceEdge = types.SourceEdge

// BooleanResult is the output of a boolean operation: the result polygon,
// plus, for every edge of every result contour, the SourceEdge it came
// from. ContourSourceEdges has the same length and shape as
// Polygon.Contours: ContourSourceEdges[i][j] describes the edge running
// from Polygon.Contours[i][j] to Polygon.Contours[i][(j+1)%n].
type BooleanResult struct {
	Polygon            Polygon
	ContourSourceEdges [][]SourceEdge
}
