package polyclip2d

import "github.com/mikenye/polyclip2d/point"

// boundingBox is the axis-aligned bounding box of a Polygon, used only by
// the disjoint-input fast path. It is not a general-purpose
// rectangle type: the fast path needs nothing beyond min/max and an overlap
// test.
type boundingBox struct {
	minX, minY, maxX, maxY float64
	empty                  bool
}

// computeBoundingBox returns the bounding box of every point across every
// contour of p. A Polygon with no points at all (no contours, or only empty
// contours) reports empty=true.
func computeBoundingBox(p Polygon) boundingBox {
	bb := boundingBox{empty: true}
	for _, contour := range p.Contours {
		for _, pt := range contour {
			x, y := pt.X(), pt.Y()
			if bb.empty {
				bb = boundingBox{minX: x, minY: y, maxX: x, maxY: y}
				continue
			}
			if x < bb.minX {
				bb.minX = x
			}
			if x > bb.maxX {
				bb.maxX = x
			}
			if y < bb.minY {
				bb.minY = y
			}
			if y > bb.maxY {
				bb.maxY = y
			}
		}
	}
	return bb
}

// disjoint reports whether a and b cannot possibly overlap: either is
// empty, or their boxes don't intersect on some axis.
func (a boundingBox) disjoint(b boundingBox) bool {
	if a.empty || b.empty {
		return true
	}
	return a.maxX < b.minX || b.maxX < a.minX || a.maxY < b.minY || b.maxY < a.minY
}

// trivialContours re-expresses p's contours the way a boolean-op result would:
// degenerate edges (equal consecutive points) dropped and contours left
// with fewer than 3 points discarded, each surviving edge tagged with its
// SourceEdge by simple enumeration. This is the "appropriate
// subset of the inputs" the fast path returns without invoking the sweep
// core.
func trivialContours(p Polygon, isSubject bool) ([][]point.Point, [][]SourceEdge) {
	var contours [][]point.Point
	var sourceEdges [][]SourceEdge

	for contourIndex, contour := range p.Contours {
		n := len(contour)
		if n == 0 {
			continue
		}

		var pts []point.Point
		var edges []SourceEdge
		for edgeIndex := 0; edgeIndex < n; edgeIndex++ {
			p1 := contour[edgeIndex]
			p2 := contour[(edgeIndex+1)%n]
			if p1.Eq(p2) {
				continue
			}
			pts = append(pts, p1)
			edges = append(edges, SourceEdge{IsFromSubject: isSubject, Contour: contourIndex, Edge: edgeIndex})
		}

		if len(pts) < 3 {
			continue
		}
		contours = append(contours, pts)
		sourceEdges = append(sourceEdges, edges)
	}

	return contours, sourceEdges
}
