package sweep

import "github.com/mikenye/polyclip2d/point"

// intersectionKind classifies the outcome of the segment intersection
// predicate.
type intersectionKind uint8

const (
	noIntersection intersectionKind = iota
	pointIntersection
	overlapIntersection
)

// segmentIntersection is the result of intersectSegments.
type segmentIntersection struct {
	Kind intersectionKind

	// Point holds the single intersection point when Kind is
	// pointIntersection.
	Point point.Point

	// Start and End hold the overlap's endpoints, in the direction of
	// a1-a0, when Kind is overlapIntersection.
	Start, End point.Point
}

// intersectSegments implements the Schneider/Eberly segment intersection
// predicate for segments A = (a0,a1) and B = (b0,b1).
func intersectSegments(a0, a1, b0, b1 point.Point) segmentIntersection {
	d1 := a1.Sub(a0)
	d2 := b1.Sub(b0)
	r := b0.Sub(a0)
	k := d1.PerpDot(d2)

	if k*k > 0 {
		s := r.PerpDot(d2) / k
		t := r.PerpDot(d1) / k
		if s < 0 || s > 1 || t < 0 || t > 1 {
			return segmentIntersection{Kind: noIntersection}
		}
		sEndpoint := s == 0 || s == 1
		tEndpoint := t == 0 || t == 1
		if sEndpoint && tEndpoint {
			// Endpoint-only contact: not an intersection.
			return segmentIntersection{Kind: noIntersection}
		}
		return segmentIntersection{Kind: pointIntersection, Point: a0.Add(d1.Scale(s))}
	}

	if r.PerpDot(d1) != 0 {
		// Parallel, distinct lines.
		return segmentIntersection{Kind: noIntersection}
	}

	// Collinear: project b's endpoints onto a's parametric line.
	len1Sq := d1.Dot(d1)
	if len1Sq == 0 {
		return segmentIntersection{Kind: noIntersection}
	}
	s0 := r.Dot(d1) / len1Sq
	s1 := b1.Sub(a0).Dot(d1) / len1Sq
	smin, smax := s0, s1
	if smin > smax {
		smin, smax = smax, smin
	}
	if smax <= 0 || 1 <= smin {
		return segmentIntersection{Kind: noIntersection}
	}

	clampedMin := smin
	if clampedMin < 0 {
		clampedMin = 0
	}
	clampedMax := smax
	if clampedMax > 1 {
		clampedMax = 1
	}

	return segmentIntersection{
		Kind:  overlapIntersection,
		Start: a0.Add(d1.Scale(clampedMin)),
		End:   a0.Add(d1.Scale(clampedMax)),
	}
}
