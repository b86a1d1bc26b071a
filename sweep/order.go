package sweep

import "github.com/mikenye/polyclip2d/point"

// eventQueueLess implements the event queue order: the priority
// under which Q dequeues events, smallest first.
func eventQueueLess(a, b Event) bool {
	if c := a.Point.Compare(b.Point); c != 0 {
		return c < 0
	}

	// Right events before left events at the same point.
	if a.Left != b.Left {
		return !a.Left
	}

	// Non-vertical edges before vertical edges at the same point.
	if av, bv := a.Vertical(), b.Vertical(); av != bv {
		return !av
	}

	// Both left (or both right): order by whose supporting line is lower at
	// this point. For left events, the edge whose other_point lies below
	// the other's supporting line comes first; for right events this is
	// reversed, since other_point for a right event sits on the opposite
	// side of its own point.
	if rel := point.RelativeToLine(a.Point, a.OtherPoint, b.OtherPoint); rel != 0 {
		if a.Left {
			return rel > 0
		}
		return rel < 0
	}

	if a.IsSubject != b.IsSubject {
		return a.IsSubject
	}

	return a.ID < b.ID
}

// sweepLineLess implements the sweep-line order: the order of
// concurrently active left events in L, from bottom to top.
func sweepLineLess(a, b Event) bool {
	if segmentsCollinear(a, b) {
		return eventQueueLess(a, b)
	}

	if a.Point.X() == b.Point.X() {
		if a.Point.Y() != b.Point.Y() {
			return a.Point.Y() < b.Point.Y()
		}
		// Same left endpoint: order by slope, lower other_point first.
		return point.RelativeToLine(a.Point, b.OtherPoint, a.OtherPoint) < 0
	}

	lower, higher := a, b
	if !a.Point.Less(b.Point) {
		lower, higher = b, a
	}

	rel := point.RelativeToLine(lower.Point, lower.OtherPoint, higher.Point)
	if lower == a {
		return rel > 0
	}
	return rel < 0
}

// segmentsCollinear reports whether a and b's supporting lines are the same
// line.
func segmentsCollinear(a, b Event) bool {
	if point.Orientation(a.Point, a.OtherPoint, b.Point) != point.Collinear {
		return false
	}
	return point.Orientation(a.Point, a.OtherPoint, b.OtherPoint) == point.Collinear
}
