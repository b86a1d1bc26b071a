package point

import "fmt"

// OrientationType represents the orientation relationship between three points
// in the plane, as determined by the sign of the cross product of (q-p) and
// (r-p).
type OrientationType uint8

// Orientation constants define the possible orientation relationships between
// three points.
const (
	// Collinear indicates that three points lie on a straight line.
	Collinear OrientationType = iota

	// Counterclockwise indicates that three points form a counterclockwise turn.
	Counterclockwise

	// Clockwise indicates that three points form a clockwise turn.
	Clockwise
)

// String returns a human-readable name for o.
func (o OrientationType) String() string {
	switch o {
	case Collinear:
		return "Collinear"
	case Counterclockwise:
		return "Counterclockwise"
	case Clockwise:
		return "Clockwise"
	default:
		panic(fmt.Errorf("unsupported point orientation: %d", o))
	}
}

// Orientation determines whether p, q, r make a clockwise turn, a
// counterclockwise turn, or are exactly collinear.
//
// Unlike geom2d's Orientation, this uses no epsilon: the sweep engine relies
// on an exact sign test so that the event-queue and
// sweep-line comparators remain consistent total orders.
func Orientation(p, q, r Point) OrientationType {
	val := q.Sub(p).PerpDot(r.Sub(p))
	switch {
	case val == 0:
		return Collinear
	case val > 0:
		return Counterclockwise
	default:
		return Clockwise
	}
}

// RelativeToLine reports whether r lies above (1), on (0), or below (-1) the
// line through a and b, using the sign of perpdot(b-a, r-a). This is the
// exact primitive calls "point_relative_to_line": if b is to the
// left of a, the returned sign is reversed relative to a visual "above/below"
// reading, which is the behavior the event and sweep-line comparators expect.
func RelativeToLine(a, b, r Point) int {
	val := b.Sub(a).PerpDot(r.Sub(a))
	switch {
	case val == 0:
		return 0
	case val > 0:
		return 1
	default:
		return -1
	}
}
