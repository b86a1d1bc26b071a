// Package sweep implements the Martinez-Rueda-style sweep-line core of the
// polygon boolean engine: the event generator, the two event orderings, the
// subdivider that splits edges at every intersection and classifies the
// resulting fragments, the result filter, and the contour assembler that
// stitches surviving fragments back into oriented closed contours.
//
// # Exactness
//
// Every comparator in this package is exact: no function here accepts an
// options.GeometryOptionsFunc or consults an epsilon. The sweep depends on
// its comparators forming consistent total orders; epsilon tolerance would
// make ties non-antisymmetric and corrupt both the event queue and the
// sweep-line status structure. Callers that need epsilon-tolerant output
// normalization apply it after Run returns, in the numeric/options layer.
package sweep

import (
	"fmt"

	"github.com/mikenye/polyclip2d/point"
	"github.com/mikenye/polyclip2d/types"
)

// Event is one endpoint of an edge fragment, as it existed when the fragment
// was created. Events are immutable: OtherPoint fixes the fragment's
// supporting line for every ordering comparison that runs for the rest of
// the sweep, even after the fragment on the far side of OtherPoint is split
// away from it. Mutable, per-event state lives in the parallel
// EventRelation slice, indexed by ID.
type Event struct {
	// ID is this event's position in the owning Subdivider's events slice.
	ID int

	// Point is this event's own endpoint.
	Point point.Point

	// Left reports whether Point is the lexicographically earlier endpoint
	// of the edge this event was created from.
	Left bool

	// IsSubject reports whether this event's edge came from the subject
	// polygon, as opposed to the clip polygon.
	IsSubject bool

	// OtherPoint is the edge's opposite endpoint as of this event's
	// creation. It is never mutated, so it always places this event on the
	// same line as it was created on, which is all ordering predicates
	// need: a split point always lies on that same line.
	OtherPoint point.Point
}

// Vertical reports whether the edge this event was created from runs
// parallel to the y-axis.
func (e Event) Vertical() bool {
	return e.Point.X() == e.OtherPoint.X()
}

// noPrevInResult marks the absence of a below-neighbor that is itself in
// the result, the sentinel for EventRelation.PrevInResult.
const noPrevInResult = -1

// EventRelation carries the mutable state associated with one Event. It is
// grown in place (splits append new entries; nothing is ever removed) and
// indexed by the owning Event's ID.
type EventRelation struct {
	// SiblingID is the event on the other end of this event's current
	// fragment. Unlike Event.OtherPoint, this updates across splits.
	SiblingID int

	// SiblingPoint mirrors events[SiblingID].Point, kept alongside SiblingID
	// so callers can read the current fragment's extent without an extra
	// slice lookup while a split is in flight.
	SiblingPoint point.Point

	// InOut reports whether crossing this edge upward, relative to a
	// downward ray to negative infinity, leaves the edge's own polygon.
	InOut bool

	// OtherInOut is the same quantity for the closest edge below this one
	// that belongs to the other polygon.
	OtherInOut bool

	// InResult reports whether this fragment belongs to the output under
	// the operation being run. It can be demoted after being set, when a
	// later event discovers this fragment is coincident with another.
	InResult bool

	// PrevInResult is the ID of the nearest left event below this one that
	// is itself in the result, or noPrevInResult.
	PrevInResult int

	// CoincidenceType classifies this fragment's relationship to a
	// collinear, overlapping twin fragment, if one was found.
	CoincidenceType types.EdgeCoincidenceType

	// Source is the input edge this fragment traces back to.
	Source types.SourceEdge
}

// Generate implements the Event Generator: it converts every
// edge of every contour of subject and clip into a pair of endpoint events,
// seeding the event queue and the parallel EventRelation table.
//
// A contour is a closed loop of points with implicit closure: edge i runs
// from contour[i] to contour[(i+1)%len(contour)]. Degenerate edges (equal
// endpoints) are dropped, matching and the Error Handling Design's
// "silently normalized" treatment of duplicate consecutive points.
//
// NaN coordinates anywhere in subject or clip are a fatal input error
// Generate panics rather than returning a partially-built queue.
func Generate(subject, clip [][]point.Point) ([]Event, []EventRelation, *eventQueue) {
	var events []Event
	var relations []EventRelation
	queue := newEventQueue()

	addContour := func(contour []point.Point, contourIndex int, isSubject bool) {
		n := len(contour)
		for edgeIndex := 0; edgeIndex < n; edgeIndex++ {
			p1 := contour[edgeIndex]
			p2 := contour[(edgeIndex+1)%n]

			requireFinite(p1)
			requireFinite(p2)

			if p1.Eq(p2) {
				continue
			}

			leftID := len(events)
			rightID := leftID + 1

			p1IsLeft := p1.Less(p2)

			events = append(events,
				Event{ID: leftID, Point: p1, Left: p1IsLeft, IsSubject: isSubject, OtherPoint: p2},
				Event{ID: rightID, Point: p2, Left: !p1IsLeft, IsSubject: isSubject, OtherPoint: p1},
			)

			source := types.SourceEdge{IsFromSubject: isSubject, Contour: contourIndex, Edge: edgeIndex}
			relations = append(relations,
				EventRelation{SiblingID: rightID, SiblingPoint: p2, PrevInResult: noPrevInResult, Source: source},
				EventRelation{SiblingID: leftID, SiblingPoint: p1, PrevInResult: noPrevInResult, Source: source},
			)

			queue.Push(events[leftID])
			queue.Push(events[rightID])
		}
	}

	for i, contour := range subject {
		addContour(contour, i, true)
	}
	for i, contour := range clip {
		addContour(contour, i, false)
	}

	return events, relations, queue
}

// requireFinite panics if p carries a NaN coordinate: NaN
// input is a fatal programmer error, never a recoverable one.
func requireFinite(p point.Point) {
	if p.X() != p.X() || p.Y() != p.Y() {
		panic(fmt.Errorf("sweep: NaN coordinate in input polygon: %s", p))
	}
}
