package sweep

import (
	"fmt"

	"github.com/mikenye/polyclip2d/point"
	"github.com/mikenye/polyclip2d/types"
)

// subdivider runs the main sweep loop: draining the event queue, maintaining the status structure,
// classifying every event's in_out/other_in_out/in_result, and splitting
// edges at every intersection found along the way.
//
// events and relations grow monotonically as splits append new fragments;
// nothing is ever removed from either slice, only from the queue and the
// status structure. Holding a pointer into either slice across a call that
// might append to it is unsafe, since append may reallocate; every method
// below re-indexes rather than aliases.
type subdivider struct {
	op        types.BooleanOperation
	events    []Event
	relations []EventRelation
	queue     *eventQueue
	status    *status
	result    []int
}

func newSubdivider(op types.BooleanOperation, events []Event, relations []EventRelation, queue *eventQueue) *subdivider {
	return &subdivider{op: op, events: events, relations: relations, queue: queue, status: newStatus()}
}

// run drains the queue and returns the IDs of every event marked in_result
// at the moment it was dequeued, in event-queue order. A later coincidence
// discovery may demote some of these; filterResult applies that final pass.
func (s *subdivider) run() []int {
	for s.queue.Len() > 0 {
		e, _ := s.queue.Pop()
		if e.Left {
			s.handleLeft(e)
		} else {
			s.handleRight(e)
		}
	}
	return s.result
}

func (s *subdivider) handleLeft(e Event) {
	s.status.Insert(e)
	pred, hasPred := s.status.Predecessor(e)

	if !hasPred {
		s.relations[e.ID].InOut = false
		s.relations[e.ID].OtherInOut = true
		s.relations[e.ID].PrevInResult = noPrevInResult
	} else {
		predInOut := s.relations[pred.ID].InOut
		predOtherInOut := s.relations[pred.ID].OtherInOut
		predInResult := s.relations[pred.ID].InResult
		predPrevInResult := s.relations[pred.ID].PrevInResult

		if pred.IsSubject == e.IsSubject {
			s.relations[e.ID].InOut = !predInOut
			s.relations[e.ID].OtherInOut = predOtherInOut
		} else {
			s.relations[e.ID].InOut = !predOtherInOut
			if pred.Vertical() {
				s.relations[e.ID].OtherInOut = !predInOut
			} else {
				s.relations[e.ID].OtherInOut = predInOut
			}
		}

		if predInResult && !pred.Vertical() {
			s.relations[e.ID].PrevInResult = pred.ID
		} else {
			s.relations[e.ID].PrevInResult = predPrevInResult
		}
	}

	s.relations[e.ID].InResult = computeInResult(s.op, e.IsSubject, s.relations[e.ID].OtherInOut)

	if hasPred {
		s.checkIntersection(e.ID, pred.ID)
	}
	if succ, hasSucc := s.status.Successor(e); hasSucc {
		s.checkIntersection(e.ID, succ.ID)
	}

	if s.relations[e.ID].InResult {
		logDebugf("result: admit left event %d at %s", e.ID, e.Point)
		s.result = append(s.result, e.ID)
	}
}

func (s *subdivider) handleRight(e Event) {
	siblingID := s.relations[e.ID].SiblingID
	s.relations[e.ID].InResult = s.relations[siblingID].InResult

	leftEvent := s.events[siblingID]
	pred, hasPred := s.status.Predecessor(leftEvent)
	succ, hasSucc := s.status.Successor(leftEvent)
	s.status.Remove(leftEvent)

	if hasPred && hasSucc {
		s.checkIntersection(pred.ID, succ.ID)
	}

	if s.relations[e.ID].InResult {
		logDebugf("result: admit right event %d at %s", e.ID, e.Point)
		s.result = append(s.result, e.ID)
	}
}

// checkIntersection runs the segment intersection predicate between
// the active edges currently represented by left events aID and bID, and
// dispatches to splitting or coincidence handling as needed.
func (s *subdivider) checkIntersection(aID, bID int) {
	a := s.events[aID]
	b := s.events[bID]
	aFar := s.relations[aID].SiblingPoint
	bFar := s.relations[bID].SiblingPoint

	res := intersectSegments(a.Point, aFar, b.Point, bFar)
	switch res.Kind {
	case noIntersection:
		return
	case pointIntersection:
		s.splitIfInterior(aID, res.Point)
		s.splitIfInterior(bID, res.Point)
	case overlapIntersection:
		s.handleCoincidence(aID, bID, res.Start, res.End)
	}
}

// splitIfInterior splits the edge currently anchored at leftID at p, unless
// p coincides with one of the edge's current endpoints.
func (s *subdivider) splitIfInterior(leftID int, p point.Point) {
	left := s.events[leftID]
	far := s.relations[leftID].SiblingPoint
	if p.Eq(left.Point) || p.Eq(far) {
		return
	}
	s.splitEdge(leftID, p)
}

// splitEdge splits the edge currently anchored at leftID into a near
// fragment [left.Point, p] and a far fragment [p, far]. leftID keeps its identity as the
// near fragment's left event; a new right event is created to close it at
// p. The existing right event keeps its identity as the far fragment's
// right event; a new left event is created to open it at p. Both new
// events are enqueued.
func (s *subdivider) splitEdge(leftID int, p point.Point) (newRightID, newLeftID int) {
	left := s.events[leftID]
	rightID := s.relations[leftID].SiblingID
	right := s.events[rightID]
	leftSource := s.relations[leftID].Source
	rightSource := s.relations[rightID].Source

	newRightID = len(s.events)
	s.events = append(s.events, Event{
		ID:         newRightID,
		Point:      p,
		Left:       false,
		IsSubject:  left.IsSubject,
		OtherPoint: left.Point,
	})
	s.relations = append(s.relations, EventRelation{
		SiblingID:    leftID,
		SiblingPoint: left.Point,
		PrevInResult: noPrevInResult,
		Source:       leftSource,
	})

	newLeftID = len(s.events)
	s.events = append(s.events, Event{
		ID:         newLeftID,
		Point:      p,
		Left:       true,
		IsSubject:  left.IsSubject,
		OtherPoint: right.Point,
	})
	s.relations = append(s.relations, EventRelation{
		SiblingID:    rightID,
		SiblingPoint: right.Point,
		PrevInResult: noPrevInResult,
		Source:       rightSource,
	})

	// Re-index rather than reuse earlier pointers: the two appends above
	// may have reallocated s.relations.
	s.relations[leftID].SiblingID = newRightID
	s.relations[leftID].SiblingPoint = p
	s.relations[rightID].SiblingID = newLeftID
	s.relations[rightID].SiblingPoint = p

	s.queue.Push(s.events[newRightID])
	s.queue.Push(s.events[newLeftID])
	return newRightID, newLeftID
}

// fragmentAt splits the edge currently anchored at leftID, if needed, so
// that it has an exact fragment [start, end], and returns that fragment's
// left event ID.
func (s *subdivider) fragmentAt(leftID int, start, end point.Point) int {
	cur := leftID
	if !start.Eq(s.events[cur].Point) && !start.Eq(s.relations[cur].SiblingPoint) {
		_, newLeft := s.splitEdge(cur, start)
		cur = newLeft
	}
	if !end.Eq(s.relations[cur].SiblingPoint) && !end.Eq(s.events[cur].Point) {
		s.splitEdge(cur, end)
	}
	return cur
}

// handleCoincidence reconciles a pair of collinear, overlapping fragments:
// the two edges currently represented by left events aID and bID overlap
// collinearly on [start, end].
func (s *subdivider) handleCoincidence(aID, bID int, start, end point.Point) {
	a2 := s.fragmentAt(aID, start, end)
	b2 := s.fragmentAt(bID, start, end)
	if a2 == b2 {
		// Splitting aID and bID collapsed them onto the same fragment
		// (possible if a split of one edge produced the other's current
		// left event); nothing further to reconcile.
		return
	}

	sameTransition := s.relations[a2].InOut == s.relations[b2].InOut

	primary, duplicate := a2, b2
	if !s.relations[a2].InResult && s.relations[b2].InResult {
		primary, duplicate = b2, a2
	}

	primaryEvent := s.events[primary]
	duplicateEvent := s.events[duplicate]
	if primaryEvent.IsSubject != duplicateEvent.IsSubject && !primaryEvent.IsSubject {
		subjectSource := s.relations[duplicate].Source
		primarySibling := s.relations[primary].SiblingID
		s.relations[primary].Source = subjectSource
		s.relations[primarySibling].Source = subjectSource
	}

	older := primary
	if duplicate < primary {
		older = duplicate
	}
	s.relations[primary].PrevInResult = s.relations[older].PrevInResult

	if sameTransition {
		s.relations[primary].CoincidenceType = types.CoincidenceSameTransition
	} else {
		s.relations[primary].CoincidenceType = types.CoincidenceDifferentTransition
	}
	s.relations[primary].InResult = coincidenceInResult(s.op, sameTransition)

	s.relations[duplicate].CoincidenceType = types.CoincidenceDuplicate
	s.relations[duplicate].InResult = false
}

// computeInResult implements the non-coincident in_result table, keyed by
// operation and the edge's relationship to the other polygon.
func computeInResult(op types.BooleanOperation, isSubject, otherInOut bool) bool {
	switch op {
	case types.OpIntersection:
		return !otherInOut
	case types.OpUnion:
		return otherInOut
	case types.OpDifference:
		return isSubject == otherInOut
	case types.OpXOR:
		return true
	default:
		panic(fmt.Errorf("unsupported boolean operation: %v", op))
	}
}

// coincidenceInResult implements the coincidence in_result table, keyed by
// operation and whether the coincident pair share a transition direction.
func coincidenceInResult(op types.BooleanOperation, sameTransition bool) bool {
	switch op {
	case types.OpIntersection, types.OpUnion:
		return sameTransition
	case types.OpDifference:
		return !sameTransition
	case types.OpXOR:
		return false
	default:
		panic(fmt.Errorf("unsupported boolean operation: %v", op))
	}
}

// computeResultInOut reports whether this edge is an inside-to-outside
// transition of the result polygon, keyed by operation, which polygon the
// edge belongs to, and whether each polygon's own side is currently inside.
// It works out whether the edge is an outside-to-inside transition and
// returns the negation of that.
func computeResultInOut(op types.BooleanOperation, isSubject, inOut, otherInOut bool) bool {
	insideSelf := !inOut
	insideOther := !otherInOut

	var outToIn bool
	switch op {
	case types.OpIntersection:
		outToIn = insideSelf && insideOther
	case types.OpUnion:
		outToIn = insideSelf || insideOther
	case types.OpDifference:
		if isSubject {
			outToIn = insideSelf && !insideOther
		} else {
			outToIn = !insideSelf && insideOther
		}
	case types.OpXOR:
		outToIn = insideSelf != insideOther
	default:
		panic(fmt.Errorf("unsupported boolean operation: %v", op))
	}
	return !outToIn
}

