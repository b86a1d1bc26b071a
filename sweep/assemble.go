package sweep

import (
	"fmt"

	"github.com/mikenye/polyclip2d/point"
	"github.com/mikenye/polyclip2d/types"
)

// contourFlags is the mutable per-event bookkeeping the Contour Assembler
// keeps alongside each event in the filtered result list R. It
// is indexed by an event's position in R, not by event ID.
type contourFlags struct {
	resultInOut bool
	processed   bool
	hasParent   bool
	contourID   int
	parentID    int
	depth       int
}

// assemble implements the Contour Assembler: it walks the
// filtered, ordered result event list, computing each emitted contour's
// depth and parent from prev_in_result chains and reversing odd-depth
// (hole) contours so their winding opposes their enclosing shell's.
//
// result must already be in event-queue order, as produced by subdivider.run
// and narrowed by filterResult: contour walking depends on result[i]'s
// immediate neighbors sharing a point with it.
func assemble(op types.BooleanOperation, events []Event, relations []EventRelation, result []int) ([][]point.Point, [][]types.SourceEdge) {
	n := len(result)
	if n == 0 {
		return nil, nil
	}

	pos := make(map[int]int, n)
	for i, id := range result {
		pos[id] = i
	}

	flags := make([]contourFlags, n)
	for i, id := range result {
		e := events[id]
		r := relations[id]
		flags[i].resultInOut = computeResultInOut(op, e.IsSubject, r.InOut, r.OtherInOut)
	}

	var contours [][]point.Point
	var sourceEdges [][]types.SourceEdge
	nextContourID := 0

	for i := 0; i < n; i++ {
		if flags[i].processed {
			continue
		}

		depth, parentID, hasParent := contourNesting(relations, pos, flags, result[i])

		contourID := nextContourID
		nextContourID++

		flags[i].processed = true
		flags[i].contourID = contourID
		flags[i].parentID = parentID
		flags[i].hasParent = hasParent
		flags[i].depth = depth

		startPoint := events[result[i]].Point
		points := []point.Point{startPoint}
		srcs := []types.SourceEdge{relations[result[i]].Source}

		cur := result[i]
		for {
			sibID := relations[cur].SiblingID
			sPos, ok := pos[sibID]
			if !ok {
				panic(fmt.Errorf("sweep: sibling event %d of result event %d not in result", sibID, cur))
			}
			stamp(&flags[sPos], contourID, depth, parentID, hasParent)

			sibPoint := events[sibID].Point
			candIdx := sPos - 1
			if candIdx < 0 || !events[result[candIdx]].Point.Eq(sibPoint) {
				candIdx = sPos + 1
			}
			if candIdx < 0 || candIdx >= n {
				panic(fmt.Errorf("sweep: no matching result event at point %s", sibPoint))
			}
			stamp(&flags[candIdx], contourID, depth, parentID, hasParent)

			candID := result[candIdx]
			candPoint := events[candID].Point
			if candPoint.Eq(startPoint) {
				break
			}
			points = append(points, candPoint)
			srcs = append(srcs, relations[candID].Source)
			cur = candID
		}

		if depth%2 != 0 {
			reversePoints(points)
			reverseSources(srcs)
		}

		contours = append(contours, points)
		sourceEdges = append(sourceEdges, srcs)
	}

	return contours, sourceEdges
}

// stamp marks f, the flags of one result-list entry, as processed and
// belonging to the given contour, unless it has already been claimed by an
// earlier step of the same walk (the walk can revisit the same result
// position for very short contours).
func stamp(f *contourFlags, contourID, depth, parentID int, hasParent bool) {
	if f.processed {
		return
	}
	f.processed = true
	f.contourID = contourID
	f.depth = depth
	f.parentID = parentID
	f.hasParent = hasParent
}

// contourNesting computes the depth and
// parent contour ID a new contour inherits from the nearest already-emitted
// edge below it.
//
// prev_in_result is captured eagerly during the sweep and can
// reference an event that a later coincidence discovery demoted out of the
// result; resolvePrevInResult walks the chain to the nearest
// ancestor that actually survived the Result Filter, the way reference
// Martinez-Rueda implementations chase prevInResult through demoted
// fragments.
func contourNesting(relations []EventRelation, pos map[int]int, flags []contourFlags, startEventID int) (depth, parentID int, hasParent bool) {
	prevID := resolvePrevInResult(relations, relations[startEventID].PrevInResult)
	if prevID == noPrevInResult {
		return 0, 0, false
	}

	pIdx, ok := pos[prevID]
	if !ok {
		panic(fmt.Errorf("sweep: prev_in_result event %d missing from result", prevID))
	}
	p := flags[pIdx]

	if !p.resultInOut {
		return p.depth + 1, p.contourID, true
	}
	return p.depth, p.parentID, p.hasParent
}

// resolvePrevInResult walks a prev_in_result chain past any event that was
// later demoted out of the result by edge coincidence, returning the ID of
// the nearest ancestor still in the result, or noPrevInResult.
func resolvePrevInResult(relations []EventRelation, id int) int {
	for id != noPrevInResult {
		if relations[id].InResult {
			return id
		}
		id = relations[id].PrevInResult
	}
	return noPrevInResult
}

// reversePoints flips a closed contour's winding while keeping points[0] as
// the starting vertex, so that the paired reverseSources call (a plain
// full-slice reversal) still lines up source_edge[i] with the edge from the
// reversed points[i] to points[(i+1)%n]: edge i's tag always traces the
// original edge that now runs in the opposite direction.
func reversePoints(points []point.Point) {
	for i, j := 1, len(points)-1; i < j; i, j = i+1, j-1 {
		points[i], points[j] = points[j], points[i]
	}
}

func reverseSources(srcs []types.SourceEdge) {
	for i, j := 0, len(srcs)-1; i < j; i, j = i+1, j-1 {
		srcs[i], srcs[j] = srcs[j], srcs[i]
	}
}
