package sweep

import (
	"github.com/mikenye/polyclip2d/point"
	"github.com/mikenye/polyclip2d/types"
)

// Run executes the full pipeline for one boolean operation:
// Event Generator -> Subdivider -> Result Filter -> Contour Assembler.
//
// subject and clip are each a polygon's contours; a contour's closure is
// implicit (edge i runs from contour[i] to contour[(i+1)%len(contour)]).
// The returned contours and their parallel source-edge lists are in the
// order the Contour Assembler emitted them; callers that need the
// disjoint bounding-box fast path implement it above this call, since it
// is an explicit non-core external collaborator.
func Run(op types.BooleanOperation, subject, clip [][]point.Point) ([][]point.Point, [][]types.SourceEdge) {
	events, relations, queue := Generate(subject, clip)

	sd := newSubdivider(op, events, relations, queue)
	resultIDs := sd.run()
	resultIDs = filterResult(sd.relations, resultIDs)

	return assemble(op, sd.events, sd.relations, resultIDs)
}
