package sweep

import (
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/mikenye/polyclip2d/point"
	"github.com/mikenye/polyclip2d/types"
	"github.com/stretchr/testify/assert"
)

// TestRun_SpewsEventRelationsOnFailure exercises the event/relation
// dump a developer reaches for when a sweep produces the wrong contour:
// spew.Sdump renders the full EventRelation slice (including the
// PrevInResult chain) in a form that's readable in a failed test's output.
func TestRun_SpewsEventRelationsOnFailure(t *testing.T) {
	subject := [][]point.Point{pts(0, 0, 4, 0, 4, 4, 0, 4)}
	clip := [][]point.Point{pts(1, 1, 3, 1, 3, 3, 1, 3)}

	events, relations, queue := Generate(subject, clip)
	sd := newSubdivider(types.OpDifference, events, relations, queue)
	resultIDs := sd.run()
	resultIDs = filterResult(sd.relations, resultIDs)

	dump := spew.Sdump(sd.relations)
	assert.Contains(t, dump, "EventRelation", "expected a readable dump of the relation table, got:\n%s", dump)
	assert.NotEmpty(t, strings.TrimSpace(dump))
	assert.NotEmpty(t, resultIDs)
}
